package config

import (
	"fmt"
)

// Environment is a named deployment target.
type Environment string

const (
	// EnvDev is the development environment: smallest instance, no
	// monitoring, no backups.
	EnvDev Environment = "dev"

	// EnvStaging is the pre-production environment: mid-size instance,
	// monitoring and backups enabled.
	EnvStaging Environment = "staging"

	// EnvProduction is the production environment: largest instance,
	// monitoring enabled, backups mandatory.
	EnvProduction Environment = "production"
)

// ValidEnvironments returns all defined environments in declaration order.
func ValidEnvironments() []Environment {
	return []Environment{EnvDev, EnvStaging, EnvProduction}
}

// IsValid returns true if the environment is one of the defined names.
func (e Environment) IsValid() bool {
	switch e {
	case EnvDev, EnvStaging, EnvProduction:
		return true
	default:
		return false
	}
}

// IsProduction reports whether this is the production environment.
func (e Environment) IsProduction() bool {
	return e == EnvProduction
}

// String returns a human-readable description of the environment.
func (e Environment) String() string {
	switch e {
	case EnvDev:
		return "dev (t3.small, 30GB, no monitoring, no backups)"
	case EnvStaging:
		return "staging (t3.medium, 50GB, monitoring, backups)"
	case EnvProduction:
		return "production (t3.large, 100GB, monitoring, backups required)"
	default:
		return string(e)
	}
}

// CostCenter returns the environment name with its first letter
// capitalized, used as the CostCenter tag value.
func (e Environment) CostCenter() string {
	s := string(e)
	if s == "" {
		return s
	}
	return string(s[0]-('a'-'A')) + s[1:]
}

// UnknownEnvironmentError is returned when an environment name has no
// registry entry. There is deliberately no fallback to another
// profile: silently substituting a less restrictive environment is a
// safety defect, not a convenience.
type UnknownEnvironmentError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownEnvironmentError) Error() string {
	return fmt.Sprintf("unknown environment %q: must be one of dev, staging, production", e.Name)
}

// Profile holds the static per-environment defaults. Profiles are
// fixed data compiled into the binary; adding an environment means
// extending the registry here, not configuring it at runtime.
type Profile struct {
	// InstanceClass is the EC2 instance type for the mail server.
	InstanceClass string

	// VolumeSizeGB is the root EBS volume size in gigabytes.
	VolumeSizeGB int

	// MinVolumeSizeGB is the advisory lower bound for the volume size.
	// Resolved configs below it draw a validation warning.
	MinVolumeSizeGB int

	// Monitoring enables CloudWatch alarms for the instance.
	Monitoring bool

	// Backups enables the backup plan for the instance and its volume.
	Backups bool

	// AllowedSSHCidrs are the source ranges permitted on port 22.
	// The compiled-in default is the unrestricted sentinel so that a
	// fresh checkout resolves everywhere; the validator flags it until
	// it is narrowed.
	AllowedSSHCidrs []string
}

// registry is the static environment table. Built once at package
// init, read-only afterwards.
var registry = map[Environment]Profile{
	EnvDev: {
		InstanceClass:   "t3.small",
		VolumeSizeGB:    30,
		MinVolumeSizeGB: 20,
		Monitoring:      false,
		Backups:         false,
		AllowedSSHCidrs: []string{UnrestrictedCIDR},
	},
	EnvStaging: {
		InstanceClass:   "t3.medium",
		VolumeSizeGB:    50,
		MinVolumeSizeGB: 40,
		Monitoring:      true,
		Backups:         true,
		AllowedSSHCidrs: []string{UnrestrictedCIDR},
	},
	EnvProduction: {
		InstanceClass:   "t3.large",
		VolumeSizeGB:    100,
		MinVolumeSizeGB: 80,
		Monitoring:      true,
		Backups:         true,
		AllowedSSHCidrs: []string{UnrestrictedCIDR},
	},
}

// ProfileFor returns the profile registered for the environment.
// It returns an UnknownEnvironmentError for any name outside the
// defined set; there is no default branch.
func ProfileFor(env Environment) (Profile, error) {
	p, ok := registry[env]
	if !ok {
		return Profile{}, &UnknownEnvironmentError{Name: string(env)}
	}
	// Copy the CIDR slice so callers cannot mutate registry state.
	cidrs := make([]string, len(p.AllowedSSHCidrs))
	copy(cidrs, p.AllowedSSHCidrs)
	p.AllowedSSHCidrs = cidrs
	return p, nil
}
