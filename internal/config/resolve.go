package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/mailstead/mailstead/internal/util/tags"
)

// Overrides carries explicit caller-supplied values. Every field is
// optional; an empty value means "not set", never "set to empty".
// Overrides rank above process environment variables and profile
// defaults during resolution.
type Overrides struct {
	// KeyPairName is the EC2 key pair granting SSH access.
	KeyPairName string `yaml:"key_pair_name,omitempty"`

	// DomainName is the mail domain (e.g. mail.example.com).
	DomainName string `yaml:"domain_name,omitempty"`

	// HostedZoneID is the Route53 zone holding the domain records.
	HostedZoneID string `yaml:"hosted_zone_id,omitempty"`

	// InstanceType overrides the profile's instance class.
	InstanceType string `yaml:"instance_type,omitempty"`

	// SSHCidrs replaces the profile's allowed SSH source ranges.
	SSHCidrs []string `yaml:"ssh_cidrs,omitempty"`
}

// Resolved is the fully merged configuration for one environment.
// It is produced once per invocation and never mutated afterwards;
// every later stage (validation, composition, tagging) only reads it.
type Resolved struct {
	Environment     Environment       `yaml:"environment"`
	InstanceClass   string            `yaml:"instance_class"`
	VolumeSizeGB    int               `yaml:"volume_size_gb"`
	MinVolumeSizeGB int               `yaml:"-"`
	Monitoring      bool              `yaml:"monitoring"`
	Backups         bool              `yaml:"backups"`
	AllowedSSHCidrs []string          `yaml:"allowed_ssh_cidrs"`
	KeyPairName     string            `yaml:"key_pair_name,omitempty"`
	DomainName      string            `yaml:"domain_name,omitempty"`
	HostedZoneID    string            `yaml:"hosted_zone_id,omitempty"`
	AccountID       string            `yaml:"account_id,omitempty"`
	Region          string            `yaml:"region,omitempty"`
	Tags            map[string]string `yaml:"tags"`
}

// HasDNS reports whether both values needed for a DNS record set are
// present.
func (r *Resolved) HasDNS() bool {
	return r.DomainName != "" && r.HostedZoneID != ""
}

// Resolve merges the environment profile, process environment
// variables, and explicit overrides into one Resolved configuration.
//
// Precedence, highest first: override > process env > profile default.
// Resolve is pure: it reads only its arguments, performs no I/O, and
// retains no state between calls. Pass EnvironFromOS() as processEnv
// to resolve against the real process environment.
func Resolve(env Environment, overrides Overrides, processEnv map[string]string) (*Resolved, error) {
	profile, err := ProfileFor(env)
	if err != nil {
		return nil, err
	}

	cfg := &Resolved{
		Environment:     env,
		InstanceClass:   firstNonEmpty(overrides.InstanceType, profile.InstanceClass),
		VolumeSizeGB:    profile.VolumeSizeGB,
		MinVolumeSizeGB: profile.MinVolumeSizeGB,
		Monitoring:      profile.Monitoring,
		Backups:         profile.Backups,
		AllowedSSHCidrs: profile.AllowedSSHCidrs,
		KeyPairName:     firstNonEmpty(overrides.KeyPairName, processEnv[EnvVarKeyPair]),
		AccountID:       firstNonEmpty(processEnv[EnvVarAccountID], processEnv[EnvVarAWSAccountID]),
		Region:          firstNonEmpty(processEnv[EnvVarRegion], processEnv[EnvVarAWSRegion]),
	}

	if len(overrides.SSHCidrs) > 0 {
		cfg.AllowedSSHCidrs = append([]string(nil), overrides.SSHCidrs...)
	}

	resolveDNS(cfg, overrides, processEnv)
	cfg.Tags = baseTags(env)

	return cfg, nil
}

// resolveDNS fills DomainName and HostedZoneID. Explicit overrides win
// for every environment. Otherwise DNS is an internet-facing concern:
// dev never picks it up from the process environment, while staging
// and production take env values and fall back to the per-environment
// policy-default domain when nothing supplies one.
func resolveDNS(cfg *Resolved, overrides Overrides, processEnv map[string]string) {
	cfg.DomainName = overrides.DomainName
	cfg.HostedZoneID = overrides.HostedZoneID

	if cfg.Environment == EnvDev {
		return
	}

	if cfg.DomainName == "" {
		cfg.DomainName = processEnv[EnvVarDomain]
	}
	if cfg.HostedZoneID == "" {
		cfg.HostedZoneID = processEnv[EnvVarHostedZoneID]
	}
	if cfg.DomainName == "" {
		cfg.DomainName = placeholderDomains[cfg.Environment]
	}
}

// baseTags builds the tag set every resource carries.
func baseTags(env Environment) map[string]string {
	b := tags.NewBuilder(ProjectLabel, ManagedByLabel).
		WithEnvironment(string(env)).
		WithCostCenter(env.CostCenter())
	if env.IsProduction() {
		b.WithBackupRequired()
	}
	return b.Build()
}

// EnvironFromOS snapshots the process environment into a map, the form
// Resolve consumes. Splitting this out keeps Resolve itself pure and
// trivially testable.
func EnvironFromOS() map[string]string {
	environ := os.Environ()
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return m
}

// StrictFromEnv reads the strict-validation flag from a process
// environment snapshot. Unset or unparsable values mean advisory mode.
func StrictFromEnv(processEnv map[string]string) bool {
	v, ok := processEnv[EnvVarStrict]
	if !ok {
		return false
	}
	strict, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return strict
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
