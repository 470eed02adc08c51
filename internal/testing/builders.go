package testing

import (
	"maps"

	"github.com/mailstead/mailstead/internal/config"
)

// ConfigBuilder provides a fluent interface for constructing resolved
// test configurations. Each method returns a new builder (immutable)
// for chaining.
type ConfigBuilder struct {
	env       config.Environment
	overrides config.Overrides
	extraEnv  map[string]string
}

// NewConfigBuilder creates a ConfigBuilder with sensible defaults: the
// dev environment with a key pair already set.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		env: config.EnvDev,
		overrides: config.Overrides{
			KeyPairName: "test-key",
		},
	}
}

// WithEnvironment sets the target environment.
func (b *ConfigBuilder) WithEnvironment(env config.Environment) *ConfigBuilder {
	nb := b.clone()
	nb.env = env
	return nb
}

// WithKeyPair sets the key pair override.
func (b *ConfigBuilder) WithKeyPair(name string) *ConfigBuilder {
	nb := b.clone()
	nb.overrides.KeyPairName = name
	return nb
}

// WithDNS sets the domain and hosted zone overrides.
func (b *ConfigBuilder) WithDNS(domain, zoneID string) *ConfigBuilder {
	nb := b.clone()
	nb.overrides.DomainName = domain
	nb.overrides.HostedZoneID = zoneID
	return nb
}

// WithSSHCidrs replaces the allowed SSH source ranges.
func (b *ConfigBuilder) WithSSHCidrs(cidrs ...string) *ConfigBuilder {
	nb := b.clone()
	nb.overrides.SSHCidrs = append([]string(nil), cidrs...)
	return nb
}

// WithProcessEnv adds a process environment variable to resolve
// against.
func (b *ConfigBuilder) WithProcessEnv(key, value string) *ConfigBuilder {
	nb := b.clone()
	if nb.extraEnv == nil {
		nb.extraEnv = map[string]string{}
	}
	nb.extraEnv[key] = value
	return nb
}

// Build resolves the configuration. It panics on resolution failure:
// builders only construct valid fixtures, and a panic here is a bug in
// the test, not the code under test.
func (b *ConfigBuilder) Build() *config.Resolved {
	cfg, err := config.Resolve(b.env, b.overrides, b.extraEnv)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (b *ConfigBuilder) clone() *ConfigBuilder {
	nb := &ConfigBuilder{
		env:       b.env,
		overrides: b.overrides,
	}
	nb.overrides.SSHCidrs = append([]string(nil), b.overrides.SSHCidrs...)
	if b.extraEnv != nil {
		nb.extraEnv = maps.Clone(b.extraEnv)
	}
	return nb
}
