package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailstead/mailstead/internal/util/tags"
)

func TestResolve_ProfileDefaults(t *testing.T) {
	t.Parallel()
	tests := []struct {
		env           Environment
		instanceClass string
		volumeSizeGB  int
	}{
		{EnvDev, "t3.small", 30},
		{EnvStaging, "t3.medium", 50},
		{EnvProduction, "t3.large", 100},
	}

	for _, tt := range tests {
		t.Run(string(tt.env), func(t *testing.T) {
			t.Parallel()
			cfg, err := Resolve(tt.env, Overrides{}, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.env, cfg.Environment)
			assert.Equal(t, tt.instanceClass, cfg.InstanceClass)
			assert.Equal(t, tt.volumeSizeGB, cfg.VolumeSizeGB)
			assert.Equal(t, []string{UnrestrictedCIDR}, cfg.AllowedSSHCidrs)
		})
	}
}

func TestResolve_UnknownEnvironment(t *testing.T) {
	t.Parallel()
	_, err := Resolve(Environment("sandbox"), Overrides{}, nil)

	var unknownErr *UnknownEnvironmentError
	require.True(t, errors.As(err, &unknownErr))
}

func TestResolve_OverrideBeatsEnvBeatsDefault(t *testing.T) {
	t.Parallel()
	processEnv := map[string]string{
		EnvVarKeyPair: "env-key",
	}

	cfg, err := Resolve(EnvDev, Overrides{
		KeyPairName:  "override-key",
		InstanceType: "m5.large",
	}, processEnv)
	require.NoError(t, err)

	assert.Equal(t, "override-key", cfg.KeyPairName, "explicit override outranks process env")
	assert.Equal(t, "m5.large", cfg.InstanceClass, "explicit override outranks profile default")

	cfg, err = Resolve(EnvDev, Overrides{}, processEnv)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.KeyPairName, "process env outranks profile default")
}

func TestResolve_SSHCidrOverride(t *testing.T) {
	t.Parallel()
	cfg, err := Resolve(EnvProduction, Overrides{
		SSHCidrs: []string{"192.0.2.0/24", "198.51.100.0/24"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"192.0.2.0/24", "198.51.100.0/24"}, cfg.AllowedSSHCidrs)
}

func TestResolve_DNS(t *testing.T) {
	t.Parallel()

	t.Run("dev ignores process env", func(t *testing.T) {
		t.Parallel()
		cfg, err := Resolve(EnvDev, Overrides{}, map[string]string{
			EnvVarDomain:       "mail.corp.example",
			EnvVarHostedZoneID: "Z123",
		})
		require.NoError(t, err)
		assert.Empty(t, cfg.DomainName)
		assert.Empty(t, cfg.HostedZoneID)
		assert.False(t, cfg.HasDNS())
	})

	t.Run("dev honors explicit override", func(t *testing.T) {
		t.Parallel()
		cfg, err := Resolve(EnvDev, Overrides{
			DomainName:   "dev-mail.corp.example",
			HostedZoneID: "Z456",
		}, nil)
		require.NoError(t, err)
		assert.True(t, cfg.HasDNS())
	})

	t.Run("staging takes env values", func(t *testing.T) {
		t.Parallel()
		cfg, err := Resolve(EnvStaging, Overrides{}, map[string]string{
			EnvVarDomain:       "staging.corp.example",
			EnvVarHostedZoneID: "Z789",
		})
		require.NoError(t, err)
		assert.Equal(t, "staging.corp.example", cfg.DomainName)
		assert.Equal(t, "Z789", cfg.HostedZoneID)
	})

	t.Run("production falls back to policy default domain", func(t *testing.T) {
		t.Parallel()
		cfg, err := Resolve(EnvProduction, Overrides{}, nil)
		require.NoError(t, err)
		assert.Equal(t, "mail.example.com", cfg.DomainName)
		assert.Empty(t, cfg.HostedZoneID, "policy default covers the domain only")
		assert.False(t, cfg.HasDNS())
	})
}

func TestResolve_AccountAndRegion(t *testing.T) {
	t.Parallel()

	cfg, err := Resolve(EnvDev, Overrides{}, map[string]string{
		EnvVarAccountID: "123456789012",
		EnvVarRegion:    "eu-central-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "123456789012", cfg.AccountID)
	assert.Equal(t, "eu-central-1", cfg.Region)

	cfg, err = Resolve(EnvDev, Overrides{}, map[string]string{
		EnvVarAWSAccountID: "210987654321",
		EnvVarAWSRegion:    "us-east-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "210987654321", cfg.AccountID, "AWS_ACCOUNT_ID is honored as fallback")
	assert.Equal(t, "us-east-1", cfg.Region, "AWS_REGION is honored as fallback")

	cfg, err = Resolve(EnvDev, Overrides{}, nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.AccountID, "absent account stays unset")
	assert.Empty(t, cfg.Region, "absent region stays unset")
}

func TestResolve_Tags(t *testing.T) {
	t.Parallel()

	cfg, err := Resolve(EnvStaging, Overrides{}, nil)
	require.NoError(t, err)
	assert.Len(t, cfg.Tags, 4)
	assert.Equal(t, "staging", cfg.Tags[tags.KeyEnvironment])
	assert.Equal(t, ProjectLabel, cfg.Tags[tags.KeyProject])
	assert.Equal(t, ManagedByLabel, cfg.Tags[tags.KeyManagedBy])
	assert.Equal(t, "Staging", cfg.Tags[tags.KeyCostCenter])

	cfg, err = Resolve(EnvProduction, Overrides{}, nil)
	require.NoError(t, err)
	assert.Len(t, cfg.Tags, 5)
	assert.Equal(t, tags.BackupRequired, cfg.Tags[tags.KeyBackup])
}

func TestStrictFromEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"unset", nil, false},
		{"true", map[string]string{EnvVarStrict: "true"}, true},
		{"one", map[string]string{EnvVarStrict: "1"}, true},
		{"false", map[string]string{EnvVarStrict: "false"}, false},
		{"garbage", map[string]string{EnvVarStrict: "yes please"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StrictFromEnv(tt.env))
		})
	}
}

func TestEnvironmentFromEnv(t *testing.T) {
	t.Parallel()
	assert.Equal(t, EnvDev, EnvironmentFromEnv(nil))
	assert.Equal(t, EnvProduction, EnvironmentFromEnv(map[string]string{EnvVarEnvironment: "production"}))
	assert.Equal(t, Environment("qa"), EnvironmentFromEnv(map[string]string{EnvVarEnvironment: "qa"}),
		"selector is passed through unvalidated; Resolve rejects it")
}
