package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailstead/mailstead/internal/config"
	"github.com/mailstead/mailstead/internal/policy"
)

func TestValidate_WarningsDoNotBlock(t *testing.T) {
	// Unrestricted SSH is a warning outside strict production.
	swapResolveInputs(t, map[string]string{
		config.EnvVarKeyPair: "ops-key",
	}, config.Overrides{})

	err := Validate(context.Background(), "dev", "", false)
	require.NoError(t, err)
}

func TestValidate_StrictEscalates(t *testing.T) {
	swapResolveInputs(t, map[string]string{
		config.EnvVarKeyPair: "ops-key",
	}, config.Overrides{})

	err := Validate(context.Background(), "production", "", true)
	require.Error(t, err)

	var verr *policy.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestValidate_StrictViaEnvVar(t *testing.T) {
	swapResolveInputs(t, map[string]string{
		config.EnvVarKeyPair: "ops-key",
		config.EnvVarStrict:  "true",
	}, config.Overrides{})

	err := Validate(context.Background(), "production", "", false)
	require.Error(t, err)
}

func TestValidate_CleanConfig(t *testing.T) {
	swapResolveInputs(t, map[string]string{
		config.EnvVarKeyPair: "ops-key",
	}, config.Overrides{
		SSHCidrs: []string{"203.0.113.0/24"},
	})

	err := Validate(context.Background(), "dev", "", true)
	require.NoError(t, err)
}

func TestValidate_OverridesFileError(t *testing.T) {
	origLoad := loadOverrides
	t.Cleanup(func() { loadOverrides = origLoad })

	loadOverrides = func(_ string) (config.Overrides, error) {
		return config.Overrides{}, assert.AnError
	}

	err := Validate(context.Background(), "dev", "missing.yaml", false)
	require.Error(t, err)
}
