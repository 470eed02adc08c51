package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailstead/mailstead/internal/config"
	"github.com/mailstead/mailstead/internal/stack"
)

// swapResolveInputs replaces the shared resolve factories for the
// duration of a test.
func swapResolveInputs(t *testing.T, processEnv map[string]string, overrides config.Overrides) {
	t.Helper()

	origEnviron := environFromOS
	origLoad := loadOverrides
	t.Cleanup(func() {
		environFromOS = origEnviron
		loadOverrides = origLoad
	})

	environFromOS = func() map[string]string { return processEnv }
	loadOverrides = func(_ string) (config.Overrides, error) { return overrides, nil }
}

func TestPlan_YAML(t *testing.T) {
	swapResolveInputs(t, map[string]string{
		config.EnvVarKeyPair: "ops-key",
	}, config.Overrides{})

	err := Plan(context.Background(), "dev", "", false, "yaml")
	require.NoError(t, err)
}

func TestPlan_JSON(t *testing.T) {
	swapResolveInputs(t, map[string]string{
		config.EnvVarKeyPair: "ops-key",
	}, config.Overrides{})

	err := Plan(context.Background(), "staging", "", false, "json")
	require.NoError(t, err)
}

func TestPlan_UnknownOutputFormat(t *testing.T) {
	err := Plan(context.Background(), "dev", "", false, "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toml")
}

func TestPlan_UnknownEnvironment(t *testing.T) {
	swapResolveInputs(t, map[string]string{}, config.Overrides{})

	err := Plan(context.Background(), "qa", "", false, "yaml")
	require.Error(t, err)

	var unknownErr *config.UnknownEnvironmentError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestPlan_MissingKeyPair(t *testing.T) {
	swapResolveInputs(t, map[string]string{}, config.Overrides{})

	err := Plan(context.Background(), "dev", "", false, "yaml")
	require.Error(t, err)

	var missingErr *stack.MissingAccessError
	assert.ErrorAs(t, err, &missingErr)
}

func TestPlan_StrictBlocksPlaceholders(t *testing.T) {
	swapResolveInputs(t, map[string]string{
		config.EnvVarKeyPair: config.PlaceholderKeyPair,
	}, config.Overrides{})

	err := Plan(context.Background(), "dev", "", true, "yaml")
	require.Error(t, err)
}

func TestRenderSpec_JSONRoundTrip(t *testing.T) {
	cfg, err := config.Resolve(config.EnvDev, config.Overrides{KeyPairName: "ops-key"}, nil)
	require.NoError(t, err)

	spec, err := stack.Compose(cfg)
	require.NoError(t, err)

	out, err := renderSpec(spec, "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"resources"`)
	assert.Contains(t, out, `"network"`)
}
