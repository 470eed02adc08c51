package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_Flags(t *testing.T) {
	cmd := Plan()

	require.NotNil(t, cmd)
	assert.Equal(t, "plan", cmd.Use)

	for _, name := range []string{"env", "config", "strict", "output"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "Expected flag %s", name)
	}

	output, err := cmd.Flags().GetString("output")
	require.NoError(t, err)
	assert.Equal(t, "yaml", output)
}

func TestValidate_Flags(t *testing.T) {
	cmd := Validate()

	require.NotNil(t, cmd)
	assert.Equal(t, "validate", cmd.Use)

	for _, name := range []string{"env", "config", "strict"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "Expected flag %s", name)
	}
}

func TestDeploy_Flags(t *testing.T) {
	cmd := Deploy()

	require.NotNil(t, cmd)
	assert.Equal(t, "deploy", cmd.Use)

	for _, name := range []string{"env", "config", "strict", "dry-run"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "Expected flag %s", name)
	}

	dryRun, err := cmd.Flags().GetBool("dry-run")
	require.NoError(t, err)
	assert.False(t, dryRun)
}

func TestCost_Flags(t *testing.T) {
	cmd := Cost()

	require.NotNil(t, cmd)
	assert.Equal(t, "cost", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("json"))
}

func TestKeygen_Flags(t *testing.T) {
	cmd := Keygen()

	require.NotNil(t, cmd)
	assert.Equal(t, "keygen", cmd.Use)

	keyType, err := cmd.Flags().GetString("type")
	require.NoError(t, err)
	assert.Equal(t, "ed25519", keyType)

	bits, err := cmd.Flags().GetInt("bits")
	require.NoError(t, err)
	assert.Equal(t, 4096, bits)
}

func TestInit_Flags(t *testing.T) {
	cmd := Init()

	require.NotNil(t, cmd)
	assert.Equal(t, "init", cmd.Use)

	output, err := cmd.Flags().GetString("output")
	require.NoError(t, err)
	assert.Equal(t, "mailstead.yaml", output)
}
