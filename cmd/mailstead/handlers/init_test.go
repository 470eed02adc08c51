package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailstead/mailstead/internal/config"
)

func swapInitDeps(t *testing.T) *config.Overrides {
	t.Helper()

	origTerminal := stdinIsTerminal
	origExists := fileExists
	origWizard := runWizard
	origWrite := writeOverrides
	t.Cleanup(func() {
		stdinIsTerminal = origTerminal
		fileExists = origExists
		runWizard = origWizard
		writeOverrides = origWrite
	})

	written := &config.Overrides{}

	stdinIsTerminal = func() bool { return true }
	fileExists = func(_ string) bool { return false }
	runWizard = func(_ context.Context) (*config.WizardResult, error) {
		return &config.WizardResult{
			Environment: config.EnvStaging,
			KeyPairName: "ops-key",
			OfficeCIDR:  "203.0.113.0/24",
		}, nil
	}
	writeOverrides = func(_ string, o config.Overrides) error {
		*written = o
		return nil
	}

	return written
}

func TestInit(t *testing.T) {
	written := swapInitDeps(t)

	err := Init(context.Background(), "mailstead.yaml")
	require.NoError(t, err)

	assert.Equal(t, "ops-key", written.KeyPairName)
	assert.Equal(t, []string{"203.0.113.0/24"}, written.SSHCidrs)
}

func TestInit_RequiresTerminal(t *testing.T) {
	swapInitDeps(t)
	stdinIsTerminal = func() bool { return false }

	err := Init(context.Background(), "mailstead.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestInit_WizardCanceled(t *testing.T) {
	swapInitDeps(t)
	runWizard = func(_ context.Context) (*config.WizardResult, error) {
		return nil, assert.AnError
	}

	err := Init(context.Background(), "mailstead.yaml")
	require.Error(t, err)
}
