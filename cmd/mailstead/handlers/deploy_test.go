package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailstead/mailstead/internal/aws"
	"github.com/mailstead/mailstead/internal/config"
)

func TestDeploy_DryRun(t *testing.T) {
	swapResolveInputs(t, map[string]string{
		config.EnvVarKeyPair: "ops-key",
	}, config.Overrides{})

	mock := aws.NewMockProvisioner()
	origDryRun := newDryRunBackend
	t.Cleanup(func() { newDryRunBackend = origDryRun })
	newDryRunBackend = func() aws.Provisioner { return mock }

	err := Deploy(context.Background(), "dev", "", false, true)
	require.NoError(t, err)

	// Dev deploys the five mandatory resources in order.
	require.Len(t, mock.Calls, 5)
	assert.Equal(t, "mailstead-dev-vpc", mock.Calls[0])
}

func TestDeploy_DryRunProduction(t *testing.T) {
	swapResolveInputs(t, map[string]string{
		config.EnvVarKeyPair:      "ops-key",
		config.EnvVarDomain:       "mail.example.com",
		config.EnvVarHostedZoneID: "Z123",
	}, config.Overrides{})

	mock := aws.NewMockProvisioner()
	origDryRun := newDryRunBackend
	t.Cleanup(func() { newDryRunBackend = origDryRun })
	newDryRunBackend = func() aws.Provisioner { return mock }

	err := Deploy(context.Background(), "production", "", false, true)
	require.NoError(t, err)

	// All eight resource kinds are provisioned.
	assert.Len(t, mock.Calls, 8)
}

func TestDeploy_StrictBlocksBeforeBackend(t *testing.T) {
	swapResolveInputs(t, map[string]string{
		config.EnvVarKeyPair: "ops-key",
	}, config.Overrides{})

	mock := aws.NewMockProvisioner()
	origDryRun := newDryRunBackend
	t.Cleanup(func() { newDryRunBackend = origDryRun })
	newDryRunBackend = func() aws.Provisioner { return mock }

	// Production with unrestricted SSH is blocking under strict.
	err := Deploy(context.Background(), "production", "", true, true)
	require.Error(t, err)
	assert.Empty(t, mock.Calls)
}

func TestDeploy_UnknownEnvironment(t *testing.T) {
	swapResolveInputs(t, map[string]string{}, config.Overrides{})

	err := Deploy(context.Background(), "qa", "", false, true)
	require.Error(t, err)

	var unknownErr *config.UnknownEnvironmentError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestDeploy_BackendInitFailure(t *testing.T) {
	swapResolveInputs(t, map[string]string{
		config.EnvVarKeyPair: "ops-key",
	}, config.Overrides{})

	origReal := newRealBackend
	t.Cleanup(func() { newRealBackend = origReal })
	newRealBackend = func(_ context.Context, _ string) (aws.Provisioner, error) {
		return nil, assert.AnError
	}

	err := Deploy(context.Background(), "dev", "", false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize AWS backend")
}
