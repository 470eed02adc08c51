package aws

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailstead/mailstead/internal/config"
	"github.com/mailstead/mailstead/internal/stack"
	mstesting "github.com/mailstead/mailstead/internal/testing"
)

func TestMockProvisioner_RecordsCallsInOrder(t *testing.T) {
	t.Parallel()

	ctx := mstesting.TestContext(t)
	cfg := mstesting.NewConfigBuilder().
		WithEnvironment(config.EnvProduction).
		WithDNS("mail.example.com", "Z123").
		Build()

	spec, err := stack.Compose(cfg)
	require.NoError(t, err)

	mock := NewMockProvisioner()

	net, err := mock.EnsureNetwork(ctx, *spec.Resource(stack.KindNetwork))
	require.NoError(t, err)
	assert.Equal(t, "vpc-mock", net.VPCID)

	inst, err := mock.EnsureInstance(ctx, *spec.Resource(stack.KindCompute), net)
	require.NoError(t, err)
	assert.Equal(t, "i-mock", inst.InstanceID)

	assert.Equal(t, []string{
		spec.Resource(stack.KindNetwork).Name,
		spec.Resource(stack.KindCompute).Name,
	}, mock.Calls)
}

func TestMockProvisioner_DefaultsEchoSpec(t *testing.T) {
	t.Parallel()

	ctx := mstesting.TestContext(t)
	cfg := mstesting.NewConfigBuilder().
		WithEnvironment(config.EnvProduction).
		Build()

	spec, err := stack.Compose(cfg)
	require.NoError(t, err)

	mock := NewMockProvisioner()

	bucket, err := mock.EnsureBucket(ctx, *spec.Resource(stack.KindStorage))
	require.NoError(t, err)
	assert.Equal(t, spec.Resource(stack.KindStorage).Storage.BucketName, bucket)

	alarms, err := mock.EnsureAlarms(ctx, *spec.Resource(stack.KindMonitoring), "i-mock")
	require.NoError(t, err)
	assert.Len(t, alarms, len(spec.Resource(stack.KindMonitoring).Monitoring.Alarms))

	plan, err := mock.EnsureBackupSelection(ctx, *spec.Resource(stack.KindBackup))
	require.NoError(t, err)
	assert.Equal(t, spec.Resource(stack.KindBackup).Backup.PlanName, plan)
}

func TestMockProvisioner_FuncOverride(t *testing.T) {
	t.Parallel()

	ctx := mstesting.TestContext(t)
	cfg := mstesting.NewConfigBuilder().Build()

	spec, err := stack.Compose(cfg)
	require.NoError(t, err)

	mock := NewMockProvisioner()
	mock.EnsureSecretFunc = func(_ context.Context, _ stack.ResourceSpec) (string, error) {
		return "", assert.AnError
	}

	_, err = mock.EnsureSecret(ctx, *spec.Resource(stack.KindSecret))
	require.Error(t, err)
	assert.Len(t, mock.Calls, 1)
}
