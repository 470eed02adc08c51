package aws

import (
	"context"

	"github.com/mailstead/mailstead/internal/stack"
)

// MockProvisioner is a test double for Provisioner. Each method
// records the resource name it was called with and delegates to the
// corresponding Func field when set, otherwise returning canned
// output. It also backs the CLI's dry-run mode, where recording calls
// without touching any API is exactly the behavior wanted.
type MockProvisioner struct {
	// Calls records resource names in invocation order.
	Calls []string

	EnsureNetworkFunc         func(ctx context.Context, res stack.ResourceSpec) (NetworkOutput, error)
	EnsureInstanceFunc        func(ctx context.Context, res stack.ResourceSpec, net NetworkOutput) (InstanceOutput, error)
	EnsureSecurityGroupFunc   func(ctx context.Context, res stack.ResourceSpec, vpcID, instanceID string) (string, error)
	EnsureBucketFunc          func(ctx context.Context, res stack.ResourceSpec) (string, error)
	EnsureSecretFunc          func(ctx context.Context, res stack.ResourceSpec) (string, error)
	EnsureAlarmsFunc          func(ctx context.Context, res stack.ResourceSpec, instanceID string) ([]string, error)
	EnsureBackupSelectionFunc func(ctx context.Context, res stack.ResourceSpec) (string, error)
	EnsureDNSRecordsFunc      func(ctx context.Context, res stack.ResourceSpec, publicIP string) (string, error)
}

// NewMockProvisioner returns a mock with canned defaults.
func NewMockProvisioner() *MockProvisioner {
	return &MockProvisioner{}
}

func (m *MockProvisioner) record(res stack.ResourceSpec) {
	m.Calls = append(m.Calls, res.Name)
}

// EnsureNetwork implements NetworkProvisioner.
func (m *MockProvisioner) EnsureNetwork(ctx context.Context, res stack.ResourceSpec) (NetworkOutput, error) {
	m.record(res)
	if m.EnsureNetworkFunc != nil {
		return m.EnsureNetworkFunc(ctx, res)
	}
	return NetworkOutput{VPCID: "vpc-mock", SubnetID: "subnet-mock"}, nil
}

// EnsureInstance implements ComputeProvisioner.
func (m *MockProvisioner) EnsureInstance(ctx context.Context, res stack.ResourceSpec, net NetworkOutput) (InstanceOutput, error) {
	m.record(res)
	if m.EnsureInstanceFunc != nil {
		return m.EnsureInstanceFunc(ctx, res, net)
	}
	return InstanceOutput{InstanceID: "i-mock", PublicIP: "198.51.100.10"}, nil
}

// EnsureSecurityGroup implements SecurityProvisioner.
func (m *MockProvisioner) EnsureSecurityGroup(ctx context.Context, res stack.ResourceSpec, vpcID, instanceID string) (string, error) {
	m.record(res)
	if m.EnsureSecurityGroupFunc != nil {
		return m.EnsureSecurityGroupFunc(ctx, res, vpcID, instanceID)
	}
	return "sg-mock", nil
}

// EnsureBucket implements StorageProvisioner.
func (m *MockProvisioner) EnsureBucket(ctx context.Context, res stack.ResourceSpec) (string, error) {
	m.record(res)
	if m.EnsureBucketFunc != nil {
		return m.EnsureBucketFunc(ctx, res)
	}
	return res.Storage.BucketName, nil
}

// EnsureSecret implements SecretProvisioner.
func (m *MockProvisioner) EnsureSecret(ctx context.Context, res stack.ResourceSpec) (string, error) {
	m.record(res)
	if m.EnsureSecretFunc != nil {
		return m.EnsureSecretFunc(ctx, res)
	}
	return "arn:aws:secretsmanager:mock:secret:" + res.Secret.SecretName, nil
}

// EnsureAlarms implements MonitoringProvisioner.
func (m *MockProvisioner) EnsureAlarms(ctx context.Context, res stack.ResourceSpec, instanceID string) ([]string, error) {
	m.record(res)
	if m.EnsureAlarmsFunc != nil {
		return m.EnsureAlarmsFunc(ctx, res, instanceID)
	}
	names := make([]string, 0, len(res.Monitoring.Alarms))
	for _, a := range res.Monitoring.Alarms {
		names = append(names, a.Name)
	}
	return names, nil
}

// EnsureBackupSelection implements BackupProvisioner.
func (m *MockProvisioner) EnsureBackupSelection(ctx context.Context, res stack.ResourceSpec) (string, error) {
	m.record(res)
	if m.EnsureBackupSelectionFunc != nil {
		return m.EnsureBackupSelectionFunc(ctx, res)
	}
	return res.Backup.PlanName, nil
}

// EnsureDNSRecords implements DNSProvisioner.
func (m *MockProvisioner) EnsureDNSRecords(ctx context.Context, res stack.ResourceSpec, publicIP string) (string, error) {
	m.record(res)
	if m.EnsureDNSRecordsFunc != nil {
		return m.EnsureDNSRecordsFunc(ctx, res, publicIP)
	}
	return "change-mock", nil
}
