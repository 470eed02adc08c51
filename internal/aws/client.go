// Package aws is the provisioning backend: it materializes a composed
// deployment specification as real AWS infrastructure.
//
// The core pipeline (resolve, validate, compose, tag) never imports
// this package and performs no I/O; it hands a finished
// [stack.DeploymentSpec] to a [Provisioner]. All cloud API calls,
// polling, and retry live here.
package aws

import (
	"context"

	"github.com/mailstead/mailstead/internal/stack"
)

// NetworkOutput holds the identifiers of an ensured network.
type NetworkOutput struct {
	VPCID    string
	SubnetID string
}

// InstanceOutput holds the identifiers of an ensured instance.
type InstanceOutput struct {
	InstanceID string
	PublicIP   string
}

// NetworkProvisioner ensures the VPC and its public subnet.
type NetworkProvisioner interface {
	// EnsureNetwork creates the network if absent and returns its
	// identifiers. It is idempotent.
	EnsureNetwork(ctx context.Context, res stack.ResourceSpec) (NetworkOutput, error)
}

// ComputeProvisioner ensures the mail server instance.
type ComputeProvisioner interface {
	// EnsureInstance launches the instance into the subnet if absent
	// and waits until it is running.
	EnsureInstance(ctx context.Context, res stack.ResourceSpec, net NetworkOutput) (InstanceOutput, error)
}

// SecurityProvisioner ensures the access-control group.
type SecurityProvisioner interface {
	// EnsureSecurityGroup creates the group with the spec's ingress
	// rules, attaches it to the instance, and returns the group id.
	EnsureSecurityGroup(ctx context.Context, res stack.ResourceSpec, vpcID, instanceID string) (string, error)
}

// StorageProvisioner ensures the mail data bucket.
type StorageProvisioner interface {
	// EnsureBucket creates the bucket if absent and returns its name.
	EnsureBucket(ctx context.Context, res stack.ResourceSpec) (string, error)
}

// SecretProvisioner ensures the credential store entry.
type SecretProvisioner interface {
	// EnsureSecret creates the secret if absent and returns its ARN.
	EnsureSecret(ctx context.Context, res stack.ResourceSpec) (string, error)
}

// MonitoringProvisioner ensures the alarm set.
type MonitoringProvisioner interface {
	// EnsureAlarms upserts the spec's alarms against the instance and
	// returns their names.
	EnsureAlarms(ctx context.Context, res stack.ResourceSpec, instanceID string) ([]string, error)
}

// BackupProvisioner ensures backup coverage.
type BackupProvisioner interface {
	// EnsureBackupSelection confirms the deployment is selected by the
	// tag-based backup plan and returns the plan name.
	EnsureBackupSelection(ctx context.Context, res stack.ResourceSpec) (string, error)
}

// DNSProvisioner ensures the hosted zone records.
type DNSProvisioner interface {
	// EnsureDNSRecords upserts the record set, filling the A record
	// from the instance's public address, and returns the change id.
	EnsureDNSRecords(ctx context.Context, res stack.ResourceSpec, publicIP string) (string, error)
}

// Provisioner is the full backend surface the deploy pipeline drives.
type Provisioner interface {
	NetworkProvisioner
	ComputeProvisioner
	SecurityProvisioner
	StorageProvisioner
	SecretProvisioner
	MonitoringProvisioner
	BackupProvisioner
	DNSProvisioner
}

// Result collects the identifiers of a provisioned deployment, handed
// back to the invoking layer for display. The core never parses these.
type Result struct {
	VPCID           string
	SubnetID        string
	InstanceID      string
	PublicIP        string
	SecurityGroupID string
	BucketName      string
	SecretARN       string
	AlarmNames      []string
	BackupPlan      string
	DNSChangeID     string
	LogGroup        string
}
