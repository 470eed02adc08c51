// Package stack composes a resolved configuration into an ordered
// deployment specification.
//
// A [DeploymentSpec] is a pure value: a fixed-order list of typed
// resource specifications plus the configuration they were derived
// from. Composing the same configuration twice yields byte-for-byte
// identical output, which makes plans diffable. Nothing in this
// package talks to a cloud API; materializing the spec is the
// provisioning backend's job.
package stack

import (
	"github.com/mailstead/mailstead/internal/config"
)

// Kind identifies a resource specification type.
type Kind string

const (
	KindNetwork    Kind = "network"
	KindCompute    Kind = "compute"
	KindSecurity   Kind = "security"
	KindStorage    Kind = "storage"
	KindSecret     Kind = "secret"
	KindMonitoring Kind = "monitoring"
	KindBackup     Kind = "backup"
	KindDNS        Kind = "dns"
)

// ResourceSpec is a declarative, kind-tagged description of one
// infrastructure resource. Exactly one of the kind-specific attribute
// fields is set, matching Kind.
type ResourceSpec struct {
	Kind Kind              `yaml:"kind"`
	Name string            `yaml:"name"`
	Tags map[string]string `yaml:"tags,omitempty"`

	Network    *NetworkSpec    `yaml:"network,omitempty"`
	Compute    *ComputeSpec    `yaml:"compute,omitempty"`
	Security   *SecuritySpec   `yaml:"security,omitempty"`
	Storage    *StorageSpec    `yaml:"storage,omitempty"`
	Secret     *SecretSpec     `yaml:"secret,omitempty"`
	Monitoring *MonitoringSpec `yaml:"monitoring,omitempty"`
	Backup     *BackupSpec     `yaml:"backup,omitempty"`
	DNS        *DNSSpec        `yaml:"dns,omitempty"`
}

// NetworkSpec describes one routable network with a single publicly
// addressable subnet.
type NetworkSpec struct {
	CIDR           string `yaml:"cidr"`
	SubnetName     string `yaml:"subnet_name"`
	SubnetCIDR     string `yaml:"subnet_cidr"`
	MapPublicIP    bool   `yaml:"map_public_ip"`
	InternetFacing bool   `yaml:"internet_facing"`
}

// ComputeSpec describes the mail server instance.
type ComputeSpec struct {
	InstanceType string `yaml:"instance_type"`
	VolumeSizeGB int    `yaml:"volume_size_gb"`
	KeyPairName  string `yaml:"key_pair_name"`
	SubnetName   string `yaml:"subnet_name"`
}

// IngressRule describes one allowed inbound flow.
type IngressRule struct {
	Protocol    string   `yaml:"protocol"`
	Port        int      `yaml:"port"`
	SourceCIDRs []string `yaml:"source_cidrs"`
	Description string   `yaml:"description"`
}

// SecuritySpec describes the instance's access-control group.
type SecuritySpec struct {
	Ingress []IngressRule `yaml:"ingress"`
}

// StorageSpec describes the object-storage container for mail data.
type StorageSpec struct {
	BucketName string `yaml:"bucket_name"`
	Versioned  bool   `yaml:"versioned"`
}

// SecretSpec describes the credential store entry holding server
// authentication material.
type SecretSpec struct {
	SecretName  string `yaml:"secret_name"`
	Description string `yaml:"description"`
}

// AlarmSpec describes one CloudWatch alarm.
type AlarmSpec struct {
	Name              string  `yaml:"name"`
	Metric            string  `yaml:"metric"`
	Threshold         float64 `yaml:"threshold"`
	EvaluationPeriods int     `yaml:"evaluation_periods"`
	PeriodSeconds     int     `yaml:"period_seconds"`
}

// MonitoringSpec describes the alarm set for the instance.
type MonitoringSpec struct {
	Alarms []AlarmSpec `yaml:"alarms"`
}

// BackupSpec describes the backup plan for the instance and volume.
type BackupSpec struct {
	PlanName      string `yaml:"plan_name"`
	ScheduleCron  string `yaml:"schedule_cron"`
	RetentionDays int    `yaml:"retention_days"`
}

// DNSRecord describes one record in the hosted zone. Records whose
// value depends on provisioned infrastructure (the A record target)
// carry an empty Value; the backend fills it from the instance's
// public address.
type DNSRecord struct {
	Type  string `yaml:"type"`
	Name  string `yaml:"name"`
	Value string `yaml:"value,omitempty"`
}

// DNSSpec describes the record set for the mail domain.
type DNSSpec struct {
	DomainName   string      `yaml:"domain_name"`
	HostedZoneID string      `yaml:"hosted_zone_id"`
	Records      []DNSRecord `yaml:"records"`
}

// DeploymentSpec is the composed deployment: an ordered resource list
// plus the configuration it was derived from.
type DeploymentSpec struct {
	Config    *config.Resolved `yaml:"config"`
	Resources []ResourceSpec   `yaml:"resources"`
}

// Resource returns the first resource of the given kind, or nil.
func (d *DeploymentSpec) Resource(kind Kind) *ResourceSpec {
	for i := range d.Resources {
		if d.Resources[i].Kind == kind {
			return &d.Resources[i]
		}
	}
	return nil
}

// Kinds returns the resource kinds in composed order.
func (d *DeploymentSpec) Kinds() []Kind {
	kinds := make([]Kind, len(d.Resources))
	for i, r := range d.Resources {
		kinds[i] = r.Kind
	}
	return kinds
}
