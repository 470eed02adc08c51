// Package tags provides consistent tagging for mailstead cloud
// resources.
//
// Every resource in a deployment carries the same tag set so that
// ownership and cost attribution can be traced from the AWS console
// or billing exports without consulting the tool that created it.
package tags

// Standard tag keys.
const (
	// KeyEnvironment identifies the deployment environment.
	KeyEnvironment = "Environment"

	// KeyProject identifies the product.
	KeyProject = "Project"

	// KeyManagedBy identifies the provisioning tool.
	KeyManagedBy = "ManagedBy"

	// KeyCostCenter attributes the resource for billing.
	KeyCostCenter = "CostCenter"

	// KeyBackup marks resources whose backups are mandatory.
	KeyBackup = "Backup"
)

// BackupRequired is the value of the Backup tag on production
// resources.
const BackupRequired = "Required"

// Builder provides a fluent interface for assembling a resource tag
// map.
type Builder struct {
	tags map[string]string
}

// NewBuilder creates a builder with the project and tool identity
// pre-set.
func NewBuilder(project, managedBy string) *Builder {
	return &Builder{
		tags: map[string]string{
			KeyProject:   project,
			KeyManagedBy: managedBy,
		},
	}
}

// WithEnvironment adds the environment tag.
func (b *Builder) WithEnvironment(env string) *Builder {
	b.tags[KeyEnvironment] = env
	return b
}

// WithCostCenter adds the cost-center tag.
func (b *Builder) WithCostCenter(costCenter string) *Builder {
	b.tags[KeyCostCenter] = costCenter
	return b
}

// WithBackupRequired marks the resource set as backup-mandatory.
func (b *Builder) WithBackupRequired() *Builder {
	b.tags[KeyBackup] = BackupRequired
	return b
}

// Merge adds all tags from the provided map, overwriting on conflict.
func (b *Builder) Merge(extra map[string]string) *Builder {
	for k, v := range extra {
		b.tags[k] = v
	}
	return b
}

// Build returns a copy of the tag map. Returning a copy keeps the
// builder reusable and the result safe from later mutation.
func (b *Builder) Build() map[string]string {
	out := make(map[string]string, len(b.tags))
	for k, v := range b.tags {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy of a tag map. Used when applying
// one computed tag set to many resources.
func Clone(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
