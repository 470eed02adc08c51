package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailstead/mailstead/internal/config"
	"github.com/mailstead/mailstead/internal/util/tags"
)

func TestTag_AppliesConfigTags(t *testing.T) {
	t.Parallel()
	cfg := resolved(t, config.EnvStaging, config.Overrides{})
	spec, err := Compose(cfg)
	require.NoError(t, err)

	tagged := Tag(spec, cfg)
	require.Len(t, tagged.Resources, len(spec.Resources))

	for _, r := range tagged.Resources {
		assert.Len(t, r.Tags, 4, "non-production resources carry exactly 4 tags")
		assert.Equal(t, "staging", r.Tags[tags.KeyEnvironment])
		assert.Equal(t, config.ProjectLabel, r.Tags[tags.KeyProject])
		assert.Equal(t, config.ManagedByLabel, r.Tags[tags.KeyManagedBy])
		assert.Equal(t, "Staging", r.Tags[tags.KeyCostCenter])
	}
}

func TestTag_ProductionBackupTag(t *testing.T) {
	t.Parallel()
	cfg := resolved(t, config.EnvProduction, config.Overrides{})
	spec, err := Compose(cfg)
	require.NoError(t, err)

	for _, r := range Tag(spec, cfg).Resources {
		assert.Len(t, r.Tags, 5, "production resources carry the extra Backup tag")
		assert.Equal(t, tags.BackupRequired, r.Tags[tags.KeyBackup])
	}
}

func TestTag_PreservesOrderAndAttributes(t *testing.T) {
	t.Parallel()
	cfg := resolved(t, config.EnvProduction, config.Overrides{
		DomainName:   "mail.corp.example",
		HostedZoneID: "Z1",
	})
	spec, err := Compose(cfg)
	require.NoError(t, err)

	tagged := Tag(spec, cfg)
	assert.Equal(t, spec.Kinds(), tagged.Kinds())

	for i := range spec.Resources {
		assert.Equal(t, spec.Resources[i].Name, tagged.Resources[i].Name)
		assert.Equal(t, spec.Resources[i].Compute, tagged.Resources[i].Compute)
		assert.Equal(t, spec.Resources[i].Security, tagged.Resources[i].Security)
	}
}

func TestTag_CopiesPerResource(t *testing.T) {
	t.Parallel()
	cfg := resolved(t, config.EnvDev, config.Overrides{})
	spec, err := Compose(cfg)
	require.NoError(t, err)

	tagged := Tag(spec, cfg)
	tagged.Resources[0].Tags["Extra"] = "x"

	assert.NotContains(t, tagged.Resources[1].Tags, "Extra", "each resource owns its tag map")
	assert.NotContains(t, cfg.Tags, "Extra", "config tags are never mutated")
}
