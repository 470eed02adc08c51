package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	t.Parallel()

	got := NewBuilder("Mailstead", "mailstead").
		WithEnvironment("staging").
		WithCostCenter("Staging").
		Build()

	assert.Equal(t, map[string]string{
		KeyProject:     "Mailstead",
		KeyManagedBy:   "mailstead",
		KeyEnvironment: "staging",
		KeyCostCenter:  "Staging",
	}, got)
}

func TestBuilder_WithBackupRequired(t *testing.T) {
	t.Parallel()

	got := NewBuilder("Mailstead", "mailstead").
		WithEnvironment("production").
		WithCostCenter("Production").
		WithBackupRequired().
		Build()

	assert.Len(t, got, 5)
	assert.Equal(t, BackupRequired, got[KeyBackup])
}

func TestBuilder_BuildReturnsCopy(t *testing.T) {
	t.Parallel()

	b := NewBuilder("Mailstead", "mailstead")
	first := b.Build()
	first[KeyProject] = "mutated"

	assert.Equal(t, "Mailstead", b.Build()[KeyProject])
}

func TestBuilder_Merge(t *testing.T) {
	t.Parallel()

	got := NewBuilder("Mailstead", "mailstead").
		Merge(map[string]string{"Team": "platform", KeyProject: "Renamed"}).
		Build()

	assert.Equal(t, "platform", got["Team"])
	assert.Equal(t, "Renamed", got[KeyProject], "merge overwrites on conflict")
}

func TestClone(t *testing.T) {
	t.Parallel()

	in := map[string]string{"a": "1"}
	out := Clone(in)
	out["a"] = "2"

	assert.Equal(t, "1", in["a"])
}
