package stack

import (
	"github.com/mailstead/mailstead/internal/config"
	"github.com/mailstead/mailstead/internal/util/tags"
)

// Tag returns a new deployment spec in which every resource carries
// the configuration's tag map. Resource ordering and all non-tag
// attributes are untouched; each resource gets its own copy of the
// map so mutating one resource's tags cannot leak into another.
func Tag(spec *DeploymentSpec, cfg *config.Resolved) *DeploymentSpec {
	tagged := &DeploymentSpec{
		Config:    cfg,
		Resources: make([]ResourceSpec, len(spec.Resources)),
	}
	for i, r := range spec.Resources {
		r.Tags = tags.Clone(cfg.Tags)
		tagged.Resources[i] = r
	}
	return tagged
}
