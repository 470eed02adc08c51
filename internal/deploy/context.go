// Package deploy runs the deployment pipeline: validate, compose,
// tag, provision.
//
// Each phase is pure except the final provisioning phase, which
// drives the backend. Phases communicate through [State], populated in
// order; there is no retry loop and no suspension point between
// phases.
package deploy

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/mailstead/mailstead/internal/aws"
	"github.com/mailstead/mailstead/internal/config"
	"github.com/mailstead/mailstead/internal/policy"
	"github.com/mailstead/mailstead/internal/stack"
)

// State holds the shared results of pipeline phases, progressively
// populated as each phase completes.
type State struct {
	// Issues is the validation outcome (populated by the validation
	// phase; warnings only if the pipeline proceeded).
	Issues []policy.Issue

	// Spec is the composed, tagged deployment (populated by the
	// composition phase).
	Spec *stack.DeploymentSpec

	// Result holds the provisioned identifiers (populated by the
	// provisioning phase).
	Result aws.Result
}

// Context wraps the dependencies and state a pipeline run needs.
type Context struct {
	context.Context

	// Config is the resolved configuration, read-only for all phases.
	Config *config.Resolved

	// Strict escalates specific validation warnings to blocking
	// errors.
	Strict bool

	// Backend materializes the composed spec. The mock backend makes
	// a dry run.
	Backend aws.Provisioner

	// Log receives structured phase and resource events.
	Log logr.Logger

	// State accumulates phase results.
	State *State
}

// NewContext creates a pipeline context.
func NewContext(ctx context.Context, cfg *config.Resolved, strict bool, backend aws.Provisioner, log logr.Logger) *Context {
	return &Context{
		Context: ctx,
		Config:  cfg,
		Strict:  strict,
		Backend: backend,
		Log:     log,
		State:   &State{},
	}
}
