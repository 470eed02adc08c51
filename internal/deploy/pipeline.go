package deploy

import (
	"fmt"
	"time"
)

// Phase is one stage of the deployment pipeline.
type Phase interface {
	// Name identifies the phase in logs and error messages.
	Name() string

	// Run executes the phase, reading and extending ctx.State.
	Run(ctx *Context) error
}

// Phases returns the pipeline in execution order.
func Phases() []Phase {
	return []Phase{
		&ValidationPhase{},
		&CompositionPhase{},
		&ProvisionPhase{},
	}
}

// Run executes phases sequentially, stopping at the first failure.
func Run(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Log.Info("starting deployment pipeline", "environment", ctx.Config.Environment, "phases", len(phases))

	for i, phase := range phases {
		phaseStart := time.Now()
		ctx.Log.Info("phase starting", "phase", phase.Name(), "step", fmt.Sprintf("%d/%d", i+1, len(phases)))

		if err := phase.Run(ctx); err != nil {
			ctx.Log.Error(err, "phase failed", "phase", phase.Name())
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		ctx.Log.Info("phase completed", "phase", phase.Name(), "elapsed", time.Since(phaseStart).Round(time.Millisecond).String())
	}

	ctx.Log.Info("pipeline completed", "elapsed", time.Since(start).Round(time.Millisecond).String())
	return nil
}
