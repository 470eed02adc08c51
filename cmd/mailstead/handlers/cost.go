package handlers

import (
	"context"
	"fmt"

	"github.com/mailstead/mailstead/internal/pricing"
)

// Cost estimates the monthly cost of an environment from its resolved
// configuration.
func Cost(_ context.Context, envFlag, configPath string, jsonOutput bool) error {
	cfg, _, err := resolveTarget(envFlag, configPath, false)
	if err != nil {
		return err
	}

	estimate := pricing.NewCalculator().Calculate(cfg)
	formatter := pricing.NewFormatter()

	if jsonOutput {
		fmt.Println(formatter.FormatJSON(estimate))
		return nil
	}

	fmt.Print(formatter.Format(estimate))
	return nil
}
