package handlers

import (
	"context"
	"fmt"

	"github.com/mailstead/mailstead/internal/policy"
)

// Validate resolves the configuration for an environment and reports
// policy findings. It returns an error only when a finding blocks
// deployment.
func Validate(_ context.Context, envFlag, configPath string, strictFlag bool) error {
	cfg, strict, err := resolveTarget(envFlag, configPath, strictFlag)
	if err != nil {
		return err
	}

	issues := policy.Validate(cfg, strict)
	if len(issues) == 0 {
		fmt.Printf("%s: configuration OK\n", cfg.Environment)
		return nil
	}

	fmt.Printf("%s: %d finding(s)\n", cfg.Environment, len(issues))
	printIssues(issues)

	return policy.ErrorIfBlocked(issues, strict)
}
