// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/mailstead/mailstead/internal/config"
	"github.com/mailstead/mailstead/internal/policy"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// environFromOS snapshots the process environment.
	environFromOS = config.EnvironFromOS

	// loadOverrides reads the overrides file.
	loadOverrides = config.LoadOverrides
)

// resolveTarget merges the --env flag, the overrides file, and the
// process environment into a resolved configuration. The flag wins
// over MAILSTEAD_ENV; an unknown environment name is an error.
func resolveTarget(envFlag, configPath string, strictFlag bool) (*config.Resolved, bool, error) {
	processEnv := environFromOS()

	env := config.Environment(envFlag)
	if envFlag == "" {
		env = config.EnvironmentFromEnv(processEnv)
	}

	overrides, err := loadOverrides(configPath)
	if err != nil {
		return nil, false, err
	}

	cfg, err := config.Resolve(env, overrides, processEnv)
	if err != nil {
		return nil, false, err
	}

	strict := strictFlag || config.StrictFromEnv(processEnv)
	return cfg, strict, nil
}

// newLogger builds the plain-text logger used by the deploy pipeline.
func newLogger() logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Printf("%s: %s\n", prefix, args)
			return
		}
		fmt.Println(args)
	}, funcr.Options{})
}

// printIssues writes policy findings, one per line.
func printIssues(issues []policy.Issue) {
	for _, issue := range issues {
		fmt.Printf("  %s\n", issue.String())
	}
}
