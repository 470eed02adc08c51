package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mailstead/mailstead/internal/policy"
	"github.com/mailstead/mailstead/internal/stack"
)

// Plan resolves, validates, and composes the deployment for an
// environment, then renders it without touching AWS.
func Plan(_ context.Context, envFlag, configPath string, strictFlag bool, output string) error {
	if output != "yaml" && output != "json" {
		return fmt.Errorf("unknown output format %q (expected yaml or json)", output)
	}

	cfg, strict, err := resolveTarget(envFlag, configPath, strictFlag)
	if err != nil {
		return err
	}

	issues := policy.Validate(cfg, strict)
	if len(issues) > 0 {
		fmt.Println("Policy findings:")
		printIssues(issues)
		fmt.Println()
	}
	if err := policy.ErrorIfBlocked(issues, strict); err != nil {
		return err
	}

	spec, err := stack.Compose(cfg)
	if err != nil {
		return err
	}
	spec = stack.Tag(spec, cfg)

	rendered, err := renderSpec(spec, output)
	if err != nil {
		return err
	}
	fmt.Print(rendered)
	return nil
}

// renderSpec marshals the deployment spec. JSON output round-trips
// through YAML so both formats share the same field names.
func renderSpec(spec *stack.DeploymentSpec, output string) (string, error) {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plan: %w", err)
	}
	if output == "yaml" {
		return string(data), nil
	}

	var generic map[string]interface{}
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return "", fmt.Errorf("failed to convert plan: %w", err)
	}
	b, err := json.MarshalIndent(generic, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}
	return string(b) + "\n", nil
}
