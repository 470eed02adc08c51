package commands

import (
	"github.com/spf13/cobra"

	"github.com/mailstead/mailstead/cmd/mailstead/handlers"
)

// Plan returns the command for rendering the deployment plan.
//
// The plan is the fully composed and tagged resource set for an
// environment, printed without touching AWS.
//
// Optional flags:
//
//	--env, -e: Target environment (default: MAILSTEAD_ENV or dev)
//	--config, -c: Path to overrides YAML file (default: auto-detect mailstead.yaml)
//	--strict: Escalate policy warnings to errors
//	--output, -o: Output format, yaml or json (default: yaml)
func Plan() *cobra.Command {
	var (
		env        string
		configPath string
		strict     bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Render the deployment plan without deploying",
		Long: `Render the deployment plan for an environment.

The plan shows every resource that a deploy would create, fully
resolved and tagged, without making any AWS calls. Policy warnings
are printed alongside; with --strict they become blocking errors.

Examples:
  # Plan the dev environment
  mailstead plan

  # Plan production as JSON
  mailstead plan -e production -o json

  # Fail the plan on any policy finding
  mailstead plan -e production --strict`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Plan(cmd.Context(), env, configPath, strict, output)
		},
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Target environment (dev, staging, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to overrides file (default: mailstead.yaml)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Escalate policy warnings to errors")
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format: yaml or json")

	return cmd
}
