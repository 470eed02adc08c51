package commands

import (
	"github.com/spf13/cobra"

	"github.com/mailstead/mailstead/cmd/mailstead/handlers"
)

// Cost returns the command for estimating monthly deployment cost.
func Cost() *cobra.Command {
	var (
		env        string
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Estimate the monthly cost of an environment",
		Long: `Estimate the monthly cost of deploying an environment.

The estimate is built from the resolved configuration: instance,
volume, and the optional monitoring, backup, and DNS line items that
the environment would actually deploy. Prices are approximate
on-demand USD rates, not a billing source.

Examples:
  # Estimate the dev environment
  mailstead cost

  # Estimate production as JSON
  mailstead cost -e production --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Cost(cmd.Context(), env, configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Target environment (dev, staging, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to overrides file (default: mailstead.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
