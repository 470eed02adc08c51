package commands

import (
	"github.com/spf13/cobra"

	"github.com/mailstead/mailstead/cmd/mailstead/handlers"
)

// Validate returns the command for checking configuration against
// deployment policy.
func Validate() *cobra.Command {
	var (
		env        string
		configPath string
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check configuration against deployment policy",
		Long: `Resolve the configuration for an environment and check it
against deployment policy.

Findings are printed with their severity. The command exits non-zero
only when a finding is blocking: production without backups is always
an error, and --strict escalates warnings as well.

Examples:
  # Validate the staging environment
  mailstead validate -e staging

  # Treat every finding as blocking
  mailstead validate -e production --strict`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Validate(cmd.Context(), env, configPath, strict)
		},
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Target environment (dev, staging, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to overrides file (default: mailstead.yaml)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Escalate policy warnings to errors")

	return cmd
}
