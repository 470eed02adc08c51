package commands

import (
	"github.com/spf13/cobra"

	"github.com/mailstead/mailstead/cmd/mailstead/handlers"
)

// Deploy returns the command for provisioning the mail server stack.
//
// This command runs the full pipeline: resolve, validate, compose,
// tag, and provision each resource on AWS in deterministic order.
//
// Environment variables:
//
//	MAILSTEAD_ENV: Target environment when --env is not given
//	MAILSTEAD_KEY_PAIR: EC2 key pair name
//	AWS credentials via the standard SDK chain
func Deploy() *cobra.Command {
	var (
		env        string
		configPath string
		strict     bool
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Provision the mail server stack on AWS",
		Long: `Provision the mail server stack for an environment.

The deploy pipeline resolves configuration, checks it against policy,
composes the resource set, and provisions each resource in order.
Provisioning is idempotent: existing resources are found and reused.

Use --dry-run to execute the pipeline against a stub backend that
records calls without touching AWS.

Examples:
  # Deploy dev using mailstead.yaml in the current directory
  mailstead deploy

  # Deploy production with strict policy enforcement
  mailstead deploy -e production --strict

  # Walk the pipeline without AWS calls
  mailstead deploy -e staging --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Deploy(cmd.Context(), env, configPath, strict, dryRun)
		},
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Target environment (dev, staging, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to overrides file (default: mailstead.yaml)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Escalate policy warnings to errors")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run the pipeline without AWS calls")

	return cmd
}
