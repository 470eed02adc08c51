package commands

import (
	"github.com/spf13/cobra"

	"github.com/mailstead/mailstead/cmd/mailstead/handlers"
)

// Init returns the command for interactively creating an overrides
// file.
//
// Flags:
//
//	--output, -o: Path to output file (default "mailstead.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create an overrides file",
		Long: `Interactively create an overrides file.

This command walks you through the values a deployment needs:

  - Target environment
  - EC2 key pair for SSH access
  - Optional office CIDR to restrict SSH
  - Optional mail domain and Route53 hosted zone

Everything else comes from the environment profile. The wizard
requires an interactive terminal; in scripts, write the YAML file
directly instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "mailstead.yaml", "Output file path")

	return cmd
}
