// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated
// to handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the mailstead CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mailstead",
		Short: "Deploy a managed mail server on AWS",
	}

	// Core commands
	cmd.AddCommand(Init())
	cmd.AddCommand(Plan())
	cmd.AddCommand(Validate())
	cmd.AddCommand(Deploy())

	// Utility commands
	cmd.AddCommand(Environments())
	cmd.AddCommand(Cost())
	cmd.AddCommand(Keygen())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
