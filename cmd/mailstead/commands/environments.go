package commands

import (
	"github.com/spf13/cobra"

	"github.com/mailstead/mailstead/cmd/mailstead/handlers"
)

// Environments returns the command listing the built-in environment
// profiles.
func Environments() *cobra.Command {
	return &cobra.Command{
		Use:   "environments",
		Short: "List environment profiles and their defaults",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Environments()
		},
	}
}
