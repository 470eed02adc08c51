package commands

import (
	"github.com/spf13/cobra"

	"github.com/mailstead/mailstead/cmd/mailstead/handlers"
)

// Keygen returns the command for generating an SSH key pair.
func Keygen() *cobra.Command {
	var (
		keyType string
		bits    int
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an SSH key pair for instance access",
		Long: `Generate an SSH key pair for instance access.

The private key is written with 0600 permissions; the public key is
written next to it with a .pub suffix, in authorized_keys format
ready for import as an EC2 key pair.

Examples:
  # Generate an ed25519 key (default)
  mailstead keygen

  # Generate a 4096-bit RSA key at a specific path
  mailstead keygen --type rsa --bits 4096 -o ./mailstead_key`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Keygen(keyType, bits, outPath)
		},
	}

	cmd.Flags().StringVar(&keyType, "type", "ed25519", "Key type: ed25519 or rsa")
	cmd.Flags().IntVarP(&bits, "bits", "b", 4096, "Key size for RSA keys")
	cmd.Flags().StringVarP(&outPath, "output", "o", "mailstead_key", "Private key output path")

	return cmd
}
