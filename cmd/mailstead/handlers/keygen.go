package handlers

import (
	"fmt"
	"os"

	"github.com/mailstead/mailstead/internal/util/keygen"
)

// Factory function variables for keygen - can be replaced in tests.
var (
	generateRSA     = keygen.RSA
	generateEd25519 = keygen.Ed25519
	writeKeyFile    = os.WriteFile
)

// Keygen generates an SSH key pair and writes it to disk. The private
// key gets 0600 permissions; the public key lands next to it with a
// .pub suffix.
func Keygen(keyType string, bits int, outPath string) error {
	var (
		pair *keygen.KeyPair
		err  error
	)

	switch keyType {
	case "ed25519":
		pair, err = generateEd25519()
	case "rsa":
		pair, err = generateRSA(bits)
	default:
		return fmt.Errorf("unknown key type %q (expected ed25519 or rsa)", keyType)
	}
	if err != nil {
		return err
	}

	if err := writeKeyFile(outPath, pair.PrivateKey, 0o600); err != nil {
		return fmt.Errorf("failed to write private key: %w", err)
	}

	pubPath := outPath + ".pub"
	if err := writeKeyFile(pubPath, pair.PublicKey, 0o644); err != nil {
		return fmt.Errorf("failed to write public key: %w", err)
	}

	fmt.Printf("Private key: %s\n", outPath)
	fmt.Printf("Public key:  %s\n", pubPath)
	fmt.Println()
	fmt.Println("Import the public key as an EC2 key pair:")
	fmt.Printf("  aws ec2 import-key-pair --key-name mailstead --public-key-material fileb://%s\n", pubPath)
	return nil
}
