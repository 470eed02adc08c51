package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/mailstead/mailstead/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// stdinIsTerminal reports whether stdin is an interactive terminal.
	stdinIsTerminal = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}

	// runWizard runs the interactive wizard.
	runWizard = config.RunWizard

	// writeOverrides writes the overrides file.
	writeOverrides = config.WriteOverrides
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if !stdinIsTerminal() {
		return fmt.Errorf("init requires an interactive terminal; write %s directly instead", config.DefaultOverridesFile)
	}

	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return err
	}

	if err := writeOverrides(outputPath, result.ToOverrides()); err != nil {
		return err
	}

	printInitSuccess(outputPath, result)
	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("mailstead - Mail server on AWS")
	fmt.Println("==============================")
	fmt.Println()
	fmt.Println("This wizard creates an overrides file with the values a")
	fmt.Println("deployment needs. Everything else comes from the environment")
	fmt.Println("profile.")
	fmt.Println()
}

// printInitSuccess prints the summary and next steps.
func printInitSuccess(outputPath string, result *config.WizardResult) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Summary")
	fmt.Println("-------")
	fmt.Printf("  Environment: %s\n", result.Environment)
	fmt.Printf("  Key pair:    %s\n", result.KeyPairName)
	if result.OfficeCIDR != "" {
		fmt.Printf("  SSH from:    %s\n", result.OfficeCIDR)
	}
	if result.DomainName != "" {
		fmt.Printf("  Domain:      %s\n", result.DomainName)
	}
	if result.HostedZoneID != "" {
		fmt.Printf("  Hosted zone: %s\n", result.HostedZoneID)
	}
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Point the CLI at the target environment:")
	fmt.Printf("     export %s=%s\n", config.EnvVarEnvironment, result.Environment)
	fmt.Println()
	fmt.Println("  2. Review the plan:")
	fmt.Println("     mailstead plan")
	fmt.Println()
	fmt.Println("  3. Deploy:")
	fmt.Println("     mailstead deploy")
	fmt.Println()
}
