// Package main is the entry point for the mailstead CLI.
//
// mailstead resolves per-environment mail server configuration,
// validates it against deployment policy, and provisions the
// resulting resources on AWS.
//
// Commands: init, plan, validate, deploy, environments, cost, keygen.
//
// For detailed usage information, run:
//
//	mailstead --help
package main

import (
	"fmt"
	"os"

	"github.com/mailstead/mailstead/cmd/mailstead/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
