// Package main is the entry point for the textdoc CLI.
package main

import (
	"os"

	"github.com/dshills/textdoc/internal/cli"
	"github.com/dshills/textdoc/internal/logging"
)

// version is set at build time via ldflags.
//
//nolint:gochecknoglobals // must be package-level for ldflags injection
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := cli.NewRootCommand(version)
	if err := rootCmd.Execute(); err != nil {
		logging.Default().Error("command failed", "error", err)
		return 1
	}
	return 0
}
