// Package main is the entry point for the numlist CLI.
//
// All functionality lives in the internal/cli package, which defines the
// cobra commands. Build-time variables (version, commit, date) are injected
// via ldflags and default to "dev", "none" and "unknown".
package main

import (
	"github.com/mmr-tortoise/numlist/internal/cli"
)

// version, commit, and date are set at build time via ldflags
// (-X main.version=...). They provide binary identification for the
// --version flag output.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
