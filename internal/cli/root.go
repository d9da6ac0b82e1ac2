// Package cli implements the cobra-based command line of numlist.
//
// The root command starts the interactive calculator session. The stats
// subcommand summarizes a numbers file without a session. This file defines
// the root command, the global flags, and the shared error and verbose
// output helpers.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mmr-tortoise/numlist/internal/logging"
	"github.com/mmr-tortoise/numlist/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	// Only non-interactive output (stats, errors) is affected.
	jsonOutput bool

	// verbose enables debug logging to stderr.
	verbose bool

	// nanPolicy overrides the configured NaN policy when non-empty.
	nanPolicy string
)

// logger is the process-wide logger, built from the --verbose flag before
// any command runs. The interactive command rebuilds it on the terminal's
// error stream once the terminal is in raw mode.
var logger = zap.NewNop()

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// Running it without a subcommand starts the interactive session.
func NewRootCommand() *cobra.Command {
	flags := &interactiveFlags{}

	rootCmd := &cobra.Command{
		Use:   "numlist",
		Short: "Interactive calculator over a list of numbers",
		Long: `numlist keeps a list of numbers in memory. Type a number to append it,
or a command to inspect and summarize the list: total, product, mean,
median, range, smallest, largest, ordered views. Lists can be imported
from and exported to text files with one number per line.

Type "help" inside the session for the list of commands.`,

		Args: cobra.NoArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = logging.New(os.Stderr, verbose)
			if nanPolicy != "" {
				if _, err := model.ParseNaNPolicy(nanPolicy); err != nil {
					return model.WrapCLIError(model.ExitConfigError, "invalid --nan flag", err)
				}
			}
			return nil
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(flags, os.Stdin, os.Stdout, os.Stderr)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&nanPolicy, "nan", "", "NaN policy: allow or reject (default from config, else allow)")

	rootCmd.Flags().StringVar(&flags.configPath, "config", "",
		"Config file (.yaml, .yml, .json, .jsonc; default $HOME/.numlist.yaml)")
	rootCmd.Flags().StringArrayVarP(&flags.imports, "import", "i", nil,
		"Import a numbers file before the first prompt (repeatable)")

	rootCmd.AddCommand(NewStatsCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// CLIError types carry their own exit codes; other errors default to
// exit code 1.
func Execute(rootCmd *cobra.Command) {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err == nil {
		return
	}

	if cliErr, ok := err.(*model.CLIError); ok {
		printError(cliErr.Message, cliErr.Err)
		os.Exit(int(cliErr.Code))
	}

	printError(err.Error(), nil)
	os.Exit(int(model.ExitGeneralError))
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}

// VerboseLog writes a debug record when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	logger.Sugar().Debugf(format, args...)
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}

// resolveNaNPolicy returns the --nan flag value when set, else fallback.
// The flag was validated in PersistentPreRunE.
func resolveNaNPolicy(fallback model.NaNPolicy) model.NaNPolicy {
	if nanPolicy == "" {
		return fallback
	}
	policy, err := model.ParseNaNPolicy(nanPolicy)
	if err != nil {
		return fallback
	}
	return policy
}
