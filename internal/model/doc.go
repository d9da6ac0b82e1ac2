// Package model defines the shared value types of the numlist CLI.
//
// It holds the NaN policy enumeration, the process exit codes (ExitCode),
// and the CLIError type that carries an exit code from any command up to
// the cli package, where it is translated into an OS exit status.
//
// The package has no dependencies outside the standard library so that
// every other internal package can import it.
package model
