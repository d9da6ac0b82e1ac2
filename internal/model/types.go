package model

import (
	"fmt"
	"strings"
)

// NaNPolicy controls whether NaN values may enter the number list.
//
// Text-to-float parsing accepts "NaN", but NaN has no position under the
// ordinary ordering used by min/max. The policy lets the user either keep
// such values (they are ordered before every other value when sorting) or
// refuse them at input time.
type NaNPolicy string

const (
	// NaNAllow keeps NaN values. This is the default.
	NaNAllow NaNPolicy = "allow"

	// NaNReject refuses NaN values typed at the prompt or found in an
	// imported file.
	NaNReject NaNPolicy = "reject"
)

// String returns the string representation of NaNPolicy.
func (p NaNPolicy) String() string {
	return string(p)
}

// IsValid reports whether p is one of the predefined policies.
func (p NaNPolicy) IsValid() bool {
	switch p {
	case NaNAllow, NaNReject:
		return true
	default:
		return false
	}
}

// ParseNaNPolicy converts a string to a NaNPolicy.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseNaNPolicy(s string) (NaNPolicy, error) {
	policy := NaNPolicy(strings.ToLower(strings.TrimSpace(s)))
	if !policy.IsValid() {
		return "", fmt.Errorf("invalid NaN policy: %q (valid: allow, reject)", s)
	}
	return policy, nil
}

// ExitCode defines the process exit codes of the numlist binary.
// The interactive session always exits with ExitSuccess; the other codes
// are produced by start-up failures and by the non-interactive commands.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitConfigError indicates the configuration file or a flag value
	// could not be loaded or failed validation.
	ExitConfigError ExitCode = 2

	// ExitFileError indicates a numbers file could not be opened or read.
	ExitFileError ExitCode = 3

	// ExitEmptyList indicates an aggregate was requested over no values.
	ExitEmptyList ExitCode = 4

	// ExitTerminalError indicates the terminal could not be set up for
	// interactive input.
	ExitTerminalError ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
