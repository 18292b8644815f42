package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/roach88/advent/internal/config"
	"github.com/roach88/advent/internal/monkey"
	"github.com/roach88/advent/internal/parser"
	"github.com/roach88/advent/internal/puzzles"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Solving failure (bad input, failed scenarios, etc.)
	ExitCommandError = 2 // Command error (bad arguments, config not found, etc.)
)

// Error code constants, unified across all CLI commands.
const (
	ErrCodeGeneric    = "E001" // Generic/unknown error
	ErrCodeInput      = "E002" // Input file unreadable
	ErrCodeMalformed  = "E003" // Input not in the expected format
	ErrCodeContract   = "E004" // Simulator contract violation
	ErrCodeConfig     = "E005" // Configuration invalid or unreadable
	ErrCodeUnknownDay = "E006" // No solution for the requested day
	ErrCodeArgs       = "E007" // Invalid command arguments
	ErrCodeTestFailed = "E_TEST_FAILED"
)

// errorCode maps an error from the solving packages to an error code.
func errorCode(err error) string {
	var cfgErr *config.Error
	switch {
	case errors.Is(err, puzzles.ErrUnknownDay):
		return ErrCodeUnknownDay
	case errors.As(err, &cfgErr):
		return ErrCodeConfig
	case parser.IsCode(err, parser.CodeIO):
		return ErrCodeInput
	case parser.IsCode(err, parser.CodeRecord),
		parser.IsCode(err, parser.CodePattern),
		monkey.IsParseError(err):
		return ErrCodeMalformed
	case monkey.IsContractViolation(err):
		return ErrCodeContract
	}
	return ErrCodeGeneric
}

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Reported tells whether err was already written by a command, as every
// ExitError is. Other errors (cobra argument and flag errors) were not and
// still need printing.
func Reported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr)
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
	RunID     string // Attached to every JSON response
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`           // "ok" or "error"
	Data   any       `json:"data,omitempty"`   // success payload
	Error  *CLIError `json:"error,omitempty"`  // error details
	RunID  string    `json:"run_id,omitempty"` // correlates output with log lines
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E002", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
			RunID:  f.RunID,
		})
	}

	// Human-readable text output
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
// In text mode, details go to ErrWriter and only with --verbose.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
			RunID: f.RunID,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if details != nil {
		f.VerboseLog("Details: %v", details)
	}
	return nil
}

// Fail reports err through the formatter and returns an ExitError carrying
// exitCode, so the caller can return it straight from RunE.
func (f *OutputFormatter) Fail(exitCode int, message string, err error) error {
	if outErr := f.Error(errorCode(err), fmt.Sprintf("%s: %v", message, err), errorDetails(err)); outErr != nil {
		return outErr
	}
	return WrapExitError(exitCode, message, err)
}

// ErrorDetails holds the position of a failure inside the input.
type ErrorDetails map[string]any

// String renders the details as sorted key=value pairs.
func (d ErrorDetails) String() string {
	keys := slices.Sorted(maps.Keys(d))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, d[k])
	}
	return strings.Join(parts, " ")
}

// errorDetails extracts the input position from simulator and parser
// errors. It returns nil for errors that carry none.
func errorDetails(err error) any {
	var simErr *monkey.SimError
	if errors.As(err, &simErr) {
		d := ErrorDetails{"code": string(simErr.Code)}
		if simErr.Actor >= 0 {
			d["actor"] = simErr.Actor
		}
		if simErr.Round > 0 {
			d["round"] = simErr.Round
		}
		return d
	}

	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		d := ErrorDetails{"code": string(parseErr.Code)}
		if parseErr.Path != "" {
			d["path"] = parseErr.Path
		}
		if parseErr.Index >= 0 {
			d["index"] = parseErr.Index
			d["record"] = parseErr.Record
		}
		if parseErr.Pattern != "" {
			d["pattern"] = parseErr.Pattern
		}
		return d
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}
