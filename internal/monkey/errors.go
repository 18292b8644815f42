package monkey

import (
	"errors"
	"fmt"
)

// SimError is returned for every failure while building or running a simulation.
//
// Parse errors come from bad input. Every other code is a contract violation:
// the setup or the caller broke an invariant the simulator relies on.
type SimError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Actor is the index of the actor involved, or -1.
	Actor int

	// Round is the 1-based round in progress, or 0 outside a run.
	Round int

	// Err is the underlying cause, if any.
	Err error
}

// ErrorCode categorizes simulator errors.
type ErrorCode string

const (
	// ErrCodeParse indicates a setup block did not match the expected format.
	ErrCodeParse ErrorCode = "PARSE_FAILED"

	// ErrCodeInvalidRoute indicates a route names a missing actor or the actor itself.
	ErrCodeInvalidRoute ErrorCode = "INVALID_ROUTE"

	// ErrCodeInvalidThreshold indicates a zero threshold.
	ErrCodeInvalidThreshold ErrorCode = "INVALID_THRESHOLD"

	// ErrCodeEmptyQueue indicates an inspection was attempted on an empty queue.
	ErrCodeEmptyQueue ErrorCode = "EMPTY_QUEUE"

	// ErrCodeOverflow indicates a value left the uint64 range.
	ErrCodeOverflow ErrorCode = "OVERFLOW"

	// ErrCodeInvalidState indicates an operation was called in the wrong lifecycle state.
	ErrCodeInvalidState ErrorCode = "INVALID_STATE"
)

// Error implements the error interface.
func (e *SimError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Actor >= 0 && e.Round > 0 {
		msg = fmt.Sprintf("%s (actor=%d, round=%d)", msg, e.Actor, e.Round)
	} else if e.Actor >= 0 {
		msg = fmt.Sprintf("%s (actor=%d)", msg, e.Actor)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *SimError) Unwrap() error {
	return e.Err
}

// IsParseError returns true if err is a setup parse failure.
func IsParseError(err error) bool {
	var se *SimError
	if errors.As(err, &se) {
		return se.Code == ErrCodeParse
	}
	return false
}

// IsContractViolation returns true for every simulator error that is not a
// parse failure.
func IsContractViolation(err error) bool {
	var se *SimError
	if errors.As(err, &se) {
		return se.Code != ErrCodeParse
	}
	return false
}

func newParseError(block int, text string, format string, args ...any) *SimError {
	return &SimError{
		Code:    ErrCodeParse,
		Message: fmt.Sprintf("block %d: %s: %q", block, fmt.Sprintf(format, args...), text),
		Actor:   block,
	}
}
