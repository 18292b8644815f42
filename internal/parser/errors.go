package parser

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes parse failures.
type ErrorCode string

const (
	// CodeIO indicates the input file could not be read.
	CodeIO ErrorCode = "IO"

	// CodePattern indicates a boundary pattern failed to compile.
	CodePattern ErrorCode = "PATTERN"

	// CodeRecord indicates a record was not in the expected shape.
	CodeRecord ErrorCode = "RECORD"
)

// Error is returned by every function in this package.
type Error struct {
	Code ErrorCode

	// Path is the input file, when known.
	Path string

	// Index is the zero-based record index, or -1 when no single record is at fault.
	Index int

	// Record is the offending record text, when Index >= 0.
	Record string

	// Pattern is the offending pattern for CodePattern errors.
	Pattern string

	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Code == CodePattern:
		return fmt.Sprintf("%s: invalid pattern %q: %v", e.Code, e.Pattern, e.Err)
	case e.Index >= 0 && e.Path != "":
		return fmt.Sprintf("%s: %s: record %d %q: %v", e.Code, e.Path, e.Index, e.Record, e.Err)
	case e.Index >= 0:
		return fmt.Sprintf("%s: record %d %q: %v", e.Code, e.Index, e.Record, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// RecordError builds a CodeRecord error for a single malformed record.
// Solutions use it so bad input is reported with its position.
func RecordError(index int, record string, format string, args ...any) *Error {
	return &Error{
		Code:   CodeRecord,
		Index:  index,
		Record: record,
		Err:    fmt.Errorf(format, args...),
	}
}

// IsCode reports whether err is, or wraps, a parser error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}
