package parser

import (
	"errors"
	"os"
	"regexp"
	"slices"
	"strings"
)

// DefaultDelimiter separates records when Load is given an empty delimiter.
const DefaultDelimiter = "\n"

// BlankLine matches an empty record. It is the usual section boundary.
const BlankLine = `^$`

// Load reads the file at path and splits it on delimiter.
//
// An empty delimiter means DefaultDelimiter. The content is split verbatim:
// no trimming, no carriage-return handling and no filtering of empty records,
// so strings.Join(records, delimiter) reproduces the file exactly.
func Load(path, delimiter string) ([]string, error) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Code: CodeIO, Path: path, Index: -1, Err: err}
	}

	return strings.Split(string(data), delimiter), nil
}

// MapRecords applies transform to every record in order and returns exactly
// one value per record.
//
// The first failing record aborts the whole mapping; no partial result is
// returned. A *Error from transform keeps its code; any other error becomes a
// CodeRecord error. Either way the index and text of the record are attached.
func MapRecords[T any](records []string, transform func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(records))
	for i, record := range records {
		v, err := transform(record)
		if err != nil {
			return nil, recordFailure(i, record, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func recordFailure(index int, record string, err error) *Error {
	var pe *Error
	if errors.As(err, &pe) {
		wrapped := *pe
		wrapped.Index = index
		wrapped.Record = record
		return &wrapped
	}
	return &Error{Code: CodeRecord, Index: index, Record: record, Err: err}
}

// SplitAtFirstMatch splits records at the first record matching pattern.
//
// head holds every record strictly before the match. tail starts with the
// matching record itself. When nothing matches, head is the whole input and
// tail is empty.
//
// This is a single-shot primitive. To walk successive sections, re-invoke it
// on tail[1:]; passing tail unchanged matches the same boundary forever.
// Sections does that walk.
func SplitAtFirstMatch(records []string, pattern string) (head, tail []string, err error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, nil, &Error{Code: CodePattern, Index: -1, Pattern: pattern, Err: err}
	}
	head, tail = splitAt(records, re)
	return head, tail, nil
}

func splitAt(records []string, re *regexp.Regexp) (head, tail []string) {
	i := slices.IndexFunc(records, re.MatchString)
	// Clip head so appends by the caller cannot overwrite the boundary
	// or the caller's spare capacity.
	if i < 0 {
		return slices.Clip(records), []string{}
	}
	return slices.Clip(records[:i]), records[i:]
}

// Sections splits records into the runs between boundary records.
//
// Boundary records are consumed and never appear in a section. A trailing
// boundary (the usual final newline of a file) yields a final empty section;
// consecutive boundaries yield empty sections between them.
func Sections(records []string, pattern string) ([][]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &Error{Code: CodePattern, Index: -1, Pattern: pattern, Err: err}
	}

	var sections [][]string
	remaining := records
	for {
		head, tail := splitAt(remaining, re)
		sections = append(sections, head)
		if len(tail) == 0 {
			return sections, nil
		}
		remaining = tail[1:]
	}
}

// NonEmpty returns the records that are not the empty string, in order.
func NonEmpty(records []string) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}
