// Package parser provides the record-level text utilities shared by every
// puzzle solution.
//
// Input flows through three small primitives:
//
//   - Load reads a whole file and splits it into records on a delimiter.
//   - MapRecords turns each record into a typed value, one output per input.
//   - SplitAtFirstMatch peels records off up to the first boundary record.
//
// None of them trim, filter or reorder records. Blank records survive
// loading; callers that do not want them discard them explicitly.
//
// Every failure is returned as a *Error carrying a Code, so callers above the
// parse boundary can report it and stop. There is no recovery path: input is
// trusted to be well formed, and malformed input is reported, never guessed at.
package parser
