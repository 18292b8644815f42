// Package puzzles holds the daily solutions.
//
// Each day lives in its own file and exposes the typed functions it is built
// from plus two Part functions that take an input path and return the answer
// as text. The CLI dispatches through Lookup; the days share nothing beyond
// the parser utilities and Params.
package puzzles

import (
	"errors"
	"fmt"
	"slices"

	"github.com/roach88/advent/internal/config"
	"github.com/roach88/advent/internal/parser"
)

// ErrUnknownDay is returned by Lookup for days without a solution.
var ErrUnknownDay = errors.New("unknown day")

// errEmptyInput reports an input file with no records.
var errEmptyInput = errors.New("input is empty")

// Params carries the tunables some days read from configuration.
type Params struct {
	// RopeKnots is the rope length of the second rope answer.
	RopeKnots int

	Monkey config.MonkeyConfig
}

// ParamsFrom extracts Params from a loaded configuration.
func ParamsFrom(cfg *config.Config) Params {
	return Params{RopeKnots: cfg.RopeKnots, Monkey: cfg.Monkey}
}

// DefaultParams returns Params with every configuration default applied.
func DefaultParams() Params {
	return ParamsFrom(config.Default())
}

// Part solves one half of a day from the input file at path.
type Part func(path string, p Params) (string, error)

// Day is one entry of the lookup table.
type Day struct {
	Number int
	Title  string
	Part1  Part
	Part2  Part
}

var days = []Day{
	{1, "Calorie Counting", day01Part1, day01Part2},
	{2, "Rock Paper Scissors", day02Part1, day02Part2},
	{3, "Rucksack Reorganization", day03Part1, day03Part2},
	{4, "Camp Cleanup", day04Part1, day04Part2},
	{5, "Supply Stacks", day05Part1, day05Part2},
	{6, "Tuning Trouble", day06Part1, day06Part2},
	{7, "No Space Left On Device", day07Part1, day07Part2},
	{8, "Treetop Tree House", day08Part1, day08Part2},
	{9, "Rope Bridge", day09Part1, day09Part2},
	{10, "Cathode-Ray Tube", day10Part1, day10Part2},
	{11, "Monkey in the Middle", day11Part1, day11Part2},
	{12, "Hill Climbing Algorithm", day12Part1, day12Part2},
	{13, "Distress Signal", day13Part1, day13Part2},
}

// Lookup returns the solution for day.
func Lookup(day int) (Day, error) {
	i := slices.IndexFunc(days, func(d Day) bool { return d.Number == day })
	if i < 0 {
		return Day{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return days[i], nil
}

// All returns every day in order.
func All() []Day {
	return slices.Clone(days)
}

// readLines loads path as newline separated records with trailing empty
// records removed. An input with nothing left is an error.
func readLines(path string) ([]string, error) {
	records, err := parser.Load(path, "")
	if err != nil {
		return nil, err
	}
	records = trimFinal(records)
	if len(records) == 0 {
		return nil, &parser.Error{Code: parser.CodeRecord, Path: path, Index: -1, Err: errEmptyInput}
	}
	return records, nil
}

func trimFinal(records []string) []string {
	end := len(records)
	for end > 0 && records[end-1] == "" {
		end--
	}
	return records[:end]
}

// withPath attaches path to a parser error that does not name a file yet.
func withPath(path string, err error) error {
	var pe *parser.Error
	if errors.As(err, &pe) && pe.Path == "" {
		pe.Path = path
	}
	return err
}

// shiftIndex moves a record error found inside a section back to its
// position in the whole file.
func shiftIndex(offset int, err error) error {
	var pe *parser.Error
	if errors.As(err, &pe) && pe.Index >= 0 {
		pe.Index += offset
	}
	return err
}

// solveLines adapts a solver over lines into a Part.
func solveLines[T any](solve func(lines []string, p Params) (T, error)) Part {
	return func(path string, p Params) (string, error) {
		lines, err := readLines(path)
		if err != nil {
			return "", err
		}
		v, err := solve(lines, p)
		if err != nil {
			return "", withPath(path, err)
		}
		return fmt.Sprint(v), nil
	}
}
