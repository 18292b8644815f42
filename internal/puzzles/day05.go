package puzzles

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/advent/internal/parser"
)

// Stacks holds crates bottom to top, one slice per stack.
type Stacks [][]byte

// Move moves Count crates from stack From to stack To. Stacks are zero based.
type Move struct {
	Count, From, To int
}

// Crane selects how a multi-crate move is carried out.
type Crane int

const (
	// CrateMover9000 lifts one crate at a time, reversing the moved run.
	CrateMover9000 Crane = iota
	// CrateMover9001 lifts the whole run at once, keeping its order.
	CrateMover9001
)

var movePattern = regexp.MustCompile(`^move (\d+) from (\d+) to (\d+)$`)

// ParseCrates parses the drawing, a blank line and the move list.
func ParseCrates(lines []string) (Stacks, []Move, error) {
	drawing, rest, err := parser.SplitAtFirstMatch(lines, parser.BlankLine)
	if err != nil {
		return nil, nil, err
	}
	if len(rest) == 0 {
		return nil, nil, errors.New("no blank line after the crate drawing")
	}

	stacks, err := parseDrawing(drawing)
	if err != nil {
		return nil, nil, err
	}

	moves, err := parser.MapRecords(rest[1:], func(line string) (Move, error) {
		return parseMove(line, len(stacks))
	})
	if err != nil {
		return nil, nil, shiftIndex(len(drawing)+1, err)
	}
	return stacks, moves, nil
}

func parseDrawing(drawing []string) (Stacks, error) {
	if len(drawing) == 0 {
		return nil, errors.New("crate drawing is empty")
	}
	last := len(drawing) - 1
	labels := strings.Fields(drawing[last])
	if len(labels) == 0 {
		return nil, parser.RecordError(last, drawing[last], "no stack labels")
	}
	for i, label := range labels {
		if label != strconv.Itoa(i+1) {
			return nil, parser.RecordError(last, drawing[last], "stack label %q out of sequence", label)
		}
	}

	stacks := make(Stacks, len(labels))
	width := 4*len(labels) - 1
	for row := last - 1; row >= 0; row-- {
		line := drawing[row]
		if len(line) > width {
			return nil, parser.RecordError(row, line, "wider than %d stacks", len(labels))
		}
		for j := range stacks {
			col := 4*j + 1
			if col >= len(line) || line[col] == ' ' {
				continue
			}
			c := line[col]
			if c < 'A' || c > 'Z' || line[col-1] != '[' || col+1 >= len(line) || line[col+1] != ']' {
				return nil, parser.RecordError(row, line, "malformed crate at column %d", col+1)
			}
			stacks[j] = append(stacks[j], c)
		}
	}
	return stacks, nil
}

func parseMove(line string, n int) (Move, error) {
	m := movePattern.FindStringSubmatch(line)
	if m == nil {
		return Move{}, errors.New("want \"move n from a to b\"")
	}
	var v [3]int
	for i := range v {
		x, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Move{}, err
		}
		v[i] = x
	}
	count, from, to := v[0], v[1], v[2]
	if from < 1 || from > n || to < 1 || to > n {
		return Move{}, fmt.Errorf("stack out of range 1..%d", n)
	}
	return Move{Count: count, From: from - 1, To: to - 1}, nil
}

// Clone returns a deep copy.
func (s Stacks) Clone() Stacks {
	out := make(Stacks, len(s))
	for i, st := range s {
		out[i] = slices.Clone(st)
	}
	return out
}

// Apply performs m with crane. Moving more crates than a stack holds is an
// error and leaves s unchanged.
func (s Stacks) Apply(m Move, crane Crane) error {
	src := s[m.From]
	if m.Count > len(src) {
		return fmt.Errorf("move %d from %d: stack holds %d", m.Count, m.From+1, len(src))
	}
	cut := len(src) - m.Count
	run := slices.Clone(src[cut:])
	if crane == CrateMover9000 {
		slices.Reverse(run)
	}
	s[m.From] = src[:cut]
	s[m.To] = append(s[m.To], run...)
	return nil
}

// Tops returns the top crate of every non-empty stack.
func (s Stacks) Tops() string {
	var b strings.Builder
	for _, st := range s {
		if len(st) > 0 {
			b.WriteByte(st[len(st)-1])
		}
	}
	return b.String()
}

// Canonical lists each stack bottom to top.
func (s Stacks) Canonical() any {
	out := make([]string, len(s))
	for i, st := range s {
		out[i] = string(st)
	}
	return out
}

// RearrangeCrates runs every move on a copy of stacks and returns the tops.
func RearrangeCrates(stacks Stacks, moves []Move, crane Crane) (string, error) {
	work := stacks.Clone()
	for i, m := range moves {
		if err := work.Apply(m, crane); err != nil {
			return "", fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return work.Tops(), nil
}

func day05Solver(crane Crane) Part {
	return solveLines(func(lines []string, _ Params) (string, error) {
		stacks, moves, err := ParseCrates(lines)
		if err != nil {
			return "", err
		}
		return RearrangeCrates(stacks, moves, crane)
	})
}

var (
	day05Part1 = day05Solver(CrateMover9000)
	day05Part2 = day05Solver(CrateMover9001)
)
