package puzzles

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/roach88/advent/internal/parser"
)

// Span is an inclusive range of section IDs.
type Span struct {
	Lo, Hi int
}

// Contains reports whether o lies entirely inside s.
func (s Span) Contains(o Span) bool {
	return s.Lo <= o.Lo && o.Hi <= s.Hi
}

// Overlaps reports whether s and o share at least one section.
func (s Span) Overlaps(o Span) bool {
	return s.Lo <= o.Hi && o.Lo <= s.Hi
}

// Assignment is one line of the input: the spans of a pair of elves.
type Assignment struct {
	A, B Span
}

var assignmentPattern = regexp.MustCompile(`^(\d+)-(\d+),(\d+)-(\d+)$`)

// ParseAssignment parses a line of the form "2-4,6-8".
func ParseAssignment(line string) (Assignment, error) {
	m := assignmentPattern.FindStringSubmatch(line)
	if m == nil {
		return Assignment{}, fmt.Errorf("want \"a-b,c-d\"")
	}
	var n [4]int
	for i := range n {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Assignment{}, err
		}
		n[i] = v
	}
	a, b := Span{n[0], n[1]}, Span{n[2], n[3]}
	if a.Lo > a.Hi || b.Lo > b.Hi {
		return Assignment{}, fmt.Errorf("span is reversed")
	}
	return Assignment{A: a, B: b}, nil
}

func countAssignments(lines []string, keep func(Assignment) bool) (int, error) {
	pairs, err := parser.MapRecords(lines, ParseAssignment)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range pairs {
		if keep(p) {
			n++
		}
	}
	return n, nil
}

var day04Part1 = solveLines(func(lines []string, _ Params) (int, error) {
	return countAssignments(lines, func(p Assignment) bool {
		return p.A.Contains(p.B) || p.B.Contains(p.A)
	})
})

var day04Part2 = solveLines(func(lines []string, _ Params) (int, error) {
	return countAssignments(lines, func(p Assignment) bool {
		return p.A.Overlaps(p.B)
	})
})
