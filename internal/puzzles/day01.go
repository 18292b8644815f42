package puzzles

import (
	"slices"
	"strconv"

	"github.com/roach88/advent/internal/parser"
)

// CalorieTotals returns the calories carried by each elf in input order.
// Elves are separated by blank lines.
func CalorieTotals(lines []string) ([]int, error) {
	sections, err := parser.Sections(lines, parser.BlankLine)
	if err != nil {
		return nil, err
	}

	totals := make([]int, 0, len(sections))
	offset := 0
	for _, section := range sections {
		values, err := parser.MapRecords(section, strconv.Atoi)
		if err != nil {
			return nil, shiftIndex(offset, err)
		}
		totals = append(totals, sum(values))
		offset += len(section) + 1
	}
	return totals, nil
}

// TopCalories sums the n largest totals.
func TopCalories(totals []int, n int) int {
	sorted := slices.Clone(totals)
	slices.Sort(sorted)
	slices.Reverse(sorted)
	return sum(sorted[:min(n, len(sorted))])
}

var day01Part1 = solveLines(func(lines []string, _ Params) (int, error) {
	totals, err := CalorieTotals(lines)
	if err != nil {
		return 0, err
	}
	return TopCalories(totals, 1), nil
})

var day01Part2 = solveLines(func(lines []string, _ Params) (int, error) {
	totals, err := CalorieTotals(lines)
	if err != nil {
		return 0, err
	}
	return TopCalories(totals, 3), nil
})
