package puzzles

import (
	"errors"

	"github.com/roach88/advent/internal/parser"
)

// Forest is a rectangular grid of tree heights 0..9.
type Forest [][]int8

// ParseForest parses rows of digits of equal length.
func ParseForest(lines []string) (Forest, error) {
	forest := make(Forest, len(lines))
	for r, line := range lines {
		if len(line) == 0 || len(line) != len(lines[0]) {
			return nil, parser.RecordError(r, line, "row length %d, want %d", len(line), len(lines[0]))
		}
		row := make([]int8, len(line))
		for c := 0; c < len(line); c++ {
			if line[c] < '0' || line[c] > '9' {
				return nil, parser.RecordError(r, line, "non-digit %q at column %d", line[c], c+1)
			}
			row[c] = int8(line[c] - '0')
		}
		forest[r] = row
	}
	if len(forest) == 0 {
		return nil, errors.New("forest is empty")
	}
	return forest, nil
}

var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// look walks from (r, c) in direction d and returns the number of trees seen
// and whether the edge was reached without meeting a tree as tall as (r, c).
func (f Forest) look(r, c int, d [2]int) (seen int, edge bool) {
	h := f[r][c]
	for rr, cc := r+d[0], c+d[1]; rr >= 0 && rr < len(f) && cc >= 0 && cc < len(f[0]); rr, cc = rr+d[0], cc+d[1] {
		seen++
		if f[rr][cc] >= h {
			return seen, false
		}
	}
	return seen, true
}

// VisibleCount counts trees visible from outside the grid.
func (f Forest) VisibleCount() int {
	n := 0
	for r := range f {
		for c := range f[r] {
			for _, d := range directions {
				if _, edge := f.look(r, c, d); edge {
					n++
					break
				}
			}
		}
	}
	return n
}

// BestScenicScore returns the highest product of viewing distances.
func (f Forest) BestScenicScore() int {
	best := 0
	for r := range f {
		for c := range f[r] {
			score := 1
			for _, d := range directions {
				seen, _ := f.look(r, c, d)
				score *= seen
			}
			best = max(best, score)
		}
	}
	return best
}

var day08Part1 = solveLines(func(lines []string, _ Params) (int, error) {
	f, err := ParseForest(lines)
	if err != nil {
		return 0, err
	}
	return f.VisibleCount(), nil
})

var day08Part2 = solveLines(func(lines []string, _ Params) (int, error) {
	f, err := ParseForest(lines)
	if err != nil {
		return 0, err
	}
	return f.BestScenicScore(), nil
})
