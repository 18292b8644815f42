package puzzles

import (
	"errors"

	"github.com/roach88/advent/internal/parser"
)

// Heightmap is a grid of elevations a..z with one start S (elevation a) and
// one goal E (elevation z).
type Heightmap struct {
	rows       []string
	start, end point
}

// ParseHeightmap parses rows of a..z, S and E of equal length.
func ParseHeightmap(lines []string) (*Heightmap, error) {
	h := &Heightmap{rows: lines}
	var starts, ends int
	for r, line := range lines {
		if len(line) == 0 || len(line) != len(lines[0]) {
			return nil, parser.RecordError(r, line, "row length %d, want %d", len(line), len(lines[0]))
		}
		for c := 0; c < len(line); c++ {
			switch ch := line[c]; {
			case ch == 'S':
				h.start = point{c, r}
				starts++
			case ch == 'E':
				h.end = point{c, r}
				ends++
			case ch < 'a' || ch > 'z':
				return nil, parser.RecordError(r, line, "invalid elevation %q at column %d", ch, c+1)
			}
		}
	}
	if starts != 1 || ends != 1 {
		return nil, errors.New("heightmap needs exactly one S and one E")
	}
	return h, nil
}

func (h *Heightmap) elevation(p point) int {
	switch ch := h.rows[p.y][p.x]; ch {
	case 'S':
		return 0
	case 'E':
		return 'z' - 'a'
	default:
		return int(ch - 'a')
	}
}

func (h *Heightmap) inside(p point) bool {
	return p.y >= 0 && p.y < len(h.rows) && p.x >= 0 && p.x < len(h.rows[0])
}

// distancesToEnd runs a breadth first search backwards from E. A step from
// a to b is allowed when b is at most one higher than a, so walking back
// from b to a needs elev(a) >= elev(b)-1.
func (h *Heightmap) distancesToEnd() map[point]int {
	dist := map[point]int{h.end: 0}
	queue := []point{h.end}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range directions {
			next := point{cur.x + d[1], cur.y + d[0]}
			if !h.inside(next) {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			if h.elevation(next) < h.elevation(cur)-1 {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

var errNoPath = errors.New("no path reaches E")

// StepsFromStart returns the fewest steps from S to E.
func (h *Heightmap) StepsFromStart() (int, error) {
	d, ok := h.distancesToEnd()[h.start]
	if !ok {
		return 0, errNoPath
	}
	return d, nil
}

// StepsFromLowest returns the fewest steps to E from any square of
// elevation a, S included.
func (h *Heightmap) StepsFromLowest() (int, error) {
	best := -1
	for p, d := range h.distancesToEnd() {
		if h.elevation(p) == 0 && (best < 0 || d < best) {
			best = d
		}
	}
	if best < 0 {
		return 0, errNoPath
	}
	return best, nil
}

var day12Part1 = solveLines(func(lines []string, _ Params) (int, error) {
	h, err := ParseHeightmap(lines)
	if err != nil {
		return 0, err
	}
	return h.StepsFromStart()
})

var day12Part2 = solveLines(func(lines []string, _ Params) (int, error) {
	h, err := ParseHeightmap(lines)
	if err != nil {
		return 0, err
	}
	return h.StepsFromLowest()
})
