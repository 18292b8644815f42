package puzzles

import (
	"fmt"
	"strconv"

	"github.com/roach88/advent/internal/parser"
)

// Motion moves the head of the rope Steps times in direction Dir (R, L, U, D).
type Motion struct {
	Dir   byte
	Steps int
}

type point struct {
	x, y int
}

var headSteps = map[byte]point{
	'R': {1, 0},
	'L': {-1, 0},
	'U': {0, 1},
	'D': {0, -1},
}

// ParseMotion parses a line of the form "R 4".
func ParseMotion(line string) (Motion, error) {
	if len(line) < 3 || line[1] != ' ' {
		return Motion{}, fmt.Errorf("want \"<R|L|U|D> <steps>\"")
	}
	if _, ok := headSteps[line[0]]; !ok {
		return Motion{}, fmt.Errorf("unknown direction %q", line[0])
	}
	steps, err := strconv.Atoi(line[2:])
	if err != nil || steps < 0 {
		return Motion{}, fmt.Errorf("invalid step count %q", line[2:])
	}
	return Motion{Dir: line[0], Steps: steps}, nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// follow moves knot one step toward leader unless they already touch.
func follow(knot, leader point) point {
	dx, dy := leader.x-knot.x, leader.y-knot.y
	if dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 {
		return knot
	}
	return point{knot.x + sign(dx), knot.y + sign(dy)}
}

// TailVisits returns the number of distinct positions the last of knots
// visits, including the start.
func TailVisits(motions []Motion, knots int) (int, error) {
	if knots < 1 {
		return 0, fmt.Errorf("rope needs at least one knot, got %d", knots)
	}
	rope := make([]point, knots)
	visited := map[point]struct{}{{}: {}}
	for _, m := range motions {
		step := headSteps[m.Dir]
		for range m.Steps {
			rope[0] = point{rope[0].x + step.x, rope[0].y + step.y}
			for i := 1; i < len(rope); i++ {
				rope[i] = follow(rope[i], rope[i-1])
			}
			visited[rope[len(rope)-1]] = struct{}{}
		}
	}
	return len(visited), nil
}

func day09Solver(knots func(Params) int) Part {
	return solveLines(func(lines []string, p Params) (int, error) {
		motions, err := parser.MapRecords(lines, ParseMotion)
		if err != nil {
			return 0, err
		}
		return TailVisits(motions, knots(p))
	})
}

var (
	day09Part1 = day09Solver(func(Params) int { return 2 })
	day09Part2 = day09Solver(func(p Params) int { return p.RopeKnots })
)
