package puzzles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent/internal/parser"
)

// Marker window sizes.
const (
	PacketWindow  = 4
	MessageWindow = 14
)

// MarkerEnd returns the number of characters consumed when the last window
// characters are first all distinct.
func MarkerEnd(stream string, window int) (int, error) {
	if window < 1 {
		return 0, fmt.Errorf("window %d must be positive", window)
	}
	var counts [256]int
	distinct := 0
	for i := 0; i < len(stream); i++ {
		if counts[stream[i]] == 0 {
			distinct++
		}
		counts[stream[i]]++
		if i >= window {
			out := stream[i-window]
			counts[out]--
			if counts[out] == 0 {
				distinct--
			}
		}
		if distinct == window {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("no run of %d distinct characters", window)
}

func day06Solver(window int) Part {
	return solveLines(func(lines []string, _ Params) (string, error) {
		ends, err := parser.MapRecords(parser.NonEmpty(lines), func(line string) (int, error) {
			return MarkerEnd(line, window)
		})
		if err != nil {
			return "", err
		}
		out := make([]string, len(ends))
		for i, e := range ends {
			out[i] = strconv.Itoa(e)
		}
		return strings.Join(out, ","), nil
	})
}

var (
	day06Part1 = day06Solver(PacketWindow)
	day06Part2 = day06Solver(MessageWindow)
)
