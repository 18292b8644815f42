package puzzles

import (
	"github.com/roach88/advent/internal/parser"
)

// Shape is a rock paper scissors move. Each shape beats the one before it.
type Shape int

const (
	Rock Shape = iota
	Paper
	Scissors
)

// Guide is one line of the strategy guide: the opponent's shape and the
// second column (0 for X, 1 for Y, 2 for Z), whose meaning depends on the
// reading.
type Guide struct {
	Opponent Shape
	Column   int
}

// ParseGuide parses lines of the form "A Y".
func ParseGuide(lines []string) ([]Guide, error) {
	return parser.MapRecords(lines, func(line string) (Guide, error) {
		if len(line) != 3 || line[1] != ' ' {
			return Guide{}, parser.RecordError(-1, line, "want \"<A-C> <X-Z>\"")
		}
		opp, col := int(line[0]-'A'), int(line[2]-'X')
		if opp < 0 || opp > 2 || col < 0 || col > 2 {
			return Guide{}, parser.RecordError(-1, line, "want \"<A-C> <X-Z>\"")
		}
		return Guide{Opponent: Shape(opp), Column: col}, nil
	})
}

// roundScore is the shape score plus 0, 3 or 6 for a loss, draw or win.
func roundScore(you, opp Shape) int {
	outcome := [3]int{3, 6, 0}[(int(you)-int(opp)+3)%3]
	return int(you) + 1 + outcome
}

// ScoreAsMoves reads the second column as the shape to play.
func ScoreAsMoves(guide []Guide) int {
	total := 0
	for _, g := range guide {
		total += roundScore(Shape(g.Column), g.Opponent)
	}
	return total
}

// ScoreAsOutcomes reads the second column as lose, draw or win.
func ScoreAsOutcomes(guide []Guide) int {
	// Offset from the opponent's shape for a loss, draw and win.
	offsets := [3]int{2, 0, 1}
	total := 0
	for _, g := range guide {
		you := Shape((int(g.Opponent) + offsets[g.Column]) % 3)
		total += roundScore(you, g.Opponent)
	}
	return total
}

var day02Part1 = solveLines(func(lines []string, _ Params) (int, error) {
	guide, err := ParseGuide(lines)
	if err != nil {
		return 0, err
	}
	return ScoreAsMoves(guide), nil
})

var day02Part2 = solveLines(func(lines []string, _ Params) (int, error) {
	guide, err := ParseGuide(lines)
	if err != nil {
		return 0, err
	}
	return ScoreAsOutcomes(guide), nil
})
