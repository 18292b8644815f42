package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/advent/internal/puzzles"
)

// SolveResult is the JSON payload of the solve command.
type SolveResult struct {
	Day   int    `json:"day"`
	Title string `json:"title"`
	Input string `json:"input"`
	Part1 string `json:"part1"`
	Part2 string `json:"part2"`
}

func (r SolveResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Day %d: %s\n", r.Day, r.Title)
	fmt.Fprintf(&b, "Part 1: %s\n", indentAnswer(r.Part1))
	fmt.Fprintf(&b, "Part 2: %s", indentAnswer(r.Part2))
	return b.String()
}

// indentAnswer starts multi-line answers on their own line.
func indentAnswer(answer string) string {
	if !strings.Contains(answer, "\n") {
		return answer
	}
	return "\n" + answer
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <day> [input]",
		Short: "Solve both parts of a day",
		Long: `Solve both parts of a day's puzzle.

The input defaults to the day's entry in the config file, or
<inputs>/dayNN.txt when there is none.

Exit codes:
  0 - Both parts solved
  1 - The input could not be read or is malformed
  2 - Command error (unknown day, bad config, etc.)

Examples:
  advent solve 1
  advent solve 11 inputs/monkeys.txt
  advent solve 10 --format json`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(rootOpts, args, cmd)
		},
	}
	return cmd
}

func runSolve(opts *RootOptions, args []string, cmd *cobra.Command) error {
	s, err := newSession(opts, cmd)
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		_ = s.formatter.Error(ErrCodeArgs, fmt.Sprintf("invalid day %q", args[0]), nil)
		return WrapExitError(ExitCommandError, "invalid day", err)
	}
	day, err := puzzles.Lookup(n)
	if err != nil {
		return s.formatter.Fail(ExitCommandError, "no solution", err)
	}

	input := s.cfg.InputPath(n)
	if len(args) == 2 {
		input = args[1]
	}
	params := puzzles.ParamsFrom(s.cfg)

	s.logger.Info("solving", "day", n, "input", input)
	result := SolveResult{Day: n, Title: day.Title, Input: input}
	for i, part := range []puzzles.Part{day.Part1, day.Part2} {
		start := time.Now()
		answer, err := part(input, params)
		if err != nil {
			return s.formatter.Fail(ExitFailure, fmt.Sprintf("day %d part %d failed", n, i+1), err)
		}
		s.logger.Debug("part solved", "day", n, "part", i+1, "elapsed", time.Since(start))
		if i == 0 {
			result.Part1 = answer
		} else {
			result.Part2 = answer
		}
	}

	return s.formatter.Success(result)
}
