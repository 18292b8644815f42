package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/advent/internal/puzzles"
)

// DayInfo describes one available day.
type DayInfo struct {
	Day   int    `json:"day"`
	Title string `json:"title"`
	Input string `json:"input"`
}

// DayList is the JSON payload of the days command.
type DayList []DayInfo

func (l DayList) String() string {
	lines := make([]string, len(l))
	for i, d := range l {
		lines[i] = fmt.Sprintf("%3d  %-26s %s", d.Day, d.Title, d.Input)
	}
	return strings.Join(lines, "\n")
}

// NewDaysCommand creates the days command.
func NewDaysCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the available days",
		Long: `List every day with a solution, its title and the input file solve
would read for it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(rootOpts, cmd)
			if err != nil {
				return err
			}
			var list DayList
			for _, d := range puzzles.All() {
				list = append(list, DayInfo{Day: d.Number, Title: d.Title, Input: s.cfg.InputPath(d.Number)})
			}
			return s.formatter.Success(list)
		},
	}
}
