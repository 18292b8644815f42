package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/advent/internal/monkey"
)

// MonkeysOptions holds flags for the monkeys command.
type MonkeysOptions struct {
	*RootOptions
	Rounds  int
	Divisor uint64
}

// MonkeysResult is the JSON payload of the monkeys command.
type MonkeysResult struct {
	Rounds         int      `json:"rounds"`
	Divisor        uint64   `json:"divisor"`
	Modulus        uint64   `json:"modulus"`
	MonkeyBusiness uint64   `json:"monkey_business"`
	Inspections    []uint64 `json:"inspections"`
}

func (r MonkeysResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Monkey business after %d rounds (divisor %d): %d\n", r.Rounds, r.Divisor, r.MonkeyBusiness)
	for i, n := range r.Inspections {
		fmt.Fprintf(&b, "Monkey %d inspected items %d times.", i, n)
		if i < len(r.Inspections)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// NewMonkeysCommand creates the monkeys command.
func NewMonkeysCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MonkeysOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "monkeys <input>",
		Short: "Run the round-robin monkey simulator",
		Long: `Run the round-robin monkey simulator on a setup file and report the
product of the two largest inspection counts.

Rounds and divisor default to the relief variant from the config file
(20 rounds, divisor 3). Use --divisor 1 for the modular-only variant.

Examples:
  advent monkeys inputs/day11.txt
  advent monkeys inputs/day11.txt --rounds 10000 --divisor 1
  advent monkeys inputs/day11.txt --verbose`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMonkeys(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Rounds, "rounds", 0, "number of rounds (default from config)")
	cmd.Flags().Uint64Var(&opts.Divisor, "divisor", 0, "worry divisor (default from config)")

	return cmd
}

func runMonkeys(opts *MonkeysOptions, input string, cmd *cobra.Command) error {
	s, err := newSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}

	rounds := s.cfg.Monkey.ReliefRounds
	if cmd.Flags().Changed("rounds") {
		rounds = opts.Rounds
	}
	divisor := s.cfg.Monkey.ReliefDivisor
	if cmd.Flags().Changed("divisor") {
		divisor = opts.Divisor
	}

	actors, err := monkey.LoadActors(input)
	if err != nil {
		return s.formatter.Fail(ExitFailure, "failed to load actors", err)
	}
	s.logger.Info("actors loaded", "input", input, "actors", len(actors))

	sim, err := monkey.New(actors,
		monkey.WithWorryDivisor(divisor),
		monkey.WithLogger(s.logger),
	)
	if err != nil {
		return s.formatter.Fail(ExitFailure, "invalid actor setup", err)
	}
	if err := sim.Run(rounds); err != nil {
		return s.formatter.Fail(ExitFailure, "simulation failed", err)
	}
	business, err := sim.MonkeyBusiness()
	if err != nil {
		return s.formatter.Fail(ExitFailure, "simulation failed", err)
	}

	result := MonkeysResult{
		Rounds:         rounds,
		Divisor:        divisor,
		Modulus:        sim.Modulus(),
		MonkeyBusiness: business,
	}
	for _, a := range sim.Actors() {
		result.Inspections = append(result.Inspections, a.Inspections())
	}
	s.logger.Info("simulation done", "rounds", rounds, "monkey_business", business)

	return s.formatter.Success(result)
}
