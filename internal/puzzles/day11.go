package puzzles

import (
	"strconv"

	"github.com/roach88/advent/internal/monkey"
)

// MonkeyBusiness loads the actors at path, runs them for rounds with the
// given worry divisor and returns the product of the two busiest counts.
func MonkeyBusiness(path string, rounds int, divisor uint64) (uint64, error) {
	actors, err := monkey.LoadActors(path)
	if err != nil {
		return 0, err
	}
	sim, err := monkey.New(actors, monkey.WithWorryDivisor(divisor))
	if err != nil {
		return 0, err
	}
	if err := sim.Run(rounds); err != nil {
		return 0, err
	}
	return sim.MonkeyBusiness()
}

func day11Solver(rounds func(Params) int, divisor func(Params) uint64) Part {
	return func(path string, p Params) (string, error) {
		v, err := MonkeyBusiness(path, rounds(p), divisor(p))
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(v, 10), nil
	}
}

var (
	day11Part1 = day11Solver(
		func(p Params) int { return p.Monkey.ReliefRounds },
		func(p Params) uint64 { return p.Monkey.ReliefDivisor },
	)
	day11Part2 = day11Solver(
		func(p Params) int { return p.Monkey.ModularRounds },
		func(Params) uint64 { return monkey.NoRelief },
	)
)
