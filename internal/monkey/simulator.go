package monkey

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/bits"
	"slices"
)

// State is the lifecycle state of a Simulator.
type State int

const (
	// StateReady means actors are built and the modulus is computed.
	StateReady State = iota + 1
	// StateRunning means rounds are being executed.
	StateRunning
	// StateDone means every configured round completed.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Worry divisors for the two puzzle variants.
const (
	// ReliefDivisor divides every new value by three before routing.
	ReliefDivisor uint64 = 3
	// NoRelief leaves values to the modular reduction alone.
	NoRelief uint64 = 1
)

// RoundSummary describes the actors right after a round.
type RoundSummary struct {
	Round       int
	Queued      []int
	Inspections []uint64
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithWorryDivisor sets the divisor applied after each rule. Defaults to ReliefDivisor.
func WithWorryDivisor(d uint64) Option {
	return func(s *Simulator) {
		s.divisor = d
	}
}

// WithLogger sets the logger. Defaults to discarding.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) {
		s.logger = l
	}
}

// WithRoundObserver registers fn to be called after every round.
func WithRoundObserver(fn func(RoundSummary)) Option {
	return func(s *Simulator) {
		s.observer = fn
	}
}

// Simulator runs rounds over a fixed set of actors.
//
// The simulator owns the actors passed to New and mutates them in place.
type Simulator struct {
	actors   []*Actor
	modulus  uint64
	divisor  uint64
	state    State
	round    int
	logger   *slog.Logger
	observer func(RoundSummary)
}

// New validates actors and prepares a Ready simulator.
//
// Every threshold must be non-zero, every route must name another actor in
// range, and the product of thresholds must fit in a uint64.
func New(actors []*Actor, opts ...Option) (*Simulator, error) {
	s := &Simulator{
		actors:  actors,
		divisor: ReliefDivisor,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.divisor == 0 {
		return nil, &SimError{Code: ErrCodeInvalidState, Message: "worry divisor must be positive", Actor: -1}
	}

	modulus := uint64(1)
	for i, a := range actors {
		if a.Index != i {
			return nil, &SimError{
				Code:    ErrCodeInvalidState,
				Message: fmt.Sprintf("actor at position %d has index %d", i, a.Index),
				Actor:   i,
			}
		}
		if a.Threshold == 0 {
			return nil, &SimError{Code: ErrCodeInvalidThreshold, Message: "threshold must be positive", Actor: i}
		}
		for _, route := range []int{a.RouteTrue, a.RouteFalse} {
			if route < 0 || route >= len(actors) || route == i {
				return nil, &SimError{
					Code:    ErrCodeInvalidRoute,
					Message: fmt.Sprintf("route to actor %d is invalid for %d actors", route, len(actors)),
					Actor:   i,
				}
			}
		}
		hi, lo := bits.Mul64(modulus, a.Threshold)
		if hi != 0 {
			return nil, &SimError{Code: ErrCodeOverflow, Message: "product of thresholds overflows uint64", Actor: i}
		}
		modulus = lo
	}

	s.modulus = modulus
	s.state = StateReady
	return s, nil
}

// Modulus returns the global modulus.
func (s *Simulator) Modulus() uint64 {
	return s.modulus
}

// State returns the current lifecycle state.
func (s *Simulator) State() State {
	return s.state
}

// Rounds returns how many rounds have completed.
func (s *Simulator) Rounds() int {
	return s.round
}

// Actors returns the simulated actors in index order.
// The slice is a copy; the actors themselves are shared with the simulator.
func (s *Simulator) Actors() []*Actor {
	return slices.Clone(s.actors)
}

// Run executes exactly rounds rounds and moves the simulator to Done.
//
// Run may only be called once, from Ready. An error aborts the run; no
// partial result is available afterwards.
func (s *Simulator) Run(rounds int) error {
	if s.state != StateReady {
		return &SimError{
			Code:    ErrCodeInvalidState,
			Message: fmt.Sprintf("run requires state %s, have %s", StateReady, s.state),
			Actor:   -1,
		}
	}
	if rounds < 0 {
		return &SimError{Code: ErrCodeInvalidState, Message: "round count must not be negative", Actor: -1}
	}

	s.state = StateRunning
	s.logger.Debug("simulation starting",
		"actors", len(s.actors),
		"rounds", rounds,
		"divisor", s.divisor,
		"modulus", s.modulus)

	for r := 1; r <= rounds; r++ {
		if err := s.runRound(r); err != nil {
			return err
		}
	}

	s.state = StateDone
	s.logger.Debug("simulation complete", "rounds", s.round)
	return nil
}

func (s *Simulator) runRound(r int) error {
	for _, a := range s.actors {
		for a.Len() > 0 {
			worry, target, err := a.inspect(s.divisor, s.modulus)
			if err != nil {
				var se *SimError
				if errors.As(err, &se) {
					se.Round = r
				}
				return err
			}
			s.actors[target].receive(worry)
		}
	}
	s.round = r

	if s.observer != nil || s.logger.Enabled(context.Background(), slog.LevelDebug) {
		summary := s.summary()
		if s.observer != nil {
			s.observer(summary)
		}
		s.logger.Debug("round complete", "round", r, "inspections", summary.Inspections)
	}
	return nil
}

func (s *Simulator) summary() RoundSummary {
	sum := RoundSummary{
		Round:       s.round,
		Queued:      make([]int, len(s.actors)),
		Inspections: make([]uint64, len(s.actors)),
	}
	for i, a := range s.actors {
		sum.Queued[i] = a.Len()
		sum.Inspections[i] = a.inspections
	}
	return sum
}

// Ranking returns the actors ordered by inspection count, highest first.
// Ties keep index order.
func (s *Simulator) Ranking() ([]*Actor, error) {
	if s.state != StateDone {
		return nil, &SimError{
			Code:    ErrCodeInvalidState,
			Message: fmt.Sprintf("ranking requires state %s, have %s", StateDone, s.state),
			Actor:   -1,
		}
	}
	ranked := slices.Clone(s.actors)
	slices.SortStableFunc(ranked, func(a, b *Actor) int {
		switch {
		case a.inspections > b.inspections:
			return -1
		case a.inspections < b.inspections:
			return 1
		}
		return 0
	})
	return ranked, nil
}

// MonkeyBusiness returns the product of the two highest inspection counts.
func (s *Simulator) MonkeyBusiness() (uint64, error) {
	ranked, err := s.Ranking()
	if err != nil {
		return 0, err
	}
	if len(ranked) < 2 {
		return 0, &SimError{
			Code:    ErrCodeInvalidState,
			Message: fmt.Sprintf("need at least 2 actors, have %d", len(ranked)),
			Actor:   -1,
		}
	}
	hi, lo := bits.Mul64(ranked[0].inspections, ranked[1].inspections)
	if hi != 0 {
		return 0, &SimError{Code: ErrCodeOverflow, Message: "product of inspection counts overflows uint64", Actor: -1}
	}
	return lo, nil
}
