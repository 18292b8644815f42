package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/advent/internal/puzzles"
)

// Harness runs scenarios against the daily solutions.
type Harness struct {
	params puzzles.Params
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithParams sets the base parameters that scenario overrides apply to.
// Defaults to puzzles.DefaultParams.
func WithParams(p puzzles.Params) Option {
	return func(h *Harness) {
		h.params = p
	}
}

// WithLogger sets the logger. Defaults to discarding.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = l
	}
}

// New creates a harness.
func New(opts ...Option) *Harness {
	h := &Harness{
		params: puzzles.DefaultParams(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a scenario with a default harness.
func Run(scenario *Scenario) (*Result, error) {
	return New().Run(scenario)
}

// Run executes a scenario and returns the result.
//
// A part that fails is recorded in the result rather than returned, so
// error_contains assertions can check it. The returned error is reserved
// for scenarios that cannot run at all, such as an unknown day.
//
// Execution flow:
// 1. Look up the day
// 2. Apply parameter overrides
// 3. Solve part 1 and part 2
// 4. Evaluate assertions
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	day, err := puzzles.Lookup(scenario.Day)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	params := applyOverrides(h.params, scenario.Params)

	result := NewResult()
	for n, part := range []puzzles.Part{day.Part1, day.Part2} {
		answer, err := part(scenario.Input, params)
		result.AddPart(n+1, answer, err)
		h.logger.Debug("part solved",
			"scenario", scenario.Name,
			"day", scenario.Day,
			"part", n+1,
			"answer", answer,
			"error", err,
		)
	}

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}

	h.logger.Info("scenario completed",
		"scenario", scenario.Name,
		"pass", result.Pass,
		"failures", len(result.Errors),
	)
	return result, nil
}

func applyOverrides(p puzzles.Params, o *ParamOverrides) puzzles.Params {
	if o == nil {
		return p
	}
	if o.RopeKnots != nil {
		p.RopeKnots = *o.RopeKnots
	}
	if o.ReliefRounds != nil {
		p.Monkey.ReliefRounds = *o.ReliefRounds
	}
	if o.ReliefDivisor != nil {
		p.Monkey.ReliefDivisor = *o.ReliefDivisor
	}
	if o.ModularRounds != nil {
		p.Monkey.ModularRounds = *o.ModularRounds
	}
	return p
}
