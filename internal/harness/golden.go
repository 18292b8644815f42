package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/advent/internal/canonical"
)

// AnswerSnapshot captures the outcome of a scenario execution.
// It is serialized as canonical JSON for deterministic comparison.
type AnswerSnapshot struct {
	ScenarioName string
	Day          int
	Parts        []PartResult
}

// Canonical implements canonical.Marshaler.
func (s AnswerSnapshot) Canonical() any {
	parts := make([]any, len(s.Parts))
	for i, p := range s.Parts {
		parts[i] = p
	}
	return map[string]any{
		"scenario_name": s.ScenarioName,
		"day":           s.Day,
		"parts":         parts,
	}
}

// RunWithGolden executes a scenario and compares its answers against a
// golden file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if the scenario cannot run.
// Test failure (via goldie) occurs if the answers don't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	return AssertGolden(t, scenario.Name, scenario.Day, result)
}

// AssertGolden compares an existing result against a golden file without
// re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, day int, result *Result) error {
	t.Helper()

	snapshot := AnswerSnapshot{
		ScenarioName: scenarioName,
		Day:          day,
		Parts:        result.Parts,
	}
	data, err := canonical.Marshal(snapshot)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)

	return nil
}
