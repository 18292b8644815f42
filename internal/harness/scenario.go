package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Scenario defines a known-answer check.
// A scenario solves both parts of one day against one input file and then
// evaluates its assertions against the answers.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario checks.
	Description string `yaml:"description"`

	// Day selects the solution.
	Day int `yaml:"day"`

	// Input is the puzzle input path.
	// Relative paths are resolved against the scenario file location.
	Input string `yaml:"input"`

	// Params overrides configuration defaults for this scenario only.
	Params *ParamOverrides `yaml:"params,omitempty"`

	// Assertions validate the answers.
	// Supported types: answer_equals, answer_matches, error_contains
	Assertions []Assertion `yaml:"assertions"`
}

// ParamOverrides replaces individual tunables. Unset fields keep the
// harness defaults.
type ParamOverrides struct {
	RopeKnots     *int    `yaml:"rope_knots,omitempty"`
	ReliefRounds  *int    `yaml:"relief_rounds,omitempty"`
	ReliefDivisor *uint64 `yaml:"relief_divisor,omitempty"`
	ModularRounds *int    `yaml:"modular_rounds,omitempty"`
}

// Assertion validates the answer or the failure of one part.
type Assertion struct {
	// Type specifies the assertion type:
	// - "answer_equals": the part succeeds with exactly Value
	// - "answer_matches": the part succeeds with an answer matching Pattern
	// - "error_contains": the part fails with an error containing Value
	Type string `yaml:"type"`

	// Part is 1 or 2.
	Part int `yaml:"part"`

	// Value is the expected answer (answer_equals) or error text (error_contains).
	Value string `yaml:"value,omitempty"`

	// Pattern is a regular expression (answer_matches).
	Pattern string `yaml:"pattern,omitempty"`
}

// Assertion type constants.
const (
	AssertAnswerEquals  = "answer_equals"
	AssertAnswerMatches = "answer_matches"
	AssertErrorContains = "error_contains"
)

// LoadScenario reads and parses a scenario YAML file.
// The input path is resolved relative to the scenario file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	return LoadScenarioWithBasePath(path, filepath.Dir(path))
}

// LoadScenarioWithBasePath reads and parses a scenario YAML file,
// resolving the input path relative to basePath.
func LoadScenarioWithBasePath(path, basePath string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Input != "" && !filepath.IsAbs(scenario.Input) && basePath != "" {
		scenario.Input = filepath.Join(basePath, scenario.Input)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Day <= 0 {
		return fmt.Errorf("day is required and must be positive")
	}

	if s.Input == "" {
		return fmt.Errorf("input is required")
	}

	if _, err := os.Stat(s.Input); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", s.Input)
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	if a.Part != 1 && a.Part != 2 {
		return fmt.Errorf("assertions[%d]: part must be 1 or 2, got %d", index, a.Part)
	}

	switch a.Type {
	case AssertAnswerEquals:
		if a.Value == "" {
			return fmt.Errorf("assertions[%d]: value is required for answer_equals", index)
		}
	case AssertAnswerMatches:
		if a.Pattern == "" {
			return fmt.Errorf("assertions[%d]: pattern is required for answer_matches", index)
		}
		if _, err := regexp.Compile(a.Pattern); err != nil {
			return fmt.Errorf("assertions[%d]: invalid pattern: %w", index, err)
		}
	case AssertErrorContains:
		if a.Value == "" {
			return fmt.Errorf("assertions[%d]: value is required for error_contains", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
