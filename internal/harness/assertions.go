package harness

import (
	"fmt"
	"regexp"
	"strings"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Part     int          // Part the assertion is about
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Parts    []PartResult // Every part outcome for context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s (part %d)\n", e.Type, e.Part)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nAll parts:\n")
	for _, p := range e.Parts {
		if p.Error != "" {
			fmt.Fprintf(&buf, "  [%d] error: %s\n", p.Part, p.Error)
		} else {
			fmt.Fprintf(&buf, "  [%d] %q\n", p.Part, p.Answer)
		}
	}

	return buf.String()
}

func describe(p PartResult) string {
	if p.Error != "" {
		return "error: " + p.Error
	}
	return fmt.Sprintf("answer %q", p.Answer)
}

// assertAnswerEquals checks the part succeeded with exactly the expected answer.
func assertAnswerEquals(part PartResult, parts []PartResult, a Assertion) error {
	if part.Error == "" && part.Answer == a.Value {
		return nil
	}
	return &AssertionError{
		Type:     AssertAnswerEquals,
		Part:     a.Part,
		Expected: fmt.Sprintf("answer %q", a.Value),
		Actual:   describe(part),
		Parts:    parts,
	}
}

// assertAnswerMatches checks the part succeeded with an answer matching the pattern.
func assertAnswerMatches(part PartResult, parts []PartResult, a Assertion) error {
	re, err := regexp.Compile(a.Pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", a.Pattern, err)
	}
	if part.Error == "" && re.MatchString(part.Answer) {
		return nil
	}
	return &AssertionError{
		Type:     AssertAnswerMatches,
		Part:     a.Part,
		Expected: fmt.Sprintf("answer matching %s", a.Pattern),
		Actual:   describe(part),
		Parts:    parts,
	}
}

// assertErrorContains checks the part failed with an error mentioning the value.
func assertErrorContains(part PartResult, parts []PartResult, a Assertion) error {
	if part.Error != "" && strings.Contains(part.Error, a.Value) {
		return nil
	}
	return &AssertionError{
		Type:     AssertErrorContains,
		Part:     a.Part,
		Expected: fmt.Sprintf("error containing %q", a.Value),
		Actual:   describe(part),
		Parts:    parts,
	}
}

// EvaluateAssertions runs every assertion against result and returns the
// failure messages. An empty slice means every assertion held.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var failures []string
	for i, a := range assertions {
		if err := evaluateAssertion(result, a); err != nil {
			failures = append(failures, fmt.Sprintf("assertion %d: %v", i, err))
		}
	}
	return failures
}

func evaluateAssertion(result *Result, a Assertion) error {
	part, ok := result.Part(a.Part)
	if !ok {
		return fmt.Errorf("part %d was not run", a.Part)
	}

	switch a.Type {
	case AssertAnswerEquals:
		return assertAnswerEquals(part, result.Parts, a)
	case AssertAnswerMatches:
		return assertAnswerMatches(part, result.Parts, a)
	case AssertErrorContains:
		return assertErrorContains(part, result.Parts, a)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}
