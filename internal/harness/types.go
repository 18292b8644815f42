package harness

// PartResult is the outcome of solving one part.
type PartResult struct {
	Part int `json:"part"`

	// Answer is set when the part succeeded.
	Answer string `json:"answer,omitempty"`

	// Error is set when the part failed.
	Error string `json:"error,omitempty"`
}

// Canonical renders the result for golden comparison. Exactly one of
// answer and error is present.
func (p PartResult) Canonical() any {
	m := map[string]any{"part": p.Part}
	if p.Error != "" {
		m["error"] = p.Error
	} else {
		m["answer"] = p.Answer
	}
	return m
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success.
	// True if every assertion holds.
	Pass bool `json:"pass"`

	// Parts holds part 1 then part 2.
	Parts []PartResult `json:"parts"`

	// Errors contains assertion failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Parts:  []PartResult{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddPart records the outcome of one part.
func (r *Result) AddPart(part int, answer string, err error) {
	pr := PartResult{Part: part, Answer: answer}
	if err != nil {
		pr.Answer = ""
		pr.Error = err.Error()
	}
	r.Parts = append(r.Parts, pr)
}

// Part returns the outcome of part n.
func (r *Result) Part(n int) (PartResult, bool) {
	for _, p := range r.Parts {
		if p.Part == n {
			return p, true
		}
	}
	return PartResult{}, false
}
