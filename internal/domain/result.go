package domain

// Result is the outcome of one rule applied to one context.
type Result struct {
	Kind       RuleKind `json:"kind"`
	Passed     bool     `json:"passed"`
	Value      string   `json:"value,omitempty"`      // the offending value, on failure
	Message    string   `json:"message,omitempty"`    // rendered error, on failure
	Suggestion string   `json:"suggestion,omitempty"` // rendered remediation, on failure
	Expected   string   `json:"expected,omitempty"`   // pattern or constraint description
}

// Report is the ordered sequence of results from one engine run.
type Report struct {
	Results []Result `json:"results"`
}

// Failed reports whether any rule failed.
func (r Report) Failed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return true
		}
	}
	return false
}

// Failures returns the failing results, in rule order.
func (r Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}
