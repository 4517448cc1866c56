// Package validation defines the report types produced by the plausibility
// engine: categorized checks, advisory warnings, errors with an explicit
// fatal flag, and the aggregate scored result. Implausible values are always
// represented as data in these types, never as Go errors.
package validation

// Category classifies what aspect of a result a check, warning, or error
// speaks to
type Category string

const (
	CategoryPhysicalPlausibility  Category = "physical_plausibility"
	CategoryRangeValidation       Category = "range_validation"
	CategoryLiteratureConsistency Category = "literature_consistency"
	CategoryInternalConsistency   Category = "internal_consistency"
	CategoryMethodology           Category = "methodology"
	CategoryDataQuality           Category = "data_quality"
)

// Severity grades how urgently a warning deserves attention
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Check records one assessed fact about a result. Immutable once created.
type Check struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Passed   bool     `json:"passed"`
	Score    float64  `json:"score"`
	Details  string   `json:"details"`
	Evidence []string `json:"evidence,omitempty"`
}

// Warning is advisory and never blocks downstream progression
type Warning struct {
	Category   Category `json:"category"`
	Message    string   `json:"message"`
	Severity   Severity `json:"severity"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Error records a defect in the validated data. Only Fatal errors signal a
// hard physical or logical impossibility; non-fatal errors are surfaced but
// do not block.
type Error struct {
	Category Category `json:"category"`
	Message  string   `json:"message"`
	Fatal    bool     `json:"fatal"`
	Context  string   `json:"context,omitempty"`
}

// Error implements the error interface for convenience at call sites that
// log individual entries. The engine itself never returns these as Go
// errors.
func (e Error) Error() string {
	return e.Message
}

// Result is the full scored report for one validation call. Created fresh
// per call, owned by the caller, never mutated after return.
type Result struct {
	IsValid         bool      `json:"is_valid"`
	OverallScore    float64   `json:"overall_score"`
	Checks          []Check   `json:"checks"`
	Warnings        []Warning `json:"warnings"`
	Errors          []Error   `json:"errors"`
	Recommendations []string  `json:"recommendations"`
}

// HasFatalErrors reports whether any recorded error is fatal
func (r Result) HasFatalErrors() bool {
	for _, e := range r.Errors {
		if e.Fatal {
			return true
		}
	}
	return false
}

// PassedChecks counts checks that passed
func (r Result) PassedChecks() int {
	n := 0
	for _, c := range r.Checks {
		if c.Passed {
			n++
		}
	}
	return n
}

// WarningsBySeverity filters warnings at the given severity
func (r Result) WarningsBySeverity(sev Severity) []Warning {
	var out []Warning
	for _, w := range r.Warnings {
		if w.Severity == sev {
			out = append(out, w)
		}
	}
	return out
}
