// Package research defines hypotheses and findings as emitted by the
// research-generation engine, plus the established-fact shape shared with
// the static fact table.
package research

import "enercheck/domain/core"

// Prediction is one testable claim derived from a hypothesis
type Prediction struct {
	Statement  string `json:"statement"`
	Measurable bool   `json:"measurable"`
}

// Hypothesis is a candidate research claim awaiting validation
type Hypothesis struct {
	ID                 core.HypothesisID `json:"id,omitempty"`
	Statement          string            `json:"statement"`
	Field              string            `json:"field,omitempty"`
	SupportingEvidence []string          `json:"supporting_evidence"`
	Predictions        []Prediction      `json:"predictions"`

	// FeasibilityScore is the producer's own 0-100 assessment. The
	// validator records it as a check score rather than recomputing it.
	FeasibilityScore float64 `json:"feasibility_score"`

	Assumptions []string `json:"assumptions,omitempty"`
}

// CheckFunc is a numeric predicate encoding a hard physical limit.
// Predicates take one to three arguments depending on the fact.
type CheckFunc func(vals ...float64) bool

// EstablishedFact pairs a natural-language statement of settled science
// with an optional numeric predicate. Facts from the static table carry
// predicates; facts supplied by upstream findings usually do not and
// participate only in the contradiction scan.
type EstablishedFact struct {
	Statement string    `json:"statement"`
	Field     string    `json:"field"`
	Parameter string    `json:"parameter"`
	Check     CheckFunc `json:"-"`
}

// Holds reports whether the fact's predicate accepts the given values.
// Facts without a predicate hold vacuously.
func (f EstablishedFact) Holds(vals ...float64) bool {
	if f.Check == nil {
		return true
	}
	return f.Check(vals...)
}

// Findings is the corpus of prior knowledge the research engine assembled
type Findings struct {
	EstablishedFacts []EstablishedFact `json:"established_facts"`
	Sources          []string          `json:"sources,omitempty"`
}
