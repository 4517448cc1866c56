package plausibility

import (
	"fmt"
	"strings"

	"enercheck/domain/research"
	"enercheck/domain/validation"
	"enercheck/internal/facts"
)

// negationMarkers are the textual cues the contradiction scan looks for.
// The scan is a deliberate heuristic: it flags statements for human review
// rather than proving contradiction, and must stay approximate.
var negationMarkers = []string{"not", "doesn't", "can't", "impossible", "never"}

// maxAssumptions is how many stated assumptions a hypothesis can carry
// before it earns a low-severity parsimony warning.
const maxAssumptions = 5

// feasibilityPassBar is the self-reported feasibility score below which
// the feasibility check fails.
const feasibilityPassBar = 50.0

// ValidateHypothesis scores a research hypothesis on evidence, testability,
// feasibility, and textual consistency with established facts. Hypotheses
// are judged against the lower validity threshold because speculation is
// their job.
func ValidateHypothesis(h research.Hypothesis, findings *research.Findings) validation.Result {
	var r validation.Result

	evidence := validation.Check{
		Name:     "supporting evidence",
		Category: validation.CategoryLiteratureConsistency,
		Passed:   len(h.SupportingEvidence) > 0,
	}
	if evidence.Passed {
		evidence.Score = 85
		evidence.Details = fmt.Sprintf("%d supporting evidence items cited", len(h.SupportingEvidence))
	} else {
		evidence.Score = 40
		evidence.Details = "no supporting evidence cited"
	}
	r.Checks = append(r.Checks, evidence)

	measurable := 0
	for _, p := range h.Predictions {
		if p.Measurable {
			measurable++
		}
	}
	testability := validation.Check{
		Name:     "testability",
		Category: validation.CategoryMethodology,
		Passed:   measurable > 0,
	}
	if testability.Passed {
		testability.Score = 90
		testability.Details = fmt.Sprintf("%d of %d predictions are measurable", measurable, len(h.Predictions))
	} else {
		testability.Score = 30
		testability.Details = "no measurable predictions; the hypothesis cannot be tested as stated"
	}
	r.Checks = append(r.Checks, testability)

	// The feasibility check records the producer's own confidence rather
	// than recomputing it; the validator trusts but logs the declaration.
	feasibility := clamp(h.FeasibilityScore, 0, 100)
	r.Checks = append(r.Checks, validation.Check{
		Name:     "feasibility",
		Category: validation.CategoryMethodology,
		Passed:   feasibility >= feasibilityPassBar,
		Score:    feasibility,
		Details:  fmt.Sprintf("producer-declared feasibility score %.0f/100", feasibility),
	})

	scanContradictions(&r, h, findings)

	if len(h.Assumptions) > maxAssumptions {
		r.Warnings = append(r.Warnings, validation.Warning{
			Category:   validation.CategoryMethodology,
			Message:    fmt.Sprintf("hypothesis rests on %d assumptions", len(h.Assumptions)),
			Severity:   validation.SeverityLow,
			Suggestion: "Consider splitting the hypothesis or discharging some assumptions empirically",
		})
	}

	r.Recommendations = BuildRecommendations(r.Checks, r.Warnings, r.Errors)
	validation.Finalize(&r, validation.HypothesisThreshold)
	return r
}

// scanContradictions compares negation-marker presence between the
// hypothesis statement and each established fact. Exactly one side carrying
// a negation marker is the cue; this flags candidates for review, nothing
// stronger.
func scanContradictions(r *validation.Result, h research.Hypothesis, findings *research.Findings) {
	hypNegated := containsNegation(h.Statement)

	corpus := facts.All()
	if findings != nil {
		corpus = append(corpus[:len(corpus):len(corpus)], findings.EstablishedFacts...)
	}

	for _, fact := range corpus {
		if containsNegation(fact.Statement) == hypNegated {
			continue
		}
		r.Warnings = append(r.Warnings, validation.Warning{
			Category:   validation.CategoryLiteratureConsistency,
			Message:    fmt.Sprintf("hypothesis may contradict an established fact: %q", fact.Statement),
			Severity:   validation.SeverityMedium,
			Suggestion: fmt.Sprintf("Review the hypothesis against the established %s literature before committing resources", fact.Field),
		})
	}
}

func containsNegation(statement string) bool {
	lower := strings.ToLower(statement)
	for _, marker := range negationMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
