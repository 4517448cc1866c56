package plausibility

import (
	"strings"

	"enercheck/domain/validation"
)

// recommendationBar is the check score below which a category-templated
// recommendation is emitted.
const recommendationBar = 50.0

// categoryAdvice holds one remediation template per category that has an
// actionable next step. Categories without an entry emit nothing.
var categoryAdvice = map[validation.Category]string{
	validation.CategoryPhysicalPlausibility:  "Review input parameters: results violate or approach known physical limits",
	validation.CategoryRangeValidation:       "Verify calculations: values fall outside expected benchmark ranges",
	validation.CategoryMethodology:           "Revisit the methodology and assumptions behind the failing checks",
	validation.CategoryLiteratureConsistency: "Cross-check results against published literature before reporting them",
}

// BuildRecommendations derives next-step text from a report's checks,
// warnings, and errors. Output is deduplicated with set semantics and keeps
// insertion order: check-driven advice first, then high-severity warning
// suggestions, then critical error callouts.
func BuildRecommendations(checks []validation.Check, warnings []validation.Warning, errs []validation.Error) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(s string) {
		if s == "" {
			return
		}
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, c := range checks {
		if c.Score < recommendationBar {
			add(categoryAdvice[c.Category])
		}
	}

	for _, w := range warnings {
		if w.Severity == validation.SeverityHigh && w.Suggestion != "" {
			add(w.Suggestion)
		}
	}

	for _, e := range errs {
		if e.Fatal {
			add("CRITICAL: " + strings.ToLower(e.Message))
		}
	}

	return out
}
