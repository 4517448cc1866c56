package plausibility

import (
	"fmt"
	"math"

	"enercheck/domain/analysis"
	"enercheck/domain/research"
	"enercheck/domain/simulation"
	"enercheck/domain/validation"
)

// expectedConfidence maps a categorical support level onto the numeric
// confidence an internally consistent conclusion would declare.
var expectedConfidence = map[analysis.SupportLevel]float64{
	analysis.StronglySupported:    90,
	analysis.Supported:            75,
	analysis.Inconclusive:         50,
	analysis.Contradicted:         25,
	analysis.StronglyContradicted: 10,
}

// confidenceSlack is how far a declared confidence may drift from the
// support-level expectation before the consistency check fails.
const confidenceSlack = 30.0

// validationRateBar is the minimum fraction of key metrics (or literature
// entries) that must land well for the corresponding check to pass.
const validationRateBar = 0.6

// Metric deviation percentages that trigger advisory warnings.
const (
	deviationWarnPct   = 50.0
	deviationSeverePct = 100.0
)

// ValidateAnalysisConclusions audits synthesized conclusions for internal
// consistency, metric support, and literature agreement. Conclusions
// presented without any simulation backing are flagged with a non-fatal
// error: suspicious, but not blocking.
func ValidateAnalysisConclusions(conclusions []analysis.Conclusion, sims []simulation.Result, findings *research.Findings) validation.Result {
	var r validation.Result

	for i, c := range conclusions {
		label := conclusionLabel(c, i)
		assessConfidenceConsistency(&r, c, label)
		if len(c.KeyMetrics) > 0 {
			assessMetricSupport(&r, c, label)
		}
		if len(c.Literature) > 0 {
			assessLiteratureAgreement(&r, c, label)
		}
	}

	if len(conclusions) > 0 && len(sims) == 0 {
		r.Errors = append(r.Errors, validation.Error{
			Category: validation.CategoryMethodology,
			Message:  "conclusions were drawn without any simulation results to back them",
			Fatal:    false,
			Context:  fmt.Sprintf("%d conclusions, 0 simulation results", len(conclusions)),
		})
	}

	r.Recommendations = BuildRecommendations(r.Checks, r.Warnings, r.Errors)
	validation.Finalize(&r, validation.DefaultThreshold)
	return r
}

func conclusionLabel(c analysis.Conclusion, i int) string {
	const maxLabel = 40
	s := c.Statement
	if len(s) > maxLabel {
		s = s[:maxLabel] + "..."
	}
	if s == "" {
		s = fmt.Sprintf("conclusion %d", i+1)
	}
	return s
}

func assessConfidenceConsistency(r *validation.Result, c analysis.Conclusion, label string) {
	check := validation.Check{
		Name:     fmt.Sprintf("confidence consistency: %s", label),
		Category: validation.CategoryInternalConsistency,
	}

	expected, known := expectedConfidence[c.SupportLevel]
	if !known {
		check.Passed = false
		check.Score = 40
		check.Details = fmt.Sprintf("unknown support level %q", c.SupportLevel)
		r.Checks = append(r.Checks, check)
		return
	}

	if math.Abs(c.Confidence-expected) <= confidenceSlack {
		check.Passed = true
		check.Score = 85
		check.Details = fmt.Sprintf("declared confidence %.0f matches the %s expectation (%.0f ± %.0f)",
			c.Confidence, c.SupportLevel, expected, confidenceSlack)
	} else {
		check.Passed = false
		check.Score = 40
		check.Details = fmt.Sprintf("declared confidence %.0f diverges from the %s expectation %.0f by more than %.0f points",
			c.Confidence, c.SupportLevel, expected, confidenceSlack)
	}
	r.Checks = append(r.Checks, check)
}

func assessMetricSupport(r *validation.Result, c analysis.Conclusion, label string) {
	within := 0
	for _, m := range c.KeyMetrics {
		if m.WithinExpectation {
			within++
		}
		dev := math.Abs(m.DeviationPct)
		switch {
		case dev > deviationSeverePct:
			r.Warnings = append(r.Warnings, validation.Warning{
				Category:   validation.CategoryRangeValidation,
				Message:    fmt.Sprintf("metric %q deviates %.0f%% from expectation", m.Name, dev),
				Severity:   validation.SeverityHigh,
				Suggestion: "A deviation beyond 100% usually means a modeling or unit error, not a discovery",
			})
		case dev > deviationWarnPct:
			r.Warnings = append(r.Warnings, validation.Warning{
				Category: validation.CategoryRangeValidation,
				Message:  fmt.Sprintf("metric %q deviates %.0f%% from expectation", m.Name, dev),
				Severity: validation.SeverityMedium,
			})
		}
	}

	rate := float64(within) / float64(len(c.KeyMetrics))
	r.Checks = append(r.Checks, validation.Check{
		Name:     fmt.Sprintf("metric validation rate: %s", label),
		Category: validation.CategoryRangeValidation,
		Passed:   rate >= validationRateBar,
		Score:    math.Round(rate * 100),
		Details:  fmt.Sprintf("%d of %d key metrics are within expectation", within, len(c.KeyMetrics)),
	})
}

func assessLiteratureAgreement(r *validation.Result, c analysis.Conclusion, label string) {
	good := 0
	for _, lit := range c.Literature {
		switch lit.Agreement {
		case analysis.AgreementConsistent, analysis.AgreementNovel:
			// Novel findings have nothing to disagree with; they count as
			// good standing, not as conflicts.
			good++
		case analysis.AgreementInconsistent:
			r.Warnings = append(r.Warnings, validation.Warning{
				Category:   validation.CategoryLiteratureConsistency,
				Message:    fmt.Sprintf("conclusion conflicts with %s", lit.Source),
				Severity:   validation.SeverityMedium,
				Suggestion: "Reconcile the disagreement or explain why the prior result does not apply",
			})
		}
	}

	rate := float64(good) / float64(len(c.Literature))
	r.Checks = append(r.Checks, validation.Check{
		Name:     fmt.Sprintf("literature consistency: %s", label),
		Category: validation.CategoryLiteratureConsistency,
		Passed:   rate >= validationRateBar,
		Score:    math.Round(rate * 100),
		Details:  fmt.Sprintf("%d of %d literature comparisons are consistent or novel", good, len(c.Literature)),
	})
}
