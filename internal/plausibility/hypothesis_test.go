package plausibility

import (
	"strings"
	"testing"

	"enercheck/domain/research"
	"enercheck/domain/validation"
	"enercheck/internal/facts"
)

// staticNegatedFacts counts table facts whose statements carry a negation
// marker; the contradiction scan fires once per marker mismatch.
func staticNegatedFacts() (negated, plain int) {
	for _, f := range facts.All() {
		if containsNegation(f.Statement) {
			negated++
		} else {
			plain++
		}
	}
	return
}

func TestHypothesisChecks(t *testing.T) {
	h := research.Hypothesis{
		Statement:          "Perovskite tandem modules will exceed 30% field efficiency by 2030",
		Field:              "solar",
		SupportingEvidence: []string{"NREL tandem efficiency tables", "Oxford PV pilot data"},
		Predictions: []research.Prediction{
			{Statement: "certified cell efficiency above 33%", Measurable: true},
			{Statement: "module cost below $0.30/W", Measurable: true},
		},
		FeasibilityScore: 72,
	}

	r := ValidateHypothesis(h, nil)

	ev := findCheck(t, r, "supporting evidence")
	if !ev.Passed || ev.Score != 85 {
		t.Errorf("cited evidence should pass at 85, got %+v", ev)
	}
	test := findCheck(t, r, "testability")
	if !test.Passed || test.Score != 90 {
		t.Errorf("measurable predictions should pass at 90, got %+v", test)
	}
	feas := findCheck(t, r, "feasibility")
	if !feas.Passed || feas.Score != 72 {
		t.Errorf("feasibility check records the producer's own 72, got %+v", feas)
	}
	if !r.IsValid {
		t.Errorf("three passing checks clear the hypothesis threshold: %+v", r)
	}
}

func TestHypothesisWithoutEvidenceOrTests(t *testing.T) {
	h := research.Hypothesis{
		Statement:        "Ambient vibrations will power grid-scale storage",
		FeasibilityScore: 20,
		Predictions:      []research.Prediction{{Statement: "it just works", Measurable: false}},
	}

	r := ValidateHypothesis(h, nil)

	if c := findCheck(t, r, "supporting evidence"); c.Passed || c.Score != 40 {
		t.Errorf("no evidence fails at 40, got %+v", c)
	}
	if c := findCheck(t, r, "testability"); c.Passed || c.Score != 30 {
		t.Errorf("no measurable predictions fails at 30, got %+v", c)
	}
	if c := findCheck(t, r, "feasibility"); c.Passed {
		t.Errorf("feasibility 20 is below the pass bar, got %+v", c)
	}
	if r.IsValid {
		t.Error("zero passing checks cannot clear even the hypothesis threshold")
	}
}

func TestFeasibilityScoreIsClamped(t *testing.T) {
	h := research.Hypothesis{
		Statement:          "Heat pumps will dominate residential heating",
		SupportingEvidence: []string{"IEA heat pump report"},
		FeasibilityScore:   140,
	}
	r := ValidateHypothesis(h, nil)
	if c := findCheck(t, r, "feasibility"); c.Score != 100 {
		t.Errorf("feasibility must clamp to [0,100], got %v", c.Score)
	}
}

func TestContradictionScanIsMarkerAsymmetry(t *testing.T) {
	negated, plain := staticNegatedFacts()

	t.Run("plain statement flags negated facts", func(t *testing.T) {
		h := research.Hypothesis{
			Statement:          "Battery round-trip efficiency will reach 99% with solid-state cells",
			SupportingEvidence: []string{"lab data"},
			FeasibilityScore:   60,
		}
		r := ValidateHypothesis(h, nil)
		contradictions := 0
		for _, w := range r.Warnings {
			if strings.Contains(w.Message, "contradict") {
				contradictions++
			}
		}
		if contradictions != negated {
			t.Errorf("plain statement should flag each negated fact once: got %d, want %d", contradictions, negated)
		}
	})

	t.Run("negated statement flags plain facts", func(t *testing.T) {
		h := research.Hypothesis{
			Statement:          "Storage losses can't be eliminated below 5% per cycle",
			SupportingEvidence: []string{"thermo analysis"},
			FeasibilityScore:   60,
		}
		r := ValidateHypothesis(h, nil)
		contradictions := 0
		for _, w := range r.Warnings {
			if strings.Contains(w.Message, "contradict") {
				contradictions++
			}
		}
		if contradictions != plain {
			t.Errorf("negated statement should flag each plain fact once: got %d, want %d", contradictions, plain)
		}
	})

	t.Run("warnings are medium and advisory", func(t *testing.T) {
		h := research.Hypothesis{
			Statement:          "Wind capacity factors will improve steadily",
			SupportingEvidence: []string{"turbine data"},
			FeasibilityScore:   80,
		}
		r := ValidateHypothesis(h, nil)
		for _, w := range r.Warnings {
			if strings.Contains(w.Message, "contradict") && w.Severity != validation.SeverityMedium {
				t.Errorf("contradiction hints are medium severity, got %s", w.Severity)
			}
		}
		if len(r.Errors) != 0 {
			t.Errorf("the scan is a heuristic; it must never produce errors: %+v", r.Errors)
		}
	})
}

func TestContradictionScanIncludesFindings(t *testing.T) {
	h := research.Hypothesis{
		Statement:          "Grid batteries will arbitrage profitably everywhere",
		SupportingEvidence: []string{"market data"},
		FeasibilityScore:   60,
	}
	findings := &research.Findings{
		EstablishedFacts: []research.EstablishedFact{
			{Statement: "Arbitrage margins can't cover degradation in most markets", Field: "storage_economics"},
		},
	}

	base := ValidateHypothesis(h, nil)
	withFindings := ValidateHypothesis(h, findings)

	if len(withFindings.Warnings) != len(base.Warnings)+1 {
		t.Errorf("producer-supplied negated fact should add one warning: %d vs %d",
			len(withFindings.Warnings), len(base.Warnings))
	}
}

func TestAssumptionCountWarning(t *testing.T) {
	h := research.Hypothesis{
		Statement:          "Offshore wind LCOE will halve",
		SupportingEvidence: []string{"auction results"},
		FeasibilityScore:   70,
		Assumptions:        []string{"a", "b", "c", "d", "e", "f"},
	}
	r := ValidateHypothesis(h, nil)
	if len(r.WarningsBySeverity(validation.SeverityLow)) != 1 {
		t.Errorf("six assumptions should draw one low-severity warning, got %+v", r.Warnings)
	}
}

func TestHypothesisUsesLowerThreshold(t *testing.T) {
	h := research.Hypothesis{
		Statement:          "Hybrid plants will beat standalone storage",
		SupportingEvidence: []string{"co-location studies"},
		Predictions:        []research.Prediction{{Statement: "capture rate above 60%", Measurable: true}},
		FeasibilityScore:   30, // fails, giving 2/3 ≈ 67
	}
	r := ValidateHypothesis(h, nil)
	if r.OverallScore != 67 {
		t.Fatalf("expected 2/3 checks → 67, got %v", r.OverallScore)
	}
	if !r.IsValid {
		t.Error("67 clears the hypothesis threshold of 50")
	}
}
