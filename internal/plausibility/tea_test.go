package plausibility

import (
	"strings"
	"testing"

	"enercheck/domain/energy"
	"enercheck/domain/tea"
	"enercheck/domain/validation"
)

func findCheck(t *testing.T, r validation.Result, name string) validation.Check {
	t.Helper()
	for _, c := range r.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("check %q not found in %+v", name, r.Checks)
	return validation.Check{}
}

func TestSolarLCOEInBandPassesQuietly(t *testing.T) {
	m := tea.Metrics{LCOE: 0.03, NPV: 1_500_000, IRR: 0.10}

	r := ValidateTEAResults(m, energy.DomainSolar)

	lcoe := findCheck(t, r, "LCOE plausibility")
	if !lcoe.Passed || lcoe.Score != 85 {
		t.Errorf("LCOE 0.03 in the 0.02-0.05 solar band should pass with score 85, got %+v", lcoe)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("in-band LCOE should produce no warnings, got %+v", r.Warnings)
	}
	if !r.IsValid {
		t.Errorf("all checks pass, result should be valid: %+v", r)
	}
	if len(lcoe.Evidence) != 1 || !strings.Contains(lcoe.Evidence[0], "percentile") {
		t.Errorf("LCOE check should carry percentile evidence, got %+v", lcoe.Evidence)
	}
}

func TestLCOEWarningSeverities(t *testing.T) {
	tests := []struct {
		name     string
		lcoe     float64
		severity validation.Severity
	}{
		{"moderately high", 0.12, validation.SeverityMedium},
		{"grossly high", 0.30, validation.SeverityHigh},
		{"grossly low", 0.001, validation.SeverityHigh},
		{"non-positive", 0, validation.SeverityHigh},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := tea.Metrics{LCOE: test.lcoe, NPV: 100, IRR: 0.08}
			r := ValidateTEAResults(m, energy.DomainSolar)

			lcoe := findCheck(t, r, "LCOE plausibility")
			if lcoe.Passed {
				t.Errorf("LCOE %v should fail the plausibility check", test.lcoe)
			}
			found := false
			for _, w := range r.Warnings {
				if w.Severity == test.severity && strings.Contains(w.Message, "LCOE") {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a %s LCOE warning, got %+v", test.severity, r.Warnings)
			}
			if r.HasFatalErrors() {
				t.Error("LCOE has no physical ceiling; it must never be fatal")
			}
		})
	}
}

func TestNegativeNPVIsAnOutcomeNotAnError(t *testing.T) {
	m := tea.Metrics{LCOE: 0.04, NPV: -2_000_000, IRR: 0.02}
	r := ValidateTEAResults(m, energy.DomainSolar)

	npv := findCheck(t, r, "NPV sign")
	if npv.Passed || npv.Score != 50 {
		t.Errorf("negative NPV records a failed check at score 50, got %+v", npv)
	}
	if len(r.Errors) != 0 {
		t.Errorf("a negative NPV is a business outcome, not a data error: %+v", r.Errors)
	}
}

func TestIRRPlausibility(t *testing.T) {
	t.Run("in band", func(t *testing.T) {
		r := ValidateTEAResults(tea.Metrics{LCOE: 0.03, NPV: 1, IRR: 0.12}, energy.DomainSolar)
		irr := findCheck(t, r, "IRR plausibility")
		if !irr.Passed || irr.Score != 85 {
			t.Errorf("IRR 12%% should pass with score 85, got %+v", irr)
		}
	})

	t.Run("high but legal", func(t *testing.T) {
		r := ValidateTEAResults(tea.Metrics{LCOE: 0.03, NPV: 1, IRR: 0.65}, energy.DomainSolar)
		irr := findCheck(t, r, "IRR plausibility")
		if !irr.Passed {
			t.Errorf("IRR 65%% is inside the plausible band, got %+v", irr)
		}
		if len(r.WarningsBySeverity(validation.SeverityMedium)) != 1 {
			t.Errorf("IRR above 50%% should draw a medium warning, got %+v", r.Warnings)
		}
	})

	t.Run("out of band", func(t *testing.T) {
		r := ValidateTEAResults(tea.Metrics{LCOE: 0.03, NPV: 1, IRR: 1.8}, energy.DomainSolar)
		irr := findCheck(t, r, "IRR plausibility")
		if irr.Passed || irr.Score != 30 {
			t.Errorf("IRR 180%% should fail with score 30, got %+v", irr)
		}
		if len(r.WarningsBySeverity(validation.SeverityHigh)) != 1 {
			t.Errorf("implausible IRR should draw a high warning, got %+v", r.Warnings)
		}
	})
}

func TestPaybackAgainstLifetime(t *testing.T) {
	t.Run("within default lifetime", func(t *testing.T) {
		r := ValidateTEAResults(tea.Metrics{LCOE: 0.03, NPV: 1, IRR: 0.1, PaybackYears: 9}, energy.DomainSolar)
		pb := findCheck(t, r, "payback period")
		if !pb.Passed || pb.Score != 85 {
			t.Errorf("9-year payback inside the default 25-year lifetime should pass, got %+v", pb)
		}
	})

	t.Run("beyond explicit lifetime", func(t *testing.T) {
		r := ValidateTEAResults(tea.Metrics{LCOE: 0.03, NPV: 1, IRR: 0.1, PaybackYears: 22, LifetimeYears: 20}, energy.DomainSolar)
		pb := findCheck(t, r, "payback period")
		if pb.Passed || pb.Score != 40 {
			t.Errorf("payback beyond lifetime should fail at score 40, got %+v", pb)
		}
	})

	t.Run("not supplied", func(t *testing.T) {
		r := ValidateTEAResults(tea.Metrics{LCOE: 0.03, NPV: 1, IRR: 0.1}, energy.DomainSolar)
		for _, c := range r.Checks {
			if c.Name == "payback period" {
				t.Error("payback check must be skipped when not supplied")
			}
		}
	})
}

func TestDiscountRateMethodology(t *testing.T) {
	t.Run("customary", func(t *testing.T) {
		r := ValidateTEAResults(tea.Metrics{LCOE: 0.03, NPV: 1, IRR: 0.1, DiscountRate: 0.07}, energy.DomainSolar)
		dr := findCheck(t, r, "discount rate")
		if !dr.Passed || dr.Score != 85 {
			t.Errorf("7%% discount rate is customary, got %+v", dr)
		}
		if dr.Category != validation.CategoryMethodology {
			t.Errorf("discount rate is a methodology check, got %s", dr.Category)
		}
	})

	t.Run("unusual", func(t *testing.T) {
		r := ValidateTEAResults(tea.Metrics{LCOE: 0.03, NPV: 1, IRR: 0.1, DiscountRate: 0.22}, energy.DomainSolar)
		dr := findCheck(t, r, "discount rate")
		if dr.Passed || dr.Score != 55 {
			t.Errorf("22%% discount rate should fail with the reduced non-zero score 55, got %+v", dr)
		}
	})
}

func TestCapacityFactorAssumption(t *testing.T) {
	t.Run("plausible", func(t *testing.T) {
		r := ValidateTEAResults(tea.Metrics{LCOE: 0.03, NPV: 1, IRR: 0.1, CapacityFactor: 0.24}, energy.DomainSolar)
		cf := findCheck(t, r, "capacity factor assumption")
		if !cf.Passed || cf.Score != 85 {
			t.Errorf("24%% solar capacity factor is plausible, got %+v", cf)
		}
		if len(cf.Evidence) != 1 {
			t.Errorf("capacity-factor check should carry percentile evidence, got %+v", cf.Evidence)
		}
	})

	t.Run("above unity is fatal", func(t *testing.T) {
		r := ValidateTEAResults(tea.Metrics{LCOE: 0.03, NPV: 1, IRR: 0.1, CapacityFactor: 1.2}, energy.DomainSolar)
		if !r.HasFatalErrors() || r.IsValid {
			t.Errorf("capacity factor 1.2 is physically impossible, got %+v", r.Errors)
		}
	})
}

func TestHydrogenLCOHBand(t *testing.T) {
	r := ValidateTEAResults(tea.Metrics{LCOE: 4.5, NPV: 1, IRR: 0.1}, energy.DomainHydrogen)
	lcoe := findCheck(t, r, "LCOE plausibility")
	if !lcoe.Passed {
		t.Errorf("$4.50/kg is inside the hydrogen LCOH band, got %+v", lcoe)
	}
	if !strings.Contains(lcoe.Details, "$/kg") && !strings.Contains(lcoe.Evidence[0], "$/kg") {
		t.Errorf("hydrogen cost should be reported per kilogram: %+v", lcoe)
	}
}
