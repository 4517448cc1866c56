// Package testkit provides realistic sample workflow contexts for tests
// and the CLI demo: a clean solar study, a battery study with a physical
// impossibility, and a speculative hydrogen study. The fixtures exercise
// every finding severity the engine can produce.
package testkit

import (
	"enercheck/domain/analysis"
	"enercheck/domain/energy"
	"enercheck/domain/research"
	"enercheck/domain/simulation"
	"enercheck/domain/tea"
	"enercheck/domain/workflow"
)

// TestKit hands out sample inputs. The fixtures are rebuilt per call so
// callers can mutate them freely.
type TestKit struct{}

// NewTestKit creates a test kit instance
func NewTestKit() *TestKit {
	return &TestKit{}
}

// SolarWorkflow is a well-behaved utility-scale solar study: converged
// simulations, in-band outputs, a testable hypothesis, and a supported
// conclusion. Everything should pass.
func (k *TestKit) SolarWorkflow() workflow.Context {
	return workflow.Context{
		Domain: energy.DomainSolar,
		Simulations: []simulation.Result{{
			Name: "annual-yield",
			Tier: simulation.TierReducedOrder,
			Convergence: &simulation.Convergence{
				Converged: true,
				Residual:  3.2e-7,
				Tolerance: 1e-5,
			},
			Outputs: []simulation.Output{
				{Name: "System Efficiency", Value: 19.4, Unit: "%"},
				{Name: "Capacity Factor", Value: 0.26, Unit: ""},
				{Name: "Specific Yield", Value: 1720, Unit: "kWh/kWp"},
			},
		}},
		Hypotheses: []research.Hypothesis{{
			Statement: "Single-axis tracking lifts specific yield above 1900 kWh/kWp at this latitude",
			Field:     "solar",
			SupportingEvidence: []string{
				"TMY irradiance dataset for the site",
				"tracker gain measurements from the adjacent array",
			},
			Predictions: []research.Prediction{
				{Statement: "measured specific yield above 1900 kWh/kWp over 12 months", Measurable: true},
			},
			FeasibilityScore: 82,
		}},
		Conclusions: []analysis.Conclusion{{
			Statement:    "The site supports economically viable tracking-augmented PV",
			SupportLevel: analysis.Supported,
			Confidence:   74,
			KeyMetrics: []analysis.KeyMetric{
				{Name: "specific yield", Value: 1720, Expected: 1650, DeviationPct: 4.2, WithinExpectation: true},
				{Name: "capacity factor", Value: 0.26, Expected: 0.25, DeviationPct: 4.0, WithinExpectation: true},
			},
			Literature: []analysis.Comparison{
				{Source: "NREL ATB 2024", Agreement: analysis.AgreementConsistent},
				{Source: "regional yield survey", Agreement: analysis.AgreementConsistent},
			},
		}},
	}
}

// BatteryWorkflowWithViolation is a storage study whose round-trip
// efficiency exceeds unity: the fatal-error path end to end.
func (k *TestKit) BatteryWorkflowWithViolation() workflow.Context {
	return workflow.Context{
		Domain: energy.DomainBattery,
		Simulations: []simulation.Result{{
			Name: "cycle-model",
			Tier: simulation.TierAnalytical,
			Convergence: &simulation.Convergence{
				Converged: true,
				Residual:  8.5e-5,
				Tolerance: 1e-4, // barely converged, draws a warning too
			},
			Outputs: []simulation.Output{
				{Name: "round-trip efficiency", Value: 1.05, Unit: ""},
				{Name: "energy input", Value: 100, Unit: "kWh"},
				{Name: "energy output", Value: 105, Unit: "kWh"},
			},
		}},
		Conclusions: []analysis.Conclusion{{
			Statement:    "The chemistry outperforms every published cell",
			SupportLevel: analysis.StronglySupported,
			Confidence:   95,
			Literature: []analysis.Comparison{
				{Source: "cycling handbook", Agreement: analysis.AgreementInconsistent},
			},
		}},
	}
}

// HydrogenWorkflowSpeculative is an electrolyzer study built on a thin
// hypothesis: no evidence, no measurable predictions, many assumptions.
func (k *TestKit) HydrogenWorkflowSpeculative() workflow.Context {
	return workflow.Context{
		Domain: energy.DomainHydrogen,
		Hypotheses: []research.Hypothesis{{
			Statement:        "Coupled waste-heat recovery pushes effective electrolyzer efficiency past 90%",
			Field:            "hydrogen",
			FeasibilityScore: 35,
			Predictions: []research.Prediction{
				{Statement: "the system feels more efficient", Measurable: false},
			},
			Assumptions: []string{
				"constant stack temperature",
				"free waste-heat source nearby",
				"no degradation over 10 years",
				"grid electricity at industrial rates",
				"ideal heat-exchanger effectiveness",
				"no balance-of-plant losses",
			},
		}},
		Findings: &research.Findings{
			EstablishedFacts: []research.EstablishedFact{{
				Statement: "Waste-heat integration can't recover more than the exergy of the stream",
				Field:     "thermodynamics",
				Parameter: "heat_recovery",
			}},
			Sources: []string{"exergy analysis primer"},
		},
	}
}

// SolarTEAMetrics is a plausible utility-solar TEA result
func (k *TestKit) SolarTEAMetrics() tea.Metrics {
	return tea.Metrics{
		LCOE:           0.034,
		NPV:            2_450_000,
		IRR:            0.112,
		PaybackYears:   8.5,
		DiscountRate:   0.07,
		LifetimeYears:  30,
		CapacityFactor: 0.26,
		Assumptions: map[string]float64{
			"capex_per_kw":     820,
			"opex_per_kw_year": 15,
			"degradation_rate": 0.005,
		},
	}
}

// AllWorkflows returns the full fixture set in a stable order
func (k *TestKit) AllWorkflows() []workflow.Context {
	return []workflow.Context{
		k.SolarWorkflow(),
		k.BatteryWorkflowWithViolation(),
		k.HydrogenWorkflowSpeculative(),
	}
}
