// Package plausibility is the validation engine: pure functions that score
// simulation results, techno-economic metrics, hypotheses, and analysis
// conclusions against the benchmark registry and the established-facts
// table. Every function allocates a fresh result per call and reads only
// the immutable registries, so concurrent use needs no locking.
package plausibility

import (
	"fmt"
	"strings"

	"enercheck/domain/energy"
	"enercheck/domain/simulation"
	"enercheck/domain/validation"
	"enercheck/internal/benchmark"
)

// lowMultiplier extends the plausible band below the typical minimum.
// Values down to half the typical floor pass with a reduced score.
// Calibrated by inspection in the original rule set; preserved exactly.
const lowMultiplier = 0.5

// nearCeilingFraction marks values within 2% of a hard physical ceiling,
// which escalates the out-of-band warning to high severity.
const nearCeilingFraction = 0.98

// metricPatterns maps case-insensitive output-name substrings onto registry
// metric keys. First match wins; longer, more specific patterns sort first.
var metricPatterns = []struct {
	substring string
	metric    string
}{
	{"capacity factor", benchmark.MetricCapacityFactor},
	{"capacity_factor", benchmark.MetricCapacityFactor},
	{"specific yield", benchmark.MetricSpecificYield},
	{"specific_yield", benchmark.MetricSpecificYield},
	{"efficiency", benchmark.MetricEfficiency},
	{"power coefficient", benchmark.MetricEfficiency},
	{"lcoe", benchmark.MetricLCOE},
}

// matchMetric resolves a freeform output name to a registry metric key.
// Producers supply free text here, so substring matching is deliberate.
func matchMetric(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, p := range metricPatterns {
		if strings.Contains(lower, p.substring) {
			return p.metric, true
		}
	}
	return "", false
}

// normalizeOutput converts percent-style outputs to fractions so they
// compare against the registry's fractional bands.
func normalizeOutput(out simulation.Output) float64 {
	if strings.Contains(out.Unit, "%") {
		return out.Value / 100
	}
	return out.Value
}

// ValidateSimulationResults checks a batch of simulation results against
// the domain's benchmarks and physical ceilings. Convergence, per-output
// plausibility, energy balance, and raw-series quality each contribute
// checks; a value above a hard physical ceiling records a fatal error and
// forces the whole result invalid.
func ValidateSimulationResults(results []simulation.Result, domain energy.Domain) validation.Result {
	var r validation.Result

	for _, sim := range results {
		label := sim.Label()

		if sim.Convergence != nil {
			assessConvergence(&r, *sim.Convergence, label)
		}

		for _, out := range sim.Outputs {
			metric, ok := matchMetric(out.Name)
			if ok && metric != benchmark.MetricLCOE {
				assessOutput(&r, out, metric, domain, label)
			}
			if len(out.Samples) > 0 {
				check, warns, errs := profileSeries(out, label)
				r.Checks = append(r.Checks, check)
				r.Warnings = append(r.Warnings, warns...)
				r.Errors = append(r.Errors, errs...)
			}
		}

		assessEnergyBalance(&r, sim, label)
	}

	r.Recommendations = BuildRecommendations(r.Checks, r.Warnings, r.Errors)
	validation.Finalize(&r, validation.DefaultThreshold)
	return r
}

func assessConvergence(r *validation.Result, conv simulation.Convergence, label string) {
	check := validation.Check{
		Name:     fmt.Sprintf("convergence: %s", label),
		Category: validation.CategoryMethodology,
		Passed:   conv.Converged,
	}

	if conv.Converged {
		check.Score = 100
		check.Details = fmt.Sprintf("solver converged (residual %.3g, tolerance %.3g)", conv.Residual, conv.Tolerance)
		if ratio := conv.Ratio(); ratio > 0.5 && ratio < 1 {
			r.Warnings = append(r.Warnings, validation.Warning{
				Category: validation.CategoryMethodology,
				Message:  fmt.Sprintf("%s converged close to tolerance (residual/tolerance = %.2f)", label, ratio),
				Severity: validation.SeverityMedium,
			})
		}
	} else {
		check.Score = 30
		check.Details = fmt.Sprintf("solver did not converge (residual %.3g, tolerance %.3g)", conv.Residual, conv.Tolerance)
		r.Warnings = append(r.Warnings, validation.Warning{
			Category:   validation.CategoryMethodology,
			Message:    fmt.Sprintf("%s did not converge; its outputs are unreliable", label),
			Severity:   validation.SeverityHigh,
			Suggestion: "Re-run the simulation with a tighter mesh, relaxed tolerance, or better initial conditions",
		})
	}

	r.Checks = append(r.Checks, check)
}

// assessOutput compares one named output against the domain's typical band
// and absolute physical ceiling.
func assessOutput(r *validation.Result, out simulation.Output, metric string, domain energy.Domain, label string) {
	value := normalizeOutput(out)
	checkName := fmt.Sprintf("%s: %s", label, out.Name)

	ceiling, hasCeiling := benchmark.AbsoluteMax(domain, metric)
	if hasCeiling && value > ceiling {
		r.Checks = append(r.Checks, validation.Check{
			Name:     checkName,
			Category: validation.CategoryPhysicalPlausibility,
			Passed:   false,
			Score:    20,
			Details:  fmt.Sprintf("%s = %.4g exceeds the physical maximum %.4g for %s %s", out.Name, value, ceiling, domain, metric),
		})
		r.Errors = append(r.Errors, validation.Error{
			Category: validation.CategoryPhysicalPlausibility,
			Message:  fmt.Sprintf("%s reports %s = %.4g, above the physical maximum %.4g", label, out.Name, value, ceiling),
			Fatal:    true,
			Context:  fmt.Sprintf("domain=%s metric=%s", domain, metric),
		})
		return
	}

	band, ok := benchmark.Lookup(domain, metric)
	if !ok {
		// No benchmark for this domain/metric pair; nothing to assess.
		return
	}

	switch {
	case band.Contains(value):
		r.Checks = append(r.Checks, validation.Check{
			Name:     checkName,
			Category: validation.CategoryRangeValidation,
			Passed:   true,
			Score:    90,
			Details:  fmt.Sprintf("%s = %.4g is within the typical %s band %s", out.Name, value, domain, band),
		})
	case value >= band.Min*lowMultiplier && value < band.Min:
		r.Checks = append(r.Checks, validation.Check{
			Name:     checkName,
			Category: validation.CategoryRangeValidation,
			Passed:   true,
			Score:    85,
			Details:  fmt.Sprintf("%s = %.4g is below typical but within the extended band for %s", out.Name, value, domain),
		})
	case value > band.Max:
		sev := validation.SeverityMedium
		if hasCeiling && value >= ceiling*nearCeilingFraction {
			sev = validation.SeverityHigh
		}
		r.Checks = append(r.Checks, validation.Check{
			Name:     checkName,
			Category: validation.CategoryRangeValidation,
			Passed:   true,
			Score:    70,
			Details:  fmt.Sprintf("%s = %.4g exceeds the typical maximum %.4g but is physically possible", out.Name, value, band.Max),
		})
		r.Warnings = append(r.Warnings, validation.Warning{
			Category:   validation.CategoryRangeValidation,
			Message:    fmt.Sprintf("%s: %s = %.4g is above the typical %s range %s", label, out.Name, value, domain, band),
			Severity:   sev,
			Suggestion: "Verify the input assumptions; values this far above typical usually indicate an input error",
		})
	default: // below Min*lowMultiplier
		r.Checks = append(r.Checks, validation.Check{
			Name:     checkName,
			Category: validation.CategoryRangeValidation,
			Passed:   false,
			Score:    40,
			Details:  fmt.Sprintf("%s = %.4g is far below the typical %s band %s", out.Name, value, domain, band),
		})
		r.Warnings = append(r.Warnings, validation.Warning{
			Category:   validation.CategoryRangeValidation,
			Message:    fmt.Sprintf("%s: %s = %.4g is implausibly low for %s", label, out.Name, value, domain),
			Severity:   validation.SeverityMedium,
			Suggestion: "Check for unit mismatches or degraded-system assumptions",
		})
	}
}

// energyBalanceTolerance allows 1% measurement slack before calling a
// result a first-law violation.
const energyBalanceTolerance = 1.01

// assessEnergyBalance enforces conservation when a result reports both an
// energy input and an energy output in the same unit.
func assessEnergyBalance(r *validation.Result, sim simulation.Result, label string) {
	var in, out *simulation.Output
	for i := range sim.Outputs {
		name := strings.ToLower(sim.Outputs[i].Name)
		switch {
		case in == nil && (strings.Contains(name, "energy in") || strings.Contains(name, "energy_in")):
			in = &sim.Outputs[i]
		case out == nil && (strings.Contains(name, "energy out") || strings.Contains(name, "energy_out")):
			out = &sim.Outputs[i]
		}
	}
	if in == nil || out == nil || in.Unit != out.Unit {
		return
	}

	check := validation.Check{
		Name:     fmt.Sprintf("energy balance: %s", label),
		Category: validation.CategoryPhysicalPlausibility,
	}
	if out.Value <= in.Value*energyBalanceTolerance {
		check.Passed = true
		check.Score = 90
		check.Details = fmt.Sprintf("energy out %.4g %s does not exceed energy in %.4g %s", out.Value, out.Unit, in.Value, in.Unit)
	} else {
		check.Passed = false
		check.Score = 20
		check.Details = fmt.Sprintf("energy out %.4g %s exceeds energy in %.4g %s", out.Value, out.Unit, in.Value, in.Unit)
		r.Errors = append(r.Errors, validation.Error{
			Category: validation.CategoryPhysicalPlausibility,
			Message:  fmt.Sprintf("%s violates energy conservation: output %.4g %s from input %.4g %s", label, out.Value, out.Unit, in.Value, in.Unit),
			Fatal:    true,
		})
	}
	r.Checks = append(r.Checks, check)
}
