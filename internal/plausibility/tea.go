package plausibility

import (
	"fmt"

	"enercheck/domain/energy"
	"enercheck/domain/tea"
	"enercheck/domain/validation"
	"enercheck/internal/benchmark"
)

// LCOE band multipliers. Costs half the benchmark floor or double the
// ceiling are implausible but never impossible, so LCOE findings are
// warnings at worst, never fatal.
const (
	lcoeLowMultiplier   = 0.5
	lcoeHighMultiplier  = 2.0
	lcoeGrossHighFactor = 5.0
	lcoeGrossLowFactor  = 0.1
)

// IRR plausibility band. Returns above 50% are legal but deserve a second
// look; outside [-50%, 100%] the projection math is almost certainly wrong.
const (
	irrFloor       = -0.5
	irrCeiling     = 1.0
	irrReviewAbove = 0.5
)

// ValidateTEAResults checks techno-economic metrics for plausibility
// against the technology's cost benchmarks. Nothing here is fatal: economic
// implausibility is a review flag, not a physical impossibility.
func ValidateTEAResults(m tea.Metrics, domain energy.Domain) validation.Result {
	var r validation.Result

	assessLCOE(&r, m, domain)
	assessNPV(&r, m)
	assessIRR(&r, m)
	if m.HasPayback() {
		assessPayback(&r, m)
	}
	if m.HasDiscountRate() {
		assessDiscountRate(&r, m)
	}
	if m.HasCapacityFactor() {
		assessCapacityFactor(&r, m, domain)
	}

	r.Recommendations = BuildRecommendations(r.Checks, r.Warnings, r.Errors)
	validation.Finalize(&r, validation.DefaultThreshold)
	return r
}

func assessLCOE(r *validation.Result, m tea.Metrics, domain energy.Domain) {
	metric := benchmark.MetricLCOE
	unit := "$/kWh"
	if domain == energy.DomainHydrogen {
		// Hydrogen producers report cost per kilogram through the same field.
		metric = benchmark.MetricLCOH
		unit = "$/kg"
	}

	band, ok := benchmark.Lookup(domain, metric)
	if !ok {
		return
	}

	check := validation.Check{
		Name:     "LCOE plausibility",
		Category: validation.CategoryRangeValidation,
		Evidence: []string{
			fmt.Sprintf("LCOE %.3f %s sits at the %s percentile of the %s benchmark band %.3f–%.3f %s",
				m.LCOE, unit, ordinal(int(band.Percentile(m.LCOE))), domain, band.Min, band.Max, unit),
		},
	}

	if m.LCOE >= band.Min*lcoeLowMultiplier && m.LCOE <= band.Max*lcoeHighMultiplier {
		check.Passed = true
		check.Score = 85
		check.Details = fmt.Sprintf("LCOE %.3f %s is within the plausible band for %s", m.LCOE, unit, domain)
		r.Checks = append(r.Checks, check)
		return
	}

	check.Passed = false
	check.Score = 40
	check.Details = fmt.Sprintf("LCOE %.3f %s falls outside the plausible band [%.3f, %.3f] for %s",
		m.LCOE, unit, band.Min*lcoeLowMultiplier, band.Max*lcoeHighMultiplier, domain)
	r.Checks = append(r.Checks, check)

	sev := validation.SeverityMedium
	if m.LCOE > band.Max*lcoeGrossHighFactor || m.LCOE < band.Min*lcoeGrossLowFactor || m.LCOE <= 0 {
		sev = validation.SeverityHigh
	}
	r.Warnings = append(r.Warnings, validation.Warning{
		Category:   validation.CategoryRangeValidation,
		Message:    fmt.Sprintf("LCOE %.3f %s is implausible for %s (benchmark %.3f–%.3f)", m.LCOE, unit, domain, band.Min, band.Max),
		Severity:   sev,
		Suggestion: "Review CAPEX, OPEX, and capacity-factor assumptions feeding the LCOE calculation",
	})
}

func assessNPV(r *validation.Result, m tea.Metrics) {
	check := validation.Check{
		Name:     "NPV sign",
		Category: validation.CategoryInternalConsistency,
	}
	if m.NPV > 0 {
		check.Passed = true
		check.Score = 90
		check.Details = fmt.Sprintf("NPV $%.0f is positive; the project is economically viable under the stated assumptions", m.NPV)
	} else {
		// A negative NPV is a legitimate business outcome, not a data error.
		check.Passed = false
		check.Score = 50
		check.Details = fmt.Sprintf("NPV $%.0f is not positive; the project does not clear its discount rate as modeled", m.NPV)
	}
	r.Checks = append(r.Checks, check)
}

func assessIRR(r *validation.Result, m tea.Metrics) {
	check := validation.Check{
		Name:     "IRR plausibility",
		Category: validation.CategoryRangeValidation,
	}
	if m.IRR >= irrFloor && m.IRR <= irrCeiling {
		check.Passed = true
		check.Score = 85
		check.Details = fmt.Sprintf("IRR %.1f%% is within the plausible range", m.IRR*100)
		r.Checks = append(r.Checks, check)
		if m.IRR > irrReviewAbove {
			r.Warnings = append(r.Warnings, validation.Warning{
				Category:   validation.CategoryRangeValidation,
				Message:    fmt.Sprintf("IRR %.1f%% is unusually high for energy infrastructure", m.IRR*100),
				Severity:   validation.SeverityMedium,
				Suggestion: "Re-verify the revenue and cost projections; energy projects rarely return above 50%",
			})
		}
		return
	}

	check.Passed = false
	check.Score = 30
	check.Details = fmt.Sprintf("IRR %.1f%% is outside the plausible range [%.0f%%, %.0f%%]", m.IRR*100, irrFloor*100, irrCeiling*100)
	r.Checks = append(r.Checks, check)
	r.Warnings = append(r.Warnings, validation.Warning{
		Category:   validation.CategoryRangeValidation,
		Message:    fmt.Sprintf("IRR %.1f%% suggests a cash-flow modeling error", m.IRR*100),
		Severity:   validation.SeverityHigh,
		Suggestion: "Check cash-flow signs and the discounting convention in the financial model",
	})
}

func assessPayback(r *validation.Result, m tea.Metrics) {
	lifetime := m.Lifetime()
	check := validation.Check{
		Name:     "payback period",
		Category: validation.CategoryRangeValidation,
	}
	if m.PaybackYears > 0 && m.PaybackYears <= lifetime {
		check.Passed = true
		check.Score = 85
		check.Details = fmt.Sprintf("payback %.1f years falls within the %.0f-year project lifetime", m.PaybackYears, lifetime)
		r.Checks = append(r.Checks, check)
		return
	}

	check.Passed = false
	check.Score = 40
	check.Details = fmt.Sprintf("payback %.1f years exceeds the %.0f-year project lifetime", m.PaybackYears, lifetime)
	r.Checks = append(r.Checks, check)
	r.Warnings = append(r.Warnings, validation.Warning{
		Category:   validation.CategoryRangeValidation,
		Message:    fmt.Sprintf("the project never pays back within its %.0f-year lifetime", lifetime),
		Severity:   validation.SeverityMedium,
		Suggestion: "Reassess revenue assumptions or consider whether the project is viable at all",
	})
}

func assessDiscountRate(r *validation.Result, m tea.Metrics) {
	band, ok := benchmark.Lookup(energy.DomainGeneric, benchmark.MetricDiscountRate)
	if !ok {
		return
	}

	check := validation.Check{
		Name:     "discount rate",
		Category: validation.CategoryMethodology,
	}
	if band.Contains(m.DiscountRate) {
		check.Passed = true
		check.Score = 85
		check.Details = fmt.Sprintf("discount rate %.1f%% is within the customary %s band", m.DiscountRate*100, band)
	} else {
		// Unusual, not wrong: sovereign or concessional financing can sit
		// outside the commercial band.
		check.Passed = false
		check.Score = 55
		check.Details = fmt.Sprintf("discount rate %.1f%% is outside the customary band %s", m.DiscountRate*100, band)
	}
	r.Checks = append(r.Checks, check)
}

func assessCapacityFactor(r *validation.Result, m tea.Metrics, domain energy.Domain) {
	band, ok := benchmark.Lookup(domain, benchmark.MetricCapacityFactor)
	if !ok {
		return
	}

	check := validation.Check{
		Name:     "capacity factor assumption",
		Category: validation.CategoryRangeValidation,
		Evidence: []string{
			fmt.Sprintf("capacity factor %.1f%% sits at the %s percentile of the %s benchmark band %.0f%%–%.0f%%",
				m.CapacityFactor*100, ordinal(int(band.Percentile(m.CapacityFactor))), domain, band.Min*100, band.Max*100),
		},
	}

	if ceiling, ok := benchmark.AbsoluteMax(domain, benchmark.MetricCapacityFactor); ok && m.CapacityFactor > ceiling {
		check.Passed = false
		check.Score = 20
		check.Details = fmt.Sprintf("capacity factor %.2f exceeds the physical maximum %.2f", m.CapacityFactor, ceiling)
		r.Checks = append(r.Checks, check)
		r.Errors = append(r.Errors, validation.Error{
			Category: validation.CategoryPhysicalPlausibility,
			Message:  fmt.Sprintf("capacity factor %.2f exceeds 1.0", m.CapacityFactor),
			Fatal:    true,
		})
		return
	}

	if m.CapacityFactor >= band.Min*lowMultiplier && m.CapacityFactor <= band.Max {
		check.Passed = true
		check.Score = 85
		check.Details = fmt.Sprintf("capacity factor %.1f%% is plausible for %s", m.CapacityFactor*100, domain)
	} else {
		check.Passed = false
		check.Score = 40
		check.Details = fmt.Sprintf("capacity factor %.1f%% is outside the plausible range for %s", m.CapacityFactor*100, domain)
		r.Warnings = append(r.Warnings, validation.Warning{
			Category:   validation.CategoryRangeValidation,
			Message:    fmt.Sprintf("capacity factor %.1f%% is atypical for %s (benchmark %.0f%%–%.0f%%)", m.CapacityFactor*100, domain, band.Min*100, band.Max*100),
			Severity:   validation.SeverityMedium,
			Suggestion: "Check the resource data and availability assumptions behind the capacity factor",
		})
	}
	r.Checks = append(r.Checks, check)
}

// ordinal renders 1 -> "1st", 33 -> "33rd" for percentile evidence strings
func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
