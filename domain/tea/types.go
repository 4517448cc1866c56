// Package tea defines the techno-economic metrics emitted by the financial
// engine. The validation engine assesses plausibility only; all discounted
// cash-flow math happens upstream.
package tea

// DefaultLifetimeYears is assumed when a producer omits the project
// lifetime. Matches the financial engine's own default assumption set.
const DefaultLifetimeYears = 25.0

// Metrics bundles one project's techno-economic results.
//
// LCOE, NPV and IRR are always assessed. PaybackYears, DiscountRate and
// CapacityFactor are optional: values <= 0 mean "not supplied" and skip the
// corresponding checks, since none of the three can legitimately be zero or
// negative.
type Metrics struct {
	// LCOE is the levelized cost of energy in $/kWh ($/kg for hydrogen
	// producers that report LCOH through the same field).
	LCOE float64 `json:"lcoe"`

	// NPV is the net present value in dollars.
	NPV float64 `json:"npv"`

	// IRR is the internal rate of return as a fraction (0.12 = 12%).
	IRR float64 `json:"irr"`

	// PaybackYears is the simple payback period.
	PaybackYears float64 `json:"payback_years,omitempty"`

	// DiscountRate is the rate used for discounting, as a fraction.
	DiscountRate float64 `json:"discount_rate,omitempty"`

	// LifetimeYears is the project lifetime the cash flows span.
	LifetimeYears float64 `json:"lifetime_years,omitempty"`

	// CapacityFactor is the assumed or realized capacity factor, as a
	// fraction.
	CapacityFactor float64 `json:"capacity_factor,omitempty"`

	// Assumptions carries the named inputs behind the metrics, for report
	// evidence only.
	Assumptions map[string]float64 `json:"assumptions,omitempty"`
}

// Lifetime returns the supplied lifetime or the default when absent
func (m Metrics) Lifetime() float64 {
	if m.LifetimeYears > 0 {
		return m.LifetimeYears
	}
	return DefaultLifetimeYears
}

// HasPayback reports whether a payback period was supplied
func (m Metrics) HasPayback() bool { return m.PaybackYears > 0 }

// HasDiscountRate reports whether a discount rate was supplied
func (m Metrics) HasDiscountRate() bool { return m.DiscountRate > 0 }

// HasCapacityFactor reports whether a capacity factor was supplied
func (m Metrics) HasCapacityFactor() bool { return m.CapacityFactor > 0 }
