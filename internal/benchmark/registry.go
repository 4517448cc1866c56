// Package benchmark holds the plausible-range registry for clean-energy
// metrics. The tables are authored constants assembled once at package
// init; nothing writes to them afterward, so concurrent lookups need no
// locking.
//
// Typical bands follow published industry figures (NREL ATB, Lazard LCOE
// analyses, IRENA capacity-factor surveys); absolute ceilings are physical
// limits, not market observations.
package benchmark

import (
	"fmt"
	"sort"

	"enercheck/domain/energy"
)

// Metric name constants used as registry keys. Validators map freeform
// output names onto these before lookup.
const (
	MetricEfficiency     = "efficiency"
	MetricCapacityFactor = "capacity_factor"
	MetricSpecificYield  = "specific_yield"
	MetricLCOE           = "lcoe"
	MetricLCOH           = "lcoh"
	MetricDiscountRate   = "discount_rate"
)

// Range is a plausible [Min, Max] band for one domain/metric pair
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies inside the typical band (inclusive)
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// ContainsExtended reports whether v lies inside the extended band
// [Min*lowMultiplier, Max*highMultiplier] used for soft plausibility.
func (r Range) ContainsExtended(v, lowMultiplier, highMultiplier float64) bool {
	return v >= r.Min*lowMultiplier && v <= r.Max*highMultiplier
}

// Percentile places v within the band as a 0-100 position, clamped at the
// edges. Used for report evidence, not for pass/fail decisions.
func (r Range) Percentile(v float64) float64 {
	if r.Max <= r.Min {
		return 50
	}
	p := (v - r.Min) / (r.Max - r.Min) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

type key struct {
	domain energy.Domain
	metric string
}

// Typical plausible bands per domain and metric. Efficiencies and capacity
// factors are fractions; LCOE is $/kWh; LCOH is $/kg; specific yield is
// kWh/kWp per year.
var registry = map[key]Range{
	{energy.DomainSolar, MetricEfficiency}:     {0.15, 0.23},
	{energy.DomainSolar, MetricCapacityFactor}: {0.15, 0.30},
	{energy.DomainSolar, MetricSpecificYield}:  {1000, 2000},
	{energy.DomainSolar, MetricLCOE}:           {0.02, 0.05},

	{energy.DomainWind, MetricEfficiency}:     {0.35, 0.50},
	{energy.DomainWind, MetricCapacityFactor}: {0.25, 0.45},
	{energy.DomainWind, MetricLCOE}:           {0.026, 0.050},

	{energy.DomainWindOffshore, MetricEfficiency}:     {0.35, 0.50},
	{energy.DomainWindOffshore, MetricCapacityFactor}: {0.40, 0.55},
	{energy.DomainWindOffshore, MetricLCOE}:           {0.055, 0.085},

	{energy.DomainBattery, MetricEfficiency}: {0.85, 0.95},
	{energy.DomainBattery, MetricLCOE}:       {0.12, 0.18},

	{energy.DomainHydrogen, MetricEfficiency}: {0.60, 0.80},
	{energy.DomainHydrogen, MetricLCOH}:       {3.0, 6.0},

	{energy.DomainNuclear, MetricCapacityFactor}: {0.85, 0.95},
	{energy.DomainNuclear, MetricLCOE}:           {0.06, 0.12},

	{energy.DomainGeothermal, MetricCapacityFactor}: {0.60, 0.90},

	// Cross-technology rows live under the generic domain and are found
	// via lookup fallback.
	{energy.DomainGeneric, MetricDiscountRate}: {0.03, 0.15},
}

// BetzLimit is the theoretical ceiling on the fraction of wind kinetic
// energy a turbine can extract: 16/27.
const BetzLimit = 16.0 / 27.0

// SolarEfficiencyCeiling is the record lab efficiency for any photovoltaic
// device (multi-junction under concentration).
const SolarEfficiencyCeiling = 0.47

// Hard physical ceilings. A value above one of these is impossible, not
// merely atypical.
var absoluteMax = map[key]float64{
	{energy.DomainSolar, MetricEfficiency}:        SolarEfficiencyCeiling,
	{energy.DomainWind, MetricEfficiency}:         BetzLimit,
	{energy.DomainWindOffshore, MetricEfficiency}: BetzLimit,
	{energy.DomainBattery, MetricEfficiency}:      1.0,
	{energy.DomainHydrogen, MetricEfficiency}:     1.0,

	{energy.DomainGeneric, MetricCapacityFactor}: 1.0,
}

// Lookup returns the typical band for a domain/metric pair. When no
// technology-specific row exists it falls back to the generic row, so
// cross-technology metrics like discount_rate resolve for every domain.
func Lookup(domain energy.Domain, metric string) (Range, bool) {
	if r, ok := registry[key{domain, metric}]; ok {
		return r, true
	}
	r, ok := registry[key{energy.DomainGeneric, metric}]
	return r, ok
}

// AbsoluteMax returns the hard physical ceiling for a domain/metric pair,
// with the same generic-row fallback as Lookup.
func AbsoluteMax(domain energy.Domain, metric string) (float64, bool) {
	if m, ok := absoluteMax[key{domain, metric}]; ok {
		return m, true
	}
	m, ok := absoluteMax[key{energy.DomainGeneric, metric}]
	return m, ok
}

// Entry is one registry row, exported for the benchmarks listing surface
type Entry struct {
	Domain      energy.Domain `json:"domain"`
	Metric      string        `json:"metric"`
	Min         float64       `json:"min"`
	Max         float64       `json:"max"`
	AbsoluteMax float64       `json:"absolute_max,omitempty"`
}

// All returns every registry row in a stable order
func All() []Entry {
	entries := make([]Entry, 0, len(registry))
	for k, r := range registry {
		e := Entry{Domain: k.domain, Metric: k.metric, Min: r.Min, Max: r.Max}
		if m, ok := absoluteMax[k]; ok {
			e.AbsoluteMax = m
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Domain != entries[j].Domain {
			return entries[i].Domain < entries[j].Domain
		}
		return entries[i].Metric < entries[j].Metric
	})
	return entries
}
