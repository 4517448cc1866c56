// Package facts holds the established-facts table: settled physical limits
// paired with numeric predicates. The table is assembled once at package
// init and read-only afterward.
//
// Per-entity validators encode the same limits inline where they need
// context-specific error text; the generic consumer of this table is the
// hypothesis contradiction scan.
package facts

import (
	"enercheck/domain/research"
)

// energyBalanceTolerance allows 1% measurement slack on conservation
// checks before calling a result impossible.
const energyBalanceTolerance = 1.01

var table = []research.EstablishedFact{
	{
		Statement: "Round-trip storage efficiency cannot exceed 100%",
		Field:     "energy_storage",
		Parameter: "round_trip_efficiency",
		Check: func(vals ...float64) bool {
			return len(vals) >= 1 && vals[0] <= 1.0
		},
	},
	{
		Statement: "A heat pump's COP cannot exceed the Carnot limit Th/(Th-Tc)",
		Field:     "thermodynamics",
		Parameter: "cop",
		// vals: cop, hot-side kelvin, cold-side kelvin
		Check: func(vals ...float64) bool {
			if len(vals) < 3 {
				return true
			}
			cop, th, tc := vals[0], vals[1], vals[2]
			if th <= tc || tc <= 0 {
				return false
			}
			return cop <= th/(th-tc)
		},
	},
	{
		Statement: "Useful energy output cannot exceed energy input",
		Field:     "thermodynamics",
		Parameter: "energy_balance",
		// vals: energy in, energy out
		Check: func(vals ...float64) bool {
			if len(vals) < 2 {
				return true
			}
			return vals[1] <= vals[0]*energyBalanceTolerance
		},
	},
	{
		Statement: "No photovoltaic device has exceeded 47% conversion efficiency, even under concentration",
		Field:     "solar",
		Parameter: "efficiency",
		Check: func(vals ...float64) bool {
			return len(vals) >= 1 && vals[0] <= 0.47
		},
	},
	{
		Statement: "A wind turbine cannot extract more than 59.3% of the kinetic energy in the wind",
		Field:     "wind",
		Parameter: "power_coefficient",
		Check: func(vals ...float64) bool {
			return len(vals) >= 1 && vals[0] <= 16.0/27.0
		},
	},
	{
		Statement: "Electrolyzer efficiency cannot exceed 100% of the hydrogen higher heating value",
		Field:     "hydrogen",
		Parameter: "electrolyzer_efficiency",
		Check: func(vals ...float64) bool {
			return len(vals) >= 1 && vals[0] <= 1.0
		},
	},
	{
		Statement: "Capacity factor cannot exceed 100%",
		Field:     "energy_systems",
		Parameter: "capacity_factor",
		Check: func(vals ...float64) bool {
			return len(vals) >= 1 && vals[0] <= 1.0
		},
	},
}

// All returns the full fact table. Callers must treat the slice as
// read-only; it is the package's single shared instance.
func All() []research.EstablishedFact {
	return table
}

// ForField returns the facts tagged with the given field
func ForField(field string) []research.EstablishedFact {
	var out []research.EstablishedFact
	for _, f := range table {
		if f.Field == field {
			out = append(out, f)
		}
	}
	return out
}
