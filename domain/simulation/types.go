// Package simulation defines the shape of results emitted by the tiered
// simulation engine. The validation engine consumes these read-only; it
// never runs simulations itself.
package simulation

import "enercheck/domain/core"

// Tier labels which rung of the simulation ladder produced a result.
// Free-text values from older producers are tolerated.
type Tier string

const (
	TierAnalytical   Tier = "analytical"
	TierReducedOrder Tier = "reduced_order"
	TierFullPhysics  Tier = "full_physics"
)

// Convergence captures the solver's own account of how the run terminated
type Convergence struct {
	Converged bool    `json:"converged"`
	Residual  float64 `json:"residual"`
	Tolerance float64 `json:"tolerance"`
}

// Ratio returns residual/tolerance, or 0 when tolerance is unset. A ratio
// near 1 means the solver barely made it under the wire.
func (c Convergence) Ratio() float64 {
	if c.Tolerance == 0 {
		return 0
	}
	return c.Residual / c.Tolerance
}

// Output is one named numeric quantity a simulation produced. Samples
// optionally carries the raw series behind the scalar (e.g. hourly yield)
// for data-quality screening.
type Output struct {
	Name    string    `json:"name"`
	Value   float64   `json:"value"`
	Unit    string    `json:"unit"`
	Samples []float64 `json:"samples,omitempty"`
}

// Result is a single simulation run's reported outcome
type Result struct {
	ID          core.SimulationID `json:"id,omitempty"`
	Name        string            `json:"name"`
	Tier        Tier              `json:"tier,omitempty"`
	Convergence *Convergence      `json:"convergence_metrics,omitempty"`
	Outputs     []Output          `json:"outputs"`
}

// Label returns a human-readable handle for the run
func (r Result) Label() string {
	if r.Name != "" {
		return r.Name
	}
	if !core.ID(r.ID).IsEmpty() {
		return r.ID.String()
	}
	return "simulation"
}
