// Package workflow bundles the artifacts of one research workflow run for
// combined validation.
package workflow

import (
	"enercheck/domain/analysis"
	"enercheck/domain/core"
	"enercheck/domain/energy"
	"enercheck/domain/research"
	"enercheck/domain/simulation"
)

// Context gathers everything a workflow produced. Any of the slices may be
// empty; the aggregator only invokes validators for populated sections.
type Context struct {
	ID          core.WorkflowID       `json:"id,omitempty"`
	Domain      energy.Domain         `json:"domain"`
	Simulations []simulation.Result   `json:"simulation_results,omitempty"`
	Hypotheses  []research.Hypothesis `json:"hypotheses,omitempty"`
	Conclusions []analysis.Conclusion `json:"conclusions,omitempty"`
	Findings    *research.Findings    `json:"research_findings,omitempty"`
}

// IsEmpty reports whether the context carries nothing to validate
func (c Context) IsEmpty() bool {
	return len(c.Simulations) == 0 && len(c.Hypotheses) == 0 && len(c.Conclusions) == 0
}

// EntityCounts summarizes how many of each entity type the context holds
func (c Context) EntityCounts() map[string]int {
	return map[string]int{
		"simulations": len(c.Simulations),
		"hypotheses":  len(c.Hypotheses),
		"conclusions": len(c.Conclusions),
	}
}
