// Package ports defines the boundaries between the validation engine and
// the surfaces that consume it (HTTP API, CLI, batch runner).
package ports

import (
	"context"

	"enercheck/domain/analysis"
	"enercheck/domain/core"
	"enercheck/domain/energy"
	"enercheck/domain/research"
	"enercheck/domain/simulation"
	"enercheck/domain/tea"
	"enercheck/domain/validation"
	"enercheck/domain/workflow"
	"enercheck/internal/plausibility"
)

// Report is the envelope every surface returns: the engine's result plus
// the bookkeeping callers need to file it.
type Report struct {
	ReportID     core.ReportID     `json:"report_id"`
	GeneratedAt  core.Timestamp    `json:"generated_at"`
	Domain       energy.Domain     `json:"domain,omitempty"`
	EntityCounts map[string]int    `json:"entity_counts,omitempty"`
	Fingerprint  core.Hash         `json:"fingerprint,omitempty"`
	Result       validation.Result `json:"result"`
}

// ValidatorPort exposes the six engine operations behind one interface.
// The context parameter exists for interface symmetry with the rest of the
// codebase; the engine itself never blocks.
type ValidatorPort interface {
	ValidateSimulations(ctx context.Context, results []simulation.Result, domain energy.Domain) (*Report, error)
	ValidateTEA(ctx context.Context, metrics tea.Metrics, domain energy.Domain) (*Report, error)
	ValidateHypothesis(ctx context.Context, h research.Hypothesis, findings *research.Findings) (*Report, error)
	ValidateConclusions(ctx context.Context, conclusions []analysis.Conclusion, sims []simulation.Result, findings *research.Findings) (*Report, error)
	ValidateWorkflow(ctx context.Context, wf workflow.Context) (*Report, error)
	QuickCheck(parameter string, value float64, domain energy.Domain) plausibility.QuickCheckResult
}

// ReportRendererPort turns a report into display text
type ReportRendererPort interface {
	Markdown(report *Report) string
	HTML(report *Report) []byte
}
