// Package app wires the pure validation engine into service surfaces:
// report envelopes, identifiers, fingerprints, and logging. No validation
// semantics live here.
package app

import (
	"context"
	"encoding/json"
	"time"

	"enercheck/domain/analysis"
	"enercheck/domain/core"
	"enercheck/domain/energy"
	"enercheck/domain/research"
	"enercheck/domain/simulation"
	"enercheck/domain/tea"
	"enercheck/domain/validation"
	"enercheck/domain/workflow"
	"enercheck/internal/logging"
	"enercheck/internal/plausibility"
	"enercheck/ports"
)

// ValidationService wraps the engine's pure functions with report
// envelopes. It holds no mutable state beyond its logger and is safe for
// concurrent use.
type ValidationService struct {
	log *logging.Logger
}

// NewValidationService creates a validation service
func NewValidationService(log *logging.Logger) *ValidationService {
	if log == nil {
		log = logging.Default
	}
	return &ValidationService{log: log.WithComponent("ValidationService")}
}

// envelope stamps identity, timing, and a payload fingerprint onto an
// engine result. The fingerprint covers the input, so identical inputs are
// recognizable across reports even though report IDs differ.
func (s *ValidationService) envelope(result validation.Result, domain energy.Domain, counts map[string]int, payload interface{}, started time.Time) *ports.Report {
	report := &ports.Report{
		ReportID:     core.NewReportID(),
		GeneratedAt:  core.Now(),
		Domain:       domain,
		EntityCounts: counts,
		Result:       result,
	}
	if raw, err := json.Marshal(payload); err == nil {
		report.Fingerprint = core.NewHash(raw)
	}

	s.log.Info("validation complete: score=%.0f valid=%t checks=%d warnings=%d errors=%d in %s",
		result.OverallScore, result.IsValid, len(result.Checks), len(result.Warnings), len(result.Errors),
		time.Since(started).Round(time.Microsecond))
	return report
}

// ValidateSimulations runs the simulation validator and wraps the result
func (s *ValidationService) ValidateSimulations(ctx context.Context, results []simulation.Result, domain energy.Domain) (*ports.Report, error) {
	started := time.Now()
	result := plausibility.ValidateSimulationResults(results, domain)
	return s.envelope(result, domain, map[string]int{"simulations": len(results)}, results, started), nil
}

// ValidateTEA runs the techno-economic validator and wraps the result
func (s *ValidationService) ValidateTEA(ctx context.Context, metrics tea.Metrics, domain energy.Domain) (*ports.Report, error) {
	started := time.Now()
	result := plausibility.ValidateTEAResults(metrics, domain)
	return s.envelope(result, domain, map[string]int{"tea_metrics": 1}, metrics, started), nil
}

// ValidateHypothesis runs the hypothesis validator and wraps the result
func (s *ValidationService) ValidateHypothesis(ctx context.Context, h research.Hypothesis, findings *research.Findings) (*ports.Report, error) {
	started := time.Now()
	result := plausibility.ValidateHypothesis(h, findings)
	return s.envelope(result, energy.DomainGeneric, map[string]int{"hypotheses": 1}, h, started), nil
}

// ValidateConclusions runs the conclusion validator and wraps the result
func (s *ValidationService) ValidateConclusions(ctx context.Context, conclusions []analysis.Conclusion, sims []simulation.Result, findings *research.Findings) (*ports.Report, error) {
	started := time.Now()
	result := plausibility.ValidateAnalysisConclusions(conclusions, sims, findings)
	counts := map[string]int{"conclusions": len(conclusions), "simulations": len(sims)}
	return s.envelope(result, energy.DomainGeneric, counts, conclusions, started), nil
}

// ValidateWorkflow runs the aggregator over a full workflow context
func (s *ValidationService) ValidateWorkflow(ctx context.Context, wf workflow.Context) (*ports.Report, error) {
	started := time.Now()
	result := plausibility.ValidateWorkflowResults(wf)
	return s.envelope(result, wf.Domain, wf.EntityCounts(), wf, started), nil
}

// QuickCheck probes a single value without building a report
func (s *ValidationService) QuickCheck(parameter string, value float64, domain energy.Domain) plausibility.QuickCheckResult {
	return plausibility.QuickPlausibilityCheck(parameter, value, domain)
}

var _ ports.ValidatorPort = (*ValidationService)(nil)
