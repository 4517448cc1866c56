package plausibility

import (
	"enercheck/domain/validation"
	"enercheck/domain/workflow"
)

// ValidateWorkflowResults folds the per-entity validators over one workflow
// context and recomputes a single combined score. The union is flat and
// unweighted: no entity type counts for more than another, an explicit
// simplification. An empty context yields zero checks and therefore the
// insufficient-evidence sentinel, which never clears the threshold.
func ValidateWorkflowResults(wf workflow.Context) validation.Result {
	var combined validation.Result

	if len(wf.Simulations) > 0 {
		merge(&combined, ValidateSimulationResults(wf.Simulations, wf.Domain))
	}
	for _, h := range wf.Hypotheses {
		merge(&combined, ValidateHypothesis(h, wf.Findings))
	}
	if len(wf.Conclusions) > 0 {
		merge(&combined, ValidateAnalysisConclusions(wf.Conclusions, wf.Simulations, wf.Findings))
	}

	combined.Recommendations = BuildRecommendations(combined.Checks, combined.Warnings, combined.Errors)
	validation.Finalize(&combined, validation.DefaultThreshold)
	return combined
}

// merge concatenates a sub-validator's findings; scores and per-validator
// recommendations are recomputed over the union afterward.
func merge(dst *validation.Result, src validation.Result) {
	dst.Checks = append(dst.Checks, src.Checks...)
	dst.Warnings = append(dst.Warnings, src.Warnings...)
	dst.Errors = append(dst.Errors, src.Errors...)
}
