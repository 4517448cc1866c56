package validation

import "math"

// Validity thresholds. Hypotheses run against the lower bar because they are
// speculative by nature; everything else uses the default. Calibrated by
// inspection in the original rule set; preserved exactly.
const (
	DefaultThreshold    = 60.0
	HypothesisThreshold = 50.0

	// InsufficientEvidenceScore is the sentinel assigned when a call
	// produced zero checks. It sits below every threshold on purpose:
	// "no evidence" must never read as "valid".
	InsufficientEvidenceScore = 50.0
)

// Score computes the overall score for a set of checks:
// round(100 * passed / total), or the insufficient-evidence sentinel when
// there are no checks at all.
func Score(checks []Check) float64 {
	if len(checks) == 0 {
		return InsufficientEvidenceScore
	}
	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}
	return math.Round(100 * float64(passed) / float64(len(checks)))
}

// Finalize stamps OverallScore and IsValid onto a result under the given
// threshold. IsValid requires both the absence of fatal errors and a score
// at or above the threshold.
func Finalize(r *Result, threshold float64) {
	r.OverallScore = Score(r.Checks)
	r.IsValid = !r.HasFatalErrors() && r.OverallScore >= threshold
}
