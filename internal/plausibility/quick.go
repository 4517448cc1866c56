package plausibility

import (
	"fmt"
	"strings"

	"enercheck/domain/energy"
)

// QuickCheckResult is the single-value probe's answer: plausible or not,
// with a reason only when something is off.
type QuickCheckResult struct {
	Plausible bool   `json:"plausible"`
	Reason    string `json:"reason,omitempty"`
}

// quickRules is the substring dispatch table for the single-value probe.
// First match wins; more specific patterns sort first. Unknown parameters
// pass without comment: the probe only speaks up when it recognizes the
// quantity and the value is off.
var quickRules = []struct {
	substrings []string
	check      func(v float64) (bool, string)
}{
	{
		substrings: []string{"capacity factor", "capacity_factor"},
		check: func(v float64) (bool, string) {
			if v < 5 || v > 60 {
				return false, fmt.Sprintf("capacity factor %.1f%% is outside the realistic 5%%-60%% range", v)
			}
			return true, ""
		},
	},
	{
		substrings: []string{"efficiency"},
		check: func(v float64) (bool, string) {
			if v < 0 || v > 100 {
				return false, fmt.Sprintf("efficiency %.1f%% must be between 0%% and 100%%", v)
			}
			return true, ""
		},
	},
	{
		substrings: []string{"lcoe", "levelized cost"},
		check: func(v float64) (bool, string) {
			if v < 0 || v > 1.0 {
				return false, fmt.Sprintf("LCOE $%.3f/kWh is outside the realistic $0-$1/kWh range", v)
			}
			return true, ""
		},
	},
	{
		substrings: []string{"cop", "coefficient of performance"},
		check: func(v float64) (bool, string) {
			if v < 1 || v > 10 {
				return false, fmt.Sprintf("COP %.1f is outside the realistic 1-10 range", v)
			}
			return true, ""
		},
	},
}

// QuickPlausibilityCheck is an O(1) probe for live input feedback: it
// bounds a single named value without scoring, aggregation, or persistence.
// Intended for per-keystroke form validation; the full validators ignore
// it. The domain tag is accepted for interface symmetry with the full
// validators but the bounds here are domain-independent.
func QuickPlausibilityCheck(parameter string, value float64, domain energy.Domain) QuickCheckResult {
	_ = domain
	lower := strings.ToLower(parameter)
	for _, rule := range quickRules {
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				ok, reason := rule.check(value)
				return QuickCheckResult{Plausible: ok, Reason: reason}
			}
		}
	}
	return QuickCheckResult{Plausible: true}
}
