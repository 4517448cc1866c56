package plausibility

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"enercheck/domain/simulation"
	"enercheck/domain/validation"
)

// outlierShareLimit is the fraction of IQR outliers a raw series can carry
// before it earns an advisory warning.
const outlierShareLimit = 0.10

// flatSeriesMinSamples is the shortest series for which zero variance is
// suspicious rather than merely short.
const flatSeriesMinSamples = 8

// profileSeries screens an output's raw sample series for data defects.
// Non-finite values are a hard data-quality failure (non-fatal: bad data is
// a defect, not a physical impossibility); otherwise the series passes and
// may still pick up outlier or flatline advisories.
func profileSeries(out simulation.Output, label string) (validation.Check, []validation.Warning, []validation.Error) {
	check := validation.Check{
		Name:     fmt.Sprintf("series quality: %s / %s", label, out.Name),
		Category: validation.CategoryDataQuality,
	}

	for i, v := range out.Samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			check.Passed = false
			check.Score = 20
			check.Details = fmt.Sprintf("sample %d of %q is not a finite number", i, out.Name)
			err := validation.Error{
				Category: validation.CategoryDataQuality,
				Message:  fmt.Sprintf("%s: series %q contains non-finite samples", label, out.Name),
				Fatal:    false,
				Context:  fmt.Sprintf("first bad index %d of %d samples", i, len(out.Samples)),
			}
			return check, nil, []validation.Error{err}
		}
	}

	check.Passed = true
	check.Score = 90
	check.Details = fmt.Sprintf("%d samples, all finite", len(out.Samples))

	var warnings []validation.Warning

	if share := iqrOutlierShare(out.Samples); share > outlierShareLimit {
		warnings = append(warnings, validation.Warning{
			Category:   validation.CategoryDataQuality,
			Message:    fmt.Sprintf("%s: %.0f%% of %q samples are IQR outliers", label, share*100, out.Name),
			Severity:   validation.SeverityMedium,
			Suggestion: "Inspect the raw series for sensor glitches or transient spikes before trusting the scalar summary",
		})
	}

	if len(out.Samples) >= flatSeriesMinSamples {
		_, std := stat.MeanStdDev(out.Samples, nil)
		if std == 0 {
			warnings = append(warnings, validation.Warning{
				Category: validation.CategoryDataQuality,
				Message:  fmt.Sprintf("%s: series %q has zero variance over %d samples", label, out.Name, len(out.Samples)),
				Severity: validation.SeverityLow,
			})
		}
	}

	return check, warnings, nil
}

// iqrOutlierShare returns the fraction of samples outside the Tukey fences
// [Q1 - 1.5*IQR, Q3 + 1.5*IQR]. Returns 0 for series too short to quartile.
func iqrOutlierShare(samples []float64) float64 {
	q, err := stats.Quartile(samples)
	if err != nil {
		return 0
	}
	iqr := q.Q3 - q.Q1
	lo, hi := q.Q1-1.5*iqr, q.Q3+1.5*iqr

	outliers := 0
	for _, v := range samples {
		if v < lo || v > hi {
			outliers++
		}
	}
	return float64(outliers) / float64(len(samples))
}
