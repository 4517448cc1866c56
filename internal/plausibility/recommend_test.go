package plausibility

import (
	"reflect"
	"strings"
	"testing"

	"enercheck/domain/validation"
)

func TestRecommendationsFromLowChecks(t *testing.T) {
	checks := []validation.Check{
		{Category: validation.CategoryPhysicalPlausibility, Score: 20},
		{Category: validation.CategoryRangeValidation, Score: 40},
		{Category: validation.CategoryMethodology, Score: 49},
		{Category: validation.CategoryMethodology, Score: 85},         // above the bar, silent
		{Category: validation.CategoryInternalConsistency, Score: 10}, // no template, silent
	}

	recs := BuildRecommendations(checks, nil, nil)

	want := []string{
		categoryAdvice[validation.CategoryPhysicalPlausibility],
		categoryAdvice[validation.CategoryRangeValidation],
		categoryAdvice[validation.CategoryMethodology],
	}
	if !reflect.DeepEqual(recs, want) {
		t.Errorf("recommendations = %v, want %v", recs, want)
	}
}

func TestHighWarningSuggestionsPassVerbatim(t *testing.T) {
	warnings := []validation.Warning{
		{Severity: validation.SeverityHigh, Suggestion: "Check the inverter model inputs"},
		{Severity: validation.SeverityHigh}, // no suggestion, nothing to say
		{Severity: validation.SeverityMedium, Suggestion: "medium suggestions are not surfaced"},
	}

	recs := BuildRecommendations(nil, warnings, nil)
	if len(recs) != 1 || recs[0] != "Check the inverter model inputs" {
		t.Errorf("only high-severity suggestions pass through verbatim, got %v", recs)
	}
}

func TestFatalErrorsBecomeCriticalCallouts(t *testing.T) {
	errs := []validation.Error{
		{Message: "Efficiency Exceeds The Physical Maximum", Fatal: true},
		{Message: "conclusions lack simulation backing", Fatal: false},
	}

	recs := BuildRecommendations(nil, nil, errs)
	if len(recs) != 1 {
		t.Fatalf("only fatal errors become callouts, got %v", recs)
	}
	if recs[0] != "CRITICAL: efficiency exceeds the physical maximum" {
		t.Errorf("fatal callout = %q, want lowercased message behind the CRITICAL prefix", recs[0])
	}
}

func TestRecommendationOrderAndDedup(t *testing.T) {
	checks := []validation.Check{
		{Category: validation.CategoryRangeValidation, Score: 30},
		{Category: validation.CategoryRangeValidation, Score: 10}, // same advice, deduped
	}
	warnings := []validation.Warning{
		{Severity: validation.SeverityHigh, Suggestion: "Re-run with measured irradiance"},
	}
	errs := []validation.Error{
		{Message: "impossible value", Fatal: true},
	}

	recs := BuildRecommendations(checks, warnings, errs)

	want := []string{
		categoryAdvice[validation.CategoryRangeValidation],
		"Re-run with measured irradiance",
		"CRITICAL: impossible value",
	}
	if !reflect.DeepEqual(recs, want) {
		t.Errorf("order must be checks, then warnings, then errors, deduped: %v", recs)
	}

	// A suggestion colliding with existing advice is also deduped.
	warnings[0].Suggestion = categoryAdvice[validation.CategoryRangeValidation]
	recs = BuildRecommendations(checks, warnings, errs)
	count := 0
	for _, r := range recs {
		if strings.Contains(r, categoryAdvice[validation.CategoryRangeValidation]) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("set semantics across sources, got %v", recs)
	}
}

func TestNoFindingsNoRecommendations(t *testing.T) {
	if recs := BuildRecommendations(nil, nil, nil); len(recs) != 0 {
		t.Errorf("nothing to recommend, got %v", recs)
	}
}
