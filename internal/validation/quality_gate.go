package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/fit-analyzer/internal/enforce"
	"github.com/jonathan/fit-analyzer/internal/types"
)

// Contract limits for the assembled result.
const (
	minStrengths       = 3
	minGaps            = 2
	maxStrengthChars   = 300
	maxGapDescChars    = 500
	maxReasonChars     = 500
	maxActionChars     = 300
	maxYourMoveSummary = 800
)

// placeholderValues are strings that must never appear as field content.
// A placeholder anywhere in the tree means the generative merge produced
// filler instead of analysis.
var placeholderValues = []string{
	"tbd", "n/a", "todo", "placeholder", "lorem", "xxx", "fixme",
}

// ValidateResult checks the assembled AnalysisResult against the fixed output
// contract: every required field populated, array-length minimums met,
// character limits respected, no placeholder values anywhere. Returns a
// *Failure listing every violation, or nil when the result is clean.
func ValidateResult(result *types.AnalysisResult) *Failure {
	var errs []FieldError

	if result == nil {
		return &Failure{Errors: []FieldError{{Field: "(root)", Message: "result is nil"}}}
	}

	if strings.TrimSpace(result.SpecVersion) == "" {
		errs = append(errs, FieldError{Field: "spec_version", Message: "must be set"})
	}
	if strings.TrimSpace(result.RunID) == "" {
		errs = append(errs, FieldError{Field: "run_id", Message: "must be set"})
	}

	errs = append(errs, validateDecision(&result.Decision)...)
	errs = append(errs, validateStrengths(result.Strengths)...)
	errs = append(errs, validateGaps(result.Gaps)...)
	errs = append(errs, validateYourMove(result.YourMove)...)

	if result.Findings.CareerSwitcher == nil {
		errs = append(errs, FieldError{Field: "detection_findings.career_switcher", Message: "finding missing"})
	}
	if result.Findings.CompanyCredibility == nil {
		errs = append(errs, FieldError{Field: "detection_findings.company_credibility", Message: "finding missing"})
	}
	if result.Findings.CompetencyMapping == nil {
		errs = append(errs, FieldError{Field: "detection_findings.competency_mapping", Message: "finding missing"})
	}

	if len(errs) > 0 {
		return &Failure{Errors: errs}
	}
	return nil
}

// validateDecision re-checks the tier-table invariant at the gate. The
// enforcer guarantees it, but the gate is the last line before the caller and
// trusts nothing.
func validateDecision(d *types.FitDecision) []FieldError {
	var errs []FieldError

	if !d.Recommendation.Valid() {
		errs = append(errs, FieldError{
			Field:   "fit_decision.recommendation",
			Message: fmt.Sprintf("unknown tier %q", d.Recommendation),
		})
		return errs
	}

	floor, ceiling, _ := enforce.TierRange(d.Recommendation)
	if d.Score < floor || d.Score > ceiling {
		errs = append(errs, FieldError{
			Field:   "fit_decision.score",
			Message: fmt.Sprintf("score %d outside [%d, %d] owned by %q", d.Score, floor, ceiling, d.Recommendation),
		})
	}
	if d.OverrideApplied && strings.TrimSpace(d.OverrideReason) == "" {
		errs = append(errs, FieldError{
			Field:   "fit_decision.override_reason",
			Message: "must be populated when an override was applied",
		})
	}
	if reason := d.OverrideReason; len(reason) > maxReasonChars {
		errs = append(errs, FieldError{
			Field:   "fit_decision.override_reason",
			Message: fmt.Sprintf("exceeds %d characters", maxReasonChars),
		})
	}
	return errs
}

func validateStrengths(strengths []string) []FieldError {
	var errs []FieldError
	if len(strengths) < minStrengths {
		errs = append(errs, FieldError{
			Field:   "strengths",
			Message: fmt.Sprintf("at least %d required, got %d", minStrengths, len(strengths)),
		})
	}
	for i, s := range strengths {
		field := fmt.Sprintf("strengths[%d]", i)
		errs = append(errs, checkText(field, s, maxStrengthChars)...)
	}
	return errs
}

func validateGaps(gaps []types.Gap) []FieldError {
	var errs []FieldError
	if len(gaps) < minGaps {
		errs = append(errs, FieldError{
			Field:   "gaps",
			Message: fmt.Sprintf("at least %d required, got %d", minGaps, len(gaps)),
		})
	}
	for i, g := range gaps {
		field := fmt.Sprintf("gaps[%d]", i)
		if g.GapType != types.GapExperience && g.GapType != types.GapPresentation {
			errs = append(errs, FieldError{
				Field:   field + ".gap_type",
				Message: fmt.Sprintf("must be %q or %q, got %q", types.GapExperience, types.GapPresentation, g.GapType),
			})
		}
		switch g.Severity {
		case types.SeverityCritical, types.SeverityHigh, types.SeverityMedium, types.SeverityLow:
		default:
			errs = append(errs, FieldError{
				Field:   field + ".severity",
				Message: fmt.Sprintf("unknown severity %q", g.Severity),
			})
		}
		if strings.TrimSpace(g.Dimension) == "" {
			errs = append(errs, FieldError{Field: field + ".dimension", Message: "must be set"})
		}
		errs = append(errs, checkText(field+".description", g.Description, maxGapDescChars)...)
	}
	return errs
}

func validateYourMove(ym *types.YourMove) []FieldError {
	if ym == nil {
		return nil
	}
	var errs []FieldError
	if len(ym.Summary) > maxYourMoveSummary {
		errs = append(errs, FieldError{
			Field:   "your_move.summary",
			Message: fmt.Sprintf("exceeds %d characters", maxYourMoveSummary),
		})
	}
	if isPlaceholder(ym.Summary) {
		errs = append(errs, FieldError{Field: "your_move.summary", Message: "placeholder value"})
	}
	for i, a := range ym.Actions {
		errs = append(errs, checkText(fmt.Sprintf("your_move.actions[%d]", i), a, maxActionChars)...)
	}
	return errs
}

// checkText applies the shared non-empty / length / placeholder rules.
func checkText(field, value string, maxChars int) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(value) == "" {
		errs = append(errs, FieldError{Field: field, Message: "must be non-empty"})
		return errs
	}
	if len(value) > maxChars {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("exceeds %d characters", maxChars)})
	}
	if isPlaceholder(value) {
		errs = append(errs, FieldError{Field: field, Message: "placeholder value"})
	}
	return errs
}

func isPlaceholder(value string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	for _, p := range placeholderValues {
		if trimmed == p {
			return true
		}
	}
	return false
}
