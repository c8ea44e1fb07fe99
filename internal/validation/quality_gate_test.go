package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fit-analyzer/internal/types"
)

// validResult builds a result that passes every gate check. Tests mutate one
// field at a time to isolate each rule.
func validResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		SpecVersion: types.SpecVersion,
		RunID:       "8d7e9c60-1111-4222-8333-444455556666",
		Decision: types.FitDecision{
			Score:          60,
			Recommendation: types.RecConsider,
		},
		Findings: types.DetectionFindings{
			CareerSwitcher:     &types.CareerSwitcherFinding{OwnershipLevel: types.OwnershipDirect},
			CompanyCredibility: &types.CompanyCredibilityFinding{},
			CompetencyMapping:  &types.CompetencyMappingFinding{DemonstratedLevel: 2, RequiredLevel: 2},
		},
		Gaps: []types.Gap{
			{Dimension: "tenure", Description: "Two of seven required years", GapType: types.GapExperience, Severity: types.SeverityHigh},
			{Dimension: "scope", Description: "No agency-side search work", GapType: types.GapExperience, Severity: types.SeverityMedium},
		},
		Strengths: []string{
			"Deep technical sourcing background",
			"Strong close rates on competing offers",
			"Built structured interview loops from scratch",
		},
		YourMove: &types.YourMove{
			Summary: "Apply, but lead with the sourcing metrics.",
			Actions: []string{"Quantify pipeline throughput in the top bullet"},
		},
	}
}

func TestValidateResult_CleanResultPasses(t *testing.T) {
	assert.Nil(t, ValidateResult(validResult()))
}

func TestValidateResult_NilResult(t *testing.T) {
	failure := ValidateResult(nil)
	require.NotNil(t, failure)
	assert.Contains(t, failure.Error(), "result is nil")
}

func TestValidateResult_TooFewStrengths(t *testing.T) {
	result := validResult()
	result.Strengths = result.Strengths[:2]

	failure := ValidateResult(result)
	require.NotNil(t, failure)
	assert.Contains(t, failure.Fields(), "strengths")
}

func TestValidateResult_TooFewGaps(t *testing.T) {
	result := validResult()
	result.Gaps = result.Gaps[:1]

	failure := ValidateResult(result)
	require.NotNil(t, failure)
	assert.Contains(t, failure.Fields(), "gaps")
}

func TestValidateResult_PlaceholderStrengthRejected(t *testing.T) {
	result := validResult()
	result.Strengths[1] = "TBD"

	failure := ValidateResult(result)
	require.NotNil(t, failure)
	assert.Contains(t, failure.Fields(), "strengths[1]")
}

func TestValidateResult_OverlongStrengthRejected(t *testing.T) {
	result := validResult()
	result.Strengths[0] = strings.Repeat("a", 301)

	failure := ValidateResult(result)
	require.NotNil(t, failure)
	assert.Contains(t, failure.Fields(), "strengths[0]")
}

func TestValidateResult_ScoreOutsideTierRejected(t *testing.T) {
	// The gate re-checks the tier invariant rather than trusting upstream.
	result := validResult()
	result.Decision.Score = 90 // Consider owns 55-69

	failure := ValidateResult(result)
	require.NotNil(t, failure)
	assert.Contains(t, failure.Fields(), "fit_decision.score")
}

func TestValidateResult_UnknownRecommendationRejected(t *testing.T) {
	result := validResult()
	result.Decision.Recommendation = "Maybe"

	failure := ValidateResult(result)
	require.NotNil(t, failure)
	assert.Contains(t, failure.Fields(), "fit_decision.recommendation")
}

func TestValidateResult_OverrideWithoutReasonRejected(t *testing.T) {
	result := validResult()
	result.Decision.OverrideApplied = true
	result.Decision.OverrideReason = "  "

	failure := ValidateResult(result)
	require.NotNil(t, failure)
	assert.Contains(t, failure.Fields(), "fit_decision.override_reason")
}

func TestValidateResult_GapMissingTypeRejected(t *testing.T) {
	result := validResult()
	result.Gaps[0].GapType = ""

	failure := ValidateResult(result)
	require.NotNil(t, failure)
	assert.Contains(t, failure.Fields(), "gaps[0].gap_type")
}

func TestValidateResult_MissingFindingsRejected(t *testing.T) {
	result := validResult()
	result.Findings.CareerSwitcher = nil

	failure := ValidateResult(result)
	require.NotNil(t, failure)
	assert.Contains(t, failure.Fields(), "detection_findings.career_switcher")
}

func TestValidateResult_CollectsEveryViolation(t *testing.T) {
	result := validResult()
	result.Strengths = nil
	result.Gaps = nil
	result.RunID = ""

	failure := ValidateResult(result)
	require.NotNil(t, failure)
	fields := failure.Fields()
	assert.Contains(t, fields, "strengths")
	assert.Contains(t, fields, "gaps")
	assert.Contains(t, fields, "run_id")
}
