package enforce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fit-analyzer/internal/types"
)

// cleanInputs returns inputs that trigger no hard overrides.
func cleanInputs(score int, rec types.Recommendation) Inputs {
	return Inputs{
		RawScore:          score,
		RawRecommendation: string(rec),
		ConstraintsMet:    true,
		CredentialsMet:    true,
	}
}

func TestDecide_InvariantClosure(t *testing.T) {
	// Every combination of score 0-100 and the six tiers must come out
	// inside the range the stated recommendation owns.
	for _, rec := range types.AllRecommendations {
		floor, ceiling, ok := TierRange(rec)
		require.True(t, ok)

		for score := 0; score <= 100; score++ {
			result := Decide(cleanInputs(score, rec))

			assert.Equal(t, rec, result.Decision.Recommendation,
				"recommendation must survive the clamp")
			assert.GreaterOrEqual(t, result.Decision.Score, floor,
				"score %d with %q", score, rec)
			assert.LessOrEqual(t, result.Decision.Score, ceiling,
				"score %d with %q", score, rec)
		}
	}
}

func TestDecide_ConsistentPairUntouched(t *testing.T) {
	result := Decide(cleanInputs(75, types.RecApply))

	assert.Equal(t, 75, result.Decision.Score)
	assert.Equal(t, types.RecApply, result.Decision.Recommendation)
	assert.False(t, result.Decision.OverrideApplied)
	assert.Empty(t, result.Decision.OverrideReason)
	assert.Empty(t, result.Corrections)
}

func TestDecide_ScoreCappedToCeiling(t *testing.T) {
	// 78 paired with "Do Not Apply" is the classic self-contradictory
	// generative output: the recommendation wins, the score is capped.
	result := Decide(cleanInputs(78, types.RecDoNotApply))

	assert.Equal(t, 24, result.Decision.Score)
	assert.Equal(t, types.RecDoNotApply, result.Decision.Recommendation)
	assert.True(t, result.Decision.OverrideApplied)
	assert.NotEmpty(t, result.Decision.OverrideReason)
	require.Len(t, result.Corrections, 1)
	assert.Equal(t, "78", result.Corrections[0].Before)
	assert.Equal(t, "24", result.Corrections[0].After)
}

func TestDecide_ScoreBumpedToFloor(t *testing.T) {
	result := Decide(cleanInputs(12, types.RecStrongApply))

	assert.Equal(t, 85, result.Decision.Score)
	assert.Equal(t, types.RecStrongApply, result.Decision.Recommendation)
	assert.True(t, result.Decision.OverrideApplied)
}

func TestDecide_UnrecognizedRecommendationFallsBackToScoreTier(t *testing.T) {
	// An unknown tier falls back to whatever tier owns the clamped score, so
	// the score itself never has to move.
	tests := []struct {
		score    int
		expected types.Recommendation
	}{
		{90, types.RecStrongApply},
		{75, types.RecApply},
		{60, types.RecConsider},
		{45, types.RecApplyWithCaution},
		{30, types.RecLongShot},
		{10, types.RecDoNotApply},
	}

	for _, tt := range tests {
		result := Decide(cleanInputs(tt.score, "Maybe Apply??"))

		assert.Equal(t, tt.expected, result.Decision.Recommendation, "score %d", tt.score)
		assert.Equal(t, tt.score, result.Decision.Score)
		assert.NotEmpty(t, result.Corrections)
	}
}

func TestDecide_UnrecognizedRecommendationWithWildScore(t *testing.T) {
	result := Decide(cleanInputs(140, "apply maybe"))

	assert.Equal(t, types.RecStrongApply, result.Decision.Recommendation)
	assert.Equal(t, 100, result.Decision.Score)
}

func TestDecide_EligibilityGatePrecedence(t *testing.T) {
	// A raw 78 that fails a hard constraint must never come back as Apply.
	in := cleanInputs(78, types.RecApply)
	in.Requirement = &types.JobRequirement{
		RoleFamily:      types.FamilyEngineering,
		HardConstraints: []string{"security_clearance"},
	}
	in.ConstraintsMet = false

	result := Decide(in)

	assert.Equal(t, types.RecDoNotApply, result.Decision.Recommendation)
	assert.LessOrEqual(t, result.Decision.Score, 24)
	assert.True(t, result.Decision.OverrideApplied)
	assert.Contains(t, result.Decision.OverrideReason, "eligibility gate")
}

func TestDecide_MissingCredentialForcesDoNotApply(t *testing.T) {
	in := cleanInputs(90, types.RecStrongApply)
	in.CredentialsMet = false

	result := Decide(in)

	assert.Equal(t, types.RecDoNotApply, result.Decision.Recommendation)
	assert.LessOrEqual(t, result.Decision.Score, 24)
	assert.Contains(t, result.Decision.OverrideReason, "credential")
}

func TestDecide_ExposureOnlySwitcherForcesDoNotApply(t *testing.T) {
	in := cleanInputs(70, types.RecApply)
	in.Findings = &types.DetectionFindings{
		CareerSwitcher: &types.CareerSwitcherFinding{
			IsSwitcher:     true,
			OwnershipLevel: types.OwnershipExposure,
		},
	}

	result := Decide(in)

	assert.Equal(t, types.RecDoNotApply, result.Decision.Recommendation)
	assert.LessOrEqual(t, result.Decision.Score, 24)
}

func TestDecide_ExperienceBelowQuarterForcesLongShot(t *testing.T) {
	in := cleanInputs(65, types.RecApply)
	in.Requirement = &types.JobRequirement{
		RoleFamily:    types.FamilyRecruiting,
		RequiredYears: 7,
	}
	in.Assessment = &types.ExperienceAssessment{
		CredibilityAdjustedYears:  1.0,
		YearsPercentOfRequirement: 14.3,
	}

	result := Decide(in)

	assert.Equal(t, types.RecLongShot, result.Decision.Recommendation)
	assert.LessOrEqual(t, result.Decision.Score, 39)
	assert.True(t, result.Decision.OverrideApplied)
	assert.NotEmpty(t, result.Decision.OverrideReason)
}

func TestDecide_AdjacentSwitcherDoesNotHardOverride(t *testing.T) {
	// Adjacent-level evidence is a gap, not a disqualifier.
	in := cleanInputs(60, types.RecConsider)
	in.Findings = &types.DetectionFindings{
		CareerSwitcher: &types.CareerSwitcherFinding{
			IsSwitcher:     true,
			OwnershipLevel: types.OwnershipAdjacent,
		},
	}

	result := Decide(in)

	assert.Equal(t, types.RecConsider, result.Decision.Recommendation)
	assert.Equal(t, 60, result.Decision.Score)
	assert.False(t, result.Decision.OverrideApplied)
}

func TestDecide_NoExperienceGateSkipsExperienceOverride(t *testing.T) {
	in := cleanInputs(80, types.RecApply)
	in.Requirement = &types.JobRequirement{RoleFamily: types.FamilyOther}
	in.Assessment = &types.ExperienceAssessment{YearsPercentOfRequirement: 100}

	result := Decide(in)

	assert.False(t, result.Decision.OverrideApplied)
	assert.Equal(t, 80, result.Decision.Score)
}

func TestDecide_RawScoreOutsideScaleClamped(t *testing.T) {
	result := Decide(cleanInputs(140, types.RecStrongApply))
	assert.Equal(t, 100, result.Decision.Score)

	result = Decide(cleanInputs(-5, types.RecDoNotApply))
	assert.Equal(t, 0, result.Decision.Score)
}
