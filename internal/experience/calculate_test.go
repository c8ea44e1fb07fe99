package experience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/fit-analyzer/internal/types"
)

var fixedNow = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func leadershipReq(years float64) *types.JobRequirement {
	return &types.JobRequirement{
		RoleFamily:         types.FamilyRecruiting,
		RequiredYears:      years,
		LeadershipRequired: true,
	}
}

func position(company, title, start, end string) types.Position {
	return types.Position{Company: company, Title: title, Start: start, End: end}
}

func TestCalculateAt_CreditTiers(t *testing.T) {
	req := leadershipReq(7)

	tests := []struct {
		name     string
		pos      types.Position
		expected float64
	}{
		{
			name:     "leadership title earns full credit",
			pos:      position("Acme", "Director of Recruiting", "2020-01", "2024-01"),
			expected: 4.0,
		},
		{
			name:     "senior IC earns partial credit against leadership requirement",
			pos:      position("Acme", "Senior Talent Partner", "2021-01", "2024-01"),
			expected: 2.1,
		},
		{
			name:     "plain IC earns nothing against leadership requirement",
			pos:      position("Acme", "Recruiter", "2019-01", "2024-01"),
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resume := &types.ResumeRecord{Positions: []types.Position{tt.pos}}
			got := calculateAt(resume, req, nil, fixedNow)
			assert.InDelta(t, tt.expected, got.CredibilityAdjustedYears, 0.001)
		})
	}
}

func TestCalculateAt_PlainICFullCreditWithoutLeadershipRequirement(t *testing.T) {
	req := &types.JobRequirement{
		RoleFamily:    types.FamilyRecruiting,
		RequiredYears: 3,
	}
	resume := &types.ResumeRecord{Positions: []types.Position{
		position("Acme", "Recruiter", "2019-01", "2024-01"),
	}}

	got := calculateAt(resume, req, nil, fixedNow)
	assert.InDelta(t, 5.0, got.RawYears, 0.001)
	assert.InDelta(t, 5.0, got.CredibilityAdjustedYears, 0.001)
}

func TestCalculateAt_IgnoresOtherFamilies(t *testing.T) {
	req := leadershipReq(7)
	resume := &types.ResumeRecord{Positions: []types.Position{
		position("Acme", "Director of Recruiting", "2022-01", "2024-01"),
		position("WidgetCo", "Director of Marketing", "2018-01", "2022-01"),
	}}

	got := calculateAt(resume, req, nil, fixedNow)
	assert.InDelta(t, 2.0, got.RawYears, 0.001)
}

func TestCalculateAt_OverlappingPositionsSum(t *testing.T) {
	// Concurrent relevant roles compound rather than de-duplicate.
	req := leadershipReq(7)
	resume := &types.ResumeRecord{Positions: []types.Position{
		position("Acme", "Director of Recruiting", "2020-01", "2024-01"),
		position("SideCo", "Head of Talent", "2021-01", "2023-01"),
	}}

	got := calculateAt(resume, req, nil, fixedNow)
	assert.InDelta(t, 6.0, got.RawYears, 0.001)
}

func TestCalculateAt_CredibilityMultiplierApplied(t *testing.T) {
	req := leadershipReq(7)
	resume := &types.ResumeRecord{Positions: []types.Position{
		position("Acme", "Director of Recruiting", "2020-01", "2024-01"),
	}}
	credibility := &types.CompanyCredibilityFinding{
		Companies: []types.CompanyTier{
			{Company: "Acme", Tier: types.CredibilityMedium, Multiplier: 0.7},
		},
	}

	got := calculateAt(resume, req, credibility, fixedNow)
	assert.InDelta(t, 4.0, got.RawYears, 0.001)
	assert.InDelta(t, 2.8, got.CredibilityAdjustedYears, 0.001)
}

func TestCalculateAt_PercentOfRequirement(t *testing.T) {
	req := leadershipReq(8)
	resume := &types.ResumeRecord{Positions: []types.Position{
		position("Acme", "Director of Recruiting", "2022-01", "2024-01"),
	}}

	got := calculateAt(resume, req, nil, fixedNow)
	assert.InDelta(t, 25.0, got.YearsPercentOfRequirement, 0.001)
}

func TestCalculateAt_NoGateMeansFullPercent(t *testing.T) {
	req := &types.JobRequirement{RoleFamily: types.FamilyRecruiting}
	resume := &types.ResumeRecord{Positions: []types.Position{
		position("Acme", "Recruiter", "2023-01", "2024-01"),
	}}

	got := calculateAt(resume, req, nil, fixedNow)
	assert.InDelta(t, 100.0, got.YearsPercentOfRequirement, 0.001)
}

func TestCalculateAt_Deterministic(t *testing.T) {
	req := leadershipReq(7)
	resume := &types.ResumeRecord{Positions: []types.Position{
		position("Acme", "Director of Recruiting", "2020-03", "present"),
		position("Acme", "Senior Recruiter", "2017-06", "2020-03"),
	}}

	first := calculateAt(resume, req, nil, fixedNow)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, calculateAt(resume, req, nil, fixedNow))
	}
}

func TestCalculateAt_UnparseableDatesContributeNothing(t *testing.T) {
	req := leadershipReq(7)
	resume := &types.ResumeRecord{Positions: []types.Position{
		position("Acme", "Director of Recruiting", "early 2020", "late 2023"),
	}}

	got := calculateAt(resume, req, nil, fixedNow)
	assert.Zero(t, got.RawYears)
}
