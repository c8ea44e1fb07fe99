// Package experience recomputes years-of-relevant-experience from structured
// resume data, independently of anything the generative step claims.
package experience

import (
	"strings"
	"time"

	"github.com/jonathan/fit-analyzer/internal/types"
)

// Credit tiers for the three-tier credit rule. Leadership titles earn full
// credit; senior-IC titles earn partial credit against leadership
// requirements; plain IC tenure earns nothing against a people-management
// requirement but full credit otherwise.
const (
	fullCredit     = 1.0
	seniorICCredit = 0.7
	noCredit       = 0.0
)

// leadershipTitleKeywords identify positions with people-management scope.
var leadershipTitleKeywords = []string{
	"director", "head of", "vp", "vice president", "chief", "manager", "lead",
}

// seniorICTitleKeywords identify senior individual contributors.
var seniorICTitleKeywords = []string{
	"senior", "sr.", "sr ", "staff", "principal", "partner",
}

// familyTitleKeywords route positions to a role family by title and bullet
// text. Routing priority matches the extraction taxonomy: recruiting → pm →
// engineering → sales → marketing → fallback.
var familyTitleKeywords = map[types.RoleFamily][]string{
	types.FamilyRecruiting: {
		"recruit", "talent", "sourc", "people operations", "staffing",
	},
	types.FamilyPM: {
		"product manager", "product owner", "product lead", "head of product", "roadmap",
	},
	types.FamilyEngineering: {
		"engineer", "developer", "sre", "devops", "architect", "programmer",
	},
	types.FamilySales: {
		"sales", "account executive", "account manager", "business development", "sdr", "bdr",
	},
	types.FamilyMarketing: {
		"marketing", "growth", "brand", "content", "seo", "demand gen",
	},
}

// CalculateDomainYears computes the candidate's role-relevant experience
// against a requirement. It is a pure function: identical inputs always
// yield identical assessments. The credibility finding may be nil, in which
// case every position counts at full multiplier.
//
// Overlapping or concurrent positions are summed without de-duplication.
// This is a documented policy choice, not an oversight: concurrent relevant
// roles are treated as compounding experience.
func CalculateDomainYears(resume *types.ResumeRecord, req *types.JobRequirement, credibility *types.CompanyCredibilityFinding) types.ExperienceAssessment {
	return calculateAt(resume, req, credibility, time.Now())
}

// calculateAt is the clock-injected implementation backing CalculateDomainYears.
func calculateAt(resume *types.ResumeRecord, req *types.JobRequirement, credibility *types.CompanyCredibilityFinding, now time.Time) types.ExperienceAssessment {
	assessment := types.ExperienceAssessment{RoleFamily: req.RoleFamily}

	for _, pos := range resume.Positions {
		if !positionMatchesFamily(&pos, req.RoleFamily) {
			continue
		}

		years := pos.Years(now)
		if years == 0 {
			continue
		}

		credit := creditForPosition(&pos, req)
		multiplier := fullCredit
		if credibility != nil {
			multiplier = credibility.TierFor(pos.Company).Multiplier()
		}

		assessment.RawYears += years * credit
		assessment.CredibilityAdjustedYears += years * credit * multiplier
	}

	if req.RequiredYears > 0 {
		assessment.YearsPercentOfRequirement = assessment.CredibilityAdjustedYears / req.RequiredYears * 100.0
	} else {
		// No experience gate: any tenure fully satisfies the requirement.
		assessment.YearsPercentOfRequirement = 100.0
	}

	return assessment
}

// positionMatchesFamily reports whether a position belongs to the target
// family. FamilyOther is the fallback calculator: every position counts.
func positionMatchesFamily(pos *types.Position, family types.RoleFamily) bool {
	if family == types.FamilyOther {
		return true
	}
	keywords := familyTitleKeywords[family]
	text := pos.CombinedText()
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// creditForPosition applies the three-tier credit rule. This is the
// load-bearing algorithm: it prevents IC tenure from satisfying a
// people-management requirement without penalizing IC tenure against IC
// requirements.
func creditForPosition(pos *types.Position, req *types.JobRequirement) float64 {
	title := strings.ToLower(pos.Title)

	if containsAny(title, leadershipTitleKeywords) {
		return fullCredit
	}
	if containsAny(title, seniorICTitleKeywords) {
		if req.LeadershipRequired {
			return seniorICCredit
		}
		return fullCredit
	}
	if req.LeadershipRequired {
		return noCredit
	}
	return fullCredit
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
