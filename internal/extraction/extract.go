// Package extraction parses free-text job descriptions into structured JobRequirement records.
package extraction

import (
	"sort"
	"strings"

	"github.com/jonathan/fit-analyzer/internal/types"
)

// familyKeywords maps each role family to the phrases that identify it.
// Families are checked in priority order; the first family with a match wins.
var familyKeywords = map[types.RoleFamily][]string{
	types.FamilyRecruiting: {
		"recruiter", "recruiting", "talent acquisition", "sourcer", "sourcing",
		"talent partner", "head of talent", "people operations",
	},
	types.FamilyPM: {
		"product manager", "product management", "product owner", "product lead",
		"roadmap ownership", "head of product",
	},
	types.FamilyEngineering: {
		"software engineer", "engineering", "developer", "backend", "frontend",
		"full stack", "full-stack", "sre", "devops", "infrastructure engineer",
	},
	types.FamilySales: {
		"sales", "account executive", "account manager", "business development",
		"quota", "sdr", "bdr",
	},
	types.FamilyMarketing: {
		"marketing", "demand generation", "growth marketer", "brand manager",
		"content strategist", "seo",
	},
}

// familyPriority orders family matching. A JD mentioning both "recruiting"
// and "engineering" (e.g. technical recruiter roles) resolves to recruiting.
var familyPriority = []types.RoleFamily{
	types.FamilyRecruiting,
	types.FamilyPM,
	types.FamilyEngineering,
	types.FamilySales,
	types.FamilyMarketing,
}

// leadershipKeywords signal that the role demands people leadership rather
// than individual-contributor work.
var leadershipKeywords = []string{
	"lead a team", "leading a team", "people management", "direct reports",
	"manage a team", "managing a team", "build and lead", "head of",
	"management experience", "leadership experience", "team leadership",
	"hire and develop", "hiring and developing",
}

// seniorityLevels maps detected keywords to a normalized seniority label,
// checked in order from most to least senior.
var seniorityLevels = []struct {
	label    string
	keywords []string
}{
	{"executive", []string{"vp ", "vice president", "chief ", "cxo", "c-level"}},
	{"director", []string{"director", "head of"}},
	{"principal", []string{"principal", "distinguished"}},
	{"staff", []string{"staff "}},
	{"senior", []string{"senior", "sr.", "sr "}},
	{"mid", []string{"mid-level", "intermediate"}},
	{"junior", []string{"junior", "entry level", "entry-level", "associate"}},
}

// constraintKeywords maps hard-constraint labels to the phrases that imply them.
var constraintKeywords = map[string][]string{
	"security_clearance":   {"security clearance", "ts/sci", "secret clearance"},
	"certification":        {"certification required", "certified", "must hold a certification", "license required", "licensure"},
	"work_authorization":   {"must be authorized to work", "work authorization", "no sponsorship", "unable to sponsor"},
	"degree_required":      {"degree required", "bachelor's degree required", "must have a degree", "phd required"},
	"onsite_requirement":   {"onsite required", "on-site required", "relocation required", "must relocate"},
	"language_proficiency": {"fluency required", "must be fluent", "native speaker"},
}

// ParseJobRequirement extracts a structured JobRequirement from job
// description text. Ambiguity is never an error: an unrecognized role family
// defaults to FamilyOther, which routes to the fallback calculator.
func ParseJobRequirement(jobText string) *types.JobRequirement {
	lower := strings.ToLower(jobText)

	req := &types.JobRequirement{
		RoleFamily:         detectRoleFamily(lower),
		RequiredYears:      ExtractRequiredYears(lower),
		SeniorityLevel:     detectSeniority(lower),
		LeadershipRequired: detectLeadership(lower),
		HardConstraints:    detectHardConstraints(lower),
	}

	return req
}

// detectRoleFamily finds the highest-priority family with a keyword match.
func detectRoleFamily(lower string) types.RoleFamily {
	for _, family := range familyPriority {
		for _, kw := range familyKeywords[family] {
			if strings.Contains(lower, kw) {
				return family
			}
		}
	}
	return types.FamilyOther
}

// detectLeadership reports whether the JD demands people leadership.
func detectLeadership(lower string) bool {
	for _, kw := range leadershipKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// detectSeniority returns the most senior level keyword found, or "mid" when
// the JD gives no signal.
func detectSeniority(lower string) string {
	for _, level := range seniorityLevels {
		for _, kw := range level.keywords {
			if strings.Contains(lower, kw) {
				return level.label
			}
		}
	}
	return "mid"
}

// detectHardConstraints collects every hard-constraint label with a keyword match.
func detectHardConstraints(lower string) []string {
	var constraints []string
	for label, keywords := range constraintKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				constraints = append(constraints, label)
				break
			}
		}
	}
	// Deterministic order for stable output
	sort.Strings(constraints)
	return constraints
}
