package detection

import (
	"strings"

	"github.com/jonathan/fit-analyzer/internal/types"
)

// Ownership language tiers. Direct language claims the work; adjacent
// language claims participation; exposure language claims proximity.
var (
	directPhrases = []string{
		"owned", "led", "defined", "drove", "built", "launched",
		"designed", "architected", "created", "established",
	}
	adjacentPhrases = []string{
		"supported", "contributed to", "contributed", "partnered",
		"assisted", "collaborated", "helped", "coordinated",
	}
	exposurePhrases = []string{
		"familiar with", "participated in", "participated", "exposed to",
		"shadowed", "observed", "learned about", "attended",
	}
)

// familyEvidenceKeywords identify bullets that speak to the target function
// at all; ownership language in unrelated bullets says nothing about whether
// the candidate is switching into this function.
var familyEvidenceKeywords = map[types.RoleFamily][]string{
	types.FamilyRecruiting: {
		"recruit", "sourc", "candidate", "pipeline", "offer", "hiring", "talent", "interview",
	},
	types.FamilyPM: {
		"product", "roadmap", "feature", "launch", "user research", "backlog", "prioritiz", "stakeholder",
	},
	types.FamilyEngineering: {
		"code", "software", "deploy", "api", "service", "infrastructure", "debug", "architect",
	},
	types.FamilySales: {
		"quota", "deal", "pipeline", "prospect", "closed", "revenue", "account", "negotiat",
	},
	types.FamilyMarketing: {
		"campaign", "brand", "content", "seo", "audience", "funnel", "channel", "conversion",
	},
}

// RecognizeCareerSwitcher classifies every relevant bullet's ownership
// language and decides whether the candidate is switching into the target
// function: a candidate is a switcher when the bulk of relevant evidence is
// adjacent or exposure language rather than direct ownership. Holding a title
// in the target function counts as in-domain evidence on its own, so a
// bullet-poor veteran is never misread as a switcher.
func RecognizeCareerSwitcher(resume *types.ResumeRecord, req *types.JobRequirement) *types.CareerSwitcherFinding {
	finding := &types.CareerSwitcherFinding{}

	keywords := familyEvidenceKeywords[req.RoleFamily]
	for _, pos := range resume.Positions {
		for _, bullet := range pos.Bullets {
			lower := strings.ToLower(bullet)
			if len(keywords) > 0 && !containsAny(lower, keywords) {
				continue
			}
			switch ClassifyOwnership(lower) {
			case types.OwnershipDirect:
				finding.DirectCount++
			case types.OwnershipAdjacent:
				finding.AdjacentCount++
			case types.OwnershipExposure:
				finding.ExposureCount++
			}
		}
	}

	total := finding.DirectCount + finding.AdjacentCount + finding.ExposureCount
	switch {
	case total == 0 && hasFamilyTitle(resume, keywords):
		// A title in the target function is evidence of holding it even when
		// every bullet is management or budget language. Not a switcher.
		finding.IsSwitcher = false
		finding.OwnershipLevel = types.OwnershipAdjacent
	case total == 0:
		// No relevant evidence anywhere reads as exposure-level at best.
		finding.IsSwitcher = true
		finding.OwnershipLevel = types.OwnershipExposure
	case finding.DirectCount*2 >= total:
		finding.IsSwitcher = false
		finding.OwnershipLevel = types.OwnershipDirect
	case finding.AdjacentCount >= finding.ExposureCount:
		finding.IsSwitcher = true
		finding.OwnershipLevel = types.OwnershipAdjacent
	default:
		finding.IsSwitcher = true
		finding.OwnershipLevel = types.OwnershipExposure
	}

	return finding
}

// hasFamilyTitle reports whether any position's title names the target function.
func hasFamilyTitle(resume *types.ResumeRecord, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	for _, pos := range resume.Positions {
		if containsAny(strings.ToLower(pos.Title), keywords) {
			return true
		}
	}
	return false
}

// ClassifyOwnership maps a bullet's language to an ownership level.
// Exposure phrases are checked first: "participated in building" is weaker
// evidence than "built" even though both phrases appear.
func ClassifyOwnership(lowerBullet string) types.OwnershipLevel {
	if containsAny(lowerBullet, exposurePhrases) {
		return types.OwnershipExposure
	}
	if containsAny(lowerBullet, adjacentPhrases) {
		return types.OwnershipAdjacent
	}
	if containsAny(lowerBullet, directPhrases) {
		return types.OwnershipDirect
	}
	return types.OwnershipAdjacent
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
