// Package gaps classifies every identified weakness as either a genuine
// experience deficit or a presentation deficit. The classification is a
// deterministic rule set: identical inputs always produce identical types,
// and each rule is individually testable.
package gaps

import (
	"fmt"
	"strings"

	"github.com/jonathan/fit-analyzer/internal/types"
)

// presentationSignals are phrases in generative-step gap text that point at
// how the resume reads rather than what the candidate has done.
var presentationSignals = []string{
	"doesn't highlight", "does not highlight", "not emphasized",
	"unclear from resume", "not quantified", "unquantified", "buried",
	"doesn't mention", "does not mention", "not surfaced", "framing",
	"undersells", "not showcased", "hard to tell from",
}

// experienceSignals are phrases that point at the underlying capability being
// undersized relative to the requirement.
var experienceSignals = []string{
	"years", "tenure", "scale", "never", "lacks", "no experience",
	"limited experience", "insufficient", "below the requirement",
	"smaller scope", "has not",
}

// Classify merges the generative step's free-text gaps with detection-layer
// findings into one deduplicated Gap list. Rules, in order:
//
//  1. Tenure shortfall (assessment below requirement)       -> experience
//  2. Competency level below the required level             -> experience
//  3. Inflated title finding                                -> presentation
//  4. Senior title whose alignment is unclear               -> presentation
//  5. Raw gap text with presentation signals                -> presentation
//  6. Raw gap text with experience signals                  -> experience
//  7. Raw gap with neither signal                           -> experience
//
// One Gap per distinct dimension; later sources never duplicate an earlier
// dimension.
func Classify(rawGaps []types.RawGap, findings *types.DetectionFindings, assessment *types.ExperienceAssessment, req *types.JobRequirement) []types.Gap {
	var gaps []types.Gap
	seen := make(map[string]bool)

	add := func(g types.Gap) {
		key := strings.ToLower(g.Dimension)
		if seen[key] {
			return
		}
		seen[key] = true
		gaps = append(gaps, g)
	}

	// Rule 1: tenure shortfall is an experience gap; no rewording fixes it.
	if req != nil && req.HasExperienceGate() && assessment != nil && assessment.CredibilityAdjustedYears < req.RequiredYears {
		add(types.Gap{
			Dimension:   "tenure",
			Description: describeTenureGap(assessment, req),
			GapType:     types.GapExperience,
			Severity:    tenureSeverity(assessment.YearsPercentOfRequirement),
			Coachable:   false,
		})
	}

	// Rule 2: demonstrated competency below required level.
	if findings != nil && findings.CompetencyMapping != nil {
		cm := findings.CompetencyMapping
		if cm.DemonstratedLevel < cm.RequiredLevel {
			severity := types.SeverityMedium
			if cm.RequiredLevel-cm.DemonstratedLevel >= 2 {
				severity = types.SeverityHigh
			}
			add(types.Gap{
				Dimension:   "competency_level",
				Description: "demonstrated competency level is below what the role requires",
				GapType:     types.GapExperience,
				Severity:    severity,
				Coachable:   false,
			})
		}
	}

	// Rules 3 and 4: title findings are presentation gaps. The capability may
	// exist; the resume text fails to substantiate it.
	if findings != nil {
		for _, ti := range findings.TitleInflation {
			switch ti.Alignment {
			case types.TitleInflated:
				add(types.Gap{
					Dimension:   "title_scope:" + ti.Position,
					Description: "title claims scope that no bullet substantiates (team size, budget, direct reports)",
					GapType:     types.GapPresentation,
					Severity:    types.SeverityHigh,
					Coachable:   true,
				})
			case types.TitleUnclear:
				add(types.Gap{
					Dimension:   "title_scope:" + ti.Position,
					Description: "senior title with no supporting bullets; scope cannot be assessed",
					GapType:     types.GapPresentation,
					Severity:    types.SeverityMedium,
					Coachable:   true,
				})
			}
		}
	}

	// Rules 5-7: generative-step gaps classified by language signals.
	for _, raw := range rawGaps {
		dimension := raw.Dimension
		if dimension == "" {
			dimension = deriveDimension(raw.Description)
		}
		gapType := classifyRawText(raw.Description)
		add(types.Gap{
			Dimension:   dimension,
			Description: raw.Description,
			GapType:     gapType,
			Severity:    types.SeverityMedium,
			Coachable:   gapType == types.GapPresentation,
		})
	}

	return gaps
}

// classifyRawText applies rules 5-7 to one gap description.
func classifyRawText(description string) types.GapType {
	lower := strings.ToLower(description)
	for _, signal := range presentationSignals {
		if strings.Contains(lower, signal) {
			return types.GapPresentation
		}
	}
	for _, signal := range experienceSignals {
		if strings.Contains(lower, signal) {
			return types.GapExperience
		}
	}
	// Neither signal: treat as experience. Understating a weakness as mere
	// framing is the costlier mistake for user trust.
	return types.GapExperience
}

// deriveDimension builds a stable dimension key from the first words of a
// description when the generative step supplied none, so dedup still works.
func deriveDimension(description string) string {
	words := strings.Fields(strings.ToLower(description))
	if len(words) > 4 {
		words = words[:4]
	}
	if len(words) == 0 {
		return "unspecified"
	}
	return strings.Join(words, "_")
}

func tenureSeverity(percentOfRequirement float64) types.Severity {
	switch {
	case percentOfRequirement < 25:
		return types.SeverityCritical
	case percentOfRequirement < 50:
		return types.SeverityHigh
	case percentOfRequirement < 75:
		return types.SeverityMedium
	default:
		return types.SeverityLow
	}
}

func describeTenureGap(assessment *types.ExperienceAssessment, req *types.JobRequirement) string {
	return fmt.Sprintf("credibility-adjusted experience of %.1f years falls short of the %.1f years required",
		assessment.CredibilityAdjustedYears, req.RequiredYears)
}
