// Package detection provides independent, side-effect-free analyzers over
// structured resume data. Each analyzer returns a typed finding, never a
// score; findings feed the enforcer's hard-override conditions and the gap
// classifier but never write to the final decision directly.
package detection

import (
	"strings"

	"github.com/jonathan/fit-analyzer/internal/types"
)

// seniorTitleKeywords mark titles that claim scope beyond individual work.
var seniorTitleKeywords = []string{
	"director", "head of", "vp", "vice president", "chief",
	"lead", "manager", "principal", "staff",
}

// scopeEvidenceKeywords are the phrases that substantiate a senior title:
// team size, budget, multi-quarter roadmap, direct reports.
var scopeEvidenceKeywords = []string{
	"direct reports", "team of", "managed a team", "built a team",
	"hired", "headcount", "budget", "p&l", "roadmap",
	"quarterly", "multi-quarter", "org of", "organization of",
	"mentored", "performance reviews",
}

// DetectTitleInflation flags every position whose title claims seniority that
// no scope evidence in its bullets supports. Non-senior titles are always
// reported accurate; senior titles with no bullets at all are unclear rather
// than inflated, since absence of text is not evidence of inflation.
func DetectTitleInflation(resume *types.ResumeRecord) []types.TitleInflationFinding {
	findings := make([]types.TitleInflationFinding, 0, len(resume.Positions))

	for _, pos := range resume.Positions {
		finding := types.TitleInflationFinding{
			Position: pos.Title,
			Company:  pos.Company,
		}

		if !hasSeniorTitle(pos.Title) {
			finding.Alignment = types.TitleAccurate
			findings = append(findings, finding)
			continue
		}

		if len(pos.Bullets) == 0 {
			finding.Alignment = types.TitleUnclear
			findings = append(findings, finding)
			continue
		}

		evidence := collectScopeEvidence(pos.Bullets)
		if len(evidence) > 0 {
			finding.Alignment = types.TitleAccurate
			finding.Evidence = evidence
		} else {
			finding.Alignment = types.TitleInflated
		}
		findings = append(findings, finding)
	}

	return findings
}

func hasSeniorTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range seniorTitleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// collectScopeEvidence returns the bullets containing scope keywords.
func collectScopeEvidence(bullets []string) []string {
	var evidence []string
	for _, bullet := range bullets {
		lower := strings.ToLower(bullet)
		for _, kw := range scopeEvidenceKeywords {
			if strings.Contains(lower, kw) {
				evidence = append(evidence, bullet)
				break
			}
		}
	}
	return evidence
}
