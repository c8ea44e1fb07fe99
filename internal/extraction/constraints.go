package extraction

import (
	"strings"

	"github.com/jonathan/fit-analyzer/internal/types"
)

// constraintEvidence maps each hard-constraint label to the resume phrases
// that count as satisfying it.
var constraintEvidence = map[string][]string{
	"security_clearance":   {"clearance", "ts/sci", "cleared"},
	"certification":        {"certified", "certification", "licensed", "license"},
	"work_authorization":   {"authorized to work", "citizen", "permanent resident", "green card"},
	"degree_required":      {"b.s.", "b.a.", "bachelor", "master", "m.s.", "mba", "phd", "degree"},
	"onsite_requirement":   {}, // location logistics cannot be verified from a resume
	"language_proficiency": {"fluent", "native", "bilingual"},
}

// UnmetConstraints returns the requirement's hard constraints that have no
// supporting evidence anywhere on the resume. Constraints with no evidence
// vocabulary (pure logistics) are never reported unmet from resume text.
func UnmetConstraints(resume *types.ResumeRecord, req *types.JobRequirement) []string {
	if req == nil || len(req.HardConstraints) == 0 {
		return nil
	}

	var body strings.Builder
	for _, pos := range resume.Positions {
		body.WriteString(pos.CombinedText())
		body.WriteString(" ")
	}
	text := body.String()

	var unmet []string
	for _, constraint := range req.HardConstraints {
		evidence, known := constraintEvidence[constraint]
		if !known || len(evidence) == 0 {
			continue
		}
		satisfied := false
		for _, kw := range evidence {
			if strings.Contains(text, kw) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			unmet = append(unmet, constraint)
		}
	}
	return unmet
}
