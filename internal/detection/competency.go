package detection

import (
	"strings"

	"github.com/jonathan/fit-analyzer/internal/types"
)

// Competency level ladder. Levels are shared across families; dimension
// keywords differ per family.
const (
	LevelIC1       = 1
	LevelIC2       = 2
	LevelSenior    = 3
	LevelStaff     = 4
	LevelDirector  = 5
	LevelPrincipal = 6
)

// dimensionLadder defines, per dimension, the evidence keywords that place a
// candidate at each rung. The highest rung with a keyword hit wins.
type dimensionLadder struct {
	name  string
	rungs []rung
}

type rung struct {
	level    int
	keywords []string
}

// competencyDimensions is the fixed dimension set scored for every family:
// strategy ownership, scale complexity, and cross-functional leadership.
var competencyDimensions = []dimensionLadder{
	{
		name: "strategy_ownership",
		rungs: []rung{
			{LevelPrincipal, []string{"company-wide strategy", "multi-year strategy", "org-wide"}},
			{LevelDirector, []string{"department strategy", "owned the roadmap", "defined strategy"}},
			{LevelStaff, []string{"cross-team initiative", "technical direction", "program strategy"}},
			{LevelSenior, []string{"owned", "led", "drove"}},
			{LevelIC2, []string{"delivered", "implemented", "executed"}},
		},
	},
	{
		name: "scale_complexity",
		rungs: []rung{
			{LevelPrincipal, []string{"millions of users", "billions", "global scale"}},
			{LevelDirector, []string{"company-wide", "across the organization"}},
			{LevelStaff, []string{"multiple teams", "at scale", "high-volume"}},
			{LevelSenior, []string{"end-to-end", "full lifecycle"}},
			{LevelIC2, []string{"feature", "component", "module"}},
		},
	},
	{
		name: "cross_functional_leadership",
		rungs: []rung{
			{LevelPrincipal, []string{"executive stakeholders", "board"}},
			{LevelDirector, []string{"direct reports", "managed managers", "built a team"}},
			{LevelStaff, []string{"mentored", "led a team", "tech lead"}},
			{LevelSenior, []string{"cross-functional", "stakeholders", "partnered"}},
			{LevelIC2, []string{"collaborated", "worked with"}},
		},
	},
}

// seniorityToLevel maps the extractor's seniority label onto the ladder.
var seniorityToLevel = map[string]int{
	"junior":    LevelIC1,
	"mid":       LevelIC2,
	"senior":    LevelSenior,
	"staff":     LevelStaff,
	"principal": LevelPrincipal,
	"director":  LevelDirector,
	"executive": LevelDirector,
}

// MapCompetencyLevels scores each competency dimension against the level
// ladder using evidence keywords, yielding a demonstrated level distinct from
// the level the requirement demands.
func MapCompetencyLevels(resume *types.ResumeRecord, req *types.JobRequirement) *types.CompetencyMappingFinding {
	body := allResumeText(resume)

	finding := &types.CompetencyMappingFinding{
		RequiredLevel: requiredLevel(req),
		Dimensions:    make([]types.DimensionScore, 0, len(competencyDimensions)),
	}

	demonstrated := 0
	for _, dim := range competencyDimensions {
		score := scoreDimension(body, dim)
		finding.Dimensions = append(finding.Dimensions, score)
		demonstrated += score.Level
	}
	if len(competencyDimensions) > 0 {
		demonstrated /= len(competencyDimensions)
	}
	if demonstrated < LevelIC1 {
		demonstrated = LevelIC1
	}
	finding.DemonstratedLevel = demonstrated

	return finding
}

func requiredLevel(req *types.JobRequirement) int {
	if level, ok := seniorityToLevel[req.SeniorityLevel]; ok {
		return level
	}
	return LevelIC2
}

func scoreDimension(body string, dim dimensionLadder) types.DimensionScore {
	score := types.DimensionScore{Dimension: dim.name, Level: LevelIC1}
	for _, r := range dim.rungs {
		for _, kw := range r.keywords {
			if strings.Contains(body, kw) {
				score.Level = r.level
				score.Evidence = append(score.Evidence, kw)
				return score
			}
		}
	}
	return score
}

func allResumeText(resume *types.ResumeRecord) string {
	var sb strings.Builder
	for _, pos := range resume.Positions {
		sb.WriteString(pos.CombinedText())
		sb.WriteString(" ")
	}
	return sb.String()
}
