package types

import (
	"github.com/go-playground/validator/v10"
)

// SpecVersion tags every result so historical outputs remain interpretable
// after rule changes. Old results are never silently re-scored.
const SpecVersion = "fit-rules/v1"

// RawGap is a weakness as the generative step phrased it, before classification.
type RawGap struct {
	Dimension   string `json:"dimension,omitempty"`
	Description string `json:"description" validate:"required"`
}

// YourMove holds the generative step's suggested next actions for the candidate.
type YourMove struct {
	Summary string   `json:"summary,omitempty"`
	Actions []string `json:"actions,omitempty"`
}

// RawAnalysis is the untrusted payload returned by the generative analysis
// step. Every numeric and enum field here is subject to the enforcer's
// invariant checks; every gap passes through the gap classifier.
type RawAnalysis struct {
	FitScore       int       `json:"fit_score"`
	Recommendation string    `json:"recommendation" validate:"required"`
	Strengths      []string  `json:"strengths" validate:"required,min=1"`
	Gaps           []RawGap  `json:"gaps"`
	YourMove       *YourMove `json:"your_move,omitempty"`
}

// Validate checks the RawAnalysis field constraints using the validator.
// Out-of-scale scores are not rejected here; clamping them is the override
// enforcer's job.
func (r *RawAnalysis) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// AnalysisResult is the pipeline's final structured output.
type AnalysisResult struct {
	SpecVersion string               `json:"spec_version"`
	RunID       string               `json:"run_id"`
	Decision    FitDecision          `json:"fit_decision"`
	Assessment  ExperienceAssessment `json:"experience_assessment"`
	Findings    DetectionFindings    `json:"detection_findings"`
	Gaps        []Gap                `json:"gaps"`
	Strengths   []string             `json:"strengths"`
	YourMove    *YourMove            `json:"your_move,omitempty"`
}
