package types

// Recommendation is one of the six fixed recommendation tiers.
type Recommendation string

// The six recommendation tiers. Each owns a closed score range; the enforcer
// guarantees no returned decision ever falls outside its tier's range.
const (
	RecStrongApply      Recommendation = "Strong Apply"       // 85-100
	RecApply            Recommendation = "Apply"              // 70-84
	RecConsider         Recommendation = "Consider"           // 55-69
	RecApplyWithCaution Recommendation = "Apply with Caution" // 40-54
	RecLongShot         Recommendation = "Long Shot"          // 25-39
	RecDoNotApply       Recommendation = "Do Not Apply"       // 0-24
)

// AllRecommendations lists every valid tier, highest score range first.
var AllRecommendations = []Recommendation{
	RecStrongApply,
	RecApply,
	RecConsider,
	RecApplyWithCaution,
	RecLongShot,
	RecDoNotApply,
}

// Valid reports whether the recommendation is one of the six fixed tiers.
func (r Recommendation) Valid() bool {
	for _, rec := range AllRecommendations {
		if r == rec {
			return true
		}
	}
	return false
}

// FitDecision is the final (score, recommendation) pair. It has exactly one
// writer, the override enforcer, and is immutable for the rest of the run.
type FitDecision struct {
	Score           int            `json:"score"`
	Recommendation  Recommendation `json:"recommendation"`
	OverrideApplied bool           `json:"override_applied"`
	OverrideReason  string         `json:"override_reason,omitempty"`
}

// Correction records one adjustment the enforcer made to the generative
// step's raw output, with before/after values for auditing.
type Correction struct {
	Field  string `json:"field"`
	Before string `json:"before"`
	After  string `json:"after"`
	Reason string `json:"reason"`
}
