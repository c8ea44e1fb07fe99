package types

// GapType distinguishes a genuine experience deficit from a presentation deficit.
type GapType string

// Gap types. Every gap must carry exactly one of these; conflating them
// destroys user trust in the coaching output.
const (
	GapExperience   GapType = "experience"
	GapPresentation GapType = "presentation"
)

// Severity grades how much a gap matters for the target role.
type Severity string

// Severity levels from most to least impactful.
const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Gap represents one distinct weakness surfaced by the generative step or the
// detection layer, classified by the gap classifier.
type Gap struct {
	Dimension   string   `json:"dimension"`
	Description string   `json:"description"`
	GapType     GapType  `json:"gap_type"`
	Severity    Severity `json:"severity"`
	Coachable   bool     `json:"coachable"`
}
