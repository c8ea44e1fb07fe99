package types

// TitleAlignment describes whether a position's title is supported by scope evidence.
type TitleAlignment string

// Title alignment values returned by the title-inflation detector.
const (
	TitleAccurate TitleAlignment = "accurate"
	TitleInflated TitleAlignment = "inflated"
	TitleUnclear  TitleAlignment = "unclear"
)

// OwnershipLevel classifies the strength of ownership language in resume bullets.
type OwnershipLevel string

// Ownership levels from strongest to weakest.
const (
	OwnershipDirect   OwnershipLevel = "direct"
	OwnershipAdjacent OwnershipLevel = "adjacent"
	OwnershipExposure OwnershipLevel = "exposure"
)

// CredibilityTier reflects how verifiable an employer's claimed scale is.
type CredibilityTier string

// Credibility tiers and their multipliers applied before experience summation.
const (
	CredibilityHigh   CredibilityTier = "high"   // 1.0
	CredibilityMedium CredibilityTier = "medium" // 0.7
	CredibilityLow    CredibilityTier = "low"    // 0.3
	CredibilityZero   CredibilityTier = "zero"   // 0.0
)

// Multiplier returns the experience multiplier for a credibility tier.
func (t CredibilityTier) Multiplier() float64 {
	switch t {
	case CredibilityHigh:
		return 1.0
	case CredibilityMedium:
		return 0.7
	case CredibilityLow:
		return 0.3
	case CredibilityZero:
		return 0.0
	default:
		return 0.3
	}
}

// TitleInflationFinding is the title-inflation detector's result for one position.
type TitleInflationFinding struct {
	Position  string         `json:"position"`
	Company   string         `json:"company"`
	Alignment TitleAlignment `json:"alignment"`
	Evidence  []string       `json:"evidence,omitempty"`
}

// CareerSwitcherFinding reports whether the candidate reads as a switcher into
// the target function, based on the distribution of ownership language.
type CareerSwitcherFinding struct {
	IsSwitcher     bool           `json:"is_switcher"`
	OwnershipLevel OwnershipLevel `json:"ownership_level"`
	DirectCount    int            `json:"direct_count"`
	AdjacentCount  int            `json:"adjacent_count"`
	ExposureCount  int            `json:"exposure_count"`
}

// CompanyTier is one employer's credibility assessment.
type CompanyTier struct {
	Company             string          `json:"company"`
	Tier                CredibilityTier `json:"tier"`
	Multiplier          float64         `json:"multiplier"`
	VerificationSignals []string        `json:"verification_signals,omitempty"`
}

// CompanyCredibilityFinding tiers every employer on the resume.
type CompanyCredibilityFinding struct {
	Companies []CompanyTier `json:"companies"`
}

// TierFor returns the credibility tier for a company, defaulting to low when
// the company was never assessed.
func (f *CompanyCredibilityFinding) TierFor(company string) CredibilityTier {
	if f == nil {
		return CredibilityLow
	}
	for _, c := range f.Companies {
		if c.Company == company {
			return c.Tier
		}
	}
	return CredibilityLow
}

// DimensionScore scores a single competency dimension against the level ladder.
type DimensionScore struct {
	Dimension string   `json:"dimension"`
	Level     int      `json:"level"` // 1 (IC1) .. 6 (Principal)
	Evidence  []string `json:"evidence,omitempty"`
}

// CompetencyMappingFinding compares demonstrated competency against what the
// role requires, per dimension.
type CompetencyMappingFinding struct {
	DemonstratedLevel int              `json:"demonstrated_level"`
	RequiredLevel     int              `json:"required_level"`
	Dimensions        []DimensionScore `json:"per_dimension_scores"`
}

// DetectionFindings collects the results of all detection-layer analyzers.
// Findings are read-only inputs to the enforcer; none of them ever writes a score.
type DetectionFindings struct {
	TitleInflation     []TitleInflationFinding    `json:"title_inflation"`
	CareerSwitcher     *CareerSwitcherFinding     `json:"career_switcher"`
	CompanyCredibility *CompanyCredibilityFinding `json:"company_credibility"`
	CompetencyMapping  *CompetencyMappingFinding  `json:"competency_mapping"`
}
