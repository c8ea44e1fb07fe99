package types

// ExperienceAssessment holds the deterministic recomputation of a candidate's
// relevant experience. It is derived fresh on every run and never persisted
// independently of its run.
type ExperienceAssessment struct {
	RawYears                  float64    `json:"raw_years"`
	CredibilityAdjustedYears  float64    `json:"credibility_adjusted_years"`
	YearsPercentOfRequirement float64    `json:"years_percentage_of_requirement"`
	RoleFamily                RoleFamily `json:"role_family"`
}
