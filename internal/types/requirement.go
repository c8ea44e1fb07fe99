package types

// RoleFamily classifies the job function a requirement targets.
type RoleFamily string

// Role family constants define the routing taxonomy for experience calculators.
const (
	FamilyRecruiting  RoleFamily = "recruiting"
	FamilyPM          RoleFamily = "pm"
	FamilyEngineering RoleFamily = "engineering"
	FamilySales       RoleFamily = "sales"
	FamilyMarketing   RoleFamily = "marketing"
	// FamilyOther routes to the fallback calculator that sums all positions.
	FamilyOther RoleFamily = "other"
)

// JobRequirement represents the structured requirements extracted from a job
// description. It is created once per analysis request and never mutated.
type JobRequirement struct {
	RoleFamily         RoleFamily `json:"role_family"`
	RequiredYears      float64    `json:"required_years"` // 0 means no experience gate
	SeniorityLevel     string     `json:"seniority_level"`
	LeadershipRequired bool       `json:"leadership_required"`
	HardConstraints    []string   `json:"hard_constraints,omitempty"`
}

// HasExperienceGate reports whether the requirement imposes a minimum tenure.
func (r *JobRequirement) HasExperienceGate() bool {
	return r.RequiredYears > 0
}
