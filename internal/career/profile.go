package career

// Profile is the user-supplied input for a single recommendation request.
// It is never persisted.
type Profile struct {
	Skills          []string `json:"skills"`
	Interests       []string `json:"interests"`
	EducationLevel  string   `json:"education_level"`
	ExperienceYears int      `json:"experience_years" validate:"gte=0"`
	Goals           string   `json:"goals"`
	CurrentRole     string   `json:"current_role,omitempty"`
	Location        string   `json:"location,omitempty"`
}

// Recommendation is a single ranked result derived from a Record plus the
// computed match score and its reasoning text.
type Recommendation struct {
	Career          string      `json:"career"`
	MatchScore      float64     `json:"match_score"`
	Reasoning       string      `json:"reasoning"`
	RequiredSkills  []string    `json:"required_skills"`
	LearningPath    []string    `json:"learning_path"`
	SalaryRange     SalaryRange `json:"salary_range"`
	GrowthPotential int         `json:"growth_potential"`
}
