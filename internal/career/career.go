package career

// SalaryRange is the yearly salary band for a career, min <= max.
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// Record describes a single career path. Records are created once from the
// seed set and never mutated afterwards.
type Record struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Category        string      `json:"category"`
	Description     string      `json:"description"`
	RequiredSkills  []string    `json:"required_skills"`
	PreferredSkills []string    `json:"preferred_skills"`
	SalaryRange     SalaryRange `json:"salary_range"`
	GrowthPotential int         `json:"growth_potential"`
	LearningPath    []string    `json:"learning_path"`
}

// Categories used by the seed set.
const (
	CategorySoftwareDevelopment = "Software Development"
	CategoryAIML                = "AI/ML"
	CategoryData                = "Data"
	CategoryCloudDevOps         = "Cloud/DevOps"
	CategoryCybersecurity       = "Cybersecurity"
	CategoryOther               = "Other"
)
