//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// RoleRequirement represents one job role from the role catalog with its
// required skill levels (1-5 per skill).
type RoleRequirement struct {
	Title           string         `json:"title" validate:"required"`
	Category        string         `json:"category"`
	Description     string         `json:"description,omitempty"`
	RequiredSkills  map[string]int `json:"required_skills" validate:"required,dive,min=1,max=5"`
	ExperienceLevel string         `json:"experience_level,omitempty"`
	Industry        string         `json:"industry,omitempty"`
}

// Validate validates the RoleRequirement using the validator.
func (r *RoleRequirement) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SkillMatch records how one required skill compares against the
// candidate's level. UserLevel is 0 for missing skills.
type SkillMatch struct {
	Skill         string  `json:"skill"`
	RequiredLevel int     `json:"required_level"`
	UserLevel     float64 `json:"user_level"`
}

// RolePrediction is the scored result for a single role. Percentage is
// clipped to [0,100]; Probability is Percentage/100.
type RolePrediction struct {
	Role        string       `json:"role"`
	Probability float64      `json:"probability"`
	Percentage  float64      `json:"percentage"`
	Matched     []SkillMatch `json:"matched"`
	Weak        []SkillMatch `json:"weak"`
	Missing     []SkillMatch `json:"missing"`
}
