// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Skill represents a skill detected in resume text with an estimated
// proficiency (0.0-5.0) and detection confidence (0.6-0.95).
type Skill struct {
	Name             string  `json:"name"`
	ProficiencyScore float64 `json:"proficiency_score"`
	Confidence       float64 `json:"confidence"`
}

// ExperienceEntry represents a single work experience entry recovered from
// resume text. All fields are free-form strings taken from the source text.
type ExperienceEntry struct {
	Position string `json:"position"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
}

// EducationEntry represents a single education entry. Year is "Unknown" when
// no year could be recovered near the institution.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Profile is the structured result of parsing one resume. Skills are sorted
// by proficiency then confidence (descending), experience is capped at 5
// entries in discovery order, education is deduplicated.
type Profile struct {
	Skills     []Skill           `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
}
