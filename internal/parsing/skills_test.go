package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTaxonomy = []string{"Python", "Docker", "Kubernetes", "Go", "SQL", "Machine Learning"}

func TestExtractSkills_ExpertTierWinsRegardlessOfMentions(t *testing.T) {
	extractor := NewSkillExtractor(testTaxonomy)

	text := "Expert in Python. Built Python services. Daily Python scripting."
	skills := extractor.Extract(text)

	require.Len(t, skills, 1)
	assert.Equal(t, "Python", skills[0].Name)
	assert.Equal(t, 5.0, skills[0].ProficiencyScore)
	// 3 mentions: min(0.95, 0.6 + 3*0.08) = 0.84
	assert.Equal(t, 0.84, skills[0].Confidence)
}

func TestExtractSkills_ProficiencyTiers(t *testing.T) {
	extractor := NewSkillExtractor(testTaxonomy)

	tests := []struct {
		name     string
		text     string
		skill    string
		expected float64
	}{
		{"expert keyword", "Python expert with many projects", "Python", 5.0},
		{"advanced keyword", "Senior engineer, strong Kubernetes background", "Kubernetes", 4.2},
		{"intermediate keyword", "Hands-on Docker deployments", "Docker", 3.5},
		{"beginner keyword", "Familiar with Docker", "Docker", 2.5},
		{"novice keyword", "Currently studied SQL in university", "SQL", 1.5},
		{"no tier keyword defaults", "Shipped a Docker image", "Docker", 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := extractor.Extract(tt.text)
			require.Len(t, skills, 1)
			assert.Equal(t, tt.skill, skills[0].Name)
			assert.Equal(t, tt.expected, skills[0].ProficiencyScore)
		})
	}
}

func TestExtractSkills_ConfidenceCapped(t *testing.T) {
	extractor := NewSkillExtractor([]string{"Go"})

	// 6 mentions: 0.6 + 0.48 = 1.08, capped at 0.95.
	text := "Go Go Go Go Go Go"
	skills := extractor.Extract(text)

	require.Len(t, skills, 1)
	assert.Equal(t, 0.95, skills[0].Confidence)
}

func TestExtractSkills_WholeWordOnly(t *testing.T) {
	extractor := NewSkillExtractor([]string{"Go", "SQL"})

	// "Golang" and "NoSQL" must not count as Go / SQL mentions.
	skills := extractor.Extract("Golang and NoSQL experience")
	assert.Empty(t, skills)
}

func TestExtractSkills_SortedByProficiencyThenConfidence(t *testing.T) {
	extractor := NewSkillExtractor(testTaxonomy)

	text := "Expert in Python for analytics and data pipelines across many production teams. " +
		"Shipped Docker containers. Docker everywhere. Docker again."
	skills := extractor.Extract(text)

	require.Len(t, skills, 2)
	assert.Equal(t, "Python", skills[0].Name)
	assert.Equal(t, "Docker", skills[1].Name)
	assert.Greater(t, skills[0].ProficiencyScore, skills[1].ProficiencyScore)
}

func TestExtractSkills_EmptyForNoMatches(t *testing.T) {
	extractor := NewSkillExtractor(testTaxonomy)

	assert.Empty(t, extractor.Extract("Nothing relevant in this text at all."))
	assert.Empty(t, extractor.Extract(""))
}

func TestExtractSkills_Bounds(t *testing.T) {
	extractor := NewSkillExtractor(testTaxonomy)

	text := `Expert in Python and machine learning. Senior SQL developer with
strong Docker skills, familiar with Kubernetes, currently learning Go.
Python Python Python Python Python Python Python.`

	for _, skill := range extractor.Extract(text) {
		assert.GreaterOrEqual(t, skill.Confidence, 0.6, "%s confidence lower bound", skill.Name)
		assert.LessOrEqual(t, skill.Confidence, 0.95, "%s confidence upper bound", skill.Name)
		assert.GreaterOrEqual(t, skill.ProficiencyScore, 0.0, "%s proficiency lower bound", skill.Name)
		assert.LessOrEqual(t, skill.ProficiencyScore, 5.0, "%s proficiency upper bound", skill.Name)
	}
}
