package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.Profile{
		Skills: []types.Skill{
			{Name: "Python", ProficiencyScore: 5.0, Confidence: 0.76},
			{Name: "Docker", ProficiencyScore: 2.5, Confidence: 0.68},
		},
		Experience: []types.ExperienceEntry{
			{Position: "Senior Data Scientist", Company: "TechCorp", Duration: "2020 - Present"},
		},
		Education: []types.EducationEntry{
			{Degree: "Masters", Field: "Analytics", Institution: "Governors State University", Year: "2025"},
		},
	}

	p.PrintProfile(profile)

	out := buf.String()
	assert.Contains(t, out, "EXTRACTED PROFILE")
	assert.Contains(t, out, "Skills found: 2")
	assert.Contains(t, out, "Python (5.0, confidence 0.76)")
	assert.Contains(t, out, "Senior Data Scientist @ TechCorp")
	assert.Contains(t, out, "Masters in Analytics")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(nil)

	assert.Empty(t, buf.String())
}

func TestPrintProfile_TruncatesSkillList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.Profile{
		Skills: []types.Skill{
			{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"},
			{Name: "E"}, {Name: "F"}, {Name: "G"},
		},
	}

	p.PrintProfile(profile)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintPredictions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPredictions([]types.RolePrediction{
		{
			Role:       "DevOps Engineer",
			Percentage: 55.9,
			Matched:    []types.SkillMatch{{Skill: "Docker"}},
			Missing:    []types.SkillMatch{{Skill: "Kubernetes"}},
		},
		{Role: "Data Engineer", Percentage: 20.0},
	})

	out := buf.String()
	assert.Contains(t, out, "ROLE PREDICTIONS")
	assert.Contains(t, out, "#1  DevOps Engineer")
	assert.Contains(t, out, "Score: 55.9%")
	assert.Contains(t, out, "Matched: Docker")
	assert.Contains(t, out, "Missing: Kubernetes")
	assert.Contains(t, out, "#2  Data Engineer")
}

func TestPrintPredictions_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPredictions(nil)

	assert.Contains(t, buf.String(), "NO ROLES SCORED")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 100))

	assert.Contains(t, buf.String(), "...")
}
