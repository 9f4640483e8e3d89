package scoring

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// equivalenceGroups gate the substring fallback in findSkillLevel: two
// skill names whose lowered forms contain each other still only match when
// both belong to the same group. This keeps "Java" from matching
// "JavaScript" while letting "k8s" match "Kubernetes".
var equivalenceGroups = [][]string{
	{"ci/cd", "cicd", "ci cd", "continuous integration"},
	{"node.js", "nodejs", "node"},
	{"html/css", "html", "css"},
	{"rest api", "rest", "restful api", "api"},
	{"kubernetes", "k8s"},
	{"machine learning", "ml"},
	{"deep learning", "dl"},
	{"natural language processing", "nlp"},
}

// areEquivalent reports whether two lowered skill names belong to the same
// equivalence group.
func areEquivalent(a, b string) bool {
	for _, group := range equivalenceGroups {
		inA, inB := false, false
		for _, member := range group {
			if member == a {
				inA = true
			}
			if member == b {
				inB = true
			}
		}
		if inA && inB {
			return true
		}
	}
	return false
}

// findSkillLevel resolves the candidate's proficiency for a required skill:
// exact case-insensitive name match first, then bidirectional substring
// containment gated by the equivalence groups. Returns false when the
// candidate does not have the skill.
func findSkillLevel(required string, skills []types.Skill) (float64, bool) {
	requiredLower := strings.ToLower(required)

	for _, skill := range skills {
		if strings.ToLower(skill.Name) == requiredLower {
			return skill.ProficiencyScore, true
		}
	}

	for _, skill := range skills {
		userLower := strings.ToLower(skill.Name)
		if strings.Contains(requiredLower, userLower) || strings.Contains(userLower, requiredLower) {
			if areEquivalent(requiredLower, userLower) {
				return skill.ProficiencyScore, true
			}
		}
	}

	return 0, false
}
