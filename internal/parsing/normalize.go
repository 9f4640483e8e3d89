// Package parsing turns raw resume text into a structured candidate profile:
// skills with estimated proficiency, work experience entries, and education
// entries. Extraction is purely heuristic — layered regular-expression
// templates plus a skill taxonomy — and never fails; text that matches
// nothing yields empty sections.
package parsing

import "strings"

// substringRule maps a set of required substrings to a canonical skill name.
// Rules are applied in order after the exact reverse-index lookup misses.
type substringRule struct {
	contains  []string
	canonical string
}

// heuristicRules cover common skill spellings that rarely appear verbatim
// in synonym tables. Order matters: the first rule whose substrings all
// occur wins.
var heuristicRules = []substringRule{
	{[]string{"node", "js"}, "Node.js"},
	{[]string{"react"}, "React"},
	{[]string{"ci", "cd"}, "CI/CD"},
	{[]string{"html", "css"}, "HTML/CSS"},
	{[]string{"machine", "learning"}, "Machine Learning"},
	{[]string{"deep", "learning"}, "Deep Learning"},
	{[]string{"natural", "language"}, "Natural Language Processing"},
	{[]string{"rest", "api"}, "REST API"},
}

// Normalizer resolves raw skill strings to canonical skill names using a
// reverse synonym index plus heuristic substring rules. It is immutable
// after construction and safe for concurrent use.
type Normalizer struct {
	reverse map[string]string
}

// NewNormalizer builds a Normalizer from a canonical-name -> synonyms map.
// Each canonical name also maps to itself.
func NewNormalizer(synonyms map[string][]string) *Normalizer {
	reverse := make(map[string]string, len(synonyms)*2)
	for canonical, list := range synonyms {
		reverse[strings.ToLower(canonical)] = canonical
		for _, synonym := range list {
			reverse[strings.ToLower(synonym)] = canonical
		}
	}
	return &Normalizer{reverse: reverse}
}

// Normalize resolves a raw skill name to its canonical form. Lookup order:
// exact case-insensitive match against the reverse index, then heuristic
// substring rules, then the input title-cased. Normalization always
// succeeds and is idempotent.
func (n *Normalizer) Normalize(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if canonical, ok := n.reverse[strings.ToLower(cleaned)]; ok {
		return canonical
	}

	lower := strings.ToLower(cleaned)
	for _, rule := range heuristicRules {
		matched := true
		for _, sub := range rule.contains {
			if !strings.Contains(lower, sub) {
				matched = false
				break
			}
		}
		if matched {
			return rule.canonical
		}
	}

	return titleCase(cleaned)
}

// CanonicalName returns the canonical name for an exact (case-insensitive)
// reverse-index hit. Heuristic rules are not consulted.
func (n *Normalizer) CanonicalName(raw string) (string, bool) {
	canonical, ok := n.reverse[strings.ToLower(strings.TrimSpace(raw))]
	return canonical, ok
}

// NormalizeAll normalizes a batch of skill names.
func (n *Normalizer) NormalizeAll(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = n.Normalize(name)
	}
	return out
}
