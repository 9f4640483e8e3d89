package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const unknownYear = "Unknown"

// educationTemplate is one structural layout the education cascade can
// recover (degree, field, institution, year) tuples from.
type educationTemplate interface {
	extract(text string) []types.EducationEntry
}

// yearRe finds a bare 4-digit year or a "Month Year" token in the text
// following an institution name.
var yearRe = regexp.MustCompile(`(20\d{2}|19\d{2})|([A-Z][a-z]+\s+20\d{2})`)

// yearNear scans up to radius characters after the located institution for
// a year token. Unresolved years become "Unknown".
func yearNear(text, institution string, radius int) string {
	idx := strings.Index(text, institution)
	if idx == -1 {
		return unknownYear
	}
	end := idx + radius
	if end > len(text) {
		end = len(text)
	}
	m := yearRe.FindStringSubmatch(text[idx:end])
	if m == nil {
		return unknownYear
	}
	if m[1] != "" {
		return m[1]
	}
	return strings.TrimSpace(m[2])
}

// degreePipeTemplate matches "Master's in computer science | Governors
// State University" style pipe-delimited entries.
type degreePipeTemplate struct{}

var degreePipeRe = regexp.MustCompile(`(?i)(Master'?s?|Bachelor'?s?|B\.?Tech|M\.?Tech|MBA|M\.?S\.?|B\.?S\.?)\s+(?:of\s+[A-Za-z]+\s+)?in\s+([^|]+?)\s*\|\s*([^|,\n]+?(?:University|College|Institute|School|Tech))`)

func (degreePipeTemplate) extract(text string) []types.EducationEntry {
	var entries []types.EducationEntry
	for _, m := range degreePipeRe.FindAllStringSubmatch(text, -1) {
		institution := strings.TrimSpace(m[3])
		entries = append(entries, types.EducationEntry{
			Degree:      titleCase(strings.TrimSpace(m[1])),
			Field:       titleCase(strings.TrimSpace(m[2])),
			Institution: institution,
			Year:        yearNear(text, institution, 150),
		})
	}
	return entries
}

// degreeInlineTemplate matches pipe-less "Master's in Computer Science
// Governors State University Aug 2024" layouts with a trailing Month Year.
type degreeInlineTemplate struct{}

var degreeInlineRe = regexp.MustCompile(`(Master'?s?|Bachelor'?s?|B\.?Tech|M\.?Tech)\s+(?:in|of)\s+([A-Za-z\s&]+?)\s+([A-Z][A-Za-z\s&.'-]+(?:University|College|Institute))\s+([A-Z][a-z]{2,}\s+\d{4})`)

func (degreeInlineTemplate) extract(text string) []types.EducationEntry {
	var entries []types.EducationEntry
	for _, m := range degreeInlineRe.FindAllStringSubmatch(text, -1) {
		entries = append(entries, types.EducationEntry{
			Degree:      titleCase(strings.TrimSpace(m[1])),
			Field:       titleCase(strings.TrimSpace(m[2])),
			Institution: strings.TrimSpace(m[3]),
			Year:        strings.TrimSpace(m[4]),
		})
	}
	return entries
}

// fullDegreeTemplate matches canonical full degree names with a pipe:
// "Bachelor of Technology in computer science | Jawaharlal Nehru
// Technological University".
type fullDegreeTemplate struct{}

var fullDegreeRe = regexp.MustCompile(`(?i)(Bachelor\s+of\s+Technology|Bachelor\s+of\s+Engineering|Bachelor\s+of\s+Science|Master\s+of\s+Science|Master\s+of\s+Engineering)\s+in\s+([^|]+?)\s*\|\s*([^|,\n]+?(?:University|College|Institute))`)

func (fullDegreeTemplate) extract(text string) []types.EducationEntry {
	var entries []types.EducationEntry
	for _, m := range fullDegreeRe.FindAllStringSubmatch(text, -1) {
		institution := strings.TrimSpace(m[3])
		entries = append(entries, types.EducationEntry{
			Degree:      titleCase(strings.TrimSpace(m[1])),
			Field:       titleCase(strings.TrimSpace(m[2])),
			Institution: institution,
			Year:        yearNear(text, institution, 100),
		})
	}
	return entries
}

// institutionFirstTemplate matches layouts that lead with the school:
// "CVR College of Engineering Bachelor of Technology in Computer Science".
type institutionFirstTemplate struct{}

var institutionFirstRe = regexp.MustCompile(`(?i)([A-Z][A-Za-z\s&.'-]+(?:University|College|Institute))\s+(Master'?s?|Bachelor'?s?|Bachelor\s+of\s+Technology|Master\s+of\s+Science)\s+(?:in\s+)?([A-Za-z\s&]+?)(?:\s+[A-Z][a-z]+,?\s+[A-Z]{2}|\n|\z)`)

func (institutionFirstTemplate) extract(text string) []types.EducationEntry {
	var entries []types.EducationEntry
	for _, m := range institutionFirstRe.FindAllStringSubmatch(text, -1) {
		entries = append(entries, types.EducationEntry{
			Degree:      titleCase(strings.TrimSpace(m[2])),
			Field:       titleCase(strings.TrimSpace(m[3])),
			Institution: strings.TrimSpace(m[1]),
			Year:        unknownYear,
		})
	}
	return entries
}

// fieldFalsePositives are place names that the looser templates sometimes
// capture as a field of study.
var fieldFalsePositives = []string{"hyderabad", "india", "chicago", "newark", "boston"}

// EducationExtractor recovers education entries with the same cascade
// philosophy as the experience extractor: ordered layout templates whose
// hits are pooled, cleaned, and deduplicated.
type EducationExtractor struct {
	templates []educationTemplate
}

// NewEducationExtractor builds the extractor with the default template
// cascade.
func NewEducationExtractor() *EducationExtractor {
	return &EducationExtractor{
		templates: []educationTemplate{
			degreePipeTemplate{},
			degreeInlineTemplate{},
			fullDegreeTemplate{},
			institutionFirstTemplate{},
		},
	}
}

// Extract returns deduplicated education entries in discovery order. No
// match yields an empty list.
func (e *EducationExtractor) Extract(text string) []types.EducationEntry {
	var pooled []types.EducationEntry
	for _, t := range e.templates {
		pooled = append(pooled, t.extract(text)...)
	}
	return dedupeEducation(pooled)
}

// dedupeEducation cleans pooled entries, drops implausible fields, and
// keeps the first occurrence of each (degree, field, institution) key.
// Field and institution are truncated in the key so near-identical
// spellings collapse together.
func dedupeEducation(entries []types.EducationEntry) []types.EducationEntry {
	var unique []types.EducationEntry
	seen := make(map[string]struct{})

	for _, entry := range entries {
		entry.Field = collapseWhitespace(entry.Field)
		entry.Institution = collapseWhitespace(entry.Institution)
		entry.Institution = strings.TrimSpace(trailingInstituteRe.ReplaceAllString(entry.Institution, ""))

		if len(entry.Field) < 3 {
			continue
		}
		fieldLower := strings.ToLower(entry.Field)
		if containsAny(fieldLower, fieldFalsePositives) {
			continue
		}

		key := strings.ToLower(entry.Degree) + "\x00" +
			truncateRunes(fieldLower, 20) + "\x00" +
			truncateRunes(strings.ToLower(entry.Institution), 30)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, entry)
	}

	return unique
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
