package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const maxExperienceEntries = 5

// experienceDoc carries the full resume text and the located experience
// section. Some templates match against the whole document, others only
// inside the section.
type experienceDoc struct {
	full    string
	section string
}

// experienceTemplate is one structural layout the cascade knows how to
// recover (position, company, duration) triples from. Templates never
// fail; a non-matching template simply contributes no entries.
type experienceTemplate interface {
	extract(doc experienceDoc) []types.ExperienceEntry
}

// Section locators, tried in order. Resumes without a recognizable header
// fall back to scanning the whole text.
var experienceSectionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?is)(?:PROFESSIONAL\s+)?EXPERIENCE[:\s_]*\n(.*?)(?:\n\n[A-Z][A-Z\s]{8,}|\z)`),
	regexp.MustCompile(`(?is)(?:WORK\s+)?HISTORY[:\s_]*\n(.*?)(?:\n\n[A-Z][A-Z\s]{8,}|\z)`),
	regexp.MustCompile(`(?is)EMPLOYMENT[:\s_]*\n(.*?)(?:\n\n[A-Z][A-Z\s]{8,}|\z)`),
	regexp.MustCompile(`(?is)(Engineer.*?(?:\d{2}/\d{4}\s*[-–]\s*\d{2}/\d{4}|[A-Z][a-z]+\s+\d{4}\s*[-–]\s*[A-Z][a-z]+\s+\d{4}).*?)(?:\n\n[A-Z][A-Z\s]{8,}|\z)`),
}

// experienceSection locates the experience section of the resume, or
// returns the full text when no header is found.
func experienceSection(text string) string {
	for _, re := range experienceSectionRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return text
}

// pipeDelimitedTemplate matches "Title | Company, Location (Remote) Month
// Year - Month Year" and the MM/YYYY date variant across the whole text.
type pipeDelimitedTemplate struct{}

var pipeDelimitedRe = regexp.MustCompile(`(?i)([A-Za-z\s&/]+(?:Engineer|Developer|Scientist|Analyst|Manager|Architect|Consultant|Specialist|Lead|Director|Coordinator|Administrator|Designer|Technician|Officer|Executive|Intern))\s*[|,]\s*([A-Z][A-Za-z\s&.,()-]+?)(?:\s*\((?:Remote|Hybrid|On-site)\))?\s+([A-Z][a-z]+\s+\d{4}\s*[-–]\s*(?:Present|[A-Z][a-z]+\s+\d{4})|\d{2}/\d{4}\s*[-–]\s*\d{2}/\d{4})`)

func (pipeDelimitedTemplate) extract(doc experienceDoc) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	for _, m := range pipeDelimitedRe.FindAllStringSubmatch(doc.full, -1) {
		entries = append(entries, types.ExperienceEntry{
			Position: strings.TrimSpace(m[1]),
			Company:  strings.TrimSpace(strings.TrimRight(strings.TrimSpace(m[2]), ",")),
			Duration: strings.TrimSpace(m[3]),
		})
	}
	return entries
}

// commaDelimitedTemplate matches "Title, Company | LOCATION 06/2019 –
// 02/2022" style lines with numeric dates. Case-sensitive: the company
// must start with a capital.
type commaDelimitedTemplate struct{}

var commaDelimitedRe = regexp.MustCompile(`([A-Za-z\s&/]+(?:Engineer|Developer|Scientist|Analyst|Manager|Architect|Consultant|Specialist|Lead|Director|Intern)),\s*([A-Z][A-Za-z\s&.]+?)(?:\s*\|)?\s+(?:[A-Z\s]+)?\s+(\d{2}/\d{4}\s*[-–]\s*\d{2}/\d{4})`)

func (commaDelimitedTemplate) extract(doc experienceDoc) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	for _, m := range commaDelimitedRe.FindAllStringSubmatch(doc.full, -1) {
		entries = append(entries, types.ExperienceEntry{
			Position: strings.TrimSpace(m[1]),
			Company:  strings.TrimSpace(strings.TrimRight(strings.TrimSpace(m[2]), "|")),
			Duration: strings.TrimSpace(m[3]),
		})
	}
	return entries
}

// subRoleTemplate matches parenthetical sub-role layouts inside the
// experience section: "Engineer, BOSCH | HYDERABAD DevOps (DevOps
// Engineer, 03/2022 - 12/2023)". One instance per date format.
type subRoleTemplate struct {
	re *regexp.Regexp
}

var (
	subRoleNumericRe = regexp.MustCompile(`(?:Engineer|Developer|Analyst)\s*,?\s*([A-Z][A-Z\s&]+)\s*\|.*?\(([A-Za-z\s&/]+(?:Engineer|Developer|Scientist|Analyst|Manager)),\s*(\d{2}/\d{4}\s*[-–]\s*\d{2}/\d{4})\)`)
	subRoleMonthRe   = regexp.MustCompile(`(?:Engineer|Developer|Analyst)\s*,?\s*([A-Z][A-Z\s&]+)\s*\|.*?\(([A-Za-z\s&/]+(?:Engineer|Developer|Scientist|Analyst|Manager)),\s*([A-Z][a-z]+\s+\d{4}\s*[-–]\s*[A-Z][a-z]+\s+\d{4})\)`)
)

func (t subRoleTemplate) extract(doc experienceDoc) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	for _, m := range t.re.FindAllStringSubmatch(doc.section, -1) {
		entries = append(entries, types.ExperienceEntry{
			Position: strings.TrimSpace(m[2]),
			Company:  strings.TrimSpace(m[1]),
			Duration: strings.TrimSpace(m[3]),
		})
	}
	return entries
}

// bareParentheticalTemplate matches "Section Title (Sub-Role, Mar 2022 -
// Dec 2022)" layouts where the company is not on the same line, then scans
// up to 200 characters before the match for a company name.
type bareParentheticalTemplate struct{}

var (
	bareParentheticalRe = regexp.MustCompile(`([A-Za-z\s&/]+)\s*\(([A-Za-z\s&/]+(?:Engineer|Developer|Scientist|Analyst|Manager)),\s*([A-Z][a-z]+\s+\d{4}\s*[-–]\s*[A-Z][a-z]+\s+\d{4})\)`)

	// Company recovery patterns for the backward scan, tried in order.
	companyBeforeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?:Engineer|Developer|Analyst)\s*,?\s*([A-Z][A-Z\s&]+)\s*\|`),
		regexp.MustCompile(`\n([A-Z][A-Za-z\s&.]+(?:,|:))\s*[A-Z][a-z]+`),
	}
)

const companyScanRadius = 200

func (bareParentheticalTemplate) extract(doc experienceDoc) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	for _, m := range bareParentheticalRe.FindAllStringSubmatch(doc.section, -1) {
		sectionTitle := m[1]
		idx := strings.Index(doc.section, sectionTitle)
		if idx <= 0 {
			continue
		}

		start := idx - companyScanRadius
		if start < 0 {
			start = 0
		}
		before := doc.section[start:idx]

		var company string
		for _, re := range companyBeforeRes {
			if cm := re.FindStringSubmatch(before); cm != nil {
				company = strings.TrimSpace(trailingPunctRe.ReplaceAllString(strings.TrimSpace(cm[1]), ""))
				break
			}
		}
		if len(company) <= 2 {
			continue
		}

		entries = append(entries, types.ExperienceEntry{
			Position: strings.TrimSpace(m[2]),
			Company:  company,
			Duration: strings.TrimSpace(m[3]),
		})
	}
	return entries
}

// ExperienceExtractor recovers work experience entries by running an
// ordered cascade of structural templates and pooling every hit. Resume
// layouts vary too much for a single pattern, so each template targets one
// layout family; the union is cleaned, deduplicated, and capped at 5
// entries in discovery order.
type ExperienceExtractor struct {
	templates []experienceTemplate
}

// NewExperienceExtractor builds the extractor with the default template
// cascade.
func NewExperienceExtractor() *ExperienceExtractor {
	return &ExperienceExtractor{
		templates: []experienceTemplate{
			pipeDelimitedTemplate{},
			commaDelimitedTemplate{},
			subRoleTemplate{re: subRoleNumericRe},
			subRoleTemplate{re: subRoleMonthRe},
			bareParentheticalTemplate{},
		},
	}
}

// Extract returns at most 5 experience entries in discovery order (not
// chronological). No match anywhere yields an empty list.
func (e *ExperienceExtractor) Extract(text string) []types.ExperienceEntry {
	doc := experienceDoc{full: text, section: experienceSection(text)}

	var pooled []types.ExperienceEntry
	for _, t := range e.templates {
		pooled = append(pooled, t.extract(doc)...)
	}

	return dedupeExperience(pooled)
}

// dedupeExperience cleans pooled entries, drops implausible ones, and
// keeps the first occurrence of each (position, company) pair.
func dedupeExperience(entries []types.ExperienceEntry) []types.ExperienceEntry {
	var unique []types.ExperienceEntry
	seen := make(map[string]struct{})

	for _, entry := range entries {
		entry.Company = collapseWhitespace(trailingCompanyRe.ReplaceAllString(entry.Company, ""))
		entry.Position = collapseWhitespace(entry.Position)

		if len(entry.Company) < 2 || len(entry.Position) < 5 {
			continue
		}
		// Short fully upper-case tokens are location codes, not companies.
		if isAllUpper(entry.Company) && len(entry.Company) < 10 {
			continue
		}

		key := strings.ToLower(entry.Position) + "\x00" + strings.ToLower(entry.Company)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, entry)

		if len(unique) == maxExperienceEntries {
			break
		}
	}

	return unique
}
