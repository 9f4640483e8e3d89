package parsing

import (
	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Parser combines the skill, experience, and education extractors into a
// single resume-text -> Profile transformation. Construction compiles all
// taxonomy patterns once; Parse is a pure function of its input plus the
// catalog, so one Parser may serve concurrent callers.
type Parser struct {
	skills     *SkillExtractor
	experience *ExperienceExtractor
	education  *EducationExtractor
}

// NewParser builds a Parser over the given reference catalog.
func NewParser(cat *catalog.Catalog) *Parser {
	return &Parser{
		skills:     NewSkillExtractor(cat.Skills),
		experience: NewExperienceExtractor(),
		education:  NewEducationExtractor(),
	}
}

// Parse extracts a structured profile from raw resume text. Sections with
// no matches come back empty; Parse itself never fails.
func (p *Parser) Parse(text string) *types.Profile {
	return &types.Profile{
		Skills:     p.skills.Extract(text),
		Experience: p.experience.Extract(text),
		Education:  p.education.Extract(text),
	}
}
