package parsing

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Proficiency tiers, checked in strict priority order against the context
// around each skill mention. The first tier with a keyword hit wins.
var proficiencyTiers = []struct {
	score    float64
	keywords []string
}{
	{5.0, []string{
		"expert", "expertise", "mastery", "master", "architect",
		"lead", "5+ years", "6 years", "7 years", "8 years", "10 years",
	}},
	{4.2, []string{
		"advanced", "senior", "proficient", "3 years", "4 years", "5 years",
		"extensive", "strong", "deep knowledge",
	}},
	{3.5, []string{
		"intermediate", "experienced", "2 years", "3 years",
		"working knowledge", "hands-on", "practical",
	}},
	{2.5, []string{
		"beginner", "basic", "familiar", "exposure", "1 year",
		"some experience", "introduced",
	}},
	{1.5, []string{
		"learning", "studied", "coursework", "academic", "theory",
	}},
}

const (
	defaultProficiency  = 3.0 // mention found but no tier keyword nearby
	fallbackProficiency = 2.5 // no context window recoverable
	baseConfidence      = 0.6
	perMentionBoost     = 0.08
	maxConfidence       = 0.95
	contextRadius       = 50
)

// skillPattern holds the precompiled matchers for one taxonomy skill.
type skillPattern struct {
	name    string
	mention *regexp.Regexp // whole-word occurrence
	context *regexp.Regexp // up to ±50 chars around each occurrence
}

// SkillExtractor scans resume text for taxonomy skill mentions and
// estimates a proficiency score and detection confidence per skill found.
// All patterns are compiled at construction; the extractor is immutable
// and safe for concurrent use.
type SkillExtractor struct {
	patterns []skillPattern
}

// NewSkillExtractor builds an extractor for the given (flattened) skill
// taxonomy.
func NewSkillExtractor(skills []string) *SkillExtractor {
	patterns := make([]skillPattern, 0, len(skills))
	for _, skill := range skills {
		escaped := regexp.QuoteMeta(strings.ToLower(skill))
		patterns = append(patterns, skillPattern{
			name:    skill,
			mention: regexp.MustCompile(`\b` + escaped + `\b`),
			context: regexp.MustCompile(fmt.Sprintf(`.{0,%d}%s.{0,%d}`, contextRadius, escaped, contextRadius)),
		})
	}
	return &SkillExtractor{patterns: patterns}
}

// Extract returns one Skill per taxonomy entry found in the text, sorted
// descending by (proficiency, confidence). Absence of any skill yields an
// empty list; there is no error path.
func (e *SkillExtractor) Extract(text string) []types.Skill {
	lower := strings.ToLower(text)

	var found []types.Skill
	for _, p := range e.patterns {
		mentions := len(p.mention.FindAllString(lower, -1))
		if mentions == 0 {
			continue
		}

		proficiency := estimateProficiency(lower, p.context)
		confidence := math.Min(maxConfidence, baseConfidence+float64(mentions)*perMentionBoost)

		found = append(found, types.Skill{
			Name:             p.name,
			ProficiencyScore: round1(proficiency),
			Confidence:       round2(confidence),
		})
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].ProficiencyScore != found[j].ProficiencyScore {
			return found[i].ProficiencyScore > found[j].ProficiencyScore
		}
		return found[i].Confidence > found[j].Confidence
	})

	return found
}

// estimateProficiency joins the context windows around every mention and
// checks tier keywords in priority order. Tier choice is independent of
// mention count.
func estimateProficiency(lowerText string, contextRe *regexp.Regexp) float64 {
	windows := contextRe.FindAllString(lowerText, -1)
	if len(windows) == 0 {
		return fallbackProficiency
	}
	context := strings.Join(windows, " ")

	for _, tier := range proficiencyTiers {
		for _, keyword := range tier.keywords {
			if strings.Contains(context, keyword) {
				return tier.score
			}
		}
	}

	return defaultProficiency
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
