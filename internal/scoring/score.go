// Package scoring computes role suitability scores for parsed candidate
// profiles against the job role catalog.
package scoring

import (
	"sort"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Score adjustment rules, applied additively in this order before clipping.
const (
	bonusNoMissing     = 8   // every required skill present
	bonusStrongCover   = 5   // matched count >= 80% of required skills
	penaltyManyMissing = 10  // missing count > 40% of required skills
	strongCoverRatio   = 0.8
	manyMissingRatio   = 0.4
	exceedBonusCap     = 1.0 // at most one level of exceed counts toward bonus
	exceedBonusWeight  = 0.3
)

// Breakdown classifies each required skill of a role relative to the
// candidate: matched (user >= required), weak (present but below required),
// or missing.
type Breakdown struct {
	Matched []types.SkillMatch
	Weak    []types.SkillMatch
	Missing []types.SkillMatch
}

// ScoreRole computes the 0-100 suitability percentage of one role for the
// candidate's skills, along with the per-skill breakdown. Required skills
// are evaluated in sorted name order so results are deterministic.
func ScoreRole(skills []types.Skill, role types.RoleRequirement) (float64, Breakdown) {
	var breakdown Breakdown

	if len(role.RequiredSkills) == 0 {
		return 0, breakdown
	}

	names := make([]string, 0, len(role.RequiredSkills))
	for name := range role.RequiredSkills {
		names = append(names, name)
	}
	sort.Strings(names)

	var total, maxPossible float64
	for _, name := range names {
		requiredLevel := role.RequiredSkills[name]
		maxPossible += float64(requiredLevel)

		userLevel, found := findSkillLevel(name, skills)
		switch {
		case !found:
			breakdown.Missing = append(breakdown.Missing, types.SkillMatch{
				Skill: name, RequiredLevel: requiredLevel, UserLevel: 0,
			})
		case userLevel >= float64(requiredLevel):
			breakdown.Matched = append(breakdown.Matched, types.SkillMatch{
				Skill: name, RequiredLevel: requiredLevel, UserLevel: userLevel,
			})
			exceed := userLevel - float64(requiredLevel)
			if exceed > exceedBonusCap {
				exceed = exceedBonusCap
			}
			total += float64(requiredLevel) + exceed*exceedBonusWeight
		default:
			breakdown.Weak = append(breakdown.Weak, types.SkillMatch{
				Skill: name, RequiredLevel: requiredLevel, UserLevel: userLevel,
			})
			// Kept in this form deliberately: downstream calibration
			// (bonuses, thresholds) is tuned against it.
			total += (userLevel / float64(requiredLevel)) * float64(requiredLevel)
		}
	}

	percentage := (total / maxPossible) * 100
	percentage = applyAdjustments(percentage, len(breakdown.Matched), len(breakdown.Missing), len(role.RequiredSkills))

	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	return percentage, breakdown
}

// applyAdjustments applies the fixed bonus and penalty rules to the base
// percentage.
func applyAdjustments(base float64, matched, missing, totalRequired int) float64 {
	adjusted := base

	if missing == 0 {
		adjusted += bonusNoMissing
	}
	if float64(matched) >= float64(totalRequired)*strongCoverRatio {
		adjusted += bonusStrongCover
	}
	if float64(missing) > float64(totalRequired)*manyMissingRatio {
		adjusted -= penaltyManyMissing
	}

	return adjusted
}

// Scorer ranks the whole role catalog for a candidate profile.
type Scorer struct {
	roles []types.RoleRequirement
}

// NewScorer builds a Scorer over the loaded role catalog.
func NewScorer(roles []types.RoleRequirement) *Scorer {
	return &Scorer{roles: roles}
}

// Rank scores every catalog role against the profile and returns
// predictions sorted descending by percentage. The sort is stable: ties
// keep catalog order.
func (s *Scorer) Rank(profile *types.Profile) []types.RolePrediction {
	predictions := make([]types.RolePrediction, 0, len(s.roles))

	for _, role := range s.roles {
		percentage, breakdown := ScoreRole(profile.Skills, role)
		predictions = append(predictions, types.RolePrediction{
			Role:        role.Title,
			Probability: percentage / 100,
			Percentage:  percentage,
			Matched:     breakdown.Matched,
			Weak:        breakdown.Weak,
			Missing:     breakdown.Missing,
		})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Percentage > predictions[j].Percentage
	})

	return predictions
}
