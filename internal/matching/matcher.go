// Package matching computes the deterministic profile/career match score.
package matching

import (
	"strings"

	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/career"
)

// Sub-score weights. A weight participates in the denominator only when its
// dimension has data, so an absent dimension never drags the score down.
const (
	requiredSkillsWeight  = 0.5
	preferredSkillsWeight = 0.2
	experienceWeight      = 0.15
	interestWeight        = 0.15

	// Experience contribution saturates at this many years.
	experienceSaturationYears = 5
)

// Score returns the match between a profile and a career record in [0, 1].
// It is pure and deterministic: equal inputs always produce equal outputs.
func Score(profile career.Profile, record career.Record) float64 {
	var score, maxScore float64

	if len(record.RequiredSkills) > 0 {
		covered := len(MatchedSkills(profile.Skills, record.RequiredSkills))
		score += float64(covered) / float64(len(record.RequiredSkills)) * requiredSkillsWeight
		maxScore += requiredSkillsWeight
	}

	if len(record.PreferredSkills) > 0 {
		covered := len(MatchedSkills(profile.Skills, record.PreferredSkills))
		score += float64(covered) / float64(len(record.PreferredSkills)) * preferredSkillsWeight
		maxScore += preferredSkillsWeight
	}

	exp := float64(profile.ExperienceYears) / experienceSaturationYears
	if exp > 1 {
		exp = 1
	}
	score += exp * experienceWeight
	maxScore += experienceWeight

	if len(profile.Interests) > 0 {
		if InterestMatches(profile.Interests, record.Category) {
			score += interestWeight
		}
		maxScore += interestWeight
	}

	if maxScore == 0 {
		return 0
	}

	normalized := score / maxScore
	if normalized < 0 {
		return 0
	}
	if normalized > 1 {
		return 1
	}
	return normalized
}

// MatchedSkills returns the skills from candidates covered by at least one
// user skill. A skill is covered when either string contains the other,
// case-insensitively. Order follows candidates.
func MatchedSkills(userSkills, candidates []string) []string {
	var matched []string
	for _, candidate := range candidates {
		if skillCovered(userSkills, candidate) {
			matched = append(matched, candidate)
		}
	}
	return matched
}

// InterestMatches reports whether any interest and the category contain each
// other, case-insensitively.
func InterestMatches(interests []string, category string) bool {
	cat := strings.ToLower(category)
	for _, interest := range interests {
		in := strings.ToLower(interest)
		if in == "" {
			continue
		}
		if strings.Contains(cat, in) || strings.Contains(in, cat) {
			return true
		}
	}
	return false
}

func skillCovered(userSkills []string, candidate string) bool {
	c := strings.ToLower(candidate)
	for _, skill := range userSkills {
		s := strings.ToLower(skill)
		if s == "" {
			continue
		}
		if strings.Contains(s, c) || strings.Contains(c, s) {
			return true
		}
	}
	return false
}
