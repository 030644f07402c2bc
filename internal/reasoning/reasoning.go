// Package reasoning produces human-readable justifications for career
// recommendations. Two interchangeable strategies exist: the deterministic
// rule-based one below, always available, and a generative one in the gemini
// subpackage that wraps it as its fallback.
package reasoning

import (
	"context"
	"fmt"
	"strings"

	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/career"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/matching"
)

// Reasoner explains a scored profile/career pair and optionally rewrites a
// career's learning path into more detailed steps. Implementations never
// fail: a degraded but usable text is always returned.
type Reasoner interface {
	Explain(ctx context.Context, profile career.Profile, record career.Record, score float64) string
	EnhanceRoadmap(ctx context.Context, record career.Record) []string
}

// RuleBased is the deterministic strategy. It needs no external services.
type RuleBased struct{}

// NewRuleBased creates the rule-based reasoner.
func NewRuleBased() *RuleBased {
	return &RuleBased{}
}

// Explain assembles reasoning clauses from the profile/career overlap and
// appends the formatted match score.
func (r *RuleBased) Explain(_ context.Context, profile career.Profile, record career.Record, score float64) string {
	var reasons []string

	if matched := matching.MatchedSkills(profile.Skills, record.RequiredSkills); len(matched) > 0 {
		if len(matched) > 2 {
			matched = matched[:2]
		}
		reasons = append(reasons, fmt.Sprintf("Your skills in %s align well with this role", strings.Join(matched, ", ")))
	}

	if profile.ExperienceYears > 0 {
		reasons = append(reasons, fmt.Sprintf("Your %d years of experience are valuable", profile.ExperienceYears))
	}

	if interestNamesCategory(profile.Interests, record.Category) {
		reasons = append(reasons, fmt.Sprintf("This matches your interest in %s", record.Category))
	}

	if len(reasons) == 0 {
		reasons = append(reasons, fmt.Sprintf("This career path offers strong growth potential in %s", record.Category))
	}

	return strings.Join(reasons, ". ") + fmt.Sprintf(" Match score: %.0f%%", score*100)
}

// EnhanceRoadmap returns the seeded learning path unchanged; the rule-based
// strategy has nothing to add.
func (r *RuleBased) EnhanceRoadmap(_ context.Context, record career.Record) []string {
	return record.LearningPath
}

// interestNamesCategory reports whether any interest appears inside the
// category. Unlike the scorer's bidirectional check, the clause fires only
// when the interest names the category, not the other way around.
func interestNamesCategory(interests []string, category string) bool {
	cat := strings.ToLower(category)
	for _, interest := range interests {
		in := strings.ToLower(strings.TrimSpace(interest))
		if in != "" && strings.Contains(cat, in) {
			return true
		}
	}
	return false
}
