// Package recommend ranks catalog careers against a user profile.
package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/career"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/catalog"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/matching"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/reasoning"
)

const (
	// Careers must score strictly above this to be recommended.
	relevanceThreshold = 0.2
	maxRecommendations = 3
	// Score assigned to the popular-careers fallback entries.
	fallbackScore = 0.5

	maxSummaryInterests = 3
)

// Recommender orchestrates catalog retrieval, scoring, reasoning and ranking.
type Recommender struct {
	catalog  catalog.Catalog
	reasoner reasoning.Reasoner
	logger   *zap.Logger
}

// New creates a Recommender over the given catalog and reasoner.
func New(cat catalog.Catalog, reasoner reasoning.Reasoner, logger *zap.Logger) *Recommender {
	return &Recommender{catalog: cat, reasoner: reasoner, logger: logger}
}

// Recommend returns up to three recommendations sorted by match score
// descending, plus a one-line profile summary. Ties keep catalog order. When
// nothing clears the relevance threshold the first three catalog records are
// returned as popular careers instead.
func (r *Recommender) Recommend(ctx context.Context, profile career.Profile) ([]career.Recommendation, string) {
	records := r.catalog.All(ctx)

	var recommendations []career.Recommendation
	for _, record := range records {
		score := matching.Score(profile, record)
		if score <= relevanceThreshold {
			continue
		}

		reasoningText := r.reasoner.Explain(ctx, profile, record, score)
		recommendations = append(recommendations, newRecommendation(record, score, reasoningText))
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})
	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	if len(recommendations) == 0 {
		recommendations = r.popularCareers(records)
		r.logger.Info("no careers above relevance threshold, returning popular careers",
			zap.Int("count", len(recommendations)),
		)
	}

	r.logger.Info("recommendations computed",
		zap.Int("catalog_size", len(records)),
		zap.Int("returned", len(recommendations)),
	)

	return recommendations, summarize(profile)
}

// popularCareers builds the degraded result: the first catalog records with a
// fixed score and generic reasoning, bypassing the reasoner.
func (r *Recommender) popularCareers(records []career.Record) []career.Recommendation {
	if len(records) > maxRecommendations {
		records = records[:maxRecommendations]
	}

	out := make([]career.Recommendation, 0, len(records))
	for _, record := range records {
		text := fmt.Sprintf("This is a popular career path in %s that you might be interested in.", record.Category)
		out = append(out, newRecommendation(record, fallbackScore, text))
	}
	return out
}

func newRecommendation(record career.Record, score float64, reasoningText string) career.Recommendation {
	return career.Recommendation{
		Career:          record.Title,
		MatchScore:      score,
		Reasoning:       reasoningText,
		RequiredSkills:  record.RequiredSkills,
		LearningPath:    record.LearningPath,
		SalaryRange:     record.SalaryRange,
		GrowthPotential: record.GrowthPotential,
	}
}

func summarize(profile career.Profile) string {
	interests := "various fields"
	if len(profile.Interests) > 0 {
		head := profile.Interests
		if len(head) > maxSummaryInterests {
			head = head[:maxSummaryInterests]
		}
		interests = strings.Join(head, ", ")
	}

	return fmt.Sprintf("Profile with %d skills, %d years experience, interested in %s",
		len(profile.Skills), profile.ExperienceYears, interests)
}
