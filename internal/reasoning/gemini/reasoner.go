// Package gemini implements the generative reasoning strategy. Every call is
// best-effort: any failure falls back to the wrapped deterministic reasoner,
// so callers always receive text.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/career"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/logger"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/reasoning"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
}

//go:embed explain_prompt.md
var explainPromptTemplate string

//go:embed roadmap_prompt.md
var roadmapPromptTemplate string

const (
	explainSystemPrompt = "You are a career guidance expert providing personalized career recommendations."
	roadmapSystemPrompt = "You are an educational expert providing detailed learning roadmaps."

	explainMaxTokens = 150
	roadmapMaxTokens = 500
	temperature      = 0.7

	// The remote call has no retry; it either answers within the budget or
	// the rule-based fallback answers instead.
	defaultCallTimeout = 10 * time.Second

	defaultMaxLogLength = 200

	maxPromptSkills         = 10
	maxPromptInterests      = 5
	maxPromptRequiredSkills = 5
)

// Reasoner is the generative strategy. It wraps a fallback reasoner that
// handles every failure mode of the remote call.
type Reasoner struct {
	generator contentGenerator
	fallback  reasoning.Reasoner
	logger    *zap.Logger
	timeout   time.Duration
	maxLogLen int
}

// NewReasoner creates a generative reasoner on top of the given generator.
// fallback must not be nil.
func NewReasoner(generator contentGenerator, fallback reasoning.Reasoner, log *zap.Logger) *Reasoner {
	return &Reasoner{
		generator: generator,
		fallback:  fallback,
		logger:    log,
		timeout:   defaultCallTimeout,
		maxLogLen: defaultMaxLogLength,
	}
}

// Explain asks Gemini for a short personalized justification. On any failure
// the rule-based text is returned instead.
func (r *Reasoner) Explain(ctx context.Context, profile career.Profile, record career.Record, score float64) string {
	prompt := buildExplainPrompt(profile, record, score)

	out, err := r.generate(ctx, prompt, explainSystemPrompt, explainMaxTokens)
	if err != nil {
		r.logger.Warn("generative reasoning failed, using rule-based",
			zap.String("career_id", record.ID),
			zap.Error(err),
		)
		return r.fallback.Explain(ctx, profile, record, score)
	}

	return out
}

// EnhanceRoadmap asks Gemini to rewrite the seeded learning path into more
// detailed steps, one per line. The seeded path is returned on any failure or
// empty rewrite.
func (r *Reasoner) EnhanceRoadmap(ctx context.Context, record career.Record) []string {
	if len(record.LearningPath) == 0 {
		return r.fallback.EnhanceRoadmap(ctx, record)
	}

	prompt := buildRoadmapPrompt(record)

	out, err := r.generate(ctx, prompt, roadmapSystemPrompt, roadmapMaxTokens)
	if err != nil {
		r.logger.Warn("roadmap enhancement failed, using seeded learning path",
			zap.String("career_id", record.ID),
			zap.Error(err),
		)
		return r.fallback.EnhanceRoadmap(ctx, record)
	}

	steps := parseRoadmapSteps(out)
	if len(steps) == 0 {
		return r.fallback.EnhanceRoadmap(ctx, record)
	}

	return steps
}

func (r *Reasoner) generate(ctx context.Context, prompt, systemPrompt string, maxTokens int32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: maxTokens,
		Temperature:     genai.Ptr[float32](temperature),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}

	r.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, r.maxLogLen)),
	)

	out, err := r.generator.GenerateContent(ctx, prompt, cfg)
	if err != nil {
		return "", err
	}

	r.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(out)),
		zap.String("response_preview", logger.TruncateForLog(out, r.maxLogLen)),
	)

	return out, nil
}

func buildExplainPrompt(profile career.Profile, record career.Record, score float64) string {
	prompt := explainPromptTemplate
	prompt = strings.ReplaceAll(prompt, "{{SKILLS}}", joinHead(profile.Skills, maxPromptSkills))
	prompt = strings.ReplaceAll(prompt, "{{INTERESTS}}", joinHead(profile.Interests, maxPromptInterests))
	prompt = strings.ReplaceAll(prompt, "{{EXPERIENCE_YEARS}}", fmt.Sprintf("%d", profile.ExperienceYears))
	prompt = strings.ReplaceAll(prompt, "{{EDUCATION}}", profile.EducationLevel)
	prompt = strings.ReplaceAll(prompt, "{{GOALS}}", profile.Goals)
	prompt = strings.ReplaceAll(prompt, "{{CAREER}}", record.Title)
	prompt = strings.ReplaceAll(prompt, "{{CATEGORY}}", record.Category)
	prompt = strings.ReplaceAll(prompt, "{{REQUIRED_SKILLS}}", joinHead(record.RequiredSkills, maxPromptRequiredSkills))
	prompt = strings.ReplaceAll(prompt, "{{MATCH_SCORE}}", fmt.Sprintf("%.0f%%", score*100))
	return prompt
}

func buildRoadmapPrompt(record career.Record) string {
	var steps strings.Builder
	for _, step := range record.LearningPath {
		steps.WriteString("- ")
		steps.WriteString(step)
		steps.WriteString("\n")
	}

	prompt := roadmapPromptTemplate
	prompt = strings.ReplaceAll(prompt, "{{CAREER}}", record.Title)
	prompt = strings.ReplaceAll(prompt, "{{CATEGORY}}", record.Category)
	prompt = strings.ReplaceAll(prompt, "{{BASE_STEPS}}", strings.TrimRight(steps.String(), "\n"))
	return prompt
}

// parseRoadmapSteps splits the model output into one step per line, dropping
// bullet markers and blank lines.
func parseRoadmapSteps(raw string) []string {
	var steps []string
	for _, line := range strings.Split(raw, "\n") {
		step := strings.TrimSpace(line)
		step = strings.TrimLeft(step, "-*• ")
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}
		steps = append(steps, step)
	}
	return steps
}

func joinHead(values []string, limit int) string {
	if len(values) > limit {
		values = values[:limit]
	}
	return strings.Join(values, ", ")
}
