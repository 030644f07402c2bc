package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/career"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/reasoning"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
	lastConfig *genai.GenerateContentConfig
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	s.lastPrompt = prompt
	s.lastConfig = config
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testProfile() career.Profile {
	return career.Profile{
		Skills:          []string{"Python", "SQL"},
		Interests:       []string{"AI/ML"},
		EducationLevel:  "Bachelor's",
		ExperienceYears: 3,
		Goals:           "Become a data scientist",
	}
}

func testRecord() career.Record {
	return career.Record{
		ID:             "data-scientist",
		Title:          "Data Scientist",
		Category:       career.CategoryAIML,
		RequiredSkills: []string{"Python", "SQL", "Machine Learning"},
		LearningPath:   []string{"Master Python for data science", "Learn statistics and probability"},
	}
}

func TestExplainUsesGeneratedText(t *testing.T) {
	stub := &stubGenerator{response: "Your Python background fits this role well."}
	r := NewReasoner(stub, reasoning.NewRuleBased(), zap.NewNop())

	got := r.Explain(context.Background(), testProfile(), testRecord(), 0.54)

	if got != stub.response {
		t.Fatalf("expected generated text, got %q", got)
	}
	if !strings.Contains(stub.lastPrompt, "Data Scientist") {
		t.Fatalf("prompt missing career title: %q", stub.lastPrompt)
	}
	if !strings.Contains(stub.lastPrompt, "Match Score: 54%") {
		t.Fatalf("prompt missing formatted score: %q", stub.lastPrompt)
	}
	if stub.lastConfig == nil || stub.lastConfig.MaxOutputTokens != explainMaxTokens {
		t.Fatalf("unexpected generation config: %+v", stub.lastConfig)
	}
}

func TestExplainFallsBackOnError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("quota exceeded")}
	fallback := reasoning.NewRuleBased()
	r := NewReasoner(stub, fallback, zap.NewNop())

	profile := testProfile()
	record := testRecord()

	got := r.Explain(context.Background(), profile, record, 0.54)
	want := fallback.Explain(context.Background(), profile, record, 0.54)

	if got != want {
		t.Fatalf("expected rule-based fallback text %q, got %q", want, got)
	}
}

func TestEnhanceRoadmapParsesSteps(t *testing.T) {
	stub := &stubGenerator{response: "- Install Python and set up a workspace\n\n* Study pandas and numpy in depth\nComplete two end-to-end projects"}
	r := NewReasoner(stub, reasoning.NewRuleBased(), zap.NewNop())

	got := r.EnhanceRoadmap(context.Background(), testRecord())

	want := []string{
		"Install Python and set up a workspace",
		"Study pandas and numpy in depth",
		"Complete two end-to-end projects",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d steps, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if !strings.Contains(stub.lastPrompt, "- Master Python for data science") {
		t.Fatalf("prompt missing base steps: %q", stub.lastPrompt)
	}
}

func TestEnhanceRoadmapFallsBackOnError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("network down")}
	r := NewReasoner(stub, reasoning.NewRuleBased(), zap.NewNop())

	record := testRecord()
	got := r.EnhanceRoadmap(context.Background(), record)

	if len(got) != len(record.LearningPath) {
		t.Fatalf("expected seeded path, got %v", got)
	}
	for i := range got {
		if got[i] != record.LearningPath[i] {
			t.Fatalf("step %d changed: %q", i, got[i])
		}
	}
}

func TestEnhanceRoadmapFallsBackOnBlankOutput(t *testing.T) {
	stub := &stubGenerator{response: "\n \n- \n"}
	r := NewReasoner(stub, reasoning.NewRuleBased(), zap.NewNop())

	record := testRecord()
	got := r.EnhanceRoadmap(context.Background(), record)

	if len(got) != len(record.LearningPath) || got[0] != record.LearningPath[0] {
		t.Fatalf("expected seeded path on blank output, got %v", got)
	}
}
