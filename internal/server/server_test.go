package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/career"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/catalog"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/reasoning"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/reasoning/gemini"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/recommend"
)

type failingGenerator struct{}

func (failingGenerator) GenerateContent(context.Context, string, *genai.GenerateContentConfig) (string, error) {
	return "", errors.New("simulated outage")
}

func newTestServer(reasoner reasoning.Reasoner) *Server {
	cat := catalog.NewMemory(career.Seed())
	recommender := recommend.New(cat, reasoner, zap.NewNop())
	return New(cat, recommender, reasoner, "1.0.0", zap.NewNop())
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(resp.Body.Bytes(), v); err != nil {
		t.Fatalf("decoding response %q: %v", resp.Body.String(), err)
	}
}

func TestRootLiveness(t *testing.T) {
	handler := newTestServer(reasoning.NewRuleBased()).Handler()

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body rootResponse
	decodeBody(t, resp, &body)
	if body.Status != "running" || body.Message == "" {
		t.Fatalf("unexpected liveness payload: %+v", body)
	}
}

func TestListCareers(t *testing.T) {
	handler := newTestServer(reasoning.NewRuleBased()).Handler()

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/careers", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var records []career.Record
	decodeBody(t, resp, &records)
	if len(records) != len(career.Seed()) {
		t.Fatalf("expected full catalog, got %d records", len(records))
	}
}

func TestGetCareerNotFound(t *testing.T) {
	handler := newTestServer(reasoning.NewRuleBased()).Handler()

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/careers/unknown-id", nil))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}

	var body map[string]string
	decodeBody(t, resp, &body)
	if body["detail"] != "Career not found" {
		t.Fatalf("unexpected detail: %q", body["detail"])
	}
}

func TestGetCareer(t *testing.T) {
	handler := newTestServer(reasoning.NewRuleBased()).Handler()

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/careers/data-scientist", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var record career.Record
	decodeBody(t, resp, &record)
	if record.Title != "Data Scientist" {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func TestSearchCareers(t *testing.T) {
	handler := newTestServer(reasoning.NewRuleBased()).Handler()

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/careers/search?q=frontend", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var records []career.Record
	decodeBody(t, resp, &records)
	if len(records) == 0 || records[0].ID != "frontend-developer" {
		t.Fatalf("unexpected search result: %+v", records)
	}
	for _, record := range records {
		if record.ID != "frontend-developer" && record.ID != "fullstack-developer" {
			t.Fatalf("unexpected match %q", record.ID)
		}
	}
}

func TestSearchCareersEmptyQueryMatchesAll(t *testing.T) {
	handler := newTestServer(reasoning.NewRuleBased()).Handler()

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/careers/search", nil))

	var records []career.Record
	decodeBody(t, resp, &records)
	if len(records) != len(career.Seed()) {
		t.Fatalf("empty query should match all, got %d records", len(records))
	}
}

func TestRoadmapWithoutCredentialReturnsSeededPath(t *testing.T) {
	// Rule-based reasoner stands in for the no-credential configuration.
	handler := newTestServer(reasoning.NewRuleBased()).Handler()

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/careers/frontend-developer/roadmap", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body roadmapResponse
	decodeBody(t, resp, &body)

	var seeded career.Record
	for _, record := range career.Seed() {
		if record.ID == "frontend-developer" {
			seeded = record
		}
	}

	if body.Career != "Frontend Developer" {
		t.Fatalf("unexpected career: %q", body.Career)
	}
	if body.EstimatedTime != "6-12 months" || body.Difficulty != "Intermediate to Advanced" {
		t.Fatalf("unexpected roadmap metadata: %+v", body)
	}
	if len(body.Roadmap) != len(seeded.LearningPath) {
		t.Fatalf("expected seeded learning path, got %v", body.Roadmap)
	}
	for i := range body.Roadmap {
		if body.Roadmap[i] != seeded.LearningPath[i] {
			t.Fatalf("roadmap step %d modified: %q", i, body.Roadmap[i])
		}
	}
}

func TestRoadmapNotFound(t *testing.T) {
	handler := newTestServer(reasoning.NewRuleBased()).Handler()

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/careers/no-such-career/roadmap", nil))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}

	var body map[string]string
	decodeBody(t, resp, &body)
	if body["detail"] != "Career with id 'no-such-career' not found" {
		t.Fatalf("unexpected detail: %q", body["detail"])
	}
}

func TestRecommendations(t *testing.T) {
	handler := newTestServer(reasoning.NewRuleBased()).Handler()

	payload := `{"skills":["Python","SQL","Machine Learning"],"interests":["AI/ML"],"education_level":"Bachelor's","experience_years":3,"goals":"Become a data scientist"}`

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body recommendationResponse
	decodeBody(t, resp, &body)

	if len(body.Recommendations) == 0 || len(body.Recommendations) > 3 {
		t.Fatalf("unexpected recommendation count: %d", len(body.Recommendations))
	}
	if body.Recommendations[0].Career != "Data Scientist" {
		t.Fatalf("expected Data Scientist first, got %q", body.Recommendations[0].Career)
	}
	if !strings.Contains(body.UserProfileSummary, "3 skills") {
		t.Fatalf("unexpected summary: %q", body.UserProfileSummary)
	}
	for _, rec := range body.Recommendations {
		if rec.Reasoning == "" {
			t.Fatalf("recommendation without reasoning: %+v", rec)
		}
	}
}

func TestRecommendationsSurviveGenerativeOutage(t *testing.T) {
	// Generative reasoner whose remote call always fails; the rule-based
	// fallback must keep the endpoint at 200.
	reasoner := gemini.NewReasoner(failingGenerator{}, reasoning.NewRuleBased(), zap.NewNop())
	handler := newTestServer(reasoner).Handler()

	payload := `{"skills":["Python","SQL"],"interests":["AI/ML"],"experience_years":2}`

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 despite generative outage, got %d", resp.Code)
	}

	var body recommendationResponse
	decodeBody(t, resp, &body)
	for _, rec := range body.Recommendations {
		if !strings.Contains(rec.Reasoning, "Match score:") {
			t.Fatalf("expected rule-based reasoning, got %q", rec.Reasoning)
		}
	}
}

func TestRecommendationsRejectsMalformedBody(t *testing.T) {
	handler := newTestServer(reasoning.NewRuleBased()).Handler()

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
}

func TestRecommendationsRejectsNegativeExperience(t *testing.T) {
	handler := newTestServer(reasoning.NewRuleBased()).Handler()

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(`{"experience_years":-1}`))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
}
