package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/career"
)

const (
	roadmapEstimatedTime = "6-12 months"
	roadmapDifficulty    = "Intermediate to Advanced"
)

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

type roadmapResponse struct {
	Career          string   `json:"career"`
	Roadmap         []string `json:"roadmap"`
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	EstimatedTime   string   `json:"estimated_time"`
	Difficulty      string   `json:"difficulty"`
}

type recommendationResponse struct {
	Recommendations    []career.Recommendation `json:"recommendations"`
	UserProfileSummary string                  `json:"user_profile_summary"`
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, rootResponse{
		Message: "AI Career Path Recommender API",
		Version: s.version,
		Status:  "running",
	})
}

func (s *Server) handleListCareers(w http.ResponseWriter, r *http.Request) {
	records := s.catalog.All(r.Context())
	if records == nil {
		records = []career.Record{}
	}
	s.writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleSearchCareers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	records := s.catalog.Search(r.Context(), query)
	if records == nil {
		records = []career.Record{}
	}
	s.writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleGetCareer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, ok := s.catalog.Get(r.Context(), id)
	if !ok {
		s.writeDetail(w, http.StatusNotFound, "Career not found")
		return
	}

	s.writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, ok := s.catalog.Get(r.Context(), id)
	if !ok {
		s.writeDetail(w, http.StatusNotFound, fmt.Sprintf("Career with id '%s' not found", id))
		return
	}

	roadmap := s.reasoner.EnhanceRoadmap(r.Context(), record)

	s.writeJSON(w, http.StatusOK, roadmapResponse{
		Career:          record.Title,
		Roadmap:         roadmap,
		RequiredSkills:  record.RequiredSkills,
		PreferredSkills: record.PreferredSkills,
		EstimatedTime:   roadmapEstimatedTime,
		Difficulty:      roadmapDifficulty,
	})
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var profile career.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	if err := s.validate.Struct(profile); err != nil {
		s.writeDetail(w, http.StatusUnprocessableEntity, fmt.Sprintf("Invalid profile: %s", err))
		return
	}

	recommendations, summary := s.recommender.Recommend(r.Context(), profile)

	s.writeJSON(w, http.StatusOK, recommendationResponse{
		Recommendations:    recommendations,
		UserProfileSummary: summary,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", zap.Error(err))
	}
}

func (s *Server) writeDetail(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, map[string]string{"detail": detail})
}
