// Package server exposes the career catalog and recommendation pipeline over
// HTTP with JSON bodies.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/catalog"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/recommend"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/reasoning"
)

// Local development frontends allowed to call the API.
var allowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://localhost:3001",
}

// Server holds the handlers' collaborators. All of them are read-only after
// construction, so one Server safely serves concurrent requests.
type Server struct {
	catalog     catalog.Catalog
	recommender *recommend.Recommender
	reasoner    reasoning.Reasoner
	validate    *validator.Validate
	logger      *zap.Logger
	version     string
}

// New creates the HTTP boundary over the given collaborators.
func New(cat catalog.Catalog, recommender *recommend.Recommender, reasoner reasoning.Reasoner, version string, logger *zap.Logger) *Server {
	return &Server{
		catalog:     cat,
		recommender: recommender,
		reasoner:    reasoner,
		validate:    validator.New(),
		logger:      logger,
		version:     version,
	}
}

// Handler builds the chi route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/", s.handleRoot)

	r.Route("/careers", func(r chi.Router) {
		r.Get("/", s.handleListCareers)
		r.Get("/search", s.handleSearchCareers)
		r.Get("/{id}", s.handleGetCareer)
		r.Get("/{id}/roadmap", s.handleRoadmap)
	})

	r.Post("/recommendations", s.handleRecommendations)

	return r
}
