package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(timeoutMiddleware(60 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Get("/api/status", s.handleStatus)
	r.Get("/api/sports", s.handleListSports)
	r.Get("/api/sports/{sport}", s.handleGetSport)
	r.Post("/api/analyses", s.handleCreateAnalysis)
	r.Get("/api/analyses", s.handleListAnalyses)
	r.Get("/api/analyses/{id}", s.handleGetAnalysis)
	r.Delete("/api/analyses/{id}", s.handleDeleteAnalysis)

	return r
}
