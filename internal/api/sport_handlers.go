package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListSports(w http.ResponseWriter, r *http.Request) {
	sports := s.SportService.ListSports(r.Context())
	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"sports": sports,
	})
}

func (s *Server) handleGetSport(w http.ResponseWriter, r *http.Request) {
	sport := chi.URLParam(r, "sport")

	p, err := s.SportService.GetSport(r.Context(), sport)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, p)
}
