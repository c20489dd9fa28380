package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/athlyze/athlyze/internal/errors"
	"github.com/athlyze/athlyze/internal/logger"
	"github.com/athlyze/athlyze/internal/models"
	"github.com/athlyze/athlyze/internal/services"
)

// maxBodyBytes caps analysis submissions; a full-length sequence fits well
// under this.
const maxBodyBytes = 32 << 20

func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req services.CreateAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body: "+err.Error()))
		return
	}

	a, err := s.AnalysisService.Create(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Debug("analysis %s queued", a.ID)
	respondJSON(w, r, http.StatusAccepted, a)
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	report, err := s.AnalysisService.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, report)
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	filter := models.AnalysisFilter{
		Sport:  r.URL.Query().Get("sport"),
		Status: r.URL.Query().Get("status"),
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(w, r, err)
		return
	}
	filter.Limit = limit
	filter.Offset = offset

	page, err := s.AnalysisService.List(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, page)
}

func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.AnalysisService.Delete(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
