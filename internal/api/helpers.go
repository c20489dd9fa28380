package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/athlyze/athlyze/internal/errors"
	"github.com/athlyze/athlyze/internal/logger"
)

func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

// queryInt parses an optional integer query parameter. An absent parameter
// yields the zero value without error.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewBadRequestError(name + " must be an integer")
	}
	return n, nil
}
