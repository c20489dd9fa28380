package api

import (
	"github.com/athlyze/athlyze/internal/db"
	"github.com/athlyze/athlyze/internal/services"
	"github.com/athlyze/athlyze/internal/worker"
)

// Server bundles the HTTP handler dependencies. Fields are wired once at
// startup and treated as read-only afterwards.
type Server struct {
	DB              *db.DB
	AnalysisService services.AnalysisService
	SportService    services.SportService
	AnalysisPool    *worker.Pool
}
