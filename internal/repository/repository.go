package repository

import (
	"context"
	"time"

	"github.com/athlyze/athlyze/internal/models"
)

// AnalysisRepository handles analysis data access. Not-found lookups
// surface database/sql.ErrNoRows; the service layer maps them to API
// errors.
type AnalysisRepository interface {
	Insert(ctx context.Context, a models.Analysis) error
	Get(ctx context.Context, id string) (*models.Analysis, error)
	GetReport(ctx context.Context, id string) (*models.AnalysisReport, error)
	List(ctx context.Context, filter models.AnalysisFilter) ([]models.Analysis, error)
	Count(ctx context.Context, filter models.AnalysisFilter) (int, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	SaveReport(ctx context.Context, id string, report models.Report, completedAt time.Time) error
	MarkFailed(ctx context.Context, id string, reason string, completedAt time.Time) error
	Delete(ctx context.Context, id string) error
}
