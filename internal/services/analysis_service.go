package services

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/athlyze/athlyze/internal/engine"
	"github.com/athlyze/athlyze/internal/errors"
	"github.com/athlyze/athlyze/internal/logger"
	"github.com/athlyze/athlyze/internal/models"
	"github.com/athlyze/athlyze/internal/pose"
	"github.com/athlyze/athlyze/internal/posesource"
	"github.com/athlyze/athlyze/internal/profile"
	"github.com/athlyze/athlyze/internal/repository"
	"github.com/athlyze/athlyze/internal/worker"
)

// JobQueue enqueues background jobs. The small interface keeps the worker
// pool mockable in tests.
type JobQueue interface {
	TrySubmit(job worker.Job) bool
}

// CreateAnalysisRequest is the submission payload. Exactly one of Sequence
// and SequenceURL must be set.
type CreateAnalysisRequest struct {
	Sport               string         `json:"sport"`
	Sequence            *pose.Sequence `json:"sequence,omitempty"`
	SequenceURL         string         `json:"sequence_url,omitempty"`
	ConfidenceThreshold *float64       `json:"confidence_threshold,omitempty"`
}

// AnalysisPage is one page of the analysis listing.
type AnalysisPage struct {
	Analyses []models.Analysis `json:"analyses"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// AnalysisService handles sequence analysis business logic
type AnalysisService interface {
	Create(ctx context.Context, req CreateAnalysisRequest) (*models.Analysis, error)
	Get(ctx context.Context, id string) (*models.AnalysisReport, error)
	List(ctx context.Context, filter models.AnalysisFilter) (*AnalysisPage, error)
	Delete(ctx context.Context, id string) error
	RunAnalysis(ctx context.Context, id string, seq pose.Sequence) error
}

type analysisService struct {
	analysisRepo repository.AnalysisRepository
	registry     *profile.Registry
	queue        JobQueue
	source       posesource.Source
	config       AnalysisConfig
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(
	analysisRepo repository.AnalysisRepository,
	registry *profile.Registry,
	queue JobQueue,
	source posesource.Source,
	config AnalysisConfig,
) AnalysisService {
	return &analysisService{
		analysisRepo: analysisRepo,
		registry:     registry,
		queue:        queue,
		source:       source,
		config:       config,
	}
}

func (s *analysisService) Create(ctx context.Context, req CreateAnalysisRequest) (*models.Analysis, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating analysis: sport=%s", req.Sport)

	if req.Sport == "" {
		return nil, errors.NewValidationError("sport", "cannot be empty")
	}
	if _, ok := s.registry.Get(req.Sport); !ok {
		return nil, errors.NewUnsupportedSportError(req.Sport)
	}

	seq, err := s.resolveSequence(ctx, req)
	if err != nil {
		return nil, err
	}
	if n := seq.FrameCount(); n > s.config.MaxFrames {
		return nil, errors.NewMalformedSequenceError(
			fmt.Sprintf("frame count %d exceeds limit %d", n, s.config.MaxFrames))
	}

	confidence := s.config.DefaultConfidence
	if req.ConfidenceThreshold != nil {
		confidence = *req.ConfidenceThreshold
		if confidence < 0 || confidence >= 1 {
			return nil, errors.NewValidationError("confidence_threshold", "must be in [0, 1)")
		}
	}

	a := models.Analysis{
		ID:                  uuid.NewString(),
		Sport:               req.Sport,
		Status:              models.AnalysisStatusPending,
		CoordSpace:          seq.CoordSpace,
		FrameCount:          seq.FrameCount(),
		DurationSeconds:     seq.Duration(),
		ConfidenceThreshold: confidence,
		CreatedAt:           time.Now().UTC(),
	}
	if err := s.analysisRepo.Insert(ctx, a); err != nil {
		log.Error("failed to insert analysis: %v", err)
		return nil, errors.NewInternalError(err)
	}

	job := &worker.AnalyzeJob{Runner: s, AnalysisID: a.ID, Sequence: seq}
	if !s.queue.TrySubmit(job) {
		log.Warn("queue full, dropping analysis %s", a.ID)
		if err := s.analysisRepo.Delete(ctx, a.ID); err != nil {
			log.Error("failed to clean up rejected analysis: %v", err)
		}
		return nil, errors.NewQueueFullError()
	}

	log.Info("analysis accepted: id=%s, sport=%s, frames=%d", a.ID, a.Sport, a.FrameCount)
	return &a, nil
}

// resolveSequence picks the inline document or fetches the referenced one,
// and leaves only structurally valid sequences in play.
func (s *analysisService) resolveSequence(ctx context.Context, req CreateAnalysisRequest) (pose.Sequence, error) {
	log := logger.FromContext(ctx)

	switch {
	case req.Sequence == nil && req.SequenceURL == "":
		return pose.Sequence{}, errors.NewValidationError("sequence", "provide sequence or sequence_url")
	case req.Sequence != nil && req.SequenceURL != "":
		return pose.Sequence{}, errors.NewValidationError("sequence", "sequence and sequence_url are mutually exclusive")
	}

	if req.Sequence != nil {
		if err := req.Sequence.Validate(); err != nil {
			return pose.Sequence{}, errors.NewMalformedSequenceError(err.Error())
		}
		return *req.Sequence, nil
	}

	u, err := url.Parse(req.SequenceURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return pose.Sequence{}, errors.NewValidationError("sequence_url", "must be an http(s) url")
	}

	seq, err := s.source.Fetch(ctx, req.SequenceURL)
	if err != nil {
		log.Error("failed to fetch sequence: %v", err)
		return pose.Sequence{}, errors.NewSequenceFetchError(req.SequenceURL, err)
	}
	return seq, nil
}

func (s *analysisService) Get(ctx context.Context, id string) (*models.AnalysisReport, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting analysis: id=%s", id)

	report, err := s.analysisRepo.GetReport(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("analysis", id)
		}
		log.Error("failed to get analysis: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return report, nil
}

func (s *analysisService) List(ctx context.Context, filter models.AnalysisFilter) (*AnalysisPage, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing analyses: sport=%s, status=%s", filter.Sport, filter.Status)

	if filter.Sport != "" {
		if _, ok := s.registry.Get(filter.Sport); !ok {
			return nil, errors.NewUnsupportedSportError(filter.Sport)
		}
	}
	switch filter.Status {
	case "", models.AnalysisStatusPending, models.AnalysisStatusProcessing,
		models.AnalysisStatusCompleted, models.AnalysisStatusFailed:
	default:
		return nil, errors.NewValidationError("status", "unknown status")
	}

	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 200 {
		filter.Limit = 200
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	analyses, err := s.analysisRepo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list analyses: %v", err)
		return nil, errors.NewInternalError(err)
	}
	total, err := s.analysisRepo.Count(ctx, filter)
	if err != nil {
		log.Error("failed to count analyses: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return &AnalysisPage{
		Analyses: analyses,
		Total:    total,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	}, nil
}

func (s *analysisService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting analysis: id=%s", id)

	if err := s.analysisRepo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError("analysis", id)
		}
		log.Error("failed to delete analysis: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

// RunAnalysis executes the scoring for one queued sequence. Deleting an
// analysis while it waits or runs cancels it quietly.
func (s *analysisService) RunAnalysis(ctx context.Context, id string, seq pose.Sequence) error {
	log := logger.FromContext(ctx).WithField("analysis_id", id)

	a, err := s.analysisRepo.Get(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("analysis deleted before processing")
			return nil
		}
		return err
	}

	if err := s.analysisRepo.UpdateStatus(ctx, id, models.AnalysisStatusProcessing); err != nil {
		if err == sql.ErrNoRows {
			log.Info("analysis deleted before processing")
			return nil
		}
		return err
	}

	p, ok := s.registry.Get(a.Sport)
	if !ok {
		_ = s.analysisRepo.MarkFailed(ctx, id, "unsupported sport: "+a.Sport, time.Now().UTC())
		return errors.NewUnsupportedSportError(a.Sport)
	}

	log.Info("scoring sequence: sport=%s, frames=%d", a.Sport, seq.FrameCount())
	report := engine.Evaluate(p, seq, engine.Options{Confidence: a.ConfidenceThreshold})

	if err := s.analysisRepo.SaveReport(ctx, id, report, time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			log.Info("analysis deleted during processing")
			return nil
		}
		log.Error("failed to save report: %v", err)
		_ = s.analysisRepo.MarkFailed(ctx, id, "failed to persist report", time.Now().UTC())
		return err
	}

	if report.Score != nil {
		log.Info("analysis completed: score=%.1f, incomplete=%t", *report.Score, report.SegmentationIncomplete)
	} else {
		log.Info("analysis completed: no criterion was evaluable")
	}
	return nil
}
