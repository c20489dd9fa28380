package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/athlyze/athlyze/internal/logger"
	"github.com/athlyze/athlyze/internal/models"
	"github.com/athlyze/athlyze/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type analysisRepository struct {
	db *sql.DB
}

// NewAnalysisRepository creates an AnalysisRepository backed by SQLite.
func NewAnalysisRepository(db *sql.DB) repository.AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Insert(ctx context.Context, a models.Analysis) error {
	log := logger.FromContext(ctx).WithPrefix("analysis_repo")
	log.Debug("inserting analysis: id=%s, sport=%s", a.ID, a.Sport)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO analyses (
    id, sport, status, coord_space, frame_count, duration_seconds,
    confidence_threshold, score, segmentation_incomplete, error, created_at, completed_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, a.ID, a.Sport, a.Status, a.CoordSpace, a.FrameCount, a.DurationSeconds,
		a.ConfidenceThreshold, a.Score, a.SegmentationIncomplete, a.Error, a.CreatedAt, a.CompletedAt)
	if err != nil {
		log.Error("failed to insert analysis: %v", err)
	}
	return err
}

func (r *analysisRepository) Get(ctx context.Context, id string) (*models.Analysis, error) {
	log := logger.FromContext(ctx).WithPrefix("analysis_repo")
	log.Debug("getting analysis: id=%s", id)

	var a models.Analysis
	err := r.db.QueryRowContext(ctx, `
SELECT id, sport, status, coord_space, frame_count, duration_seconds, confidence_threshold,
       score, segmentation_incomplete, error, created_at, completed_at
FROM analyses
WHERE id = ?
`, id).Scan(&a.ID, &a.Sport, &a.Status, &a.CoordSpace, &a.FrameCount, &a.DurationSeconds,
		&a.ConfidenceThreshold, &a.Score, &a.SegmentationIncomplete, &a.Error, &a.CreatedAt, &a.CompletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("analysis not found: id=%s", id)
		} else {
			log.Error("failed to get analysis: %v", err)
		}
		return nil, err
	}
	return &a, nil
}

func (r *analysisRepository) GetReport(ctx context.Context, id string) (*models.AnalysisReport, error) {
	log := logger.FromContext(ctx).WithPrefix("analysis_repo")

	a, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	report := models.AnalysisReport{Analysis: *a}

	rows, err := r.db.QueryContext(ctx, `
SELECT name, start_frame, end_frame
FROM analysis_phases
WHERE analysis_id = ?
ORDER BY seq
`, id)
	if err != nil {
		log.Error("failed to load phases: %v", err)
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var p models.PhaseResult
		if err := rows.Scan(&p.Name, &p.StartFrame, &p.EndFrame); err != nil {
			log.Error("failed to scan phase row: %v", err)
			return nil, err
		}
		report.Phases = append(report.Phases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	crows, err := r.db.QueryContext(ctx, `
SELECT criterion_id, name, phase, evaluable, passed, value, sub_score, weight, feedback
FROM criterion_results
WHERE analysis_id = ?
ORDER BY seq
`, id)
	if err != nil {
		log.Error("failed to load criterion results: %v", err)
		return nil, err
	}
	defer crows.Close()
	for crows.Next() {
		var c models.CriterionResult
		if err := crows.Scan(&c.CriterionID, &c.Name, &c.Phase, &c.Evaluable, &c.Passed,
			&c.Value, &c.SubScore, &c.Weight, &c.Feedback); err != nil {
			log.Error("failed to scan criterion row: %v", err)
			return nil, err
		}
		report.Criteria = append(report.Criteria, c)
	}
	if err := crows.Err(); err != nil {
		return nil, err
	}

	report.Feedback = models.FeedbackLines(report.Criteria)
	return &report, nil
}

func (r *analysisRepository) List(ctx context.Context, filter models.AnalysisFilter) ([]models.Analysis, error) {
	log := logger.FromContext(ctx).WithPrefix("analysis_repo")
	log.Debug("listing analyses: sport=%s, status=%s, limit=%d, offset=%d",
		filter.Sport, filter.Status, filter.Limit, filter.Offset)

	query := sqlBuilder.Select(
		"id", "sport", "status", "coord_space", "frame_count", "duration_seconds",
		"confidence_threshold", "score", "segmentation_incomplete", "error", "created_at", "completed_at",
	).From("analyses")

	if filter.Sport != "" {
		query = query.Where(squirrel.Eq{"sport": filter.Sport})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	query = query.OrderBy("created_at DESC", "id")

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query = query.Limit(uint64(limit)).Offset(uint64(offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list analyses: %v", err)
		return nil, err
	}
	defer rows.Close()

	var analyses []models.Analysis
	for rows.Next() {
		var a models.Analysis
		if err := rows.Scan(&a.ID, &a.Sport, &a.Status, &a.CoordSpace, &a.FrameCount, &a.DurationSeconds,
			&a.ConfidenceThreshold, &a.Score, &a.SegmentationIncomplete, &a.Error, &a.CreatedAt, &a.CompletedAt); err != nil {
			log.Error("failed to scan analysis row: %v", err)
			return nil, err
		}
		analyses = append(analyses, a)
	}
	log.Debug("found %d analyses", len(analyses))
	return analyses, rows.Err()
}

func (r *analysisRepository) Count(ctx context.Context, filter models.AnalysisFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("analysis_repo")

	query := sqlBuilder.Select("COUNT(*)").From("analyses")
	if filter.Sport != "" {
		query = query.Where(squirrel.Eq{"sport": filter.Sport})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		log.Error("failed to count analyses: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *analysisRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	log := logger.FromContext(ctx).WithPrefix("analysis_repo")
	log.Debug("updating analysis status: id=%s, status=%s", id, status)

	res, err := r.db.ExecContext(ctx, `UPDATE analyses SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		log.Error("failed to update status: %v", err)
		return err
	}
	return requireRow(res)
}

func (r *analysisRepository) SaveReport(ctx context.Context, id string, report models.Report, completedAt time.Time) error {
	log := logger.FromContext(ctx).WithPrefix("analysis_repo")
	log.Debug("saving report: id=%s, phases=%d, criteria=%d", id, len(report.Phases), len(report.Criteria))

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
UPDATE analyses
SET status = ?, score = ?, segmentation_incomplete = ?, error = '', completed_at = ?
WHERE id = ?
`, models.AnalysisStatusCompleted, report.Score, report.SegmentationIncomplete, completedAt, id)
		if err != nil {
			return err
		}
		if err := requireRow(res); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM analysis_phases WHERE analysis_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM criterion_results WHERE analysis_id = ?`, id); err != nil {
			return err
		}

		for i, p := range report.Phases {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO analysis_phases (analysis_id, seq, name, start_frame, end_frame)
VALUES (?, ?, ?, ?, ?)
`, id, i, p.Name, p.StartFrame, p.EndFrame); err != nil {
				return err
			}
		}
		for i, c := range report.Criteria {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO criterion_results (
    analysis_id, seq, criterion_id, name, phase, evaluable, passed, value, sub_score, weight, feedback
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, id, i, c.CriterionID, c.Name, c.Phase, c.Evaluable, c.Passed, c.Value, c.SubScore, c.Weight, c.Feedback); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *analysisRepository) MarkFailed(ctx context.Context, id string, reason string, completedAt time.Time) error {
	log := logger.FromContext(ctx).WithPrefix("analysis_repo")
	log.Debug("marking analysis failed: id=%s, reason=%s", id, reason)

	res, err := r.db.ExecContext(ctx, `
UPDATE analyses SET status = ?, error = ?, completed_at = ? WHERE id = ?
`, models.AnalysisStatusFailed, reason, completedAt, id)
	if err != nil {
		log.Error("failed to mark analysis failed: %v", err)
		return err
	}
	return requireRow(res)
}

func (r *analysisRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).WithPrefix("analysis_repo")
	log.Debug("deleting analysis: id=%s", id)

	res, err := r.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete analysis: %v", err)
		return err
	}
	return requireRow(res)
}

// requireRow maps zero affected rows to sql.ErrNoRows so writes against a
// missing id report the same way reads do.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
