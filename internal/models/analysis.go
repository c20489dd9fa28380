package models

import "time"

const (
	AnalysisStatusPending    = "pending"
	AnalysisStatusProcessing = "processing"
	AnalysisStatusCompleted  = "completed"
	AnalysisStatusFailed     = "failed"
)

type Analysis struct {
	ID                     string     `json:"id"`
	Sport                  string     `json:"sport"`
	Status                 string     `json:"status"`
	CoordSpace             string     `json:"coord_space"`
	FrameCount             int        `json:"frame_count"`
	DurationSeconds        float64    `json:"duration_seconds"`
	ConfidenceThreshold    float64    `json:"confidence_threshold"`
	Score                  *float64   `json:"score"`
	SegmentationIncomplete bool       `json:"segmentation_incomplete"`
	Error                  string     `json:"error,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	CompletedAt            *time.Time `json:"completed_at"`
}

type AnalysisFilter struct {
	Sport  string
	Status string
	Limit  int
	Offset int
}
