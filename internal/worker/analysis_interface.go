package worker

import (
	"context"

	"github.com/athlyze/athlyze/internal/pose"
)

// AnalysisRunner defines the interface for sequence analysis.
// This avoids import cycles by not importing the services package.
type AnalysisRunner interface {
	RunAnalysis(ctx context.Context, analysisID string, seq pose.Sequence) error
}
