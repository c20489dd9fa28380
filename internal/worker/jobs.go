package worker

import (
	"context"

	"github.com/athlyze/athlyze/internal/pose"
)

// AnalyzeJob scores one submitted sequence in the background. The sequence
// rides along in memory; only the resulting report is persisted.
type AnalyzeJob struct {
	Runner     AnalysisRunner
	AnalysisID string
	Sequence   pose.Sequence
}

func (j *AnalyzeJob) Name() string { return "analyze_sequence" }

func (j *AnalyzeJob) Run(ctx context.Context) error {
	return j.Runner.RunAnalysis(ctx, j.AnalysisID, j.Sequence)
}
