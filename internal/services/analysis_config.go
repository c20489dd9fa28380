package services

// AnalysisConfig holds configuration for sequence analysis
type AnalysisConfig struct {
	DefaultConfidence float64 // keypoint reliability threshold when the request sets none
	MaxFrames         int     // longest accepted sequence
}
