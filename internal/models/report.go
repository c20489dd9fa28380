package models

// PhaseResult is one committed segment of the sequence, frame-inclusive on
// both ends.
type PhaseResult struct {
	Name       string `json:"name"`
	StartFrame int    `json:"start_frame"`
	EndFrame   int    `json:"end_frame"`
}

// CriterionResult is the outcome of one scored technique point. Value and
// SubScore are nil when the criterion could not be evaluated (phase never
// committed, or too few reliable keypoints).
type CriterionResult struct {
	CriterionID string   `json:"criterion_id"`
	Name        string   `json:"name"`
	Phase       string   `json:"phase"`
	Evaluable   bool     `json:"evaluable"`
	Passed      bool     `json:"passed"`
	Value       *float64 `json:"value"`
	SubScore    *float64 `json:"sub_score"`
	Weight      float64  `json:"weight"`
	Feedback    string   `json:"feedback,omitempty"`
}

// Report is the scoring output for one sequence. Score is nil when no
// criterion was evaluable. Feedback lists the coaching lines of failed
// criteria, worst sub-score first.
type Report struct {
	Score                  *float64          `json:"score"`
	SegmentationIncomplete bool              `json:"segmentation_incomplete"`
	Phases                 []PhaseResult     `json:"phases"`
	Criteria               []CriterionResult `json:"criteria"`
	Feedback               []string          `json:"feedback"`
}

// AnalysisReport is an analysis record joined with its stored report, as
// served by the read endpoints. The report fields are empty until the
// analysis completes.
type AnalysisReport struct {
	Analysis
	Phases   []PhaseResult     `json:"phases,omitempty"`
	Criteria []CriterionResult `json:"criteria,omitempty"`
	Feedback []string          `json:"feedback,omitempty"`
}
