// Package engine turns a pose sequence and a sport profile into a scored
// report: segment the sequence into phases, evaluate each criterion over
// its phase window, interpolate sub-scores, and aggregate the weighted
// total over whatever was actually measurable.
package engine

import (
	"github.com/athlyze/athlyze/internal/metrics"
	"github.com/athlyze/athlyze/internal/models"
	"github.com/athlyze/athlyze/internal/pose"
	"github.com/athlyze/athlyze/internal/profile"
	"github.com/athlyze/athlyze/internal/segment"
)

// Options tune a single evaluation run.
type Options struct {
	// Confidence is the keypoint reliability threshold; keypoints below it
	// are treated as missing.
	Confidence float64
}

// Evaluate scores one sequence against one profile. The sequence must have
// passed pose.Sequence.Validate.
//
// Criteria whose phase never committed, or whose keypoints were never
// reliable enough to yield a sample, are reported as not evaluable and
// excluded from the aggregate; their weight is not forfeited but
// redistributed by renormalizing over the evaluable set. When nothing was
// evaluable the score is nil rather than zero.
func Evaluate(p profile.Profile, seq pose.Sequence, opts Options) models.Report {
	mctx := metrics.NewContext(seq, opts.Confidence)
	seg := segment.Segment(mctx, p.Phases)

	report := models.Report{
		SegmentationIncomplete: seg.Incomplete,
		Phases:                 make([]models.PhaseResult, 0, len(seg.Phases)),
		Criteria:               make([]models.CriterionResult, 0, len(p.Criteria)),
	}
	for _, ph := range seg.Phases {
		report.Phases = append(report.Phases, models.PhaseResult{
			Name:       ph.Name,
			StartFrame: ph.StartFrame,
			EndFrame:   ph.EndFrame,
		})
	}

	var weightSum, weightedScore float64
	for _, c := range p.Criteria {
		res := evaluateCriterion(mctx, seg, c)
		report.Criteria = append(report.Criteria, res)
		if res.Evaluable {
			weightSum += c.Weight
			weightedScore += c.Weight * *res.SubScore
		}
	}

	if weightSum > 0 {
		score := 100 * weightedScore / weightSum
		report.Score = &score
	}

	report.Feedback = models.FeedbackLines(report.Criteria)
	return report
}

func evaluateCriterion(mctx *metrics.Context, seg segment.Result, c profile.Criterion) models.CriterionResult {
	res := models.CriterionResult{
		CriterionID: c.ID,
		Name:        c.Name,
		Phase:       c.Phase,
		Weight:      c.Weight,
	}

	ph, ok := seg.Phase(c.Phase)
	if !ok {
		return res
	}

	// The primary metric and its alternates compete; the athlete gets the
	// best side. A side that produced no samples simply does not compete.
	best := 0.0
	bestValue := 0.0
	found := false
	for _, spec := range append([]metrics.Spec{c.Metric}, c.Alternates...) {
		series := mctx.Evaluate(spec, ph.StartFrame, ph.EndFrame)
		v, ok := series.Aggregate(c.Agg)
		if !ok {
			continue
		}
		s := subScore(c, v)
		if !found || s > best {
			best = s
			bestValue = v
		}
		found = true
	}
	if !found {
		return res
	}

	res.Evaluable = true
	res.Value = &bestValue
	res.SubScore = &best
	res.Passed = best >= 1
	if best < 1 {
		res.Feedback = c.Feedback
	}
	return res
}

// subScore maps an aggregated metric value into [0, 1] per the criterion's
// op: full credit past the threshold, none past the no-credit bound, and a
// linear ramp between. Range ops give full credit inside the band and ramp
// down to zero over the margin outside it.
func subScore(c profile.Criterion, v float64) float64 {
	switch c.Op {
	case profile.OpGTE:
		return ramp(v, c.NoCredit, c.Threshold)
	case profile.OpLTE:
		return ramp(-v, -c.NoCredit, -c.Threshold)
	case profile.OpRange:
		var outside float64
		switch {
		case v < c.RangeLo:
			outside = c.RangeLo - v
		case v > c.RangeHi:
			outside = v - c.RangeHi
		default:
			return 1
		}
		s := 1 - outside/c.Margin
		if s < 0 {
			return 0
		}
		return s
	}
	return 0
}

func ramp(v, none, full float64) float64 {
	if v >= full {
		return 1
	}
	if v <= none {
		return 0
	}
	return (v - none) / (full - none)
}
