package metrics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/athlyze/athlyze/internal/pose"
)

// Quantile of pooled ankle heights that stands in for the ground line. Ankles
// spend most of a trial at stance height, so a high quantile of Y (image Y
// grows downward) lands on the ground and ignores swing-phase outliers.
const groundQuantile = 0.9

// Context carries the per-sequence values metric evaluation depends on:
// the confidence threshold, the body-scale unit and the ground baseline.
// Build one per analysis and reuse it for every metric.
type Context struct {
	Seq        pose.Sequence
	Confidence float64

	scale    float64
	scaleOK  bool
	groundY  float64
	groundOK bool
}

// NewContext derives scale and baseline eagerly so later evaluations are
// cheap and deterministic.
func NewContext(seq pose.Sequence, confidence float64) *Context {
	c := &Context{Seq: seq, Confidence: confidence}
	c.scale, c.scaleOK = bodyScale(seq, confidence)
	c.groundY, c.groundOK = groundBaseline(seq, confidence)
	return c
}

// BodyScale returns the sequence's length unit: the median hip separation.
// Distance and speed metrics are expressed in this unit so profile
// thresholds hold across camera distances and coordinate spaces. False when
// the hips were never jointly reliable.
func (c *Context) BodyScale() (float64, bool) {
	return c.scale, c.scaleOK
}

// GroundBaseline returns the estimated ground line in raw Y coordinates.
// False when no ankle was ever reliable.
func (c *Context) GroundBaseline() (float64, bool) {
	return c.groundY, c.groundOK
}

func bodyScale(seq pose.Sequence, confidence float64) (float64, bool) {
	var seps []float64
	for _, f := range seq.Frames {
		l, ok := f.Reliable(pose.LeftHip, confidence)
		if !ok {
			continue
		}
		r, ok := f.Reliable(pose.RightHip, confidence)
		if !ok {
			continue
		}
		seps = append(seps, Distance(l, r))
	}
	if len(seps) == 0 {
		return 0, false
	}
	sort.Float64s(seps)
	median := stat.Quantile(0.5, stat.Empirical, seps, nil)
	if median <= 0 {
		return 0, false
	}
	return median, true
}

func groundBaseline(seq pose.Sequence, confidence float64) (float64, bool) {
	var ys []float64
	for _, f := range seq.Frames {
		if kp, ok := f.Reliable(pose.LeftAnkle, confidence); ok {
			ys = append(ys, kp.Y)
		}
		if kp, ok := f.Reliable(pose.RightAnkle, confidence); ok {
			ys = append(ys, kp.Y)
		}
	}
	if len(ys) == 0 {
		return 0, false
	}
	sort.Float64s(ys)
	return stat.Quantile(groundQuantile, stat.Empirical, ys, nil), true
}
