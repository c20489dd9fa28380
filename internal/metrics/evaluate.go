package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/athlyze/athlyze/internal/pose"
)

// Evaluate computes a metric over the frame window [start, end], inclusive.
// Frames where an operand is missing or unreliable yield no sample; a metric
// whose prerequisites (body scale, ground baseline) are unavailable yields an
// empty series. Unreliable data never becomes a number.
func (c *Context) Evaluate(spec Spec, start, end int) Series {
	n := len(c.Seq.Frames)
	if n == 0 {
		return nil
	}
	if start < 0 {
		start = 0
	}
	if end >= n {
		end = n - 1
	}
	if start > end {
		return nil
	}

	switch spec.Kind {
	case KindAngle:
		return c.angleSeries(spec, start, end)
	case KindAngularVelocity:
		return rateOf(c.angleSeries(spec, start, end), 1)
	case KindHorizontalSpeed:
		return c.horizontalSpeed(spec, start, end)
	case KindVerticalRise:
		return c.verticalRise(spec, start, end)
	case KindSpeedTrend:
		return c.speedTrend(spec, start, end)
	case KindVerticalDrop:
		return c.verticalDrop(spec, start, end)
	case KindLean:
		return c.lean(spec, start, end)
	case KindDistance:
		return c.distance(spec, start, end)
	case KindDistanceToPoint:
		return c.distanceToPoint(spec, start, end)
	case KindGroundClearance:
		return c.groundClearance(spec, start, end)
	case KindSymmetry:
		return c.symmetry(spec, start, end)
	}
	return nil
}

// EvaluateAll computes a metric over the whole sequence.
func (c *Context) EvaluateAll(spec Spec) Series {
	return c.Evaluate(spec, 0, len(c.Seq.Frames)-1)
}

func (c *Context) angleSeries(spec Spec, start, end int) Series {
	var out Series
	for i := start; i <= end; i++ {
		f := c.Seq.Frames[i]
		a, ok := spec.Points[0].Resolve(f, c.Confidence)
		if !ok {
			continue
		}
		b, ok := spec.Points[1].Resolve(f, c.Confidence)
		if !ok {
			continue
		}
		cc, ok := spec.Points[2].Resolve(f, c.Confidence)
		if !ok {
			continue
		}
		deg, ok := Angle(a, b, cc)
		if !ok {
			continue
		}
		out = append(out, Sample{Index: i, T: f.Timestamp, Value: deg})
	}
	return out
}

// xPositions resolves the horizontal position of a point per frame.
func (c *Context) xPositions(p Point, start, end int) Series {
	var xs Series
	for i := start; i <= end; i++ {
		f := c.Seq.Frames[i]
		kp, ok := p.Resolve(f, c.Confidence)
		if !ok {
			continue
		}
		xs = append(xs, Sample{Index: i, T: f.Timestamp, Value: kp.X})
	}
	return xs
}

func (c *Context) horizontalSpeed(spec Spec, start, end int) Series {
	if !c.scaleOK {
		return nil
	}
	xs := c.xPositions(spec.Points[0], start, end)
	rates := rateOf(xs, 1.0/c.scale)
	for i := range rates {
		if rates[i].Value < 0 {
			rates[i].Value = -rates[i].Value
		}
	}
	return rates
}

func (c *Context) verticalRise(spec Spec, start, end int) Series {
	if !c.scaleOK {
		return nil
	}
	var ys Series
	for i := start; i <= end; i++ {
		f := c.Seq.Frames[i]
		kp, ok := spec.Points[0].Resolve(f, c.Confidence)
		if !ok {
			continue
		}
		ys = append(ys, Sample{Index: i, T: f.Timestamp, Value: kp.Y})
	}
	rates := rateOf(ys, 1.0/c.scale)
	// Image Y grows downward; rising means negative dy/dt.
	for i := range rates {
		rates[i].Value = -rates[i].Value
	}
	return rates
}

func (c *Context) speedTrend(spec Spec, start, end int) Series {
	speeds := c.horizontalSpeed(spec, start, end)
	if len(speeds) < 3 {
		return nil
	}
	ts := make([]float64, len(speeds))
	vs := make([]float64, len(speeds))
	for i, s := range speeds {
		ts[i] = s.T
		vs[i] = s.Value
	}
	_, slope := stat.LinearRegression(ts, vs, nil, false)
	last := speeds[len(speeds)-1]
	return Series{{Index: last.Index, T: last.T, Value: slope}}
}

func (c *Context) verticalDrop(spec Spec, start, end int) Series {
	if !c.scaleOK {
		return nil
	}
	var out Series
	for i := start; i <= end; i++ {
		f := c.Seq.Frames[i]
		a, ok := spec.Points[0].Resolve(f, c.Confidence)
		if !ok {
			continue
		}
		b, ok := spec.Points[1].Resolve(f, c.Confidence)
		if !ok {
			continue
		}
		out = append(out, Sample{Index: i, T: f.Timestamp, Value: (a.Y - b.Y) / c.scale})
	}
	return out
}

// lean measures how far the a-b segment tilts away from vertical, in
// degrees. A stacked segment reads 0, a horizontal one 90. Orientation of
// the tilt is not distinguished; 2D projections cannot tell fore from aft.
func (c *Context) lean(spec Spec, start, end int) Series {
	var out Series
	for i := start; i <= end; i++ {
		f := c.Seq.Frames[i]
		a, ok := spec.Points[0].Resolve(f, c.Confidence)
		if !ok {
			continue
		}
		b, ok := spec.Points[1].Resolve(f, c.Confidence)
		if !ok {
			continue
		}
		dx := b.X - a.X
		dy := b.Y - a.Y
		if dx == 0 && dy == 0 {
			continue
		}
		deg := math.Atan2(math.Abs(dx), math.Abs(dy)) * 180 / math.Pi
		out = append(out, Sample{Index: i, T: f.Timestamp, Value: deg})
	}
	return out
}

func (c *Context) distance(spec Spec, start, end int) Series {
	if !c.scaleOK {
		return nil
	}
	var out Series
	for i := start; i <= end; i++ {
		f := c.Seq.Frames[i]
		a, ok := spec.Points[0].Resolve(f, c.Confidence)
		if !ok {
			continue
		}
		b, ok := spec.Points[1].Resolve(f, c.Confidence)
		if !ok {
			continue
		}
		out = append(out, Sample{Index: i, T: f.Timestamp, Value: Distance(a, b) / c.scale})
	}
	return out
}

func (c *Context) distanceToPoint(spec Spec, start, end int) Series {
	if !c.scaleOK || len(spec.Target) != 2 {
		return nil
	}
	target := pose.Keypoint{X: spec.Target[0], Y: spec.Target[1]}
	var out Series
	for i := start; i <= end; i++ {
		f := c.Seq.Frames[i]
		a, ok := spec.Points[0].Resolve(f, c.Confidence)
		if !ok {
			continue
		}
		out = append(out, Sample{Index: i, T: f.Timestamp, Value: Distance(a, target) / c.scale})
	}
	return out
}

func (c *Context) groundClearance(spec Spec, start, end int) Series {
	if !c.scaleOK || !c.groundOK {
		return nil
	}
	var out Series
	for i := start; i <= end; i++ {
		f := c.Seq.Frames[i]
		kp, ok := spec.Points[0].Resolve(f, c.Confidence)
		if !ok {
			continue
		}
		out = append(out, Sample{Index: i, T: f.Timestamp, Value: (c.groundY - kp.Y) / c.scale})
	}
	return out
}

func (c *Context) symmetry(spec Spec, start, end int) Series {
	left := Spec{Kind: KindAngle, Points: spec.Points[0:3]}
	right := Spec{Kind: KindAngle, Points: spec.Points[3:6]}
	ls := c.angleSeries(left, start, end)
	rs := c.angleSeries(right, start, end)

	rByIndex := make(map[int]float64, len(rs))
	for _, s := range rs {
		rByIndex[s.Index] = s.Value
	}
	var out Series
	for _, s := range ls {
		rv, ok := rByIndex[s.Index]
		if !ok {
			continue
		}
		d := s.Value - rv
		if d < 0 {
			d = -d
		}
		out = append(out, Sample{Index: s.Index, T: s.T, Value: d})
	}
	return out
}

// rateOf differentiates a sample series against its timestamps. Consecutive
// samples may span dropped frames; the rate is then the average over the
// gap. The scale factor converts raw units per second into body-scale units
// per second.
func rateOf(samples Series, scale float64) Series {
	if len(samples) < 2 {
		return nil
	}
	out := make(Series, 0, len(samples)-1)
	for i := 1; i < len(samples); i++ {
		dt := samples[i].T - samples[i-1].T
		if dt <= 0 {
			continue
		}
		rate := (samples[i].Value - samples[i-1].Value) / dt * scale
		out = append(out, Sample{Index: samples[i].Index, T: samples[i].T, Value: rate})
	}
	return out
}
