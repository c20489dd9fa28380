package metrics

import "gonum.org/v1/gonum/stat"

// Sample is one metric measurement taken at a frame.
type Sample struct {
	Index int     // frame index the measurement belongs to
	T     float64 // timestamp in seconds
	Value float64
}

// Series is a metric measured over a frame window. Frames where the metric
// could not be computed contribute no sample, so a Series may be shorter
// than its window or empty. An empty Series means the metric is not
// evaluable over that window.
type Series []Sample

// Agg names a way to collapse a Series into a single value.
type Agg string

const (
	AggMin   Agg = "min"
	AggMax   Agg = "max"
	AggMean  Agg = "mean"
	AggFirst Agg = "first"
	AggLast  Agg = "last"
)

// ValidAgg reports whether a names a supported aggregation.
func ValidAgg(a Agg) bool {
	switch a {
	case AggMin, AggMax, AggMean, AggFirst, AggLast:
		return true
	}
	return false
}

// Aggregate collapses the series. Returns false when the series is empty:
// an aggregation over no samples has no value.
func (s Series) Aggregate(a Agg) (float64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	switch a {
	case AggMin:
		v := s[0].Value
		for _, sm := range s[1:] {
			if sm.Value < v {
				v = sm.Value
			}
		}
		return v, true
	case AggMax:
		v := s[0].Value
		for _, sm := range s[1:] {
			if sm.Value > v {
				v = sm.Value
			}
		}
		return v, true
	case AggMean:
		vals := make([]float64, len(s))
		for i, sm := range s {
			vals[i] = sm.Value
		}
		return stat.Mean(vals, nil), true
	case AggFirst:
		return s[0].Value, true
	case AggLast:
		return s[len(s)-1].Value, true
	}
	return 0, false
}

// Window returns the samples whose frame index lies in [start, end].
func (s Series) Window(start, end int) Series {
	out := make(Series, 0, len(s))
	for _, sm := range s {
		if sm.Index >= start && sm.Index <= end {
			out = append(out, sm)
		}
	}
	return out
}

// At returns the sample for a frame index, if the metric had a value there.
func (s Series) At(index int) (Sample, bool) {
	for _, sm := range s {
		if sm.Index == index {
			return sm, true
		}
	}
	return Sample{}, false
}
