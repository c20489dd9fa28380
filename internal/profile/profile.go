// Package profile declares how each sport is segmented and judged. A profile
// is data: phase guards for the segmenter plus weighted criteria for the
// scorer. Supporting a new sport means registering a new profile; the engine
// itself never changes.
package profile

import (
	"fmt"

	"github.com/athlyze/athlyze/internal/metrics"
	"github.com/athlyze/athlyze/internal/segment"
)

// Op compares an aggregated criterion value against its bounds.
type Op string

const (
	OpGTE   Op = "gte"
	OpLTE   Op = "lte"
	OpRange Op = "range"
)

// Criterion is one scored technique point. The metric is sampled over the
// bound phase, collapsed with Agg, then scored:
//
//	gte:   full credit at Threshold and above, none at NoCredit and below,
//	       linear in between (NoCredit < Threshold)
//	lte:   mirrored (NoCredit > Threshold)
//	range: full credit inside [RangeLo, RangeHi], none once the distance
//	       outside the band reaches Margin, linear in between
//
// Alternates list equivalent metrics for the opposite side of the body;
// the best-scoring evaluable side counts. Weight sets the criterion's share
// of the aggregate score. Feedback is the coaching message emitted whenever
// the criterion earns less than full credit.
type Criterion struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Phase      string         `json:"phase"`
	Metric     metrics.Spec   `json:"metric"`
	Alternates []metrics.Spec `json:"alternates,omitempty"`
	Op         Op             `json:"op"`
	Agg        metrics.Agg    `json:"agg"`
	Threshold  float64        `json:"threshold,omitempty"`
	NoCredit   float64        `json:"no_credit,omitempty"`
	RangeLo    float64        `json:"range_lo,omitempty"`
	RangeHi    float64        `json:"range_hi,omitempty"`
	Margin     float64        `json:"margin,omitempty"`
	Weight     float64        `json:"weight"`
	Feedback   string         `json:"feedback"`
}

func (c Criterion) validate(phases map[string]struct{}) error {
	if c.ID == "" {
		return fmt.Errorf("criterion with empty id")
	}
	if _, ok := phases[c.Phase]; !ok {
		return fmt.Errorf("criterion %s: unknown phase %q", c.ID, c.Phase)
	}
	if err := c.Metric.Validate(); err != nil {
		return fmt.Errorf("criterion %s: %w", c.ID, err)
	}
	for _, alt := range c.Alternates {
		if err := alt.Validate(); err != nil {
			return fmt.Errorf("criterion %s alternate: %w", c.ID, err)
		}
		if alt.Kind != c.Metric.Kind {
			return fmt.Errorf("criterion %s: alternate kind %s differs from %s", c.ID, alt.Kind, c.Metric.Kind)
		}
	}
	if !metrics.ValidAgg(c.Agg) {
		return fmt.Errorf("criterion %s: unknown aggregation %q", c.ID, c.Agg)
	}
	if c.Weight <= 0 {
		return fmt.Errorf("criterion %s: weight must be positive", c.ID)
	}
	switch c.Op {
	case OpGTE:
		if c.NoCredit >= c.Threshold {
			return fmt.Errorf("criterion %s: no_credit %g must lie below threshold %g", c.ID, c.NoCredit, c.Threshold)
		}
	case OpLTE:
		if c.NoCredit <= c.Threshold {
			return fmt.Errorf("criterion %s: no_credit %g must lie above threshold %g", c.ID, c.NoCredit, c.Threshold)
		}
	case OpRange:
		if c.RangeLo >= c.RangeHi {
			return fmt.Errorf("criterion %s: range [%g, %g] is empty", c.ID, c.RangeLo, c.RangeHi)
		}
		if c.Margin <= 0 {
			return fmt.Errorf("criterion %s: range needs a positive margin", c.ID)
		}
	default:
		return fmt.Errorf("criterion %s: unknown op %q", c.ID, c.Op)
	}
	return nil
}

// Profile binds a sport identifier to its phase plan and criteria.
type Profile struct {
	Sport    string              `json:"sport"`
	Name     string              `json:"name"`
	Phases   []segment.PhaseSpec `json:"phases"`
	Criteria []Criterion         `json:"criteria"`
}

// Validate checks internal consistency: a valid phase plan, criteria bound
// to declared phases, unique criterion ids, well-formed scoring bounds.
func (p Profile) Validate() error {
	if p.Sport == "" {
		return fmt.Errorf("profile with empty sport")
	}
	if err := segment.ValidatePlan(p.Phases); err != nil {
		return fmt.Errorf("profile %s: %w", p.Sport, err)
	}
	if len(p.Criteria) == 0 {
		return fmt.Errorf("profile %s: no criteria", p.Sport)
	}

	phases := make(map[string]struct{}, len(p.Phases))
	for _, ph := range p.Phases {
		phases[ph.Name] = struct{}{}
	}

	ids := make(map[string]struct{}, len(p.Criteria))
	for _, c := range p.Criteria {
		if _, dup := ids[c.ID]; dup {
			return fmt.Errorf("profile %s: duplicate criterion %s", p.Sport, c.ID)
		}
		ids[c.ID] = struct{}{}
		if err := c.validate(phases); err != nil {
			return fmt.Errorf("profile %s: %w", p.Sport, err)
		}
	}
	return nil
}

// Criterion returns the criterion with the given id.
func (p Profile) Criterion(id string) (Criterion, bool) {
	for _, c := range p.Criteria {
		if c.ID == id {
			return c, true
		}
	}
	return Criterion{}, false
}
