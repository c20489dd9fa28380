package metrics

import (
	"fmt"
	"strings"

	"github.com/athlyze/athlyze/internal/pose"
)

// Kind names a metric family. Each kind reads a fixed number of points:
//
//	angle              3   interior angle at the middle point, degrees
//	angular_velocity   3   signed rate of that angle, deg/s (opening positive)
//	horizontal_speed   1   |dx/dt|, body-scale units per second
//	vertical_rise      1   -dy/dt, body-scale units per second (upward positive)
//	speed_trend        1   regression slope of horizontal speed over the window
//	vertical_drop      2   aY - bY in body-scale units (positive = a below b)
//	lean               2   tilt of segment a-b away from vertical, degrees in [0, 90]
//	distance           2   point separation in body-scale units
//	distance_to_point  1   separation from Target in body-scale units
//	ground_clearance   1   height above the ground baseline, body-scale units
//	symmetry           6   |angle(p0,p1,p2) - angle(p3,p4,p5)|, degrees
type Kind string

const (
	KindAngle           Kind = "angle"
	KindAngularVelocity Kind = "angular_velocity"
	KindHorizontalSpeed Kind = "horizontal_speed"
	KindVerticalRise    Kind = "vertical_rise"
	KindSpeedTrend      Kind = "speed_trend"
	KindVerticalDrop    Kind = "vertical_drop"
	KindLean            Kind = "lean"
	KindDistance        Kind = "distance"
	KindDistanceToPoint Kind = "distance_to_point"
	KindGroundClearance Kind = "ground_clearance"
	KindSymmetry        Kind = "symmetry"
)

var kindArity = map[Kind]int{
	KindAngle:           3,
	KindAngularVelocity: 3,
	KindHorizontalSpeed: 1,
	KindVerticalRise:    1,
	KindSpeedTrend:      1,
	KindVerticalDrop:    2,
	KindLean:            2,
	KindDistance:        2,
	KindDistanceToPoint: 1,
	KindGroundClearance: 1,
	KindSymmetry:        6,
}

// Point selects a metric operand: either a single joint or the midpoint of
// two joints. Exactly one of the fields is set.
type Point struct {
	Joint pose.Joint   `json:"joint,omitempty"`
	Mid   []pose.Joint `json:"mid,omitempty"`
}

// P selects a single joint.
func P(j pose.Joint) Point {
	return Point{Joint: j}
}

// Mid selects the midpoint between two joints.
func Mid(a, b pose.Joint) Point {
	return Point{Mid: []pose.Joint{a, b}}
}

// Resolve reads the point from a frame. Returns false when any underlying
// joint is missing or below the confidence threshold.
func (p Point) Resolve(f pose.Frame, confidence float64) (pose.Keypoint, bool) {
	if len(p.Mid) == 2 {
		return f.Midpoint(p.Mid[0], p.Mid[1], confidence)
	}
	return f.Reliable(p.Joint, confidence)
}

func (p Point) validate() error {
	switch {
	case p.Joint != "" && len(p.Mid) > 0:
		return fmt.Errorf("point sets both joint and mid")
	case p.Joint != "":
		if !pose.ValidJoint(p.Joint) {
			return fmt.Errorf("unknown joint %q", p.Joint)
		}
	case len(p.Mid) == 2:
		for _, j := range p.Mid {
			if !pose.ValidJoint(j) {
				return fmt.Errorf("unknown joint %q", j)
			}
		}
	default:
		return fmt.Errorf("point needs a joint or a mid pair")
	}
	return nil
}

func (p Point) String() string {
	if len(p.Mid) == 2 {
		return fmt.Sprintf("mid(%s,%s)", p.Mid[0], p.Mid[1])
	}
	return string(p.Joint)
}

// Spec declares a metric as data: a kind plus its operand points. Target is
// a fixed coordinate pair used only by distance_to_point.
type Spec struct {
	Kind   Kind      `json:"kind"`
	Points []Point   `json:"points"`
	Target []float64 `json:"target,omitempty"`
}

// Validate checks kind, arity and operand joints.
func (s Spec) Validate() error {
	arity, ok := kindArity[s.Kind]
	if !ok {
		return fmt.Errorf("unknown metric kind %q", s.Kind)
	}
	if len(s.Points) != arity {
		return fmt.Errorf("metric %s needs %d points, got %d", s.Kind, arity, len(s.Points))
	}
	for _, p := range s.Points {
		if err := p.validate(); err != nil {
			return fmt.Errorf("metric %s: %w", s.Kind, err)
		}
	}
	if s.Kind == KindDistanceToPoint && len(s.Target) != 2 {
		return fmt.Errorf("metric %s needs a 2-element target", s.Kind)
	}
	return nil
}

func (s Spec) String() string {
	parts := make([]string, len(s.Points))
	for i, p := range s.Points {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s(%s)", s.Kind, strings.Join(parts, ","))
}
