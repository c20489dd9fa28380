package pose

import (
	"fmt"
	"math"
)

// Keypoint is a single detected joint position. Coordinates follow image
// conventions: X grows rightward, Y grows downward. Confidence is the pose
// estimator's detection confidence in [0, 1].
type Keypoint struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Confidence float64 `json:"confidence"`
}

// Reliable reports whether the keypoint meets the confidence threshold.
func (k Keypoint) Reliable(threshold float64) bool {
	return k.Confidence >= threshold
}

// Frame holds the keypoints detected at one instant. Timestamp is seconds
// from the start of the recording; frame rate may vary between frames.
type Frame struct {
	Index     int                `json:"index"`
	Timestamp float64            `json:"timestamp"`
	Keypoints map[Joint]Keypoint `json:"keypoints"`
}

// Keypoint returns the named joint if it was detected in this frame.
func (f Frame) Keypoint(j Joint) (Keypoint, bool) {
	kp, ok := f.Keypoints[j]
	return kp, ok
}

// Reliable returns the named joint only if it was detected with at least
// the given confidence. A missing joint is never substituted.
func (f Frame) Reliable(j Joint, threshold float64) (Keypoint, bool) {
	kp, ok := f.Keypoints[j]
	if !ok || !kp.Reliable(threshold) {
		return Keypoint{}, false
	}
	return kp, true
}

// Midpoint returns the point halfway between two joints. Both joints must be
// reliable; the midpoint carries the lower of the two confidences.
func (f Frame) Midpoint(a, b Joint, threshold float64) (Keypoint, bool) {
	ka, ok := f.Reliable(a, threshold)
	if !ok {
		return Keypoint{}, false
	}
	kb, ok := f.Reliable(b, threshold)
	if !ok {
		return Keypoint{}, false
	}
	return Keypoint{
		X:          (ka.X + kb.X) / 2,
		Y:          (ka.Y + kb.Y) / 2,
		Confidence: math.Min(ka.Confidence, kb.Confidence),
	}, true
}

// Coordinate spaces a sequence may declare.
const (
	CoordSpacePixel      = "pixel"
	CoordSpaceNormalized = "normalized"
)

// Sequence is an ordered run of frames from one recording of one athlete.
// A validated sequence is treated as immutable by everything downstream.
type Sequence struct {
	CoordSpace string  `json:"coord_space"`
	Frames     []Frame `json:"frames"`
}

// FrameCount returns the number of frames.
func (s Sequence) FrameCount() int {
	return len(s.Frames)
}

// Duration returns the elapsed seconds between the first and last frame.
func (s Sequence) Duration() float64 {
	if len(s.Frames) < 2 {
		return 0
	}
	return s.Frames[len(s.Frames)-1].Timestamp - s.Frames[0].Timestamp
}

// Validate checks the structural contract: a non-empty frame list, a declared
// coordinate space, contiguous indices from zero, strictly increasing
// timestamps, vocabulary joints only, confidences in [0, 1], and finite
// coordinates. Missing joints in a frame are allowed; they are simply
// unavailable to metrics. The sequence is not modified.
func (s Sequence) Validate() error {
	if len(s.Frames) == 0 {
		return fmt.Errorf("sequence has no frames")
	}
	if s.CoordSpace != CoordSpacePixel && s.CoordSpace != CoordSpaceNormalized {
		return fmt.Errorf("coord_space must be %q or %q, got %q", CoordSpacePixel, CoordSpaceNormalized, s.CoordSpace)
	}

	for i, frame := range s.Frames {
		if frame.Index != i {
			return fmt.Errorf("frame %d: index %d breaks contiguous numbering from 0", i, frame.Index)
		}
		if i > 0 && frame.Timestamp <= s.Frames[i-1].Timestamp {
			return fmt.Errorf("frame %d: timestamp %g does not increase over previous %g", i, frame.Timestamp, s.Frames[i-1].Timestamp)
		}
		if math.IsNaN(frame.Timestamp) || math.IsInf(frame.Timestamp, 0) {
			return fmt.Errorf("frame %d: non-finite timestamp", i)
		}
		for joint, kp := range frame.Keypoints {
			if !ValidJoint(joint) {
				return fmt.Errorf("frame %d: unknown joint %q", i, joint)
			}
			if kp.Confidence < 0 || kp.Confidence > 1 {
				return fmt.Errorf("frame %d: joint %q confidence %g outside [0, 1]", i, joint, kp.Confidence)
			}
			if math.IsNaN(kp.X) || math.IsInf(kp.X, 0) || math.IsNaN(kp.Y) || math.IsInf(kp.Y, 0) {
				return fmt.Errorf("frame %d: joint %q has non-finite coordinates", i, joint)
			}
		}
	}
	return nil
}
