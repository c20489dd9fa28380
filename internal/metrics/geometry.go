package metrics

import (
	"math"

	"github.com/athlyze/athlyze/internal/pose"
)

// Angle returns the interior angle at vertex b formed by segments b-a and
// b-c, in degrees within [0, 180]. The result is symmetric under swapping
// a and c. Returns false when either segment has zero length.
func Angle(a, b, c pose.Keypoint) (float64, bool) {
	bax := a.X - b.X
	bay := a.Y - b.Y
	bcx := c.X - b.X
	bcy := c.Y - b.Y

	na := math.Hypot(bax, bay)
	nc := math.Hypot(bcx, bcy)
	if na == 0 || nc == 0 {
		return 0, false
	}

	// Clamp before acos so float error at collinear points cannot produce NaN.
	cos := (bax*bcx + bay*bcy) / (na * nc)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi, true
}

// Distance returns the Euclidean distance between two keypoints.
func Distance(a, b pose.Keypoint) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
