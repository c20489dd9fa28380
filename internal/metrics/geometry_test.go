package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athlyze/athlyze/internal/metrics"
	"github.com/athlyze/athlyze/internal/pose"
)

func kp(x, y float64) pose.Keypoint {
	return pose.Keypoint{X: x, Y: y, Confidence: 1}
}

func TestAngle_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  pose.Keypoint
		expected float64
	}{
		{
			name:     "right angle",
			a:        kp(0, 1),
			b:        kp(0, 0),
			c:        kp(1, 0),
			expected: 90,
		},
		{
			name:     "straight line",
			a:        kp(-1, 0),
			b:        kp(0, 0),
			c:        kp(5, 0),
			expected: 180,
		},
		{
			name:     "collapsed segments",
			a:        kp(3, 3),
			b:        kp(0, 0),
			c:        kp(6, 6),
			expected: 0,
		},
		{
			name:     "forty five degrees",
			a:        kp(1, 0),
			b:        kp(0, 0),
			c:        kp(1, 1),
			expected: 45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := metrics.Angle(tt.a, tt.b, tt.c)
			require.True(t, ok)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestAngle_SymmetricInEndpoints(t *testing.T) {
	triples := [][3]pose.Keypoint{
		{kp(0, 1), kp(0, 0), kp(1, 0)},
		{kp(-3, 2), kp(1, 1), kp(4, -2)},
		{kp(10, 250), kp(12, 300), kp(40, 310)},
	}

	for _, tr := range triples {
		fwd, ok1 := metrics.Angle(tr[0], tr[1], tr[2])
		rev, ok2 := metrics.Angle(tr[2], tr[1], tr[0])
		require.True(t, ok1)
		require.True(t, ok2)
		assert.InDelta(t, fwd, rev, 1e-9, "angle must not depend on endpoint order")
	}
}

func TestAngle_DegenerateVertex(t *testing.T) {
	_, ok := metrics.Angle(kp(0, 0), kp(0, 0), kp(1, 1))
	assert.False(t, ok, "a zero-length segment has no angle")

	_, ok = metrics.Angle(kp(1, 1), kp(0, 0), kp(0, 0))
	assert.False(t, ok)
}

func TestAngle_NearCollinearStaysFinite(t *testing.T) {
	// Float error can push the cosine a hair past 1; the clamp keeps acos defined.
	got, ok := metrics.Angle(kp(1e8, 1e-7), kp(0, 0), kp(2e8, 2e-7))
	require.True(t, ok)
	assert.False(t, got != got, "angle must never be NaN")
	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 180.0)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, metrics.Distance(kp(0, 0), kp(3, 4)))
	assert.Equal(t, 0.0, metrics.Distance(kp(2, 2), kp(2, 2)))
}
