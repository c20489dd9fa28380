package posesource

import (
	"context"

	"github.com/athlyze/athlyze/internal/pose"
)

// Source fetches keypoint sequences from an external pose estimator.
// This interface enables testability by allowing mock implementations.
type Source interface {
	Fetch(ctx context.Context, url string) (pose.Sequence, error)
}

// Ensure Client implements the interface
var _ Source = (*Client)(nil)
