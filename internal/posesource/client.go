package posesource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/athlyze/athlyze/internal/logger"
	"github.com/athlyze/athlyze/internal/pose"
)

// maxSequenceBytes caps the response body; a minute of 17-joint frames at
// 60fps stays far below this.
const maxSequenceBytes = 32 << 20

type Client struct {
	httpClient *http.Client
	log        *logger.Logger
}

func New(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.Default().WithPrefix("posesource"),
	}
}

// Fetch downloads and decodes a sequence document from rawURL. The decoded
// sequence has already passed structural validation.
func (c *Client) Fetch(ctx context.Context, rawURL string) (pose.Sequence, error) {
	log := logger.FromContext(ctx).WithPrefix("posesource").WithField("url", rawURL)

	u, err := url.Parse(rawURL)
	if err != nil {
		return pose.Sequence{}, fmt.Errorf("invalid sequence url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return pose.Sequence{}, fmt.Errorf("unsupported sequence url scheme %q", u.Scheme)
	}

	log.Debug("fetching sequence")
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		log.Error("failed to create request: %v", err)
		return pose.Sequence{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("failed to fetch sequence: %v", err)
		return pose.Sequence{}, err
	}
	defer resp.Body.Close()

	log.Debug("sequence response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("sequence request failed: status=%d, body=%s", resp.StatusCode, string(body))
		return pose.Sequence{}, fmt.Errorf("sequence status %d: %s", resp.StatusCode, string(body))
	}

	seq, err := pose.Decode(io.LimitReader(resp.Body, maxSequenceBytes))
	if err != nil {
		log.Error("failed to decode sequence: %v", err)
		return pose.Sequence{}, err
	}

	log.Info("fetched sequence: frames=%d, duration=%.2fs", seq.FrameCount(), seq.Duration())
	return seq, nil
}
