package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athlyze/athlyze/internal/worker"
)

type funcJob struct {
	name string
	run  func(context.Context) error
}

func (j *funcJob) Name() string                  { return j.name }
func (j *funcJob) Run(ctx context.Context) error { return j.run(ctx) }

func TestPool_RunsSubmittedJobs(t *testing.T) {
	pool := worker.NewPool(2, 4)
	pool.Start(context.Background())

	done := make(chan string, 3)
	for _, name := range []string{"a", "b", "c"} {
		name := name
		ok := pool.TrySubmit(&funcJob{name: name, run: func(context.Context) error {
			done <- name
			return nil
		}})
		require.True(t, ok)
	}

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		select {
		case name := <-done:
			seen[name] = true
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for jobs")
		}
	}
	assert.Len(t, seen, 3)

	pool.Stop()
}

func TestPool_TrySubmitReportsFullQueue(t *testing.T) {
	pool := worker.NewPool(1, 1)
	pool.Start(context.Background())
	defer pool.Stop()

	started := make(chan struct{})
	release := make(chan struct{})
	blocking := &funcJob{name: "blocking", run: func(context.Context) error {
		close(started)
		<-release
		return nil
	}}
	require.True(t, pool.TrySubmit(blocking))
	<-started

	// The single worker is busy; the first submit fills the queue and the
	// second must be rejected.
	require.True(t, pool.TrySubmit(&funcJob{name: "queued", run: func(context.Context) error { return nil }}))
	assert.False(t, pool.TrySubmit(&funcJob{name: "rejected", run: func(context.Context) error { return nil }}))
	assert.Equal(t, 1, pool.QueueDepth())

	close(release)
}

func TestPool_StopWaitsForWorkers(t *testing.T) {
	pool := worker.NewPool(1, 2)
	pool.Start(context.Background())

	started := make(chan struct{})
	ran := make(chan struct{})
	require.True(t, pool.TrySubmit(&funcJob{name: "slow", run: func(context.Context) error {
		close(started)
		time.Sleep(50 * time.Millisecond)
		close(ran)
		return nil
	}}))

	<-started
	pool.Stop()

	select {
	case <-ran:
	default:
		t.Fatal("Stop returned before the in-flight job finished")
	}
}
