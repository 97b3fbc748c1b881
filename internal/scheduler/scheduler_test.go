package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/northfold/AuroraBot/internal/worker"
)

func TestSchedulerRunsJobRepeatedly(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	done := make(chan struct{}, 10)
	sched.Schedule(10*time.Millisecond, worker.JobFunc(func(ctx context.Context) error {
		select {
		case done <- struct{}{}:
		default:
		}
		return nil
	}))

	timeout := time.After(time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestSchedulerStopHaltsJobs(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)

	runs := make(chan struct{}, 100)
	sched.Schedule(5*time.Millisecond, worker.JobFunc(func(ctx context.Context) error {
		select {
		case runs <- struct{}{}:
		default:
		}
		return nil
	}))

	select {
	case <-runs:
	case <-time.After(time.Second):
		t.Fatal("job never ran")
	}

	sched.Stop()

	// Drain anything already enqueued, then expect silence.
	time.Sleep(20 * time.Millisecond)
	for len(runs) > 0 {
		<-runs
	}
	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, runs)
}
