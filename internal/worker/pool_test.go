package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/VineyardSim_Go/internal/metrics"
	"github.com/osse101/VineyardSim_Go/internal/testing/leaktest"
)

type countingJob struct {
	executed *int32
}

func (j *countingJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool_RunsJobs(t *testing.T) {
	var executed int32
	pool := NewPool(2, 10, time.Second)
	pool.Start()

	job := &countingJob{executed: &executed}
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(job))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 2
	}, time.Second, 5*time.Millisecond)

	pool.Stop()
}

func TestPool_SurvivesFailingAndPanickingJobs(t *testing.T) {
	var executed int32
	panics := metrics.WorkerJobs.WithLabelValues(metrics.ResultPanic)
	failures := metrics.WorkerJobs.WithLabelValues(metrics.ResultError)
	panicsBefore, failuresBefore := testutil.ToFloat64(panics), testutil.ToFloat64(failures)

	pool := NewPool(1, 10, 0)
	pool.Start()
	defer pool.Stop()

	pool.Enqueue(JobFunc(func(context.Context) error { return errors.New("boom") }))
	pool.Enqueue(JobFunc(func(context.Context) error { panic("bad job") }))
	pool.Enqueue(&countingJob{executed: &executed})

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, panicsBefore+1, testutil.ToFloat64(panics))
	assert.Equal(t, failuresBefore+1, testutil.ToFloat64(failures))
}

func TestPool_JobTimeout(t *testing.T) {
	pool := NewPool(1, 1, 20*time.Millisecond)
	pool.Start()
	defer pool.Stop()

	done := make(chan error, 1)
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		<-ctx.Done()
		done <- ctx.Err()
		return ctx.Err()
	}))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("job context was never cancelled")
	}
}

func TestPool_TryEnqueueFull(t *testing.T) {
	// not started: nothing drains the queue
	pool := NewPool(1, 1, 0)

	assert.True(t, pool.TryEnqueue(JobFunc(func(context.Context) error { return nil })))
	assert.False(t, pool.TryEnqueue(JobFunc(func(context.Context) error { return nil })))

	pool.Stop()
	assert.False(t, pool.Enqueue(JobFunc(func(context.Context) error { return nil })))
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	leaktest.Run(t, func() {
		var executed int32
		pool := NewPool(4, 10, time.Second)
		pool.Start()
		pool.Enqueue(&countingJob{executed: &executed})
		pool.Stop()
	})
}
