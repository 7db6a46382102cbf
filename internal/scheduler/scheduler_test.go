package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VineyardSim_Go/internal/worker"
	"github.com/osse101/VineyardSim_Go/internal/testing/leaktest"
)

// MockJob is a simple job for testing
type MockJob struct {
	runs  atomic.Int32
	Done  chan struct{}
	Delay time.Duration
}

func (m *MockJob) Process(ctx context.Context) error {
	m.runs.Add(1)
	if m.Delay > 0 {
		time.Sleep(m.Delay)
	}
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func newPool(t *testing.T) *worker.Pool {
	t.Helper()
	pool := worker.NewPool(2, 10, time.Second)
	pool.Start()
	t.Cleanup(pool.Stop)
	return pool
}

func waitRuns(t *testing.T, job *MockJob, n int) {
	t.Helper()
	timeout := time.After(time.Second)
	for i := 0; i < n; i++ {
		select {
		case <-job.Done:
		case <-timeout:
			t.Fatalf("Timeout waiting for run %d", i+1)
		}
	}
}

func TestScheduler_Schedule(t *testing.T) {
	sched := New(newPool(t))
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	waitRuns(t, job, 2)
	assert.GreaterOrEqual(t, job.runs.Load(), int32(2))
	assert.Zero(t, sched.Active(), "periodic jobs are not keyed")
}

func TestScheduler_RejectsEmptyKey(t *testing.T) {
	sched := New(newPool(t))
	defer sched.Stop()

	assert.False(t, sched.Start("", time.Millisecond, &MockJob{Done: make(chan struct{}, 1)}))
	assert.False(t, sched.Cancel(""))
}

func TestScheduler_KeyedStartCancel(t *testing.T) {
	sched := New(newPool(t))
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	require.True(t, sched.Start("game-1", 10*time.Millisecond, job))
	assert.False(t, sched.Start("game-1", 10*time.Millisecond, job), "duplicate key must be rejected")

	interval, ok := sched.Interval("game-1")
	assert.True(t, ok)
	assert.Equal(t, 10*time.Millisecond, interval)
	assert.Equal(t, 1, sched.Active())

	waitRuns(t, job, 2)

	assert.True(t, sched.Cancel("game-1"))
	assert.False(t, sched.Cancel("game-1"))
	assert.Equal(t, 0, sched.Active())

	time.Sleep(30 * time.Millisecond)
	settled := job.runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, job.runs.Load(), "no runs after cancel")

	// the key can be reused
	assert.True(t, sched.Start("game-1", 10*time.Millisecond, job))
}

func TestScheduler_KeyedSkipsOverlappingRuns(t *testing.T) {
	sched := New(newPool(t))
	defer sched.Stop()

	var concurrent, maxConcurrent atomic.Int32
	job := worker.JobFunc(func(ctx context.Context) error {
		n := concurrent.Add(1)
		for {
			m := maxConcurrent.Load()
			if n <= m || maxConcurrent.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(30 * time.Millisecond)
		concurrent.Add(-1)
		return nil
	})

	require.True(t, sched.Start("slow", 5*time.Millisecond, job))
	time.Sleep(150 * time.Millisecond)
	sched.Cancel("slow")

	assert.Equal(t, int32(1), maxConcurrent.Load())
}

func TestScheduler_JobCanCancelItself(t *testing.T) {
	sched := New(newPool(t))
	defer sched.Stop()

	done := make(chan struct{})
	var job worker.Job = worker.JobFunc(func(ctx context.Context) error {
		sched.Cancel("self")
		close(done)
		return nil
	})
	require.True(t, sched.Start("self", 5*time.Millisecond, job))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job never ran")
	}
	assert.Eventually(t, func() bool { return sched.Active() == 0 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_StartAfterStop(t *testing.T) {
	sched := New(newPool(t))
	sched.Stop()

	assert.False(t, sched.Start("late", time.Millisecond, &MockJob{Done: make(chan struct{}, 1)}))
}

func TestScheduler_StopReleasesLoops(t *testing.T) {
	leaktest.Run(t, func() {
		pool := worker.NewPool(1, 10, time.Second)
		pool.Start()
		sched := New(pool)

		sched.Schedule(5*time.Millisecond, &MockJob{Done: make(chan struct{}, 10)})
		require.True(t, sched.Start("game-1", 5*time.Millisecond, &MockJob{Done: make(chan struct{}, 10)}))
		require.True(t, sched.Start("game-2", 5*time.Millisecond, &MockJob{Done: make(chan struct{}, 10)}))
		assert.True(t, sched.Cancel("game-1"))

		sched.Stop()
		pool.Stop()
	})
}
