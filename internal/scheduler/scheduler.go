package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/VineyardSim_Go/internal/worker"
)

// Scheduler enqueues jobs on a worker pool at fixed intervals.
// Periodic jobs run until Stop; keyed jobs can also be cancelled one by one.
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once

	mu    sync.Mutex
	keyed map[string]*entry
}

type entry struct {
	stop     chan struct{}
	interval time.Duration
	running  atomic.Bool
	once     sync.Once
}

func newEntry(interval time.Duration) *entry {
	return &entry{stop: make(chan struct{}), interval: interval}
}

func (e *entry) cancel() {
	e.once.Do(func() { close(e.stop) })
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
		keyed:      make(map[string]*entry),
	}
}

// Schedule runs job every interval until Stop, skipping ticks while a run is pending
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go s.loop("", newEntry(interval), job)
}

// Start runs job under key every interval. A tick is skipped while the previous
// run for the same key is still queued or executing. Returns false if key is
// empty or taken.
func (s *Scheduler) Start(key string, interval time.Duration, job worker.Job) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.keyed[key]; exists || key == "" {
		return false
	}
	select {
	case <-s.quit:
		return false
	default:
	}

	e := newEntry(interval)
	s.keyed[key] = e

	s.wg.Add(1)
	go s.loop(key, e, job)
	return true
}

func (s *Scheduler) loop(key string, e *entry, job worker.Job) {
	defer s.wg.Done()
	defer s.forget(key, e)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	wrapped := worker.JobFunc(func(ctx context.Context) error {
		defer e.running.Store(false)
		return job.Process(ctx)
	})

	for {
		select {
		case <-ticker.C:
			if !e.running.CompareAndSwap(false, true) {
				continue
			}
			if !s.workerPool.TryEnqueue(wrapped) {
				e.running.Store(false)
			}
		case <-e.stop:
			return
		case <-s.quit:
			return
		}
	}
}

func (s *Scheduler) forget(key string, e *entry) {
	if key == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.keyed[key] == e {
		delete(s.keyed, key)
	}
}

// Cancel stops the keyed job. It never blocks, so a job may cancel itself.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	e, ok := s.keyed[key]
	if ok {
		delete(s.keyed, key)
	}
	s.mu.Unlock()

	if ok {
		e.cancel()
	}
	return ok
}

// Interval reports the interval of a keyed job, if one is running
func (s *Scheduler) Interval(key string) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.keyed[key]
	if !ok {
		return 0, false
	}
	return e.interval, true
}

// Active counts running keyed jobs
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keyed)
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
