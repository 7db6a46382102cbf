package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/VineyardSim_Go/internal/logger"
	"github.com/osse101/VineyardSim_Go/internal/metrics"
)

// Job is a unit of background work
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc lets a plain function be queued as a Job
type JobFunc func(ctx context.Context) error

func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Pool runs queued jobs on a fixed set of goroutines.
// Each job gets its own request id and, when configured, a deadline.
type Pool struct {
	size    int
	timeout time.Duration
	queue   chan Job

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPool sizes the pool; a zero jobTimeout leaves jobs unbounded
func NewPool(workers, queueSize int, jobTimeout time.Duration) *Pool {
	return &Pool{
		size:    max(workers, 1),
		timeout: jobTimeout,
		queue:   make(chan Job, queueSize),
		done:    make(chan struct{}),
	}
}

func (p *Pool) Start() {
	p.wg.Add(p.size)
	for id := range p.size {
		go p.work(id)
	}
}

func (p *Pool) work(id int) {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case job := <-p.queue:
			result := p.execute(id, job)
			metrics.WorkerJobs.WithLabelValues(result).Inc()
		}
	}
}

func (p *Pool) execute(id int, job Job) (result string) {
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	log := logger.FromContext(ctx).With("worker", id)

	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgWorkerJobPanicked, "panic", fmt.Sprint(r))
			result = metrics.ResultPanic
		}
	}()

	if err := job.Process(ctx); err != nil {
		log.Error(LogMsgWorkerJobFailed, "error", err)
		return metrics.ResultError
	}
	return metrics.ResultSuccess
}

// Enqueue waits for queue space. It reports false once the pool is stopped.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case <-p.done:
		return false
	default:
	}
	select {
	case p.queue <- job:
		return true
	case <-p.done:
		return false
	}
}

// TryEnqueue queues job only if there is room right now
func (p *Pool) TryEnqueue(job Job) bool {
	select {
	case <-p.done:
		return false
	default:
	}
	select {
	case p.queue <- job:
		return true
	default:
		return false
	}
}

// Stop waits for running jobs to return. Anything still queued is dropped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.done) })
	p.wg.Wait()
}
