package resilience

import (
	"context"
	"errors"
	"sync"
)

var ErrWorkerPoolClosed = errors.New("worker pool is closed")

// Job is a unit of work executed by the pool.
type Job func() error

type indexedJob struct {
	seq int
	run Job
}

// WorkerPool runs submitted jobs on a fixed number of goroutines and keeps the
// error of the earliest submitted job that failed.
type WorkerPool struct {
	jobs   chan indexedJob
	closed bool
	seq    int
	mu     sync.RWMutex
	once   sync.Once
	wg     sync.WaitGroup

	errMu    sync.Mutex
	firstSeq int
	firstErr error
}

func NewWorkerPool(workers, queueSize int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = workers
	}

	p := &WorkerPool{
		jobs:     make(chan indexedJob, queueSize),
		firstSeq: -1,
	}

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if err := job.run(); err != nil {
					p.record(job.seq, err)
				}
			}
		}()
	}

	return p
}

func (p *WorkerPool) record(seq int, err error) {
	p.errMu.Lock()
	defer p.errMu.Unlock()
	if p.firstErr == nil || seq < p.firstSeq {
		p.firstSeq = seq
		p.firstErr = err
	}
}

// Submit queues job. It blocks while the queue is full.
func (p *WorkerPool) Submit(ctx context.Context, job Job) error {
	if job == nil {
		return nil
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrWorkerPoolClosed
	}
	seq := p.seq
	p.seq++
	p.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.jobs <- indexedJob{seq: seq, run: job}:
		return nil
	}
}

func (p *WorkerPool) Close() {
	p.once.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.jobs)
		p.mu.Unlock()
	})
}

// Wait blocks until every worker exits (after Close) and returns the error of
// the earliest submitted failing job, if any.
func (p *WorkerPool) Wait() error {
	p.wg.Wait()

	p.errMu.Lock()
	defer p.errMu.Unlock()
	return p.firstErr
}
