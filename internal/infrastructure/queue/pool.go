package queue

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/careercharma/learnhub-api/internal/api/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// ErrPoolClosed is returned by Do after Stop.
var ErrPoolClosed = errors.New("worker pool closed")

type job struct {
	fn   func()
	done chan struct{}
}

// Pool runs CPU-heavy work on a fixed set of workers so request goroutines
// never run more than len(workers) such jobs at once.
type Pool struct {
	jobs    chan job
	workers int
	log     zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewPool creates a Pool with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewPool(numWorkers int, log zerolog.Logger) *Pool {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Pool{
		jobs:    make(chan job, channelBuffer),
		workers: numWorkers,
		log:     log,
	}
}

// Start launches all worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.runWorker(i)
	}
	p.log.Info().Int("workers", p.workers).Msg("worker pool started")
}

// Stop rejects new jobs, lets queued ones finish and waits for the workers.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
}

// Do queues fn and blocks until it has run or ctx is done. A job abandoned
// through ctx still runs once a worker picks it up.
func (p *Pool) Do(ctx context.Context, fn func()) error {
	j := job{fn: fn, done: make(chan struct{})}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrPoolClosed
	}
	metrics.WorkerPoolQueueDepth.Inc()
	select {
	case p.jobs <- j:
	case <-ctx.Done():
		p.mu.RUnlock()
		metrics.WorkerPoolQueueDepth.Dec()
		return ctx.Err()
	}
	p.mu.RUnlock()

	select {
	case <-j.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) runWorker(id int) {
	defer p.wg.Done()
	for j := range p.jobs {
		metrics.WorkerPoolQueueDepth.Dec()
		p.run(id, j)
	}
}

func (p *Pool) run(id int, j job) {
	defer close(j.done)
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Interface("panic", r).Int("worker_id", id).Msg("worker job panicked")
		}
	}()
	j.fn()
}
