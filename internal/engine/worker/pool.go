// Package worker runs background jobs on fixed-size FIFO pools.
package worker

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
)

// ErrStopped is returned by Submit once the pool has been stopped.
var ErrStopped = errors.New("worker pool stopped")

// Pool is a named job pool. Jobs submitted to a single-worker pool run in
// submission order.
type Pool struct {
	name string
	log  *zap.Logger
	pool pond.Pool

	mu      sync.Mutex
	stopped bool

	panics atomic.Uint64
}

// Option configures a Pool.
type Option func(*Pool)

// WithLogger sets the logger used for job panics.
func WithLogger(log *zap.Logger) Option {
	return func(p *Pool) {
		p.log = log
	}
}

// New creates a pool with the given number of workers.
func New(name string, workers int, opts ...Option) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{
		name: name,
		log:  zap.NewNop(),
		pool: pond.NewPool(workers),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With(zap.String("pool", name))
	return p
}

// Name returns the pool name.
func (p *Pool) Name() string {
	return p.name
}

// Submit queues a job without waiting for it to run.
func (p *Pool) Submit(job func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return ErrStopped
	}
	p.pool.Submit(func() {
		defer p.recoverJob()
		job()
	})
	return nil
}

func (p *Pool) recoverJob() {
	if r := recover(); r != nil {
		p.panics.Add(1)
		p.log.Error("job panicked", zap.Any("panic", r), zap.Stack("stack"))
	}
}

// Stop rejects further jobs, runs every job already queued, and returns once
// the workers are idle. It reports jobs that panicked during the pool's life.
// Calling Stop again is a no-op.
func (p *Pool) Stop() error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	p.mu.Unlock()

	p.pool.StopAndWait()

	if n := p.panics.Load(); n > 0 {
		return fmt.Errorf("pool %s: %d jobs panicked", p.name, n)
	}
	return nil
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopped
}

// Pending returns the number of jobs submitted but not finished.
func (p *Pool) Pending() uint64 {
	submitted := p.pool.SubmittedTasks()
	completed := p.pool.CompletedTasks()
	if completed > submitted {
		return 0
	}
	return submitted - completed
}

// Completed returns the number of jobs that have finished, including those
// that panicked.
func (p *Pool) Completed() uint64 {
	return p.pool.CompletedTasks()
}
