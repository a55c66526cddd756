package dispatch

import (
	"context"
	"errors"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"
)

// Pool executes tasks on a fixed set of worker goroutines fed by a bounded
// queue.
type Pool struct {
	queueSize   int
	workerCount int
	timeout     time.Duration

	mu      sync.Mutex // guards queue creation and close
	queue   chan poolTask
	running atomic.Bool
	wg      sync.WaitGroup

	panicHandler PanicHandler

	submitted   atomic.Uint64
	processed   atomic.Uint64
	succeeded   atomic.Uint64
	failed      atomic.Uint64
	panicked    atomic.Uint64
	dropped     atomic.Uint64
	timedOut    atomic.Uint64
	totalTimeNs atomic.Int64
}

type poolTask struct {
	ctx     context.Context
	subject any
	task    Task
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithQueueSize sets the task queue size.
func WithQueueSize(size int) PoolOption {
	return func(p *Pool) {
		if size > 0 {
			p.queueSize = size
		}
	}
}

// WithWorkerCount sets the number of worker goroutines.
func WithWorkerCount(count int) PoolOption {
	return func(p *Pool) {
		if count > 0 {
			p.workerCount = count
		}
	}
}

// WithTaskTimeout sets the per task deadline. Zero disables it.
func WithTaskTimeout(timeout time.Duration) PoolOption {
	return func(p *Pool) {
		p.timeout = timeout
	}
}

// WithPoolPanicHandler sets the panic handler for pool workers.
func WithPoolPanicHandler(h PanicHandler) PoolOption {
	return func(p *Pool) {
		if h != nil {
			p.panicHandler = h
		}
	}
}

// NewPool creates a stopped pool.
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{
		queueSize:    1024,
		workerCount:  4,
		timeout:      30 * time.Second,
		panicHandler: defaultPanicHandler,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start launches the workers.
func (p *Pool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running.Load() {
		return ErrAlreadyRunning
	}

	p.queue = make(chan poolTask, p.queueSize)
	p.running.Store(true)

	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return nil
}

// Stop closes the queue and waits for queued tasks to finish or for ctx.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.running.Load() {
		p.mu.Unlock()
		return ErrNotRunning
	}
	p.running.Store(false)
	close(p.queue)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Submit queues a task without blocking.
func (p *Pool) Submit(ctx context.Context, subject any, task Task) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running.Load() {
		return ErrNotRunning
	}

	select {
	case p.queue <- poolTask{ctx: ctx, subject: subject, task: task}:
		p.submitted.Add(1)
		return nil
	default:
		p.dropped.Add(1)
		return ErrQueueFull
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	executor := NewExecutor(
		WithExecutorPanicHandler(p.panicHandler),
		WithExecutorTimeout(p.timeout),
	)
	for t := range p.queue {
		p.run(executor, t)
	}
}

func (p *Pool) run(executor *Executor, t poolTask) {
	p.processed.Add(1)
	start := time.Now()

	var handled bool
	defer func() {
		// the executor recovers task panics; this only catches its own
		if r := recover(); r != nil {
			if !handled {
				p.panicked.Add(1)
			}
			func() {
				defer func() { _ = recover() }()
				p.panicHandler(t.subject, r, debug.Stack())
			}()
		}
		p.totalTimeNs.Add(time.Since(start).Nanoseconds())
	}()

	result := executor.Execute(t.ctx, t.subject, t.task)
	handled = true

	switch {
	case result.Skipped:
		p.failed.Add(1)
	case result.IsPanic():
		p.panicked.Add(1)
	case result.IsError():
		if errors.Is(result.Error, context.DeadlineExceeded) {
			p.timedOut.Add(1)
		}
		p.failed.Add(1)
	case result.IsSuccess():
		p.succeeded.Add(1)
	}
}

// QueueDepth returns the number of queued tasks.
func (p *Pool) QueueDepth() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running.Load() {
		return 0
	}
	return len(p.queue)
}

// IsRunning returns true if the pool accepts work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

// PoolStats contains pool counters.
type PoolStats struct {
	Submitted     uint64
	Processed     uint64
	Succeeded     uint64
	Failed        uint64
	Panicked      uint64
	Dropped       uint64
	TimedOut      uint64
	QueueDepth    int
	TotalDuration time.Duration
	AvgDuration   time.Duration
}

// Stats returns a snapshot of the pool counters. Values are read without a
// common lock and may be slightly inconsistent under load.
func (p *Pool) Stats() PoolStats {
	processed := p.processed.Load()
	totalNs := p.totalTimeNs.Load()

	var avgNs int64
	if processed > 0 {
		avgNs = totalNs / int64(processed)
	}

	return PoolStats{
		Submitted:     p.submitted.Load(),
		Processed:     processed,
		Succeeded:     p.succeeded.Load(),
		Failed:        p.failed.Load(),
		Panicked:      p.panicked.Load(),
		Dropped:       p.dropped.Load(),
		TimedOut:      p.timedOut.Load(),
		QueueDepth:    p.QueueDepth(),
		TotalDuration: time.Duration(totalNs),
		AvgDuration:   time.Duration(avgNs),
	}
}
