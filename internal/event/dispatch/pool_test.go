package dispatch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_StartStop(t *testing.T) {
	p := NewPool()

	if p.IsRunning() {
		t.Error("new pool should not be running")
	}
	if err := p.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if err := p.Start(); err != ErrAlreadyRunning {
		t.Errorf("second Start() = %v, want ErrAlreadyRunning", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("Stop() failed: %v", err)
	}
	if err := p.Stop(context.Background()); err != ErrNotRunning {
		t.Errorf("second Stop() = %v, want ErrNotRunning", err)
	}
}

func TestPool_SubmitNotRunning(t *testing.T) {
	p := NewPool()
	err := p.Submit(context.Background(), nil, func(context.Context) error { return nil })
	if err != ErrNotRunning {
		t.Errorf("Submit() = %v, want ErrNotRunning", err)
	}
}

func TestPool_Executes(t *testing.T) {
	p := NewPool(WithWorkerCount(2), WithQueueSize(10))
	p.Start()
	defer p.Stop(context.Background())

	done := make(chan struct{})
	if err := p.Submit(context.Background(), "task", func(context.Context) error {
		close(done)
		return nil
	}); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task was not executed")
	}
}

func TestPool_QueueFull(t *testing.T) {
	p := NewPool(WithWorkerCount(1), WithQueueSize(1))
	p.Start()

	blocker := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once
	slow := func(context.Context) error {
		once.Do(func() { close(started) })
		<-blocker
		return nil
	}

	if err := p.Submit(context.Background(), nil, slow); err != nil {
		t.Fatalf("Submit() 0 failed: %v", err)
	}
	<-started

	if err := p.Submit(context.Background(), nil, slow); err != nil {
		t.Fatalf("Submit() 1 failed: %v", err)
	}
	if err := p.Submit(context.Background(), nil, slow); err != ErrQueueFull {
		t.Errorf("Submit() 2 = %v, want ErrQueueFull", err)
	}
	if p.Stats().Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", p.Stats().Dropped)
	}

	close(blocker)
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("Stop() failed: %v", err)
	}
}

func TestPool_Stats(t *testing.T) {
	var panics atomic.Int32
	p := NewPool(
		WithWorkerCount(1),
		WithPoolPanicHandler(func(any, any, []byte) { panics.Add(1) }),
	)
	p.Start()

	p.Submit(context.Background(), nil, func(context.Context) error { return nil })
	p.Submit(context.Background(), nil, func(context.Context) error { return errors.New("fail") })
	p.Submit(context.Background(), nil, func(context.Context) error { panic("boom") })

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("Stop() failed: %v", err)
	}

	stats := p.Stats()
	if stats.Submitted != 3 || stats.Processed != 3 {
		t.Errorf("Submitted/Processed = %d/%d, want 3/3", stats.Submitted, stats.Processed)
	}
	if stats.Succeeded != 1 || stats.Failed != 1 || stats.Panicked != 1 {
		t.Errorf("Succeeded/Failed/Panicked = %d/%d/%d, want 1/1/1",
			stats.Succeeded, stats.Failed, stats.Panicked)
	}
	if panics.Load() != 1 {
		t.Errorf("panic handler calls = %d, want 1", panics.Load())
	}
}

func TestPool_TaskTimeout(t *testing.T) {
	p := NewPool(WithWorkerCount(1), WithTaskTimeout(10*time.Millisecond))
	p.Start()

	p.Submit(context.Background(), nil, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	p.Stop(context.Background())
	if got := p.Stats().TimedOut; got != 1 {
		t.Errorf("TimedOut = %d, want 1", got)
	}
}

func TestPool_StopTimeout(t *testing.T) {
	p := NewPool(WithWorkerCount(1))
	p.Start()

	blocker := make(chan struct{})
	defer close(blocker)
	started := make(chan struct{})
	p.Submit(context.Background(), nil, func(context.Context) error {
		close(started)
		<-blocker
		return nil
	})
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := p.Stop(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Stop() = %v, want DeadlineExceeded", err)
	}
}

func TestPool_ConcurrentSubmit(t *testing.T) {
	p := NewPool(WithWorkerCount(4), WithQueueSize(1000))
	p.Start()

	var count atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				p.Submit(context.Background(), nil, func(context.Context) error {
					count.Add(1)
					return nil
				})
			}
		}()
	}
	wg.Wait()
	p.Stop(context.Background())

	if count.Load() != 500 {
		t.Errorf("executed %d tasks, want 500", count.Load())
	}
}
