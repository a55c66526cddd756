// Package dispatch runs listener work with panic recovery, timing and
// context support.
//
// # Executor
//
// An Executor runs a single Task in the caller's goroutine. Event targets
// use it to visit listeners one after another: a listener that panics or
// returns an error is reported through the Result and never unwinds into
// the dispatching code.
//
// # Pool
//
// A Pool is a bounded worker pool for work that must not block the
// dispatching goroutine, such as a listener computing the answer to a
// request after dispatch has returned:
//
//	pool := dispatch.NewPool(dispatch.WithWorkerCount(4))
//	if err := pool.Start(); err != nil {
//	    return err
//	}
//	defer pool.Stop(context.Background())
//
//	err := pool.Submit(ctx, "cookie-list", func(ctx context.Context) error {
//	    cookies, err := store.List(ctx)
//	    ...
//	})
//
// Submit never blocks; a full queue returns ErrQueueFull.
package dispatch
