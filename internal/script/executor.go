package script

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// luaCall is one unit of work for the goroutine owning the Lua state.
type luaCall struct {
	ctx    context.Context
	fn     func(L *lua.LState) error
	result chan error
}

// executor serializes every use of a Lua state through one goroutine.
// An LState is not safe for concurrent use, so callers on any goroutine
// queue their work and wait for it.
//
// Work that blocks while holding the state (a script waiting for the
// answer of a dispatch) goes through wait, which keeps serving the queue
// so listeners reached by that dispatch still run.
type executor struct {
	L      *lua.LState
	queue  chan *luaCall
	closed atomic.Bool

	// active is the context of the innermost running call. Only the
	// owning goroutine touches it.
	active context.Context

	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

func newExecutor(L *lua.LState, queueSize int) *executor {
	if queueSize <= 0 {
		queueSize = 64
	}
	e := &executor{
		L:       L,
		queue:   make(chan *luaCall, queueSize),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go e.run()
	return e
}

// run owns L until close. The state is closed on this goroutine.
func (e *executor) run() {
	defer close(e.stopped)
	defer e.L.Close()

	for {
		select {
		case <-e.done:
			e.drain()
			return
		case call := <-e.queue:
			e.serve(call)
		}
	}
}

// serve runs call with its context installed in the Lua state.
func (e *executor) serve(call *luaCall) {
	if err := call.ctx.Err(); err != nil {
		call.result <- err
		return
	}
	call.result <- e.execute(call)
}

func (e *executor) execute(call *luaCall) (err error) {
	prevActive, prevLua := e.active, e.L.Context()
	e.active = call.ctx
	e.L.SetContext(call.ctx)
	defer func() {
		e.active = prevActive
		if prevLua != nil {
			e.L.SetContext(prevLua)
		} else {
			e.L.RemoveContext()
		}
	}()

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("lua panic: %v", rec)
		}
	}()
	return call.fn(e.L)
}

func (e *executor) drain() {
	for {
		select {
		case call := <-e.queue:
			call.result <- ErrClosed
		default:
			return
		}
	}
}

// do runs fn on the owning goroutine and waits for it. It must not be
// called from that goroutine; use wait there.
func (e *executor) do(ctx context.Context, fn func(L *lua.LState) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if e.closed.Load() {
		return ErrClosed
	}

	call := &luaCall{ctx: ctx, fn: fn, result: make(chan error, 1)}
	select {
	case e.queue <- call:
	case <-ctx.Done():
		return ctx.Err()
	case <-e.stopped:
		return ErrClosed
	}

	select {
	case err := <-call.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-e.stopped:
		return ErrClosed
	}
}

// wait runs fn on a new goroutine and serves queued calls on the owning
// goroutine until fn returns. It must only be called from the owning
// goroutine.
func (e *executor) wait(fn func()) {
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		fn()
	}()

	for {
		select {
		case <-finished:
			return
		case call := <-e.queue:
			e.serve(call)
		}
	}
}

// context returns the context of the running call.
func (e *executor) context() context.Context {
	if e.active != nil {
		return e.active
	}
	return context.Background()
}

// close stops the owning goroutine and waits for it to release L. Calls
// still queued fail with ErrClosed.
func (e *executor) close() {
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		close(e.done)
	})
	<-e.stopped
}
