package event

import (
	"context"
	"sync"
)

// Pending is the answer to a request: a value or an error that may not be
// known yet. It settles at most once.
type Pending[R any] struct {
	once  sync.Once
	done  chan struct{}
	value R
	err   error
}

// NewPending returns an unsettled Pending.
func NewPending[R any]() *Pending[R] {
	return &Pending[R]{done: make(chan struct{})}
}

// Resolved returns a Pending already settled with v.
func Resolved[R any](v R) *Pending[R] {
	p := NewPending[R]()
	p.Resolve(v)
	return p
}

// Rejected returns a Pending already settled with err.
func Rejected[R any](err error) *Pending[R] {
	p := NewPending[R]()
	p.Reject(err)
	return p
}

// Resolve settles p with v. It reports false if p was already settled.
func (p *Pending[R]) Resolve(v R) bool {
	settled := false
	p.once.Do(func() {
		p.value = v
		close(p.done)
		settled = true
	})
	return settled
}

// Reject settles p with err. A nil err is replaced by ErrNoReason.
// It reports false if p was already settled.
func (p *Pending[R]) Reject(err error) bool {
	if err == nil {
		err = ErrNoReason
	}
	settled := false
	p.once.Do(func() {
		p.err = err
		close(p.done)
		settled = true
	})
	return settled
}

// Done is closed once p settles.
func (p *Pending[R]) Done() <-chan struct{} {
	return p.done
}

// Settled reports whether p has a value or an error.
func (p *Pending[R]) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Await blocks until p settles or ctx is done. The rejection error is
// returned as is.
func (p *Pending[R]) Await(ctx context.Context) (R, error) {
	select {
	case <-p.done:
		return p.value, p.err
	default:
	}

	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}
