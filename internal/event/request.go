package event

import (
	"context"
	"encoding/json"
	"fmt"
)

// Request is a cancelable event that expects a listener to answer it.
//
// A listener answers with Respond, RespondPending, RespondFunc or Reject.
// Each of them also prevents the default action, which is how the listener
// tells everyone else that it took the request.
type Request[D, R any] struct {
	Base

	// Detail is the payload of the request.
	Detail D

	result *Pending[R]
}

// NewRequest creates a request of type t carrying detail. The result slot
// starts empty.
func NewRequest[D, R any](t Type, detail D, opts ...Option) *Request[D, R] {
	r := &Request[D, R]{Detail: detail}
	r.init(t, KindRequest, opts)
	return r
}

// Payload implements Event.
func (r *Request[D, R]) Payload() any { return r.Detail }

// Respond answers the request with an immediate value.
func (r *Request[D, R]) Respond(v R) error {
	return r.answer(Resolved(v))
}

// RespondPending answers the request with a value that will be known later.
// The caller waits on p.
func (r *Request[D, R]) RespondPending(p *Pending[R]) error {
	if p == nil {
		return fmt.Errorf("%w: nil pending answer", ErrResultType)
	}
	return r.answer(p)
}

// RespondFunc answers the request with the outcome of fn, computed on the
// pool of the target being dispatched on. Without a running pool fn runs on
// its own goroutine. fn receives the dispatch context.
func (r *Request[D, R]) RespondFunc(fn func(ctx context.Context) (R, error)) error {
	p := NewPending[R]()
	if err := r.answer(p); err != nil {
		return err
	}

	ctx := r.dispatchContext()
	task := func(ctx context.Context) (err error) {
		defer func() {
			if v := recover(); v != nil {
				p.Reject(&PanicError{Type: r.typ, Value: v})
				panic(v)
			}
		}()
		v, err := fn(ctx)
		if err != nil {
			p.Reject(err)
			return err
		}
		p.Resolve(v)
		return nil
	}

	if t := r.CurrentTarget(); t != nil {
		err := t.submit(ctx, r, task)
		if err == nil {
			return nil
		}
		if !isPoolUnavailable(err) {
			p.Reject(fmt.Errorf("deferred answer for %s: %w", r.typ, err))
			return nil
		}
	}

	go func() {
		defer func() { _ = recover() }()
		_ = task(ctx)
	}()
	return nil
}

// Reject answers the request with an error. The caller receives err
// unchanged.
func (r *Request[D, R]) Reject(err error) error {
	return r.answer(Rejected[R](err))
}

// Answered reports whether a listener put something in the result slot.
func (r *Request[D, R]) Answered() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.result != nil
}

// Result returns the pending answer, or nil when nobody answered.
func (r *Request[D, R]) Result() *Pending[R] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.result
}

func (r *Request[D, R]) answer(p *Pending[R]) error {
	r.PreventDefault()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.result == nil {
		r.result = p
		return nil
	}
	switch r.policy {
	case LastResponder:
		r.result = p
		return nil
	case SingleResponder:
		r.conflict = true
		return ErrMultipleResponders
	default:
		return ErrAlreadyAnswered
	}
}

// Answerable is implemented by every Request. It lets code that only knows
// the event type (scripts, wire bridges) answer and read requests.
type Answerable interface {
	Event

	// RespondAny answers with v converted to the result type.
	RespondAny(v any) error

	// Reject answers with an error.
	Reject(err error) error

	// Answered reports whether the result slot is set.
	Answered() bool

	// AwaitAny waits for the answer. It returns nil, nil when nobody
	// answered.
	AwaitAny(ctx context.Context) (any, error)
}

// RespondAny implements Answerable. Values of type R are used as is; nil
// answers with the zero value; anything else is converted through its JSON
// form. Void requests accept any value.
func (r *Request[D, R]) RespondAny(v any) error {
	out, err := convertResult[R](v)
	if err != nil {
		return err
	}
	return r.Respond(out)
}

// AwaitAny implements Answerable.
func (r *Request[D, R]) AwaitAny(ctx context.Context) (any, error) {
	p := r.Result()
	if p == nil {
		return nil, nil
	}
	v, err := p.Await(ctx)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func convertResult[R any](v any) (R, error) {
	var out R
	if v == nil {
		return out, nil
	}
	if typed, ok := v.(R); ok {
		return typed, nil
	}
	if _, ok := any(out).(Void); ok {
		return out, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrResultType, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%w: %T into %T: %v", ErrResultType, v, out, err)
	}
	return out, nil
}
