package event

import "context"

// Call dispatches req on d and waits for its answer.
//
// When no listener answers, Call returns the zero value of R and a nil
// error. When a listener rejects the request, Call returns the rejection
// error unchanged. Dispatch errors and ctx errors are returned as is.
func Call[D, R any](ctx context.Context, d Dispatcher, req *Request[D, R]) (R, error) {
	var zero R
	if req == nil {
		return zero, ErrNilEvent
	}
	if err := d.Dispatch(ctx, req); err != nil {
		return zero, err
	}
	p := req.Result()
	if p == nil {
		return zero, nil
	}
	return p.Await(ctx)
}

// Perform is Call for requests that produce no value.
func Perform[D any](ctx context.Context, d Dispatcher, req *Request[D, Void]) error {
	_, err := Call(ctx, d, req)
	return err
}

// Notify dispatches n on d. It returns once the listeners ran.
func Notify[D any](ctx context.Context, d Dispatcher, n *Notification[D]) error {
	if n == nil {
		return ErrNilEvent
	}
	return d.Dispatch(ctx, n)
}
