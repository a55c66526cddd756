package event

import (
	"errors"
	"fmt"
)

// Sentinel errors for the event runtime.
var (
	// ErrNilEvent is returned when dispatching a nil event.
	ErrNilEvent = errors.New("event cannot be nil")

	// ErrNilListener is returned when registering a nil listener.
	ErrNilListener = errors.New("listener cannot be nil")

	// ErrInvalidType is returned for an empty event type.
	ErrInvalidType = errors.New("invalid event type")

	// ErrAlreadyDispatched is returned when an event instance is dispatched
	// a second time. Events are single use.
	ErrAlreadyDispatched = errors.New("event was already dispatched")

	// ErrAlreadyAnswered is returned to a listener answering a request that
	// another listener already answered.
	ErrAlreadyAnswered = errors.New("request was already answered")

	// ErrMultipleResponders is returned when more than one listener answers
	// a request on a target using SingleResponder.
	ErrMultipleResponders = errors.New("request answered by more than one listener")

	// ErrResultType is returned when a type-erased answer cannot be
	// converted to the result type of the request.
	ErrResultType = errors.New("answer does not match the request result type")

	// ErrNoReason is the rejection error used when a listener rejects a
	// request with a nil error.
	ErrNoReason = errors.New("request rejected without a reason")

	// ErrTargetClosed is returned by a closed target.
	ErrTargetClosed = errors.New("event target is closed")
)

// ListenerError wraps an error returned by a listener.
type ListenerError struct {
	// Type is the event type being dispatched.
	Type Type

	// Target is the name of the target the listener was registered on.
	Target string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ListenerError) Error() string {
	return fmt.Sprintf("listener on %s for %s: %v", e.Target, e.Type, e.Err)
}

// Unwrap returns the underlying error.
func (e *ListenerError) Unwrap() error {
	return e.Err
}

// PanicError reports a panic in a listener or in a deferred answer.
type PanicError struct {
	// Type is the event type being handled.
	Type Type

	// Value is the value passed to panic().
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic while handling %s: %v", e.Type, e.Value)
}
