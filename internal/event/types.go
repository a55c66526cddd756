package event

import "context"

// Type is the literal name of an event, e.g. "arcconfigupdate".
// External listeners key off these strings, so they never change.
type Type string

// String returns the type as a string.
func (t Type) String() string {
	return string(t)
}

// Kind tells how an event type is used.
type Kind int

const (
	// KindRequest events are cancelable and carry a result slot that a
	// listener fills to answer the caller.
	KindRequest Kind = iota

	// KindNotification events announce something that already happened.
	// They cannot be canceled and nobody answers them.
	KindNotification
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindNotification:
		return "notification"
	default:
		return "unknown"
	}
}

// Flags returns the propagation flags events of this kind carry.
func (k Kind) Flags() Flags {
	return Flags{
		Bubbles:    true,
		Composed:   true,
		Cancelable: k == KindRequest,
	}
}

// ParseKind parses the output of Kind.String.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "request":
		return KindRequest, true
	case "notification":
		return KindNotification, true
	default:
		return 0, false
	}
}

// Flags are the propagation flags of an event.
type Flags struct {
	// Bubbles lets the event travel from the target to its ancestors.
	Bubbles bool `json:"bubbles"`

	// Composed lets the event cross a shadow root boundary.
	Composed bool `json:"composed"`

	// Cancelable lets a listener prevent the default action, which is how
	// a listener claims a request.
	Cancelable bool `json:"cancelable"`
}

// Void is the result type of requests that produce no value.
type Void struct{}

// Listener receives events dispatched on a Target.
//
// A listener that answers a request calls one of the Respond methods of the
// request before returning. Returned errors are logged and counted by the
// target; they are not delivered to the dispatching caller. To fail a
// request, reject it instead.
type Listener interface {
	HandleEvent(ctx context.Context, e Event) error
}

// ListenerFunc is a function adapter for Listener.
type ListenerFunc func(ctx context.Context, e Event) error

// HandleEvent implements Listener.
func (f ListenerFunc) HandleEvent(ctx context.Context, e Event) error {
	return f(ctx, e)
}

// ResponderPolicy decides what happens when more than one listener answers
// the same request.
type ResponderPolicy int32

const (
	// FirstResponder keeps the first answer. Later Respond calls return
	// ErrAlreadyAnswered to the listener making them; dispatch goes on.
	FirstResponder ResponderPolicy = iota

	// LastResponder lets each answer replace the previous one, like
	// repeated assignments to a DOM event detail.
	LastResponder

	// SingleResponder treats a second answer as a wiring error: the
	// listener gets ErrMultipleResponders and so does the caller.
	SingleResponder
)

// String returns the policy name used in configuration.
func (p ResponderPolicy) String() string {
	switch p {
	case FirstResponder:
		return "first"
	case LastResponder:
		return "last"
	case SingleResponder:
		return "single"
	default:
		return "unknown"
	}
}

// ParseResponderPolicy parses a policy name. Unknown names fall back to
// FirstResponder and report false.
func ParseResponderPolicy(s string) (ResponderPolicy, bool) {
	switch s {
	case "first", "":
		return FirstResponder, true
	case "last":
		return LastResponder, true
	case "single":
		return SingleResponder, true
	default:
		return FirstResponder, false
	}
}
