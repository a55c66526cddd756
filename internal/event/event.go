package event

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is implemented by every dispatchable event. Concrete events are
// Notification and Request; the interface is sealed by an unexported method.
type Event interface {
	// EventType returns the literal event type.
	EventType() Type

	// EventKind returns whether the event is a request or a notification.
	EventKind() Kind

	// EventFlags returns the propagation flags.
	EventFlags() Flags

	// EventMetadata returns the instance metadata.
	EventMetadata() Metadata

	// Payload returns the detail for type-erased handling.
	Payload() any

	// PreventDefault marks a cancelable event as handled. It is a no-op
	// on notifications.
	PreventDefault()

	// DefaultPrevented reports whether a listener prevented the default.
	DefaultPrevented() bool

	// StopPropagation keeps the event from reaching ancestor targets.
	StopPropagation()

	// StopImmediatePropagation additionally skips the remaining listeners
	// on the current target.
	StopImmediatePropagation()

	// CurrentTarget returns the target whose listeners are running, or nil
	// outside of dispatch.
	CurrentTarget() *Target

	base() *Base
}

// Metadata contains standard information attached to every event instance.
type Metadata struct {
	// ID is a unique identifier for this event instance.
	ID string `json:"id"`

	// Timestamp is when the event was created.
	Timestamp time.Time `json:"timestamp"`

	// Source identifies the component that created the event.
	Source string `json:"source,omitempty"`

	// CorrelationID links related events, e.g. a transport request and its
	// response.
	CorrelationID string `json:"correlationId,omitempty"`
}

// Option configures an event instance at construction.
type Option func(*Base)

// WithSource sets the metadata source.
func WithSource(source string) Option {
	return func(b *Base) {
		b.meta.Source = source
	}
}

// WithCorrelation sets the metadata correlation ID.
func WithCorrelation(id string) Option {
	return func(b *Base) {
		b.meta.CorrelationID = id
	}
}

// WithPropagation overrides the bubbles and composed flags. Whether an
// event is cancelable follows from its kind and cannot be changed.
func WithPropagation(bubbles, composed bool) Option {
	return func(b *Base) {
		b.flags.Bubbles = bubbles
		b.flags.Composed = composed
	}
}

// Base holds the state shared by all event kinds. It is embedded by
// Notification and Request and is not meant to be used on its own.
type Base struct {
	typ   Type
	kind  Kind
	flags Flags
	meta  Metadata

	mu                 sync.Mutex
	defaultPrevented   bool
	propagationStopped bool
	immediateStopped   bool
	dispatched         bool
	current            *Target
	ctx                context.Context
	policy             ResponderPolicy
	conflict           bool
}

func (b *Base) init(t Type, kind Kind, opts []Option) {
	b.typ = t
	b.kind = kind
	b.flags = kind.Flags()
	b.meta = Metadata{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
	}
	for _, opt := range opts {
		opt(b)
	}
}

// EventType implements Event.
func (b *Base) EventType() Type { return b.typ }

// EventKind implements Event.
func (b *Base) EventKind() Kind { return b.kind }

// EventFlags implements Event.
func (b *Base) EventFlags() Flags { return b.flags }

// EventMetadata implements Event.
func (b *Base) EventMetadata() Metadata { return b.meta }

// PreventDefault implements Event.
func (b *Base) PreventDefault() {
	if !b.flags.Cancelable {
		return
	}
	b.mu.Lock()
	b.defaultPrevented = true
	b.mu.Unlock()
}

// DefaultPrevented implements Event.
func (b *Base) DefaultPrevented() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.defaultPrevented
}

// StopPropagation implements Event.
func (b *Base) StopPropagation() {
	b.mu.Lock()
	b.propagationStopped = true
	b.mu.Unlock()
}

// StopImmediatePropagation implements Event.
func (b *Base) StopImmediatePropagation() {
	b.mu.Lock()
	b.propagationStopped = true
	b.immediateStopped = true
	b.mu.Unlock()
}

// CurrentTarget implements Event.
func (b *Base) CurrentTarget() *Target {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

func (b *Base) base() *Base { return b }

// begin marks the event as in flight. It fails if the event was dispatched
// before.
func (b *Base) begin(ctx context.Context, policy ResponderPolicy) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dispatched {
		return false
	}
	b.dispatched = true
	b.ctx = ctx
	b.policy = policy
	return true
}

func (b *Base) enter(t *Target) {
	b.mu.Lock()
	b.current = t
	b.immediateStopped = false
	b.mu.Unlock()
}

func (b *Base) finish() {
	b.mu.Lock()
	b.current = nil
	b.mu.Unlock()
}

func (b *Base) stopped() (propagation, immediate bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.propagationStopped, b.immediateStopped
}

func (b *Base) hasConflict() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conflict
}

// dispatchContext returns the context the event was dispatched with.
func (b *Base) dispatchContext() context.Context {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ctx == nil {
		return context.Background()
	}
	return b.ctx
}

// Notification is a non-cancelable event announcing that something already
// happened. No listener answers it.
type Notification[D any] struct {
	Base

	// Detail is the payload of the notification.
	Detail D
}

// NewNotification creates a notification of type t carrying detail.
func NewNotification[D any](t Type, detail D, opts ...Option) *Notification[D] {
	n := &Notification[D]{Detail: detail}
	n.init(t, KindNotification, opts)
	return n
}

// Payload implements Event.
func (n *Notification[D]) Payload() any { return n.Detail }
