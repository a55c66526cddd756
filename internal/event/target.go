package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/arcevents/internal/event/dispatch"
)

// Dispatcher is anything events can be dispatched on. Target implements it;
// tests and bridges may supply their own.
type Dispatcher interface {
	Dispatch(ctx context.Context, e Event) error
}

// Target is the node events are raised on and listeners attach to.
//
// Listeners for a type run synchronously in registration order. Events that
// bubble continue to the parent target afterwards, unless a listener stops
// propagation or the event is not composed and the target is a shadow root.
//
// A Target is safe for concurrent use: listeners may be added and removed
// while events are being dispatched. Each dispatch works on a snapshot of
// the listener list.
type Target struct {
	name       string
	parent     *Target
	shadowRoot bool
	env        *environment

	mu        sync.RWMutex
	listeners map[Type][]*Registration
}

// environment is shared by a root target and all of its descendants.
type environment struct {
	logger   atomic.Pointer[slog.Logger]
	policy   atomic.Int32
	executor *dispatch.Executor
	pool     *dispatch.Pool
	closed   atomic.Bool
	nextID   atomic.Uint64

	dispatched     atomic.Uint64
	answered       atomic.Uint64
	unanswered     atomic.Uint64
	listenersRun   atomic.Uint64
	listenerErrors atomic.Uint64
	listenerPanics atomic.Uint64
	totalNs        atomic.Int64
}

// TargetOption configures a root Target.
type TargetOption func(*targetConfig)

type targetConfig struct {
	name            string
	logger          *slog.Logger
	policy          ResponderPolicy
	listenerTimeout time.Duration
	poolOpts        []dispatch.PoolOption
}

// WithName names the target in logs.
func WithName(name string) TargetOption {
	return func(c *targetConfig) {
		c.name = name
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) TargetOption {
	return func(c *targetConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithResponderPolicy sets the policy for requests answered more than once.
func WithResponderPolicy(p ResponderPolicy) TargetOption {
	return func(c *targetConfig) {
		c.policy = p
	}
}

// WithListenerTimeout bounds the context each listener runs with.
func WithListenerTimeout(d time.Duration) TargetOption {
	return func(c *targetConfig) {
		c.listenerTimeout = d
	}
}

// WithPoolOptions configures the pool that runs RespondFunc answers.
func WithPoolOptions(opts ...dispatch.PoolOption) TargetOption {
	return func(c *targetConfig) {
		c.poolOpts = append(c.poolOpts, opts...)
	}
}

// NewTarget creates a root target. Call Start to enable deferred answers
// and Close to release the pool.
func NewTarget(opts ...TargetOption) *Target {
	cfg := targetConfig{
		name:   "root",
		logger: slog.New(slog.DiscardHandler),
		policy: FirstResponder,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	env := &environment{}
	env.logger.Store(cfg.logger)
	env.policy.Store(int32(cfg.policy))

	panicHandler := func(subject any, value any, stack []byte) {
		typ := Type("")
		if e, ok := subject.(Event); ok {
			typ = e.EventType()
		}
		env.logger.Load().Error("event handler panicked",
			"type", typ,
			"panic", value,
			"stack", string(stack),
		)
	}
	env.executor = dispatch.NewExecutor(
		dispatch.WithExecutorPanicHandler(panicHandler),
		dispatch.WithExecutorTimeout(cfg.listenerTimeout),
	)
	poolOpts := append([]dispatch.PoolOption{dispatch.WithPoolPanicHandler(panicHandler)}, cfg.poolOpts...)
	env.pool = dispatch.NewPool(poolOpts...)

	return &Target{
		name:      cfg.name,
		env:       env,
		listeners: make(map[Type][]*Registration),
	}
}

// ChildOption configures a child target.
type ChildOption func(*Target)

// WithShadowRoot makes the child a shadow root: events that are not
// composed stop propagating after visiting it.
func WithShadowRoot() ChildOption {
	return func(t *Target) {
		t.shadowRoot = true
	}
}

// NewChild creates a target whose events bubble to t. The child shares
// the logger, policy and pool of t.
func (t *Target) NewChild(name string, opts ...ChildOption) *Target {
	child := &Target{
		name:      name,
		parent:    t,
		env:       t.env,
		listeners: make(map[Type][]*Registration),
	}
	for _, opt := range opts {
		opt(child)
	}
	return child
}

// Name returns the target name.
func (t *Target) Name() string {
	return t.name
}

// Parent returns the parent target, or nil for a root.
func (t *Target) Parent() *Target {
	return t.parent
}

// Logger returns the logger shared by the target tree.
func (t *Target) Logger() *slog.Logger {
	return t.env.logger.Load()
}

// SetLogger replaces the logger for the whole target tree.
func (t *Target) SetLogger(l *slog.Logger) {
	if l != nil {
		t.env.logger.Store(l)
	}
}

// ResponderPolicy returns the policy in effect for the target tree.
func (t *Target) ResponderPolicy() ResponderPolicy {
	return ResponderPolicy(t.env.policy.Load())
}

// SetResponderPolicy changes the policy for subsequent dispatches.
func (t *Target) SetResponderPolicy(p ResponderPolicy) {
	t.env.policy.Store(int32(p))
}

// Start starts the pool that runs deferred answers.
func (t *Target) Start() error {
	if t.env.closed.Load() {
		return ErrTargetClosed
	}
	return t.env.pool.Start()
}

// Close stops accepting dispatches and waits for deferred answers to
// finish or for ctx.
func (t *Target) Close(ctx context.Context) error {
	if t.env.closed.Swap(true) {
		return nil
	}
	if !t.env.pool.IsRunning() {
		return nil
	}
	return t.env.pool.Stop(ctx)
}

// ListenOption configures a listener registration.
type ListenOption func(*Registration)

// Once removes the listener before its first invocation.
func Once() ListenOption {
	return func(r *Registration) {
		r.once = true
	}
}

// InFront places the listener ahead of the already registered ones.
func InFront() ListenOption {
	return func(r *Registration) {
		r.inFront = true
	}
}

// Registration is a listener attached to a target for one event type.
type Registration struct {
	id       uint64
	typ      Type
	listener Listener
	target   *Target
	once     bool
	inFront  bool
	removed  atomic.Bool
}

// ID returns the registration identifier, unique within a target tree.
func (r *Registration) ID() uint64 { return r.id }

// Type returns the event type listened for.
func (r *Registration) Type() Type { return r.typ }

// Active reports whether the listener is still attached. A Once listener
// stops being active when it is first invoked.
func (r *Registration) Active() bool { return !r.removed.Load() }

// Remove detaches the listener. It reports false if it was already removed.
func (r *Registration) Remove() bool {
	return r.target.RemoveListener(r)
}

// AddListener attaches l to events of type typ.
func (t *Target) AddListener(typ Type, l Listener, opts ...ListenOption) (*Registration, error) {
	if typ == "" {
		return nil, ErrInvalidType
	}
	if l == nil {
		return nil, ErrNilListener
	}
	if t.env.closed.Load() {
		return nil, ErrTargetClosed
	}

	reg := &Registration{
		id:       t.env.nextID.Add(1),
		typ:      typ,
		listener: l,
		target:   t,
	}
	for _, opt := range opts {
		opt(reg)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	list := t.listeners[typ]
	if reg.inFront {
		list = append([]*Registration{reg}, list...)
	} else {
		list = append(list, reg)
	}
	t.listeners[typ] = list
	return reg, nil
}

// On is a convenience for AddListener with a function.
func (t *Target) On(typ Type, fn func(ctx context.Context, e Event) error, opts ...ListenOption) (*Registration, error) {
	if fn == nil {
		return nil, ErrNilListener
	}
	return t.AddListener(typ, ListenerFunc(fn), opts...)
}

// RemoveListener detaches a registration.
func (t *Target) RemoveListener(reg *Registration) bool {
	if reg == nil || reg.target != t {
		return false
	}
	if reg.removed.Swap(true) {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	list := t.listeners[reg.typ]
	for i, r := range list {
		if r == reg {
			next := make([]*Registration, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			if len(next) == 0 {
				delete(t.listeners, reg.typ)
			} else {
				t.listeners[reg.typ] = next
			}
			break
		}
	}
	return true
}

// ListenerCount returns the number of listeners for typ on this target.
func (t *Target) ListenerCount(typ Type) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.listeners[typ])
}

// Types returns the event types with listeners on this target.
func (t *Target) Types() []Type {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Type, 0, len(t.listeners))
	for typ := range t.listeners {
		out = append(out, typ)
	}
	return out
}

// Dispatch raises e on t. Listeners run before Dispatch returns. The error
// is non-nil only when the event could not be dispatched, when ctx ended
// mid-dispatch, or when a SingleResponder target saw two answers; listener
// failures are logged, not returned.
func (t *Target) Dispatch(ctx context.Context, e Event) error {
	if e == nil {
		return ErrNilEvent
	}
	typ := e.EventType()
	if typ == "" {
		return ErrInvalidType
	}
	if t.env.closed.Load() {
		return ErrTargetClosed
	}

	b := e.base()
	if !b.begin(ctx, t.ResponderPolicy()) {
		return fmt.Errorf("%w: %s %s", ErrAlreadyDispatched, typ, b.meta.ID)
	}
	defer b.finish()

	start := time.Now()
	t.env.dispatched.Add(1)
	defer func() {
		t.env.totalNs.Add(time.Since(start).Nanoseconds())
	}()

	flags := e.EventFlags()
	for node := t; node != nil; node = node.parent {
		if err := node.invoke(ctx, e); err != nil {
			return err
		}
		if stop, _ := b.stopped(); stop {
			break
		}
		if !flags.Bubbles {
			break
		}
		if node.shadowRoot && !flags.Composed {
			break
		}
	}

	if b.hasConflict() {
		t.Logger().Warn("request answered more than once",
			"type", typ,
			"target", t.name,
		)
		return fmt.Errorf("%w: %s", ErrMultipleResponders, typ)
	}

	if a, ok := e.(Answerable); ok {
		if a.Answered() {
			t.env.answered.Add(1)
		} else {
			t.env.unanswered.Add(1)
			t.Logger().Debug("request not answered", "type", typ, "target", t.name)
		}
	}
	return nil
}

// invoke runs this target's listeners for e.
func (t *Target) invoke(ctx context.Context, e Event) error {
	typ := e.EventType()

	t.mu.RLock()
	snapshot := t.listeners[typ]
	t.mu.RUnlock()
	if len(snapshot) == 0 {
		return nil
	}

	b := e.base()
	b.enter(t)

	for _, reg := range snapshot {
		if reg.once {
			// removed before the call so a re-entrant dispatch skips it
			if !t.RemoveListener(reg) {
				continue
			}
		} else if reg.removed.Load() {
			continue
		}

		listener := reg.listener
		result := t.env.executor.Execute(ctx, e, func(ctx context.Context) error {
			return listener.HandleEvent(ctx, e)
		})
		t.env.listenersRun.Add(1)

		switch {
		case result.Skipped:
			return result.Error
		case result.IsPanic():
			t.env.listenerPanics.Add(1)
		case result.IsError():
			t.env.listenerErrors.Add(1)
			err := &ListenerError{Type: typ, Target: t.name, Err: result.Error}
			t.Logger().Warn("listener failed", "type", typ, "error", err)
		}

		if _, immediate := b.stopped(); immediate {
			break
		}
	}
	return nil
}

var errNoPool = errors.New("no pool available")

func isPoolUnavailable(err error) bool {
	return errors.Is(err, errNoPool) || errors.Is(err, dispatch.ErrNotRunning)
}

// submit queues deferred work on the shared pool.
func (t *Target) submit(ctx context.Context, subject any, task dispatch.Task) error {
	if t.env.pool == nil {
		return errNoPool
	}
	return t.env.pool.Submit(ctx, subject, task)
}

// Stats contains dispatch counters for a target tree.
type Stats struct {
	// Dispatched is the number of events dispatched.
	Dispatched uint64

	// Answered is the number of requests a listener answered.
	Answered uint64

	// Unanswered is the number of requests nobody answered.
	Unanswered uint64

	// ListenersRun is the number of listener invocations.
	ListenersRun uint64

	// ListenerErrors is the number of listeners that returned an error.
	ListenerErrors uint64

	// ListenerPanics is the number of listeners that panicked.
	ListenerPanics uint64

	// AvgDispatch is the average time a dispatch took.
	AvgDispatch time.Duration

	// Pool holds the counters of the deferred answer pool.
	Pool dispatch.PoolStats
}

// Stats returns the counters of the target tree.
func (t *Target) Stats() Stats {
	dispatched := t.env.dispatched.Load()
	var avg time.Duration
	if dispatched > 0 {
		avg = time.Duration(t.env.totalNs.Load() / int64(dispatched))
	}
	return Stats{
		Dispatched:     dispatched,
		Answered:       t.env.answered.Load(),
		Unanswered:     t.env.unanswered.Load(),
		ListenersRun:   t.env.listenersRun.Load(),
		ListenerErrors: t.env.listenerErrors.Load(),
		ListenerPanics: t.env.listenerPanics.Load(),
		AvgDispatch:    avg,
		Pool:           t.env.pool.Stats(),
	}
}
