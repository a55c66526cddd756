package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/arcevents/internal/event"
	"github.com/dshills/arcevents/internal/event/events"
)

// Source is the metadata source of events dispatched by scripts.
const Source = "lua"

// Runtime binds a Lua state to an event target. The state is owned by one
// goroutine; scripts and listeners run there in turn.
type Runtime struct {
	exec    *executor
	target  *event.Target
	catalog *events.Catalog
	logger  *slog.Logger

	regMu sync.Mutex
	regs  map[uint64]*event.Registration

	closed atomic.Bool
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithCatalog sets the catalog used to resolve types. Defaults to
// events.Default.
func WithCatalog(c *events.Catalog) Option {
	return func(r *Runtime) {
		if c != nil {
			r.catalog = c
		}
	}
}

// WithLogger sets the logger for print and arc.log. Defaults to the
// target's logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runtime) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a runtime with the base, table, string and math libraries
// and the arc module installed.
func New(target *event.Target, opts ...Option) (*Runtime, error) {
	if target == nil {
		return nil, ErrNilTarget
	}

	r := &Runtime{
		target: target,
		logger: target.Logger(),
		regs:   make(map[uint64]*event.Registration),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.catalog == nil {
		r.catalog = events.Default()
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// no io, os, debug or package; loaders that reach the file system go too
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetGlobal("print", L.NewFunction(r.print))
	L.SetGlobal("arc", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"on":       r.on,
		"off":      r.off,
		"dispatch": r.dispatch,
		"types":    r.types,
		"lookup":   r.lookup,
		"log":      r.log,
	}))

	r.exec = newExecutor(L, 0)
	return r, nil
}

// DoFile runs a Lua file.
func (r *Runtime) DoFile(ctx context.Context, path string) error {
	err := r.exec.do(ctx, func(L *lua.LState) error {
		return L.DoFile(path)
	})
	if err != nil {
		return fmt.Errorf("run %s: %w", path, err)
	}
	r.logger.Debug("script loaded", "path", path)
	return nil
}

// DoString runs a chunk of Lua code.
func (r *Runtime) DoString(ctx context.Context, code string) error {
	return r.exec.do(ctx, func(L *lua.LState) error {
		return L.DoString(code)
	})
}

// ListenerCount returns the number of script listeners still attached.
func (r *Runtime) ListenerCount() int {
	r.regMu.Lock()
	defer r.regMu.Unlock()
	for id, reg := range r.regs {
		if !reg.Active() {
			delete(r.regs, id)
		}
	}
	return len(r.regs)
}

// Close removes every script listener and closes the Lua state. It must
// not be called from a script listener.
func (r *Runtime) Close() error {
	if r.closed.Swap(true) {
		return nil
	}

	r.regMu.Lock()
	for id, reg := range r.regs {
		reg.Remove()
		delete(r.regs, id)
	}
	r.regMu.Unlock()

	r.exec.close()
	return nil
}

// listener adapts a Lua function to an event listener.
func (r *Runtime) listener(fn *lua.LFunction) event.ListenerFunc {
	return func(ctx context.Context, e event.Event) error {
		return r.exec.do(ctx, func(L *lua.LState) error {
			return r.call(L, fn, e)
		})
	}
}

func (r *Runtime) call(L *lua.LState, fn *lua.LFunction, e event.Event) error {
	detail, err := toLua(L, e.Payload())
	if err != nil {
		return fmt.Errorf("convert %s detail: %w", e.EventType(), err)
	}

	top := L.GetTop()
	L.Push(fn)
	L.Push(detail)
	L.Push(r.eventTable(L, e))
	if err := L.PCall(2, 1, nil); err != nil {
		L.SetTop(top)
		return fmt.Errorf("lua listener for %s: %w", e.EventType(), err)
	}
	ret := L.Get(-1)
	L.SetTop(top)

	if ret == lua.LNil {
		return nil
	}
	a, ok := e.(event.Answerable)
	if !ok {
		return nil
	}
	v := toGo(ret)
	if entry, ok := r.catalog.ByType(e.EventType()); ok {
		v = conform(v, entry.ResultType())
	}
	return a.RespondAny(v)
}

// eventTable describes e to a listener.
func (r *Runtime) eventTable(L *lua.LState, e event.Event) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("type", lua.LString(e.EventType()))
	t.RawSetString("kind", lua.LString(e.EventKind().String()))
	t.RawSetString("id", lua.LString(e.EventMetadata().ID))
	if entry, ok := r.catalog.ByType(e.EventType()); ok {
		t.RawSetString("path", lua.LString(entry.Path))
	}

	t.RawSetString("stop", L.NewFunction(func(*lua.LState) int {
		e.StopPropagation()
		return 0
	}))
	t.RawSetString("stopImmediate", L.NewFunction(func(*lua.LState) int {
		e.StopImmediatePropagation()
		return 0
	}))
	t.RawSetString("preventDefault", L.NewFunction(func(*lua.LState) int {
		e.PreventDefault()
		return 0
	}))
	t.RawSetString("reject", L.NewFunction(func(L *lua.LState) int {
		msg := L.OptString(1, "rejected by script")
		a, ok := e.(event.Answerable)
		if !ok {
			L.Push(lua.LFalse)
			return 1
		}
		L.Push(lua.LBool(a.Reject(errors.New(msg)) == nil))
		return 1
	}))
	return t
}
