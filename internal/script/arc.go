package script

import (
	"encoding/json"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/arcevents/internal/event"
	"github.com/dshills/arcevents/internal/event/namespace"
)

// resolve maps a literal type or a namespace path to a catalog type.
func (r *Runtime) resolve(name string) (event.Type, bool) {
	if _, ok := r.catalog.ByType(event.Type(name)); ok {
		return event.Type(name), true
	}
	return r.catalog.Lookup(namespace.Path(name))
}

// on(type, fn [, opts]) -> id
func (r *Runtime) on(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)
	opts := L.OptTable(3, nil)

	typ, ok := r.resolve(name)
	if !ok {
		typ = event.Type(name)
	}

	var listenOpts []event.ListenOption
	if opts != nil {
		if lua.LVAsBool(opts.RawGetString("once")) {
			listenOpts = append(listenOpts, event.Once())
		}
		if lua.LVAsBool(opts.RawGetString("front")) {
			listenOpts = append(listenOpts, event.InFront())
		}
	}

	reg, err := r.target.AddListener(typ, r.listener(fn), listenOpts...)
	if err != nil {
		L.RaiseError("arc.on: %v", err)
		return 0
	}

	r.regMu.Lock()
	r.regs[reg.ID()] = reg
	r.regMu.Unlock()

	L.Push(lua.LNumber(reg.ID()))
	return 1
}

// off(id) -> bool
func (r *Runtime) off(L *lua.LState) int {
	id := uint64(L.CheckNumber(1))

	r.regMu.Lock()
	reg, ok := r.regs[id]
	delete(r.regs, id)
	r.regMu.Unlock()

	L.Push(lua.LBool(ok && reg.Remove()))
	return 1
}

// dispatch(type, detail) -> result | nil, err
//
// Notifications return true. Requests return the answer, or nil when
// nobody answered. While the event is delivered the goroutine owning the
// state keeps serving queued calls, so Lua listeners it reaches run in turn.
func (r *Runtime) dispatch(L *lua.LState) int {
	name := L.CheckString(1)
	detail := toGo(L.Get(2))

	ev, err := r.newEvent(name, detail)
	if err != nil {
		return pushError(L, err)
	}

	ctx := r.exec.context()
	var v any
	r.exec.wait(func() {
		if err = r.target.Dispatch(ctx, ev); err != nil {
			return
		}
		if a, ok := ev.(event.Answerable); ok {
			v, err = a.AwaitAny(ctx)
		}
	})
	if err != nil {
		return pushError(L, err)
	}
	if _, ok := ev.(event.Answerable); !ok {
		L.Push(lua.LTrue)
		return 1
	}
	lv, err := toLua(L, v)
	if err != nil {
		return pushError(L, err)
	}
	L.Push(lv)
	return 1
}

func (r *Runtime) newEvent(name string, detail any) (event.Event, error) {
	if typ, ok := r.resolve(name); ok {
		if entry, ok := r.catalog.ByType(typ); ok {
			detail = conform(detail, entry.DetailType())
		}
		data, err := json.Marshal(detail)
		if err != nil {
			return nil, err
		}
		return r.catalog.New(typ, data, event.WithSource(Source))
	}

	m, _ := detail.(map[string]any)
	return event.NewNotification(event.Type(name), m, event.WithSource(Source)), nil
}

func pushError(L *lua.LState, err error) int {
	L.Push(lua.LNil)
	L.Push(lua.LString(err.Error()))
	return 2
}

// types([pattern]) -> {type, ...}
func (r *Runtime) types(L *lua.LState) int {
	pattern := L.OptString(1, namespace.WildcardMulti)

	t := L.NewTable()
	for i, entry := range r.catalog.Match(namespace.Path(pattern)) {
		t.RawSetInt(i+1, lua.LString(entry.Type))
	}
	L.Push(t)
	return 1
}

// lookup(path) -> type | nil
func (r *Runtime) lookup(L *lua.LState) int {
	typ, ok := r.catalog.Lookup(namespace.Path(L.CheckString(1)))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(typ))
	return 1
}

// log(level, msg)
func (r *Runtime) log(L *lua.LState) int {
	level := L.CheckString(1)
	msg := L.CheckString(2)

	switch strings.ToLower(level) {
	case "debug":
		r.logger.Debug(msg, "source", Source)
	case "warn", "warning":
		r.logger.Warn(msg, "source", Source)
	case "error":
		r.logger.Error(msg, "source", Source)
	default:
		r.logger.Info(msg, "source", Source)
	}
	return 0
}

func (r *Runtime) print(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, n)
	for i := 1; i <= n; i++ {
		parts[i-1] = L.ToStringMeta(L.Get(i)).String()
	}
	r.logger.Info(strings.Join(parts, "\t"), "source", Source)
	return 0
}
