// Package script runs Lua listeners against an event target.
//
// A Runtime owns one gopher-lua state and exposes the global table "arc":
//
//	arc.on(type, fn [, {once = true, front = true}])  -> id
//	arc.off(id)                                       -> bool
//	arc.dispatch(type, detail)                        -> result | nil, err
//	arc.types([pattern])                              -> {type, ...}
//	arc.lookup(path)                                  -> type | nil
//	arc.log(level, msg)
//
// The type argument of on and dispatch accepts a literal type
// ("arcconfigupdate") or a namespace path ("Config.update"). Types missing
// from the catalog are dispatched as notifications with a table detail.
//
// Listeners are called as fn(detail, ev) where detail is the event detail
// as a table and ev carries type, path, kind and id plus the functions
// stop, stopImmediate, preventDefault and reject(msg). For requests, a
// non-nil return value answers the request:
//
//	arc.on("Config.read", function(detail)
//	  if detail.key == "theme.dark" then return true end
//	end)
//
// The Lua state is not goroutine safe. One goroutine owns it and runs
// scripts and listeners from a queue, whichever goroutine dispatched the
// event. While a script waits in arc.dispatch that goroutine keeps serving
// the queue, so a listener may dispatch to other Lua listeners without
// deadlocking.
package script
