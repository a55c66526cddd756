// Package event provides the typed event runtime for arcevents.
//
// Components talk to each other by dispatching events on a Target instead
// of calling each other. The component that fulfils a request registers a
// listener for its type; the component that needs the result dispatches
// the request and reads the answer the listener left behind.
//
// # Event Kinds
//
// There are two kinds of events:
//
//	Request[D, R]     cancelable; a listener answers it with a value of R
//	Notification[D]   announces that something happened; nobody answers
//
// Both kinds bubble and are composed. A listener takes a request by calling
// one of its Respond methods, which also prevents the default action:
//
//	target.On(events.TypeConfigRead, func(ctx context.Context, e event.Event) error {
//	    req := e.(*event.Request[events.ConfigReadDetail, any])
//	    return req.Respond(store.Get(req.Detail.Key))
//	})
//
// # Dispatch
//
// Dispatch is synchronous. Listeners on the target run in registration
// order, then the event visits each ancestor target. StopPropagation ends
// the walk after the current target; StopImmediatePropagation also skips
// the remaining listeners of the current target. A shadow root keeps
// events that are not composed from reaching its ancestors.
//
// Listener errors and panics are recovered, logged and counted. They never
// reach the dispatching caller.
//
// # Answers
//
// Call dispatches a request and waits for its answer:
//
//	v, err := event.Call(ctx, target, req)
//
// When no listener answered, v is the zero value and err is nil. When a
// listener rejected the request, err is the rejection error unchanged.
//
// An answer may be deferred: RespondPending hands over a Pending settled
// later, and RespondFunc computes the answer on the worker pool of the
// target. Call waits for either with ctx.
//
// # Responder Policy
//
// A target decides what happens when a second listener answers the same
// request:
//
//	FirstResponder    the first answer wins (default)
//	LastResponder     every answer replaces the previous one
//	SingleResponder   the second answer fails the dispatch
//
// # Subpackages
//
//   - dispatch: panic-safe task executor and bounded worker pool
//   - namespace: dot separated paths and a freezable tree with wildcard
//     queries
//   - events: the event catalog, one file per domain
//   - codec: JSON envelope for exchanging events with other runtimes
package event
