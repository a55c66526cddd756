// Package inspect serves the event catalog over HTTP.
//
// Routes:
//
//	GET  /healthz
//	GET  /v1/types?match=Model.Project.*
//	GET  /v1/types/{path}
//	GET  /v1/namespaces
//	GET  /v1/lookup/{type}
//	POST /v1/dispatch
//
// The dispatch route is only mounted when the handler has a target. It
// accepts an event envelope (see package codec) and answers with the
// result envelope.
package inspect
