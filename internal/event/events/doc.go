// Package events is the catalog of application events.
//
// Every operation has a literal event type, a detail struct, a constructor
// and a dispatch helper. The files are grouped by domain:
//
//	app.go       App.*                appversioninfo, appcommand, ...
//	config.go    Config.*             arcconfigread, arcconfigupdate, ...
//	cookie.go    Cookie.*             sessioncookielistall, ...
//	project.go   Model.Project.*      projectmodelread, projectmoveto, ...
//	transport.go Transport.*          apirequest, apitransport, apiabort, ...
//
// # Naming
//
// For the Config.update operation the package declares:
//
//	TypeConfigUpdate          the event type "arcconfigupdate"
//	ConfigUpdateDetail        the detail, {"key": ..., "value": ...}
//	NewConfigUpdateEvent      builds the event without dispatching it
//	ConfigUpdate              dispatches it and waits for the answer
//
// Operations under a State namespace are notifications: they announce
// something that already happened and nobody answers them. Everything
// else is a request.
//
// # Usage
//
// The component that owns a service answers its requests:
//
//	target.On(events.TypeConfigRead, func(ctx context.Context, e event.Event) error {
//	    req := e.(*event.Request[events.ConfigReadDetail, any])
//	    return req.Respond(settings[req.Detail.Key])
//	})
//
// Any other component asks for it:
//
//	v, err := events.ConfigRead(ctx, target, "request.timeout")
//
// When nothing answers, v is nil and err is nil.
//
// # Catalog
//
// Default returns the Catalog of every operation. It maps namespace paths
// to event types, answers wildcard queries and builds events from a JSON
// detail for bridges that only know the type string:
//
//	catalog := events.Default()
//	t, _ := catalog.Lookup("Config.State.update") // "arcconfigstateupdate"
//	entries := catalog.Match("Model.*.State.**")
//
// Detail fields are never omitted from the JSON form. An argument left
// out by the caller encodes as its zero value, or null for pointers,
// slices, maps and any.
package events
