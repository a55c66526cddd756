package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Web session event types.
const (
	// TypeSessionOpenURL opens a URL in a session window.
	TypeSessionOpenURL event.Type = "sessionopenurl"

	// TypeSessionOpenWebURL opens a URL in a session browser window.
	TypeSessionOpenWebURL event.Type = "sessionopenweburl"

	// TypeSessionClear clears the web session.
	TypeSessionClear event.Type = "sessionclear"
)

// SessionOpenURLDetail is the detail of Session.openUrl.
type SessionOpenURLDetail struct {
	// URL to open.
	URL string `json:"url"`

	// Purpose tells why the URL is opened.
	Purpose string `json:"purpose"`
}

// NewSessionOpenURLEvent creates the Session.openUrl request.
func NewSessionOpenURLEvent(url, purpose string, opts ...event.Option) *event.Request[SessionOpenURLDetail, event.Void] {
	return event.NewRequest[SessionOpenURLDetail, event.Void](TypeSessionOpenURL, SessionOpenURLDetail{URL: url, Purpose: purpose}, opts...)
}

// SessionOpenURL opens url in a window sharing the web session.
func SessionOpenURL(ctx context.Context, d event.Dispatcher, url, purpose string) error {
	return event.Perform(ctx, d, NewSessionOpenURLEvent(url, purpose))
}

// SessionOpenWebURLDetail is the detail of Session.openWebUrl.
type SessionOpenWebURLDetail struct {
	// URL to open.
	URL string `json:"url"`

	// Purpose tells why the URL is opened.
	Purpose string `json:"purpose"`
}

// NewSessionOpenWebURLEvent creates the Session.openWebUrl request.
func NewSessionOpenWebURLEvent(url, purpose string, opts ...event.Option) *event.Request[SessionOpenWebURLDetail, event.Void] {
	return event.NewRequest[SessionOpenWebURLDetail, event.Void](TypeSessionOpenWebURL, SessionOpenWebURLDetail{URL: url, Purpose: purpose}, opts...)
}

// SessionOpenWebURL opens url in a browser window sharing the web session.
func SessionOpenWebURL(ctx context.Context, d event.Dispatcher, url, purpose string) error {
	return event.Perform(ctx, d, NewSessionOpenWebURLEvent(url, purpose))
}

// NewSessionClearEvent creates the Session.clear request.
func NewSessionClearEvent(opts ...event.Option) *event.Request[Empty, event.Void] {
	return event.NewRequest[Empty, event.Void](TypeSessionClear, Empty{}, opts...)
}

// SessionClear removes the web session data.
func SessionClear(ctx context.Context, d event.Dispatcher) error {
	return event.Perform(ctx, d, NewSessionClearEvent())
}

func sessionEntries() []Entry {
	return []Entry{
		requestEntry[SessionOpenURLDetail, event.Void]("Session.openUrl", TypeSessionOpenURL),
		requestEntry[SessionOpenWebURLDetail, event.Void]("Session.openWebUrl", TypeSessionOpenWebURL),
		requestEntry[Empty, event.Void]("Session.clear", TypeSessionClear),
	}
}
