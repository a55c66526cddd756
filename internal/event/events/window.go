package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Application window event types.
const (
	// TypeWindowOpen opens a new application window.
	TypeWindowOpen event.Type = "arcwindowopen"

	// TypeWindowStateFocused announces a focused window.
	TypeWindowStateFocused event.Type = "arcwindowstatefocused"
)

// WindowOpenDetail is the detail of Window.open.
type WindowOpenDetail struct {
	// Options configure the window.
	Options WindowOptions `json:"options"`
}

// NewWindowOpenEvent creates the Window.open request.
func NewWindowOpenEvent(options WindowOptions, opts ...event.Option) *event.Request[WindowOpenDetail, event.Void] {
	return event.NewRequest[WindowOpenDetail, event.Void](TypeWindowOpen, WindowOpenDetail{Options: options}, opts...)
}

// WindowOpen opens a new application window.
func WindowOpen(ctx context.Context, d event.Dispatcher, options WindowOptions) error {
	return event.Perform(ctx, d, NewWindowOpenEvent(options))
}

// WindowStateFocusedDetail is the detail of Window.State.focused.
type WindowStateFocusedDetail struct {
	// ID is the window id.
	ID int `json:"id"`
}

// NewWindowStateFocusedEvent creates the Window.State.focused notification.
func NewWindowStateFocusedEvent(id int, opts ...event.Option) *event.Notification[WindowStateFocusedDetail] {
	return event.NewNotification(TypeWindowStateFocused, WindowStateFocusedDetail{ID: id}, opts...)
}

// WindowStateFocused announces that the window with the given id got focus.
func WindowStateFocused(ctx context.Context, d event.Dispatcher, id int) error {
	return event.Notify(ctx, d, NewWindowStateFocusedEvent(id))
}

func windowEntries() []Entry {
	return []Entry{
		requestEntry[WindowOpenDetail, event.Void]("Window.open", TypeWindowOpen),
		notificationEntry[WindowStateFocusedDetail]("Window.State.focused", TypeWindowStateFocused),
	}
}
