package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Toast event types.
const (
	// TypeToastShow shows a toast message.
	TypeToastShow event.Type = "toastshow"
)

// ToastShowDetail is the detail of Toast.show.
type ToastShowDetail struct {
	// Message is the text to show.
	Message string `json:"message"`

	// Kind is "info", "warning" or "error".
	Kind string `json:"kind"`

	// Duration is how long the toast stays, in milliseconds. Zero keeps the
	// default.
	Duration int `json:"duration"`
}

// NewToastShowEvent creates the Toast.show notification.
func NewToastShowEvent(message, kind string, duration int, opts ...event.Option) *event.Notification[ToastShowDetail] {
	detail := ToastShowDetail{
		Message:  message,
		Kind:     kind,
		Duration: duration,
	}
	return event.NewNotification(TypeToastShow, detail, opts...)
}

// ToastShow shows message to the user.
func ToastShow(ctx context.Context, d event.Dispatcher, message, kind string, duration int) error {
	return event.Notify(ctx, d, NewToastShowEvent(message, kind, duration))
}

func toastEntries() []Entry {
	return []Entry{
		notificationEntry[ToastShowDetail]("Toast.show", TypeToastShow),
	}
}
