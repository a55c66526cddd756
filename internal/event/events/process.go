package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Background process event types.
const (
	// TypeProcessLoadingStart announces the start of a long running task.
	TypeProcessLoadingStart event.Type = "processloadingstart"

	// TypeProcessLoadingStop announces the end of a long running task.
	TypeProcessLoadingStop event.Type = "processloadingstop"

	// TypeProcessLoadingError announces a failed long running task.
	TypeProcessLoadingError event.Type = "processloadingerror"
)

// ProcessLoadingStartDetail is the detail of Process.loadingStart.
type ProcessLoadingStartDetail struct {
	// ID identifies the task.
	ID string `json:"id"`

	// Message describes the task.
	Message string `json:"message"`

	// Indeterminate is set when progress cannot be measured.
	Indeterminate bool `json:"indeterminate"`
}

// NewProcessLoadingStartEvent creates the Process.loadingStart notification.
func NewProcessLoadingStartEvent(id, message string, indeterminate bool, opts ...event.Option) *event.Notification[ProcessLoadingStartDetail] {
	detail := ProcessLoadingStartDetail{
		ID:            id,
		Message:       message,
		Indeterminate: indeterminate,
	}
	return event.NewNotification(TypeProcessLoadingStart, detail, opts...)
}

// ProcessLoadingStart announces that the task id started.
func ProcessLoadingStart(ctx context.Context, d event.Dispatcher, id, message string, indeterminate bool) error {
	return event.Notify(ctx, d, NewProcessLoadingStartEvent(id, message, indeterminate))
}

// ProcessLoadingStopDetail is the detail of Process.loadingStop.
type ProcessLoadingStopDetail struct {
	// ID identifies the task.
	ID string `json:"id"`
}

// NewProcessLoadingStopEvent creates the Process.loadingStop notification.
func NewProcessLoadingStopEvent(id string, opts ...event.Option) *event.Notification[ProcessLoadingStopDetail] {
	return event.NewNotification(TypeProcessLoadingStop, ProcessLoadingStopDetail{ID: id}, opts...)
}

// ProcessLoadingStop announces that the task id finished.
func ProcessLoadingStop(ctx context.Context, d event.Dispatcher, id string) error {
	return event.Notify(ctx, d, NewProcessLoadingStopEvent(id))
}

// ProcessLoadingErrorDetail is the detail of Process.loadingError.
type ProcessLoadingErrorDetail struct {
	// ID identifies the task.
	ID string `json:"id"`

	// Message is shown to the user.
	Message string `json:"message"`

	// Error is the error text.
	Error string `json:"error"`
}

// NewProcessLoadingErrorEvent creates the Process.loadingError notification.
func NewProcessLoadingErrorEvent(id, message, errText string, opts ...event.Option) *event.Notification[ProcessLoadingErrorDetail] {
	detail := ProcessLoadingErrorDetail{
		ID:      id,
		Message: message,
		Error:   errText,
	}
	return event.NewNotification(TypeProcessLoadingError, detail, opts...)
}

// ProcessLoadingError announces that the task id failed.
func ProcessLoadingError(ctx context.Context, d event.Dispatcher, id, message, errText string) error {
	return event.Notify(ctx, d, NewProcessLoadingErrorEvent(id, message, errText))
}

func processEntries() []Entry {
	return []Entry{
		notificationEntry[ProcessLoadingStartDetail]("Process.loadingStart", TypeProcessLoadingStart),
		notificationEntry[ProcessLoadingStopDetail]("Process.loadingStop", TypeProcessLoadingStop),
		notificationEntry[ProcessLoadingErrorDetail]("Process.loadingError", TypeProcessLoadingError),
	}
}
