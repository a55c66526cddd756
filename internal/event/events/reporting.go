package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Error reporting event types.
const (
	// TypeReportingError reports an error to the error reporting service.
	TypeReportingError event.Type = "reportingerror"
)

// ReportingErrorDetail is the detail of Reporting.error.
type ReportingErrorDetail struct {
	// Error is the error text.
	Error string `json:"error"`

	// Description explains what the user was doing.
	Description string `json:"description"`

	// Component is the name of the reporting component.
	Component string `json:"component"`
}

// NewReportingErrorEvent creates the Reporting.error notification.
func NewReportingErrorEvent(errText, description, component string, opts ...event.Option) *event.Notification[ReportingErrorDetail] {
	detail := ReportingErrorDetail{
		Error:       errText,
		Description: description,
		Component:   component,
	}
	return event.NewNotification(TypeReportingError, detail, opts...)
}

// ReportingError reports an error.
func ReportingError(ctx context.Context, d event.Dispatcher, errText, description, component string) error {
	return event.Notify(ctx, d, NewReportingErrorEvent(errText, description, component))
}

func reportingEntries() []Entry {
	return []Entry{
		notificationEntry[ReportingErrorDetail]("Reporting.error", TypeReportingError),
	}
}
