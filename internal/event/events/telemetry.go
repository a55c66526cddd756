package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Telemetry event types.
const (
	// TypeTelemetryView records a screen view.
	TypeTelemetryView event.Type = "telemetryscreenview"

	// TypeTelemetryEvent records a user interaction.
	TypeTelemetryEvent event.Type = "telemetryevent"

	// TypeTelemetryException records an exception.
	TypeTelemetryException event.Type = "telemetryexception"

	// TypeTelemetrySocial records a social interaction.
	TypeTelemetrySocial event.Type = "telemetrysocial"

	// TypeTelemetryTiming records a timing.
	TypeTelemetryTiming event.Type = "telemetrytiming"
)

// TelemetryViewDetail is the detail of Telemetry.view.
type TelemetryViewDetail struct {
	ScreenName       string             `json:"screenName"`
	CustomDimensions map[string]string  `json:"customDimensions"`
	CustomMetrics    map[string]float64 `json:"customMetrics"`
}

// NewTelemetryViewEvent creates the Telemetry.view notification.
func NewTelemetryViewEvent(screenName string, customDimensions map[string]string, customMetrics map[string]float64, opts ...event.Option) *event.Notification[TelemetryViewDetail] {
	detail := TelemetryViewDetail{
		ScreenName:       screenName,
		CustomDimensions: customDimensions,
		CustomMetrics:    customMetrics,
	}
	return event.NewNotification(TypeTelemetryView, detail, opts...)
}

// TelemetryView records a view of screenName.
func TelemetryView(ctx context.Context, d event.Dispatcher, screenName string, customDimensions map[string]string, customMetrics map[string]float64) error {
	return event.Notify(ctx, d, NewTelemetryViewEvent(screenName, customDimensions, customMetrics))
}

// TelemetryEventDetail is the detail of Telemetry.event.
type TelemetryEventDetail struct {
	Category string  `json:"category"`
	Action   string  `json:"action"`
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
}

// NewTelemetryEventEvent creates the Telemetry.event notification.
func NewTelemetryEventEvent(category, action, label string, value float64, opts ...event.Option) *event.Notification[TelemetryEventDetail] {
	detail := TelemetryEventDetail{
		Category: category,
		Action:   action,
		Label:    label,
		Value:    value,
	}
	return event.NewNotification(TypeTelemetryEvent, detail, opts...)
}

// TelemetryEvent records an interaction.
func TelemetryEvent(ctx context.Context, d event.Dispatcher, category, action, label string, value float64) error {
	return event.Notify(ctx, d, NewTelemetryEventEvent(category, action, label, value))
}

// TelemetryExceptionDetail is the detail of Telemetry.exception.
type TelemetryExceptionDetail struct {
	Description string `json:"description"`
	Fatal       bool   `json:"fatal"`
}

// NewTelemetryExceptionEvent creates the Telemetry.exception notification.
func NewTelemetryExceptionEvent(description string, fatal bool, opts ...event.Option) *event.Notification[TelemetryExceptionDetail] {
	return event.NewNotification(TypeTelemetryException, TelemetryExceptionDetail{Description: description, Fatal: fatal}, opts...)
}

// TelemetryException records an exception.
func TelemetryException(ctx context.Context, d event.Dispatcher, description string, fatal bool) error {
	return event.Notify(ctx, d, NewTelemetryExceptionEvent(description, fatal))
}

// TelemetrySocialDetail is the detail of Telemetry.social.
type TelemetrySocialDetail struct {
	Network string `json:"network"`
	Action  string `json:"action"`
	Target  string `json:"target"`
}

// NewTelemetrySocialEvent creates the Telemetry.social notification.
func NewTelemetrySocialEvent(network, action, target string, opts ...event.Option) *event.Notification[TelemetrySocialDetail] {
	detail := TelemetrySocialDetail{
		Network: network,
		Action:  action,
		Target:  target,
	}
	return event.NewNotification(TypeTelemetrySocial, detail, opts...)
}

// TelemetrySocial records a social interaction.
func TelemetrySocial(ctx context.Context, d event.Dispatcher, network, action, target string) error {
	return event.Notify(ctx, d, NewTelemetrySocialEvent(network, action, target))
}

// TelemetryTimingDetail is the detail of Telemetry.timing.
type TelemetryTimingDetail struct {
	Category string  `json:"category"`
	Variable string  `json:"variable"`
	Value    float64 `json:"value"`
	Label    string  `json:"label"`
}

// NewTelemetryTimingEvent creates the Telemetry.timing notification.
func NewTelemetryTimingEvent(category, variable string, value float64, label string, opts ...event.Option) *event.Notification[TelemetryTimingDetail] {
	detail := TelemetryTimingDetail{
		Category: category,
		Variable: variable,
		Value:    value,
		Label:    label,
	}
	return event.NewNotification(TypeTelemetryTiming, detail, opts...)
}

// TelemetryTiming records how long something took, in milliseconds.
func TelemetryTiming(ctx context.Context, d event.Dispatcher, category, variable string, value float64, label string) error {
	return event.Notify(ctx, d, NewTelemetryTimingEvent(category, variable, value, label))
}

func telemetryEntries() []Entry {
	return []Entry{
		notificationEntry[TelemetryViewDetail]("Telemetry.view", TypeTelemetryView),
		notificationEntry[TelemetryEventDetail]("Telemetry.event", TypeTelemetryEvent),
		notificationEntry[TelemetryExceptionDetail]("Telemetry.exception", TypeTelemetryException),
		notificationEntry[TelemetrySocialDetail]("Telemetry.social", TypeTelemetrySocial),
		notificationEntry[TelemetryTimingDetail]("Telemetry.timing", TypeTelemetryTiming),
	}
}
