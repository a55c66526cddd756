package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Application configuration event types.
const (
	// TypeConfigReadAll reads the whole application configuration.
	TypeConfigReadAll event.Type = "arcconfigreadall"

	// TypeConfigRead reads a single configuration value.
	TypeConfigRead event.Type = "arcconfigread"

	// TypeConfigUpdate updates a single configuration value.
	TypeConfigUpdate event.Type = "arcconfigupdate"

	// TypeConfigStateUpdate announces that a configuration value changed.
	TypeConfigStateUpdate event.Type = "arcconfigstateupdate"
)

// NewConfigReadAllEvent creates the Config.readAll request.
func NewConfigReadAllEvent(opts ...event.Option) *event.Request[Empty, map[string]any] {
	return event.NewRequest[Empty, map[string]any](TypeConfigReadAll, Empty{}, opts...)
}

// ConfigReadAll returns the whole application configuration.
func ConfigReadAll(ctx context.Context, d event.Dispatcher) (map[string]any, error) {
	return event.Call(ctx, d, NewConfigReadAllEvent())
}

// ConfigReadDetail is the detail of Config.read.
type ConfigReadDetail struct {
	// Key is the dot separated path of the value.
	Key string `json:"key"`
}

// NewConfigReadEvent creates the Config.read request.
func NewConfigReadEvent(key string, opts ...event.Option) *event.Request[ConfigReadDetail, any] {
	return event.NewRequest[ConfigReadDetail, any](TypeConfigRead, ConfigReadDetail{Key: key}, opts...)
}

// ConfigRead returns the configuration value stored under key.
func ConfigRead(ctx context.Context, d event.Dispatcher, key string) (any, error) {
	return event.Call(ctx, d, NewConfigReadEvent(key))
}

// ConfigUpdateDetail is the detail of Config.update.
type ConfigUpdateDetail struct {
	// Key is the dot separated path of the value.
	Key string `json:"key"`

	// Value is the new value.
	Value any `json:"value"`
}

// NewConfigUpdateEvent creates the Config.update request.
func NewConfigUpdateEvent(key string, value any, opts ...event.Option) *event.Request[ConfigUpdateDetail, event.Void] {
	return event.NewRequest[ConfigUpdateDetail, event.Void](TypeConfigUpdate, ConfigUpdateDetail{Key: key, Value: value}, opts...)
}

// ConfigUpdate stores value under key.
func ConfigUpdate(ctx context.Context, d event.Dispatcher, key string, value any) error {
	return event.Perform(ctx, d, NewConfigUpdateEvent(key, value))
}

// ConfigStateUpdateDetail is the detail of Config.State.update.
type ConfigStateUpdateDetail struct {
	// Key is the dot separated path of the value.
	Key string `json:"key"`

	// Value is the new value.
	Value any `json:"value"`
}

// NewConfigStateUpdateEvent creates the Config.State.update notification.
func NewConfigStateUpdateEvent(key string, value any, opts ...event.Option) *event.Notification[ConfigStateUpdateDetail] {
	return event.NewNotification(TypeConfigStateUpdate, ConfigStateUpdateDetail{Key: key, Value: value}, opts...)
}

// ConfigStateUpdate announces that the value under key changed.
func ConfigStateUpdate(ctx context.Context, d event.Dispatcher, key string, value any) error {
	return event.Notify(ctx, d, NewConfigStateUpdateEvent(key, value))
}

func configEntries() []Entry {
	return []Entry{
		requestEntry[Empty, map[string]any]("Config.readAll", TypeConfigReadAll),
		requestEntry[ConfigReadDetail, any]("Config.read", TypeConfigRead),
		requestEntry[ConfigUpdateDetail, event.Void]("Config.update", TypeConfigUpdate),
		notificationEntry[ConfigStateUpdateDetail]("Config.State.update", TypeConfigStateUpdate),
	}
}
