package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Data model event types.
const (
	// TypeModelDestroy deletes the content of data stores.
	TypeModelDestroy event.Type = "modeldestroy"

	// TypeModelStateDestroyed announces a cleared data store.
	TypeModelStateDestroyed event.Type = "modelstatedestroyed"
)

// ModelDestroyDetail is the detail of Model.destroy.
type ModelDestroyDetail struct {
	// Stores are the names of the stores to clear.
	Stores []string `json:"stores"`
}

// NewModelDestroyEvent creates the Model.destroy request.
func NewModelDestroyEvent(stores []string, opts ...event.Option) *event.Request[ModelDestroyDetail, event.Void] {
	return event.NewRequest[ModelDestroyDetail, event.Void](TypeModelDestroy, ModelDestroyDetail{Stores: stores}, opts...)
}

// ModelDestroy removes every entry of the given stores, e.g. "saved" or
// "all".
func ModelDestroy(ctx context.Context, d event.Dispatcher, stores []string) error {
	return event.Perform(ctx, d, NewModelDestroyEvent(stores))
}

// ModelStateDestroyedDetail is the detail of Model.State.destroyed.
type ModelStateDestroyedDetail struct {
	// Store is the name of the cleared store.
	Store string `json:"store"`
}

// NewModelStateDestroyedEvent creates the Model.State.destroyed
// notification.
func NewModelStateDestroyedEvent(store string, opts ...event.Option) *event.Notification[ModelStateDestroyedDetail] {
	return event.NewNotification(TypeModelStateDestroyed, ModelStateDestroyedDetail{Store: store}, opts...)
}

// ModelStateDestroyed announces that store was cleared.
func ModelStateDestroyed(ctx context.Context, d event.Dispatcher, store string) error {
	return event.Notify(ctx, d, NewModelStateDestroyedEvent(store))
}

func modelEntries() []Entry {
	return []Entry{
		requestEntry[ModelDestroyDetail, event.Void]("Model.destroy", TypeModelDestroy),
		notificationEntry[ModelStateDestroyedDetail]("Model.State.destroyed", TypeModelStateDestroyed),
	}
}
