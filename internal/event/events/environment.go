package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Environment model event types.
const (
	// TypeEnvironmentRead reads an environment by name.
	TypeEnvironmentRead event.Type = "environmentread"

	// TypeEnvironmentUpdate creates or updates an environment.
	TypeEnvironmentUpdate event.Type = "environmentupdate"

	// TypeEnvironmentDelete deletes an environment and its variables.
	TypeEnvironmentDelete event.Type = "environmentdelete"

	// TypeEnvironmentList lists environments.
	TypeEnvironmentList event.Type = "environmentlist"

	// TypeEnvironmentCurrent reads the selected environment and its variables.
	TypeEnvironmentCurrent event.Type = "environmentcurrent"

	// TypeEnvironmentSelect selects an environment.
	TypeEnvironmentSelect event.Type = "environmentselect"

	// TypeEnvironmentStateUpdate announces a stored environment.
	TypeEnvironmentStateUpdate event.Type = "environmentstateupdate"

	// TypeEnvironmentStateDelete announces a removed environment.
	TypeEnvironmentStateDelete event.Type = "environmentstatedelete"

	// TypeEnvironmentStateSelect announces the newly selected environment.
	TypeEnvironmentStateSelect event.Type = "environmentstateselect"
)

// EnvironmentReadDetail is the detail of Model.Environment.read.
type EnvironmentReadDetail struct {
	Name string `json:"name"`
}

// NewEnvironmentReadEvent creates the Model.Environment.read request.
func NewEnvironmentReadEvent(name string, opts ...event.Option) *event.Request[EnvironmentReadDetail, *Environment] {
	return event.NewRequest[EnvironmentReadDetail, *Environment](TypeEnvironmentRead, EnvironmentReadDetail{Name: name}, opts...)
}

// EnvironmentRead returns the environment called name.
func EnvironmentRead(ctx context.Context, d event.Dispatcher, name string) (*Environment, error) {
	return event.Call(ctx, d, NewEnvironmentReadEvent(name))
}

// EnvironmentUpdateDetail is the detail of Model.Environment.update.
type EnvironmentUpdateDetail struct {
	Environment Environment `json:"environment"`
}

// NewEnvironmentUpdateEvent creates the Model.Environment.update request.
func NewEnvironmentUpdateEvent(environment Environment, opts ...event.Option) *event.Request[EnvironmentUpdateDetail, *ChangeRecord[Environment]] {
	return event.NewRequest[EnvironmentUpdateDetail, *ChangeRecord[Environment]](TypeEnvironmentUpdate, EnvironmentUpdateDetail{Environment: environment}, opts...)
}

// EnvironmentUpdate stores environment.
func EnvironmentUpdate(ctx context.Context, d event.Dispatcher, environment Environment) (*ChangeRecord[Environment], error) {
	return event.Call(ctx, d, NewEnvironmentUpdateEvent(environment))
}

// EnvironmentDeleteDetail is the detail of Model.Environment.delete.
type EnvironmentDeleteDetail struct {
	ID string `json:"id"`
}

// NewEnvironmentDeleteEvent creates the Model.Environment.delete request.
func NewEnvironmentDeleteEvent(id string, opts ...event.Option) *event.Request[EnvironmentDeleteDetail, *DeletedRecord] {
	return event.NewRequest[EnvironmentDeleteDetail, *DeletedRecord](TypeEnvironmentDelete, EnvironmentDeleteDetail{ID: id}, opts...)
}

// EnvironmentDelete removes the environment with the given id.
func EnvironmentDelete(ctx context.Context, d event.Dispatcher, id string) (*DeletedRecord, error) {
	return event.Call(ctx, d, NewEnvironmentDeleteEvent(id))
}

// EnvironmentListDetail is the detail of Model.Environment.list.
type EnvironmentListDetail struct {
	Limit         int    `json:"limit"`
	NextPageToken string `json:"nextPageToken"`
}

// NewEnvironmentListEvent creates the Model.Environment.list request.
func NewEnvironmentListEvent(limit int, nextPageToken string, opts ...event.Option) *event.Request[EnvironmentListDetail, *ListResponse[Environment]] {
	return event.NewRequest[EnvironmentListDetail, *ListResponse[Environment]](TypeEnvironmentList, EnvironmentListDetail{Limit: limit, NextPageToken: nextPageToken}, opts...)
}

// EnvironmentList returns a page of environments.
func EnvironmentList(ctx context.Context, d event.Dispatcher, limit int, nextPageToken string) (*ListResponse[Environment], error) {
	return event.Call(ctx, d, NewEnvironmentListEvent(limit, nextPageToken))
}

// NewEnvironmentCurrentEvent creates the Model.Environment.current request.
func NewEnvironmentCurrentEvent(opts ...event.Option) *event.Request[Empty, *EnvironmentState] {
	return event.NewRequest[Empty, *EnvironmentState](TypeEnvironmentCurrent, Empty{}, opts...)
}

// EnvironmentCurrent returns the selected environment and its variables.
func EnvironmentCurrent(ctx context.Context, d event.Dispatcher) (*EnvironmentState, error) {
	return event.Call(ctx, d, NewEnvironmentCurrentEvent())
}

// EnvironmentSelectDetail is the detail of Model.Environment.select.
type EnvironmentSelectDetail struct {
	ID string `json:"id"`
}

// NewEnvironmentSelectEvent creates the Model.Environment.select request.
func NewEnvironmentSelectEvent(id string, opts ...event.Option) *event.Request[EnvironmentSelectDetail, event.Void] {
	return event.NewRequest[EnvironmentSelectDetail, event.Void](TypeEnvironmentSelect, EnvironmentSelectDetail{ID: id}, opts...)
}

// EnvironmentSelect selects the environment with the given id. An empty id
// selects the default environment.
func EnvironmentSelect(ctx context.Context, d event.Dispatcher, id string) error {
	return event.Perform(ctx, d, NewEnvironmentSelectEvent(id))
}

// EnvironmentStateUpdateDetail is the detail of
// Model.Environment.State.update.
type EnvironmentStateUpdateDetail struct {
	Record ChangeRecord[Environment] `json:"record"`
}

// NewEnvironmentStateUpdateEvent creates the Model.Environment.State.update
// notification.
func NewEnvironmentStateUpdateEvent(record ChangeRecord[Environment], opts ...event.Option) *event.Notification[EnvironmentStateUpdateDetail] {
	return event.NewNotification(TypeEnvironmentStateUpdate, EnvironmentStateUpdateDetail{Record: record}, opts...)
}

// EnvironmentStateUpdate announces that an environment was stored.
func EnvironmentStateUpdate(ctx context.Context, d event.Dispatcher, record ChangeRecord[Environment]) error {
	return event.Notify(ctx, d, NewEnvironmentStateUpdateEvent(record))
}

// EnvironmentStateDeleteDetail is the detail of
// Model.Environment.State.delete.
type EnvironmentStateDeleteDetail struct {
	Record DeletedRecord `json:"record"`
}

// NewEnvironmentStateDeleteEvent creates the Model.Environment.State.delete
// notification.
func NewEnvironmentStateDeleteEvent(record DeletedRecord, opts ...event.Option) *event.Notification[EnvironmentStateDeleteDetail] {
	return event.NewNotification(TypeEnvironmentStateDelete, EnvironmentStateDeleteDetail{Record: record}, opts...)
}

// EnvironmentStateDelete announces that an environment was removed.
func EnvironmentStateDelete(ctx context.Context, d event.Dispatcher, record DeletedRecord) error {
	return event.Notify(ctx, d, NewEnvironmentStateDeleteEvent(record))
}

// EnvironmentStateSelectDetail is the detail of
// Model.Environment.State.select.
type EnvironmentStateSelectDetail struct {
	Environment *Environment `json:"environment"`
	Variables   []Variable   `json:"variables"`
}

// NewEnvironmentStateSelectEvent creates the Model.Environment.State.select
// notification.
func NewEnvironmentStateSelectEvent(environment *Environment, variables []Variable, opts ...event.Option) *event.Notification[EnvironmentStateSelectDetail] {
	return event.NewNotification(TypeEnvironmentStateSelect, EnvironmentStateSelectDetail{Environment: environment, Variables: variables}, opts...)
}

// EnvironmentStateSelect announces the selected environment and its
// variables.
func EnvironmentStateSelect(ctx context.Context, d event.Dispatcher, environment *Environment, variables []Variable) error {
	return event.Notify(ctx, d, NewEnvironmentStateSelectEvent(environment, variables))
}

func environmentEntries() []Entry {
	return []Entry{
		requestEntry[EnvironmentReadDetail, *Environment]("Model.Environment.read", TypeEnvironmentRead),
		requestEntry[EnvironmentUpdateDetail, *ChangeRecord[Environment]]("Model.Environment.update", TypeEnvironmentUpdate),
		requestEntry[EnvironmentDeleteDetail, *DeletedRecord]("Model.Environment.delete", TypeEnvironmentDelete),
		requestEntry[EnvironmentListDetail, *ListResponse[Environment]]("Model.Environment.list", TypeEnvironmentList),
		requestEntry[Empty, *EnvironmentState]("Model.Environment.current", TypeEnvironmentCurrent),
		requestEntry[EnvironmentSelectDetail, event.Void]("Model.Environment.select", TypeEnvironmentSelect),
		notificationEntry[EnvironmentStateUpdateDetail]("Model.Environment.State.update", TypeEnvironmentStateUpdate),
		notificationEntry[EnvironmentStateDeleteDetail]("Model.Environment.State.delete", TypeEnvironmentStateDelete),
		notificationEntry[EnvironmentStateSelectDetail]("Model.Environment.State.select", TypeEnvironmentStateSelect),
	}
}
