package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Variable model event types.
const (
	// TypeVariableUpdate creates or updates a variable.
	TypeVariableUpdate event.Type = "variableupdate"

	// TypeVariableDelete deletes a variable.
	TypeVariableDelete event.Type = "variabledelete"

	// TypeVariableList lists the variables of an environment.
	TypeVariableList event.Type = "variablelist"

	// TypeVariableSet sets a variable in the selected environment.
	TypeVariableSet event.Type = "variableset"

	// TypeVariableStateUpdate announces a stored variable.
	TypeVariableStateUpdate event.Type = "variablestateupdate"

	// TypeVariableStateDelete announces a removed variable.
	TypeVariableStateDelete event.Type = "variablestatedelete"
)

// VariableUpdateDetail is the detail of Model.Variable.update.
type VariableUpdateDetail struct {
	// Variable is the variable to store.
	Variable Variable `json:"variable"`
}

// NewVariableUpdateEvent creates the Model.Variable.update request.
func NewVariableUpdateEvent(variable Variable, opts ...event.Option) *event.Request[VariableUpdateDetail, *ChangeRecord[Variable]] {
	return event.NewRequest[VariableUpdateDetail, *ChangeRecord[Variable]](TypeVariableUpdate, VariableUpdateDetail{Variable: variable}, opts...)
}

// VariableUpdate stores variable.
func VariableUpdate(ctx context.Context, d event.Dispatcher, variable Variable) (*ChangeRecord[Variable], error) {
	return event.Call(ctx, d, NewVariableUpdateEvent(variable))
}

// VariableDeleteDetail is the detail of Model.Variable.delete.
type VariableDeleteDetail struct {
	// ID of the variable.
	ID string `json:"id"`
}

// NewVariableDeleteEvent creates the Model.Variable.delete request.
func NewVariableDeleteEvent(id string, opts ...event.Option) *event.Request[VariableDeleteDetail, *DeletedRecord] {
	return event.NewRequest[VariableDeleteDetail, *DeletedRecord](TypeVariableDelete, VariableDeleteDetail{ID: id}, opts...)
}

// VariableDelete removes the variable with the given id.
func VariableDelete(ctx context.Context, d event.Dispatcher, id string) (*DeletedRecord, error) {
	return event.Call(ctx, d, NewVariableDeleteEvent(id))
}

// VariableListDetail is the detail of Model.Variable.list.
type VariableListDetail struct {
	// Parent is the environment name.
	Parent string `json:"parent"`

	// Limit is the maximum number of items to return. Zero uses the store
	// default.
	Limit int `json:"limit"`

	// NextPageToken continues a previous listing.
	NextPageToken string `json:"nextPageToken"`
}

// NewVariableListEvent creates the Model.Variable.list request.
func NewVariableListEvent(parent string, limit int, nextPageToken string, opts ...event.Option) *event.Request[VariableListDetail, *ListResponse[Variable]] {
	detail := VariableListDetail{
		Parent:        parent,
		Limit:         limit,
		NextPageToken: nextPageToken,
	}
	return event.NewRequest[VariableListDetail, *ListResponse[Variable]](TypeVariableList, detail, opts...)
}

// VariableList returns a page of the variables of parent.
func VariableList(ctx context.Context, d event.Dispatcher, parent string, limit int, nextPageToken string) (*ListResponse[Variable], error) {
	return event.Call(ctx, d, NewVariableListEvent(parent, limit, nextPageToken))
}

// VariableSetDetail is the detail of Model.Variable.set.
type VariableSetDetail struct {
	// Name of the variable.
	Name string `json:"name"`

	// Value of the variable.
	Value string `json:"value"`
}

// NewVariableSetEvent creates the Model.Variable.set request.
func NewVariableSetEvent(name, value string, opts ...event.Option) *event.Request[VariableSetDetail, *ChangeRecord[Variable]] {
	return event.NewRequest[VariableSetDetail, *ChangeRecord[Variable]](TypeVariableSet, VariableSetDetail{Name: name, Value: value}, opts...)
}

// VariableSet sets name to value in the selected environment, creating the
// variable if needed.
func VariableSet(ctx context.Context, d event.Dispatcher, name, value string) (*ChangeRecord[Variable], error) {
	return event.Call(ctx, d, NewVariableSetEvent(name, value))
}

// VariableStateUpdateDetail is the detail of Model.Variable.State.update.
type VariableStateUpdateDetail struct {
	// Record describes the change.
	Record ChangeRecord[Variable] `json:"record"`
}

// NewVariableStateUpdateEvent creates the Model.Variable.State.update
// notification.
func NewVariableStateUpdateEvent(record ChangeRecord[Variable], opts ...event.Option) *event.Notification[VariableStateUpdateDetail] {
	return event.NewNotification(TypeVariableStateUpdate, VariableStateUpdateDetail{Record: record}, opts...)
}

// VariableStateUpdate announces that a variable was stored.
func VariableStateUpdate(ctx context.Context, d event.Dispatcher, record ChangeRecord[Variable]) error {
	return event.Notify(ctx, d, NewVariableStateUpdateEvent(record))
}

// VariableStateDeleteDetail is the detail of Model.Variable.State.delete.
type VariableStateDeleteDetail struct {
	// Record identifies the removed variable.
	Record DeletedRecord `json:"record"`
}

// NewVariableStateDeleteEvent creates the Model.Variable.State.delete
// notification.
func NewVariableStateDeleteEvent(record DeletedRecord, opts ...event.Option) *event.Notification[VariableStateDeleteDetail] {
	return event.NewNotification(TypeVariableStateDelete, VariableStateDeleteDetail{Record: record}, opts...)
}

// VariableStateDelete announces that a variable was removed.
func VariableStateDelete(ctx context.Context, d event.Dispatcher, record DeletedRecord) error {
	return event.Notify(ctx, d, NewVariableStateDeleteEvent(record))
}

func variableEntries() []Entry {
	return []Entry{
		requestEntry[VariableUpdateDetail, *ChangeRecord[Variable]]("Model.Variable.update", TypeVariableUpdate),
		requestEntry[VariableDeleteDetail, *DeletedRecord]("Model.Variable.delete", TypeVariableDelete),
		requestEntry[VariableListDetail, *ListResponse[Variable]]("Model.Variable.list", TypeVariableList),
		requestEntry[VariableSetDetail, *ChangeRecord[Variable]]("Model.Variable.set", TypeVariableSet),
		notificationEntry[VariableStateUpdateDetail]("Model.Variable.State.update", TypeVariableStateUpdate),
		notificationEntry[VariableStateDeleteDetail]("Model.Variable.State.delete", TypeVariableStateDelete),
	}
}
