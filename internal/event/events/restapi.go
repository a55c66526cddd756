package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// REST API model event types.
const (
	// TypeRestAPIList lists REST API index entries.
	TypeRestAPIList event.Type = "restapilist"

	// TypeRestAPIRead reads a REST API index entry.
	TypeRestAPIRead event.Type = "restapiread"

	// TypeRestAPIUpdate creates or updates a REST API index entry.
	TypeRestAPIUpdate event.Type = "restapiupdate"

	// TypeRestAPIUpdateBulk creates or updates REST API index entries.
	TypeRestAPIUpdateBulk event.Type = "restapiupdatebulk"

	// TypeRestAPIDelete deletes a REST API with all of its versions.
	TypeRestAPIDelete event.Type = "restapidelete"

	// TypeRestAPIVersionDelete deletes one version of a REST API.
	TypeRestAPIVersionDelete event.Type = "restapiversiondelete"

	// TypeRestAPIDataRead reads the model of a REST API version.
	TypeRestAPIDataRead event.Type = "restapidataread"

	// TypeRestAPIDataUpdate stores the model of a REST API version.
	TypeRestAPIDataUpdate event.Type = "restapidataupdate"

	// TypeRestAPIProcessFile parses an API specification file.
	TypeRestAPIProcessFile event.Type = "restapiprocessfile"

	// TypeRestAPIStateUpdate announces a stored REST API index entry.
	TypeRestAPIStateUpdate event.Type = "restapistateupdate"

	// TypeRestAPIStateDelete announces a removed REST API.
	TypeRestAPIStateDelete event.Type = "restapistatedelete"

	// TypeRestAPIStateVersionDelete announces a removed REST API version.
	TypeRestAPIStateVersionDelete event.Type = "restapistateversiondelete"

	// TypeRestAPIStateDataUpdate announces a stored REST API model.
	TypeRestAPIStateDataUpdate event.Type = "restapistatedataupdate"
)

// RestAPIListDetail is the detail of Model.RestApi.list.
type RestAPIListDetail struct {
	Limit         int    `json:"limit"`
	NextPageToken string `json:"nextPageToken"`
}

// NewRestAPIListEvent creates the Model.RestApi.list request.
func NewRestAPIListEvent(limit int, nextPageToken string, opts ...event.Option) *event.Request[RestAPIListDetail, *ListResponse[RestAPIIndex]] {
	return event.NewRequest[RestAPIListDetail, *ListResponse[RestAPIIndex]](TypeRestAPIList, RestAPIListDetail{Limit: limit, NextPageToken: nextPageToken}, opts...)
}

// RestAPIList returns a page of REST API index entries.
func RestAPIList(ctx context.Context, d event.Dispatcher, limit int, nextPageToken string) (*ListResponse[RestAPIIndex], error) {
	return event.Call(ctx, d, NewRestAPIListEvent(limit, nextPageToken))
}

// RestAPIReadDetail is the detail of Model.RestApi.read.
type RestAPIReadDetail struct {
	ID  string `json:"id"`
	Rev string `json:"rev"`
}

// NewRestAPIReadEvent creates the Model.RestApi.read request.
func NewRestAPIReadEvent(id, rev string, opts ...event.Option) *event.Request[RestAPIReadDetail, *RestAPIIndex] {
	return event.NewRequest[RestAPIReadDetail, *RestAPIIndex](TypeRestAPIRead, RestAPIReadDetail{ID: id, Rev: rev}, opts...)
}

// RestAPIRead returns the index entry with the given id.
func RestAPIRead(ctx context.Context, d event.Dispatcher, id, rev string) (*RestAPIIndex, error) {
	return event.Call(ctx, d, NewRestAPIReadEvent(id, rev))
}

// RestAPIUpdateDetail is the detail of Model.RestApi.update.
type RestAPIUpdateDetail struct {
	Entity RestAPIIndex `json:"entity"`
}

// NewRestAPIUpdateEvent creates the Model.RestApi.update request.
func NewRestAPIUpdateEvent(entity RestAPIIndex, opts ...event.Option) *event.Request[RestAPIUpdateDetail, *ChangeRecord[RestAPIIndex]] {
	return event.NewRequest[RestAPIUpdateDetail, *ChangeRecord[RestAPIIndex]](TypeRestAPIUpdate, RestAPIUpdateDetail{Entity: entity}, opts...)
}

// RestAPIUpdate stores entity.
func RestAPIUpdate(ctx context.Context, d event.Dispatcher, entity RestAPIIndex) (*ChangeRecord[RestAPIIndex], error) {
	return event.Call(ctx, d, NewRestAPIUpdateEvent(entity))
}

// RestAPIUpdateBulkDetail is the detail of Model.RestApi.updateBulk.
type RestAPIUpdateBulkDetail struct {
	Entities []RestAPIIndex `json:"entities"`
}

// NewRestAPIUpdateBulkEvent creates the Model.RestApi.updateBulk request.
func NewRestAPIUpdateBulkEvent(entities []RestAPIIndex, opts ...event.Option) *event.Request[RestAPIUpdateBulkDetail, []ChangeRecord[RestAPIIndex]] {
	return event.NewRequest[RestAPIUpdateBulkDetail, []ChangeRecord[RestAPIIndex]](TypeRestAPIUpdateBulk, RestAPIUpdateBulkDetail{Entities: entities}, opts...)
}

// RestAPIUpdateBulk stores entities.
func RestAPIUpdateBulk(ctx context.Context, d event.Dispatcher, entities []RestAPIIndex) ([]ChangeRecord[RestAPIIndex], error) {
	return event.Call(ctx, d, NewRestAPIUpdateBulkEvent(entities))
}

// RestAPIDeleteDetail is the detail of Model.RestApi.delete.
type RestAPIDeleteDetail struct {
	ID  string `json:"id"`
	Rev string `json:"rev"`
}

// NewRestAPIDeleteEvent creates the Model.RestApi.delete request.
func NewRestAPIDeleteEvent(id, rev string, opts ...event.Option) *event.Request[RestAPIDeleteDetail, *DeletedRecord] {
	return event.NewRequest[RestAPIDeleteDetail, *DeletedRecord](TypeRestAPIDelete, RestAPIDeleteDetail{ID: id, Rev: rev}, opts...)
}

// RestAPIDelete removes the API with the given id.
func RestAPIDelete(ctx context.Context, d event.Dispatcher, id, rev string) (*DeletedRecord, error) {
	return event.Call(ctx, d, NewRestAPIDeleteEvent(id, rev))
}

// RestAPIVersionDeleteDetail is the detail of Model.RestApi.versionDelete.
type RestAPIVersionDeleteDetail struct {
	ID      string `json:"id"`
	Version string `json:"version"`
}

// NewRestAPIVersionDeleteEvent creates the Model.RestApi.versionDelete
// request.
func NewRestAPIVersionDeleteEvent(id, version string, opts ...event.Option) *event.Request[RestAPIVersionDeleteDetail, *DeletedRecord] {
	return event.NewRequest[RestAPIVersionDeleteDetail, *DeletedRecord](TypeRestAPIVersionDelete, RestAPIVersionDeleteDetail{ID: id, Version: version}, opts...)
}

// RestAPIVersionDelete removes version of the API with the given id.
func RestAPIVersionDelete(ctx context.Context, d event.Dispatcher, id, version string) (*DeletedRecord, error) {
	return event.Call(ctx, d, NewRestAPIVersionDeleteEvent(id, version))
}

// RestAPIDataReadDetail is the detail of Model.RestApi.dataRead.
type RestAPIDataReadDetail struct {
	ID  string `json:"id"`
	Rev string `json:"rev"`
}

// NewRestAPIDataReadEvent creates the Model.RestApi.dataRead request.
func NewRestAPIDataReadEvent(id, rev string, opts ...event.Option) *event.Request[RestAPIDataReadDetail, *RestAPIData] {
	return event.NewRequest[RestAPIDataReadDetail, *RestAPIData](TypeRestAPIDataRead, RestAPIDataReadDetail{ID: id, Rev: rev}, opts...)
}

// RestAPIDataRead returns the API model with the given id.
func RestAPIDataRead(ctx context.Context, d event.Dispatcher, id, rev string) (*RestAPIData, error) {
	return event.Call(ctx, d, NewRestAPIDataReadEvent(id, rev))
}

// RestAPIDataUpdateDetail is the detail of Model.RestApi.dataUpdate.
type RestAPIDataUpdateDetail struct {
	Entity RestAPIData `json:"entity"`
}

// NewRestAPIDataUpdateEvent creates the Model.RestApi.dataUpdate request.
func NewRestAPIDataUpdateEvent(entity RestAPIData, opts ...event.Option) *event.Request[RestAPIDataUpdateDetail, *ChangeRecord[RestAPIData]] {
	return event.NewRequest[RestAPIDataUpdateDetail, *ChangeRecord[RestAPIData]](TypeRestAPIDataUpdate, RestAPIDataUpdateDetail{Entity: entity}, opts...)
}

// RestAPIDataUpdate stores entity.
func RestAPIDataUpdate(ctx context.Context, d event.Dispatcher, entity RestAPIData) (*ChangeRecord[RestAPIData], error) {
	return event.Call(ctx, d, NewRestAPIDataUpdateEvent(entity))
}

// RestAPIProcessFileDetail is the detail of Model.RestApi.processFile.
type RestAPIProcessFileDetail struct {
	File FileRef `json:"file"`
}

// NewRestAPIProcessFileEvent creates the Model.RestApi.processFile request.
func NewRestAPIProcessFileEvent(file FileRef, opts ...event.Option) *event.Request[RestAPIProcessFileDetail, *RestAPIProcessResult] {
	return event.NewRequest[RestAPIProcessFileDetail, *RestAPIProcessResult](TypeRestAPIProcessFile, RestAPIProcessFileDetail{File: file}, opts...)
}

// RestAPIProcessFile parses file into an API model.
func RestAPIProcessFile(ctx context.Context, d event.Dispatcher, file FileRef) (*RestAPIProcessResult, error) {
	return event.Call(ctx, d, NewRestAPIProcessFileEvent(file))
}

// RestAPIStateUpdateDetail is the detail of Model.RestApi.State.update.
type RestAPIStateUpdateDetail struct {
	Record ChangeRecord[RestAPIIndex] `json:"record"`
}

// NewRestAPIStateUpdateEvent creates the Model.RestApi.State.update
// notification.
func NewRestAPIStateUpdateEvent(record ChangeRecord[RestAPIIndex], opts ...event.Option) *event.Notification[RestAPIStateUpdateDetail] {
	return event.NewNotification(TypeRestAPIStateUpdate, RestAPIStateUpdateDetail{Record: record}, opts...)
}

// RestAPIStateUpdate announces that an index entry was stored.
func RestAPIStateUpdate(ctx context.Context, d event.Dispatcher, record ChangeRecord[RestAPIIndex]) error {
	return event.Notify(ctx, d, NewRestAPIStateUpdateEvent(record))
}

// RestAPIStateDeleteDetail is the detail of Model.RestApi.State.delete.
type RestAPIStateDeleteDetail struct {
	Record DeletedRecord `json:"record"`
}

// NewRestAPIStateDeleteEvent creates the Model.RestApi.State.delete
// notification.
func NewRestAPIStateDeleteEvent(record DeletedRecord, opts ...event.Option) *event.Notification[RestAPIStateDeleteDetail] {
	return event.NewNotification(TypeRestAPIStateDelete, RestAPIStateDeleteDetail{Record: record}, opts...)
}

// RestAPIStateDelete announces that an API was removed.
func RestAPIStateDelete(ctx context.Context, d event.Dispatcher, record DeletedRecord) error {
	return event.Notify(ctx, d, NewRestAPIStateDeleteEvent(record))
}

// RestAPIStateVersionDeleteDetail is the detail of
// Model.RestApi.State.versionDelete.
type RestAPIStateVersionDeleteDetail struct {
	ID      string `json:"id"`
	Version string `json:"version"`
}

// NewRestAPIStateVersionDeleteEvent creates the
// Model.RestApi.State.versionDelete notification.
func NewRestAPIStateVersionDeleteEvent(id, version string, opts ...event.Option) *event.Notification[RestAPIStateVersionDeleteDetail] {
	return event.NewNotification(TypeRestAPIStateVersionDelete, RestAPIStateVersionDeleteDetail{ID: id, Version: version}, opts...)
}

// RestAPIStateVersionDelete announces that version of the API with the given
// id was removed.
func RestAPIStateVersionDelete(ctx context.Context, d event.Dispatcher, id, version string) error {
	return event.Notify(ctx, d, NewRestAPIStateVersionDeleteEvent(id, version))
}

// RestAPIStateDataUpdateDetail is the detail of
// Model.RestApi.State.dataUpdate.
type RestAPIStateDataUpdateDetail struct {
	Record ChangeRecord[RestAPIData] `json:"record"`
}

// NewRestAPIStateDataUpdateEvent creates the Model.RestApi.State.dataUpdate
// notification.
func NewRestAPIStateDataUpdateEvent(record ChangeRecord[RestAPIData], opts ...event.Option) *event.Notification[RestAPIStateDataUpdateDetail] {
	return event.NewNotification(TypeRestAPIStateDataUpdate, RestAPIStateDataUpdateDetail{Record: record}, opts...)
}

// RestAPIStateDataUpdate announces that an API model was stored.
func RestAPIStateDataUpdate(ctx context.Context, d event.Dispatcher, record ChangeRecord[RestAPIData]) error {
	return event.Notify(ctx, d, NewRestAPIStateDataUpdateEvent(record))
}

func restAPIEntries() []Entry {
	return []Entry{
		requestEntry[RestAPIListDetail, *ListResponse[RestAPIIndex]]("Model.RestApi.list", TypeRestAPIList),
		requestEntry[RestAPIReadDetail, *RestAPIIndex]("Model.RestApi.read", TypeRestAPIRead),
		requestEntry[RestAPIUpdateDetail, *ChangeRecord[RestAPIIndex]]("Model.RestApi.update", TypeRestAPIUpdate),
		requestEntry[RestAPIUpdateBulkDetail, []ChangeRecord[RestAPIIndex]]("Model.RestApi.updateBulk", TypeRestAPIUpdateBulk),
		requestEntry[RestAPIDeleteDetail, *DeletedRecord]("Model.RestApi.delete", TypeRestAPIDelete),
		requestEntry[RestAPIVersionDeleteDetail, *DeletedRecord]("Model.RestApi.versionDelete", TypeRestAPIVersionDelete),
		requestEntry[RestAPIDataReadDetail, *RestAPIData]("Model.RestApi.dataRead", TypeRestAPIDataRead),
		requestEntry[RestAPIDataUpdateDetail, *ChangeRecord[RestAPIData]]("Model.RestApi.dataUpdate", TypeRestAPIDataUpdate),
		requestEntry[RestAPIProcessFileDetail, *RestAPIProcessResult]("Model.RestApi.processFile", TypeRestAPIProcessFile),
		notificationEntry[RestAPIStateUpdateDetail]("Model.RestApi.State.update", TypeRestAPIStateUpdate),
		notificationEntry[RestAPIStateDeleteDetail]("Model.RestApi.State.delete", TypeRestAPIStateDelete),
		notificationEntry[RestAPIStateVersionDeleteDetail]("Model.RestApi.State.versionDelete", TypeRestAPIStateVersionDelete),
		notificationEntry[RestAPIStateDataUpdateDetail]("Model.RestApi.State.dataUpdate", TypeRestAPIStateDataUpdate),
	}
}
