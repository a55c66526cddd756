package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Request model event types.
const (
	// TypeRequestRead reads a stored request.
	TypeRequestRead event.Type = "requestmodelread"

	// TypeRequestReadBulk reads stored requests.
	TypeRequestReadBulk event.Type = "requestmodelreadbulk"

	// TypeRequestUpdate creates or updates a stored request.
	TypeRequestUpdate event.Type = "requestmodelupdate"

	// TypeRequestUpdateBulk creates or updates stored requests.
	TypeRequestUpdateBulk event.Type = "requestmodelupdatebulk"

	// TypeRequestStore stores a request and adds it to projects.
	TypeRequestStore event.Type = "requestmodelstore"

	// TypeRequestDelete deletes a stored request.
	TypeRequestDelete event.Type = "requestmodeldelete"

	// TypeRequestDeleteBulk deletes stored requests.
	TypeRequestDeleteBulk event.Type = "requestmodeldeletebulk"

	// TypeRequestUndeleteBulk restores deleted requests.
	TypeRequestUndeleteBulk event.Type = "requestmodelundeletebulk"

	// TypeRequestQuery searches stored requests.
	TypeRequestQuery event.Type = "requestmodelquery"

	// TypeRequestList lists stored requests.
	TypeRequestList event.Type = "requestmodellist"

	// TypeRequestListProject lists the requests of a project.
	TypeRequestListProject event.Type = "requestmodellistproject"

	// TypeRequestStateUpdate announces a stored request.
	TypeRequestStateUpdate event.Type = "requestmodelstateupdate"

	// TypeRequestStateDelete announces a removed request.
	TypeRequestStateDelete event.Type = "requestmodelstatedelete"
)

// RequestReadDetail is the detail of Model.Request.read.
type RequestReadDetail struct {
	// Type is the store, "saved" or "history".
	Type string `json:"type"`

	// ID of the request.
	ID string `json:"id"`

	// Opts configure the read.
	Opts RequestReadOptions `json:"opts"`
}

// NewRequestReadEvent creates the Model.Request.read request.
func NewRequestReadEvent(typ, id string, params RequestReadOptions, opts ...event.Option) *event.Request[RequestReadDetail, *StoredRequest] {
	detail := RequestReadDetail{
		Type: typ,
		ID:   id,
		Opts: params,
	}
	return event.NewRequest[RequestReadDetail, *StoredRequest](TypeRequestRead, detail, opts...)
}

// RequestRead returns the request with the given id.
func RequestRead(ctx context.Context, d event.Dispatcher, typ, id string, params RequestReadOptions) (*StoredRequest, error) {
	return event.Call(ctx, d, NewRequestReadEvent(typ, id, params))
}

// RequestReadBulkDetail is the detail of Model.Request.readBulk.
type RequestReadBulkDetail struct {
	// Type is the store, "saved" or "history".
	Type string `json:"type"`

	// IDs of the requests.
	IDs []string `json:"ids"`

	// Opts configure the read.
	Opts RequestReadOptions `json:"opts"`
}

// NewRequestReadBulkEvent creates the Model.Request.readBulk request.
func NewRequestReadBulkEvent(typ string, ids []string, params RequestReadOptions, opts ...event.Option) *event.Request[RequestReadBulkDetail, []StoredRequest] {
	detail := RequestReadBulkDetail{
		Type: typ,
		IDs:  ids,
		Opts: params,
	}
	return event.NewRequest[RequestReadBulkDetail, []StoredRequest](TypeRequestReadBulk, detail, opts...)
}

// RequestReadBulk returns the requests with the given ids.
func RequestReadBulk(ctx context.Context, d event.Dispatcher, typ string, ids []string, params RequestReadOptions) ([]StoredRequest, error) {
	return event.Call(ctx, d, NewRequestReadBulkEvent(typ, ids, params))
}

// RequestUpdateDetail is the detail of Model.Request.update.
type RequestUpdateDetail struct {
	// Type is the store, "saved" or "history".
	Type string `json:"type"`

	// Request is the request to store.
	Request StoredRequest `json:"request"`
}

// NewRequestUpdateEvent creates the Model.Request.update request.
func NewRequestUpdateEvent(typ string, request StoredRequest, opts ...event.Option) *event.Request[RequestUpdateDetail, *ChangeRecord[StoredRequest]] {
	return event.NewRequest[RequestUpdateDetail, *ChangeRecord[StoredRequest]](TypeRequestUpdate, RequestUpdateDetail{Type: typ, Request: request}, opts...)
}

// RequestUpdate stores request.
func RequestUpdate(ctx context.Context, d event.Dispatcher, typ string, request StoredRequest) (*ChangeRecord[StoredRequest], error) {
	return event.Call(ctx, d, NewRequestUpdateEvent(typ, request))
}

// RequestUpdateBulkDetail is the detail of Model.Request.updateBulk.
type RequestUpdateBulkDetail struct {
	// Type is the store, "saved" or "history".
	Type string `json:"type"`

	// Requests are the requests to store.
	Requests []StoredRequest `json:"requests"`
}

// NewRequestUpdateBulkEvent creates the Model.Request.updateBulk request.
func NewRequestUpdateBulkEvent(typ string, requests []StoredRequest, opts ...event.Option) *event.Request[RequestUpdateBulkDetail, []ChangeRecord[StoredRequest]] {
	return event.NewRequest[RequestUpdateBulkDetail, []ChangeRecord[StoredRequest]](TypeRequestUpdateBulk, RequestUpdateBulkDetail{Type: typ, Requests: requests}, opts...)
}

// RequestUpdateBulk stores requests.
func RequestUpdateBulk(ctx context.Context, d event.Dispatcher, typ string, requests []StoredRequest) ([]ChangeRecord[StoredRequest], error) {
	return event.Call(ctx, d, NewRequestUpdateBulkEvent(typ, requests))
}

// RequestStoreDetail is the detail of Model.Request.store.
type RequestStoreDetail struct {
	// Type is the store, "saved" or "history".
	Type string `json:"type"`

	// Request is the request to store.
	Request StoredRequest `json:"request"`

	// Projects are project ids or names of projects to create.
	Projects []string `json:"projects"`
}

// NewRequestStoreEvent creates the Model.Request.store request.
func NewRequestStoreEvent(typ string, request StoredRequest, projects []string, opts ...event.Option) *event.Request[RequestStoreDetail, *ChangeRecord[StoredRequest]] {
	detail := RequestStoreDetail{
		Type:     typ,
		Request:  request,
		Projects: projects,
	}
	return event.NewRequest[RequestStoreDetail, *ChangeRecord[StoredRequest]](TypeRequestStore, detail, opts...)
}

// RequestStore stores request and adds it to the given projects, creating
// the ones that do not exist.
func RequestStore(ctx context.Context, d event.Dispatcher, typ string, request StoredRequest, projects []string) (*ChangeRecord[StoredRequest], error) {
	return event.Call(ctx, d, NewRequestStoreEvent(typ, request, projects))
}

// RequestDeleteDetail is the detail of Model.Request.delete.
type RequestDeleteDetail struct {
	// Type is the store, "saved" or "history".
	Type string `json:"type"`

	// ID of the request.
	ID string `json:"id"`

	// Rev is the revision to delete.
	Rev string `json:"rev"`
}

// NewRequestDeleteEvent creates the Model.Request.delete request.
func NewRequestDeleteEvent(typ, id, rev string, opts ...event.Option) *event.Request[RequestDeleteDetail, *DeletedRecord] {
	detail := RequestDeleteDetail{
		Type: typ,
		ID:   id,
		Rev:  rev,
	}
	return event.NewRequest[RequestDeleteDetail, *DeletedRecord](TypeRequestDelete, detail, opts...)
}

// RequestDelete removes the request with the given id.
func RequestDelete(ctx context.Context, d event.Dispatcher, typ, id, rev string) (*DeletedRecord, error) {
	return event.Call(ctx, d, NewRequestDeleteEvent(typ, id, rev))
}

// RequestDeleteBulkDetail is the detail of Model.Request.deleteBulk.
type RequestDeleteBulkDetail struct {
	// Type is the store, "saved" or "history".
	Type string `json:"type"`

	// IDs of the requests.
	IDs []string `json:"ids"`
}

// NewRequestDeleteBulkEvent creates the Model.Request.deleteBulk request.
func NewRequestDeleteBulkEvent(typ string, ids []string, opts ...event.Option) *event.Request[RequestDeleteBulkDetail, []DeletedRecord] {
	return event.NewRequest[RequestDeleteBulkDetail, []DeletedRecord](TypeRequestDeleteBulk, RequestDeleteBulkDetail{Type: typ, IDs: ids}, opts...)
}

// RequestDeleteBulk removes the requests with the given ids.
func RequestDeleteBulk(ctx context.Context, d event.Dispatcher, typ string, ids []string) ([]DeletedRecord, error) {
	return event.Call(ctx, d, NewRequestDeleteBulkEvent(typ, ids))
}

// RequestUndeleteBulkDetail is the detail of Model.Request.undeleteBulk.
type RequestUndeleteBulkDetail struct {
	// Type is the store, "saved" or "history".
	Type string `json:"type"`

	// Requests identify the deleted revisions.
	Requests []DeletedRecord `json:"requests"`
}

// NewRequestUndeleteBulkEvent creates the Model.Request.undeleteBulk
// request.
func NewRequestUndeleteBulkEvent(typ string, requests []DeletedRecord, opts ...event.Option) *event.Request[RequestUndeleteBulkDetail, []ChangeRecord[StoredRequest]] {
	return event.NewRequest[RequestUndeleteBulkDetail, []ChangeRecord[StoredRequest]](TypeRequestUndeleteBulk, RequestUndeleteBulkDetail{Type: typ, Requests: requests}, opts...)
}

// RequestUndeleteBulk restores the given deleted requests.
func RequestUndeleteBulk(ctx context.Context, d event.Dispatcher, typ string, requests []DeletedRecord) ([]ChangeRecord[StoredRequest], error) {
	return event.Call(ctx, d, NewRequestUndeleteBulkEvent(typ, requests))
}

// RequestQueryDetail is the detail of Model.Request.query.
type RequestQueryDetail struct {
	// Term is the search term.
	Term string `json:"term"`

	// Type limits the search to one store. Empty searches both.
	Type string `json:"type"`

	// Detailed also searches headers and payloads.
	Detailed bool `json:"detailed"`
}

// NewRequestQueryEvent creates the Model.Request.query request.
func NewRequestQueryEvent(term, typ string, detailed bool, opts ...event.Option) *event.Request[RequestQueryDetail, []StoredRequest] {
	detail := RequestQueryDetail{
		Term:     term,
		Type:     typ,
		Detailed: detailed,
	}
	return event.NewRequest[RequestQueryDetail, []StoredRequest](TypeRequestQuery, detail, opts...)
}

// RequestQuery returns the requests matching term.
func RequestQuery(ctx context.Context, d event.Dispatcher, term, typ string, detailed bool) ([]StoredRequest, error) {
	return event.Call(ctx, d, NewRequestQueryEvent(term, typ, detailed))
}

// RequestListDetail is the detail of Model.Request.list.
type RequestListDetail struct {
	// Type is the store, "saved" or "history".
	Type string `json:"type"`

	// Limit is the maximum number of items to return. Zero uses the store
	// default.
	Limit int `json:"limit"`

	// NextPageToken continues a previous listing.
	NextPageToken string `json:"nextPageToken"`
}

// NewRequestListEvent creates the Model.Request.list request.
func NewRequestListEvent(typ string, limit int, nextPageToken string, opts ...event.Option) *event.Request[RequestListDetail, *ListResponse[StoredRequest]] {
	detail := RequestListDetail{
		Type:          typ,
		Limit:         limit,
		NextPageToken: nextPageToken,
	}
	return event.NewRequest[RequestListDetail, *ListResponse[StoredRequest]](TypeRequestList, detail, opts...)
}

// RequestList returns a page of the requests in a store.
func RequestList(ctx context.Context, d event.Dispatcher, typ string, limit int, nextPageToken string) (*ListResponse[StoredRequest], error) {
	return event.Call(ctx, d, NewRequestListEvent(typ, limit, nextPageToken))
}

// RequestListProjectDetail is the detail of Model.Request.listProject.
type RequestListProjectDetail struct {
	// ID of the project.
	ID string `json:"id"`

	// Opts configure the read.
	Opts RequestReadOptions `json:"opts"`
}

// NewRequestListProjectEvent creates the Model.Request.listProject request.
func NewRequestListProjectEvent(id string, params RequestReadOptions, opts ...event.Option) *event.Request[RequestListProjectDetail, []StoredRequest] {
	return event.NewRequest[RequestListProjectDetail, []StoredRequest](TypeRequestListProject, RequestListProjectDetail{ID: id, Opts: params}, opts...)
}

// RequestListProject returns the requests of the project with the given id.
func RequestListProject(ctx context.Context, d event.Dispatcher, id string, params RequestReadOptions) ([]StoredRequest, error) {
	return event.Call(ctx, d, NewRequestListProjectEvent(id, params))
}

// RequestStateUpdateDetail is the detail of Model.Request.State.update.
type RequestStateUpdateDetail struct {
	// Type is the store, "saved" or "history".
	Type string `json:"type"`

	// Record describes the change.
	Record ChangeRecord[StoredRequest] `json:"record"`
}

// NewRequestStateUpdateEvent creates the Model.Request.State.update
// notification.
func NewRequestStateUpdateEvent(typ string, record ChangeRecord[StoredRequest], opts ...event.Option) *event.Notification[RequestStateUpdateDetail] {
	return event.NewNotification(TypeRequestStateUpdate, RequestStateUpdateDetail{Type: typ, Record: record}, opts...)
}

// RequestStateUpdate announces that a request was stored.
func RequestStateUpdate(ctx context.Context, d event.Dispatcher, typ string, record ChangeRecord[StoredRequest]) error {
	return event.Notify(ctx, d, NewRequestStateUpdateEvent(typ, record))
}

// RequestStateDeleteDetail is the detail of Model.Request.State.delete.
type RequestStateDeleteDetail struct {
	// Type is the store, "saved" or "history".
	Type string `json:"type"`

	// Record identifies the removed request.
	Record DeletedRecord `json:"record"`
}

// NewRequestStateDeleteEvent creates the Model.Request.State.delete
// notification.
func NewRequestStateDeleteEvent(typ string, record DeletedRecord, opts ...event.Option) *event.Notification[RequestStateDeleteDetail] {
	return event.NewNotification(TypeRequestStateDelete, RequestStateDeleteDetail{Type: typ, Record: record}, opts...)
}

// RequestStateDelete announces that a request was removed.
func RequestStateDelete(ctx context.Context, d event.Dispatcher, typ string, record DeletedRecord) error {
	return event.Notify(ctx, d, NewRequestStateDeleteEvent(typ, record))
}

func requestEntries() []Entry {
	return []Entry{
		requestEntry[RequestReadDetail, *StoredRequest]("Model.Request.read", TypeRequestRead),
		requestEntry[RequestReadBulkDetail, []StoredRequest]("Model.Request.readBulk", TypeRequestReadBulk),
		requestEntry[RequestUpdateDetail, *ChangeRecord[StoredRequest]]("Model.Request.update", TypeRequestUpdate),
		requestEntry[RequestUpdateBulkDetail, []ChangeRecord[StoredRequest]]("Model.Request.updateBulk", TypeRequestUpdateBulk),
		requestEntry[RequestStoreDetail, *ChangeRecord[StoredRequest]]("Model.Request.store", TypeRequestStore),
		requestEntry[RequestDeleteDetail, *DeletedRecord]("Model.Request.delete", TypeRequestDelete),
		requestEntry[RequestDeleteBulkDetail, []DeletedRecord]("Model.Request.deleteBulk", TypeRequestDeleteBulk),
		requestEntry[RequestUndeleteBulkDetail, []ChangeRecord[StoredRequest]]("Model.Request.undeleteBulk", TypeRequestUndeleteBulk),
		requestEntry[RequestQueryDetail, []StoredRequest]("Model.Request.query", TypeRequestQuery),
		requestEntry[RequestListDetail, *ListResponse[StoredRequest]]("Model.Request.list", TypeRequestList),
		requestEntry[RequestListProjectDetail, []StoredRequest]("Model.Request.listProject", TypeRequestListProject),
		notificationEntry[RequestStateUpdateDetail]("Model.Request.State.update", TypeRequestStateUpdate),
		notificationEntry[RequestStateDeleteDetail]("Model.Request.State.delete", TypeRequestStateDelete),
	}
}
