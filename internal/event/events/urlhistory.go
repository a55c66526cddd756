package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// URL history model event types.
const (
	// TypeURLHistoryInsert records a URL in the history.
	TypeURLHistoryInsert event.Type = "urlhistoryinsert"

	// TypeURLHistoryList lists the URL history.
	TypeURLHistoryList event.Type = "urlhistorylist"

	// TypeURLHistoryQuery searches the URL history.
	TypeURLHistoryQuery event.Type = "urlhistoryquery"

	// TypeURLHistoryDelete deletes a URL history entry.
	TypeURLHistoryDelete event.Type = "urlhistorydelete"

	// TypeURLHistoryClear deletes the whole URL history.
	TypeURLHistoryClear event.Type = "urlhistoryclear"

	// TypeURLHistoryStateUpdate announces a recorded URL.
	TypeURLHistoryStateUpdate event.Type = "urlhistorystateupdate"

	// TypeURLHistoryStateDelete announces a removed URL history entry.
	TypeURLHistoryStateDelete event.Type = "urlhistorystatedelete"

	// TypeURLHistoryStateClear announces that the URL history was cleared.
	TypeURLHistoryStateClear event.Type = "urlhistorystateclear"
)

// URLHistoryInsertDetail is the detail of Model.UrlHistory.insert.
type URLHistoryInsertDetail struct {
	// URL to record.
	URL string `json:"url"`
}

// NewURLHistoryInsertEvent creates the Model.UrlHistory.insert request.
func NewURLHistoryInsertEvent(url string, opts ...event.Option) *event.Request[URLHistoryInsertDetail, *ChangeRecord[URLHistoryItem]] {
	return event.NewRequest[URLHistoryInsertDetail, *ChangeRecord[URLHistoryItem]](TypeURLHistoryInsert, URLHistoryInsertDetail{URL: url}, opts...)
}

// URLHistoryInsert records url in the history.
func URLHistoryInsert(ctx context.Context, d event.Dispatcher, url string) (*ChangeRecord[URLHistoryItem], error) {
	return event.Call(ctx, d, NewURLHistoryInsertEvent(url))
}

// URLHistoryListDetail is the detail of Model.UrlHistory.list.
type URLHistoryListDetail struct {
	// Limit is the maximum number of items to return. Zero uses the store
	// default.
	Limit int `json:"limit"`

	// NextPageToken continues a previous listing.
	NextPageToken string `json:"nextPageToken"`
}

// NewURLHistoryListEvent creates the Model.UrlHistory.list request.
func NewURLHistoryListEvent(limit int, nextPageToken string, opts ...event.Option) *event.Request[URLHistoryListDetail, *ListResponse[URLHistoryItem]] {
	return event.NewRequest[URLHistoryListDetail, *ListResponse[URLHistoryItem]](TypeURLHistoryList, URLHistoryListDetail{Limit: limit, NextPageToken: nextPageToken}, opts...)
}

// URLHistoryList returns a page of the URL history.
func URLHistoryList(ctx context.Context, d event.Dispatcher, limit int, nextPageToken string) (*ListResponse[URLHistoryItem], error) {
	return event.Call(ctx, d, NewURLHistoryListEvent(limit, nextPageToken))
}

// URLHistoryQueryDetail is the detail of Model.UrlHistory.query.
type URLHistoryQueryDetail struct {
	// Term is the URL fragment to look for.
	Term string `json:"term"`
}

// NewURLHistoryQueryEvent creates the Model.UrlHistory.query request.
func NewURLHistoryQueryEvent(term string, opts ...event.Option) *event.Request[URLHistoryQueryDetail, []URLHistoryItem] {
	return event.NewRequest[URLHistoryQueryDetail, []URLHistoryItem](TypeURLHistoryQuery, URLHistoryQueryDetail{Term: term}, opts...)
}

// URLHistoryQuery returns the history entries matching term.
func URLHistoryQuery(ctx context.Context, d event.Dispatcher, term string) ([]URLHistoryItem, error) {
	return event.Call(ctx, d, NewURLHistoryQueryEvent(term))
}

// URLHistoryDeleteDetail is the detail of Model.UrlHistory.delete.
type URLHistoryDeleteDetail struct {
	// ID of the entry.
	ID string `json:"id"`
}

// NewURLHistoryDeleteEvent creates the Model.UrlHistory.delete request.
func NewURLHistoryDeleteEvent(id string, opts ...event.Option) *event.Request[URLHistoryDeleteDetail, *DeletedRecord] {
	return event.NewRequest[URLHistoryDeleteDetail, *DeletedRecord](TypeURLHistoryDelete, URLHistoryDeleteDetail{ID: id}, opts...)
}

// URLHistoryDelete removes the entry with the given id.
func URLHistoryDelete(ctx context.Context, d event.Dispatcher, id string) (*DeletedRecord, error) {
	return event.Call(ctx, d, NewURLHistoryDeleteEvent(id))
}

// NewURLHistoryClearEvent creates the Model.UrlHistory.clear request.
func NewURLHistoryClearEvent(opts ...event.Option) *event.Request[Empty, event.Void] {
	return event.NewRequest[Empty, event.Void](TypeURLHistoryClear, Empty{}, opts...)
}

// URLHistoryClear removes every entry of the URL history.
func URLHistoryClear(ctx context.Context, d event.Dispatcher) error {
	return event.Perform(ctx, d, NewURLHistoryClearEvent())
}

// URLHistoryStateUpdateDetail is the detail of
// Model.UrlHistory.State.update.
type URLHistoryStateUpdateDetail struct {
	// Record describes the change.
	Record ChangeRecord[URLHistoryItem] `json:"record"`
}

// NewURLHistoryStateUpdateEvent creates the Model.UrlHistory.State.update
// notification.
func NewURLHistoryStateUpdateEvent(record ChangeRecord[URLHistoryItem], opts ...event.Option) *event.Notification[URLHistoryStateUpdateDetail] {
	return event.NewNotification(TypeURLHistoryStateUpdate, URLHistoryStateUpdateDetail{Record: record}, opts...)
}

// URLHistoryStateUpdate announces that a URL was recorded.
func URLHistoryStateUpdate(ctx context.Context, d event.Dispatcher, record ChangeRecord[URLHistoryItem]) error {
	return event.Notify(ctx, d, NewURLHistoryStateUpdateEvent(record))
}

// URLHistoryStateDeleteDetail is the detail of
// Model.UrlHistory.State.delete.
type URLHistoryStateDeleteDetail struct {
	// Record identifies the removed entry.
	Record DeletedRecord `json:"record"`
}

// NewURLHistoryStateDeleteEvent creates the Model.UrlHistory.State.delete
// notification.
func NewURLHistoryStateDeleteEvent(record DeletedRecord, opts ...event.Option) *event.Notification[URLHistoryStateDeleteDetail] {
	return event.NewNotification(TypeURLHistoryStateDelete, URLHistoryStateDeleteDetail{Record: record}, opts...)
}

// URLHistoryStateDelete announces that an entry was removed.
func URLHistoryStateDelete(ctx context.Context, d event.Dispatcher, record DeletedRecord) error {
	return event.Notify(ctx, d, NewURLHistoryStateDeleteEvent(record))
}

// NewURLHistoryStateClearEvent creates the Model.UrlHistory.State.clear
// notification.
func NewURLHistoryStateClearEvent(opts ...event.Option) *event.Notification[Empty] {
	return event.NewNotification(TypeURLHistoryStateClear, Empty{}, opts...)
}

// URLHistoryStateClear announces that the URL history was cleared.
func URLHistoryStateClear(ctx context.Context, d event.Dispatcher) error {
	return event.Notify(ctx, d, NewURLHistoryStateClearEvent())
}

func urlHistoryEntries() []Entry {
	return []Entry{
		requestEntry[URLHistoryInsertDetail, *ChangeRecord[URLHistoryItem]]("Model.UrlHistory.insert", TypeURLHistoryInsert),
		requestEntry[URLHistoryListDetail, *ListResponse[URLHistoryItem]]("Model.UrlHistory.list", TypeURLHistoryList),
		requestEntry[URLHistoryQueryDetail, []URLHistoryItem]("Model.UrlHistory.query", TypeURLHistoryQuery),
		requestEntry[URLHistoryDeleteDetail, *DeletedRecord]("Model.UrlHistory.delete", TypeURLHistoryDelete),
		requestEntry[Empty, event.Void]("Model.UrlHistory.clear", TypeURLHistoryClear),
		notificationEntry[URLHistoryStateUpdateDetail]("Model.UrlHistory.State.update", TypeURLHistoryStateUpdate),
		notificationEntry[URLHistoryStateDeleteDetail]("Model.UrlHistory.State.delete", TypeURLHistoryStateDelete),
		notificationEntry[Empty]("Model.UrlHistory.State.clear", TypeURLHistoryStateClear),
	}
}
