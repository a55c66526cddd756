package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// WebSocket URL history model event types.
const (
	// TypeWSURLHistoryInsert records a WebSocket URL in the history.
	TypeWSURLHistoryInsert event.Type = "wsurlhistoryinsert"

	// TypeWSURLHistoryList lists the WebSocket URL history.
	TypeWSURLHistoryList event.Type = "wsurlhistorylist"

	// TypeWSURLHistoryQuery searches the WebSocket URL history.
	TypeWSURLHistoryQuery event.Type = "wsurlhistoryquery"

	// TypeWSURLHistoryStateUpdate announces a recorded WebSocket URL.
	TypeWSURLHistoryStateUpdate event.Type = "wsurlhistorystateupdate"
)

// WSURLHistoryInsertDetail is the detail of Model.WSUrlHistory.insert.
type WSURLHistoryInsertDetail struct {
	URL string `json:"url"`
}

// NewWSURLHistoryInsertEvent creates the Model.WSUrlHistory.insert request.
func NewWSURLHistoryInsertEvent(url string, opts ...event.Option) *event.Request[WSURLHistoryInsertDetail, *ChangeRecord[URLHistoryItem]] {
	return event.NewRequest[WSURLHistoryInsertDetail, *ChangeRecord[URLHistoryItem]](TypeWSURLHistoryInsert, WSURLHistoryInsertDetail{URL: url}, opts...)
}

// WSURLHistoryInsert records url in the WebSocket history.
func WSURLHistoryInsert(ctx context.Context, d event.Dispatcher, url string) (*ChangeRecord[URLHistoryItem], error) {
	return event.Call(ctx, d, NewWSURLHistoryInsertEvent(url))
}

// WSURLHistoryListDetail is the detail of Model.WSUrlHistory.list.
type WSURLHistoryListDetail struct {
	Limit         int    `json:"limit"`
	NextPageToken string `json:"nextPageToken"`
}

// NewWSURLHistoryListEvent creates the Model.WSUrlHistory.list request.
func NewWSURLHistoryListEvent(limit int, nextPageToken string, opts ...event.Option) *event.Request[WSURLHistoryListDetail, *ListResponse[URLHistoryItem]] {
	return event.NewRequest[WSURLHistoryListDetail, *ListResponse[URLHistoryItem]](TypeWSURLHistoryList, WSURLHistoryListDetail{Limit: limit, NextPageToken: nextPageToken}, opts...)
}

// WSURLHistoryList returns a page of the WebSocket URL history.
func WSURLHistoryList(ctx context.Context, d event.Dispatcher, limit int, nextPageToken string) (*ListResponse[URLHistoryItem], error) {
	return event.Call(ctx, d, NewWSURLHistoryListEvent(limit, nextPageToken))
}

// WSURLHistoryQueryDetail is the detail of Model.WSUrlHistory.query.
type WSURLHistoryQueryDetail struct {
	Term string `json:"term"`
}

// NewWSURLHistoryQueryEvent creates the Model.WSUrlHistory.query request.
func NewWSURLHistoryQueryEvent(term string, opts ...event.Option) *event.Request[WSURLHistoryQueryDetail, []URLHistoryItem] {
	return event.NewRequest[WSURLHistoryQueryDetail, []URLHistoryItem](TypeWSURLHistoryQuery, WSURLHistoryQueryDetail{Term: term}, opts...)
}

// WSURLHistoryQuery returns the WebSocket history entries matching term.
func WSURLHistoryQuery(ctx context.Context, d event.Dispatcher, term string) ([]URLHistoryItem, error) {
	return event.Call(ctx, d, NewWSURLHistoryQueryEvent(term))
}

// WSURLHistoryStateUpdateDetail is the detail of
// Model.WSUrlHistory.State.update.
type WSURLHistoryStateUpdateDetail struct {
	Record ChangeRecord[URLHistoryItem] `json:"record"`
}

// NewWSURLHistoryStateUpdateEvent creates the
// Model.WSUrlHistory.State.update notification.
func NewWSURLHistoryStateUpdateEvent(record ChangeRecord[URLHistoryItem], opts ...event.Option) *event.Notification[WSURLHistoryStateUpdateDetail] {
	return event.NewNotification(TypeWSURLHistoryStateUpdate, WSURLHistoryStateUpdateDetail{Record: record}, opts...)
}

// WSURLHistoryStateUpdate announces that a WebSocket URL was recorded.
func WSURLHistoryStateUpdate(ctx context.Context, d event.Dispatcher, record ChangeRecord[URLHistoryItem]) error {
	return event.Notify(ctx, d, NewWSURLHistoryStateUpdateEvent(record))
}

func wsURLHistoryEntries() []Entry {
	return []Entry{
		requestEntry[WSURLHistoryInsertDetail, *ChangeRecord[URLHistoryItem]]("Model.WSUrlHistory.insert", TypeWSURLHistoryInsert),
		requestEntry[WSURLHistoryListDetail, *ListResponse[URLHistoryItem]]("Model.WSUrlHistory.list", TypeWSURLHistoryList),
		requestEntry[WSURLHistoryQueryDetail, []URLHistoryItem]("Model.WSUrlHistory.query", TypeWSURLHistoryQuery),
		notificationEntry[WSURLHistoryStateUpdateDetail]("Model.WSUrlHistory.State.update", TypeWSURLHistoryStateUpdate),
	}
}
