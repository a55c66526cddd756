package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// URL indexer event types.
const (
	// TypeURLIndexerUpdate indexes request URLs for search.
	TypeURLIndexerUpdate event.Type = "urlindexerupdate"

	// TypeURLIndexerQuery searches the URL index.
	TypeURLIndexerQuery event.Type = "urlindexerquery"

	// TypeURLIndexerStateFinished announces that indexing finished.
	TypeURLIndexerStateFinished event.Type = "urlindexerstatefinished"
)

// URLIndexerUpdateDetail is the detail of Model.UrlIndexer.update.
type URLIndexerUpdateDetail struct {
	// Data are the requests to index.
	Data []IndexableRequest `json:"data"`
}

// NewURLIndexerUpdateEvent creates the Model.UrlIndexer.update request.
func NewURLIndexerUpdateEvent(data []IndexableRequest, opts ...event.Option) *event.Request[URLIndexerUpdateDetail, event.Void] {
	return event.NewRequest[URLIndexerUpdateDetail, event.Void](TypeURLIndexerUpdate, URLIndexerUpdateDetail{Data: data}, opts...)
}

// URLIndexerUpdate indexes the URLs of data.
func URLIndexerUpdate(ctx context.Context, d event.Dispatcher, data []IndexableRequest) error {
	return event.Perform(ctx, d, NewURLIndexerUpdateEvent(data))
}

// URLIndexerQueryDetail is the detail of Model.UrlIndexer.query.
type URLIndexerQueryDetail struct {
	// Term is the URL fragment to look for.
	Term string `json:"term"`

	// Type limits the search to one store. Empty searches both.
	Type string `json:"type"`

	// Detailed matches any part of the URL instead of its prefix.
	Detailed bool `json:"detailed"`
}

// NewURLIndexerQueryEvent creates the Model.UrlIndexer.query request.
func NewURLIndexerQueryEvent(term, typ string, detailed bool, opts ...event.Option) *event.Request[URLIndexerQueryDetail, IndexQueryResult] {
	detail := URLIndexerQueryDetail{
		Term:     term,
		Type:     typ,
		Detailed: detailed,
	}
	return event.NewRequest[URLIndexerQueryDetail, IndexQueryResult](TypeURLIndexerQuery, detail, opts...)
}

// URLIndexerQuery returns the ids of the requests whose URL matches term,
// mapped to their store.
func URLIndexerQuery(ctx context.Context, d event.Dispatcher, term, typ string, detailed bool) (IndexQueryResult, error) {
	return event.Call(ctx, d, NewURLIndexerQueryEvent(term, typ, detailed))
}

// NewURLIndexerStateFinishedEvent creates the
// Model.UrlIndexer.State.finished notification.
func NewURLIndexerStateFinishedEvent(opts ...event.Option) *event.Notification[Empty] {
	return event.NewNotification(TypeURLIndexerStateFinished, Empty{}, opts...)
}

// URLIndexerStateFinished announces that the indexer is idle.
func URLIndexerStateFinished(ctx context.Context, d event.Dispatcher) error {
	return event.Notify(ctx, d, NewURLIndexerStateFinishedEvent())
}

func urlIndexerEntries() []Entry {
	return []Entry{
		requestEntry[URLIndexerUpdateDetail, event.Void]("Model.UrlIndexer.update", TypeURLIndexerUpdate),
		requestEntry[URLIndexerQueryDetail, IndexQueryResult]("Model.UrlIndexer.query", TypeURLIndexerQuery),
		notificationEntry[Empty]("Model.UrlIndexer.State.finished", TypeURLIndexerStateFinished),
	}
}
