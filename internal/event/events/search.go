package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// In-page search event types.
const (
	// TypeSearchFind searches the page.
	TypeSearchFind event.Type = "arcsearchfind"

	// TypeSearchClear clears the search highlight.
	TypeSearchClear event.Type = "arcsearchclear"

	// TypeSearchStateFound announces search matches.
	TypeSearchStateFound event.Type = "arcsearchstatefound"
)

// SearchFindDetail is the detail of Search.find.
type SearchFindDetail struct {
	// Query is the text to find.
	Query string `json:"query"`

	// Options configure the search.
	Options SearchOptions `json:"options"`
}

// NewSearchFindEvent creates the Search.find request.
func NewSearchFindEvent(query string, options SearchOptions, opts ...event.Option) *event.Request[SearchFindDetail, event.Void] {
	return event.NewRequest[SearchFindDetail, event.Void](TypeSearchFind, SearchFindDetail{Query: query, Options: options}, opts...)
}

// SearchFind highlights query in the page.
func SearchFind(ctx context.Context, d event.Dispatcher, query string, options SearchOptions) error {
	return event.Perform(ctx, d, NewSearchFindEvent(query, options))
}

// NewSearchClearEvent creates the Search.clear request.
func NewSearchClearEvent(opts ...event.Option) *event.Request[Empty, event.Void] {
	return event.NewRequest[Empty, event.Void](TypeSearchClear, Empty{}, opts...)
}

// SearchClear clears the search highlight.
func SearchClear(ctx context.Context, d event.Dispatcher) error {
	return event.Perform(ctx, d, NewSearchClearEvent())
}

// SearchStateFoundDetail is the detail of Search.State.found.
type SearchStateFoundDetail struct {
	// Matches is the number of matches.
	Matches int `json:"matches"`

	// ActiveMatch is the 1-based index of the highlighted match.
	ActiveMatch int `json:"activeMatch"`
}

// NewSearchStateFoundEvent creates the Search.State.found notification.
func NewSearchStateFoundEvent(matches, activeMatch int, opts ...event.Option) *event.Notification[SearchStateFoundDetail] {
	return event.NewNotification(TypeSearchStateFound, SearchStateFoundDetail{Matches: matches, ActiveMatch: activeMatch}, opts...)
}

// SearchStateFound announces the number of matches and the highlighted one.
func SearchStateFound(ctx context.Context, d event.Dispatcher, matches, activeMatch int) error {
	return event.Notify(ctx, d, NewSearchStateFoundEvent(matches, activeMatch))
}

func searchEntries() []Entry {
	return []Entry{
		requestEntry[SearchFindDetail, event.Void]("Search.find", TypeSearchFind),
		requestEntry[Empty, event.Void]("Search.clear", TypeSearchClear),
		notificationEntry[SearchStateFoundDetail]("Search.State.found", TypeSearchStateFound),
	}
}
