package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Request actions event types.
const (
	// TypeRequestActionsRun runs request or response actions.
	TypeRequestActionsRun event.Type = "requestactionsrun"

	// TypeRequestActionsStateFailed announces a failed action.
	TypeRequestActionsStateFailed event.Type = "requestactionsstatefailed"
)

// Action kinds.
const (
	ActionKindRequest  = "request"
	ActionKindResponse = "response"
)

// RequestActionsRunDetail is the detail of RequestActions.run.
type RequestActionsRunDetail struct {
	// Kind is "request" or "response".
	Kind string `json:"kind"`

	// Request is the request the actions belong to.
	Request HTTPRequest `json:"request"`

	// Response is nil for request actions.
	Response *HTTPResponse `json:"response"`
}

// NewRequestActionsRunEvent creates the RequestActions.run request.
func NewRequestActionsRunEvent(kind string, request HTTPRequest, response *HTTPResponse, opts ...event.Option) *event.Request[RequestActionsRunDetail, *ActionsResult] {
	detail := RequestActionsRunDetail{
		Kind:     kind,
		Request:  request,
		Response: response,
	}
	return event.NewRequest[RequestActionsRunDetail, *ActionsResult](TypeRequestActionsRun, detail, opts...)
}

// RequestActionsRun runs the actions of kind for the request and response.
func RequestActionsRun(ctx context.Context, d event.Dispatcher, kind string, request HTTPRequest, response *HTTPResponse) (*ActionsResult, error) {
	return event.Call(ctx, d, NewRequestActionsRunEvent(kind, request, response))
}

// RequestActionsStateFailedDetail is the detail of
// RequestActions.State.failed.
type RequestActionsStateFailedDetail struct {
	// Action is the action name.
	Action string `json:"action"`

	// Message is the error text.
	Message string `json:"message"`
}

// NewRequestActionsStateFailedEvent creates the RequestActions.State.failed
// notification.
func NewRequestActionsStateFailedEvent(action, message string, opts ...event.Option) *event.Notification[RequestActionsStateFailedDetail] {
	return event.NewNotification(TypeRequestActionsStateFailed, RequestActionsStateFailedDetail{Action: action, Message: message}, opts...)
}

// RequestActionsStateFailed announces that action failed.
func RequestActionsStateFailed(ctx context.Context, d event.Dispatcher, action, message string) error {
	return event.Notify(ctx, d, NewRequestActionsStateFailedEvent(action, message))
}

func requestActionsEntries() []Entry {
	return []Entry{
		requestEntry[RequestActionsRunDetail, *ActionsResult]("RequestActions.run", TypeRequestActionsRun),
		notificationEntry[RequestActionsStateFailedDetail]("RequestActions.State.failed", TypeRequestActionsStateFailed),
	}
}
