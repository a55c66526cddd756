package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Transport event types.
const (
	// TypeTransportRequest asks the application to make a request, running
	// request actions first.
	TypeTransportRequest event.Type = "apirequest"

	// TypeTransportDirect asks the transport to send a request as is.
	TypeTransportDirect event.Type = "apitransport"

	// TypeTransportAbort asks the transport to abort a request in flight.
	TypeTransportAbort event.Type = "apiabort"

	// TypeTransportResponse announces a transported response.
	TypeTransportResponse event.Type = "apiresponse"

	// TypeTransportHTTP sends a request and answers with the response.
	TypeTransportHTTP event.Type = "apihttptransport"
)

// TransportRequestDetail is the detail of Transport.request.
type TransportRequestDetail struct {
	// ID correlates the request with its response.
	ID string `json:"id"`

	// Request is the request as authored.
	Request HTTPRequest `json:"request"`

	// Config configures the transport.
	Config RequestConfig `json:"config"`
}

// NewTransportRequestEvent creates the Transport.request request.
func NewTransportRequestEvent(id string, request HTTPRequest, config RequestConfig, opts ...event.Option) *event.Request[TransportRequestDetail, event.Void] {
	detail := TransportRequestDetail{
		ID:      id,
		Request: request,
		Config:  config,
	}
	return event.NewRequest[TransportRequestDetail, event.Void](TypeTransportRequest, detail, opts...)
}

// TransportRequest asks the application to send request. The response
// arrives as a Transport.response notification.
func TransportRequest(ctx context.Context, d event.Dispatcher, id string, request HTTPRequest, config RequestConfig) error {
	return event.Perform(ctx, d, NewTransportRequestEvent(id, request, config))
}

// TransportDirectDetail is the detail of Transport.transport.
type TransportDirectDetail struct {
	// ID correlates the request with its response.
	ID string `json:"id"`

	// Request is the request to send.
	Request HTTPRequest `json:"request"`

	// Config configures the transport.
	Config RequestConfig `json:"config"`
}

// NewTransportDirectEvent creates the Transport.transport request.
func NewTransportDirectEvent(id string, request HTTPRequest, config RequestConfig, opts ...event.Option) *event.Request[TransportDirectDetail, event.Void] {
	detail := TransportDirectDetail{
		ID:      id,
		Request: request,
		Config:  config,
	}
	return event.NewRequest[TransportDirectDetail, event.Void](TypeTransportDirect, detail, opts...)
}

// TransportDirect hands request to the transport. The response arrives as a
// Transport.response notification.
func TransportDirect(ctx context.Context, d event.Dispatcher, id string, request HTTPRequest, config RequestConfig) error {
	return event.Perform(ctx, d, NewTransportDirectEvent(id, request, config))
}

// TransportAbortDetail is the detail of Transport.abort.
type TransportAbortDetail struct {
	// ID of the request to abort.
	ID string `json:"id"`
}

// NewTransportAbortEvent creates the Transport.abort notification.
func NewTransportAbortEvent(id string, opts ...event.Option) *event.Notification[TransportAbortDetail] {
	return event.NewNotification(TypeTransportAbort, TransportAbortDetail{ID: id}, opts...)
}

// TransportAbort aborts the request with the given id.
func TransportAbort(ctx context.Context, d event.Dispatcher, id string) error {
	return event.Notify(ctx, d, NewTransportAbortEvent(id))
}

// TransportResponseDetail is the detail of Transport.response.
type TransportResponseDetail struct {
	// ID of the request.
	ID string `json:"id"`

	// Source is the request as authored.
	Source HTTPRequest `json:"source"`

	// Request is the request as it was sent.
	Request TransportRecord `json:"request"`

	// Response is the received response.
	Response HTTPResponse `json:"response"`
}

// NewTransportResponseEvent creates the Transport.response notification.
func NewTransportResponseEvent(id string, source HTTPRequest, request TransportRecord, response HTTPResponse, opts ...event.Option) *event.Notification[TransportResponseDetail] {
	detail := TransportResponseDetail{
		ID:       id,
		Source:   source,
		Request:  request,
		Response: response,
	}
	return event.NewNotification(TypeTransportResponse, detail, opts...)
}

// TransportResponse announces the response to the request with the given id.
func TransportResponse(ctx context.Context, d event.Dispatcher, id string, source HTTPRequest, request TransportRecord, response HTTPResponse) error {
	return event.Notify(ctx, d, NewTransportResponseEvent(id, source, request, response))
}

// TransportHTTPDetail is the detail of Transport.httpTransport.
type TransportHTTPDetail struct {
	// Request is the request to send.
	Request HTTPRequest `json:"request"`

	// Config configures the transport.
	Config RequestConfig `json:"config"`
}

// NewTransportHTTPEvent creates the Transport.httpTransport request.
func NewTransportHTTPEvent(request HTTPRequest, config RequestConfig, opts ...event.Option) *event.Request[TransportHTTPDetail, *TransportResult] {
	return event.NewRequest[TransportHTTPDetail, *TransportResult](TypeTransportHTTP, TransportHTTPDetail{Request: request, Config: config}, opts...)
}

// TransportHTTP sends request and returns the response.
func TransportHTTP(ctx context.Context, d event.Dispatcher, request HTTPRequest, config RequestConfig) (*TransportResult, error) {
	return event.Call(ctx, d, NewTransportHTTPEvent(request, config))
}

func transportEntries() []Entry {
	return []Entry{
		requestEntry[TransportRequestDetail, event.Void]("Transport.request", TypeTransportRequest),
		requestEntry[TransportDirectDetail, event.Void]("Transport.transport", TypeTransportDirect),
		notificationEntry[TransportAbortDetail]("Transport.abort", TypeTransportAbort),
		notificationEntry[TransportResponseDetail]("Transport.response", TypeTransportResponse),
		requestEntry[TransportHTTPDetail, *TransportResult]("Transport.httpTransport", TypeTransportHTTP),
	}
}
