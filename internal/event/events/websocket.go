package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// WebSocket event types.
const (
	// TypeWebSocketConnect opens a WebSocket connection.
	TypeWebSocketConnect event.Type = "websocketconnect"

	// TypeWebSocketDisconnect closes a WebSocket connection.
	TypeWebSocketDisconnect event.Type = "websocketdisconnect"

	// TypeWebSocketSend sends a message on a WebSocket connection.
	TypeWebSocketSend event.Type = "websocketsend"

	// TypeWebSocketStateConnected announces an open WebSocket connection.
	TypeWebSocketStateConnected event.Type = "websocketstateconnected"

	// TypeWebSocketStateDisconnected announces a closed WebSocket connection.
	TypeWebSocketStateDisconnected event.Type = "websocketstatedisconnected"

	// TypeWebSocketStateMessage announces a WebSocket message.
	TypeWebSocketStateMessage event.Type = "websocketstatemessage"
)

// WebSocket message directions.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// WebSocketConnectDetail is the detail of WebSocket.connect.
type WebSocketConnectDetail struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// NewWebSocketConnectEvent creates the WebSocket.connect request.
func NewWebSocketConnectEvent(id, url string, opts ...event.Option) *event.Request[WebSocketConnectDetail, event.Void] {
	return event.NewRequest[WebSocketConnectDetail, event.Void](TypeWebSocketConnect, WebSocketConnectDetail{ID: id, URL: url}, opts...)
}

// WebSocketConnect opens a connection to url identified by id.
func WebSocketConnect(ctx context.Context, d event.Dispatcher, id, url string) error {
	return event.Perform(ctx, d, NewWebSocketConnectEvent(id, url))
}

// WebSocketDisconnectDetail is the detail of WebSocket.disconnect.
type WebSocketDisconnectDetail struct {
	ID string `json:"id"`
}

// NewWebSocketDisconnectEvent creates the WebSocket.disconnect request.
func NewWebSocketDisconnectEvent(id string, opts ...event.Option) *event.Request[WebSocketDisconnectDetail, event.Void] {
	return event.NewRequest[WebSocketDisconnectDetail, event.Void](TypeWebSocketDisconnect, WebSocketDisconnectDetail{ID: id}, opts...)
}

// WebSocketDisconnect closes the connection identified by id.
func WebSocketDisconnect(ctx context.Context, d event.Dispatcher, id string) error {
	return event.Perform(ctx, d, NewWebSocketDisconnectEvent(id))
}

// WebSocketSendDetail is the detail of WebSocket.send.
type WebSocketSendDetail struct {
	ID      string `json:"id"`
	Message any    `json:"message"`
}

// NewWebSocketSendEvent creates the WebSocket.send request.
func NewWebSocketSendEvent(id string, message any, opts ...event.Option) *event.Request[WebSocketSendDetail, event.Void] {
	return event.NewRequest[WebSocketSendDetail, event.Void](TypeWebSocketSend, WebSocketSendDetail{ID: id, Message: message}, opts...)
}

// WebSocketSend sends message on the connection identified by id.
func WebSocketSend(ctx context.Context, d event.Dispatcher, id string, message any) error {
	return event.Perform(ctx, d, NewWebSocketSendEvent(id, message))
}

// WebSocketStateConnectedDetail is the detail of WebSocket.State.connected.
type WebSocketStateConnectedDetail struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// NewWebSocketStateConnectedEvent creates the WebSocket.State.connected
// notification.
func NewWebSocketStateConnectedEvent(id, url string, opts ...event.Option) *event.Notification[WebSocketStateConnectedDetail] {
	return event.NewNotification(TypeWebSocketStateConnected, WebSocketStateConnectedDetail{ID: id, URL: url}, opts...)
}

// WebSocketStateConnected announces that the connection identified by id is
// open.
func WebSocketStateConnected(ctx context.Context, d event.Dispatcher, id, url string) error {
	return event.Notify(ctx, d, NewWebSocketStateConnectedEvent(id, url))
}

// WebSocketStateDisconnectedDetail is the detail of
// WebSocket.State.disconnected.
type WebSocketStateDisconnectedDetail struct {
	ID     string `json:"id"`
	Code   int    `json:"code"`
	Reason string `json:"reason"`
}

// NewWebSocketStateDisconnectedEvent creates the
// WebSocket.State.disconnected notification.
func NewWebSocketStateDisconnectedEvent(id string, code int, reason string, opts ...event.Option) *event.Notification[WebSocketStateDisconnectedDetail] {
	detail := WebSocketStateDisconnectedDetail{
		ID:     id,
		Code:   code,
		Reason: reason,
	}
	return event.NewNotification(TypeWebSocketStateDisconnected, detail, opts...)
}

// WebSocketStateDisconnected announces that the connection identified by id
// closed.
func WebSocketStateDisconnected(ctx context.Context, d event.Dispatcher, id string, code int, reason string) error {
	return event.Notify(ctx, d, NewWebSocketStateDisconnectedEvent(id, code, reason))
}

// WebSocketStateMessageDetail is the detail of WebSocket.State.message.
type WebSocketStateMessageDetail struct {
	ID        string `json:"id"`
	Message   any    `json:"message"`
	Direction string `json:"direction"`
}

// NewWebSocketStateMessageEvent creates the WebSocket.State.message
// notification.
func NewWebSocketStateMessageEvent(id string, message any, direction string, opts ...event.Option) *event.Notification[WebSocketStateMessageDetail] {
	detail := WebSocketStateMessageDetail{
		ID:        id,
		Message:   message,
		Direction: direction,
	}
	return event.NewNotification(TypeWebSocketStateMessage, detail, opts...)
}

// WebSocketStateMessage announces a message sent or received on the
// connection identified by id.
func WebSocketStateMessage(ctx context.Context, d event.Dispatcher, id string, message any, direction string) error {
	return event.Notify(ctx, d, NewWebSocketStateMessageEvent(id, message, direction))
}

func webSocketEntries() []Entry {
	return []Entry{
		requestEntry[WebSocketConnectDetail, event.Void]("WebSocket.connect", TypeWebSocketConnect),
		requestEntry[WebSocketDisconnectDetail, event.Void]("WebSocket.disconnect", TypeWebSocketDisconnect),
		requestEntry[WebSocketSendDetail, event.Void]("WebSocket.send", TypeWebSocketSend),
		notificationEntry[WebSocketStateConnectedDetail]("WebSocket.State.connected", TypeWebSocketStateConnected),
		notificationEntry[WebSocketStateDisconnectedDetail]("WebSocket.State.disconnected", TypeWebSocketStateDisconnected),
		notificationEntry[WebSocketStateMessageDetail]("WebSocket.State.message", TypeWebSocketStateMessage),
	}
}
