package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Auth data model event types.
const (
	// TypeAuthDataQuery reads the credentials stored for an endpoint.
	TypeAuthDataQuery event.Type = "authdataquery"

	// TypeAuthDataUpdate stores credentials for an endpoint.
	TypeAuthDataUpdate event.Type = "authdataupdate"

	// TypeAuthDataStateUpdate announces stored credentials.
	TypeAuthDataStateUpdate event.Type = "authdatastateupdate"
)

// AuthDataQueryDetail is the detail of Model.AuthData.query.
type AuthDataQueryDetail struct {
	// URL of the endpoint.
	URL string `json:"url"`

	// Method is the authorization method, e.g. "basic".
	Method string `json:"method"`
}

// NewAuthDataQueryEvent creates the Model.AuthData.query request.
func NewAuthDataQueryEvent(url, method string, opts ...event.Option) *event.Request[AuthDataQueryDetail, *AuthData] {
	return event.NewRequest[AuthDataQueryDetail, *AuthData](TypeAuthDataQuery, AuthDataQueryDetail{URL: url, Method: method}, opts...)
}

// AuthDataQuery returns the credentials stored for the endpoint, or nil.
func AuthDataQuery(ctx context.Context, d event.Dispatcher, url, method string) (*AuthData, error) {
	return event.Call(ctx, d, NewAuthDataQueryEvent(url, method))
}

// AuthDataUpdateDetail is the detail of Model.AuthData.update.
type AuthDataUpdateDetail struct {
	// URL of the endpoint.
	URL string `json:"url"`

	// Method is the authorization method.
	Method string `json:"method"`

	// AuthData are the credentials.
	AuthData AuthData `json:"authData"`
}

// NewAuthDataUpdateEvent creates the Model.AuthData.update request.
func NewAuthDataUpdateEvent(url, method string, authData AuthData, opts ...event.Option) *event.Request[AuthDataUpdateDetail, *ChangeRecord[AuthData]] {
	detail := AuthDataUpdateDetail{
		URL:      url,
		Method:   method,
		AuthData: authData,
	}
	return event.NewRequest[AuthDataUpdateDetail, *ChangeRecord[AuthData]](TypeAuthDataUpdate, detail, opts...)
}

// AuthDataUpdate stores authData for the endpoint.
func AuthDataUpdate(ctx context.Context, d event.Dispatcher, url, method string, authData AuthData) (*ChangeRecord[AuthData], error) {
	return event.Call(ctx, d, NewAuthDataUpdateEvent(url, method, authData))
}

// AuthDataStateUpdateDetail is the detail of Model.AuthData.State.update.
type AuthDataStateUpdateDetail struct {
	// Record describes the change.
	Record ChangeRecord[AuthData] `json:"record"`
}

// NewAuthDataStateUpdateEvent creates the Model.AuthData.State.update
// notification.
func NewAuthDataStateUpdateEvent(record ChangeRecord[AuthData], opts ...event.Option) *event.Notification[AuthDataStateUpdateDetail] {
	return event.NewNotification(TypeAuthDataStateUpdate, AuthDataStateUpdateDetail{Record: record}, opts...)
}

// AuthDataStateUpdate announces a change to the stored credentials.
func AuthDataStateUpdate(ctx context.Context, d event.Dispatcher, record ChangeRecord[AuthData]) error {
	return event.Notify(ctx, d, NewAuthDataStateUpdateEvent(record))
}

func authDataEntries() []Entry {
	return []Entry{
		requestEntry[AuthDataQueryDetail, *AuthData]("Model.AuthData.query", TypeAuthDataQuery),
		requestEntry[AuthDataUpdateDetail, *ChangeRecord[AuthData]]("Model.AuthData.update", TypeAuthDataUpdate),
		notificationEntry[AuthDataStateUpdateDetail]("Model.AuthData.State.update", TypeAuthDataStateUpdate),
	}
}
