package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Client certificate model event types.
const (
	// TypeClientCertificateList lists stored client certificates.
	TypeClientCertificateList event.Type = "clientcertificatelist"

	// TypeClientCertificateRead reads a client certificate.
	TypeClientCertificateRead event.Type = "clientcertificateread"

	// TypeClientCertificateDelete deletes a client certificate.
	TypeClientCertificateDelete event.Type = "clientcertificatedelete"

	// TypeClientCertificateInsert stores a new client certificate.
	TypeClientCertificateInsert event.Type = "clientcertificateinsert"

	// TypeClientCertificateStateUpdate announces a stored client certificate.
	TypeClientCertificateStateUpdate event.Type = "clientcertificatestateupdate"

	// TypeClientCertificateStateDelete announces a removed client certificate.
	TypeClientCertificateStateDelete event.Type = "clientcertificatestatedelete"
)

// ClientCertificateListDetail is the detail of Model.ClientCertificate.list.
type ClientCertificateListDetail struct {
	// Limit is the maximum number of items to return. Zero uses the store
	// default.
	Limit int `json:"limit"`

	// NextPageToken continues a previous listing.
	NextPageToken string `json:"nextPageToken"`
}

// NewClientCertificateListEvent creates the Model.ClientCertificate.list
// request.
func NewClientCertificateListEvent(limit int, nextPageToken string, opts ...event.Option) *event.Request[ClientCertificateListDetail, *ListResponse[ClientCertificate]] {
	return event.NewRequest[ClientCertificateListDetail, *ListResponse[ClientCertificate]](TypeClientCertificateList, ClientCertificateListDetail{Limit: limit, NextPageToken: nextPageToken}, opts...)
}

// ClientCertificateList returns a page of stored client certificates.
func ClientCertificateList(ctx context.Context, d event.Dispatcher, limit int, nextPageToken string) (*ListResponse[ClientCertificate], error) {
	return event.Call(ctx, d, NewClientCertificateListEvent(limit, nextPageToken))
}

// ClientCertificateReadDetail is the detail of Model.ClientCertificate.read.
type ClientCertificateReadDetail struct {
	// ID of the certificate.
	ID string `json:"id"`
}

// NewClientCertificateReadEvent creates the Model.ClientCertificate.read
// request.
func NewClientCertificateReadEvent(id string, opts ...event.Option) *event.Request[ClientCertificateReadDetail, *ClientCertificate] {
	return event.NewRequest[ClientCertificateReadDetail, *ClientCertificate](TypeClientCertificateRead, ClientCertificateReadDetail{ID: id}, opts...)
}

// ClientCertificateRead returns the certificate with the given id.
func ClientCertificateRead(ctx context.Context, d event.Dispatcher, id string) (*ClientCertificate, error) {
	return event.Call(ctx, d, NewClientCertificateReadEvent(id))
}

// ClientCertificateDeleteDetail is the detail of
// Model.ClientCertificate.delete.
type ClientCertificateDeleteDetail struct {
	// ID of the certificate.
	ID string `json:"id"`
}

// NewClientCertificateDeleteEvent creates the Model.ClientCertificate.delete
// request.
func NewClientCertificateDeleteEvent(id string, opts ...event.Option) *event.Request[ClientCertificateDeleteDetail, *DeletedRecord] {
	return event.NewRequest[ClientCertificateDeleteDetail, *DeletedRecord](TypeClientCertificateDelete, ClientCertificateDeleteDetail{ID: id}, opts...)
}

// ClientCertificateDelete removes the certificate with the given id.
func ClientCertificateDelete(ctx context.Context, d event.Dispatcher, id string) (*DeletedRecord, error) {
	return event.Call(ctx, d, NewClientCertificateDeleteEvent(id))
}

// ClientCertificateInsertDetail is the detail of
// Model.ClientCertificate.insert.
type ClientCertificateInsertDetail struct {
	// Value is the certificate to store.
	Value ClientCertificate `json:"value"`
}

// NewClientCertificateInsertEvent creates the Model.ClientCertificate.insert
// request.
func NewClientCertificateInsertEvent(value ClientCertificate, opts ...event.Option) *event.Request[ClientCertificateInsertDetail, *ChangeRecord[ClientCertificate]] {
	return event.NewRequest[ClientCertificateInsertDetail, *ChangeRecord[ClientCertificate]](TypeClientCertificateInsert, ClientCertificateInsertDetail{Value: value}, opts...)
}

// ClientCertificateInsert stores value as a new certificate.
func ClientCertificateInsert(ctx context.Context, d event.Dispatcher, value ClientCertificate) (*ChangeRecord[ClientCertificate], error) {
	return event.Call(ctx, d, NewClientCertificateInsertEvent(value))
}

// ClientCertificateStateUpdateDetail is the detail of
// Model.ClientCertificate.State.update.
type ClientCertificateStateUpdateDetail struct {
	// Record describes the change.
	Record ChangeRecord[ClientCertificate] `json:"record"`
}

// NewClientCertificateStateUpdateEvent creates the
// Model.ClientCertificate.State.update notification.
func NewClientCertificateStateUpdateEvent(record ChangeRecord[ClientCertificate], opts ...event.Option) *event.Notification[ClientCertificateStateUpdateDetail] {
	return event.NewNotification(TypeClientCertificateStateUpdate, ClientCertificateStateUpdateDetail{Record: record}, opts...)
}

// ClientCertificateStateUpdate announces that a certificate was stored.
func ClientCertificateStateUpdate(ctx context.Context, d event.Dispatcher, record ChangeRecord[ClientCertificate]) error {
	return event.Notify(ctx, d, NewClientCertificateStateUpdateEvent(record))
}

// ClientCertificateStateDeleteDetail is the detail of
// Model.ClientCertificate.State.delete.
type ClientCertificateStateDeleteDetail struct {
	// Record identifies the removed certificate.
	Record DeletedRecord `json:"record"`
}

// NewClientCertificateStateDeleteEvent creates the
// Model.ClientCertificate.State.delete notification.
func NewClientCertificateStateDeleteEvent(record DeletedRecord, opts ...event.Option) *event.Notification[ClientCertificateStateDeleteDetail] {
	return event.NewNotification(TypeClientCertificateStateDelete, ClientCertificateStateDeleteDetail{Record: record}, opts...)
}

// ClientCertificateStateDelete announces that a certificate was removed.
func ClientCertificateStateDelete(ctx context.Context, d event.Dispatcher, record DeletedRecord) error {
	return event.Notify(ctx, d, NewClientCertificateStateDeleteEvent(record))
}

func clientCertificateEntries() []Entry {
	return []Entry{
		requestEntry[ClientCertificateListDetail, *ListResponse[ClientCertificate]]("Model.ClientCertificate.list", TypeClientCertificateList),
		requestEntry[ClientCertificateReadDetail, *ClientCertificate]("Model.ClientCertificate.read", TypeClientCertificateRead),
		requestEntry[ClientCertificateDeleteDetail, *DeletedRecord]("Model.ClientCertificate.delete", TypeClientCertificateDelete),
		requestEntry[ClientCertificateInsertDetail, *ChangeRecord[ClientCertificate]]("Model.ClientCertificate.insert", TypeClientCertificateInsert),
		notificationEntry[ClientCertificateStateUpdateDetail]("Model.ClientCertificate.State.update", TypeClientCertificateStateUpdate),
		notificationEntry[ClientCertificateStateDeleteDetail]("Model.ClientCertificate.State.delete", TypeClientCertificateStateDelete),
	}
}
