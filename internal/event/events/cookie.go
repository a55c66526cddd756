package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Session cookie event types.
const (
	// TypeCookieListAll lists every cookie of the session.
	TypeCookieListAll event.Type = "sessioncookielistall"

	// TypeCookieListDomain lists the cookies of a domain.
	TypeCookieListDomain event.Type = "sessioncookielistdomain"

	// TypeCookieListURL lists the cookies sent to a URL.
	TypeCookieListURL event.Type = "sessioncookielisturl"

	// TypeCookieDelete removes cookies from the session.
	TypeCookieDelete event.Type = "sessioncookiedelete"

	// TypeCookieDeleteURL removes a cookie by URL and name.
	TypeCookieDeleteURL event.Type = "sessioncookiedeleteurl"

	// TypeCookieUpdate creates or updates a cookie.
	TypeCookieUpdate event.Type = "sessioncookieupdate"

	// TypeCookieUpdateBulk creates or updates cookies.
	TypeCookieUpdateBulk event.Type = "sessioncookieupdatebulk"

	// TypeCookieStateUpdate announces a changed cookie.
	TypeCookieStateUpdate event.Type = "sessioncookiestateupdate"

	// TypeCookieStateDelete announces a removed cookie.
	TypeCookieStateDelete event.Type = "sessioncookiestatedelete"
)

// NewCookieListAllEvent creates the Cookie.listAll request.
func NewCookieListAllEvent(opts ...event.Option) *event.Request[Empty, []Cookie] {
	return event.NewRequest[Empty, []Cookie](TypeCookieListAll, Empty{}, opts...)
}

// CookieListAll returns every cookie stored in the session.
func CookieListAll(ctx context.Context, d event.Dispatcher) ([]Cookie, error) {
	return event.Call(ctx, d, NewCookieListAllEvent())
}

// CookieListDomainDetail is the detail of Cookie.listDomain.
type CookieListDomainDetail struct {
	Domain string `json:"domain"`
}

// NewCookieListDomainEvent creates the Cookie.listDomain request.
func NewCookieListDomainEvent(domain string, opts ...event.Option) *event.Request[CookieListDomainDetail, []Cookie] {
	return event.NewRequest[CookieListDomainDetail, []Cookie](TypeCookieListDomain, CookieListDomainDetail{Domain: domain}, opts...)
}

// CookieListDomain returns the cookies set for domain.
func CookieListDomain(ctx context.Context, d event.Dispatcher, domain string) ([]Cookie, error) {
	return event.Call(ctx, d, NewCookieListDomainEvent(domain))
}

// CookieListURLDetail is the detail of Cookie.listUrl.
type CookieListURLDetail struct {
	URL string `json:"url"`
}

// NewCookieListURLEvent creates the Cookie.listUrl request.
func NewCookieListURLEvent(url string, opts ...event.Option) *event.Request[CookieListURLDetail, []Cookie] {
	return event.NewRequest[CookieListURLDetail, []Cookie](TypeCookieListURL, CookieListURLDetail{URL: url}, opts...)
}

// CookieListURL returns the cookies the session would send to url.
func CookieListURL(ctx context.Context, d event.Dispatcher, url string) ([]Cookie, error) {
	return event.Call(ctx, d, NewCookieListURLEvent(url))
}

// CookieDeleteDetail is the detail of Cookie.delete.
type CookieDeleteDetail struct {
	Cookies []Cookie `json:"cookies"`
}

// NewCookieDeleteEvent creates the Cookie.delete request.
func NewCookieDeleteEvent(cookies []Cookie, opts ...event.Option) *event.Request[CookieDeleteDetail, event.Void] {
	return event.NewRequest[CookieDeleteDetail, event.Void](TypeCookieDelete, CookieDeleteDetail{Cookies: cookies}, opts...)
}

// CookieDelete removes cookies from the session.
func CookieDelete(ctx context.Context, d event.Dispatcher, cookies []Cookie) error {
	return event.Perform(ctx, d, NewCookieDeleteEvent(cookies))
}

// CookieDeleteURLDetail is the detail of Cookie.deleteUrl.
type CookieDeleteURLDetail struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// NewCookieDeleteURLEvent creates the Cookie.deleteUrl request.
func NewCookieDeleteURLEvent(url, name string, opts ...event.Option) *event.Request[CookieDeleteURLDetail, event.Void] {
	return event.NewRequest[CookieDeleteURLDetail, event.Void](TypeCookieDeleteURL, CookieDeleteURLDetail{URL: url, Name: name}, opts...)
}

// CookieDeleteURL removes the cookie called name that is set for url.
func CookieDeleteURL(ctx context.Context, d event.Dispatcher, url, name string) error {
	return event.Perform(ctx, d, NewCookieDeleteURLEvent(url, name))
}

// CookieUpdateDetail is the detail of Cookie.update.
type CookieUpdateDetail struct {
	Cookie Cookie `json:"cookie"`
}

// NewCookieUpdateEvent creates the Cookie.update request.
func NewCookieUpdateEvent(cookie Cookie, opts ...event.Option) *event.Request[CookieUpdateDetail, event.Void] {
	return event.NewRequest[CookieUpdateDetail, event.Void](TypeCookieUpdate, CookieUpdateDetail{Cookie: cookie}, opts...)
}

// CookieUpdate stores cookie in the session.
func CookieUpdate(ctx context.Context, d event.Dispatcher, cookie Cookie) error {
	return event.Perform(ctx, d, NewCookieUpdateEvent(cookie))
}

// CookieUpdateBulkDetail is the detail of Cookie.updateBulk.
type CookieUpdateBulkDetail struct {
	Cookies []Cookie `json:"cookies"`
}

// NewCookieUpdateBulkEvent creates the Cookie.updateBulk request.
func NewCookieUpdateBulkEvent(cookies []Cookie, opts ...event.Option) *event.Request[CookieUpdateBulkDetail, event.Void] {
	return event.NewRequest[CookieUpdateBulkDetail, event.Void](TypeCookieUpdateBulk, CookieUpdateBulkDetail{Cookies: cookies}, opts...)
}

// CookieUpdateBulk stores cookies in the session.
func CookieUpdateBulk(ctx context.Context, d event.Dispatcher, cookies []Cookie) error {
	return event.Perform(ctx, d, NewCookieUpdateBulkEvent(cookies))
}

// CookieStateUpdateDetail is the detail of Cookie.State.update.
type CookieStateUpdateDetail struct {
	Cookie Cookie `json:"cookie"`
}

// NewCookieStateUpdateEvent creates the Cookie.State.update notification.
func NewCookieStateUpdateEvent(cookie Cookie, opts ...event.Option) *event.Notification[CookieStateUpdateDetail] {
	return event.NewNotification(TypeCookieStateUpdate, CookieStateUpdateDetail{Cookie: cookie}, opts...)
}

// CookieStateUpdate announces that cookie was set.
func CookieStateUpdate(ctx context.Context, d event.Dispatcher, cookie Cookie) error {
	return event.Notify(ctx, d, NewCookieStateUpdateEvent(cookie))
}

// CookieStateDeleteDetail is the detail of Cookie.State.delete.
type CookieStateDeleteDetail struct {
	Cookie Cookie `json:"cookie"`
}

// NewCookieStateDeleteEvent creates the Cookie.State.delete notification.
func NewCookieStateDeleteEvent(cookie Cookie, opts ...event.Option) *event.Notification[CookieStateDeleteDetail] {
	return event.NewNotification(TypeCookieStateDelete, CookieStateDeleteDetail{Cookie: cookie}, opts...)
}

// CookieStateDelete announces that cookie was removed.
func CookieStateDelete(ctx context.Context, d event.Dispatcher, cookie Cookie) error {
	return event.Notify(ctx, d, NewCookieStateDeleteEvent(cookie))
}

func cookieEntries() []Entry {
	return []Entry{
		requestEntry[Empty, []Cookie]("Cookie.listAll", TypeCookieListAll),
		requestEntry[CookieListDomainDetail, []Cookie]("Cookie.listDomain", TypeCookieListDomain),
		requestEntry[CookieListURLDetail, []Cookie]("Cookie.listUrl", TypeCookieListURL),
		requestEntry[CookieDeleteDetail, event.Void]("Cookie.delete", TypeCookieDelete),
		requestEntry[CookieDeleteURLDetail, event.Void]("Cookie.deleteUrl", TypeCookieDeleteURL),
		requestEntry[CookieUpdateDetail, event.Void]("Cookie.update", TypeCookieUpdate),
		requestEntry[CookieUpdateBulkDetail, event.Void]("Cookie.updateBulk", TypeCookieUpdateBulk),
		notificationEntry[CookieStateUpdateDetail]("Cookie.State.update", TypeCookieStateUpdate),
		notificationEntry[CookieStateDeleteDetail]("Cookie.State.delete", TypeCookieStateDelete),
	}
}
