package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Menu event types.
const (
	// TypeMenuPopup detaches a menu into its own window.
	TypeMenuPopup event.Type = "menupopup"

	// TypeMenuNavigate navigates from a detached menu.
	TypeMenuNavigate event.Type = "menunavigate"

	// TypeMenuToggle opens or closes a menu panel.
	TypeMenuToggle event.Type = "menutoggle"

	// TypeMenuStateOpen announces a detached menu.
	TypeMenuStateOpen event.Type = "menustateopen"

	// TypeMenuStateClose announces a closed menu window.
	TypeMenuStateClose event.Type = "menustateclose"
)

// MenuPopupDetail is the detail of Menu.popup.
type MenuPopupDetail struct {
	// Menu is the menu name.
	Menu string `json:"menu"`
}

// NewMenuPopupEvent creates the Menu.popup request.
func NewMenuPopupEvent(menu string, opts ...event.Option) *event.Request[MenuPopupDetail, event.Void] {
	return event.NewRequest[MenuPopupDetail, event.Void](TypeMenuPopup, MenuPopupDetail{Menu: menu}, opts...)
}

// MenuPopup opens menu in a separate window.
func MenuPopup(ctx context.Context, d event.Dispatcher, menu string) error {
	return event.Perform(ctx, d, NewMenuPopupEvent(menu))
}

// MenuNavigateDetail is the detail of Menu.navigate.
type MenuNavigateDetail struct {
	// Type is the navigation kind.
	Type string `json:"type"`

	// Args are the navigation arguments.
	Args []any `json:"args"`
}

// NewMenuNavigateEvent creates the Menu.navigate request.
func NewMenuNavigateEvent(typ string, args []any, opts ...event.Option) *event.Request[MenuNavigateDetail, event.Void] {
	return event.NewRequest[MenuNavigateDetail, event.Void](TypeMenuNavigate, MenuNavigateDetail{Type: typ, Args: args}, opts...)
}

// MenuNavigate navigates the main window from a detached menu.
func MenuNavigate(ctx context.Context, d event.Dispatcher, typ string, args []any) error {
	return event.Perform(ctx, d, NewMenuNavigateEvent(typ, args))
}

// MenuToggleDetail is the detail of Menu.toggle.
type MenuToggleDetail struct {
	// Menu is the menu name.
	Menu string `json:"menu"`

	// Open is the requested state.
	Open bool `json:"open"`
}

// NewMenuToggleEvent creates the Menu.toggle request.
func NewMenuToggleEvent(menu string, open bool, opts ...event.Option) *event.Request[MenuToggleDetail, event.Void] {
	return event.NewRequest[MenuToggleDetail, event.Void](TypeMenuToggle, MenuToggleDetail{Menu: menu, Open: open}, opts...)
}

// MenuToggle opens or closes menu.
func MenuToggle(ctx context.Context, d event.Dispatcher, menu string, open bool) error {
	return event.Perform(ctx, d, NewMenuToggleEvent(menu, open))
}

// MenuStateOpenDetail is the detail of Menu.State.open.
type MenuStateOpenDetail struct {
	// Menu is the menu name.
	Menu string `json:"menu"`
}

// NewMenuStateOpenEvent creates the Menu.State.open notification.
func NewMenuStateOpenEvent(menu string, opts ...event.Option) *event.Notification[MenuStateOpenDetail] {
	return event.NewNotification(TypeMenuStateOpen, MenuStateOpenDetail{Menu: menu}, opts...)
}

// MenuStateOpen announces that menu was detached.
func MenuStateOpen(ctx context.Context, d event.Dispatcher, menu string) error {
	return event.Notify(ctx, d, NewMenuStateOpenEvent(menu))
}

// MenuStateCloseDetail is the detail of Menu.State.close.
type MenuStateCloseDetail struct {
	// Menu is the menu name.
	Menu string `json:"menu"`
}

// NewMenuStateCloseEvent creates the Menu.State.close notification.
func NewMenuStateCloseEvent(menu string, opts ...event.Option) *event.Notification[MenuStateCloseDetail] {
	return event.NewNotification(TypeMenuStateClose, MenuStateCloseDetail{Menu: menu}, opts...)
}

// MenuStateClose announces that the window of menu closed.
func MenuStateClose(ctx context.Context, d event.Dispatcher, menu string) error {
	return event.Notify(ctx, d, NewMenuStateCloseEvent(menu))
}

func menuEntries() []Entry {
	return []Entry{
		requestEntry[MenuPopupDetail, event.Void]("Menu.popup", TypeMenuPopup),
		requestEntry[MenuNavigateDetail, event.Void]("Menu.navigate", TypeMenuNavigate),
		requestEntry[MenuToggleDetail, event.Void]("Menu.toggle", TypeMenuToggle),
		notificationEntry[MenuStateOpenDetail]("Menu.State.open", TypeMenuStateOpen),
		notificationEntry[MenuStateCloseDetail]("Menu.State.close", TypeMenuStateClose),
	}
}
