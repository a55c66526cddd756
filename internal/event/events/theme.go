package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Theme event types.
const (
	// TypeThemeLoadApplicationTheme loads the theme of the application.
	TypeThemeLoadApplicationTheme event.Type = "themeloadapplicationtheme"

	// TypeThemeReadState reads the state of the theming system.
	TypeThemeReadState event.Type = "themereadstate"

	// TypeThemeReadActiveThemeInfo reads information about the active theme.
	TypeThemeReadActiveThemeInfo event.Type = "themereadactivethemeinfo"

	// TypeThemeLoadTheme loads a theme without activating it.
	TypeThemeLoadTheme event.Type = "themeloadtheme"

	// TypeThemeActivate activates a theme.
	TypeThemeActivate event.Type = "themeactivate"

	// TypeThemeInstall installs a theme package.
	TypeThemeInstall event.Type = "themeinstall"

	// TypeThemeUninstall uninstalls a theme package.
	TypeThemeUninstall event.Type = "themeuninstall"

	// TypeThemeSetSystemPreferred toggles following the system theme.
	TypeThemeSetSystemPreferred event.Type = "themesetsystempreferred"

	// TypeThemeStateActivated announces the newly active theme.
	TypeThemeStateActivated event.Type = "themestateactivated"
)

// NewThemeLoadApplicationThemeEvent creates the Theme.loadApplicationTheme
// request.
func NewThemeLoadApplicationThemeEvent(opts ...event.Option) *event.Request[Empty, event.Void] {
	return event.NewRequest[Empty, event.Void](TypeThemeLoadApplicationTheme, Empty{}, opts...)
}

// ThemeLoadApplicationTheme loads the active application theme.
func ThemeLoadApplicationTheme(ctx context.Context, d event.Dispatcher) error {
	return event.Perform(ctx, d, NewThemeLoadApplicationThemeEvent())
}

// NewThemeReadStateEvent creates the Theme.readState request.
func NewThemeReadStateEvent(opts ...event.Option) *event.Request[Empty, *ThemeState] {
	return event.NewRequest[Empty, *ThemeState](TypeThemeReadState, Empty{}, opts...)
}

// ThemeReadState returns the installed themes and the active one.
func ThemeReadState(ctx context.Context, d event.Dispatcher) (*ThemeState, error) {
	return event.Call(ctx, d, NewThemeReadStateEvent())
}

// NewThemeReadActiveThemeInfoEvent creates the Theme.readActiveThemeInfo
// request.
func NewThemeReadActiveThemeInfoEvent(opts ...event.Option) *event.Request[Empty, *InstalledTheme] {
	return event.NewRequest[Empty, *InstalledTheme](TypeThemeReadActiveThemeInfo, Empty{}, opts...)
}

// ThemeReadActiveThemeInfo returns the active theme.
func ThemeReadActiveThemeInfo(ctx context.Context, d event.Dispatcher) (*InstalledTheme, error) {
	return event.Call(ctx, d, NewThemeReadActiveThemeInfoEvent())
}

// ThemeLoadThemeDetail is the detail of Theme.loadTheme.
type ThemeLoadThemeDetail struct {
	// ID of the theme.
	ID string `json:"id"`
}

// NewThemeLoadThemeEvent creates the Theme.loadTheme request.
func NewThemeLoadThemeEvent(id string, opts ...event.Option) *event.Request[ThemeLoadThemeDetail, event.Void] {
	return event.NewRequest[ThemeLoadThemeDetail, event.Void](TypeThemeLoadTheme, ThemeLoadThemeDetail{ID: id}, opts...)
}

// ThemeLoadTheme loads the theme with the given id.
func ThemeLoadTheme(ctx context.Context, d event.Dispatcher, id string) error {
	return event.Perform(ctx, d, NewThemeLoadThemeEvent(id))
}

// ThemeActivateDetail is the detail of Theme.activate.
type ThemeActivateDetail struct {
	// ID of the theme.
	ID string `json:"id"`
}

// NewThemeActivateEvent creates the Theme.activate request.
func NewThemeActivateEvent(id string, opts ...event.Option) *event.Request[ThemeActivateDetail, event.Void] {
	return event.NewRequest[ThemeActivateDetail, event.Void](TypeThemeActivate, ThemeActivateDetail{ID: id}, opts...)
}

// ThemeActivate makes the theme with the given id the active one.
func ThemeActivate(ctx context.Context, d event.Dispatcher, id string) error {
	return event.Perform(ctx, d, NewThemeActivateEvent(id))
}

// ThemeInstallDetail is the detail of Theme.install.
type ThemeInstallDetail struct {
	// Name is the package name or a path to it.
	Name string `json:"name"`
}

// NewThemeInstallEvent creates the Theme.install request.
func NewThemeInstallEvent(name string, opts ...event.Option) *event.Request[ThemeInstallDetail, event.Void] {
	return event.NewRequest[ThemeInstallDetail, event.Void](TypeThemeInstall, ThemeInstallDetail{Name: name}, opts...)
}

// ThemeInstall installs the theme package called name.
func ThemeInstall(ctx context.Context, d event.Dispatcher, name string) error {
	return event.Perform(ctx, d, NewThemeInstallEvent(name))
}

// ThemeUninstallDetail is the detail of Theme.uninstall.
type ThemeUninstallDetail struct {
	// Name is the package name.
	Name string `json:"name"`
}

// NewThemeUninstallEvent creates the Theme.uninstall request.
func NewThemeUninstallEvent(name string, opts ...event.Option) *event.Request[ThemeUninstallDetail, event.Void] {
	return event.NewRequest[ThemeUninstallDetail, event.Void](TypeThemeUninstall, ThemeUninstallDetail{Name: name}, opts...)
}

// ThemeUninstall removes the theme package called name.
func ThemeUninstall(ctx context.Context, d event.Dispatcher, name string) error {
	return event.Perform(ctx, d, NewThemeUninstallEvent(name))
}

// ThemeSetSystemPreferredDetail is the detail of Theme.setSystemPreferred.
type ThemeSetSystemPreferredDetail struct {
	// Status enables following the system.
	Status bool `json:"status"`
}

// NewThemeSetSystemPreferredEvent creates the Theme.setSystemPreferred
// request.
func NewThemeSetSystemPreferredEvent(status bool, opts ...event.Option) *event.Request[ThemeSetSystemPreferredDetail, event.Void] {
	return event.NewRequest[ThemeSetSystemPreferredDetail, event.Void](TypeThemeSetSystemPreferred, ThemeSetSystemPreferredDetail{Status: status}, opts...)
}

// ThemeSetSystemPreferred sets whether the application follows the system
// light or dark preference.
func ThemeSetSystemPreferred(ctx context.Context, d event.Dispatcher, status bool) error {
	return event.Perform(ctx, d, NewThemeSetSystemPreferredEvent(status))
}

// ThemeStateActivatedDetail is the detail of Theme.State.activated.
type ThemeStateActivatedDetail struct {
	// ID of the theme.
	ID string `json:"id"`
}

// NewThemeStateActivatedEvent creates the Theme.State.activated
// notification.
func NewThemeStateActivatedEvent(id string, opts ...event.Option) *event.Notification[ThemeStateActivatedDetail] {
	return event.NewNotification(TypeThemeStateActivated, ThemeStateActivatedDetail{ID: id}, opts...)
}

// ThemeStateActivated announces that the theme with the given id became
// active.
func ThemeStateActivated(ctx context.Context, d event.Dispatcher, id string) error {
	return event.Notify(ctx, d, NewThemeStateActivatedEvent(id))
}

func themeEntries() []Entry {
	return []Entry{
		requestEntry[Empty, event.Void]("Theme.loadApplicationTheme", TypeThemeLoadApplicationTheme),
		requestEntry[Empty, *ThemeState]("Theme.readState", TypeThemeReadState),
		requestEntry[Empty, *InstalledTheme]("Theme.readActiveThemeInfo", TypeThemeReadActiveThemeInfo),
		requestEntry[ThemeLoadThemeDetail, event.Void]("Theme.loadTheme", TypeThemeLoadTheme),
		requestEntry[ThemeActivateDetail, event.Void]("Theme.activate", TypeThemeActivate),
		requestEntry[ThemeInstallDetail, event.Void]("Theme.install", TypeThemeInstall),
		requestEntry[ThemeUninstallDetail, event.Void]("Theme.uninstall", TypeThemeUninstall),
		requestEntry[ThemeSetSystemPreferredDetail, event.Void]("Theme.setSystemPreferred", TypeThemeSetSystemPreferred),
		notificationEntry[ThemeStateActivatedDetail]("Theme.State.activated", TypeThemeStateActivated),
	}
}
