package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Application event types.
const (
	// TypeAppVersionInfo asks the shell for the versions of the application and
	// its runtime.
	TypeAppVersionInfo event.Type = "appversioninfo"

	// TypeAppCommand announces a command issued by the application menu or a
	// keyboard shortcut.
	TypeAppCommand event.Type = "appcommand"

	// TypeAppRequestAction asks the shell to perform an action on behalf of the
	// renderer.
	TypeAppRequestAction event.Type = "apprequestaction"

	// TypeAppReadState reads the persisted application state.
	TypeAppReadState event.Type = "appreadstate"

	// TypeAppUpdateStateProperty sets one property of the persisted application
	// state.
	TypeAppUpdateStateProperty event.Type = "appupdatestateproperty"

	// TypeAppQuit asks the shell to quit the application.
	TypeAppQuit event.Type = "appquit"
)

// NewAppVersionInfoEvent creates the App.versionInfo request.
func NewAppVersionInfoEvent(opts ...event.Option) *event.Request[Empty, VersionInfo] {
	return event.NewRequest[Empty, VersionInfo](TypeAppVersionInfo, Empty{}, opts...)
}

// AppVersionInfo returns the application version information.
func AppVersionInfo(ctx context.Context, d event.Dispatcher) (VersionInfo, error) {
	return event.Call(ctx, d, NewAppVersionInfoEvent())
}

// AppCommandDetail is the detail of App.command.
type AppCommandDetail struct {
	// Action is the command name, e.g. "open-saved".
	Action string `json:"action"`

	// Args are the command arguments.
	Args []any `json:"args"`
}

// NewAppCommandEvent creates the App.command notification.
func NewAppCommandEvent(action string, args []any, opts ...event.Option) *event.Notification[AppCommandDetail] {
	return event.NewNotification(TypeAppCommand, AppCommandDetail{Action: action, Args: args}, opts...)
}

// AppCommand announces an application command.
func AppCommand(ctx context.Context, d event.Dispatcher, action string, args []any) error {
	return event.Notify(ctx, d, NewAppCommandEvent(action, args))
}

// AppRequestActionDetail is the detail of App.requestAction.
type AppRequestActionDetail struct {
	// Action is the action name.
	Action string `json:"action"`

	// Args are the action arguments.
	Args []any `json:"args"`
}

// NewAppRequestActionEvent creates the App.requestAction request.
func NewAppRequestActionEvent(action string, args []any, opts ...event.Option) *event.Request[AppRequestActionDetail, event.Void] {
	return event.NewRequest[AppRequestActionDetail, event.Void](TypeAppRequestAction, AppRequestActionDetail{Action: action, Args: args}, opts...)
}

// AppRequestAction asks the shell to perform action.
func AppRequestAction(ctx context.Context, d event.Dispatcher, action string, args []any) error {
	return event.Perform(ctx, d, NewAppRequestActionEvent(action, args))
}

// NewAppReadStateEvent creates the App.readState request.
func NewAppReadStateEvent(opts ...event.Option) *event.Request[Empty, map[string]any] {
	return event.NewRequest[Empty, map[string]any](TypeAppReadState, Empty{}, opts...)
}

// AppReadState returns the persisted application state. A nil map means
// nobody answered.
func AppReadState(ctx context.Context, d event.Dispatcher) (map[string]any, error) {
	return event.Call(ctx, d, NewAppReadStateEvent())
}

// AppUpdateStatePropertyDetail is the detail of App.updateStateProperty.
type AppUpdateStatePropertyDetail struct {
	// Name is a dot separated property path.
	Name string `json:"name"`

	// Value is the new value.
	Value any `json:"value"`
}

// NewAppUpdateStatePropertyEvent creates the App.updateStateProperty
// request.
func NewAppUpdateStatePropertyEvent(name string, value any, opts ...event.Option) *event.Request[AppUpdateStatePropertyDetail, event.Void] {
	return event.NewRequest[AppUpdateStatePropertyDetail, event.Void](TypeAppUpdateStateProperty, AppUpdateStatePropertyDetail{Name: name, Value: value}, opts...)
}

// AppUpdateStateProperty stores value under name in the application state.
func AppUpdateStateProperty(ctx context.Context, d event.Dispatcher, name string, value any) error {
	return event.Perform(ctx, d, NewAppUpdateStatePropertyEvent(name, value))
}

// NewAppQuitEvent creates the App.quit request.
func NewAppQuitEvent(opts ...event.Option) *event.Request[Empty, event.Void] {
	return event.NewRequest[Empty, event.Void](TypeAppQuit, Empty{}, opts...)
}

// AppQuit asks the shell to quit the application.
func AppQuit(ctx context.Context, d event.Dispatcher) error {
	return event.Perform(ctx, d, NewAppQuitEvent())
}

func appEntries() []Entry {
	return []Entry{
		requestEntry[Empty, VersionInfo]("App.versionInfo", TypeAppVersionInfo),
		notificationEntry[AppCommandDetail]("App.command", TypeAppCommand),
		requestEntry[AppRequestActionDetail, event.Void]("App.requestAction", TypeAppRequestAction),
		requestEntry[Empty, map[string]any]("App.readState", TypeAppReadState),
		requestEntry[AppUpdateStatePropertyDetail, event.Void]("App.updateStateProperty", TypeAppUpdateStateProperty),
		requestEntry[Empty, event.Void]("App.quit", TypeAppQuit),
	}
}
