package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Workspace event types.
const (
	// TypeWorkspaceRead reads a workspace.
	TypeWorkspaceRead event.Type = "workspaceread"

	// TypeWorkspaceWrite writes a workspace.
	TypeWorkspaceWrite event.Type = "workspacewrite"

	// TypeWorkspaceAppendRequest asks the workspace to open a request.
	TypeWorkspaceAppendRequest event.Type = "workspaceappendrequest"

	// TypeWorkspaceAppendExport asks the workspace to open the requests of an
	// export.
	TypeWorkspaceAppendExport event.Type = "workspaceappendexport"

	// TypeWorkspaceTriggerWrite asks the workspace to persist its state.
	TypeWorkspaceTriggerWrite event.Type = "workspacetriggerwrite"

	// TypeWorkspaceStateWrite announces a written workspace.
	TypeWorkspaceStateWrite event.Type = "workspacestatewrite"
)

// WorkspaceReadDetail is the detail of Workspace.read.
type WorkspaceReadDetail struct {
	// ID of the workspace, usually a file name.
	ID string `json:"id"`
}

// NewWorkspaceReadEvent creates the Workspace.read request.
func NewWorkspaceReadEvent(id string, opts ...event.Option) *event.Request[WorkspaceReadDetail, *Workspace] {
	return event.NewRequest[WorkspaceReadDetail, *Workspace](TypeWorkspaceRead, WorkspaceReadDetail{ID: id}, opts...)
}

// WorkspaceRead returns the workspace with the given id.
func WorkspaceRead(ctx context.Context, d event.Dispatcher, id string) (*Workspace, error) {
	return event.Call(ctx, d, NewWorkspaceReadEvent(id))
}

// WorkspaceWriteDetail is the detail of Workspace.write.
type WorkspaceWriteDetail struct {
	// Contents is the workspace state.
	Contents Workspace `json:"contents"`

	// ID of the workspace.
	ID string `json:"id"`
}

// NewWorkspaceWriteEvent creates the Workspace.write request.
func NewWorkspaceWriteEvent(contents Workspace, id string, opts ...event.Option) *event.Request[WorkspaceWriteDetail, event.Void] {
	return event.NewRequest[WorkspaceWriteDetail, event.Void](TypeWorkspaceWrite, WorkspaceWriteDetail{Contents: contents, ID: id}, opts...)
}

// WorkspaceWrite stores contents as the workspace with the given id.
func WorkspaceWrite(ctx context.Context, d event.Dispatcher, contents Workspace, id string) error {
	return event.Perform(ctx, d, NewWorkspaceWriteEvent(contents, id))
}

// WorkspaceAppendRequestDetail is the detail of Workspace.appendRequest.
type WorkspaceAppendRequestDetail struct {
	// Request is the request to open.
	Request EditorRequest `json:"request"`
}

// NewWorkspaceAppendRequestEvent creates the Workspace.appendRequest
// notification.
func NewWorkspaceAppendRequestEvent(request EditorRequest, opts ...event.Option) *event.Notification[WorkspaceAppendRequestDetail] {
	return event.NewNotification(TypeWorkspaceAppendRequest, WorkspaceAppendRequestDetail{Request: request}, opts...)
}

// WorkspaceAppendRequest opens request in the workspace.
func WorkspaceAppendRequest(ctx context.Context, d event.Dispatcher, request EditorRequest) error {
	return event.Notify(ctx, d, NewWorkspaceAppendRequestEvent(request))
}

// WorkspaceAppendExportDetail is the detail of Workspace.appendExport.
type WorkspaceAppendExportDetail struct {
	// Data is the normalized export.
	Data ExportObject `json:"data"`
}

// NewWorkspaceAppendExportEvent creates the Workspace.appendExport
// notification.
func NewWorkspaceAppendExportEvent(data ExportObject, opts ...event.Option) *event.Notification[WorkspaceAppendExportDetail] {
	return event.NewNotification(TypeWorkspaceAppendExport, WorkspaceAppendExportDetail{Data: data}, opts...)
}

// WorkspaceAppendExport opens the requests of data in the workspace.
func WorkspaceAppendExport(ctx context.Context, d event.Dispatcher, data ExportObject) error {
	return event.Notify(ctx, d, NewWorkspaceAppendExportEvent(data))
}

// NewWorkspaceTriggerWriteEvent creates the Workspace.triggerWrite
// notification.
func NewWorkspaceTriggerWriteEvent(opts ...event.Option) *event.Notification[Empty] {
	return event.NewNotification(TypeWorkspaceTriggerWrite, Empty{}, opts...)
}

// WorkspaceTriggerWrite asks the workspace to write its state.
func WorkspaceTriggerWrite(ctx context.Context, d event.Dispatcher) error {
	return event.Notify(ctx, d, NewWorkspaceTriggerWriteEvent())
}

// WorkspaceStateWriteDetail is the detail of Workspace.State.write.
type WorkspaceStateWriteDetail struct {
	// ID of the workspace.
	ID string `json:"id"`
}

// NewWorkspaceStateWriteEvent creates the Workspace.State.write
// notification.
func NewWorkspaceStateWriteEvent(id string, opts ...event.Option) *event.Notification[WorkspaceStateWriteDetail] {
	return event.NewNotification(TypeWorkspaceStateWrite, WorkspaceStateWriteDetail{ID: id}, opts...)
}

// WorkspaceStateWrite announces that the workspace with the given id was
// written.
func WorkspaceStateWrite(ctx context.Context, d event.Dispatcher, id string) error {
	return event.Notify(ctx, d, NewWorkspaceStateWriteEvent(id))
}

func workspaceEntries() []Entry {
	return []Entry{
		requestEntry[WorkspaceReadDetail, *Workspace]("Workspace.read", TypeWorkspaceRead),
		requestEntry[WorkspaceWriteDetail, event.Void]("Workspace.write", TypeWorkspaceWrite),
		notificationEntry[WorkspaceAppendRequestDetail]("Workspace.appendRequest", TypeWorkspaceAppendRequest),
		notificationEntry[WorkspaceAppendExportDetail]("Workspace.appendExport", TypeWorkspaceAppendExport),
		notificationEntry[Empty]("Workspace.triggerWrite", TypeWorkspaceTriggerWrite),
		notificationEntry[WorkspaceStateWriteDetail]("Workspace.State.write", TypeWorkspaceStateWrite),
	}
}
