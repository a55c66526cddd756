package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Project model event types.
const (
	// TypeProjectRead reads a project.
	TypeProjectRead event.Type = "projectmodelread"

	// TypeProjectReadBulk reads projects.
	TypeProjectReadBulk event.Type = "projectmodelreadbulk"

	// TypeProjectUpdate creates or updates a project.
	TypeProjectUpdate event.Type = "projectmodelupdate"

	// TypeProjectUpdateBulk creates or updates projects.
	TypeProjectUpdateBulk event.Type = "projectmodelupdatebulk"

	// TypeProjectDelete deletes a project.
	TypeProjectDelete event.Type = "projectmodeldelete"

	// TypeProjectList lists projects.
	TypeProjectList event.Type = "projectmodellist"

	// TypeProjectListAll lists every project.
	TypeProjectListAll event.Type = "projectmodellistall"

	// TypeProjectMoveTo moves a request into a project.
	TypeProjectMoveTo event.Type = "projectmoveto"

	// TypeProjectAddTo adds a request to a project.
	TypeProjectAddTo event.Type = "projectaddto"

	// TypeProjectRemoveFrom removes a request from a project.
	TypeProjectRemoveFrom event.Type = "projectremovefrom"

	// TypeProjectStateUpdate announces a stored project.
	TypeProjectStateUpdate event.Type = "projectmodelstateupdate"

	// TypeProjectStateDelete announces a removed project.
	TypeProjectStateDelete event.Type = "projectmodelstatedelete"
)

// ProjectReadDetail is the detail of Model.Project.read.
type ProjectReadDetail struct {
	// ID of the project.
	ID string `json:"id"`

	// Rev reads a specific revision.
	Rev string `json:"rev"`
}

// NewProjectReadEvent creates the Model.Project.read request.
func NewProjectReadEvent(id, rev string, opts ...event.Option) *event.Request[ProjectReadDetail, *Project] {
	return event.NewRequest[ProjectReadDetail, *Project](TypeProjectRead, ProjectReadDetail{ID: id, Rev: rev}, opts...)
}

// ProjectRead returns the project with the given id.
func ProjectRead(ctx context.Context, d event.Dispatcher, id, rev string) (*Project, error) {
	return event.Call(ctx, d, NewProjectReadEvent(id, rev))
}

// ProjectReadBulkDetail is the detail of Model.Project.readBulk.
type ProjectReadBulkDetail struct {
	// IDs of the projects.
	IDs []string `json:"ids"`
}

// NewProjectReadBulkEvent creates the Model.Project.readBulk request.
func NewProjectReadBulkEvent(ids []string, opts ...event.Option) *event.Request[ProjectReadBulkDetail, []Project] {
	return event.NewRequest[ProjectReadBulkDetail, []Project](TypeProjectReadBulk, ProjectReadBulkDetail{IDs: ids}, opts...)
}

// ProjectReadBulk returns the projects with the given ids.
func ProjectReadBulk(ctx context.Context, d event.Dispatcher, ids []string) ([]Project, error) {
	return event.Call(ctx, d, NewProjectReadBulkEvent(ids))
}

// ProjectUpdateDetail is the detail of Model.Project.update.
type ProjectUpdateDetail struct {
	// Project is the project to store.
	Project Project `json:"project"`
}

// NewProjectUpdateEvent creates the Model.Project.update request.
func NewProjectUpdateEvent(project Project, opts ...event.Option) *event.Request[ProjectUpdateDetail, *ChangeRecord[Project]] {
	return event.NewRequest[ProjectUpdateDetail, *ChangeRecord[Project]](TypeProjectUpdate, ProjectUpdateDetail{Project: project}, opts...)
}

// ProjectUpdate stores project.
func ProjectUpdate(ctx context.Context, d event.Dispatcher, project Project) (*ChangeRecord[Project], error) {
	return event.Call(ctx, d, NewProjectUpdateEvent(project))
}

// ProjectUpdateBulkDetail is the detail of Model.Project.updateBulk.
type ProjectUpdateBulkDetail struct {
	// Projects are the projects to store.
	Projects []Project `json:"projects"`
}

// NewProjectUpdateBulkEvent creates the Model.Project.updateBulk request.
func NewProjectUpdateBulkEvent(projects []Project, opts ...event.Option) *event.Request[ProjectUpdateBulkDetail, []ChangeRecord[Project]] {
	return event.NewRequest[ProjectUpdateBulkDetail, []ChangeRecord[Project]](TypeProjectUpdateBulk, ProjectUpdateBulkDetail{Projects: projects}, opts...)
}

// ProjectUpdateBulk stores projects.
func ProjectUpdateBulk(ctx context.Context, d event.Dispatcher, projects []Project) ([]ChangeRecord[Project], error) {
	return event.Call(ctx, d, NewProjectUpdateBulkEvent(projects))
}

// ProjectDeleteDetail is the detail of Model.Project.delete.
type ProjectDeleteDetail struct {
	// ID of the project.
	ID string `json:"id"`

	// Rev is the revision to delete.
	Rev string `json:"rev"`
}

// NewProjectDeleteEvent creates the Model.Project.delete request.
func NewProjectDeleteEvent(id, rev string, opts ...event.Option) *event.Request[ProjectDeleteDetail, *DeletedRecord] {
	return event.NewRequest[ProjectDeleteDetail, *DeletedRecord](TypeProjectDelete, ProjectDeleteDetail{ID: id, Rev: rev}, opts...)
}

// ProjectDelete removes the project with the given id.
func ProjectDelete(ctx context.Context, d event.Dispatcher, id, rev string) (*DeletedRecord, error) {
	return event.Call(ctx, d, NewProjectDeleteEvent(id, rev))
}

// ProjectListDetail is the detail of Model.Project.list.
type ProjectListDetail struct {
	// Limit is the maximum number of items to return. Zero uses the store
	// default.
	Limit int `json:"limit"`

	// NextPageToken continues a previous listing.
	NextPageToken string `json:"nextPageToken"`
}

// NewProjectListEvent creates the Model.Project.list request.
func NewProjectListEvent(limit int, nextPageToken string, opts ...event.Option) *event.Request[ProjectListDetail, *ListResponse[Project]] {
	return event.NewRequest[ProjectListDetail, *ListResponse[Project]](TypeProjectList, ProjectListDetail{Limit: limit, NextPageToken: nextPageToken}, opts...)
}

// ProjectList returns a page of projects.
func ProjectList(ctx context.Context, d event.Dispatcher, limit int, nextPageToken string) (*ListResponse[Project], error) {
	return event.Call(ctx, d, NewProjectListEvent(limit, nextPageToken))
}

// ProjectListAllDetail is the detail of Model.Project.listAll.
type ProjectListAllDetail struct {
	// Keys limit the result to these ids.
	Keys []string `json:"keys"`
}

// NewProjectListAllEvent creates the Model.Project.listAll request.
func NewProjectListAllEvent(keys []string, opts ...event.Option) *event.Request[ProjectListAllDetail, []Project] {
	return event.NewRequest[ProjectListAllDetail, []Project](TypeProjectListAll, ProjectListAllDetail{Keys: keys}, opts...)
}

// ProjectListAll returns every project, or the ones with the given keys.
func ProjectListAll(ctx context.Context, d event.Dispatcher, keys []string) ([]Project, error) {
	return event.Call(ctx, d, NewProjectListAllEvent(keys))
}

// ProjectMoveToDetail is the detail of Model.Project.moveTo.
type ProjectMoveToDetail struct {
	// ProjectID is the target project.
	ProjectID string `json:"projectId"`

	// RequestID is the request to place.
	RequestID string `json:"requestId"`

	// RequestType is "saved" or "history".
	RequestType string `json:"requestType"`

	// Position is the index in the project. A negative value appends.
	Position int `json:"position"`
}

// NewProjectMoveToEvent creates the Model.Project.moveTo request.
func NewProjectMoveToEvent(projectID, requestID, requestType string, position int, opts ...event.Option) *event.Request[ProjectMoveToDetail, event.Void] {
	detail := ProjectMoveToDetail{
		ProjectID:   projectID,
		RequestID:   requestID,
		RequestType: requestType,
		Position:    position,
	}
	return event.NewRequest[ProjectMoveToDetail, event.Void](TypeProjectMoveTo, detail, opts...)
}

// ProjectMoveTo moves the request into the project, removing it from any
// other project.
func ProjectMoveTo(ctx context.Context, d event.Dispatcher, projectID, requestID, requestType string, position int) error {
	return event.Perform(ctx, d, NewProjectMoveToEvent(projectID, requestID, requestType, position))
}

// ProjectAddToDetail is the detail of Model.Project.addTo.
type ProjectAddToDetail struct {
	// ProjectID is the target project.
	ProjectID string `json:"projectId"`

	// RequestID is the request to place.
	RequestID string `json:"requestId"`

	// RequestType is "saved" or "history".
	RequestType string `json:"requestType"`

	// Position is the index in the project. A negative value appends.
	Position int `json:"position"`
}

// NewProjectAddToEvent creates the Model.Project.addTo request.
func NewProjectAddToEvent(projectID, requestID, requestType string, position int, opts ...event.Option) *event.Request[ProjectAddToDetail, event.Void] {
	detail := ProjectAddToDetail{
		ProjectID:   projectID,
		RequestID:   requestID,
		RequestType: requestType,
		Position:    position,
	}
	return event.NewRequest[ProjectAddToDetail, event.Void](TypeProjectAddTo, detail, opts...)
}

// ProjectAddTo adds the request to the project.
func ProjectAddTo(ctx context.Context, d event.Dispatcher, projectID, requestID, requestType string, position int) error {
	return event.Perform(ctx, d, NewProjectAddToEvent(projectID, requestID, requestType, position))
}

// ProjectRemoveFromDetail is the detail of Model.Project.removeFrom.
type ProjectRemoveFromDetail struct {
	// ProjectID is the project.
	ProjectID string `json:"projectId"`

	// RequestID is the request to remove.
	RequestID string `json:"requestId"`
}

// NewProjectRemoveFromEvent creates the Model.Project.removeFrom request.
func NewProjectRemoveFromEvent(projectID, requestID string, opts ...event.Option) *event.Request[ProjectRemoveFromDetail, event.Void] {
	return event.NewRequest[ProjectRemoveFromDetail, event.Void](TypeProjectRemoveFrom, ProjectRemoveFromDetail{ProjectID: projectID, RequestID: requestID}, opts...)
}

// ProjectRemoveFrom removes the request from the project.
func ProjectRemoveFrom(ctx context.Context, d event.Dispatcher, projectID, requestID string) error {
	return event.Perform(ctx, d, NewProjectRemoveFromEvent(projectID, requestID))
}

// ProjectStateUpdateDetail is the detail of Model.Project.State.update.
type ProjectStateUpdateDetail struct {
	// Record describes the change.
	Record ChangeRecord[Project] `json:"record"`
}

// NewProjectStateUpdateEvent creates the Model.Project.State.update
// notification.
func NewProjectStateUpdateEvent(record ChangeRecord[Project], opts ...event.Option) *event.Notification[ProjectStateUpdateDetail] {
	return event.NewNotification(TypeProjectStateUpdate, ProjectStateUpdateDetail{Record: record}, opts...)
}

// ProjectStateUpdate announces that a project was stored.
func ProjectStateUpdate(ctx context.Context, d event.Dispatcher, record ChangeRecord[Project]) error {
	return event.Notify(ctx, d, NewProjectStateUpdateEvent(record))
}

// ProjectStateDeleteDetail is the detail of Model.Project.State.delete.
type ProjectStateDeleteDetail struct {
	// Record identifies the removed project.
	Record DeletedRecord `json:"record"`
}

// NewProjectStateDeleteEvent creates the Model.Project.State.delete
// notification.
func NewProjectStateDeleteEvent(record DeletedRecord, opts ...event.Option) *event.Notification[ProjectStateDeleteDetail] {
	return event.NewNotification(TypeProjectStateDelete, ProjectStateDeleteDetail{Record: record}, opts...)
}

// ProjectStateDelete announces that a project was removed.
func ProjectStateDelete(ctx context.Context, d event.Dispatcher, record DeletedRecord) error {
	return event.Notify(ctx, d, NewProjectStateDeleteEvent(record))
}

func projectEntries() []Entry {
	return []Entry{
		requestEntry[ProjectReadDetail, *Project]("Model.Project.read", TypeProjectRead),
		requestEntry[ProjectReadBulkDetail, []Project]("Model.Project.readBulk", TypeProjectReadBulk),
		requestEntry[ProjectUpdateDetail, *ChangeRecord[Project]]("Model.Project.update", TypeProjectUpdate),
		requestEntry[ProjectUpdateBulkDetail, []ChangeRecord[Project]]("Model.Project.updateBulk", TypeProjectUpdateBulk),
		requestEntry[ProjectDeleteDetail, *DeletedRecord]("Model.Project.delete", TypeProjectDelete),
		requestEntry[ProjectListDetail, *ListResponse[Project]]("Model.Project.list", TypeProjectList),
		requestEntry[ProjectListAllDetail, []Project]("Model.Project.listAll", TypeProjectListAll),
		requestEntry[ProjectMoveToDetail, event.Void]("Model.Project.moveTo", TypeProjectMoveTo),
		requestEntry[ProjectAddToDetail, event.Void]("Model.Project.addTo", TypeProjectAddTo),
		requestEntry[ProjectRemoveFromDetail, event.Void]("Model.Project.removeFrom", TypeProjectRemoveFrom),
		notificationEntry[ProjectStateUpdateDetail]("Model.Project.State.update", TypeProjectStateUpdate),
		notificationEntry[ProjectStateDeleteDetail]("Model.Project.State.delete", TypeProjectStateDelete),
	}
}
