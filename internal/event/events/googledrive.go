package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Google Drive event types.
const (
	// TypeGoogleDriveListAppFolders lists the application folders in the drive.
	TypeGoogleDriveListAppFolders event.Type = "googledrivelistappfolders"

	// TypeGoogleDriveCreateAppFolder creates an application folder in the drive.
	TypeGoogleDriveCreateAppFolder event.Type = "googledrivecreateappfolder"

	// TypeGoogleDriveSave uploads a file to the drive.
	TypeGoogleDriveSave event.Type = "googledrivesave"

	// TypeGoogleDriveRead downloads a file from the drive.
	TypeGoogleDriveRead event.Type = "googledriveread"

	// TypeGoogleDriveNotifyFilePicked announces a file picked in the drive
	// picker.
	TypeGoogleDriveNotifyFilePicked event.Type = "googledrivefilepicked"
)

// NewGoogleDriveListAppFoldersEvent creates the GoogleDrive.listAppFolders
// request.
func NewGoogleDriveListAppFoldersEvent(opts ...event.Option) *event.Request[Empty, []AppFolder] {
	return event.NewRequest[Empty, []AppFolder](TypeGoogleDriveListAppFolders, Empty{}, opts...)
}

// GoogleDriveListAppFolders returns the application folders in the drive.
func GoogleDriveListAppFolders(ctx context.Context, d event.Dispatcher) ([]AppFolder, error) {
	return event.Call(ctx, d, NewGoogleDriveListAppFoldersEvent())
}

// GoogleDriveCreateAppFolderDetail is the detail of
// GoogleDrive.createAppFolder.
type GoogleDriveCreateAppFolderDetail struct {
	// Name of the folder.
	Name string `json:"name"`
}

// NewGoogleDriveCreateAppFolderEvent creates the GoogleDrive.createAppFolder
// request.
func NewGoogleDriveCreateAppFolderEvent(name string, opts ...event.Option) *event.Request[GoogleDriveCreateAppFolderDetail, *AppFolder] {
	return event.NewRequest[GoogleDriveCreateAppFolderDetail, *AppFolder](TypeGoogleDriveCreateAppFolder, GoogleDriveCreateAppFolderDetail{Name: name}, opts...)
}

// GoogleDriveCreateAppFolder creates an application folder called name.
func GoogleDriveCreateAppFolder(ctx context.Context, d event.Dispatcher, name string) (*AppFolder, error) {
	return event.Call(ctx, d, NewGoogleDriveCreateAppFolderEvent(name))
}

// GoogleDriveSaveDetail is the detail of GoogleDrive.save.
type GoogleDriveSaveDetail struct {
	// Content is the file content.
	Content string `json:"content"`

	// Meta describes the file.
	Meta DriveFileMeta `json:"meta"`

	// Options configure the upload.
	Options DriveSaveOptions `json:"options"`
}

// NewGoogleDriveSaveEvent creates the GoogleDrive.save request.
func NewGoogleDriveSaveEvent(content string, meta DriveFileMeta, options DriveSaveOptions, opts ...event.Option) *event.Request[GoogleDriveSaveDetail, *DriveFile] {
	detail := GoogleDriveSaveDetail{
		Content: content,
		Meta:    meta,
		Options: options,
	}
	return event.NewRequest[GoogleDriveSaveDetail, *DriveFile](TypeGoogleDriveSave, detail, opts...)
}

// GoogleDriveSave uploads content to the drive.
func GoogleDriveSave(ctx context.Context, d event.Dispatcher, content string, meta DriveFileMeta, options DriveSaveOptions) (*DriveFile, error) {
	return event.Call(ctx, d, NewGoogleDriveSaveEvent(content, meta, options))
}

// GoogleDriveReadDetail is the detail of GoogleDrive.read.
type GoogleDriveReadDetail struct {
	// ID of the drive file.
	ID string `json:"id"`
}

// NewGoogleDriveReadEvent creates the GoogleDrive.read request.
func NewGoogleDriveReadEvent(id string, opts ...event.Option) *event.Request[GoogleDriveReadDetail, string] {
	return event.NewRequest[GoogleDriveReadDetail, string](TypeGoogleDriveRead, GoogleDriveReadDetail{ID: id}, opts...)
}

// GoogleDriveRead returns the content of the drive file with the given id.
func GoogleDriveRead(ctx context.Context, d event.Dispatcher, id string) (string, error) {
	return event.Call(ctx, d, NewGoogleDriveReadEvent(id))
}

// GoogleDriveNotifyFilePickedDetail is the detail of
// GoogleDrive.notifyFilePicked.
type GoogleDriveNotifyFilePickedDetail struct {
	// ID of the drive file.
	ID string `json:"id"`
}

// NewGoogleDriveNotifyFilePickedEvent creates the
// GoogleDrive.notifyFilePicked notification.
func NewGoogleDriveNotifyFilePickedEvent(id string, opts ...event.Option) *event.Notification[GoogleDriveNotifyFilePickedDetail] {
	return event.NewNotification(TypeGoogleDriveNotifyFilePicked, GoogleDriveNotifyFilePickedDetail{ID: id}, opts...)
}

// GoogleDriveNotifyFilePicked announces that the user picked the drive file
// with the given id.
func GoogleDriveNotifyFilePicked(ctx context.Context, d event.Dispatcher, id string) error {
	return event.Notify(ctx, d, NewGoogleDriveNotifyFilePickedEvent(id))
}

func googleDriveEntries() []Entry {
	return []Entry{
		requestEntry[Empty, []AppFolder]("GoogleDrive.listAppFolders", TypeGoogleDriveListAppFolders),
		requestEntry[GoogleDriveCreateAppFolderDetail, *AppFolder]("GoogleDrive.createAppFolder", TypeGoogleDriveCreateAppFolder),
		requestEntry[GoogleDriveSaveDetail, *DriveFile]("GoogleDrive.save", TypeGoogleDriveSave),
		requestEntry[GoogleDriveReadDetail, string]("GoogleDrive.read", TypeGoogleDriveRead),
		notificationEntry[GoogleDriveNotifyFilePickedDetail]("GoogleDrive.notifyFilePicked", TypeGoogleDriveNotifyFilePicked),
	}
}
