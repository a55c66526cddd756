package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Application updater event types.
const (
	// TypeUpdaterCheckForUpdate checks for an application update.
	TypeUpdaterCheckForUpdate event.Type = "updatercheckforupdate"

	// TypeUpdaterInstallUpdate installs a downloaded update and restarts the
	// application.
	TypeUpdaterInstallUpdate event.Type = "updaterinstallupdate"

	// TypeUpdaterStateCheckingForUpdate announces that an update check started.
	TypeUpdaterStateCheckingForUpdate event.Type = "updaterstatechecking"

	// TypeUpdaterStateUpdateAvailable announces an available update.
	TypeUpdaterStateUpdateAvailable event.Type = "updaterstateavailable"

	// TypeUpdaterStateUpdateNotAvailable announces that the application is up to
	// date.
	TypeUpdaterStateUpdateNotAvailable event.Type = "updaterstatenotavailable"

	// TypeUpdaterStateAutoUpdateError announces a failed update.
	TypeUpdaterStateAutoUpdateError event.Type = "updaterstateerror"

	// TypeUpdaterStateDownloadProgress announces update download progress.
	TypeUpdaterStateDownloadProgress event.Type = "updaterstateprogress"

	// TypeUpdaterStateUpdateDownloaded announces a downloaded update.
	TypeUpdaterStateUpdateDownloaded event.Type = "updaterstatedownloaded"
)

// NewUpdaterCheckForUpdateEvent creates the Updater.checkForUpdate request.
func NewUpdaterCheckForUpdateEvent(opts ...event.Option) *event.Request[Empty, *UpdateInfo] {
	return event.NewRequest[Empty, *UpdateInfo](TypeUpdaterCheckForUpdate, Empty{}, opts...)
}

// UpdaterCheckForUpdate returns the available update, or nil.
func UpdaterCheckForUpdate(ctx context.Context, d event.Dispatcher) (*UpdateInfo, error) {
	return event.Call(ctx, d, NewUpdaterCheckForUpdateEvent())
}

// NewUpdaterInstallUpdateEvent creates the Updater.installUpdate request.
func NewUpdaterInstallUpdateEvent(opts ...event.Option) *event.Request[Empty, event.Void] {
	return event.NewRequest[Empty, event.Void](TypeUpdaterInstallUpdate, Empty{}, opts...)
}

// UpdaterInstallUpdate installs the downloaded update.
func UpdaterInstallUpdate(ctx context.Context, d event.Dispatcher) error {
	return event.Perform(ctx, d, NewUpdaterInstallUpdateEvent())
}

// NewUpdaterStateCheckingForUpdateEvent creates the
// Updater.State.checkingForUpdate notification.
func NewUpdaterStateCheckingForUpdateEvent(opts ...event.Option) *event.Notification[Empty] {
	return event.NewNotification(TypeUpdaterStateCheckingForUpdate, Empty{}, opts...)
}

// UpdaterStateCheckingForUpdate announces that an update check started.
func UpdaterStateCheckingForUpdate(ctx context.Context, d event.Dispatcher) error {
	return event.Notify(ctx, d, NewUpdaterStateCheckingForUpdateEvent())
}

// UpdaterStateUpdateAvailableDetail is the detail of
// Updater.State.updateAvailable.
type UpdaterStateUpdateAvailableDetail struct {
	// Info describes the release.
	Info UpdateInfo `json:"info"`
}

// NewUpdaterStateUpdateAvailableEvent creates the
// Updater.State.updateAvailable notification.
func NewUpdaterStateUpdateAvailableEvent(info UpdateInfo, opts ...event.Option) *event.Notification[UpdaterStateUpdateAvailableDetail] {
	return event.NewNotification(TypeUpdaterStateUpdateAvailable, UpdaterStateUpdateAvailableDetail{Info: info}, opts...)
}

// UpdaterStateUpdateAvailable announces that an update is available.
func UpdaterStateUpdateAvailable(ctx context.Context, d event.Dispatcher, info UpdateInfo) error {
	return event.Notify(ctx, d, NewUpdaterStateUpdateAvailableEvent(info))
}

// UpdaterStateUpdateNotAvailableDetail is the detail of
// Updater.State.updateNotAvailable.
type UpdaterStateUpdateNotAvailableDetail struct {
	// Info describes the release.
	Info UpdateInfo `json:"info"`
}

// NewUpdaterStateUpdateNotAvailableEvent creates the
// Updater.State.updateNotAvailable notification.
func NewUpdaterStateUpdateNotAvailableEvent(info UpdateInfo, opts ...event.Option) *event.Notification[UpdaterStateUpdateNotAvailableDetail] {
	return event.NewNotification(TypeUpdaterStateUpdateNotAvailable, UpdaterStateUpdateNotAvailableDetail{Info: info}, opts...)
}

// UpdaterStateUpdateNotAvailable announces that no update is available.
func UpdaterStateUpdateNotAvailable(ctx context.Context, d event.Dispatcher, info UpdateInfo) error {
	return event.Notify(ctx, d, NewUpdaterStateUpdateNotAvailableEvent(info))
}

// UpdaterStateAutoUpdateErrorDetail is the detail of
// Updater.State.autoUpdateError.
type UpdaterStateAutoUpdateErrorDetail struct {
	// Message is the error text.
	Message string `json:"message"`
}

// NewUpdaterStateAutoUpdateErrorEvent creates the
// Updater.State.autoUpdateError notification.
func NewUpdaterStateAutoUpdateErrorEvent(message string, opts ...event.Option) *event.Notification[UpdaterStateAutoUpdateErrorDetail] {
	return event.NewNotification(TypeUpdaterStateAutoUpdateError, UpdaterStateAutoUpdateErrorDetail{Message: message}, opts...)
}

// UpdaterStateAutoUpdateError announces that updating failed.
func UpdaterStateAutoUpdateError(ctx context.Context, d event.Dispatcher, message string) error {
	return event.Notify(ctx, d, NewUpdaterStateAutoUpdateErrorEvent(message))
}

// UpdaterStateDownloadProgressDetail is the detail of
// Updater.State.downloadProgress.
type UpdaterStateDownloadProgressDetail struct {
	// Percent is the completed share, 0 to 100.
	Percent float64 `json:"percent"`

	// BytesPerSecond is the current speed.
	BytesPerSecond float64 `json:"bytesPerSecond"`

	// Transferred is the number of bytes downloaded.
	Transferred int64 `json:"transferred"`

	// Total is the size of the download.
	Total int64 `json:"total"`
}

// NewUpdaterStateDownloadProgressEvent creates the
// Updater.State.downloadProgress notification.
func NewUpdaterStateDownloadProgressEvent(percent, bytesPerSecond float64, transferred, total int64, opts ...event.Option) *event.Notification[UpdaterStateDownloadProgressDetail] {
	detail := UpdaterStateDownloadProgressDetail{
		Percent:        percent,
		BytesPerSecond: bytesPerSecond,
		Transferred:    transferred,
		Total:          total,
	}
	return event.NewNotification(TypeUpdaterStateDownloadProgress, detail, opts...)
}

// UpdaterStateDownloadProgress announces download progress.
func UpdaterStateDownloadProgress(ctx context.Context, d event.Dispatcher, percent, bytesPerSecond float64, transferred, total int64) error {
	return event.Notify(ctx, d, NewUpdaterStateDownloadProgressEvent(percent, bytesPerSecond, transferred, total))
}

// UpdaterStateUpdateDownloadedDetail is the detail of
// Updater.State.updateDownloaded.
type UpdaterStateUpdateDownloadedDetail struct {
	// Info describes the release.
	Info UpdateInfo `json:"info"`
}

// NewUpdaterStateUpdateDownloadedEvent creates the
// Updater.State.updateDownloaded notification.
func NewUpdaterStateUpdateDownloadedEvent(info UpdateInfo, opts ...event.Option) *event.Notification[UpdaterStateUpdateDownloadedDetail] {
	return event.NewNotification(TypeUpdaterStateUpdateDownloaded, UpdaterStateUpdateDownloadedDetail{Info: info}, opts...)
}

// UpdaterStateUpdateDownloaded announces that an update is ready to install.
func UpdaterStateUpdateDownloaded(ctx context.Context, d event.Dispatcher, info UpdateInfo) error {
	return event.Notify(ctx, d, NewUpdaterStateUpdateDownloadedEvent(info))
}

func updaterEntries() []Entry {
	return []Entry{
		requestEntry[Empty, *UpdateInfo]("Updater.checkForUpdate", TypeUpdaterCheckForUpdate),
		requestEntry[Empty, event.Void]("Updater.installUpdate", TypeUpdaterInstallUpdate),
		notificationEntry[Empty]("Updater.State.checkingForUpdate", TypeUpdaterStateCheckingForUpdate),
		notificationEntry[UpdaterStateUpdateAvailableDetail]("Updater.State.updateAvailable", TypeUpdaterStateUpdateAvailable),
		notificationEntry[UpdaterStateUpdateNotAvailableDetail]("Updater.State.updateNotAvailable", TypeUpdaterStateUpdateNotAvailable),
		notificationEntry[UpdaterStateAutoUpdateErrorDetail]("Updater.State.autoUpdateError", TypeUpdaterStateAutoUpdateError),
		notificationEntry[UpdaterStateDownloadProgressDetail]("Updater.State.downloadProgress", TypeUpdaterStateDownloadProgress),
		notificationEntry[UpdaterStateUpdateDownloadedDetail]("Updater.State.updateDownloaded", TypeUpdaterStateUpdateDownloaded),
	}
}
