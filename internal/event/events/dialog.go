package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Native dialog event types.
const (
	// TypeDialogOpenFile shows an open file dialog.
	TypeDialogOpenFile event.Type = "dialogopenfile"

	// TypeDialogSaveFile shows a save file dialog.
	TypeDialogSaveFile event.Type = "dialogsavefile"

	// TypeDialogMessageBox shows a message box.
	TypeDialogMessageBox event.Type = "dialogmessagebox"
)

// DialogOpenFileDetail is the detail of Dialog.openFile.
type DialogOpenFileDetail struct {
	Options OpenDialogOptions `json:"options"`
}

// NewDialogOpenFileEvent creates the Dialog.openFile request.
func NewDialogOpenFileEvent(options OpenDialogOptions, opts ...event.Option) *event.Request[DialogOpenFileDetail, *OpenDialogResult] {
	return event.NewRequest[DialogOpenFileDetail, *OpenDialogResult](TypeDialogOpenFile, DialogOpenFileDetail{Options: options}, opts...)
}

// DialogOpenFile shows an open file dialog.
func DialogOpenFile(ctx context.Context, d event.Dispatcher, options OpenDialogOptions) (*OpenDialogResult, error) {
	return event.Call(ctx, d, NewDialogOpenFileEvent(options))
}

// DialogSaveFileDetail is the detail of Dialog.saveFile.
type DialogSaveFileDetail struct {
	Options SaveDialogOptions `json:"options"`
}

// NewDialogSaveFileEvent creates the Dialog.saveFile request.
func NewDialogSaveFileEvent(options SaveDialogOptions, opts ...event.Option) *event.Request[DialogSaveFileDetail, *SaveDialogResult] {
	return event.NewRequest[DialogSaveFileDetail, *SaveDialogResult](TypeDialogSaveFile, DialogSaveFileDetail{Options: options}, opts...)
}

// DialogSaveFile shows a save file dialog.
func DialogSaveFile(ctx context.Context, d event.Dispatcher, options SaveDialogOptions) (*SaveDialogResult, error) {
	return event.Call(ctx, d, NewDialogSaveFileEvent(options))
}

// DialogMessageBoxDetail is the detail of Dialog.messageBox.
type DialogMessageBoxDetail struct {
	Options MessageBoxOptions `json:"options"`
}

// NewDialogMessageBoxEvent creates the Dialog.messageBox request.
func NewDialogMessageBoxEvent(options MessageBoxOptions, opts ...event.Option) *event.Request[DialogMessageBoxDetail, *MessageBoxResult] {
	return event.NewRequest[DialogMessageBoxDetail, *MessageBoxResult](TypeDialogMessageBox, DialogMessageBoxDetail{Options: options}, opts...)
}

// DialogMessageBox shows a message box.
func DialogMessageBox(ctx context.Context, d event.Dispatcher, options MessageBoxOptions) (*MessageBoxResult, error) {
	return event.Call(ctx, d, NewDialogMessageBoxEvent(options))
}

func dialogEntries() []Entry {
	return []Entry{
		requestEntry[DialogOpenFileDetail, *OpenDialogResult]("Dialog.openFile", TypeDialogOpenFile),
		requestEntry[DialogSaveFileDetail, *SaveDialogResult]("Dialog.saveFile", TypeDialogSaveFile),
		requestEntry[DialogMessageBoxDetail, *MessageBoxResult]("Dialog.messageBox", TypeDialogMessageBox),
	}
}
