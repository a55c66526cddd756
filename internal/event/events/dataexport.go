package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Data export event types.
const (
	// TypeDataExportCustom exports a custom selection of application data.
	TypeDataExportCustom event.Type = "arcdataexportcustom"

	// TypeDataExportNative exports application data in the native format.
	TypeDataExportNative event.Type = "arcdataexportnative"

	// TypeDataExportFileSave writes exported content to a file.
	TypeDataExportFileSave event.Type = "arcdataexportfilesave"

	// TypeDataExportGoogleDriveSave writes exported content to the user's drive.
	TypeDataExportGoogleDriveSave event.Type = "arcdataexportgoogledrivesave"
)

// DataExportCustomDetail is the detail of DataExport.customData.
type DataExportCustomDetail struct {
	// Data selects what is exported.
	Data ExportData `json:"data"`

	// ExportOptions configure the export.
	ExportOptions ExportOptions `json:"exportOptions"`

	// ProviderOptions configure the destination.
	ProviderOptions ProviderOptions `json:"providerOptions"`
}

// NewDataExportCustomEvent creates the DataExport.customData request.
func NewDataExportCustomEvent(data ExportData, exportOptions ExportOptions, providerOptions ProviderOptions, opts ...event.Option) *event.Request[DataExportCustomDetail, *ExportResult] {
	detail := DataExportCustomDetail{
		Data:            data,
		ExportOptions:   exportOptions,
		ProviderOptions: providerOptions,
	}
	return event.NewRequest[DataExportCustomDetail, *ExportResult](TypeDataExportCustom, detail, opts...)
}

// DataExportCustom exports the data selected by data.
func DataExportCustom(ctx context.Context, d event.Dispatcher, data ExportData, exportOptions ExportOptions, providerOptions ProviderOptions) (*ExportResult, error) {
	return event.Call(ctx, d, NewDataExportCustomEvent(data, exportOptions, providerOptions))
}

// DataExportNativeDetail is the detail of DataExport.nativeData.
type DataExportNativeDetail struct {
	// Data selects what is exported.
	Data ExportData `json:"data"`

	// ExportOptions configure the export.
	ExportOptions ExportOptions `json:"exportOptions"`

	// ProviderOptions configure the destination.
	ProviderOptions ProviderOptions `json:"providerOptions"`
}

// NewDataExportNativeEvent creates the DataExport.nativeData request.
func NewDataExportNativeEvent(data ExportData, exportOptions ExportOptions, providerOptions ProviderOptions, opts ...event.Option) *event.Request[DataExportNativeDetail, *ExportResult] {
	detail := DataExportNativeDetail{
		Data:            data,
		ExportOptions:   exportOptions,
		ProviderOptions: providerOptions,
	}
	return event.NewRequest[DataExportNativeDetail, *ExportResult](TypeDataExportNative, detail, opts...)
}

// DataExportNative exports the data selected by data in the native format.
func DataExportNative(ctx context.Context, d event.Dispatcher, data ExportData, exportOptions ExportOptions, providerOptions ProviderOptions) (*ExportResult, error) {
	return event.Call(ctx, d, NewDataExportNativeEvent(data, exportOptions, providerOptions))
}

// DataExportFileSaveDetail is the detail of DataExport.fileSave.
type DataExportFileSaveDetail struct {
	// Content is the serialized export.
	Content string `json:"content"`

	// Options configure the destination.
	Options ProviderOptions `json:"options"`
}

// NewDataExportFileSaveEvent creates the DataExport.fileSave request.
func NewDataExportFileSaveEvent(content string, options ProviderOptions, opts ...event.Option) *event.Request[DataExportFileSaveDetail, *ExportResult] {
	return event.NewRequest[DataExportFileSaveDetail, *ExportResult](TypeDataExportFileSave, DataExportFileSaveDetail{Content: content, Options: options}, opts...)
}

// DataExportFileSave writes content to a file picked by the user.
func DataExportFileSave(ctx context.Context, d event.Dispatcher, content string, options ProviderOptions) (*ExportResult, error) {
	return event.Call(ctx, d, NewDataExportFileSaveEvent(content, options))
}

// DataExportGoogleDriveSaveDetail is the detail of
// DataExport.googleDriveSave.
type DataExportGoogleDriveSaveDetail struct {
	// Content is the serialized export.
	Content string `json:"content"`

	// Options configure the destination.
	Options ProviderOptions `json:"options"`
}

// NewDataExportGoogleDriveSaveEvent creates the DataExport.googleDriveSave
// request.
func NewDataExportGoogleDriveSaveEvent(content string, options ProviderOptions, opts ...event.Option) *event.Request[DataExportGoogleDriveSaveDetail, *ExportResult] {
	return event.NewRequest[DataExportGoogleDriveSaveDetail, *ExportResult](TypeDataExportGoogleDriveSave, DataExportGoogleDriveSaveDetail{Content: content, Options: options}, opts...)
}

// DataExportGoogleDriveSave uploads content to the drive.
func DataExportGoogleDriveSave(ctx context.Context, d event.Dispatcher, content string, options ProviderOptions) (*ExportResult, error) {
	return event.Call(ctx, d, NewDataExportGoogleDriveSaveEvent(content, options))
}

func dataExportEntries() []Entry {
	return []Entry{
		requestEntry[DataExportCustomDetail, *ExportResult]("DataExport.customData", TypeDataExportCustom),
		requestEntry[DataExportNativeDetail, *ExportResult]("DataExport.nativeData", TypeDataExportNative),
		requestEntry[DataExportFileSaveDetail, *ExportResult]("DataExport.fileSave", TypeDataExportFileSave),
		requestEntry[DataExportGoogleDriveSaveDetail, *ExportResult]("DataExport.googleDriveSave", TypeDataExportGoogleDriveSave),
	}
}
