package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Data import event types.
const (
	// TypeDataImportStore stores normalized import data.
	TypeDataImportStore event.Type = "arcdataimport"

	// TypeDataImportNormalize normalizes import data of any supported format.
	TypeDataImportNormalize event.Type = "arcdataimportnormalize"

	// TypeDataImportProcessFile reads, normalizes and imports a file.
	TypeDataImportProcessFile event.Type = "arcdataimportprocessfile"

	// TypeDataImportProcessData normalizes and imports data.
	TypeDataImportProcessData event.Type = "arcdataimportprocessdata"

	// TypeDataImportInspect asks the UI to show import data for review before it
	// is stored.
	TypeDataImportInspect event.Type = "arcdataimportinspect"

	// TypeDataImportStateDataImported announces that import data was stored.
	TypeDataImportStateDataImported event.Type = "arcdataimportstateimported"
)

// DataImportStoreDetail is the detail of DataImport.dataImport.
type DataImportStoreDetail struct {
	// Data is the normalized import data.
	Data ExportObject `json:"data"`
}

// NewDataImportStoreEvent creates the DataImport.dataImport request.
func NewDataImportStoreEvent(data ExportObject, opts ...event.Option) *event.Request[DataImportStoreDetail, event.Void] {
	return event.NewRequest[DataImportStoreDetail, event.Void](TypeDataImportStore, DataImportStoreDetail{Data: data}, opts...)
}

// DataImportStore stores data in the application stores.
func DataImportStore(ctx context.Context, d event.Dispatcher, data ExportObject) error {
	return event.Perform(ctx, d, NewDataImportStoreEvent(data))
}

// DataImportNormalizeDetail is the detail of DataImport.normalize.
type DataImportNormalizeDetail struct {
	// Data is the raw import content.
	Data any `json:"data"`
}

// NewDataImportNormalizeEvent creates the DataImport.normalize request.
func NewDataImportNormalizeEvent(data any, opts ...event.Option) *event.Request[DataImportNormalizeDetail, *ExportObject] {
	return event.NewRequest[DataImportNormalizeDetail, *ExportObject](TypeDataImportNormalize, DataImportNormalizeDetail{Data: data}, opts...)
}

// DataImportNormalize converts data into an ExportObject.
func DataImportNormalize(ctx context.Context, d event.Dispatcher, data any) (*ExportObject, error) {
	return event.Call(ctx, d, NewDataImportNormalizeEvent(data))
}

// DataImportProcessFileDetail is the detail of DataImport.processFile.
type DataImportProcessFileDetail struct {
	// File is the file to import.
	File FileRef `json:"file"`

	// Options configure the import.
	Options ImportOptions `json:"options"`
}

// NewDataImportProcessFileEvent creates the DataImport.processFile request.
func NewDataImportProcessFileEvent(file FileRef, options ImportOptions, opts ...event.Option) *event.Request[DataImportProcessFileDetail, event.Void] {
	return event.NewRequest[DataImportProcessFileDetail, event.Void](TypeDataImportProcessFile, DataImportProcessFileDetail{File: file, Options: options}, opts...)
}

// DataImportProcessFile imports the content of file.
func DataImportProcessFile(ctx context.Context, d event.Dispatcher, file FileRef, options ImportOptions) error {
	return event.Perform(ctx, d, NewDataImportProcessFileEvent(file, options))
}

// DataImportProcessDataDetail is the detail of DataImport.processData.
type DataImportProcessDataDetail struct {
	// Data is the raw import content.
	Data any `json:"data"`

	// Options configure the import.
	Options ImportOptions `json:"options"`
}

// NewDataImportProcessDataEvent creates the DataImport.processData request.
func NewDataImportProcessDataEvent(data any, options ImportOptions, opts ...event.Option) *event.Request[DataImportProcessDataDetail, event.Void] {
	return event.NewRequest[DataImportProcessDataDetail, event.Void](TypeDataImportProcessData, DataImportProcessDataDetail{Data: data, Options: options}, opts...)
}

// DataImportProcessData imports data.
func DataImportProcessData(ctx context.Context, d event.Dispatcher, data any, options ImportOptions) error {
	return event.Perform(ctx, d, NewDataImportProcessDataEvent(data, options))
}

// DataImportInspectDetail is the detail of DataImport.inspect.
type DataImportInspectDetail struct {
	// Data is the normalized import data.
	Data ExportObject `json:"data"`
}

// NewDataImportInspectEvent creates the DataImport.inspect notification.
func NewDataImportInspectEvent(data ExportObject, opts ...event.Option) *event.Notification[DataImportInspectDetail] {
	return event.NewNotification(TypeDataImportInspect, DataImportInspectDetail{Data: data}, opts...)
}

// DataImportInspect asks the UI to present data for review.
func DataImportInspect(ctx context.Context, d event.Dispatcher, data ExportObject) error {
	return event.Notify(ctx, d, NewDataImportInspectEvent(data))
}

// NewDataImportStateDataImportedEvent creates the
// DataImport.State.dataImported notification.
func NewDataImportStateDataImportedEvent(opts ...event.Option) *event.Notification[Empty] {
	return event.NewNotification(TypeDataImportStateDataImported, Empty{}, opts...)
}

// DataImportStateDataImported announces that an import finished.
func DataImportStateDataImported(ctx context.Context, d event.Dispatcher) error {
	return event.Notify(ctx, d, NewDataImportStateDataImportedEvent())
}

func dataImportEntries() []Entry {
	return []Entry{
		requestEntry[DataImportStoreDetail, event.Void]("DataImport.dataImport", TypeDataImportStore),
		requestEntry[DataImportNormalizeDetail, *ExportObject]("DataImport.normalize", TypeDataImportNormalize),
		requestEntry[DataImportProcessFileDetail, event.Void]("DataImport.processFile", TypeDataImportProcessFile),
		requestEntry[DataImportProcessDataDetail, event.Void]("DataImport.processData", TypeDataImportProcessData),
		notificationEntry[DataImportInspectDetail]("DataImport.inspect", TypeDataImportInspect),
		notificationEntry[Empty]("DataImport.State.dataImported", TypeDataImportStateDataImported),
	}
}
