package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Clipboard event types.
const (
	// TypeClipboardReadText reads text from the clipboard.
	TypeClipboardReadText event.Type = "clipboardreadtext"

	// TypeClipboardWriteText writes text to the clipboard.
	TypeClipboardWriteText event.Type = "clipboardwritetext"
)

// NewClipboardReadTextEvent creates the Clipboard.readText request.
func NewClipboardReadTextEvent(opts ...event.Option) *event.Request[Empty, string] {
	return event.NewRequest[Empty, string](TypeClipboardReadText, Empty{}, opts...)
}

// ClipboardReadText returns the text in the clipboard.
func ClipboardReadText(ctx context.Context, d event.Dispatcher) (string, error) {
	return event.Call(ctx, d, NewClipboardReadTextEvent())
}

// ClipboardWriteTextDetail is the detail of Clipboard.writeText.
type ClipboardWriteTextDetail struct {
	Text string `json:"text"`
}

// NewClipboardWriteTextEvent creates the Clipboard.writeText request.
func NewClipboardWriteTextEvent(text string, opts ...event.Option) *event.Request[ClipboardWriteTextDetail, event.Void] {
	return event.NewRequest[ClipboardWriteTextDetail, event.Void](TypeClipboardWriteText, ClipboardWriteTextDetail{Text: text}, opts...)
}

// ClipboardWriteText puts text in the clipboard.
func ClipboardWriteText(ctx context.Context, d event.Dispatcher, text string) error {
	return event.Perform(ctx, d, NewClipboardWriteTextEvent(text))
}

func clipboardEntries() []Entry {
	return []Entry{
		requestEntry[Empty, string]("Clipboard.readText", TypeClipboardReadText),
		requestEntry[ClipboardWriteTextDetail, event.Void]("Clipboard.writeText", TypeClipboardWriteText),
	}
}
