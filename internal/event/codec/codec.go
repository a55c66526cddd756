// Package codec converts events to and from the JSON envelope used to
// exchange them with other runtimes:
//
//	{
//	  "type": "arcconfigupdate",
//	  "path": "Config.update",
//	  "kind": "request",
//	  "bubbles": true,
//	  "composed": true,
//	  "cancelable": true,
//	  "id": "0b0c6f4e-...",
//	  "detail": {"key": "theme.dark", "value": true}
//	}
//
// Answers travel back as {"id": ..., "result": ...} or
// {"id": ..., "error": "..."}.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/arcevents/internal/event"
	"github.com/dshills/arcevents/internal/event/events"
	"github.com/dshills/arcevents/internal/event/namespace"
)

var (
	// ErrMalformed is returned for data that is not a valid envelope.
	ErrMalformed = errors.New("malformed event envelope")

	// ErrUnknownType is returned for envelopes of types missing from the
	// catalog.
	ErrUnknownType = events.ErrUnknownType
)

// Envelope is a decoded event envelope. Detail is kept raw until the
// event is built or queried.
type Envelope struct {
	Type   event.Type
	Path   namespace.Path
	Kind   event.Kind
	Flags  event.Flags
	ID     string
	Detail json.RawMessage
}

// Get queries the detail with a gjson path, e.g. "request.url".
func (e Envelope) Get(path string) gjson.Result {
	return gjson.GetBytes(e.Detail, path)
}

// Codec encodes and decodes envelopes against a catalog.
type Codec struct {
	catalog *events.Catalog
}

// New creates a codec. A nil catalog uses events.Default.
func New(catalog *events.Catalog) *Codec {
	if catalog == nil {
		catalog = events.Default()
	}
	return &Codec{catalog: catalog}
}

// Encode writes ev as an envelope.
func (c *Codec) Encode(ev event.Event) ([]byte, error) {
	if ev == nil {
		return nil, event.ErrNilEvent
	}
	entry, ok := c.catalog.ByType(ev.EventType())
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, ev.EventType())
	}

	detail, err := json.Marshal(ev.Payload())
	if err != nil {
		return nil, fmt.Errorf("encode %s detail: %w", ev.EventType(), err)
	}

	flags := ev.EventFlags()
	fields := []struct {
		path  string
		value any
	}{
		{"type", string(ev.EventType())},
		{"path", string(entry.Path)},
		{"kind", ev.EventKind().String()},
		{"bubbles", flags.Bubbles},
		{"composed", flags.Composed},
		{"cancelable", flags.Cancelable},
		{"id", ev.EventMetadata().ID},
	}

	out := []byte("{}")
	for _, f := range fields {
		if out, err = sjson.SetBytes(out, f.path, f.value); err != nil {
			return nil, fmt.Errorf("encode %s: %w", f.path, err)
		}
	}
	if out, err = sjson.SetRawBytes(out, "detail", detail); err != nil {
		return nil, fmt.Errorf("encode detail: %w", err)
	}
	return out, nil
}

// Decode reads an envelope. Only "type" is required; the path, kind and
// flags are taken from the catalog.
func (c *Codec) Decode(data []byte) (Envelope, error) {
	if !gjson.ValidBytes(data) {
		return Envelope{}, ErrMalformed
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Envelope{}, fmt.Errorf("%w: not an object", ErrMalformed)
	}

	typ := root.Get("type")
	if typ.Type != gjson.String || typ.String() == "" {
		return Envelope{}, fmt.Errorf("%w: missing type", ErrMalformed)
	}
	entry, ok := c.catalog.ByType(event.Type(typ.String()))
	if !ok {
		return Envelope{}, fmt.Errorf("%w: %q", ErrUnknownType, typ.String())
	}

	env := Envelope{
		Type:  entry.Type,
		Path:  entry.Path,
		Kind:  entry.Kind,
		Flags: entry.Kind.Flags(),
		ID:    root.Get("id").String(),
	}
	if p := root.Get("path"); p.Exists() && namespace.Path(p.String()) != entry.Path {
		return Envelope{}, fmt.Errorf("%w: path %q does not match type %q", ErrMalformed, p.String(), entry.Type)
	}
	if detail := root.Get("detail"); detail.Exists() {
		if !detail.IsObject() && detail.Type != gjson.Null {
			return Envelope{}, fmt.Errorf("%w: detail is not an object", ErrMalformed)
		}
		env.Detail = json.RawMessage(detail.Raw)
	}
	return env, nil
}

// Event builds the typed event of env. The envelope id becomes the
// correlation id of the event.
func (c *Codec) Event(env Envelope, opts ...event.Option) (event.Event, error) {
	if env.ID != "" {
		opts = append([]event.Option{event.WithCorrelation(env.ID)}, opts...)
	}
	return c.catalog.New(env.Type, env.Detail, opts...)
}

// DetailAs decodes the detail of env into D.
func DetailAs[D any](env Envelope) (D, error) {
	var d D
	if len(env.Detail) == 0 {
		return d, nil
	}
	if err := json.Unmarshal(env.Detail, &d); err != nil {
		return d, fmt.Errorf("decode %s detail: %w", env.Type, err)
	}
	return d, nil
}

// EncodeResult writes the answer to the envelope with the given id. A
// non-nil err takes precedence over v.
func EncodeResult(id string, v any, err error) ([]byte, error) {
	out, serr := sjson.SetBytes([]byte("{}"), "id", id)
	if serr != nil {
		return nil, serr
	}
	if err != nil {
		return sjson.SetBytes(out, "error", err.Error())
	}
	return sjson.SetBytes(out, "result", v)
}
