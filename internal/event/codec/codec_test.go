package codec

import (
	"errors"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/arcevents/internal/event"
	"github.com/dshills/arcevents/internal/event/events"
)

func TestEncode(t *testing.T) {
	c := New(nil)

	req := events.NewConfigUpdateEvent("theme.dark", true)
	data, err := c.Encode(req)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	tests := []struct {
		path string
		want string
	}{
		{"type", "arcconfigupdate"},
		{"path", "Config.update"},
		{"kind", "request"},
		{"bubbles", "true"},
		{"composed", "true"},
		{"cancelable", "true"},
		{"id", req.EventMetadata().ID},
		{"detail.key", "theme.dark"},
		{"detail.value", "true"},
	}
	for _, tt := range tests {
		if got := gjson.GetBytes(data, tt.path).String(); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestEncode_Notification(t *testing.T) {
	data, err := New(nil).Encode(events.NewTransportAbortEvent("r1"))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if gjson.GetBytes(data, "cancelable").Bool() {
		t.Error("notification encoded as cancelable")
	}
	if got := gjson.GetBytes(data, "kind").String(); got != "notification" {
		t.Errorf("kind = %q, want notification", got)
	}
}

func TestEncode_Errors(t *testing.T) {
	c := New(nil)

	if _, err := c.Encode(nil); !errors.Is(err, event.ErrNilEvent) {
		t.Errorf("Encode(nil) error = %v, want ErrNilEvent", err)
	}
	if _, err := c.Encode(event.NewNotification[int]("nosuchtype", 1)); !errors.Is(err, ErrUnknownType) {
		t.Errorf("Encode(unknown) error = %v, want ErrUnknownType", err)
	}
}

func TestRoundTrip(t *testing.T) {
	c := New(nil)

	original := events.NewProjectMoveToEvent("p1", "r1", events.RequestTypeSaved, 2)
	data, err := c.Encode(original)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	env, err := c.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if env.Type != events.TypeProjectMoveTo || env.Path != "Model.Project.moveTo" {
		t.Errorf("envelope = %s %s", env.Type, env.Path)
	}
	if env.Kind != event.KindRequest || !env.Flags.Cancelable {
		t.Errorf("kind = %v, flags = %+v", env.Kind, env.Flags)
	}
	if got := env.Get("position").Int(); got != 2 {
		t.Errorf("Get(position) = %d, want 2", got)
	}

	detail, err := DetailAs[events.ProjectMoveToDetail](env)
	if err != nil {
		t.Fatalf("DetailAs() error = %v", err)
	}
	if detail != original.Detail {
		t.Errorf("DetailAs() = %+v, want %+v", detail, original.Detail)
	}

	ev, err := c.Event(env)
	if err != nil {
		t.Fatalf("Event() error = %v", err)
	}
	rebuilt, ok := ev.(*event.Request[events.ProjectMoveToDetail, event.Void])
	if !ok {
		t.Fatalf("Event() = %T", ev)
	}
	if rebuilt.Detail != original.Detail {
		t.Errorf("rebuilt detail = %+v, want %+v", rebuilt.Detail, original.Detail)
	}
	if rebuilt.EventMetadata().CorrelationID != original.EventMetadata().ID {
		t.Error("rebuilt event is not correlated with the envelope id")
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"invalid json", `{"type":`, ErrMalformed},
		{"not an object", `["arcconfigupdate"]`, ErrMalformed},
		{"missing type", `{"detail":{}}`, ErrMalformed},
		{"type not a string", `{"type":1}`, ErrMalformed},
		{"unknown type", `{"type":"nosuchtype"}`, ErrUnknownType},
		{"path mismatch", `{"type":"arcconfigupdate","path":"Config.read"}`, ErrMalformed},
		{"detail not an object", `{"type":"arcconfigupdate","detail":"x"}`, ErrMalformed},
	}

	c := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Decode([]byte(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecode_MinimalEnvelope(t *testing.T) {
	env, err := New(nil).Decode([]byte(`{"type":"arcconfigreadall"}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if env.Path != "Config.readAll" {
		t.Errorf("Path = %s, want Config.readAll", env.Path)
	}
	if _, err := New(nil).Event(env); err != nil {
		t.Errorf("Event() error = %v", err)
	}
}

func TestEncodeResult(t *testing.T) {
	data, err := EncodeResult("r1", map[string]int{"count": 3}, nil)
	if err != nil {
		t.Fatalf("EncodeResult() error = %v", err)
	}
	if got := gjson.GetBytes(data, "result.count").Int(); got != 3 {
		t.Errorf("result.count = %d, want 3", got)
	}
	if gjson.GetBytes(data, "error").Exists() {
		t.Error("error key set on success")
	}

	data, err = EncodeResult("r2", nil, errors.New("denied"))
	if err != nil {
		t.Fatalf("EncodeResult() error = %v", err)
	}
	if got := gjson.GetBytes(data, "error").String(); got != "denied" {
		t.Errorf("error = %q, want denied", got)
	}
	if got := gjson.GetBytes(data, "id").String(); got != "r2" {
		t.Errorf("id = %q, want r2", got)
	}
}
