package events

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/tidwall/gjson"

	"github.com/dshills/arcevents/internal/event"
)

func TestConfigUpdate_ListenerSeesDetail(t *testing.T) {
	target := event.NewTarget()

	var seen event.Event
	target.On(TypeConfigUpdate, func(_ context.Context, e event.Event) error {
		seen = e
		return e.(*event.Request[ConfigUpdateDetail, event.Void]).Respond(event.Void{})
	})

	if err := ConfigUpdate(context.Background(), target, "theme.dark", true); err != nil {
		t.Fatalf("ConfigUpdate() error = %v", err)
	}
	if seen == nil {
		t.Fatal("listener was not called")
	}

	want := ConfigUpdateDetail{Key: "theme.dark", Value: true}
	if got := seen.Payload(); got != want {
		t.Errorf("detail = %+v, want %+v", got, want)
	}
	flags := seen.EventFlags()
	if !flags.Cancelable || !flags.Bubbles || !flags.Composed {
		t.Errorf("flags = %+v, want cancelable, bubbling and composed", flags)
	}
	if !seen.DefaultPrevented() {
		t.Error("answered request does not have default prevented")
	}
}

func TestConfigRead_RoundTrip(t *testing.T) {
	target := event.NewTarget()
	target.On(TypeConfigRead, func(_ context.Context, e event.Event) error {
		req := e.(*event.Request[ConfigReadDetail, any])
		if req.Detail.Key != "request.timeout" {
			return nil
		}
		return req.Respond(90)
	})

	got, err := ConfigRead(context.Background(), target, "request.timeout")
	if err != nil {
		t.Fatalf("ConfigRead() error = %v", err)
	}
	if got != 90 {
		t.Errorf("ConfigRead() = %v, want 90", got)
	}

	got, err = ConfigRead(context.Background(), target, "other")
	if err != nil || got != nil {
		t.Errorf("ConfigRead(other) = %v, %v, want nil, nil", got, err)
	}
}

func TestHelpers_SilentMiss(t *testing.T) {
	target := event.NewTarget()
	ctx := context.Background()

	if v, err := ConfigReadAll(ctx, target); v != nil || err != nil {
		t.Errorf("ConfigReadAll() = %v, %v, want nil, nil", v, err)
	}
	if v, err := ProjectRead(ctx, target, "p1", ""); v != nil || err != nil {
		t.Errorf("ProjectRead() = %v, %v, want nil, nil", v, err)
	}
	if v, err := CookieListAll(ctx, target); v != nil || err != nil {
		t.Errorf("CookieListAll() = %v, %v, want nil, nil", v, err)
	}
	if v, err := EncryptionEncode(ctx, target, "aes", "x", "secret"); v != "" || err != nil {
		t.Errorf("EncryptionEncode() = %q, %v, want empty, nil", v, err)
	}
	if err := ThemeActivate(ctx, target, "dark"); err != nil {
		t.Errorf("ThemeActivate() error = %v, want nil", err)
	}
}

func TestHelpers_RejectionPropagates(t *testing.T) {
	errMissing := errors.New("project not found")

	target := event.NewTarget()
	target.On(TypeProjectRead, func(_ context.Context, e event.Event) error {
		return e.(event.Answerable).Reject(errMissing)
	})

	_, err := ProjectRead(context.Background(), target, "p1", "")
	if err != errMissing {
		t.Errorf("ProjectRead() error = %v, want %v", err, errMissing)
	}
}

func TestHelpers_DeferredAnswer(t *testing.T) {
	target := event.NewTarget()
	if err := target.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer target.Close(context.Background())

	target.On(TypeTransportHTTP, func(_ context.Context, e event.Event) error {
		req := e.(*event.Request[TransportHTTPDetail, *TransportResult])
		return req.RespondFunc(func(context.Context) (*TransportResult, error) {
			return &TransportResult{
				Request:  TransportRecord{URL: req.Detail.Request.URL, Method: req.Detail.Request.Method},
				Response: HTTPResponse{Status: 204},
			}, nil
		})
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	res, err := TransportHTTP(ctx, target, HTTPRequest{URL: "https://api.example.com", Method: "GET"}, RequestConfig{Enabled: true})
	if err != nil {
		t.Fatalf("TransportHTTP() error = %v", err)
	}
	if res == nil || res.Response.Status != 204 || res.Request.URL != "https://api.example.com" {
		t.Errorf("TransportHTTP() = %+v", res)
	}
}

func TestHelpers_Notifications(t *testing.T) {
	target := event.NewTarget()

	var got []event.Type
	for _, typ := range []event.Type{TypeConfigStateUpdate, TypeTransportAbort, TypeToastShow, TypeThemeStateActivated} {
		target.On(typ, func(_ context.Context, e event.Event) error {
			got = append(got, e.EventType())
			e.PreventDefault()
			if e.DefaultPrevented() {
				t.Errorf("%s: PreventDefault() took effect", e.EventType())
			}
			return nil
		})
	}

	ctx := context.Background()
	if err := ConfigStateUpdate(ctx, target, "theme.dark", true); err != nil {
		t.Fatal(err)
	}
	if err := TransportAbort(ctx, target, "r1"); err != nil {
		t.Fatal(err)
	}
	if err := ToastShow(ctx, target, "Saved", "info", 0); err != nil {
		t.Fatal(err)
	}
	if err := ThemeStateActivated(ctx, target, "dark"); err != nil {
		t.Fatal(err)
	}

	want := []event.Type{TypeConfigStateUpdate, TypeTransportAbort, TypeToastShow, TypeThemeStateActivated}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("notified = %v, want %v", got, want)
	}
}

func TestConstructors_DetailShape(t *testing.T) {
	tests := []struct {
		name string
		ev   event.Event
		keys []string
	}{
		{"config read all", NewConfigReadAllEvent(), nil},
		{"config update", NewConfigUpdateEvent("a", nil), []string{"key", "value"}},
		{"cookie delete url", NewCookieDeleteURLEvent("https://a", "sid"), []string{"url", "name"}},
		{"auth remove token", NewAuthOAuth2RemoveTokenEvent("c", "", "", "", nil),
			[]string{"clientId", "authorizationUri", "accessTokenUri", "redirectUri", "scopes"}},
		{"export custom", NewDataExportCustomEvent(nil, ExportOptions{}, ProviderOptions{}),
			[]string{"data", "exportOptions", "providerOptions"}},
		{"variable list", NewVariableListEvent("default", 0, ""), []string{"parent", "limit", "nextPageToken"}},
		{"navigate", NewNavigationNavigateEvent("history", nil), []string{"route", "opts"}},
		{"project move", NewProjectMoveToEvent("p", "r", RequestTypeSaved, -1),
			[]string{"projectId", "requestId", "requestType", "position"}},
		{"request read", NewRequestReadEvent(RequestTypeSaved, "r", RequestReadOptions{}), []string{"type", "id", "opts"}},
		{"request query", NewRequestQueryEvent("api", "", false), []string{"term", "type", "detailed"}},
		{"transport response", NewTransportResponseEvent("r1", HTTPRequest{}, TransportRecord{}, HTTPResponse{}),
			[]string{"id", "source", "request", "response"}},
		{"telemetry view", NewTelemetryViewEvent("home", nil, nil), []string{"screenName", "customDimensions", "customMetrics"}},
		{"telemetry timing", NewTelemetryTimingEvent("c", "v", 1, ""), []string{"category", "variable", "value", "label"}},
		{"environment select state", NewEnvironmentStateSelectEvent(nil, nil), []string{"environment", "variables"}},
		{"process error", NewProcessLoadingErrorEvent("t", "failed", "boom"), []string{"id", "message", "error"}},
		{"reporting", NewReportingErrorEvent("boom", "", "app"), []string{"error", "description", "component"}},
		{"download progress", NewUpdaterStateDownloadProgressEvent(10, 1, 2, 3),
			[]string{"percent", "bytesPerSecond", "transferred", "total"}},
		{"websocket message", NewWebSocketStateMessageEvent("w", "hi", DirectionIn), []string{"id", "message", "direction"}},
		{"search found", NewSearchStateFoundEvent(3, 1), []string{"matches", "activeMatch"}},
		{"workspace write", NewWorkspaceWriteEvent(Workspace{}, "w"), []string{"contents", "id"}},
		{"toast", NewToastShowEvent("hi", "info", 0), []string{"message", "kind", "duration"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.ev.Payload())
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			detail := gjson.ParseBytes(data)
			if !detail.IsObject() {
				t.Fatalf("detail %s is not an object", data)
			}

			var keys []string
			detail.ForEach(func(k, _ gjson.Result) bool {
				keys = append(keys, k.String())
				return true
			})
			if !reflect.DeepEqual(keys, tt.keys) {
				t.Errorf("keys = %v, want %v", keys, tt.keys)
			}
		})
	}
}

func TestConstructors_OmittedArgumentsStayVisible(t *testing.T) {
	data, err := json.Marshal(NewNavigationNavigateEvent("history", nil).Payload())
	if err != nil {
		t.Fatal(err)
	}
	opts := gjson.GetBytes(data, "opts")
	if !opts.Exists() || opts.Type != gjson.Null {
		t.Errorf("opts = %v (exists %v), want null", opts.Raw, opts.Exists())
	}

	data, err = json.Marshal(NewConfigUpdateEvent("a", nil).Payload())
	if err != nil {
		t.Fatal(err)
	}
	if got := gjson.GetBytes(data, "value"); !got.Exists() || got.Type != gjson.Null {
		t.Errorf("value = %v, want null", got.Raw)
	}
}

func TestConstructors_NoSideEffects(t *testing.T) {
	target := event.NewTarget()
	calls := 0
	target.On(TypeConfigUpdate, func(context.Context, event.Event) error {
		calls++
		return nil
	})

	req := NewConfigUpdateEvent("a", 1)
	if calls != 0 {
		t.Error("constructing an event dispatched it")
	}
	if req.Answered() {
		t.Error("new request already has a result")
	}
}
