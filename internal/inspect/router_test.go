package inspect

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/arcevents/internal/event"
	"github.com/dshills/arcevents/internal/event/events"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	res := httptest.NewRecorder()
	h.ServeHTTP(res, req)
	return res
}

func TestRouter_Routes(t *testing.T) {
	router := NewRouter(NewHandler(nil, WithLogger(quietLogger())))

	tests := []struct {
		name   string
		method string
		target string
		status int
		path   string
		want   string
	}{
		{"healthz", http.MethodGet, "/healthz", http.StatusOK, "status", "success"},
		{"type by path", http.MethodGet, "/v1/types/Config.update", http.StatusOK, "data.type", "arcconfigupdate"},
		{"type kind", http.MethodGet, "/v1/types/Config.State.update", http.StatusOK, "data.kind", "notification"},
		{"type fields", http.MethodGet, "/v1/types/Config.update", http.StatusOK, "data.fields.1", "value"},
		{"type result", http.MethodGet, "/v1/types/Config.read", http.StatusOK, "data.result", "any"},
		{"unknown path", http.MethodGet, "/v1/types/Config.nothing", http.StatusNotFound, "code", "UNKNOWN_PATH"},
		{"lookup", http.MethodGet, "/v1/lookup/projectmoveto", http.StatusOK, "data.path", "Model.Project.moveTo"},
		{"unknown type", http.MethodGet, "/v1/lookup/nosuchtype", http.StatusNotFound, "code", "UNKNOWN_TYPE"},
		{"unknown route", http.MethodGet, "/v2/types", http.StatusNotFound, "code", "NOT_FOUND"},
		{"dispatch without target", http.MethodPost, "/v1/dispatch", http.StatusNotFound, "status", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := serve(t, router, tt.method, tt.target, "")
			if res.Code != tt.status {
				t.Fatalf("%s %s = %d, want %d", tt.method, tt.target, res.Code, tt.status)
			}
			if got := gjson.GetBytes(res.Body.Bytes(), tt.path).String(); got != tt.want {
				t.Errorf("%s = %q, want %q (body %s)", tt.path, got, tt.want, res.Body.String())
			}
		})
	}
}

func TestRouter_ListTypes(t *testing.T) {
	router := NewRouter(NewHandler(nil, WithLogger(quietLogger())))

	res := serve(t, router, http.MethodGet, "/v1/types?match=Config.*", "")
	if res.Code != http.StatusOK {
		t.Fatalf("status = %d", res.Code)
	}
	types := gjson.GetBytes(res.Body.Bytes(), "data.#.type").Array()
	want := []string{"arcconfigread", "arcconfigreadall", "arcconfigupdate"}
	if len(types) != len(want) {
		t.Fatalf("types = %v, want %v", types, want)
	}
	for i, w := range want {
		if types[i].String() != w {
			t.Errorf("types[%d] = %s, want %s", i, types[i], w)
		}
	}

	res = serve(t, router, http.MethodGet, "/v1/types", "")
	if got := gjson.GetBytes(res.Body.Bytes(), "data.#").Int(); got != int64(events.Default().Len()) {
		t.Errorf("all types = %d, want %d", got, events.Default().Len())
	}
}

func TestRouter_Namespaces(t *testing.T) {
	router := NewRouter(NewHandler(nil, WithLogger(quietLogger())))

	res := serve(t, router, http.MethodGet, "/v1/namespaces", "")
	body := res.Body.Bytes()
	found := false
	for _, ns := range gjson.GetBytes(body, "data.namespaces").Array() {
		if ns.String() == "Model.Project.State" {
			found = true
		}
	}
	if !found {
		t.Errorf("Model.Project.State missing from %s", gjson.GetBytes(body, "data.namespaces").Raw)
	}
	if got := gjson.GetBytes(body, "data.domains.0").String(); got == "" {
		t.Error("no domains listed")
	}
}

func TestRouter_RequestID(t *testing.T) {
	router := NewRouter(NewHandler(nil, WithLogger(quietLogger())))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "req-1")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	if got := res.Header().Get("X-Request-Id"); got != "req-1" {
		t.Errorf("X-Request-Id = %q, want req-1", got)
	}

	res = serve(t, router, http.MethodGet, "/healthz", "")
	if res.Header().Get("X-Request-Id") == "" {
		t.Error("no request id generated")
	}
}

func TestRouter_Dispatch(t *testing.T) {
	target := event.NewTarget()
	_, err := target.On(events.TypeConfigRead, func(_ context.Context, e event.Event) error {
		req := e.(*event.Request[events.ConfigReadDetail, any])
		if req.Detail.Key == "secret" {
			return req.Reject(errors.New("denied"))
		}
		return req.Respond("value of " + req.Detail.Key)
	})
	if err != nil {
		t.Fatalf("On() error = %v", err)
	}
	router := NewRouter(NewHandler(nil, WithTarget(target), WithLogger(quietLogger())))

	tests := []struct {
		name   string
		body   string
		status int
		path   string
		want   string
	}{
		{"answered", `{"type":"arcconfigread","id":"1","detail":{"key":"a"}}`, http.StatusOK, "result", "value of a"},
		{"id echoed", `{"type":"arcconfigread","id":"7","detail":{"key":"a"}}`, http.StatusOK, "id", "7"},
		{"rejected", `{"type":"arcconfigread","id":"2","detail":{"key":"secret"}}`, http.StatusOK, "error", "denied"},
		{"unanswered", `{"type":"arcconfigreadall","id":"3"}`, http.StatusOK, "result", ""},
		{"notification", `{"type":"arcconfigstateupdate","id":"4","detail":{"key":"k","value":1}}`, http.StatusOK, "id", "4"},
		{"malformed", `{"type":`, http.StatusBadRequest, "code", "MALFORMED_ENVELOPE"},
		{"unknown type", `{"type":"nosuchtype"}`, http.StatusNotFound, "code", "UNKNOWN_TYPE"},
		{"bad detail", `{"type":"arcconfigread","detail":{"key":[1]}}`, http.StatusBadRequest, "code", "INVALID_DETAIL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := serve(t, router, http.MethodPost, "/v1/dispatch", tt.body)
			if res.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", res.Code, tt.status, res.Body.String())
			}
			if got := gjson.GetBytes(res.Body.Bytes(), tt.path).String(); got != tt.want {
				t.Errorf("%s = %q, want %q (body %s)", tt.path, got, tt.want, res.Body.String())
			}
		})
	}
}

func TestRecoverMiddleware(t *testing.T) {
	h := recoverMiddleware(quietLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	res := serve(t, h, http.MethodGet, "/", "")
	if res.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", res.Code)
	}
	if got := gjson.GetBytes(res.Body.Bytes(), "code").String(); got != "INTERNAL_ERROR" {
		t.Errorf("code = %q, want INTERNAL_ERROR", got)
	}
}

func TestDescribe(t *testing.T) {
	entry, ok := events.Default().Entry("Model.Project.moveTo")
	if !ok {
		t.Fatal("Model.Project.moveTo missing")
	}
	info := Describe(entry)
	if info.Type != "projectmoveto" || info.Kind != "request" || !info.Cancelable || info.Result != "Void" {
		t.Errorf("Describe() = %+v", info)
	}

	notification, _ := events.Default().Entry("Config.State.update")
	if got := Describe(notification); got.Cancelable || got.Result != "" {
		t.Errorf("Describe(notification) = %+v", got)
	}
}
