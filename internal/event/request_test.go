package event

import (
	"context"
	"errors"
	"testing"
)

type pair struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestNewRequest(t *testing.T) {
	req := NewRequest[readDetail, string](testRead, readDetail{Key: "k"}, WithSource("test"), WithCorrelation("c-1"))

	if req.EventType() != testRead {
		t.Errorf("EventType() = %q, want %q", req.EventType(), testRead)
	}
	if req.EventKind() != KindRequest {
		t.Errorf("EventKind() = %v, want request", req.EventKind())
	}
	want := Flags{Bubbles: true, Composed: true, Cancelable: true}
	if req.EventFlags() != want {
		t.Errorf("EventFlags() = %+v, want %+v", req.EventFlags(), want)
	}
	meta := req.EventMetadata()
	if meta.ID == "" {
		t.Error("ID is empty")
	}
	if meta.Source != "test" || meta.CorrelationID != "c-1" {
		t.Errorf("metadata = %+v", meta)
	}
	if req.Answered() || req.Result() != nil {
		t.Error("new request already has a result")
	}
	if req.DefaultPrevented() {
		t.Error("new request has default prevented")
	}
	if req.CurrentTarget() != nil {
		t.Error("CurrentTarget() outside of dispatch is not nil")
	}
}

func TestNewNotification(t *testing.T) {
	n := NewNotification(testState, pair{Name: "a"})

	want := Flags{Bubbles: true, Composed: true}
	if n.EventFlags() != want {
		t.Errorf("EventFlags() = %+v, want %+v", n.EventFlags(), want)
	}
	if n.EventKind() != KindNotification {
		t.Errorf("EventKind() = %v, want notification", n.EventKind())
	}
	if _, ok := any(n).(Answerable); ok {
		t.Error("notification implements Answerable")
	}
}

func TestRequest_RespondAny(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    pair
		wantErr bool
	}{
		{"typed", pair{Name: "a", Count: 1}, pair{Name: "a", Count: 1}, false},
		{"nil", nil, pair{}, false},
		{"map", map[string]any{"name": "b", "count": 2}, pair{Name: "b", Count: 2}, false},
		{"wrong shape", "text", pair{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewRequest[readDetail, pair](testRead, readDetail{})
			err := req.RespondAny(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrResultType) {
					t.Errorf("RespondAny() error = %v, want ErrResultType", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("RespondAny() error = %v", err)
			}
			got, err := req.AwaitAny(context.Background())
			if err != nil {
				t.Fatalf("AwaitAny() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("AwaitAny() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRequest_RespondAnyVoid(t *testing.T) {
	req := NewRequest[readDetail, Void](testRead, readDetail{})
	if err := req.RespondAny(map[string]any{"ignored": true}); err != nil {
		t.Errorf("RespondAny() error = %v", err)
	}
	if !req.Answered() {
		t.Error("Answered() = false after RespondAny")
	}
}

func TestRequest_AwaitAnyUnanswered(t *testing.T) {
	req := NewRequest[readDetail, int](testRead, readDetail{})
	v, err := req.AwaitAny(context.Background())
	if v != nil || err != nil {
		t.Errorf("AwaitAny() = %v, %v, want nil, nil", v, err)
	}
}

func TestRequest_RespondPendingNil(t *testing.T) {
	req := NewRequest[readDetail, int](testRead, readDetail{})
	if err := req.RespondPending(nil); !errors.Is(err, ErrResultType) {
		t.Errorf("RespondPending(nil) error = %v, want ErrResultType", err)
	}
}

func TestPending(t *testing.T) {
	p := NewPending[int]()
	if p.Settled() {
		t.Fatal("new Pending is settled")
	}
	if !p.Resolve(1) {
		t.Error("first Resolve() = false")
	}
	if p.Resolve(2) || p.Reject(errors.New("late")) {
		t.Error("settling twice succeeded")
	}
	v, err := p.Await(context.Background())
	if v != 1 || err != nil {
		t.Errorf("Await() = %d, %v, want 1, nil", v, err)
	}

	errBad := errors.New("bad")
	r := Rejected[int](errBad)
	if _, err := r.Await(context.Background()); err != errBad {
		t.Errorf("Await() error = %v, want %v", err, errBad)
	}
}

func TestParseResponderPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want ResponderPolicy
		ok   bool
	}{
		{"", FirstResponder, true},
		{"first", FirstResponder, true},
		{"last", LastResponder, true},
		{"single", SingleResponder, true},
		{"bogus", FirstResponder, false},
	}
	for _, tt := range tests {
		got, ok := ParseResponderPolicy(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseResponderPolicy(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
		if ok && tt.in != "" && got.String() != tt.in {
			t.Errorf("String() = %q, want %q", got.String(), tt.in)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindRequest, KindNotification} {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("bogus"); ok {
		t.Error("ParseKind(bogus) ok = true")
	}
}
