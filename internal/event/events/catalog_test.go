package events

import (
	"encoding/json"
	"errors"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/arcevents/internal/event"
	"github.com/dshills/arcevents/internal/event/namespace"
)

func TestDefault_TypesAreUnique(t *testing.T) {
	seen := make(map[event.Type]namespace.Path)
	for _, e := range allEntries() {
		if prev, ok := seen[e.Type]; ok {
			t.Errorf("type %q used by %s and %s", e.Type, prev, e.Path)
		}
		seen[e.Type] = e.Path
	}

	c := Default()
	if c.Len() != len(seen) {
		t.Errorf("Len() = %d, want %d", c.Len(), len(seen))
	}
}

func TestDefault_PathsAreValid(t *testing.T) {
	for _, e := range Default().Entries() {
		if !e.Path.IsValid() {
			t.Errorf("invalid path %q", e.Path)
		}
		if e.Type == "" {
			t.Errorf("%s has an empty type", e.Path)
		}
		if strings.ToLower(string(e.Type)) != string(e.Type) {
			t.Errorf("%s type %q is not lower case", e.Path, e.Type)
		}
	}
}

func TestNewCatalog_Duplicates(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    error
	}{
		{
			name: "type",
			entries: []Entry{
				requestEntry[Empty, event.Void]("A.one", "dup"),
				requestEntry[Empty, event.Void]("A.two", "dup"),
			},
			want: ErrDuplicateType,
		},
		{
			name: "path",
			entries: []Entry{
				requestEntry[Empty, event.Void]("A.one", "first"),
				notificationEntry[Empty]("A.one", "second"),
			},
			want: ErrDuplicatePath,
		},
		{
			name: "invalid path",
			entries: []Entry{
				requestEntry[Empty, event.Void]("A.*", "wild"),
			},
			want: namespace.ErrInvalidPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.entries...); !errors.Is(err, tt.want) {
				t.Errorf("NewCatalog() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCatalog_Immutable(t *testing.T) {
	c := Default()

	if err := c.tree.Insert("Config.State.reset"); !errors.Is(err, namespace.ErrFrozen) {
		t.Errorf("Insert() error = %v, want ErrFrozen", err)
	}
	if err := c.tree.Insert("Config.read"); !errors.Is(err, namespace.ErrFrozen) {
		t.Errorf("Insert() over an existing path error = %v, want ErrFrozen", err)
	}
	if c.tree.Contains("Config.State.reset") {
		t.Error("frozen tree accepted a new path")
	}

	entries := c.Entries()
	entries[0].Type = "changed"
	entries[0].Fields = append(entries[0].Fields[:0], "changed")

	e, ok := c.Entry(entries[0].Path)
	if !ok {
		t.Fatalf("Entry(%s) not found", entries[0].Path)
	}
	if e.Type == "changed" {
		t.Error("modifying Entries() changed the catalog")
	}
	if len(e.Fields) > 0 && e.Fields[0] == "changed" {
		t.Error("modifying Entries() fields changed the catalog")
	}

	if got, _ := c.Lookup("Config.update"); got != TypeConfigUpdate {
		t.Errorf("Lookup(Config.update) = %q, want %q", got, TypeConfigUpdate)
	}
}

func TestCatalog_Lookup(t *testing.T) {
	tests := []struct {
		path namespace.Path
		want event.Type
	}{
		{"Config.readAll", "arcconfigreadall"},
		{"Config.read", "arcconfigread"},
		{"Config.update", "arcconfigupdate"},
		{"Config.State.update", "arcconfigstateupdate"},
		{"Cookie.update", "sessioncookieupdate"},
		{"Cookie.State.delete", "sessioncookiestatedelete"},
		{"Transport.request", "apirequest"},
		{"Transport.transport", "apitransport"},
		{"Transport.abort", "apiabort"},
		{"Transport.response", "apiresponse"},
		{"Transport.httpTransport", "apihttptransport"},
		{"Model.Project.State.update", "projectmodelstateupdate"},
		{"Model.destroy", "modeldestroy"},
		{"Navigation.helpTopic", "helpnavigate"},
		{"Telemetry.view", "telemetryscreenview"},
	}

	c := Default()
	for _, tt := range tests {
		got, ok := c.Lookup(tt.path)
		if !ok {
			t.Errorf("Lookup(%s) not found", tt.path)
			continue
		}
		if got != tt.want {
			t.Errorf("Lookup(%s) = %q, want %q", tt.path, got, tt.want)
		}
		e, ok := c.ByType(got)
		if !ok || e.Path != tt.path {
			t.Errorf("ByType(%q) = %s, %v, want %s", got, e.Path, ok, tt.path)
		}
	}

	if _, ok := c.Lookup("Config.missing"); ok {
		t.Error("Lookup(Config.missing) found an entry")
	}
	if _, ok := c.Lookup("Config"); ok {
		t.Error("Lookup(Config) found an entry for a namespace")
	}
}

func TestCatalog_Match(t *testing.T) {
	c := Default()

	tests := []struct {
		pattern namespace.Path
		want    []namespace.Path
	}{
		{"Config.**", []namespace.Path{"Config.State.update", "Config.read", "Config.readAll", "Config.update"}},
		{"Config.*", []namespace.Path{"Config.read", "Config.readAll", "Config.update"}},
		{"Model.*", []namespace.Path{"Model.destroy"}},
		{"Model.Variable.State.*", []namespace.Path{"Model.Variable.State.delete", "Model.Variable.State.update"}},
		{"*.State.clear", []namespace.Path{}},
		{"Model.*.State.clear", []namespace.Path{"Model.HostRules.State.clear", "Model.UrlHistory.State.clear"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.pattern), func(t *testing.T) {
			got := c.Match(tt.pattern)
			paths := make([]namespace.Path, len(got))
			for i, e := range got {
				paths[i] = e.Path
			}
			if !reflect.DeepEqual(paths, tt.want) {
				t.Errorf("Match(%s) = %v, want %v", tt.pattern, paths, tt.want)
			}
		})
	}

	if all := c.Match("**"); len(all) != c.Len() {
		t.Errorf("Match(**) = %d entries, want %d", len(all), c.Len())
	}
}

func TestCatalog_Namespaces(t *testing.T) {
	c := Default()

	ns := c.Namespaces()
	if !sort.SliceIsSorted(ns, func(i, j int) bool { return ns[i] < ns[j] }) {
		t.Error("Namespaces() is not sorted")
	}
	if !reflect.DeepEqual(ns, c.Namespaces()) {
		t.Error("Namespaces() is not stable")
	}

	want := []namespace.Path{"App", "Config", "Config.State", "Model", "Model.Project", "Model.Project.State", "Transport"}
	have := make(map[namespace.Path]bool, len(ns))
	for _, p := range ns {
		have[p] = true
	}
	for _, p := range want {
		if !have[p] {
			t.Errorf("Namespaces() is missing %s", p)
		}
	}

	domains := c.Domains()
	if len(domains) == 0 || domains[0] != "App" {
		t.Errorf("Domains() = %v, want App first", domains)
	}
	for _, d := range domains {
		if d == "Model.Project" {
			t.Error("Domains() lists a nested namespace")
		}
	}
}

func TestCatalog_Flags(t *testing.T) {
	for _, e := range Default().Entries() {
		ev, err := e.New(nil)
		if err != nil {
			t.Errorf("%s: New() error = %v", e.Path, err)
			continue
		}
		if ev.EventType() != e.Type {
			t.Errorf("%s: EventType() = %q, want %q", e.Path, ev.EventType(), e.Type)
		}

		flags := ev.EventFlags()
		if !flags.Bubbles || !flags.Composed {
			t.Errorf("%s: flags = %+v, want bubbles and composed", e.Path, flags)
		}
		switch e.Kind {
		case event.KindRequest:
			if !flags.Cancelable {
				t.Errorf("%s: request is not cancelable", e.Path)
			}
			if _, ok := ev.(event.Answerable); !ok {
				t.Errorf("%s: request is not answerable", e.Path)
			}
			if e.Result == "" {
				t.Errorf("%s: request has no result type", e.Path)
			}
		case event.KindNotification:
			if flags.Cancelable {
				t.Errorf("%s: notification is cancelable", e.Path)
			}
			if e.Result != "" {
				t.Errorf("%s: notification has result %q", e.Path, e.Result)
			}
		}

		if e.Path.IsState() && e.Kind != event.KindNotification {
			t.Errorf("%s: State operation is a request", e.Path)
		}
	}
}

func TestCatalog_DetailsKeepEveryKey(t *testing.T) {
	for _, e := range Default().Entries() {
		ev, err := e.New(nil)
		if err != nil {
			t.Fatalf("%s: New() error = %v", e.Path, err)
		}
		typ := reflect.TypeOf(ev.Payload())
		if name := omitemptyField(typ); name != "" {
			t.Errorf("%s: detail field %s is omitempty", e.Path, name)
		}

		data, err := json.Marshal(ev.Payload())
		if err != nil {
			t.Fatalf("%s: marshal detail: %v", e.Path, err)
		}
		for _, f := range e.Fields {
			if !gjson.GetBytes(data, f).Exists() {
				t.Errorf("%s: zero detail is missing %q", e.Path, f)
			}
		}
	}
}

func omitemptyField(typ reflect.Type) string {
	if typ.Kind() != reflect.Struct {
		return ""
	}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if strings.Contains(f.Tag.Get("json"), "omitempty") {
			return f.Name
		}
		if f.Anonymous {
			if name := omitemptyField(f.Type); name != "" {
				return name
			}
		}
	}
	return ""
}

func TestCatalog_ResultNames(t *testing.T) {
	tests := []struct {
		typ  event.Type
		want string
	}{
		{TypeConfigRead, "any"},
		{TypeConfigReadAll, "map[string]any"},
		{TypeConfigUpdate, "Void"},
		{TypeProjectList, "*ListResponse[Project]"},
		{TypeHostRulesUpdateBulk, "[]ChangeRecord[HostRule]"},
		{TypeCookieListAll, "[]Cookie"},
		{TypeConfigStateUpdate, ""},
	}

	c := Default()
	for _, tt := range tests {
		e, ok := c.ByType(tt.typ)
		if !ok {
			t.Errorf("ByType(%q) not found", tt.typ)
			continue
		}
		if e.Result != tt.want {
			t.Errorf("%s Result = %q, want %q", tt.typ, e.Result, tt.want)
		}
	}
}

func TestCatalog_New(t *testing.T) {
	c := Default()

	ev, err := c.New(TypeConfigUpdate, []byte(`{"key":"theme.dark","value":true}`), event.WithSource("bridge"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	req, ok := ev.(*event.Request[ConfigUpdateDetail, event.Void])
	if !ok {
		t.Fatalf("New() = %T, want config update request", ev)
	}
	if req.Detail.Key != "theme.dark" || req.Detail.Value != true {
		t.Errorf("Detail = %+v", req.Detail)
	}
	if req.EventMetadata().Source != "bridge" {
		t.Errorf("Source = %q, want bridge", req.EventMetadata().Source)
	}

	if _, err := c.New("nosuchtype", nil); !errors.Is(err, ErrUnknownType) {
		t.Errorf("New(unknown) error = %v, want ErrUnknownType", err)
	}
	if _, err := c.New(TypeConfigUpdate, []byte(`{"key":`)); err == nil {
		t.Error("New() with malformed detail succeeded")
	}

	n, err := c.New(TypeConfigStateUpdate, []byte("null"))
	if err != nil {
		t.Fatalf("New(null) error = %v", err)
	}
	if n.EventKind() != event.KindNotification {
		t.Errorf("EventKind() = %v, want notification", n.EventKind())
	}
}

func TestEntry_GoTypes(t *testing.T) {
	tests := []struct {
		typ    event.Type
		detail reflect.Type
		result reflect.Type
	}{
		{TypeCookieUpdateBulk, reflect.TypeOf(CookieUpdateBulkDetail{}), reflect.TypeOf(event.Void{})},
		{TypeCookieListAll, reflect.TypeOf(Empty{}), reflect.TypeOf([]Cookie(nil))},
		{TypeConfigStateUpdate, reflect.TypeOf(ConfigStateUpdateDetail{}), nil},
	}

	c := Default()
	for _, tt := range tests {
		e, ok := c.ByType(tt.typ)
		if !ok {
			t.Fatalf("ByType(%s) not found", tt.typ)
		}
		if got := e.DetailType(); got != tt.detail {
			t.Errorf("%s DetailType() = %v, want %v", tt.typ, got, tt.detail)
		}
		if got := e.ResultType(); got != tt.result {
			t.Errorf("%s ResultType() = %v, want %v", tt.typ, got, tt.result)
		}
	}
}
