package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/dshills/arcevents/internal/event"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func envMap(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func noEnv(string) (string, bool) { return "", false }

func TestDefault(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if s.ResponderPolicy() != event.FirstResponder {
		t.Errorf("ResponderPolicy() = %v, want first", s.ResponderPolicy())
	}
	if s.Dispatch.Workers != 4 || s.Dispatch.QueueSize != 1024 {
		t.Errorf("Dispatch = %+v", s.Dispatch)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	s, err := NewLoader(filepath.Join(t.TempDir(), "none.toml"), WithLookupEnv(noEnv)).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(s, Default()) {
		t.Errorf("Load() = %+v, want defaults", s)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "arcevents.toml", `
[log]
level = "debug"

[dispatch]
responder_policy = "single"
workers = 8
listener_timeout = "1500ms"

[scripts]
paths = ["a.lua", "b.lua"]
`)

	s, err := NewLoader(path, WithLookupEnv(noEnv)).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", s.Log.Level)
	}
	if s.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want default text", s.Log.Format)
	}
	if s.ResponderPolicy() != event.SingleResponder {
		t.Errorf("ResponderPolicy() = %v, want single", s.ResponderPolicy())
	}
	if s.Dispatch.Workers != 8 || s.Dispatch.QueueSize != 1024 {
		t.Errorf("Dispatch = %+v", s.Dispatch)
	}
	if got := s.Dispatch.ListenerTimeout.Std(); got != 1500*time.Millisecond {
		t.Errorf("ListenerTimeout = %v, want 1.5s", got)
	}
	if !reflect.DeepEqual(s.Scripts.Paths, []string{"a.lua", "b.lua"}) {
		t.Errorf("Scripts.Paths = %v", s.Scripts.Paths)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "arcevents.yaml", `
log:
  format: json
dispatch:
  responder_policy: last
  queue_size: 16
inspect:
  addr: ":9000"
`)

	s, err := NewLoader(path, WithLookupEnv(noEnv)).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Log.Format != "json" || s.Log.Level != "info" {
		t.Errorf("Log = %+v", s.Log)
	}
	if s.ResponderPolicy() != event.LastResponder || s.Dispatch.QueueSize != 16 {
		t.Errorf("Dispatch = %+v", s.Dispatch)
	}
	if s.Inspect.Addr != ":9000" {
		t.Errorf("Inspect.Addr = %q", s.Inspect.Addr)
	}
}

func TestLoad_EmptyYAML(t *testing.T) {
	path := writeFile(t, "arcevents.yml", "")
	s, err := NewLoader(path, WithLookupEnv(noEnv)).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(s, Default()) {
		t.Errorf("Load() = %+v, want defaults", s)
	}
}

func TestLoad_Precedence(t *testing.T) {
	path := writeFile(t, "arcevents.toml", `
[log]
level = "debug"
format = "json"

[dispatch]
workers = 8
`)
	env := envMap(map[string]string{
		"ARCEVENTS_LOG_LEVEL":                 "error",
		"ARCEVENTS_DISPATCH_LISTENER_TIMEOUT": "2s",
		"ARCEVENTS_SCRIPTS_PATHS":             "x.lua, y.lua,",
		"ARCEVENTS_INSPECT_ADDR":              "",
	})

	s, err := NewLoader(path, WithLookupEnv(env)).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"env over file", s.Log.Level, "error"},
		{"file over default", s.Log.Format, "json"},
		{"file only", s.Dispatch.Workers, 8},
		{"default only", s.Dispatch.QueueSize, 1024},
		{"env only", s.Dispatch.ListenerTimeout.Std(), 2 * time.Second},
		{"env list", s.Scripts.Paths, []string{"x.lua", "y.lua"}},
		{"empty env ignored", s.Inspect.Addr, Default().Inspect.Addr},
	}
	for _, tt := range tests {
		if !reflect.DeepEqual(tt.got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoad_EnvPrefix(t *testing.T) {
	env := envMap(map[string]string{"APP_LOG_LEVEL": "warn", "ARCEVENTS_LOG_LEVEL": "error"})
	s, err := NewLoader("", WithEnvPrefix("APP_"), WithLookupEnv(env)).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", s.Log.Level)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		env     map[string]string
		check   func(error) bool
	}{
		{
			name: "toml syntax", file: "a.toml", content: "[log\nlevel = 1",
			check: func(err error) bool {
				var perr *ParseError
				return errors.As(err, &perr) && perr.Line > 0
			},
		},
		{
			name: "toml unknown key", file: "a.toml", content: "[log]\ncolour = true\n",
			check: func(err error) bool {
				var perr *ParseError
				return errors.As(err, &perr)
			},
		},
		{
			name: "yaml unknown key", file: "a.yaml", content: "log:\n  colour: true\n",
			check: func(err error) bool {
				var perr *ParseError
				return errors.As(err, &perr)
			},
		},
		{
			name: "bad duration", file: "a.toml", content: "[dispatch]\nlistener_timeout = \"soon\"\n",
			check: func(err error) bool {
				var perr *ParseError
				return errors.As(err, &perr)
			},
		},
		{
			name: "unsupported format", file: "a.ini", content: "x=1",
			check: func(err error) bool { return errors.Is(err, ErrUnsupportedFormat) },
		},
		{
			name: "invalid policy", file: "a.toml", content: "[dispatch]\nresponder_policy = \"all\"\n",
			check: func(err error) bool { return errors.Is(err, ErrInvalidPolicy) },
		},
		{
			name: "invalid level", file: "a.yaml", content: "log:\n  level: loud\n",
			check: func(err error) bool { return errors.Is(err, ErrInvalidLevel) },
		},
		{
			name: "invalid workers", file: "a.toml", content: "[dispatch]\nworkers = 0\n",
			check: func(err error) bool { return errors.Is(err, ErrInvalidValue) },
		},
		{
			name: "bad env int", file: "a.toml", content: "",
			env:   map[string]string{"ARCEVENTS_DISPATCH_WORKERS": "many"},
			check: func(err error) bool { return err != nil },
		},
		{
			name: "bad env format", file: "a.toml", content: "",
			env:   map[string]string{"ARCEVENTS_LOG_FORMAT": "xml"},
			check: func(err error) bool { return errors.Is(err, ErrInvalidFormat) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := NewLoader(path, WithLookupEnv(envMap(tt.env))).Load()
			if err == nil || !tt.check(err) {
				t.Errorf("Load() error = %v", err)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Path: "a.toml", Line: 2, Column: 5, Message: "bad"}, "parse error in a.toml at line 2, column 5: bad"},
		{&ParseError{Path: "a.toml", Line: 2, Message: "bad"}, "parse error in a.toml at line 2: bad"},
		{&ParseError{Path: "a.toml", Message: "bad"}, "parse error in a.toml: bad"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}

	inner := errors.New("inner")
	if !errors.Is(&ParseError{Err: inner}, inner) {
		t.Error("ParseError does not unwrap")
	}
}

func TestEnvNames(t *testing.T) {
	names := NewLoader("").EnvNames()
	if len(names) != len(envSettings) || names[0] != "ARCEVENTS_LOG_LEVEL" {
		t.Errorf("EnvNames() = %v", names)
	}
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("250ms")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if d.Std() != 250*time.Millisecond {
		t.Errorf("Std() = %v", d.Std())
	}
	text, _ := d.MarshalText()
	if string(text) != "250ms" {
		t.Errorf("MarshalText() = %s", text)
	}
	if err := d.UnmarshalText([]byte("later")); err == nil {
		t.Error("UnmarshalText() accepted an invalid duration")
	}
}
