package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeScript(t *testing.T, code string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listeners.lua")
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no command", nil, 2},
		{"unknown command", []string{"frobnicate"}, 2},
		{"bad log level", []string{"-log-level", "loud", "list"}, 2},
		{"help", []string{"-h"}, 0},
		{"lookup without argument", []string{"lookup"}, 2},
		{"bad subcommand flag", []string{"list", "-nope"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runCLI(t, "", tt.args...); got.code != tt.code {
				t.Errorf("exit code = %d, want %d (stderr %q)", got.code, tt.code, got.stderr)
			}
		})
	}
}

func TestRun_Version(t *testing.T) {
	got := runCLI(t, "", "-version")
	if got.code != 0 || !strings.HasPrefix(got.stdout, "arcevents "+version) {
		t.Errorf("version output = %q", got.stdout)
	}
}

func TestList(t *testing.T) {
	got := runCLI(t, "", "list", "Config.*")
	if got.code != 0 {
		t.Fatalf("exit code = %d: %s", got.code, got.stderr)
	}

	lines := strings.Split(strings.TrimSpace(got.stdout), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), got.stdout)
	}
	cols := strings.Split(lines[2], "\t")
	want := []string{"Config.update", "arcconfigupdate", "request", "key,value", "Void"}
	if strings.Join(cols, "|") != strings.Join(want, "|") {
		t.Errorf("row = %q, want %q", cols, want)
	}
}

func TestList_Kind(t *testing.T) {
	got := runCLI(t, "", "list", "-kind", "notification", "Config.**")
	if got.code != 0 {
		t.Fatalf("exit code = %d: %s", got.code, got.stderr)
	}
	if lines := strings.Split(strings.TrimSpace(got.stdout), "\n"); len(lines) != 1 || !strings.HasPrefix(lines[0], "Config.State.update\t") {
		t.Errorf("output = %q", got.stdout)
	}

	if got := runCLI(t, "", "list", "-kind", "event"); got.code != 1 {
		t.Errorf("unknown kind exit code = %d, want 1", got.code)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"Model.Project.moveTo", "projectmoveto"} {
		got := runCLI(t, "", "lookup", name)
		if got.code != 0 {
			t.Fatalf("lookup %s exit code = %d: %s", name, got.code, got.stderr)
		}
		for _, want := range []string{"type\tprojectmoveto\n", "cancelable\ttrue\n", "result\tVoid\n"} {
			if !strings.Contains(got.stdout, want) {
				t.Errorf("lookup %s output missing %q:\n%s", name, want, got.stdout)
			}
		}
	}

	if got := runCLI(t, "", "lookup", "Nothing.here"); got.code != 1 {
		t.Errorf("unknown lookup exit code = %d, want 1", got.code)
	}
}

func TestCheck(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "arcevents.toml")
	if err := os.WriteFile(settings, []byte("[dispatch]\nresponder_policy = \"single\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := runCLI(t, "", "-config", settings, "check")
	if got.code != 0 {
		t.Fatalf("exit code = %d: %s", got.code, got.stderr)
	}
	if !strings.HasPrefix(got.stdout, "catalog ok: ") || !strings.Contains(got.stdout, "settings ok: "+settings) {
		t.Errorf("output = %q", got.stdout)
	}
}

func TestCheck_BadSettings(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "arcevents.yaml")
	if err := os.WriteFile(settings, []byte("dispatch:\n  workers: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := runCLI(t, "", "-config", settings, "check"); got.code != 1 {
		t.Errorf("exit code = %d, want 1", got.code)
	}
}

func TestExport(t *testing.T) {
	tests := []struct {
		format    string
		unmarshal func([]byte, any) error
	}{
		{"json", json.Unmarshal},
		{"yaml", yaml.Unmarshal},
		{"toml", toml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got := runCLI(t, "", "export", "-format", tt.format, "Model.Project.*")
			if got.code != 0 {
				t.Fatalf("exit code = %d: %s", got.code, got.stderr)
			}
			var doc catalogDocument
			if err := tt.unmarshal([]byte(got.stdout), &doc); err != nil {
				t.Fatalf("unmarshal: %v\n%s", err, got.stdout)
			}
			if len(doc.Types) == 0 {
				t.Fatal("no types exported")
			}
			for _, ti := range doc.Types {
				if !strings.HasPrefix(ti.Path, "Model.Project.") || ti.Type == "" || ti.Kind == "" {
					t.Errorf("exported %+v", ti)
				}
			}
		})
	}

	if got := runCLI(t, "", "export", "-format", "xml"); got.code != 1 {
		t.Errorf("unknown format exit code = %d, want 1", got.code)
	}
}

func TestRunScripts(t *testing.T) {
	path := writeScript(t, `
		arc.on("Config.read", function(detail)
			return detail.key .. "=1"
		end)
		arc.on("App.command", function(detail)
			arc.log("info", "command " .. detail.action .. " " .. table.concat(detail.args, ","))
		end)
	`)

	stdin := strings.Join([]string{
		`{"type":"arcconfigread","id":"q1","detail":{"key":"a"}}`,
		"# comment",
		"",
		"save now please",
		`{"type":"arcconfigreadall","id":"q2"}`,
		`{"type":"nosuchtype","id":"q3"}`,
		`{"type":"arcconfigstateupdate","id":"q4","detail":{"key":"k","value":1}}`,
	}, "\n")

	got := runCLI(t, stdin, "run", path)
	if got.code != 0 {
		t.Fatalf("exit code = %d: %s", got.code, got.stderr)
	}

	lines := strings.Split(strings.TrimSpace(got.stdout), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d answers, want 4:\n%s", len(lines), got.stdout)
	}

	tests := []struct {
		line int
		path string
		want string
	}{
		{0, "id", "q1"},
		{0, "result", "a=1"},
		{1, "id", "q2"},
		{1, "result", ""},
		{2, "id", "q3"},
		{3, "id", "q4"},
	}
	for _, tt := range tests {
		if got := gjson.Get(lines[tt.line], tt.path).String(); got != tt.want {
			t.Errorf("line %d %s = %q, want %q", tt.line, tt.path, got, tt.want)
		}
	}
	if !gjson.Get(lines[2], "error").Exists() {
		t.Errorf("unknown type answered without error: %s", lines[2])
	}
	if !strings.Contains(got.stderr, "command save now,please") {
		t.Errorf("App.command not seen by the script, stderr:\n%s", got.stderr)
	}
}

func TestRunScripts_MissingScript(t *testing.T) {
	if got := runCLI(t, "", "run", filepath.Join(t.TempDir(), "missing.lua")); got.code != 1 {
		t.Errorf("exit code = %d, want 1", got.code)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		line  string
		width int
		want  string
	}{
		{"abcdef", 0, "abcdef"},
		{"abcdef", 10, "abcdef"},
		{"abcdef", 4, "abc…"},
		{"abcdef", 1, "…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.line, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.line, tt.width, got, tt.want)
		}
	}
}
