package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/arcevents/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := New(config.LogSettings{Level: "warn", Format: "json"}, &buf)

	logger.Info("hidden")
	logger.Warn("listener failed", "type", "arcconfigupdate")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d records, want 1: %q", len(lines), buf.String())
	}
	rec := lines[0]
	if got := gjson.Get(rec, "msg").String(); got != "listener failed" {
		t.Errorf("msg = %q", got)
	}
	if got := gjson.Get(rec, "type").String(); got != "arcconfigupdate" {
		t.Errorf("type = %q", got)
	}
	if got := gjson.Get(rec, "service").String(); got != ServiceName {
		t.Errorf("service = %q", got)
	}
}

func TestNew_TextAndLevelChange(t *testing.T) {
	var buf bytes.Buffer
	logger, level := New(config.LogSettings{Level: "info", Format: "text"}, &buf)

	logger.Debug("before")
	level.Set(slog.LevelDebug)
	logger.Debug("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Error("debug record written at info level")
	}
	if !strings.Contains(out, "msg=after") {
		t.Errorf("text output missing record: %q", out)
	}
}
