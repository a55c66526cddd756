// Package logging builds the slog logger used across arcevents.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/dshills/arcevents/internal/config"
)

// ServiceName is attached to every record.
const ServiceName = "arcevents"

// ParseLevel parses a level name. Unknown names yield info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug", "DEBUG":
		return slog.LevelDebug
	case "info", "INFO":
		return slog.LevelInfo
	case "warn", "WARN", "warning", "WARNING":
		return slog.LevelWarn
	case "error", "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger for s writing to w, os.Stderr when w is nil. The
// returned LevelVar changes the level of the logger afterwards, e.g. when
// the settings file is reloaded.
func New(s config.LogSettings, w io.Writer) (*slog.Logger, *slog.LevelVar) {
	if w == nil {
		w = os.Stderr
	}

	level := new(slog.LevelVar)
	level.Set(ParseLevel(s.Level))
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if s.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("service", ServiceName), level
}
