package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dshills/arcevents/internal/event"
)

// Settings is the complete arcevents configuration.
type Settings struct {
	Log      LogSettings      `toml:"log" yaml:"log" json:"log"`
	Dispatch DispatchSettings `toml:"dispatch" yaml:"dispatch" json:"dispatch"`
	Inspect  InspectSettings  `toml:"inspect" yaml:"inspect" json:"inspect"`
	Scripts  ScriptSettings   `toml:"scripts" yaml:"scripts" json:"scripts"`
}

// LogSettings configures the logger.
type LogSettings struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level" yaml:"level" json:"level"`

	// Format is text or json.
	Format string `toml:"format" yaml:"format" json:"format"`
}

// DispatchSettings configures the root event target.
type DispatchSettings struct {
	// ResponderPolicy is first, last or single.
	ResponderPolicy string `toml:"responder_policy" yaml:"responder_policy" json:"responder_policy"`

	// Workers is the number of goroutines running deferred answers.
	Workers int `toml:"workers" yaml:"workers" json:"workers"`

	// QueueSize bounds the deferred answer queue.
	QueueSize int `toml:"queue_size" yaml:"queue_size" json:"queue_size"`

	// ListenerTimeout bounds each listener call. Zero disables it.
	ListenerTimeout Duration `toml:"listener_timeout" yaml:"listener_timeout" json:"listener_timeout"`
}

// InspectSettings configures the catalog HTTP API.
type InspectSettings struct {
	Addr string `toml:"addr" yaml:"addr" json:"addr"`
}

// ScriptSettings lists Lua scripts loaded at startup.
type ScriptSettings struct {
	Paths []string `toml:"paths" yaml:"paths" json:"paths"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
		Dispatch: DispatchSettings{
			ResponderPolicy: event.FirstResponder.String(),
			Workers:         4,
			QueueSize:       1024,
		},
		Inspect: InspectSettings{
			Addr: "127.0.0.1:7070",
		},
	}
}

// Validation errors.
var (
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrInvalidFormat = errors.New("invalid log format")
	ErrInvalidPolicy = errors.New("invalid responder policy")
	ErrInvalidValue  = errors.New("invalid value")
)

// Validate checks every field.
func (s Settings) Validate() error {
	var errs []error
	switch s.Log.Level {
	case "debug", "DEBUG", "info", "INFO", "warn", "WARN", "warning", "WARNING", "error", "ERROR":
	default:
		errs = append(errs, fmt.Errorf("log.level: %w: %q", ErrInvalidLevel, s.Log.Level))
	}
	switch s.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: %w: %q", ErrInvalidFormat, s.Log.Format))
	}
	if _, ok := event.ParseResponderPolicy(s.Dispatch.ResponderPolicy); !ok {
		errs = append(errs, fmt.Errorf("dispatch.responder_policy: %w: %q", ErrInvalidPolicy, s.Dispatch.ResponderPolicy))
	}
	if s.Dispatch.Workers < 1 {
		errs = append(errs, fmt.Errorf("dispatch.workers: %w: %d", ErrInvalidValue, s.Dispatch.Workers))
	}
	if s.Dispatch.QueueSize < 1 {
		errs = append(errs, fmt.Errorf("dispatch.queue_size: %w: %d", ErrInvalidValue, s.Dispatch.QueueSize))
	}
	if s.Dispatch.ListenerTimeout < 0 {
		errs = append(errs, fmt.Errorf("dispatch.listener_timeout: %w: %s", ErrInvalidValue, s.Dispatch.ListenerTimeout))
	}
	return errors.Join(errs...)
}

// ResponderPolicy returns the parsed dispatch policy, FirstResponder when
// it does not parse.
func (s Settings) ResponderPolicy() event.ResponderPolicy {
	p, ok := event.ParseResponderPolicy(s.Dispatch.ResponderPolicy)
	if !ok {
		return event.FirstResponder
	}
	return p
}

// Duration is a time.Duration written as a string such as "1.5s".
type Duration time.Duration

// Std returns the standard library duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}
