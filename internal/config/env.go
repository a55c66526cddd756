package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// envSetting maps a variable name, without prefix, to the field it sets.
type envSetting struct {
	name string
	set  func(s *Settings, v string) error
}

var envSettings = []envSetting{
	{"LOG_LEVEL", func(s *Settings, v string) error {
		s.Log.Level = v
		return nil
	}},
	{"LOG_FORMAT", func(s *Settings, v string) error {
		s.Log.Format = strings.ToLower(v)
		return nil
	}},
	{"DISPATCH_RESPONDER_POLICY", func(s *Settings, v string) error {
		s.Dispatch.ResponderPolicy = strings.ToLower(v)
		return nil
	}},
	{"DISPATCH_WORKERS", func(s *Settings, v string) error {
		return parseInt(v, &s.Dispatch.Workers)
	}},
	{"DISPATCH_QUEUE_SIZE", func(s *Settings, v string) error {
		return parseInt(v, &s.Dispatch.QueueSize)
	}},
	{"DISPATCH_LISTENER_TIMEOUT", func(s *Settings, v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		s.Dispatch.ListenerTimeout = Duration(d)
		return nil
	}},
	{"INSPECT_ADDR", func(s *Settings, v string) error {
		s.Inspect.Addr = v
		return nil
	}},
	{"SCRIPTS_PATHS", func(s *Settings, v string) error {
		s.Scripts.Paths = splitList(v)
		return nil
	}},
}

// EnvNames returns the environment variables the loader reads.
func (l *Loader) EnvNames() []string {
	out := make([]string, len(envSettings))
	for i, e := range envSettings {
		out[i] = l.prefix + e.name
	}
	return out
}

// applyEnv overlays the environment on s. Empty values are ignored.
func (l *Loader) applyEnv(s *Settings) error {
	var errs []error
	for _, e := range envSettings {
		name := l.prefix + e.name
		v, ok := l.lookupEnv(name)
		if !ok {
			continue
		}
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if err := e.set(s, v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func parseInt(v string, dst *int) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

// splitList splits a comma separated list, dropping empty items.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
