package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of writes into one reload.
const DefaultDebounce = 100 * time.Millisecond

// ErrNoPath is returned by Watch for a loader without a settings file.
var ErrNoPath = errors.New("no settings file to watch")

// WatchOption configures Watch.
type WatchOption func(*watchConfig)

type watchConfig struct {
	debounce time.Duration
}

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) WatchOption {
	return func(c *watchConfig) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// Watch reloads the settings file of l after every change and passes the
// result to onChange until ctx ends. When a reload or the watcher fails,
// onChange receives the last good settings and the error.
//
// The directory holding the file is watched, so editors that replace the
// file on save and files created after Watch starts are both seen.
func Watch(ctx context.Context, l *Loader, onChange func(Settings, error), opts ...WatchOption) error {
	if l.Path() == "" {
		return ErrNoPath
	}
	cfg := watchConfig{debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(&cfg)
	}

	target, err := filepath.Abs(l.Path())
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	last, err := l.Load()
	if err != nil {
		last = Default()
	}

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !relevant(ev.Op) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(cfg.debounce)
			} else {
				timer.Reset(cfg.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			s, err := l.Load()
			if err != nil {
				onChange(last, err)
				continue
			}
			last = s
			onChange(s, nil)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			onChange(last, fmt.Errorf("watch %s: %w", target, err))
		}
	}
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) ||
		op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename)
}
