package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatch_NoPath(t *testing.T) {
	err := Watch(context.Background(), NewLoader(""), func(Settings, error) {})
	if !errors.Is(err, ErrNoPath) {
		t.Errorf("Watch() error = %v, want ErrNoPath", err)
	}
}

func TestWatch_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcevents.toml")
	if err := os.WriteFile(path, []byte("[log]\nlevel = \"info\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	type update struct {
		s   Settings
		err error
	}
	updates := make(chan update, 8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, NewLoader(path, WithLookupEnv(noEnv)), func(s Settings, err error) {
			updates <- update{s, err}
		}, WithDebounce(20*time.Millisecond))
	}()
	defer func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	}()

	// the watcher may not be registered yet; rewrite until it reports
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for {
		if err := os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		select {
		case u := <-updates:
			if u.err != nil {
				t.Fatalf("reload error = %v", u.err)
			}
			if u.s.Log.Level != "debug" {
				t.Errorf("Log.Level = %q, want debug", u.s.Log.Level)
			}
			return
		case <-tick.C:
		case <-deadline:
			t.Fatal("no reload after writing the settings file")
		}
	}
}

func TestWatch_ReloadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcevents.toml")
	if err := os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	errs := make(chan Settings, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = Watch(ctx, NewLoader(path, WithLookupEnv(noEnv)), func(s Settings, err error) {
			if err != nil {
				errs <- s
			}
		}, WithDebounce(20*time.Millisecond))
	}()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for {
		if err := os.WriteFile(path, []byte("[log\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		select {
		case last := <-errs:
			if last.Log.Level != "warn" {
				t.Errorf("last good Log.Level = %q, want warn", last.Log.Level)
			}
			return
		case <-tick.C:
		case <-deadline:
			t.Fatal("no reload error reported")
		}
	}
}
