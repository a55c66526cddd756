package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/dshills/arcevents/internal/config"
	"github.com/dshills/arcevents/internal/event"
	"github.com/dshills/arcevents/internal/event/codec"
	"github.com/dshills/arcevents/internal/event/events"
	"github.com/dshills/arcevents/internal/event/namespace"
	"github.com/dshills/arcevents/internal/inspect"
	"github.com/dshills/arcevents/internal/script"
)

type command struct {
	name    string
	usage   string
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"list", "list [-kind k] [pattern]", "List event types matching a path pattern", runList},
		{"lookup", "lookup <path|type>", "Describe one event type", runLookup},
		{"check", "check", "Verify the catalog and the settings", runCheck},
		{"export", "export [-format f] [pattern]", "Write the catalog as json, yaml or toml", runExport},
		{"serve", "serve [-addr a] [script.lua...]", "Serve the catalog HTTP API", runServe},
		{"run", "run script.lua...", "Dispatch stdin lines to Lua scripts", runRun},
	}
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func newFlagSet(a *app, name, usage string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "Usage: arcevents %s\n", usage)
		fs.PrintDefaults()
	}
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	return nil
}

func patternArg(fs *flag.FlagSet) namespace.Path {
	if fs.NArg() > 0 {
		return namespace.Path(fs.Arg(0))
	}
	return namespace.WildcardMulti
}

func runList(_ context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "list", "list [-kind request|notification] [pattern]")
	kindName := fs.String("kind", "", "Only list request or notification types")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	var kind event.Kind
	filter := *kindName != ""
	if filter {
		k, ok := event.ParseKind(*kindName)
		if !ok {
			return fmt.Errorf("unknown kind %q", *kindName)
		}
		kind = k
	}

	t := newTable(a.stdout, "PATH", "TYPE", "KIND", "FIELDS", "RESULT")
	for _, e := range a.catalog.Match(patternArg(fs)) {
		if filter && e.Kind != kind {
			continue
		}
		t.row(e.Path.String(), e.Type.String(), e.Kind.String(), strings.Join(e.Fields, ","), e.Result)
	}
	return t.flush()
}

func runLookup(_ context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "lookup", "lookup <path|type>")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	name := fs.Arg(0)
	entry, ok := a.catalog.Entry(namespace.Path(name))
	if !ok {
		entry, ok = a.catalog.ByType(event.Type(name))
	}
	if !ok {
		return fmt.Errorf("no event type or path %q", name)
	}

	flags := entry.Kind.Flags()
	t := newTable(a.stdout, "KEY", "VALUE")
	t.row("path", entry.Path.String())
	t.row("type", entry.Type.String())
	t.row("kind", entry.Kind.String())
	t.row("bubbles", strconv.FormatBool(flags.Bubbles))
	t.row("composed", strconv.FormatBool(flags.Composed))
	t.row("cancelable", strconv.FormatBool(flags.Cancelable))
	t.row("fields", strings.Join(entry.Fields, ","))
	if entry.Result != "" {
		t.row("result", entry.Result)
	}
	return t.flush()
}

// runCheck builds every catalog event from an empty detail and sends it
// through the codec.
func runCheck(_ context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "check", "check")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	c := codec.New(a.catalog)
	var errs []error
	for _, e := range a.catalog.Entries() {
		if err := checkEntry(c, e); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Path, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "catalog ok: %d types, %d domains, %d namespaces\n",
		a.catalog.Len(), len(a.catalog.Domains()), len(a.catalog.Namespaces()))
	if p := a.loader.Path(); p != "" {
		fmt.Fprintf(a.stdout, "settings ok: %s\n", p)
	}
	return nil
}

func checkEntry(c *codec.Codec, e events.Entry) error {
	if !e.Path.IsValid() {
		return fmt.Errorf("invalid path")
	}
	ev, err := e.New(nil)
	if err != nil {
		return err
	}
	if ev.EventKind() != e.Kind {
		return fmt.Errorf("kind %s, want %s", ev.EventKind(), e.Kind)
	}
	data, err := c.Encode(ev)
	if err != nil {
		return err
	}
	env, err := c.Decode(data)
	if err != nil {
		return err
	}
	if env.Type != e.Type || env.Path != e.Path {
		return fmt.Errorf("round trip gave %s %s", env.Type, env.Path)
	}
	for _, f := range e.Fields {
		if !env.Get(gjsonKey(f)).Exists() {
			return fmt.Errorf("detail field %q not encoded", f)
		}
	}
	return nil
}

// gjsonKey escapes the path characters of a detail key.
func gjsonKey(key string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)
	return r.Replace(key)
}

// catalogDocument is the export layout.
type catalogDocument struct {
	Version string             `json:"version" yaml:"version" toml:"version"`
	Types   []inspect.TypeInfo `json:"types" yaml:"types" toml:"types"`
}

func runExport(_ context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "export", "export [-format json|yaml|toml] [pattern]")
	format := fs.String("format", "json", "Output format: json, yaml or toml")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	doc := catalogDocument{
		Version: version,
		Types:   inspect.DescribeAll(a.catalog.Match(patternArg(fs))),
	}

	switch *format {
	case "json":
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml", "yml":
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(a.stdout).Encode(doc)
	default:
		return fmt.Errorf("unknown format %q (must be json, yaml or toml)", *format)
	}
}

func runServe(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "serve", "serve [-addr host:port] [script.lua...]")
	addr := fs.String("addr", a.settings.Inspect.Addr, "Listen address")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	t, err := a.newTarget()
	if err != nil {
		return err
	}
	defer a.closeTarget(t)

	rt, err := a.loadScripts(ctx, t, fs.Args())
	if err != nil {
		return err
	}
	defer rt.Close()

	if a.loader.Path() != "" {
		go a.watchSettings(ctx, t)
	}

	h := inspect.NewHandler(a.catalog, inspect.WithTarget(t), inspect.WithLogger(a.logger))
	return inspect.Serve(ctx, *addr, h)
}

func (a *app) watchSettings(ctx context.Context, t *event.Target) {
	err := config.Watch(ctx, a.loader, func(s config.Settings, err error) {
		if err != nil {
			a.logger.Warn("settings reload failed", "path", a.loader.Path(), "error", err)
			return
		}
		a.applySettings(t, s)
		a.logger.Info("settings reloaded", "path", a.loader.Path())
	})
	if err != nil {
		a.logger.Warn("settings watcher stopped", "error", err)
	}
}

// runRun loads the scripts and dispatches stdin. A line holding a JSON
// envelope is dispatched as is and answered on stdout; any other line is
// an App.command notification whose first word is the action.
func runRun(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "run", "run script.lua...")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	t, err := a.newTarget()
	if err != nil {
		return err
	}
	defer a.closeTarget(t)

	rt, err := a.loadScripts(ctx, t, fs.Args())
	if err != nil {
		return err
	}
	defer rt.Close()

	c := codec.New(a.catalog)
	scanner := bufio.NewScanner(a.stdin)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "{") {
			if err := a.dispatchEnvelope(ctx, t, c, []byte(line)); err != nil {
				return err
			}
			continue
		}

		words := strings.Fields(line)
		cmdArgs := make([]any, 0, len(words)-1)
		for _, w := range words[1:] {
			cmdArgs = append(cmdArgs, w)
		}
		if err := events.AppCommand(ctx, t, words[0], cmdArgs); err != nil {
			a.logger.Warn("command dispatch failed", "action", words[0], "error", err)
		}
	}
	return scanner.Err()
}

// dispatchEnvelope answers one envelope line. Decoding and dispatch
// failures are answered as errors; only write failures are returned.
func (a *app) dispatchEnvelope(ctx context.Context, t *event.Target, c *codec.Codec, line []byte) error {
	id := gjson.GetBytes(line, "id").String()

	var result any
	err := func() error {
		env, err := c.Decode(line)
		if err != nil {
			return err
		}
		ev, err := c.Event(env, event.WithSource("stdin"))
		if err != nil {
			return err
		}
		if err := t.Dispatch(ctx, ev); err != nil {
			return err
		}
		if ans, ok := ev.(event.Answerable); ok {
			result, err = ans.AwaitAny(ctx)
			return err
		}
		return nil
	}()

	out, encErr := codec.EncodeResult(id, result, err)
	if encErr != nil {
		out, _ = codec.EncodeResult(id, nil, encErr)
	}
	_, werr := fmt.Fprintf(a.stdout, "%s\n", out)
	return werr
}

func (a *app) loadScripts(ctx context.Context, t *event.Target, paths []string) (*script.Runtime, error) {
	rt, err := script.New(t, script.WithCatalog(a.catalog), script.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	all := append(append([]string(nil), a.settings.Scripts.Paths...), paths...)
	for _, p := range all {
		if err := rt.DoFile(ctx, p); err != nil {
			_ = rt.Close()
			return nil, err
		}
	}
	a.logger.Debug("scripts loaded", "count", len(all), "listeners", rt.ListenerCount())
	return rt, nil
}

func (a *app) closeTarget(t *event.Target) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := t.Close(ctx); err != nil {
		a.logger.Warn("close target", "error", err)
	}
}
