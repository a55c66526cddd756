// Package main is the entry point for the arcevents command line tool.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/arcevents/internal/config"
	"github.com/dshills/arcevents/internal/event"
	"github.com/dshills/arcevents/internal/event/dispatch"
	"github.com/dshills/arcevents/internal/event/events"
	"github.com/dshills/arcevents/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errUsage reports bad arguments; the usage text was already printed.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app carries what every subcommand needs.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	loader   *config.Loader
	settings config.Settings
	logger   *slog.Logger
	level    *slog.LevelVar
	catalog  *events.Catalog

	// levelFlag pins the log level given on the command line.
	levelFlag string
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("arcevents", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var configPath, logLevel string
	var showVersion bool
	fs.StringVar(&configPath, "config", "", "Path to settings file (.toml, .yaml)")
	fs.StringVar(&configPath, "c", "", "Path to settings file (shorthand)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "arcevents - event catalog and dispatch tool\n\n")
		fmt.Fprintf(stderr, "Usage: arcevents [options] <command> [arguments]\n\n")
		fmt.Fprintf(stderr, "Commands:\n")
		for _, c := range commands {
			fmt.Fprintf(stderr, "  %-28s %s\n", c.usage, c.summary)
		}
		fmt.Fprintf(stderr, "\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  arcevents list 'Model.Project.*'\n")
		fmt.Fprintf(stderr, "  arcevents lookup Config.update\n")
		fmt.Fprintf(stderr, "  arcevents export -format yaml\n")
		fmt.Fprintf(stderr, "  arcevents run scripts/config.lua < commands.txt\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if showVersion {
		fmt.Fprintf(stdout, "arcevents %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	name, rest := fs.Arg(0), fs.Args()[1:]
	cmd, ok := lookupCommand(name)
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", name)
		fs.Usage()
		return 2
	}

	switch logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", logLevel)
		return 2
	}

	loader := config.NewLoader(configPath)
	settings, err := loader.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if logLevel != "" {
		settings.Log.Level = logLevel
	}
	logger, level := logging.New(settings.Log, stderr)

	a := &app{
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		loader:   loader,
		settings: settings,
		logger:   logger,
		level:    level,
		catalog:  events.Default(),

		levelFlag: logLevel,
	}

	if err := cmd.run(ctx, a, rest); err != nil {
		if errors.Is(err, errUsage) {
			return 2
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newTarget creates and starts the root target described by the settings.
func (a *app) newTarget() (*event.Target, error) {
	d := a.settings.Dispatch
	t := event.NewTarget(
		event.WithLogger(a.logger),
		event.WithResponderPolicy(a.settings.ResponderPolicy()),
		event.WithListenerTimeout(d.ListenerTimeout.Std()),
		event.WithPoolOptions(
			dispatch.WithWorkerCount(d.Workers),
			dispatch.WithQueueSize(d.QueueSize),
		),
	)
	if err := t.Start(); err != nil {
		return nil, fmt.Errorf("start target: %w", err)
	}
	return t, nil
}

// applySettings updates what can change while running: the log level and
// the responder policy.
func (a *app) applySettings(t *event.Target, s config.Settings) {
	if a.levelFlag == "" {
		a.level.Set(logging.ParseLevel(s.Log.Level))
	}
	t.SetResponderPolicy(s.ResponderPolicy())
}
