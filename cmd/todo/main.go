package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/tgienger/todo/internal/config"
	"github.com/tgienger/todo/internal/logging"
	"github.com/tgienger/todo/internal/notify"
	"github.com/tgienger/todo/internal/todo"
	"github.com/tgienger/todo/internal/ui"
	"github.com/tgienger/todo/internal/ui/styles"
	"github.com/tgienger/todo/internal/ui/views"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("todo %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := logging.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger.Info("starting", "version", version, "config", cfg.Path, "theme", cfg.Theme)
	styles.Use(cfg.Theme)

	// Notifications go on screen and into the log
	toasts := notify.NewQueue(cfg.ToastDuration(), cfg.MaxToasts)
	sink := notify.Multi{toasts, notify.NewLogger(logger)}
	list := todo.New(sink, todo.WithLogger(logger))

	app := ui.NewApp(list, toasts, views.Options{
		Title:     cfg.Title,
		Subtitle:  cfg.Subtitle,
		CharLimit: cfg.CharLimit,
	}, logger)

	if err := ui.Run(app); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		logFile.Close()
		os.Exit(1)
	}
	logger.Info("exiting", "tasks", list.Len())
}
