package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/escapetower/component"
	"github.com/c360studio/escapetower/config"
	"github.com/c360studio/escapetower/prompt"
	"github.com/c360studio/escapetower/session"
)

// App is the main application that wires together all components.
type App struct {
	cfg     *config.Config
	session *session.Session
	logger  *slog.Logger
}

// NewApp creates a new application instance. A nil inventory means
// components are registered interactively.
func NewApp(cfg *config.Config, inv *component.Inventory, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		cfg: cfg,
		session: session.New(inv,
			session.WithDisplay(cfg.Display),
			session.WithLogger(logger)),
		logger: logger,
	}
}

// Run runs the interactive session until the user quits, input ends, or
// ctx is cancelled. The session runs on its own goroutine so that a
// cancellation is honoured even while a prompt is blocked on input.
func (a *App) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	if a.cfg.Metrics.Enabled {
		defer func() {
			if err := a.session.Recorder().WriteText(errOut); err != nil {
				a.logger.Warn("Failed to write metrics", "error", err)
			}
		}()
	}

	console := prompt.NewConsole(in, out)
	done := make(chan error, 1)
	go func() {
		done <- a.session.Run(ctx, console)
	}()

	select {
	case err := <-done:
		// The session also stops with ctx.Err() between menu choices.
		if !errors.Is(err, context.Canceled) {
			return err
		}
	case <-ctx.Done():
	}
	a.logger.Info("Received shutdown signal", "session_id", a.session.ID())
	fmt.Fprintln(out, "\nInterrupted.")
	return nil
}

func run(cmd *cobra.Command, opts options) error {
	// Configure logging before config so loader warnings are visible
	bootLevel := opts.logLevel
	if bootLevel == "" {
		bootLevel = config.DefaultConfig().Log.Level
	}
	slog.SetDefault(newLogger(bootLevel))

	// Load configuration
	cfg, err := config.NewLoader(slog.Default()).Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags take precedence over every config layer
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.metrics {
		cfg.Metrics.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	var inv *component.Inventory
	if opts.recordsPath != "" {
		inv, err = component.LoadFile(opts.recordsPath)
		if err != nil {
			return fmt.Errorf("load components: %w", err)
		}
		logger.Info("Loaded components", "path", opts.recordsPath, "count", inv.Len())
	}

	// Setup signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := NewApp(cfg, inv, logger)
	return app.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}
