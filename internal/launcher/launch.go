package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tick/internal/app"
	"github.com/thenoetrevino/tick/internal/config"
	"github.com/thenoetrevino/tick/internal/logging"
	"github.com/thenoetrevino/tick/internal/tui"
)

// Launch starts the TUI application
func Launch(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return fmt.Errorf("failed to resolve data directory: %w", err)
	}

	// Initialize logging to file before anything else
	logFile, err := logging.Init(dataDir)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logFile.Close()

	application, err := app.Open(ctx, dataDir,
		app.WithLogger(logging.Logger),
		app.WithLinger(cfg.LingerDelay()),
		app.WithSearchDebounce(cfg.SearchDebounceDelay()),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// database cleanup
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	return Run(ctx, application, cfg)
}

// Run drives the TUI over an opened application until the user quits or
// the process is interrupted
func Run(ctx context.Context, application *app.App, cfg *config.Config) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Pick up writes made by the CLI while the TUI is open
	watchCtx, stopWatch := context.WithCancel(ctx)
	watchDone := make(chan struct{})
	go func() {
		defer close(watchDone)
		if err := application.WatchExternalChanges(watchCtx); err != nil {
			slog.Warn("continuing without live reload", "error", err)
		}
	}()
	defer func() {
		stopWatch()
		<-watchDone
	}()

	model := tui.New(ctx, application, cfg)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received, cleaning up")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
