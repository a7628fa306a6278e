package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/thenoetrevino/tick/internal/database"
	"github.com/thenoetrevino/tick/internal/preferences"
	"github.com/thenoetrevino/tick/internal/repository"
	settingsservice "github.com/thenoetrevino/tick/internal/services/settings"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
	"github.com/thenoetrevino/tick/internal/state"
	"github.com/thenoetrevino/tick/internal/watch"
	"golang.org/x/sync/errgroup"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db     *sql.DB
	dbPath string
	cfg    *appConfig

	// Storage layer
	Tasks       *database.TaskStore
	Preferences *preferences.Store

	// Service layer (business logic)
	TaskService     taskservice.Service
	SettingsService settingsservice.Service
}

// New creates a new App with all services initialized over an opened,
// migrated database and a preference store.
func New(db *sql.DB, prefs *preferences.Store, opts ...Option) *App {
	cfg := &appConfig{linger: state.DefaultLinger}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	tasks := database.NewTaskStore(db, cfg.logger)
	return &App{
		db:              db,
		cfg:             cfg,
		Tasks:           tasks,
		Preferences:     prefs,
		TaskService:     taskservice.NewService(repository.NewTaskRepo(tasks, cfg.linger), cfg.logger),
		SettingsService: settingsservice.NewService(repository.NewSettingsRepo(prefs, cfg.linger), cfg.logger),
	}
}

// Open opens (creating if needed) the database and the preference file
// inside dataDir and wires the application.
func Open(ctx context.Context, dataDir string, opts ...Option) (*App, error) {
	dbPath := filepath.Join(dataDir, database.DBFileName)
	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return nil, err
	}

	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	prefs, err := preferences.Open(filepath.Join(dataDir, preferences.FileName), cfg.logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open preferences: %w", err)
	}

	a := New(db, prefs, opts...)
	a.dbPath = dbPath
	return a, nil
}

// NewListState creates the list screen state with the configured linger and debounce
func (a *App) NewListState() *state.ListViewState {
	return state.NewListViewState(a.TaskService,
		state.WithListLinger(a.cfg.linger),
		state.WithSearchDebounce(a.cfg.searchDebounce),
		state.WithListLogger(a.cfg.logger),
	)
}

// NewDetailState creates the add/edit screen state
func (a *App) NewDetailState() *state.DetailState {
	return state.NewDetailState(a.TaskService)
}

// NewSettingsState creates the settings screen state
func (a *App) NewSettingsState() *state.SettingsState {
	return state.NewSettingsState(a.SettingsService)
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.cfg.logger
}

// WatchExternalChanges refreshes live data when another process (for
// example the CLI) writes the database or the preference file.
// It blocks until ctx is done.
func (a *App) WatchExternalChanges(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.Preferences.Watch(ctx)
	})

	if a.dbPath != "" {
		g.Go(func() error {
			return watch.Files(ctx, watch.Config{
				Paths:  []string{a.dbPath, a.dbPath + "-wal"},
				Logger: a.cfg.logger,
			}, func() {
				if err := a.Tasks.Refresh(ctx); err != nil {
					a.cfg.logger.Error("failed to refresh tasks after external change", "error", err)
				}
			})
		})
	}

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
