package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tick/internal/app"
	"github.com/thenoetrevino/tick/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	owned  bool
}

type contextKey string

const appKey contextKey = "tickApp"

// WithApp returns a context carrying an already wired app. Commands run
// with such a context use it instead of opening the data directory.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// NewCLI loads the config and opens the data directory
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}

	application, err := app.Open(ctx, dataDir,
		app.WithLinger(0),
		app.WithSearchDebounce(cfg.SearchDebounceDelay()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{App: application, Config: cfg, owned: true}, nil
}

// GetCLIFromContext returns the CLI for a command: the app injected with
// WithApp when present, otherwise a freshly opened one.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
			return &CLI{App: a, Config: config.Default()}, nil
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources. An injected app is left open for its owner.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
