// Package theme implements the theme commands
package theme

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/cli/handler"
	"github.com/thenoetrevino/tick/internal/models"
)

// Result is the output of every theme command
type Result struct {
	Theme models.Theme `json:"theme"`
	Label string       `json:"label"`
}

func (r Result) String() string {
	return fmt.Sprintf("Theme: %s (%s)", r.Label, r.Theme)
}

func newResult(t models.Theme) Result {
	return Result{Theme: t, Label: t.Label()}
}

// ThemeCmd returns the theme parent command. Without a subcommand it
// prints the current theme.
func ThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the color theme",
		Long: `Show or change the color theme used by the TUI and the CLI.

Themes: system (follow the terminal background), light, dark.

Examples:
  tick theme
  tick theme set dark
  tick theme cycle --json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runGet)),
	}
	cli.AddOutputFlags(cmd)

	cmd.AddCommand(setCmd())
	cmd.AddCommand(cycleCmd())
	return cmd
}

func setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "set <system|light|dark>",
		Short:     "Set the color theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"system", "light", "dark"},
		RunE:      handler.Command(handler.HandlerFunc(runSet)),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func cycleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Switch to the next theme (system, light, dark)",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(handler.HandlerFunc(runCycle)),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// withCLI resolves the CLI, runs fn and closes it
func withCLI(ctx context.Context, args *handler.Arguments, fn func(*cli.CLI) (any, error)) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, args.Formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()
	return fn(cliInstance)
}

func runGet(ctx context.Context, args *handler.Arguments) (any, error) {
	return withCLI(ctx, args, func(c *cli.CLI) (any, error) {
		return newResult(c.App.SettingsService.Theme()), nil
	})
}

func runSet(ctx context.Context, args *handler.Arguments) (any, error) {
	theme, ok := models.ParseTheme(args.Args[0])
	if !ok {
		return nil, args.Formatter.FailWithSuggestion(cli.ExitValidation, "INVALID_THEME",
			fmt.Errorf("invalid theme '%s'", args.Args[0]),
			"Use one of: system, light, dark")
	}

	return withCLI(ctx, args, func(c *cli.CLI) (any, error) {
		if err := c.App.SettingsService.SetTheme(theme); err != nil {
			return nil, err
		}
		return newResult(theme), nil
	})
}

func runCycle(ctx context.Context, args *handler.Arguments) (any, error) {
	return withCLI(ctx, args, func(c *cli.CLI) (any, error) {
		next := c.App.SettingsService.Theme().Next()
		if err := c.App.SettingsService.SetTheme(next); err != nil {
			return nil, err
		}
		return newResult(next), nil
	})
}
