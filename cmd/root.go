package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli/guide"
	"github.com/thenoetrevino/tick/internal/cli/task"
	"github.com/thenoetrevino/tick/internal/cli/theme"
	"github.com/thenoetrevino/tick/internal/launcher"
)

// NewRootCmd builds the tick command tree. Without a subcommand it opens
// the TUI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tick",
		Short: "Tick - a small to-do list for the terminal",
		Long: `Tick keeps a to-do list in a local SQLite database.

Run it without arguments for the interactive interface, or use the
subcommands to script it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context())
		},
	}

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(theme.ThemeCmd())
	rootCmd.AddCommand(guide.GuideCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "tui",
		Short: "Open the interactive interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context())
		},
	})

	return rootCmd
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
