// Package guide prints the built-in quick reference
package guide

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideContent string

// GuideCmd returns the guide command
func GuideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Print a quick reference of commands and keys",
		Long: `Print a quick reference of commands, output modes and TUI keys.

The guide is rendered for the terminal; pass --raw for plain markdown,
which is what scripts and agents usually want.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			_, err := fmt.Fprint(cmd.OutOrStdout(), Render(raw))
			return err
		},
	}
	cmd.Flags().Bool("raw", false, "Print plain markdown")
	return cmd
}

// Render returns the guide, styled with glamour unless raw is set
func Render(raw bool) string {
	if raw {
		return guideContent
	}
	out, err := glamour.Render(guideContent, "auto")
	if err != nil {
		return guideContent
	}
	return out
}
