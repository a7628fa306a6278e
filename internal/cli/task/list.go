package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/cli/styles"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/state"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `List tasks with an optional search and sort order.

The search matches title or description, ignoring case. Progress is
computed over the listed tasks.

Examples:
  tick task list
  tick task list --search=milk --sort=priority
  tick task list --json
  tick task list --quiet   # one ID per line
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("search", "", "Only tasks whose title or description contains this text")
	cmd.Flags().String("sort", "date", "Sort order: date, priority, title")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	query, _ := cmd.Flags().GetString("search")
	sortStr, _ := cmd.Flags().GetString("sort")

	order, err := state.ParseSortOrder(sortStr)
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "INVALID_SORT", err)
	}

	cliInstance, closeFn, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeFn()

	all, err := cliInstance.App.TaskService.ListTasks(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "STORAGE_ERROR", err)
	}

	tasks, analytics := state.Apply(all, query, order)

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success":   true,
			"tasks":     tasks,
			"analytics": analytics,
			"sort":      order.String(),
		})
	}

	if formatter.Quiet {
		for _, t := range tasks {
			if _, err := fmt.Fprintf(formatter.Out, "%d\n", t.ID); err != nil {
				return err
			}
		}
		return nil
	}

	if len(tasks) == 0 {
		if strings.TrimSpace(query) != "" {
			return formatter.Println(fmt.Sprintf("No tasks match %q", query))
		}
		return formatter.Println("No tasks yet. Add one with 'tick task add \"title\"'")
	}

	return formatter.Println(renderList(tasks, analytics, order, time.Now()))
}

// renderList formats the human-readable task table
func renderList(tasks []*models.Task, analytics state.Analytics, order state.SortOrder, now time.Time) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Tasks"))
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("  (sorted by %s)", order.Label())))
	b.WriteString("\n")

	titleWidth := 0
	for _, t := range tasks {
		titleWidth = max(titleWidth, len([]rune(t.Title)))
	}
	titleWidth = min(titleWidth, 48)

	for _, t := range tasks {
		check := "[ ]"
		title := ansi.Truncate(t.Title, titleWidth, "…")
		title += strings.Repeat(" ", max(titleWidth-ansi.StringWidth(title), 0))
		if t.Completed {
			check = "[x]"
			title = styles.CompletedStyle.Render(title)
		}

		due := models.FormatDueDate(t.DueDate)
		if t.IsOverdue(now) {
			due = styles.OverdueStyle.Render(due + " (overdue)")
		}

		fmt.Fprintf(&b, "%s %-4s %s  %s  %s\n",
			check,
			fmt.Sprintf("#%d", t.ID),
			title,
			styles.Priority(t.Priority).Render(fmt.Sprintf("%-6s", t.Priority.Label())),
			due)
	}

	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%d of %d completed (%d%%)",
		analytics.Completed, analytics.Total, analytics.Percent())))
	return b.String()
}
