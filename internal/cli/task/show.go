package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/cli/styles"
	"github.com/thenoetrevino/tick/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Long:  "Display all details of a task. The description is rendered as markdown.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	taskID, err := parseTaskArg(formatter, args)
	if err != nil {
		return err
	}

	cliInstance, closeFn, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeFn()

	task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return failTask(formatter, taskID, err)
	}

	if formatter.Quiet {
		return formatter.Success(task)
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"task":    task,
		})
	}

	dark := styles.UseTheme(cliInstance.App.SettingsService.Theme(), cliInstance.Config.Colors)
	return formatter.Println(renderCard(task, dark, time.Now()))
}

// renderCard formats one task as a bordered card
func renderCard(task *models.Task, dark bool, now time.Time) string {
	var content strings.Builder

	title := task.Title
	if task.Completed {
		title = styles.CompletedStyle.Render(title)
	} else {
		title = styles.TitleStyle.Render(title)
	}
	content.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("#%d ", task.ID)))
	content.WriteString(title)
	content.WriteString("\n\n")

	status := "Active"
	if task.Completed {
		status = "Completed"
	}
	fmt.Fprintf(&content, "%s %s  %s %s\n",
		styles.LabelStyle.Render("Status:"),
		styles.ValueStyle.Render(status),
		styles.LabelStyle.Render("Priority:"),
		styles.Priority(task.Priority).Render(task.Priority.Label()),
	)

	due := "none"
	if task.DueDate != nil {
		due = styles.ValueStyle.Render(models.FormatDueDate(task.DueDate))
		if task.IsOverdue(now) {
			due = styles.OverdueStyle.Render(models.FormatDueDate(task.DueDate) + " (overdue)")
		}
	}
	fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("Due:"), due)

	if task.HasDescription() {
		content.WriteString(styles.SectionStyle.Render("Description"))
		content.WriteString("\n")
		content.WriteString(renderMarkdown(task.Description, dark, styles.CardWidth-8))
	}

	return styles.CardStyle.Render(strings.TrimRight(content.String(), "\n"))
}

// renderMarkdown renders a description with glamour, falling back to the
// raw text when rendering fails
func renderMarkdown(md string, dark bool, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.MarkdownStyle(dark)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
