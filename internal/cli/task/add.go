package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add [title]",
		Aliases: []string{"create"},
		Short:   "Add a new task",
		Long: `Add a new task with specified attributes.

Examples:
  # Simple task (human-readable output)
  tick task add "Buy milk"

  # With details
  tick task add --title="Renew passport" --priority=high --due=2025-06-01 \
    --description="Bring **two** photos"

  # JSON output for agents
  tick task add "Buy milk" --json

  # Quiet mode for bash capture
  TASK_ID=$(tick task add "Buy milk" --quiet)
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Task title (can also be provided as positional argument)")
	cmd.Flags().String("description", "", "Task description (markdown)")
	cmd.Flags().String("priority", "medium", "Task priority: low, medium, high")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	title, _ := cmd.Flags().GetString("title")
	if len(args) > 0 {
		title = args[0]
	}
	description, _ := cmd.Flags().GetString("description")
	priorityStr, _ := cmd.Flags().GetString("priority")
	dueStr, _ := cmd.Flags().GetString("due")

	if strings.TrimSpace(title) == "" {
		return formatter.FailWithSuggestion(cli.ExitUsage, "MISSING_TITLE",
			fmt.Errorf("a task title is required"),
			`Usage: tick task add "title" or tick task add --title="title"`)
	}

	priority, err := cli.ParsePriority(priorityStr)
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_PRIORITY", err)
	}

	due, err := cli.ParseDueDate(dueStr)
	if err != nil {
		return formatter.Fail(cli.ExitDataErr, "INVALID_DUE_DATE", err)
	}

	cliInstance, closeFn, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeFn()

	task, err := cliInstance.App.TaskService.AddTask(ctx, taskservice.AddTaskRequest{
		Title:       strings.TrimSpace(title),
		Description: description,
		Priority:    priority,
		DueDate:     due,
	})
	if err != nil {
		return failTask(formatter, 0, err)
	}

	// Output success
	if formatter.Quiet {
		return formatter.Success(task)
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"task":    task,
		})
	}

	return formatter.Println(fmt.Sprintf("✓ Task %d created: %s (%s)", task.ID, task.Title, task.Priority.Label()))
}

