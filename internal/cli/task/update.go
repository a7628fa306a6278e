package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Long: `Update one or more fields of a task. Only the flags you pass change.

Examples:
  tick task update 3 --title="Buy oat milk"
  tick task update 3 --priority=high --due=2025-06-01
  tick task update 3 --due=none          # clear the due date
  tick task update 3 --description=""    # clear the description
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (markdown)")
	cmd.Flags().String("priority", "", "New priority: low, medium, high")
	cmd.Flags().String("due", "", "New due date (YYYY-MM-DD, or 'none' to clear)")
	cmd.Flags().Bool("completed", false, "Mark completed (or --completed=false to reopen)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	taskID, err := parseTaskArg(formatter, args)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("title") && !flags.Changed("description") && !flags.Changed("priority") &&
		!flags.Changed("due") && !flags.Changed("completed") {
		return formatter.FailWithSuggestion(cli.ExitUsage, "NO_UPDATES",
			fmt.Errorf("at least one field must be specified"),
			"Pass --title, --description, --priority, --due or --completed")
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

	if flags.Changed("title") {
		title, _ := flags.GetString("title")
		task.Title = strings.TrimSpace(title)
	}
	if flags.Changed("description") {
		description, _ := flags.GetString("description")
		if strings.TrimSpace(description) == "" {
			description = ""
		}
		task.Description = description
	}
	if flags.Changed("priority") {
		priorityStr, _ := flags.GetString("priority")
		priority, err := cli.ParsePriority(priorityStr)
		if err != nil {
			return formatter.Fail(cli.ExitValidation, "INVALID_PRIORITY", err)
		}
		task.Priority = priority
	}
	if flags.Changed("due") {
		dueStr, _ := flags.GetString("due")
		due, err := cli.ParseDueDate(dueStr)
		if err != nil {
			return formatter.Fail(cli.ExitDataErr, "INVALID_DUE_DATE", err)
		}
		task.DueDate = due
	}
	if flags.Changed("completed") {
		task.Completed, _ = flags.GetBool("completed")
	}

	if err := cliInstance.App.TaskService.UpdateTask(ctx, task); err != nil {
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

	return formatter.Println(fmt.Sprintf("✓ Task %d updated", task.ID))
}
