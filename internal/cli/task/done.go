package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"toggle"},
		Short:   "Toggle a task between active and completed",
		Args:    cobra.ExactArgs(1),
		RunE:    runDone,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
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

	svc := cliInstance.App.TaskService
	task, err := svc.GetTask(ctx, taskID)
	if err != nil {
		return failTask(formatter, taskID, err)
	}
	if err := svc.ToggleTaskStatus(ctx, task); err != nil {
		return failTask(formatter, taskID, err)
	}

	// Re-read so the output reflects what was stored
	task, err = svc.GetTask(ctx, taskID)
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

	if task.Completed {
		return formatter.Println(fmt.Sprintf("✓ Task %d marked completed", task.ID))
	}
	return formatter.Println(fmt.Sprintf("○ Task %d marked active", task.ID))
}
