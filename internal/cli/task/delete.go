package task

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Long:    "Delete a task by ID (requires confirmation unless --force, --quiet or --json).",
		Args:    cobra.ExactArgs(1),
		RunE:    runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	force, _ := cmd.Flags().GetBool("force")

	taskID, err := parseTaskArg(formatter, args)
	if err != nil {
		return err
	}

	cliInstance, closeFn, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeFn()

	// Get task details for confirmation
	task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return failTask(formatter, taskID, err)
	}

	// Ask for confirmation unless force or a machine-readable mode
	if !force && !formatter.Quiet && !formatter.JSON {
		fmt.Fprintf(cmd.OutOrStdout(), "Delete task #%d: '%s'? (y/N): ", task.ID, task.Title)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			return formatter.Println("Cancelled")
		}
	}

	if err := cliInstance.App.TaskService.DeleteTask(ctx, task); err != nil {
		return failTask(formatter, taskID, err)
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"task_id": taskID,
		})
	}

	return formatter.Println(fmt.Sprintf("✓ Task %d deleted", taskID))
}
