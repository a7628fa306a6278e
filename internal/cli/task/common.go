package task

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
)

// openCLI resolves the CLI for cmd, reporting initialization failures
func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, nil, formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	closeFn := func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}
	return cliInstance, closeFn, nil
}

// failTask reports a service error with the matching exit code
func failTask(formatter *cli.OutputFormatter, taskID int, err error) error {
	switch {
	case errors.Is(err, taskservice.ErrTaskNotFound):
		return formatter.FailWithSuggestion(cli.ExitNotFound, "TASK_NOT_FOUND",
			fmt.Errorf("task %d: %w", taskID, err),
			"Run 'tick task list' to see task IDs")
	case errors.Is(err, taskservice.ErrEmptyTitle), errors.Is(err, taskservice.ErrTitleTooLong):
		return formatter.Fail(cli.ExitValidation, "VALIDATION_ERROR", err)
	default:
		return formatter.Fail(cli.ExitError, "STORAGE_ERROR", err)
	}
}

// parseTaskArg parses the positional task ID, reporting usage errors
func parseTaskArg(formatter *cli.OutputFormatter, args []string) (int, error) {
	taskID, err := cli.ParseTaskID(args[0])
	if err != nil {
		return 0, formatter.FailWithSuggestion(cli.ExitUsage, "INVALID_TASK_ID", err,
			"Usage: tick task <command> <id>")
	}
	return taskID, nil
}

