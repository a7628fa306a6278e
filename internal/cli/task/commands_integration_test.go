package task

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/testutil"
	clitest "github.com/thenoetrevino/tick/internal/testutil/cli"
)

func dueOn(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestListTasks(t *testing.T) {
	db, app := clitest.SetupCLITest(t)

	clitest.CreateTestTask(t, db, "Buy milk", testutil.WithDueDate(dueOn(2025, 3, 9)), testutil.WithPriority("LOW"))
	clitest.CreateTestTask(t, db, "Groceries", testutil.WithDescription("Milk and eggs"), testutil.Completed(),
		testutil.WithPriority("HIGH"))
	clitest.CreateTestTask(t, db, "Call plumber", testutil.WithDueDate(dueOn(2025, 1, 2)))

	t.Run("JSON output sorted by due date", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"list", "--json"})
		require.NoError(t, err)

		var result struct {
			Success   bool           `json:"success"`
			Tasks     []*models.Task `json:"tasks"`
			Analytics struct {
				Total     int     `json:"total"`
				Completed int     `json:"completed"`
				Progress  float64 `json:"progress"`
			} `json:"analytics"`
			Sort string `json:"sort"`
		}
		require.NoError(t, json.Unmarshal([]byte(output), &result))

		assert.True(t, result.Success)
		require.Len(t, result.Tasks, 3)
		assert.Equal(t, "Call plumber", result.Tasks[0].Title)
		assert.Equal(t, "Buy milk", result.Tasks[1].Title)
		assert.Equal(t, "Groceries", result.Tasks[2].Title, "undated tasks sort last")
		assert.Equal(t, 3, result.Analytics.Total)
		assert.Equal(t, 1, result.Analytics.Completed)
		assert.InDelta(t, 1.0/3.0, result.Analytics.Progress, 0.0001)
		assert.Equal(t, "DATE_ASC", result.Sort)
	})

	t.Run("search matches title or description", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"list", "--search", "MILK", "--sort", "title", "--json"})
		require.NoError(t, err)

		result := clitest.ParseJSON(t, output)
		tasks := result["tasks"].([]interface{})
		require.Len(t, tasks, 2)
		assert.Equal(t, "Buy milk", tasks[0].(map[string]interface{})["title"])
		assert.Equal(t, "Groceries", tasks[1].(map[string]interface{})["title"])

		analytics := result["analytics"].(map[string]interface{})
		assert.Equal(t, float64(2), analytics["total"])
		assert.Equal(t, float64(1), analytics["completed"])
	})

	t.Run("quiet prints one ID per line", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"list", "--sort", "priority", "--quiet"})
		require.NoError(t, err)

		lines := strings.Fields(output)
		require.Len(t, lines, 3)
		for _, line := range lines {
			_, err := strconv.Atoi(line)
			assert.NoError(t, err)
		}
	})

	t.Run("human output shows progress", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"list"})
		require.NoError(t, err)
		assert.Contains(t, output, "Buy milk")
		assert.Contains(t, output, "[x]")
		assert.Contains(t, output, "1 of 3 completed (33%)")
	})

	t.Run("no match", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"list", "--search", "zebra"})
		require.NoError(t, err)
		assert.Contains(t, output, `No tasks match "zebra"`)
	})

	t.Run("invalid sort", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"list", "--sort", "random"})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}

func TestListTasks_Empty(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"list", "--json"})
	require.NoError(t, err)

	result := clitest.ParseJSON(t, output)
	assert.Empty(t, result["tasks"])
	analytics := result["analytics"].(map[string]interface{})
	assert.Equal(t, float64(0), analytics["progress"])
}

func TestListTasks_StorageFailure(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	_, err := db.ExecContext(context.Background(), `DROP TABLE todos`)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"list"})
		done <- err
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Equal(t, cli.ExitError, cli.ExitCode(err))
	case <-time.After(5 * time.Second):
		t.Fatal("list did not return after the query failed")
	}
}

func TestShowTask(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	taskID := clitest.CreateTestTask(t, db, "Renew passport",
		testutil.WithDescription("Bring two photos"), testutil.WithPriority("HIGH"))

	t.Run("JSON output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"show", strconv.Itoa(taskID), "--json"})
		require.NoError(t, err)

		result := clitest.ParseJSON(t, output)
		task := result["task"].(map[string]interface{})
		assert.Equal(t, float64(taskID), task["id"])
		assert.Equal(t, "Renew passport", task["title"])
		assert.Equal(t, "Bring two photos", task["description"])
		assert.Equal(t, "HIGH", task["priority"])
		assert.Nil(t, task["due_date"])
	})

	t.Run("human card", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"show", strconv.Itoa(taskID)})
		require.NoError(t, err)
		assert.Contains(t, output, "Renew passport")
		assert.Contains(t, output, "High")
		assert.Contains(t, output, "photos")
	})

	t.Run("not found", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"show", "9999", "--json"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
		assert.ErrorIs(t, err, models.ErrTaskNotFound)

		result := clitest.ParseJSON(t, output)
		assert.Equal(t, "TASK_NOT_FOUND", result["error"].(map[string]interface{})["code"])
	})

	t.Run("invalid ID", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"show", "abc"})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}

func TestUpdateTask(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	ctx := context.Background()

	t.Run("changes only the given fields", func(t *testing.T) {
		taskID := clitest.CreateTestTask(t, db, "Walk dog",
			testutil.WithDescription("around the park"), testutil.WithPriority("LOW"))

		_, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{
			"update", strconv.Itoa(taskID), "--title", "  Walk the dog ", "--due", "2025-01-31",
		})
		require.NoError(t, err)

		task, err := app.TaskService.GetTask(ctx, taskID)
		require.NoError(t, err)
		assert.Equal(t, "Walk the dog", task.Title)
		assert.Equal(t, "around the park", task.Description)
		assert.Equal(t, models.PriorityLow, task.Priority)
		assert.Equal(t, "Jan 31, 2025", models.FormatDueDate(task.DueDate))
	})

	t.Run("clears description and due date", func(t *testing.T) {
		taskID := clitest.CreateTestTask(t, db, "Dated",
			testutil.WithDescription("notes"), testutil.WithDueDate(dueOn(2025, 2, 1)))

		_, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{
			"update", strconv.Itoa(taskID), "--description", " ", "--due", "none", "--completed",
		})
		require.NoError(t, err)

		task, err := app.TaskService.GetTask(ctx, taskID)
		require.NoError(t, err)
		assert.Empty(t, task.Description)
		assert.Nil(t, task.DueDate)
		assert.True(t, task.Completed)
	})

	t.Run("rejects blank title", func(t *testing.T) {
		taskID := clitest.CreateTestTask(t, db, "Keep me")

		_, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"update", strconv.Itoa(taskID), "--title", "  "})
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

		task, err := app.TaskService.GetTask(ctx, taskID)
		require.NoError(t, err)
		assert.Equal(t, "Keep me", task.Title)
	})

	t.Run("requires a flag", func(t *testing.T) {
		taskID := clitest.CreateTestTask(t, db, "Untouched")
		_, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"update", strconv.Itoa(taskID)})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"update", "9999", "--title", "x"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}

func TestDeleteTask(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	ctx := context.Background()

	t.Run("force deletes", func(t *testing.T) {
		taskID := clitest.CreateTestTask(t, db, "Short lived")

		output, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"delete", strconv.Itoa(taskID), "--force"})
		require.NoError(t, err)
		assert.Contains(t, output, fmt.Sprintf("Task %d deleted", taskID))

		_, err = app.TaskService.GetTask(ctx, taskID)
		assert.ErrorIs(t, err, models.ErrTaskNotFound)
	})

	t.Run("declined confirmation keeps the task", func(t *testing.T) {
		taskID := clitest.CreateTestTask(t, db, "Survivor")

		output, err := clitest.ExecuteCLICommandWithInput(t, app, TaskCmd(), []string{"delete", strconv.Itoa(taskID)}, "n\n")
		require.NoError(t, err)
		assert.Contains(t, output, "Cancelled")

		_, err = app.TaskService.GetTask(ctx, taskID)
		assert.NoError(t, err)
	})

	t.Run("confirmed with yes", func(t *testing.T) {
		taskID := clitest.CreateTestTask(t, db, "Goner")

		_, err := clitest.ExecuteCLICommandWithInput(t, app, TaskCmd(), []string{"delete", strconv.Itoa(taskID)}, "yes\n")
		require.NoError(t, err)

		_, err = app.TaskService.GetTask(ctx, taskID)
		assert.ErrorIs(t, err, models.ErrTaskNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"delete", "9999", "--force"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}

func TestDoneTask(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	taskID := clitest.CreateTestTask(t, db, "Toggle me")

	output, err := clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"done", strconv.Itoa(taskID)})
	require.NoError(t, err)
	assert.Contains(t, output, fmt.Sprintf("Task %d marked completed", taskID))

	output, err = clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"done", strconv.Itoa(taskID), "--json"})
	require.NoError(t, err)
	result := clitest.ParseJSON(t, output)
	assert.Equal(t, false, result["task"].(map[string]interface{})["completed"])

	_, err = clitest.ExecuteCLICommand(t, app, TaskCmd(), []string{"done", "9999"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}
