// Package converters provides conversion between database rows and domain models.
//
// All conversions handle:
// - NULL database values (sql.Null* types)
// - Type coercions (int64 from database to int in domain)
// - Enum encodings (priority stored by name, due date as epoch millis)
//
// Example usage:
//
//	task := converters.TaskToModel(row)
//	row := converters.TaskToRow(task)
package converters

import (
	"github.com/thenoetrevino/tick/internal/database"
	"github.com/thenoetrevino/tick/internal/models"
)

// TaskToModel converts a database.TaskRow to models.Task.
//
// Handles NULL values for optional fields:
// - description (sql.NullString) -> ""
// - due_date (sql.NullInt64) -> nil
//
// Unknown priority names decode as MEDIUM.
func TaskToModel(row database.TaskRow) *models.Task {
	return &models.Task{
		ID:          int(row.ID),
		Title:       row.Title,
		Description: database.NullStringToString(row.Description),
		Priority:    models.PriorityFromStored(row.Priority),
		Completed:   row.IsCompleted,
		DueDate:     database.NullMillisToTime(row.DueDate),
		CategoryID:  int(row.CategoryID),
	}
}

// TasksToModels converts a slice of rows, preserving order
func TasksToModels(rows []database.TaskRow) []*models.Task {
	tasks := make([]*models.Task, len(rows))
	for i, row := range rows {
		tasks[i] = TaskToModel(row)
	}
	return tasks
}

// TaskToRow converts models.Task to a database.TaskRow.
// An empty description is stored as NULL; the due date is truncated to milliseconds.
func TaskToRow(task *models.Task) database.TaskRow {
	return database.TaskRow{
		ID:          int64(task.ID),
		Title:       task.Title,
		Description: database.StringToNullString(task.Description),
		Priority:    task.Priority.String(),
		DueDate:     database.TimeToNullMillis(task.DueDate),
		IsCompleted: task.Completed,
		CategoryID:  int64(task.CategoryID),
	}
}
