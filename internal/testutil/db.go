package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/tick/internal/database"
)

// SetupTestDB creates a migrated in-memory database closed at cleanup
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})
	return db
}

// TaskOption adjusts the row written by CreateTestTask
type TaskOption func(*database.TaskRow)

// WithDescription sets the task description
func WithDescription(description string) TaskOption {
	return func(r *database.TaskRow) {
		r.Description = sql.NullString{String: description, Valid: description != ""}
	}
}

// WithPriority sets the stored priority name (LOW, MEDIUM, HIGH)
func WithPriority(priority string) TaskOption {
	return func(r *database.TaskRow) { r.Priority = priority }
}

// WithDueDate sets the due date
func WithDueDate(due time.Time) TaskOption {
	return func(r *database.TaskRow) {
		r.DueDate = sql.NullInt64{Int64: due.UnixMilli(), Valid: true}
	}
}

// Completed marks the task completed
func Completed() TaskOption {
	return func(r *database.TaskRow) { r.IsCompleted = true }
}

// CreateTestTask inserts a task row directly and returns its ID
func CreateTestTask(t *testing.T, db *sql.DB, title string, opts ...TaskOption) int {
	t.Helper()
	row := database.TaskRow{Title: title, Priority: "MEDIUM"}
	for _, opt := range opts {
		opt(&row)
	}

	id, err := database.NewTaskStore(db, nil).Insert(context.Background(), row)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return int(id)
}
