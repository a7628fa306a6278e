package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tick/internal/events"
)

// ErrNotFound is returned when no row matches the requested id
var ErrNotFound = errors.New("record not found")

// TaskRow is one row of the todos table
type TaskRow struct {
	ID          int64
	Title       string
	Description sql.NullString
	Priority    string
	DueDate     sql.NullInt64 // epoch millis
	IsCompleted bool
	CategoryID  int64
}

const taskColumns = `id, title, description, priority, due_date, is_completed, category_id`

// TaskStore handles pure data access for task rows.
// No business logic, no validation - just database operations and the live list.
type TaskStore struct {
	db     *sql.DB
	feed   *events.Feed[[]TaskRow]
	logger *slog.Logger
}

// NewTaskStore creates a task store over an opened, migrated database
func NewTaskStore(db *sql.DB, logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}
	s := &TaskStore{db: db, logger: logger}
	s.feed = events.NewFeed[[]TaskRow](events.OnActive(func() {
		if err := s.Refresh(context.Background()); err != nil {
			s.logger.Error("failed to load live task list", "error", err)
		}
	}))
	return s
}

// ============================================================================
// READS
// ============================================================================

// List returns every row, newest first
func (s *TaskStore) List(ctx context.Context) ([]TaskRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM todos ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []TaskRow{}
	for rows.Next() {
		var row TaskRow
		if err := scanTask(rows, &row); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetByID returns the row with the given id, or ErrNotFound
func (s *TaskStore) GetByID(ctx context.Context, id int64) (TaskRow, error) {
	var row TaskRow
	err := scanTask(s.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM todos WHERE id = ?`, id,
	), &row)
	if errors.Is(err, sql.ErrNoRows) {
		return TaskRow{}, ErrNotFound
	}
	if err != nil {
		return TaskRow{}, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return row, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(sc scanner, row *TaskRow) error {
	return sc.Scan(
		&row.ID, &row.Title, &row.Description, &row.Priority,
		&row.DueDate, &row.IsCompleted, &row.CategoryID,
	)
}

// ============================================================================
// WRITES
// ============================================================================

// Insert stores a row and returns its id. A zero id lets SQLite assign one;
// a non-zero id replaces any existing row with that id.
func (s *TaskStore) Insert(ctx context.Context, row TaskRow) (int64, error) {
	var (
		result sql.Result
		err    error
	)
	if row.ID == 0 {
		result, err = s.db.ExecContext(ctx,
			`INSERT INTO todos (title, description, priority, due_date, is_completed, category_id)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			row.Title, row.Description, row.Priority, row.DueDate, row.IsCompleted, row.CategoryID,
		)
	} else {
		result, err = s.db.ExecContext(ctx,
			`INSERT OR REPLACE INTO todos (`+taskColumns+`)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			row.ID, row.Title, row.Description, row.Priority, row.DueDate, row.IsCompleted, row.CategoryID,
		)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert task: %w", err)
	}

	id := row.ID
	if id == 0 {
		id, err = result.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("failed to read inserted id: %w", err)
		}
	}

	s.changed(ctx)
	return id, nil
}

// Update replaces every column of an existing row
func (s *TaskStore) Update(ctx context.Context, row TaskRow) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE todos
		 SET title = ?, description = ?, priority = ?, due_date = ?, is_completed = ?, category_id = ?
		 WHERE id = ?`,
		row.Title, row.Description, row.Priority, row.DueDate, row.IsCompleted, row.CategoryID, row.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task %d: %w", row.ID, err)
	}
	s.changed(ctx)
	return nil
}

// Delete removes a row. Deleting a missing row is not an error.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	s.changed(ctx)
	return nil
}

// SetCompleted updates only the completion flag
func (s *TaskStore) SetCompleted(ctx context.Context, id int64, completed bool) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE todos SET is_completed = ? WHERE id = ?`,
		completed, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set completion of task %d: %w", id, err)
	}
	s.changed(ctx)
	return nil
}

// ============================================================================
// LIVE QUERY
// ============================================================================

// Subscribe returns a live view of all rows, newest first. A fresh snapshot
// is delivered after every write made through this store and on Refresh.
func (s *TaskStore) Subscribe() *events.Subscription[[]TaskRow] {
	return s.feed.Subscribe()
}

// Refresh re-queries the table and publishes the result to live subscribers.
// It is a no-op while nobody is observing.
func (s *TaskStore) Refresh(ctx context.Context) error {
	if !s.feed.Active() {
		return nil
	}
	rows, err := s.List(ctx)
	if err != nil {
		return err
	}
	s.feed.Publish(rows)
	return nil
}

func (s *TaskStore) changed(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Error("failed to refresh live task list", "error", err)
	}
}
