package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create todos table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			priority TEXT NOT NULL DEFAULT 'MEDIUM',
			due_date INTEGER,
			is_completed INTEGER NOT NULL DEFAULT 0,
			category_id INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return err
	}

	// Create index for the due date sort
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_todos_due_date
		ON todos(due_date)
	`)
	return err
}
