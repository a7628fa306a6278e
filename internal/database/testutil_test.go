package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), DBFileName)
}

// ============================================================================
// ROW HELPERS
// ============================================================================

func sampleRow(title string) TaskRow {
	return TaskRow{
		Title:    title,
		Priority: "MEDIUM",
	}
}

func nextSnapshot(t *testing.T, ch <-chan []TaskRow) []TaskRow {
	t.Helper()
	select {
	case rows, ok := <-ch:
		if !ok {
			t.Fatal("live query closed unexpectedly")
		}
		return rows
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for live snapshot")
	}
	return nil
}
