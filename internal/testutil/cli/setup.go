package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/tick/internal/app"
	"github.com/thenoetrevino/tick/internal/logging"
	"github.com/thenoetrevino/tick/internal/preferences"
	"github.com/thenoetrevino/tick/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	// Preferences live in memory so tests never touch the user's settings
	appInstance := app.New(db, preferences.NewMemory(),
		app.WithLinger(0),
		app.WithLogger(logging.Discard()),
	)

	return db, appInstance
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, db *sql.DB, title string, opts ...testutil.TaskOption) int {
	t.Helper()
	return testutil.CreateTestTask(t, db, title, opts...)
}

// ParseJSON wraps testutil.ParseJSON for CLI tests
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()
	return testutil.ParseJSON(t, output)
}
