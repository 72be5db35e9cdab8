package database

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/diegoclair/slack-standup-bot/migrator/sqlite"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	// Create in-memory SQLite database
	sqlDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "Failed to create test database")

	// Each pooled connection to :memory: would get its own database
	sqlDB.SetMaxOpenConns(1)

	// Run migrations to create tables
	err = sqlite.Migrate(sqlDB)
	require.NoError(t, err, "Failed to run migrations on test database")

	return &DB{conn: sqlDB}
}

// SetupTestFileDB creates a file-backed SQLite database so multiple
// connections can race against the same data.
func SetupTestFileDB(t *testing.T) *DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "standup_test.db")

	db, err := New(path)
	require.NoError(t, err, "Failed to create test database")

	err = sqlite.Migrate(db.DB())
	require.NoError(t, err, "Failed to run migrations on test database")

	return db
}

// CleanupTestDB closes the test database
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	err := db.Close()
	require.NoError(t, err, "Failed to close test database")
}
