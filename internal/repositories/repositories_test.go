package repositories

import (
	"database/sql"
	"path/filepath"
	"testing"

	"employee-admin/internal/config"
	"employee-admin/internal/database"
	"go.uber.org/zap"
)

// newTestDB opens a fresh SQLite database in a temp directory with the
// application schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := &config.Config{
		SQLiteDBPath: filepath.Join(t.TempDir(), "test.db"),
	}
	db, err := database.InitSQLite(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("init sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
