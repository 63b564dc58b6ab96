package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"employee-admin/internal/config"
	_ "github.com/mattn/go-sqlite3" // SQLite Driver
	"go.uber.org/zap"
)

const createUsersTableSQL = `
CREATE TABLE IF NOT EXISTS users (
id INTEGER PRIMARY KEY AUTOINCREMENT,
name TEXT NOT NULL,
email TEXT NOT NULL,
phone TEXT,
password_hash TEXT NOT NULL
);
`

const createEmployeesTableSQL = `
CREATE TABLE IF NOT EXISTS employees (
emp_id TEXT PRIMARY KEY,
name TEXT NOT NULL,
image_path TEXT,
phone TEXT,
department TEXT,
salary INTEGER,
gender TEXT,
status TEXT
);
`

// InitSQLite initializes the SQLite database connection and ensures the
// users and employees tables exist. It also creates the directory holding
// the database file if it does not exist.
func InitSQLite(cfg *config.Config, logger *zap.Logger) (*sql.DB, error) {
	logger.Info("Initializing SQLite database...", zap.String("requested_path", cfg.SQLiteDBPath))

	dbDir := filepath.Dir(cfg.SQLiteDBPath)
	if dbDir != "." && dbDir != "/" {
		if _, err := os.Stat(dbDir); os.IsNotExist(err) {
			logger.Info("SQLite database directory does not exist, creating...", zap.String("path", dbDir))
			if err := os.MkdirAll(dbDir, 0755); err != nil {
				logger.Error("Failed to create SQLite database directory", zap.String("path", dbDir), zap.Error(err))
				return nil, fmt.Errorf("failed to create sqlite db directory %s: %w", dbDir, err)
			}
		} else if err != nil {
			logger.Error("Failed to check status of SQLite database directory", zap.String("path", dbDir), zap.Error(err))
			return nil, fmt.Errorf("failed to check status of sqlite db directory %s: %w", dbDir, err)
		}
	}

	// WAL mode is generally good for concurrent reads/writes
	db, err := sql.Open("sqlite3", cfg.SQLiteDBPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		logger.Error("Failed to open SQLite database", zap.String("path", cfg.SQLiteDBPath), zap.Error(err))
		return nil, fmt.Errorf("failed to open sqlite database at %s: %w", cfg.SQLiteDBPath, err)
	}

	// SQLite allows one writer at a time; a small pool is enough.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		logger.Error("Failed to ping SQLite database after open", zap.Error(err))
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	for _, ddl := range []string{createUsersTableSQL, createEmployeesTableSQL} {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			logger.Error("Failed to create table in SQLite", zap.Error(err))
			return nil, fmt.Errorf("failed to create sqlite table: %w", err)
		}
	}
	logger.Debug("SQLite users/employees tables verified/created.")

	logger.Info("SQLite database initialized successfully", zap.String("path", cfg.SQLiteDBPath))
	return db, nil
}
