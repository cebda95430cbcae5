// ABOUTME: SQLite-backed key-value gateway, the CLI's stand-in for localStorage.
// ABOUTME: One kv table, whole-store values, upsert on write.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteGateway persists key-value pairs in a single-table SQLite database.
type SQLiteGateway struct {
	db *sql.DB
}

// DefaultDBPath returns the default filesystem location for the haven database.
func DefaultDBPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "haven", "haven.db"), nil
}

// ResolveDBPath returns the database path from HAVEN_DB_PATH if set,
// otherwise DefaultDBPath.
func ResolveDBPath() (string, error) {
	if p := os.Getenv("HAVEN_DB_PATH"); p != "" {
		return p, nil
	}
	return DefaultDBPath()
}

// OpenSQLiteGateway opens (or creates) the database at dbPath and ensures
// the kv table exists.
func OpenSQLiteGateway(dbPath string) (*SQLiteGateway, error) {
	if dbPath == "" {
		return nil, errors.New("open gateway: empty db path")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("open gateway: create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("open gateway: sql open: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open gateway: ping: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open gateway: create table: %w", err)
	}

	return &SQLiteGateway{db: db}, nil
}

// Get returns the value stored under key.
func (g *SQLiteGateway) Get(key string) (string, bool, error) {
	var value string
	err := g.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("gateway get %q: %w", key, err)
	}
	return value, true, nil
}

// Set writes the value under key, replacing any previous value.
func (g *SQLiteGateway) Set(key, value string) error {
	_, err := g.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("gateway set %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (g *SQLiteGateway) Close() error {
	return g.db.Close()
}
