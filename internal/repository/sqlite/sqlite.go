// Package sqlite implements the template repository on SQLite.
//
// modernc.org/sqlite is a pure Go translation of SQLite — no CGo, no C
// toolchain, works everywhere Go works. The backend is opt-in via DB_PATH;
// without it the server keeps templates in process memory only.
package sqlite

import (
	"database/sql"
	"fmt"

	// Registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and provides the repository methods.
type DB struct {
	conn *sql.DB
}

// New opens the database at dbPath (":memory:" for tests) and runs
// migrations. WAL mode keeps reads from blocking behind writes.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool. Callers defer this right after New.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the schema. CREATE TABLE IF NOT EXISTS keeps it safe to
// run on every start.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS templates (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			name         TEXT NOT NULL,
			content      TEXT NOT NULL DEFAULT '',
			sections     TEXT NOT NULL DEFAULT '[]',
			user_id      TEXT NOT NULL DEFAULT '',
			is_public    INTEGER NOT NULL DEFAULT 0,
			tags         TEXT NOT NULL DEFAULT '[]',
			likes        INTEGER NOT NULL DEFAULT 0,
			shareable_id TEXT NOT NULL UNIQUE,
			created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_templates_user_id ON templates(user_id);
		CREATE INDEX IF NOT EXISTS idx_templates_is_public ON templates(is_public);
	`)
	if err != nil {
		return fmt.Errorf("creating templates table: %w", err)
	}
	return nil
}
