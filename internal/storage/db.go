// Package storage persists the client book, the command history database and
// the window state file.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection backing the command history.
type DB struct {
	conn *sql.DB
}

// OpenDB opens/creates the history database at the given path and
// initializes the schema. Pass ":memory:" for tests.
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}
	return db, nil
}

func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS command_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ts INTEGER NOT NULL,
		text TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_command_history_ts ON command_history(ts);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// AppendHistory inserts one entered command line.
func (db *DB) AppendHistory(ctx context.Context, text string) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO command_history (ts, text) VALUES (?, ?)`,
		time.Now().Unix(), text,
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

// RecentHistory returns up to limit entries, oldest first.
func (db *DB) RecentHistory(ctx context.Context, limit int) ([]string, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT text FROM (
			SELECT id, text FROM command_history ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entries = append(entries, text)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return entries, nil
}
