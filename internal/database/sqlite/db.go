// Package sqlite provides single-file game storage for local play and the CLI.
package sqlite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
// Use ":memory:" for a throwaway store.
func Open(path string) (*DB, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	if path == MemoryPath {
		dsn = MemoryPath + "?_pragma=foreign_keys(1)"
	}

	conn, err := sqlx.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// single connection: one writer, and an in-memory database lives only as long as its connection
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	slog.Default().Info(LogMsgOpened, "path", path)
	return db, nil
}

// Ping checks the connection is usable
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Close closes the database connection.
func (db *DB) Close() {
	if err := db.conn.Close(); err != nil {
		slog.Default().Warn(LogMsgCloseFailed, "error", err)
	}
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		game_id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		region TEXT NOT NULL,
		day INTEGER NOT NULL,
		money INTEGER NOT NULL,
		status TEXT NOT NULL,
		version INTEGER NOT NULL,
		state TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS session_state (
		session_id TEXT NOT NULL,
		state_key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		PRIMARY KEY (session_id, state_key)
	);

	CREATE TABLE IF NOT EXISTS game_journal (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL REFERENCES games(game_id) ON DELETE CASCADE,
		event_type TEXT NOT NULL,
		payload TEXT NOT NULL,
		metadata TEXT,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_games_session ON games(session_id, updated_at);
	CREATE INDEX IF NOT EXISTS idx_game_journal_game ON game_journal(game_id, created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}
