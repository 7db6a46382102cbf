package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/VineyardSim_Go/internal/repository"
)

type sessionStateRepository struct {
	db *DB
}

// NewSessionStateRepository creates a SQLite-backed session state repository
func NewSessionStateRepository(db *DB) repository.SessionState {
	return &sessionStateRepository{db: db}
}

func (r *sessionStateRepository) GetValue(ctx context.Context, sessionID, key string) ([]byte, error) {
	var value string
	err := r.db.conn.GetContext(ctx, &value,
		"SELECT value FROM session_state WHERE session_id = ? AND state_key = ?", sessionID, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session value: %w", err)
	}
	return []byte(value), nil
}

func (r *sessionStateRepository) PutValue(ctx context.Context, sessionID, key string, value []byte) error {
	_, err := r.db.conn.ExecContext(ctx,
		"INSERT OR REPLACE INTO session_state (session_id, state_key, value, updated_at) VALUES (?, ?, ?, ?)",
		sessionID, key, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("put session value: %w", err)
	}
	return nil
}

func (r *sessionStateRepository) DeleteValue(ctx context.Context, sessionID, key string) error {
	_, err := r.db.conn.ExecContext(ctx,
		"DELETE FROM session_state WHERE session_id = ? AND state_key = ?", sessionID, key)
	if err != nil {
		return fmt.Errorf("delete session value: %w", err)
	}
	return nil
}
