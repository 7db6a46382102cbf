package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/VineyardSim_Go/internal/repository"
)

type sessionStateRepository struct {
	db *pgxpool.Pool
}

// NewSessionStateRepository creates a new PostgreSQL session state repository
func NewSessionStateRepository(db *pgxpool.Pool) repository.SessionState {
	return &sessionStateRepository{db: db}
}

func (r *sessionStateRepository) GetValue(ctx context.Context, sessionID, key string) ([]byte, error) {
	var value string
	err := r.db.QueryRow(ctx,
		`SELECT value FROM session_state WHERE session_id = $1 AND state_key = $2`,
		sessionID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSessionValue, err)
	}
	return []byte(value), nil
}

func (r *sessionStateRepository) PutValue(ctx context.Context, sessionID, key string, value []byte) error {
	query := `
		INSERT INTO session_state (session_id, state_key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (session_id, state_key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, sessionID, key, string(value)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToPutSessionValue, err)
	}
	return nil
}

func (r *sessionStateRepository) DeleteValue(ctx context.Context, sessionID, key string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM session_state WHERE session_id = $1 AND state_key = $2`,
		sessionID, key)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteSessionValue, err)
	}
	return nil
}
