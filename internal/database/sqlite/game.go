package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/repository"
)

type gameRepository struct {
	db *DB
}

// NewGameRepository creates a SQLite-backed game repository
func NewGameRepository(db *DB) repository.Game {
	return &gameRepository{db: db}
}

type gameRow struct {
	Version int    `db:"version"`
	State   string `db:"state"`
}

type summaryRow struct {
	ID        string    `db:"game_id"`
	Region    string    `db:"region"`
	Day       int       `db:"day"`
	Money     int       `db:"money"`
	Status    string    `db:"status"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *gameRepository) CreateGame(ctx context.Context, state *domain.GameState) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	_, err = r.db.conn.ExecContext(ctx, `INSERT INTO games
		(game_id, session_id, region, day, money, status, version, state, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		state.ID, state.SessionID, state.Region, state.Day, state.Economy.Money,
		string(state.Status), state.Version, string(stateJSON), state.CreatedAt, state.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	return nil
}

func (r *gameRepository) GetGame(ctx context.Context, id string) (*domain.GameState, error) {
	var row gameRow
	err := r.db.conn.GetContext(ctx, &row, "SELECT version, state FROM games WHERE game_id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrGameNotFound, id)
		}
		return nil, fmt.Errorf("get game: %w", err)
	}

	var state domain.GameState
	if err := json.Unmarshal([]byte(row.State), &state); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	state.Version = row.Version
	return &state, nil
}

func (r *gameRepository) SaveGame(ctx context.Context, state *domain.GameState) error {
	expected := state.Version
	next := *state
	next.Version = expected + 1
	next.UpdatedAt = time.Now().UTC()

	stateJSON, err := json.Marshal(&next)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	res, err := r.db.conn.ExecContext(ctx, `UPDATE games
		SET day = ?, money = ?, status = ?, region = ?, state = ?, version = version + 1, updated_at = ?
		WHERE game_id = ? AND version = ?`,
		next.Day, next.Economy.Money, string(next.Status), next.Region, string(stateJSON),
		next.UpdatedAt, state.ID, expected)
	if err != nil {
		return fmt.Errorf("save game: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	if affected == 0 {
		var count int
		if err := r.db.conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM games WHERE game_id = ?", state.ID); err != nil {
			return fmt.Errorf("save game: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("%w: %s", domain.ErrGameNotFound, state.ID)
		}
		return fmt.Errorf("%w: %s at version %d", domain.ErrVersionConflict, state.ID, expected)
	}

	state.Version = next.Version
	state.UpdatedAt = next.UpdatedAt
	return nil
}

func (r *gameRepository) ListGames(ctx context.Context, sessionID string) ([]domain.GameSummary, error) {
	var rows []summaryRow
	err := r.db.conn.SelectContext(ctx, &rows,
		`SELECT game_id, region, day, money, status, updated_at
		FROM games WHERE session_id = ? ORDER BY updated_at DESC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	summaries := make([]domain.GameSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, domain.GameSummary{
			ID:        row.ID,
			Region:    row.Region,
			Day:       row.Day,
			Money:     row.Money,
			Status:    domain.GameStatus(row.Status),
			UpdatedAt: row.UpdatedAt,
		})
	}
	return summaries, nil
}

func (r *gameRepository) DeleteGame(ctx context.Context, id string) error {
	res, err := r.db.conn.ExecContext(ctx, "DELETE FROM games WHERE game_id = ?", id)
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrGameNotFound, id)
	}
	return nil
}
