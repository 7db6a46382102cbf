package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/repository"
)

type gameRepository struct {
	db *pgxpool.Pool
}

// NewGameRepository creates a new PostgreSQL game repository
func NewGameRepository(db *pgxpool.Pool) repository.Game {
	return &gameRepository{db: db}
}

func (r *gameRepository) CreateGame(ctx context.Context, state *domain.GameState) error {
	id, err := parseGameUUID(state.ID)
	if err != nil {
		return err
	}

	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalState, err)
	}

	query := `
		INSERT INTO games (game_id, session_id, region, day, money, status, version, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = r.db.Exec(ctx, query,
		id, state.SessionID, state.Region, state.Day, state.Economy.Money,
		string(state.Status), state.Version, stateJSON, state.CreatedAt, state.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %s", ErrMsgGameAlreadyExists, state.ID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertGame, err)
	}
	return nil
}

func (r *gameRepository) GetGame(ctx context.Context, gameID string) (*domain.GameState, error) {
	id, err := uuid.Parse(gameID)
	if err != nil {
		// a malformed id can never match a row
		return nil, fmt.Errorf("%w: %s", domain.ErrGameNotFound, gameID)
	}

	var (
		version   int
		stateJSON []byte
	)
	err = r.db.QueryRow(ctx, `SELECT version, state FROM games WHERE game_id = $1`, id).
		Scan(&version, &stateJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrGameNotFound, gameID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetGame, err)
	}

	var state domain.GameState
	if err := json.Unmarshal(stateJSON, &state); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalState, err)
	}
	state.Version = version
	return &state, nil
}

func (r *gameRepository) SaveGame(ctx context.Context, state *domain.GameState) error {
	id, err := parseGameUUID(state.ID)
	if err != nil {
		return err
	}

	expected := state.Version
	next := *state
	next.Version = expected + 1
	next.UpdatedAt = time.Now().UTC()

	stateJSON, err := json.Marshal(&next)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalState, err)
	}

	query := `
		UPDATE games
		SET day = $2, money = $3, status = $4, region = $5, state = $6,
		    version = version + 1, updated_at = $7
		WHERE game_id = $1 AND version = $8
	`
	tag, err := r.db.Exec(ctx, query,
		id, next.Day, next.Economy.Money, string(next.Status), next.Region,
		stateJSON, next.UpdatedAt, expected)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveGame, err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM games WHERE game_id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToSaveGame, err)
		}
		if !exists {
			return fmt.Errorf("%w: %s", domain.ErrGameNotFound, state.ID)
		}
		return fmt.Errorf("%w: %s at version %d", domain.ErrVersionConflict, state.ID, expected)
	}

	state.Version = next.Version
	state.UpdatedAt = next.UpdatedAt
	return nil
}

func (r *gameRepository) ListGames(ctx context.Context, sessionID string) ([]domain.GameSummary, error) {
	query := `
		SELECT game_id, region, day, money, status, updated_at
		FROM games
		WHERE session_id = $1
		ORDER BY updated_at DESC
	`
	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListGames, err)
	}
	defer rows.Close()

	summaries := []domain.GameSummary{}
	for rows.Next() {
		var (
			id     uuid.UUID
			status string
			s      domain.GameSummary
		)
		if err := rows.Scan(&id, &s.Region, &s.Day, &s.Money, &status, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListGames, err)
		}
		s.ID = id.String()
		s.Status = domain.GameStatus(status)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListGames, err)
	}
	return summaries, nil
}

func (r *gameRepository) DeleteGame(ctx context.Context, gameID string) error {
	id, err := uuid.Parse(gameID)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrGameNotFound, gameID)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM games WHERE game_id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteGame, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrGameNotFound, gameID)
	}
	return nil
}
