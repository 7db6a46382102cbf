package repository

import (
	"context"

	"github.com/osse101/VineyardSim_Go/internal/domain"
)

// Game defines the interface for vineyard game persistence
type Game interface {
	CreateGame(ctx context.Context, state *domain.GameState) error

	// GetGame returns domain.ErrGameNotFound when no game has the id
	GetGame(ctx context.Context, id string) (*domain.GameState, error)

	// SaveGame stores state only if the stored version still equals state.Version.
	// On success state.Version is incremented; a stale write returns domain.ErrVersionConflict.
	SaveGame(ctx context.Context, state *domain.GameState) error

	ListGames(ctx context.Context, sessionID string) ([]domain.GameSummary, error)
	DeleteGame(ctx context.Context, id string) error
}
