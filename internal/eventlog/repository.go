package eventlog

import (
	"context"
	"time"
)

// Entry is one persisted journal line of a game
type Entry struct {
	ID        int64                  `json:"id"`
	GameID    string                 `json:"game_id"`
	EventType string                 `json:"event_type"`
	Payload   map[string]interface{} `json:"payload"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// Filter narrows journal queries. Zero values match everything.
type Filter struct {
	GameID    string
	EventType string
	Since     *time.Time
	Limit     int
}

// Repository defines the interface for journal storage
type Repository interface {
	LogEvent(ctx context.Context, eventType, gameID string, payload, metadata map[string]interface{}) error

	// GetEvents returns matching entries newest first
	GetEvents(ctx context.Context, filter Filter) ([]Entry, error)

	// CleanupOldEvents removes entries older than the given number of days
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}
