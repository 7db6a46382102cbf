package eventlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/osse101/VineyardSim_Go/internal/event"
	"github.com/osse101/VineyardSim_Go/internal/logger"
)

// Service records game events and serves a game's journal
type Service interface {
	// Subscribe registers the journal on every game event type
	Subscribe(bus event.Bus) error

	// GetJournal returns the most recent entries of one game
	GetJournal(ctx context.Context, gameID string, limit int) ([]Entry, error)

	// CleanupOldEvents removes entries older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new journal service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range JournaledTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	gameID := evt.GameID()
	if gameID == "" {
		log.Debug(LogMsgEventWithoutGame, "type", evt.Type)
		return nil
	}

	payload, err := toMap(evt.Payload)
	if err != nil {
		log.Warn(LogMsgFailedToEncode, "type", evt.Type, "error", err)
		return nil
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), gameID, payload, evt.Metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type, "game_id", gameID)
	return nil
}

func (s *service) GetJournal(ctx context.Context, gameID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultJournalLimit
	}
	if limit > MaxJournalLimit {
		limit = MaxJournalLimit
	}
	return s.repo.GetEvents(ctx, Filter{GameID: gameID, Limit: limit})
}

func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}

// toMap flattens a typed payload into the generic form stored as JSON
func toMap(payload interface{}) (map[string]interface{}, error) {
	if m, ok := payload.(map[string]interface{}); ok {
		return m, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("payload is not an object: %w", err)
	}
	return m, nil
}
