package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/VineyardSim_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// GameID returns the game the event belongs to, if tagged
func (e Event) GameID() string {
	if e.Metadata == nil {
		return ""
	}
	id, _ := e.Metadata[MetadataKeyGameID].(string)
	return id
}

// Vineyard event types
const (
	GameCreated        Type = "vineyard.game.created"
	DayAdvanced        Type = "vineyard.day.advanced"
	NotificationRaised Type = "vineyard.notification"
	WineProduced       Type = "vineyard.wine.produced"
	WineSold           Type = "vineyard.wine.sold"
	GameEnded          Type = "vineyard.game.ended"
)

// GameCreatedPayloadV1 fires when a new game starts
type GameCreatedPayloadV1 struct {
	GameID      string `json:"game_id"`
	SessionID   string `json:"session_id"`
	Region      string `json:"region"`
	ClimateCode string `json:"climate_code"`
	Seed        int64  `json:"seed"`
	Timestamp   int64  `json:"timestamp"`
}

// DayAdvancedPayloadV1 summarises a completed day
type DayAdvancedPayloadV1 struct {
	GameID    string `json:"game_id"`
	Day       int    `json:"day"`
	Season    string `json:"season"`
	Weather   string `json:"weather"`
	Money     int    `json:"money"`
	Timestamp int64  `json:"timestamp"`
}

// NotificationPayloadV1 carries one player-facing toast
type NotificationPayloadV1 struct {
	GameID       string              `json:"game_id"`
	Notification domain.Notification `json:"notification"`
}

// WinePayloadV1 fires when a wine is bottled or sold
type WinePayloadV1 struct {
	GameID    string `json:"game_id"`
	WineID    string `json:"wine_id"`
	Name      string `json:"name"`
	Quality   int    `json:"quality"`
	Value     int    `json:"value"`
	Special   bool   `json:"special"`
	Timestamp int64  `json:"timestamp"`
}

// GameEndedPayloadV1 fires once when a game is lost or won
type GameEndedPayloadV1 struct {
	GameID    string            `json:"game_id"`
	Status    domain.GameStatus `json:"status"`
	Reason    string            `json:"reason"`
	Day       int               `json:"day"`
	Money     int               `json:"money"`
	Timestamp int64             `json:"timestamp"`
}

func gameMetadata(gameID string) map[string]interface{} {
	return map[string]interface{}{MetadataKeyGameID: gameID}
}

// NewGameCreatedEvent creates a game created event
func NewGameCreatedEvent(state *domain.GameState) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GameCreated,
		Payload: GameCreatedPayloadV1{
			GameID:      state.ID,
			SessionID:   state.SessionID,
			Region:      state.Region,
			ClimateCode: state.ClimateCode,
			Seed:        state.Seed,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: gameMetadata(state.ID),
	}
}

// NewDayAdvancedEvent creates a day advanced event
func NewDayAdvancedEvent(state *domain.GameState) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DayAdvanced,
		Payload: DayAdvancedPayloadV1{
			GameID:    state.ID,
			Day:       state.Day,
			Season:    state.Season().String(),
			Weather:   state.Weather,
			Money:     state.Economy.Money,
			Timestamp: time.Now().Unix(),
		},
		Metadata: gameMetadata(state.ID),
	}
}

// NewNotificationEvent wraps a notification for subscribers
func NewNotificationEvent(gameID string, n domain.Notification) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     NotificationRaised,
		Payload:  NotificationPayloadV1{GameID: gameID, Notification: n},
		Metadata: gameMetadata(gameID),
	}
}

// NewWineEvent creates a wine produced or sold event
func NewWineEvent(eventType Type, gameID string, wine domain.Wine) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: WinePayloadV1{
			GameID:    gameID,
			WineID:    wine.ID,
			Name:      wine.Name,
			Quality:   wine.Quality,
			Value:     wine.Value,
			Special:   wine.Special,
			Timestamp: time.Now().Unix(),
		},
		Metadata: gameMetadata(gameID),
	}
}

// NewGameEndedEvent creates a game ended event
func NewGameEndedEvent(state *domain.GameState) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GameEnded,
		Payload: GameEndedPayloadV1{
			GameID:    state.ID,
			Status:    state.Status,
			Reason:    state.EndReason,
			Day:       state.Day,
			Money:     state.Economy.Money,
			Timestamp: time.Now().Unix(),
		},
		Metadata: gameMetadata(state.ID),
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
