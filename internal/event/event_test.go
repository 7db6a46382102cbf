package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VineyardSim_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got Event

	bus.Subscribe(NotificationRaised, func(ctx context.Context, e Event) error {
		got = e
		return nil
	})

	n := domain.Notification{Day: 12, Kind: domain.NotifyWarning, Message: "frost"}
	require.NoError(t, bus.Publish(context.Background(), NewNotificationEvent("game-1", n)))

	assert.Equal(t, NotificationRaised, got.Type)
	assert.Equal(t, "game-1", got.GameID())
	payload, err := DecodePayload[NotificationPayloadV1](got.Payload)
	require.NoError(t, err)
	assert.Equal(t, n, payload.Notification)
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0
	handler := func(ctx context.Context, e Event) error {
		count++
		return nil
	}

	bus.Subscribe(DayAdvanced, handler)
	bus.Subscribe(DayAdvanced, handler)
	bus.Subscribe(GameEnded, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: DayAdvanced}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(DayAdvanced, func(ctx context.Context, e Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Type: DayAdvanced})
	assert.Error(t, err)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	assert.NoError(t, NewMemoryBus().Publish(context.Background(), Event{Type: WineSold}))
}

func TestNewDayAdvancedEvent(t *testing.T) {
	state := &domain.GameState{ID: "g", Day: 65, Weather: "sunny", Economy: domain.Economy{Money: 1200}}

	e := NewDayAdvancedEvent(state)
	assert.Equal(t, EventSchemaVersion, e.Version)
	p, err := DecodePayload[DayAdvancedPayloadV1](e.Payload)
	require.NoError(t, err)
	assert.Equal(t, "autumn", p.Season)
	assert.Equal(t, 1200, p.Money)
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"game_id": "g2", "wine_id": "w", "quality": 88.0}
	p, err := DecodePayload[WinePayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "g2", p.GameID)
	assert.Equal(t, 88, p.Quality)
}
