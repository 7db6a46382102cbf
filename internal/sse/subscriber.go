package sse

import (
	"context"

	"github.com/osse101/VineyardSim_Go/internal/event"
	"github.com/osse101/VineyardSim_Go/internal/logger"
)

// StreamedTypes are the bus events forwarded to browsers
var StreamedTypes = []event.Type{
	event.NotificationRaised,
	event.DayAdvanced,
	event.WineProduced,
	event.WineSold,
	event.GameEnded,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers the forwarder for every streamed type
func (s *Subscriber) Subscribe() {
	for _, t := range StreamedTypes {
		s.bus.Subscribe(t, s.forward)
	}
	logger.Info(LogMsgSubscribed, "types", StreamedTypes)
}

func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	gameID := evt.GameID()
	if gameID == "" {
		return nil
	}
	s.hub.Broadcast(gameID, string(evt.Type), evt.Payload)
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type, "game_id", gameID)
	return nil
}
