package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/VineyardSim_Go/internal/event"
	"github.com/osse101/VineyardSim_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all vineyard events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.GameCreated,
		event.DayAdvanced,
		event.NotificationRaised,
		event.WineProduced,
		event.WineSold,
		event.GameEnded,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case event.GameCreatedPayloadV1:
		GamesCreated.WithLabelValues(p.ClimateCode).Inc()
	case event.DayAdvancedPayloadV1:
		DaysAdvanced.Inc()
	case event.NotificationPayloadV1:
		Notifications.WithLabelValues(string(p.Notification.Kind)).Inc()
	case event.WinePayloadV1:
		if evt.Type == event.WineSold {
			WineSalesValue.Add(float64(p.Value))
		} else {
			WinesProduced.WithLabelValues(strconv.FormatBool(p.Special)).Inc()
		}
	case event.GameEndedPayloadV1:
		GamesEnded.WithLabelValues(string(p.Status), p.Reason).Inc()
	default:
		log.Debug(LogMsgUnknownPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
