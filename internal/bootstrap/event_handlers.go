package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/VineyardSim_Go/internal/event"
	"github.com/osse101/VineyardSim_Go/internal/eventlog"
	"github.com/osse101/VineyardSim_Go/internal/metrics"
	"github.com/osse101/VineyardSim_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus       event.Bus
	JournalService eventlog.Service
	Hub            *sse.Hub
}

// RegisterEventHandlers wires every bus subscriber:
// the metrics collector, the game journal, and the SSE bridge to browsers.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if err := deps.JournalService.Subscribe(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeJournal, err)
	}
	slog.Info(LogMsgJournalSubscribed)

	sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
	slog.Info(LogMsgSSESubscribed)

	return nil
}
