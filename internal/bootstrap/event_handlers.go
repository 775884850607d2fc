package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/MonoCollector_Go/internal/collection"
	"github.com/osse101/MonoCollector_Go/internal/event"
	"github.com/osse101/MonoCollector_Go/internal/metrics"
	"github.com/osse101/MonoCollector_Go/internal/stats"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus          event.Bus
	CollectionService collection.Service
	StatsService      stats.Service
}

// RegisterEventHandlers sets up all event handlers and subscribers.
// This includes:
// - Collection handler (drops memoized stats when a user's items change)
// - Stats handler (purges cached analytics)
// - Metrics collector (for event-based metrics)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	collection.NewEventHandler(deps.CollectionService).Register(deps.EventBus)
	slog.Info(LogMsgCollectionHandlerRegistered)

	stats.NewEventHandler(deps.StatsService).Register(deps.EventBus)
	slog.Info(LogMsgStatsHandlerRegistered)

	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	return nil
}
