package stats

import (
	"context"

	"github.com/osse101/MonoCollector_Go/internal/event"
	"github.com/osse101/MonoCollector_Go/internal/logger"
)

// EventHandler keeps the analytics cache in step with writes that change totals
type EventHandler struct {
	service Service
}

// NewEventHandler creates a new stats event handler
func NewEventHandler(service Service) *EventHandler {
	return &EventHandler{
		service: service,
	}
}

// Register subscribes the handler to relevant events
func (h *EventHandler) Register(bus event.Bus) {
	for _, t := range []event.Type{
		event.ItemCreated,
		event.ItemDeleted,
		event.UserCreated,
		event.AccountLinked,
		event.ReviewSubmitted,
	} {
		bus.Subscribe(t, h.HandleChange)
	}
}

// HandleChange purges cached analytics
func (h *EventHandler) HandleChange(ctx context.Context, evt event.Event) error {
	h.service.PurgeCache()
	logger.FromContext(ctx).Debug(LogMsgAnalyticsPurged, "event_type", evt.Type)
	return nil
}
