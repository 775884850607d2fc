package collection

import (
	"context"

	"github.com/osse101/MonoCollector_Go/internal/event"
)

// invalidatingEvents change what GetStats would return for the event's user
var invalidatingEvents = []event.Type{
	event.ItemCreated,
	event.ItemUpdated,
	event.ItemDeleted,
	event.ItemCollected,
	event.ItemImageUploaded,
	event.ItemIconGenerated,
	event.CategoryCreated,
	event.CategoryUpdated,
	event.CategoryDeleted,
}

// EventHandler keeps the stats memo in step with item and category writes
type EventHandler struct {
	svc Service
}

// NewEventHandler creates a handler invalidating svc's memo
func NewEventHandler(svc Service) *EventHandler {
	return &EventHandler{svc: svc}
}

// Register subscribes the handler to every event that affects collection stats
func (h *EventHandler) Register(bus event.Bus) {
	for _, t := range invalidatingEvents {
		bus.Subscribe(t, h.HandleChange)
	}
}

// HandleChange invalidates the memo of the user named in the payload
func (h *EventHandler) HandleChange(ctx context.Context, evt event.Event) error {
	if userID := event.PayloadUserID(evt); userID != "" {
		h.svc.Invalidate(userID)
	}
	return nil
}
