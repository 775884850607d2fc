package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/MonoCollector_Go/internal/event"
	"github.com/osse101/MonoCollector_Go/internal/logger"
)

// userTypeGuest and userTypeLinked label UsersCreated
const (
	userTypeGuest  = "guest"
	userTypeLinked = "linked"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.ItemCreated,
		event.ItemUpdated,
		event.ItemDeleted,
		event.ItemCollected,
		event.ItemImageUploaded,
		event.ItemIconGenerated,
		event.CategoryCreated,
		event.CategoryUpdated,
		event.CategoryDeleted,
		event.AchievementUnlocked,
		event.BadgeUnlocked,
		event.LevelUp,
		event.UserCreated,
		event.AccountLinked,
		event.AccountUnlinked,
		event.ReviewSubmitted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics. Malformed payloads are
// logged and skipped; metrics never fail a publisher.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := e.record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) record(evt event.Event) error {
	switch evt.Type {
	case event.ItemCreated:
		p, err := event.DecodePayload[event.ItemPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		ItemsCreated.WithLabelValues(p.Category).Inc()

	case event.ItemDeleted:
		ItemsDeleted.Inc()

	case event.ItemCollected:
		ItemsCollected.Inc()

	case event.ItemImageUploaded:
		ImagesUploaded.Inc()

	case event.ItemIconGenerated:
		p, err := event.DecodePayload[event.ItemPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		IconsGenerated.WithLabelValues(p.Source).Inc()

	case event.AchievementUnlocked:
		p, err := event.DecodePayload[event.AchievementUnlockedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		AchievementsUnlocked.WithLabelValues(p.AchievementID).Inc()

	case event.BadgeUnlocked:
		p, err := event.DecodePayload[event.BadgeUnlockedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		BadgesUnlocked.WithLabelValues(p.BadgeID).Inc()

	case event.LevelUp:
		p, err := event.DecodePayload[event.LevelUpPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		LevelUps.WithLabelValues(strconv.Itoa(p.NewLevel)).Inc()

	case event.UserCreated:
		p, err := event.DecodePayload[event.AccountPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		userType := userTypeLinked
		if p.IsGuest {
			userType = userTypeGuest
		}
		UsersCreated.WithLabelValues(userType).Inc()

	case event.AccountLinked:
		p, err := event.DecodePayload[event.AccountPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		AccountsLinked.WithLabelValues(p.Provider).Inc()

	case event.ReviewSubmitted:
		p, err := event.DecodePayload[event.ReviewPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		ReviewsSubmitted.WithLabelValues(strconv.Itoa(p.Rating)).Inc()
	}
	return nil
}
