package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType, Payload: "payload"})
	require.NoError(t, err)
	assert.True(t, handled, "handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}
	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: ItemCreated}))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	assert.Error(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
}

func TestMemoryBus_PublishRunsAllHandlersAndJoinsErrors(t *testing.T) {
	bus := NewMemoryBus()
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	var calls []string

	bus.Subscribe(ItemDeleted, func(context.Context, Event) error { calls = append(calls, "a"); return errA })
	bus.Subscribe(ItemDeleted, func(context.Context, Event) error { calls = append(calls, "b"); return errB })
	bus.Subscribe(ItemDeleted, func(context.Context, Event) error { calls = append(calls, "c"); return nil })

	err := bus.Publish(context.Background(), Event{Type: ItemDeleted})

	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Contains(t, err.Error(), "2 handler(s) failed for item.deleted")
	assert.Equal(t, []string{"a", "b", "c"}, calls)
}

func TestNewItemEvent(t *testing.T) {
	item := &domain.Item{ID: "item-1", UserID: "user-1", Category: "food", IconSource: domain.IconSourceName}

	evt := NewItemEvent(ItemIconGenerated, item)

	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, ItemIconGenerated, evt.Type)
	payload, err := DecodePayload[ItemPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, "item-1", payload.ItemID)
	assert.Equal(t, "user-1", payload.UserID)
	assert.Equal(t, "name", payload.Source)
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{"user_id": "u", "old_level": 2, "new_level": 3}

	payload, err := DecodePayload[LevelUpPayloadV1](raw)

	require.NoError(t, err)
	assert.Equal(t, "u", payload.UserID)
	assert.Equal(t, 2, payload.OldLevel)
	assert.Equal(t, 3, payload.NewLevel)
}

func TestDecodePayload_PointerAndNil(t *testing.T) {
	payload, err := DecodePayload[ItemPayloadV1](&ItemPayloadV1{UserID: "u", ItemID: "i"})
	require.NoError(t, err)
	assert.Equal(t, "i", payload.ItemID)

	_, err = DecodePayload[ItemPayloadV1](nil)
	assert.EqualError(t, err, ErrMsgMissingPayload)

	_, err = DecodePayload[ItemPayloadV1]((*ItemPayloadV1)(nil))
	assert.EqualError(t, err, ErrMsgMissingPayload)
}

func TestDecodePayload_Mismatch(t *testing.T) {
	_, err := DecodePayload[LevelUpPayloadV1](map[string]interface{}{"new_level": "three"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgDecodePayload)
}

func TestPayloadUserID(t *testing.T) {
	tests := []struct {
		name string
		evt  Event
		want string
	}{
		{"item payload", Event{Payload: ItemPayloadV1{UserID: "a"}}, "a"},
		{"category payload", Event{Payload: CategoryPayloadV1{UserID: "b"}}, "b"},
		{"other typed payload", Event{Payload: LevelUpPayloadV1{UserID: "c"}}, "c"},
		{"map payload", Event{Payload: map[string]interface{}{"user_id": "d"}}, "d"},
		{"no payload", Event{}, ""},
		{"payload without user", Event{Payload: "text"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PayloadUserID(tt.evt))
		})
	}
}

func TestGetMetadataValue(t *testing.T) {
	evt := Event{Metadata: map[string]interface{}{"source": "api"}}
	assert.Equal(t, "api", evt.GetMetadataValue("source"))
	assert.Nil(t, Event{}.GetMetadataValue("source"))
}
