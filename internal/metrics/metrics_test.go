package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MonoCollector_Go/internal/domain"
	"github.com/osse101/MonoCollector_Go/internal/event"
)

func TestEventMetricsCollector_RecordsBusinessMetrics(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()

	created := testutil.ToFloat64(ItemsCreated.WithLabelValues("books"))
	badge := testutil.ToFloat64(BadgesUnlocked.WithLabelValues("photographer"))
	level := testutil.ToFloat64(LevelUps.WithLabelValues("4"))
	guests := testutil.ToFloat64(UsersCreated.WithLabelValues(userTypeGuest))
	rating := testutil.ToFloat64(ReviewsSubmitted.WithLabelValues("5"))

	item := &domain.Item{ID: "i1", UserID: "u1", Category: "books"}
	require.NoError(t, bus.Publish(ctx, event.NewItemEvent(event.ItemCreated, item)))
	require.NoError(t, bus.Publish(ctx, event.NewBadgeUnlockedEvent("u1", domain.CollectionBadge{ID: "photographer"})))
	require.NoError(t, bus.Publish(ctx, event.NewLevelUpEvent("u1", 3, 4)))
	require.NoError(t, bus.Publish(ctx, event.NewAccountEvent(event.UserCreated, "u1", "", true)))
	require.NoError(t, bus.Publish(ctx, event.NewReviewSubmittedEvent("u1", 5)))

	assert.Equal(t, created+1, testutil.ToFloat64(ItemsCreated.WithLabelValues("books")))
	assert.Equal(t, badge+1, testutil.ToFloat64(BadgesUnlocked.WithLabelValues("photographer")))
	assert.Equal(t, level+1, testutil.ToFloat64(LevelUps.WithLabelValues("4")))
	assert.Equal(t, guests+1, testutil.ToFloat64(UsersCreated.WithLabelValues(userTypeGuest)))
	assert.Equal(t, rating+1, testutil.ToFloat64(ReviewsSubmitted.WithLabelValues("5")))
}

func TestEventMetricsCollector_MalformedPayloadDoesNotFail(t *testing.T) {
	collector := NewEventMetricsCollector()
	before := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.LevelUp)))

	err := collector.HandleEvent(context.Background(), event.Event{
		Type:    event.LevelUp,
		Payload: "not a payload",
	})

	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.LevelUp))))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	pattern := "/api/v1/items/{id}"
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, pattern, "418"))

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/items/"+id, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, pattern, "418")))
}
