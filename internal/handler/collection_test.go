package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MonoCollector_Go/internal/collection"
	"github.com/osse101/MonoCollector_Go/internal/domain"
)

func TestHandleGetStats(t *testing.T) {
	svc := &MockCollectionService{}
	svc.On("GetStats", mock.Anything, testUserID).Return(&domain.CollectionStats{TotalExp: 120, ItemCount: 10}, nil)

	w := httptest.NewRecorder()
	NewCollectionHandler(svc).HandleGetStats(w, newUserRequest(http.MethodGet, "/api/v1/collection/stats", nil, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_exp":120`)
	svc.AssertExpectations(t)
}

func TestHandleCheckUnlocks(t *testing.T) {
	t.Run("Level Up", func(t *testing.T) {
		svc := &MockCollectionService{}
		svc.On("CheckUnlocks", mock.Anything, testUserID).Return(&domain.UnlockDiff{LeveledUp: true, PreviousLevel: 1, NewLevel: 2}, nil)

		w := httptest.NewRecorder()
		NewCollectionHandler(svc).HandleCheckUnlocks(w, newUserRequest(http.MethodPost, "/api/v1/collection/unlocks", nil, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"leveled_up":true`)
	})

	t.Run("Store Failure", func(t *testing.T) {
		svc := &MockCollectionService{}
		svc.On("CheckUnlocks", mock.Anything, testUserID).Return(nil, domain.ErrDatabaseError)

		w := httptest.NewRecorder()
		NewCollectionHandler(svc).HandleCheckUnlocks(w, newUserRequest(http.MethodPost, "/api/v1/collection/unlocks", nil, nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
	})
}

func TestHandleGetRarity(t *testing.T) {
	t.Run("Deterministic For Name", func(t *testing.T) {
		h := NewCollectionHandler(&MockCollectionService{})

		var first, second RarityResponse
		for _, out := range []*RarityResponse{&first, &second} {
			w := httptest.NewRecorder()
			h.HandleGetRarity(w, httptest.NewRequest(http.MethodGet, "/api/v1/collection/rarity?name=Old+camera", nil))
			require.Equal(t, http.StatusOK, w.Code)
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
		}

		assert.Equal(t, "Old camera", first.Name)
		assert.Equal(t, first.Rarity, second.Rarity)
		assert.Equal(t, collection.DetermineRarity("Old camera", nil), first.Rarity)
		assert.Equal(t, first.Rarity, first.Config.Rarity)
	})

	t.Run("With Created At", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewCollectionHandler(&MockCollectionService{}).HandleGetRarity(w,
			httptest.NewRequest(http.MethodGet, "/api/v1/collection/rarity?name=Mug&created_at=2026-01-02T03:04:05Z", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing Name", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewCollectionHandler(&MockCollectionService{}).HandleGetRarity(w, httptest.NewRequest(http.MethodGet, "/api/v1/collection/rarity", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing name query parameter")
	})

	t.Run("Bad Created At", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewCollectionHandler(&MockCollectionService{}).HandleGetRarity(w,
			httptest.NewRequest(http.MethodGet, "/api/v1/collection/rarity?name=Mug&created_at=yesterday", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleGetTables(t *testing.T) {
	svc := &MockCollectionService{}
	svc.On("GetTables").Return(collection.Tables{
		Levels: []domain.Level{{Level: 1, Title: "Beginner"}},
	})

	w := httptest.NewRecorder()
	NewCollectionHandler(svc).HandleGetTables(w, httptest.NewRequest(http.MethodGet, "/api/v1/collection/tables", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"levels"`)
	svc.AssertExpectations(t)
}
