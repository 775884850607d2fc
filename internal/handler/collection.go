package handler

import (
	"net/http"
	"time"

	"github.com/osse101/MonoCollector_Go/internal/collection"
	"github.com/osse101/MonoCollector_Go/internal/domain"
)

// RarityResponse is the rarity of a single name
type RarityResponse struct {
	Name   string              `json:"name"`
	Rarity domain.Rarity       `json:"rarity"`
	Config domain.RarityConfig `json:"config"`
}

// CollectionHandler serves the gamification routes
type CollectionHandler struct {
	collectionService collection.Service
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(collectionService collection.Service) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

// HandleGetStats returns the caller's level, achievements, badges and breakdowns
// @Summary Get collection stats
// @Tags collection
// @Produce json
// @Param X-User-ID header string true "User id"
// @Success 200 {object} domain.CollectionStats
// @Router /api/v1/collection/stats [get]
func (h *CollectionHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.collectionService.GetStats(r.Context(), currentUserID(r))
	if err != nil {
		respondServiceError(w, r, "Get collection stats", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// HandleCheckUnlocks reports what was unlocked since the last check
// @Summary Check unlocks
// @Description Compares current stats with the last notified state and returns the new unlocks.
// @Tags collection
// @Produce json
// @Param X-User-ID header string true "User id"
// @Success 200 {object} domain.UnlockDiff
// @Router /api/v1/collection/unlocks [post]
func (h *CollectionHandler) HandleCheckUnlocks(w http.ResponseWriter, r *http.Request) {
	diff, err := h.collectionService.CheckUnlocks(r.Context(), currentUserID(r))
	if err != nil {
		respondServiceError(w, r, "Check unlocks", err)
		return
	}
	respondJSON(w, http.StatusOK, diff)
}

// HandleGetRarity classifies a single item name
// @Summary Get rarity of a name
// @Tags collection
// @Produce json
// @Param name query string true "Item name"
// @Param created_at query string false "RFC3339 registration time"
// @Success 200 {object} RarityResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/collection/rarity [get]
func (h *CollectionHandler) HandleGetRarity(w http.ResponseWriter, r *http.Request) {
	name, ok := GetQueryParam(r, w, "name")
	if !ok {
		return
	}

	var createdAt *time.Time
	if raw := r.URL.Query().Get("created_at"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid created_at query parameter")
			return
		}
		createdAt = &t
	}

	rarity := collection.DetermineRarity(name, createdAt)
	respondJSON(w, http.StatusOK, RarityResponse{
		Name:   name,
		Rarity: rarity,
		Config: collection.GetRarityConfig(rarity),
	})
}

// HandleGetTables returns the static level, achievement, badge and rarity tables
// @Summary Get gamification tables
// @Tags collection
// @Produce json
// @Success 200 {object} collection.Tables
// @Router /api/v1/collection/tables [get]
func (h *CollectionHandler) HandleGetTables(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.collectionService.GetTables())
}
