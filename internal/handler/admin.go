package handler

import (
	"net/http"

	"github.com/osse101/MonoCollector_Go/internal/stats"
	"github.com/osse101/MonoCollector_Go/internal/user"
)

// AdminHandler serves analytics and cache routes. Access control is applied
// by middleware.RequireAdmin on the route group.
type AdminHandler struct {
	statsService stats.Service
	userService  user.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(statsService stats.Service, userService user.Service) *AdminHandler {
	return &AdminHandler{
		statsService: statsService,
		userService:  userService,
	}
}

// HandleGetAnalytics returns the dashboard summary over the last days days
// @Summary Get analytics
// @Description Totals, per-category and per-day counts, top names, rarity distribution and review summary (admin only)
// @Tags admin
// @Produce json
// @Param X-User-ID header string true "Admin user id"
// @Param days query int false "Window in days (default 30, max 365)"
// @Success 200 {object} domain.Analytics
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/admin/analytics [get]
func (h *AdminHandler) HandleGetAnalytics(w http.ResponseWriter, r *http.Request) {
	days, ok := GetOptionalIntQueryParam(r, w, "days", stats.DefaultAnalyticsDays)
	if !ok {
		return
	}

	analytics, err := h.statsService.GetAnalytics(r.Context(), days)
	if err != nil {
		respondServiceError(w, r, "Get analytics", err)
		return
	}
	respondJSON(w, http.StatusOK, analytics)
}

// HandleGetCacheStats returns current user cache statistics
// @Summary Get user cache stats
// @Description Returns cache hit/miss statistics for monitoring (admin only)
// @Tags admin
// @Produce json
// @Param X-User-ID header string true "Admin user id"
// @Success 200 {object} user.CacheStats
// @Router /api/v1/admin/cache/stats [get]
func (h *AdminHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.userService.GetCacheStats())
}

// HandlePurgeAnalyticsCache drops every cached analytics window
// @Summary Purge analytics cache
// @Tags admin
// @Produce json
// @Param X-User-ID header string true "Admin user id"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/cache/purge [post]
func (h *AdminHandler) HandlePurgeAnalyticsCache(w http.ResponseWriter, r *http.Request) {
	h.statsService.PurgeCache()
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCachePurged})
}

// LeaderboardHandler serves the public leaderboard
type LeaderboardHandler struct {
	statsService stats.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(statsService stats.Service) *LeaderboardHandler {
	return &LeaderboardHandler{statsService: statsService}
}

// HandleGetLeaderboard ranks users by registered items
// @Summary Get leaderboard
// @Tags stats
// @Produce json
// @Param limit query int false "Entries (default 10, max 100)"
// @Param days query int false "Only count items from the last N days; 0 means all time"
// @Success 200 {array} domain.LeaderboardEntry
// @Router /api/v1/stats/leaderboard [get]
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetOptionalIntQueryParam(r, w, "limit", stats.DefaultLeaderboardLimit)
	if !ok {
		return
	}
	days, ok := GetOptionalIntQueryParam(r, w, "days", 0)
	if !ok {
		return
	}

	entries, err := h.statsService.GetLeaderboard(r.Context(), days, limit)
	if err != nil {
		respondServiceError(w, r, "Get leaderboard", err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}
