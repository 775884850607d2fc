package handler

import (
	"net/http"

	"github.com/osse101/MonoCollector_Go/internal/review"
)

// SubmitReviewRequest rates the app. Submitting again replaces the review.
type SubmitReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=1000"`
}

// ReviewHandler serves review routes
type ReviewHandler struct {
	reviewService review.Service
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService review.Service) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// HandleSubmitReview stores the caller's review
// @Summary Submit review
// @Tags reviews
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param request body SubmitReviewRequest true "Review"
// @Success 201 {object} domain.Review
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/reviews [post]
func (h *ReviewHandler) HandleSubmitReview(w http.ResponseWriter, r *http.Request) {
	var req SubmitReviewRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Submit review"); err != nil {
		return
	}

	rv, err := h.reviewService.SubmitReview(r.Context(), currentUserID(r), req.Rating, req.Comment)
	if err != nil {
		respondServiceError(w, r, "Submit review", err)
		return
	}
	respondJSON(w, http.StatusCreated, rv)
}

// HandleListReviews lists recent reviews
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param limit query int false "Maximum reviews (default 20, max 100)"
// @Success 200 {array} domain.Review
// @Router /api/v1/reviews [get]
func (h *ReviewHandler) HandleListReviews(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetOptionalIntQueryParam(r, w, "limit", review.DefaultListLimit)
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListReviews(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, "List reviews", err)
		return
	}
	respondJSON(w, http.StatusOK, reviews)
}

// HandleGetSummary returns the review count and average rating
// @Summary Review summary
// @Tags reviews
// @Produce json
// @Success 200 {object} domain.ReviewSummary
// @Router /api/v1/reviews/summary [get]
func (h *ReviewHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reviewService.GetSummary(r.Context())
	if err != nil {
		respondServiceError(w, r, "Review summary", err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
