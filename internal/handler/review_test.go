package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/MonoCollector_Go/internal/domain"
	"github.com/osse101/MonoCollector_Go/internal/review"
)

func TestHandleSubmitReview(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockReviewService)
		wantStatus int
	}{
		{
			name: "Success",
			body: `{"rating":5,"comment":"Helps me declutter"}`,
			setupMock: func(m *MockReviewService) {
				m.On("SubmitReview", mock.Anything, testUserID, 5, "Helps me declutter").
					Return(&domain.Review{ID: "r1", UserID: testUserID, Rating: 5}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{name: "Rating Zero", body: `{"rating":0}`, wantStatus: http.StatusBadRequest},
		{name: "Rating Six", body: `{"rating":6}`, wantStatus: http.StatusBadRequest},
		{name: "Comment Too Long", body: `{"rating":3,"comment":"` + strings.Repeat("a", 1001) + `"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockReviewService{}
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			w := httptest.NewRecorder()
			NewReviewHandler(svc).HandleSubmitReview(w, newUserRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(tt.body), nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleListReviews(t *testing.T) {
	t.Run("Default Limit", func(t *testing.T) {
		svc := &MockReviewService{}
		svc.On("ListReviews", mock.Anything, review.DefaultListLimit).Return([]domain.Review{}, nil)

		w := httptest.NewRecorder()
		NewReviewHandler(svc).HandleListReviews(w, httptest.NewRequest(http.MethodGet, "/api/v1/reviews", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Explicit Limit", func(t *testing.T) {
		svc := &MockReviewService{}
		svc.On("ListReviews", mock.Anything, 5).Return([]domain.Review{{ID: "r1", Rating: 4}}, nil)

		w := httptest.NewRecorder()
		NewReviewHandler(svc).HandleListReviews(w, httptest.NewRequest(http.MethodGet, "/api/v1/reviews?limit=5", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"rating":4`)
		svc.AssertExpectations(t)
	})
}

func TestHandleGetReviewSummary(t *testing.T) {
	svc := &MockReviewService{}
	svc.On("GetSummary", mock.Anything).Return(domain.ReviewSummary{Count: 4, AverageRating: 4.5}, nil)

	w := httptest.NewRecorder()
	NewReviewHandler(svc).HandleGetSummary(w, httptest.NewRequest(http.MethodGet, "/api/v1/reviews/summary", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":4,"average_rating":4.5}`, w.Body.String())
}
