package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testUserID = "0b6f9d0e-5d7a-4a43-9a55-5b8c7b1f2e10"

func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(GetUserID(r.Context())))
	})
}

func TestUserIdentity(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedBody   string
	}{
		{"no header passes through", "", http.StatusOK, ""},
		{"valid id stored", testUserID, http.StatusOK, testUserID},
		{"uppercase id normalized", strings.ToUpper(testUserID), http.StatusOK, testUserID},
		{"malformed id rejected", "not-a-uuid", http.StatusBadRequest, ErrMsgInvalidUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(HeaderUserID, tt.header)
			}
			w := httptest.NewRecorder()

			UserIdentity(echoUser()).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestRequireUser(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		w := httptest.NewRecorder()
		RequireUser(echoUser()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgMissingUserID)
	})

	t.Run("present user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithUserID(req.Context(), testUserID))
		w := httptest.NewRecorder()
		RequireUser(echoUser()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, testUserID, w.Body.String())
	})
}

func TestRequireAdmin(t *testing.T) {
	guard := RequireAdmin([]string{" " + strings.ToUpper(testUserID) + " ", "garbage"})

	tests := []struct {
		name           string
		userID         string
		expectedStatus int
	}{
		{"admin allowed", testUserID, http.StatusOK},
		{"other user forbidden", "7d1c3a52-6f0e-4d9b-8a21-3c4e5f6a7b8c", http.StatusForbidden},
		{"anonymous unauthorized", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.userID != "" {
				req = req.WithContext(WithUserID(req.Context(), tt.userID))
			}
			w := httptest.NewRecorder()

			guard(echoUser()).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
