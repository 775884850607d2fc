package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/osse101/MonoCollector_Go/internal/domain"
	"github.com/osse101/MonoCollector_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// bufferPool holds encode buffers reused across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Headers are not written until encoding succeeded
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped status.
// Server-side failures log at error level, client mistakes at warn.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// errorMapping pairs a domain sentinel with its HTTP status and client message
type errorMapping struct {
	target  error
	status  int
	message string
}

// serviceErrorMappings is checked in order; the first errors.Is match wins
var serviceErrorMappings = []errorMapping{
	{domain.ErrUserNotFound, http.StatusNotFound, ErrMsgUserNotFoundError},
	{domain.ErrItemNotFound, http.StatusNotFound, ErrMsgItemNotFoundError},
	{domain.ErrImageNotFound, http.StatusNotFound, ErrMsgImageNotFoundError},
	{domain.ErrCategoryNotFound, http.StatusNotFound, ErrMsgCategoryNotFoundError},
	{domain.ErrLinkNotFound, http.StatusNotFound, ErrMsgLinkNotFoundError},
	{domain.ErrAccountAlreadyLinked, http.StatusConflict, ErrMsgAlreadyLinkedError},
	{domain.ErrCategoryExists, http.StatusConflict, ErrMsgCategoryExistsError},
	{domain.ErrDefaultCategory, http.StatusForbidden, ErrMsgDefaultCategoryError},
	{domain.ErrForbidden, http.StatusForbidden, ErrMsgForbiddenError},
	{domain.ErrImageTooLarge, http.StatusRequestEntityTooLarge, ErrMsgImageTooLargeError},
	{domain.ErrInvalidImage, http.StatusUnsupportedMediaType, ErrMsgInvalidImageError},
	{domain.ErrInvalidRating, http.StatusBadRequest, ErrMsgInvalidRatingError},
	{domain.ErrInvalidProvider, http.StatusBadRequest, ErrMsgInvalidProviderError},
}

// mapServiceErrorToUserMessage picks the status and client-safe message for
// a service error. Unknown errors, database ones included, become a 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}
	for _, m := range serviceErrorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return http.StatusBadRequest, invalidInputMessage(err)
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// invalidInputMessage surfaces the detail services attach to ErrInvalidInput
// ("invalid input: name is required") without leaking anything else.
func invalidInputMessage(err error) string {
	msg := err.Error()
	prefix := domain.ErrMsgInvalidInput + ": "
	if idx := strings.Index(msg, prefix); idx >= 0 {
		return msg[idx+len(prefix):]
	}
	return ErrMsgInvalidRequestError
}
