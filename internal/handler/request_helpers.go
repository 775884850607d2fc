package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/MonoCollector_Go/internal/logger"
	"github.com/osse101/MonoCollector_Go/internal/middleware"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req CreateItemRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	return decodeAndValidate(r, w, req, actionName, false)
}

// DecodeOptionalRequest behaves like DecodeAndValidateRequest but accepts an
// empty body, leaving req at its zero value.
func DecodeOptionalRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	return decodeAndValidate(r, w, req, actionName, true)
}

func decodeAndValidate(r *http.Request, w http.ResponseWriter, req interface{}, actionName string, optional bool) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		if !(optional && errors.Is(err, io.EOF)) {
			log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return err
		}
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetQueryParam retrieves and validates a required query parameter from the request.
// If ok is false, the HTTP response has already been written and the handler should return.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalIntQueryParam parses an optional integer query parameter.
// If ok is false, the HTTP response has already been written and the handler should return.
func GetOptionalIntQueryParam(r *http.Request, w http.ResponseWriter, paramName string, defaultValue int) (int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return defaultValue, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
		return 0, false
	}
	return value, true
}

// GetOptionalBoolQueryParam parses an optional boolean query parameter into a pointer.
// If ok is false, the HTTP response has already been written and the handler should return.
func GetOptionalBoolQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (*bool, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
		return nil, false
	}
	return &value, true
}

// currentUserID returns the caller id placed in the context by middleware.UserIdentity
func currentUserID(r *http.Request) string {
	return middleware.GetUserID(r.Context())
}

// pathID returns a chi URL parameter
func pathID(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
