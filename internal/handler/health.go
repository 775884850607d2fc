package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/MonoCollector_Go/internal/database"
	"github.com/osse101/MonoCollector_Go/internal/logger"
)

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// HealthResponse is returned by the health endpoints
type HealthResponse struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks,omitempty"`
}

// CheckResult is the outcome of one readiness dependency
type CheckResult struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// HandleHealthz answers as long as the process serves HTTP
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz pings the database within timeout
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		db := pingDatabase(r.Context(), dbPool, timeout)
		resp := HealthResponse{Status: StatusOK, Checks: map[string]CheckResult{"database": db}}
		code := http.StatusOK
		if db.Status != StatusOK {
			logger.FromContext(r.Context()).Error("Readiness check failed", "check", "database", "error", db.Error)
			resp.Status = StatusUnavailable
			code = http.StatusServiceUnavailable
		}
		respondJSON(w, code, resp)
	}
}

func pingDatabase(ctx context.Context, dbPool database.Pool, timeout time.Duration) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	began := time.Now()
	err := dbPool.Ping(ctx)
	res := CheckResult{Status: StatusOK, LatencyMS: time.Since(began).Milliseconds()}
	if err != nil {
		res.Status = StatusUnavailable
		res.Error = "database connection failed"
	}
	return res
}
