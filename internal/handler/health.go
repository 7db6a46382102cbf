package handler

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/osse101/VineyardSim_Go/internal/database"
	"github.com/osse101/VineyardSim_Go/internal/logger"
)

// ReadinessTimeout bounds every readiness probe
const ReadinessTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// HealthChecker defines the interface for components that can report health
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// PoolChecker reports a database pool as healthy when it answers a ping
type PoolChecker struct {
	Pool database.Pool
}

// CheckHealth pings the pool
func (c PoolChecker) CheckHealth(ctx context.Context) error {
	return c.Pool.Ping(ctx)
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz runs every named check and reports unavailable if any fails
// @Summary Readiness check
// @Description Returns OK if the service is ready to accept traffic (storage reachable)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(checks map[string]HealthChecker) http.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		results := make(map[string]string, len(names))
		var failed []string
		for _, name := range names {
			if err := checks[name].CheckHealth(ctx); err != nil {
				logger.FromContext(ctx).Error("Readiness check failed", "check", name, "error", err)
				results[name] = "unavailable"
				failed = append(failed, name)
				continue
			}
			results[name] = "ok"
		}

		if len(failed) > 0 {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: strings.Join(failed, ", ") + " check failed",
				Checks:  results,
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Checks: results})
	}
}
