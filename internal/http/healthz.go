package httpx

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/nadavyigal/originguard/internal/policy"
)

// HealthStatus represents the overall health status of the service.
type HealthStatus struct {
	Status string            `json:"status"`           // "ok" or "degraded"
	Checks map[string]string `json:"checks,omitempty"` // Only included in deep health checks
}

// healthzHandler handles basic health check requests.
// Returns 200 OK with {"status": "ok"} for basic liveness checks.
// Supports ?check=deep for configuration validation.
func healthzHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("check") == "deep" {
		deepHealthCheck(w, r)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// deepHealthCheck validates the configuration the router was built with.
// Returns 200 if all checks pass, 503 if any check fails.
func deepHealthCheck(w http.ResponseWriter, r *http.Request) {
	cfg, ok := GetConfigFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, HealthStatus{
			Status: "degraded",
			Checks: map[string]string{
				"config": "unavailable",
			},
		})
		return
	}

	checks := make(map[string]string)
	allHealthy := true

	// Check 1: configuration is well-formed
	if err := cfg.Validate(); err != nil {
		checks["config"] = fmt.Sprintf("invalid: %v", err)
		allHealthy = false
		slog.Warn("health check failed", "check", "config", "error", err)
	} else {
		checks["config"] = "ok"
	}

	// Check 2: production has somewhere to send rejected browsers
	snap := cfg.Snapshot()
	if snap.Environment == policy.EnvProduction && snap.FallbackOrigin() == "" {
		checks["origins"] = "no allowed origins configured"
		allHealthy = false
		slog.Warn("health check failed", "check", "origins")
	} else {
		checks["origins"] = "ok"
	}

	status := HealthStatus{
		Status: "ok",
		Checks: checks,
	}

	if !allHealthy {
		status.Status = "degraded"
		writeJSON(w, http.StatusServiceUnavailable, status)
		return
	}

	writeJSON(w, http.StatusOK, status)
}
