package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"raidcrew/raidtracker/internal/models/entities"
)

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Verifies the server, the database and the state store are reachable.
// @Tags Misc
// @Success 200 {object} entities.HealthCheckResponse
// @Failure 503 {object} entities.HealthCheckResponse
// @Router /healthCheck [get]
func HealthCheckHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		dependencies := map[string]entities.DependencyStatus{
			"database":    probe(deps.SQL.PingContext(ctx), "Database connected"),
			"state_store": probe(deps.Store.Ping(ctx), "State store reachable"),
		}

		overallStatus := "ok"
		for _, dep := range dependencies {
			if dep.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		now := deps.Entropy.Now()
		resp := entities.HealthCheckResponse{
			App:          deps.Config.AppName,
			Status:       overallStatus,
			Dependencies: dependencies,
			UpSince:      deps.UpSince,
			Uptime:       now.Sub(deps.UpSince).Round(time.Second).String(),
		}

		w.Header().Set("Content-Type", "application/json")
		if overallStatus != "ok" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func probe(err error, okDetails string) entities.DependencyStatus {
	if err != nil {
		return entities.DependencyStatus{Status: "down", Details: err.Error()}
	}
	return entities.DependencyStatus{Status: "ok", Details: okDetails}
}
