package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"raidcrew/raidtracker/internal/api"
	"raidcrew/raidtracker/internal/logging"
	"raidcrew/raidtracker/internal/middleware"
)

// RegisterRoutes builds the chi router for the dashboard pages and the JSON API.
func RegisterRoutes(deps *api.Dependencies) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))
	r.Use(middleware.ClientMiddleware(deps.Signer, deps.Entropy, deps.Config.IsProduction()))

	logging.Info("Router initialized with metrics and logging middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(deps))

	RegisterUIRoutes(r, deps)
	RegisterAPIRoutes(r, deps, api.NewHandlers(deps))

	return r
}
