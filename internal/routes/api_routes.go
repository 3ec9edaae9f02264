package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"raidcrew/raidtracker/internal/api"
	"raidcrew/raidtracker/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, handlers *api.Handlers) {

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(cors.Handler(cors.Options{
			AllowedOrigins:   deps.Config.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true, // the client cookie identifies the caller
			MaxAge:           300,  // Maximum value not ignored by any of major browsers
		}))
		v1.Use(middleware.SessionMiddleware(deps.Services.Auth)) // all API routes need a signed-in identity

		v1.Get("/session", handlers.GetSessionHandler())

		// Admin-only group
		v1.Group(func(admin chi.Router) {
			admin.Use(middleware.IsAdminMiddleware())
			admin.Get("/admin/dashboard", handlers.GetAdminDashboardHandler())
			admin.Get("/admin/reports/daily", handlers.GetDailyReportHandler())
		})

		// Raider-only group
		v1.Group(func(raider chi.Router) {
			raider.Use(middleware.IsRaiderMiddleware())
			raider.Get("/raider/dashboard", handlers.GetRaiderDashboardHandler())
			raider.Post("/raider/records", handlers.SubmitRecordHandler())
		})
	})
}
