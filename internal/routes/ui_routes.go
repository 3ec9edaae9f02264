package routes

import (
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"raidcrew/raidtracker/internal/api"
	"raidcrew/raidtracker/internal/middleware"
	raidUI "raidcrew/raidtracker/raidboard/ui"
)

// RegisterUIRoutes registers the server-rendered dashboard routes
func RegisterUIRoutes(r chi.Router, deps *api.Dependencies) {
	appName := deps.Config.AppName
	authHandler := raidUI.NewAuthHandler(deps.Services.Auth, appName)
	dashboardHandler := raidUI.NewDashboardHandler(
		deps.Services.Auth,
		deps.Services.Dashboard,
		deps.Services.Submission,
		appName,
	)

	// 1 login/sec per IP, burst up to 5
	loginLimiter := middleware.NewRateLimiter(rate.Limit(1), 5)

	// Session init, callback handling and the role dashboards
	r.Get("/", dashboardHandler.HomeHandler)

	r.Route("/auth", func(authRoutes chi.Router) {
		authRoutes.Group(func(limited chi.Router) {
			limited.Use(loginLimiter.Middleware)
			limited.Post("/login", authHandler.LoginHandler)
			limited.Post("/x/start", authHandler.XStartHandler)
		})
		authRoutes.Get("/x/authorize", authHandler.XAuthorizeHandler)
		authRoutes.Post("/logout", authHandler.LogoutHandler)
	})

	r.Post("/dashboard/submissions", dashboardHandler.SubmitHandler)
}
