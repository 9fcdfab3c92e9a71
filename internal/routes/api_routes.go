package routes

import (
	"github.com/go-chi/chi/v5"

	"skywatch/milmon/internal/api"
	"skywatch/milmon/internal/middleware"
)

// RegisterAPIRoutes mounts the versioned API. Mutating endpoints sit
// behind the operator JWT.
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, jwtSecret string) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/aircraft", handlers.AircraftHandler)
		r.Get("/stats", handlers.StatsHandler)
		r.Get("/filters", handlers.GetFiltersHandler)
		r.Get("/alerts/recent", handlers.RecentAlertsHandler)
		r.Get("/alerts/history", handlers.AlertHistoryHandler)
		r.Get("/alerts/stats", handlers.AlertStatsHandler)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireOperator(jwtSecret))
			r.Put("/filters", handlers.SetFiltersHandler)
			r.Post("/filters/{category}/toggle", handlers.ToggleFilterHandler)
			r.Post("/refresh", handlers.RefreshHandler)
		})
	})
}
