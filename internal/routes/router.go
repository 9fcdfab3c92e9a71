package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"

	"skywatch/milmon/internal/api"
	"skywatch/milmon/internal/logging"
	"skywatch/milmon/internal/middleware"
)

func RegisterRoutes(deps *api.Dependencies, sqlxDB *sqlx.DB, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and rate-limit middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(sqlxDB, upSince))

	handlers := api.NewHandlers(deps)

	RegisterAPIRoutes(r, handlers, deps.Config.Auth.JWTSecret)

	return r
}
