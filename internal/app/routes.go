package app

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/becardapp/becard-api/internal/config"
	"github.com/becardapp/becard-api/internal/http/handlers/health"
	"github.com/becardapp/becard-api/internal/http/handlers/root"
	"github.com/becardapp/becard-api/internal/http/handlers/user/create"
	"github.com/becardapp/becard-api/internal/http/handlers/user/list"
	"github.com/becardapp/becard-api/internal/http/handlers/user/read"
	"github.com/becardapp/becard-api/internal/http/handlers/user/remove"
	"github.com/becardapp/becard-api/internal/http/handlers/user/update"
	"github.com/becardapp/becard-api/internal/http/middlewarectx"
	userservice "github.com/becardapp/becard-api/internal/services/user"
)

// RegisterRoutes registers every route of the application.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, userService *userservice.Service) {
	// Global middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.StripSlashes,
		middleware.URLFormat,
	)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: cfg.AllowCredentials,
	}).Handler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Post("/users", create.New(logger, userService).ServeHTTP)
		r.Get("/users", list.New(logger, userService).ServeHTTP)
		r.Get("/users/{id}", read.New(logger, userService).ServeHTTP)
		r.Put("/users/{id}", update.New(logger, userService).ServeHTTP)
		r.Delete("/users/{id}", remove.New(logger, userService).ServeHTTP)
	})

	r.Get("/", root.New(cfg).ServeHTTP)
	r.Get("/health", health.New(logger, userService, cfg.AppName).ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
