// Package health implements the liveness endpoint. The database part of
// the report is backed by a trivial query against the storage layer.
package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/becardapp/becard-api/internal/lib/sl"
)

// Handler reports service and database liveness.
type Handler struct {
	log     *slog.Logger
	service Service
	appName string
}

// Service describes the health probe against the storage layer.
type Service interface {
	HealthCheck(ctx context.Context) error
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service, appName string) *Handler {
	return &Handler{
		log:     log,
		service: service,
		appName: appName,
	}
}

// ServeHTTP godoc
// @Summary Health check
// @Description Reports service status and database liveness.
// @Tags Service
// @Produce  json
// @Success 200 {object} map[string]any "Liveness report"
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	db := "ok"
	if err := h.service.HealthCheck(r.Context()); err != nil {
		h.log.Error("database health check failed", slog.String("op", op), sl.Err(err))
		db = "fail"
	}

	render.JSON(w, r, map[string]any{
		"status": "healthy",
		"app":    h.appName,
		"db":     db,
	})
}
