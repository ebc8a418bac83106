// Package root implements the endpoint returning static service metadata.
package root

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"

	"github.com/becardapp/becard-api/internal/config"
)

// Handler serves the service metadata at the root path.
type Handler struct {
	cfg *config.Config
}

// New creates a new Handler with the given config.
func New(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// ServeHTTP godoc
// @Summary Service metadata
// @Description Returns the service name, version and documentation links.
// @Tags Service
// @Produce  json
// @Success 200 {object} map[string]any "Service metadata"
// @Router / [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]any{
		"message": fmt.Sprintf("Welcome to %s", h.cfg.AppName),
		"version": h.cfg.AppVersion,
		"docs":    "/docs/index.html",
	})
}
