// Package list implements the HTTP handler that returns all user records
// with optional pagination.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/becardapp/becard-api/internal/http/response"
	"github.com/becardapp/becard-api/internal/lib/sl"
	"github.com/becardapp/becard-api/internal/models"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

// Handler handles requests listing user records.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the business logic for listing users.
type Service interface {
	List(ctx context.Context, limit, offset int) ([]*models.User, int, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary List users
// @Description Returns user records ordered by ascending identifier. Supports limit/offset pagination; an empty list is a valid result.
// @Tags Users
// @Produce  json
// @Param limit query int false "Page size (default 100, max 500)"
// @Param offset query int false "Records to skip"
// @Success 200 {object} response.Response "Users page with total count"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	users, total, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list users"))
		return
	}
	if users == nil {
		users = []*models.User{}
	}

	log.Info("list users", slog.Int("count", len(users)), slog.Int("total", total))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"users":  users,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	}))
}
