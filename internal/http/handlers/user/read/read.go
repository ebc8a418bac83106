// Package read implements the HTTP handler that fetches one user record
// by its identifier.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/becardapp/becard-api/internal/http/response"
	"github.com/becardapp/becard-api/internal/lib/sl"
	"github.com/becardapp/becard-api/internal/models"
	"github.com/becardapp/becard-api/internal/storage"
)

// Handler handles requests for a single user record.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the business logic for reading a user.
type Service interface {
	Read(ctx context.Context, id int64) (*models.User, error)
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Get a user by id
// @Description Returns the business-card user record with the given identifier.
// @Tags Users
// @Produce  json
// @Param id path int true "User ID"
// @Success 200 {object} response.Response "User record"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Failure 422 {object} response.ErrorResponse "Malformed identifier"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /users/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	res, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Error("user not found", slog.Int64("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to read user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read user"))
		return
	}

	log.Info("success to read user", slog.Int64("id", res.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"user": res,
	}))
}
