// Package remove implements the HTTP handler that deletes a user record
// permanently.
package remove

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
	"github.com/becardapp/becard-api/internal/storage"
)

// Handler handles requests deleting user records.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the business logic for deleting a user.
type Service interface {
	Remove(ctx context.Context, id int64) error
}

// New creates a new Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Delete a user
// @Description Removes the record permanently and returns a confirmation marker.
// @Tags Users
// @Produce  json
// @Param id path int true "User ID"
// @Success 200 {object} response.Response "Deletion confirmation"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Failure 422 {object} response.ErrorResponse "Malformed identifier"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /users/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("invalid id format", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	if err = h.service.Remove(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Error("user not found", slog.Int64("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to delete user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete user"))
		return
	}

	log.Info("success to delete user", slog.Int64("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"deleted": true,
	}))
}
