// Package user contains the business logic for managing business-card
// user records. The service holds no state of its own: every request goes
// straight to the storage layer, which is the sole owner of persisted data.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/becardapp/becard-api/internal/models"
)

// Repository defines the storage methods the service depends on.
type Repository interface {
	// CreateUser inserts a record and returns it with the generated fields.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	// GetUser returns the record with the given id.
	GetUser(ctx context.Context, id int64) (*models.User, error)
	// ListUsers returns records ordered by id with pagination.
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error)
	// CountUsers returns the total number of records.
	CountUsers(ctx context.Context) (int, error)
	// UpdateUser applies the non-nil fields and returns the updated record.
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error)
	// DeleteUser removes the record permanently.
	DeleteUser(ctx context.Context, id int64) error
	// Ping verifies database liveness.
	Ping(ctx context.Context) error
}

// Service implements the user operations exposed over HTTP.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService creates a new Service.
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create assigns a fresh UID and inserts the record. Email uniqueness is
// enforced by the storage layer: a collision surfaces as
// storage.ErrEmailTaken.
func (s *Service) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	entry := models.User{
		UID:   uuid.New().String(),
		Name:  req.Name,
		Email: req.Email,
	}

	created, err := s.repo.CreateUser(ctx, entry)
	if err != nil {
		return nil, err
	}

	s.log.Info("created new user", slog.Int64("id", created.ID))
	return created, nil
}

// Read returns the record with the given id.
func (s *Service) Read(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetUser(ctx, id)
}

// List returns a page of records plus the total count.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*models.User, int, error) {
	users, err := s.repo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Update applies a partial field set to the record. An empty request is
// valid and still refreshes the update timestamp.
func (s *Service) Update(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error) {
	updated, err := s.repo.UpdateUser(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.log.Info("updated user", slog.Int64("id", updated.ID))
	return updated, nil
}

// Remove deletes the record permanently.
func (s *Service) Remove(ctx context.Context, id int64) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return err
	}

	s.log.Info("deleted user", slog.Int64("id", id))
	return nil
}

// HealthCheck reports whether a trivial database query succeeds.
func (s *Service) HealthCheck(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
