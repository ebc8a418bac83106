package user

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/becardapp/becard-api/internal/models"
	"github.com/becardapp/becard-api/internal/storage"
)

// MockRepository implements the Repository interface.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) GetUser(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, limit, offset)
	if res := args.Get(0); res != nil {
		return res.([]*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error) {
	args := m.Called(ctx, id, req)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) DeleteUser(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestService_Create(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, newTestLogger())

	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		_, err := uuid.Parse(u.UID)
		return err == nil && u.Name == "Juan Pérez" && u.Email == "juan@example.com"
	})).Return(&models.User{ID: 1, Name: "Juan Pérez", Email: "juan@example.com"}, nil)

	created, err := service.Create(context.Background(), models.CreateUserRequest{
		Name:  "Juan Pérez",
		Email: "juan@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "juan@example.com", created.Email)

	repo.AssertExpectations(t)
}

func TestService_Create_EmailTaken(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, newTestLogger())

	repo.On("CreateUser", mock.Anything, mock.Anything).Return(nil, storage.ErrEmailTaken)

	_, err := service.Create(context.Background(), models.CreateUserRequest{
		Name:  "Juan Pérez",
		Email: "juan@example.com",
	})
	assert.ErrorIs(t, err, storage.ErrEmailTaken)

	repo.AssertExpectations(t)
}

func TestService_List(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, newTestLogger())

	entries := []*models.User{
		{ID: 1, Email: "a@example.com"},
		{ID: 2, Email: "b@example.com"},
	}
	repo.On("ListUsers", mock.Anything, 100, 0).Return(entries, nil)
	repo.On("CountUsers", mock.Anything).Return(7, nil)

	users, total, err := service.List(context.Background(), 100, 0)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, 7, total)

	repo.AssertExpectations(t)
}

func TestService_List_CountError(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, newTestLogger())

	repo.On("ListUsers", mock.Anything, 10, 0).Return([]*models.User{}, nil)
	repo.On("CountUsers", mock.Anything).Return(0, errors.New("db error"))

	_, _, err := service.List(context.Background(), 10, 0)
	require.Error(t, err)

	repo.AssertExpectations(t)
}

func TestService_Update_PassesPartialFields(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, newTestLogger())

	name := "Nuevo Nombre"
	req := models.UpdateUserRequest{Name: &name}
	repo.On("UpdateUser", mock.Anything, int64(3), req).
		Return(&models.User{ID: 3, Name: name, Email: "juan@example.com"}, nil)

	updated, err := service.Update(context.Background(), 3, req)
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)

	repo.AssertExpectations(t)
}

func TestService_Remove_NotFound(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, newTestLogger())

	repo.On("DeleteUser", mock.Anything, int64(42)).Return(storage.ErrUserNotFound)

	err := service.Remove(context.Background(), 42)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	repo.AssertExpectations(t)
}

func TestService_HealthCheck(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, newTestLogger())

	repo.On("Ping", mock.Anything).Return(nil)

	require.NoError(t, service.HealthCheck(context.Background()))

	repo.AssertExpectations(t)
}
