package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/becardapp/becard-api/internal/models"
	"github.com/becardapp/becard-api/internal/storage"
)

// MockService implements the update.Service interface.
type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error) {
	args := m.Called(ctx, id, req)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		id             string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful partial update",
			id:   "1",
			body: `{"name":"Juan P. García"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(req models.UpdateUserRequest) bool {
					return req.Name != nil && *req.Name == "Juan P. García" && req.Email == nil
				})).Return(&models.User{
					ID:    1,
					Name:  "Juan P. García",
					Email: "juan@example.com",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Juan P. García"`,
		},
		{
			name: "empty body refreshes the record",
			id:   "1",
			body: `{}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(1), models.UpdateUserRequest{}).
					Return(&models.User{ID: 1, Name: "Juan Pérez", Email: "juan@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"email":"juan@example.com"`,
		},
		{
			name:           "malformed id in url",
			id:             "abc",
			body:           `{}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `invalid id`,
		},
		{
			name:           "malformed json",
			id:             "1",
			body:           `{"name":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name:           "invalid email format",
			id:             "1",
			body:           `{"email":"not-an-email"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Email must be a valid email address`,
		},
		{
			name: "user not found",
			id:   "404",
			body: `{"name":"nobody"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(404), mock.Anything).Return(nil, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `user not found`,
		},
		{
			name: "email collision",
			id:   "1",
			body: `{"email":"ana@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(1), mock.Anything).Return(nil, storage.ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `email already registered`,
		},
		{
			name: "storage failure",
			id:   "1",
			body: `{"name":"Juan"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(1), mock.Anything).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not update user`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPut, "/users/"+tt.id, strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
