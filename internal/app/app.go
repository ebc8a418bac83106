// Package app wires configuration, storage, services and routes into the
// HTTP server and owns its lifecycle.
package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/becardapp/becard-api/internal/config"
	userservice "github.com/becardapp/becard-api/internal/services/user"
	"github.com/becardapp/becard-api/internal/storage"
)

// App holds the HTTP server and the resources it owns.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

// New builds the application: connects to the database (creating the
// schema if needed), constructs the user service and registers the routes.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	userService := userservice.NewService(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, userService)

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run starts the server and blocks until it fails or ctx is cancelled,
// then shuts down gracefully and closes the database pool.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database pool", slog.Any("err", closeErr))
		}
		return err
	}
}
