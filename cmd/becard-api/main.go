// Package main BeCard API
//
// @title           BeCard API
// @version         1.0
// @description     REST API for managing business-card user records
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@becard.app

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8000
// @BasePath  /api/v1
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/becardapp/becard-api/docs"
	"github.com/becardapp/becard-api/internal/app"
	"github.com/becardapp/becard-api/internal/config"
)

func main() {
	cfg := config.MustLoad()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	logger.Info("starting becard-api", slog.String("env", cfg.Env), slog.String("version", cfg.AppVersion))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", slog.Any("err", err))
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("becard-api stopped gracefully")
}
