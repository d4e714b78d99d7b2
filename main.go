package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskhub-api/config"
	"taskhub-api/internal/app"
	"taskhub-api/internal/logging"
	"taskhub-api/internal/server"
	"taskhub-api/internal/transport/mapper"

	"go.uber.org/zap"
)

// @title           TaskHub API
// @version         1.0
// @description     Users, relationships, item colors and task lists over a JSON REST API.

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; zap's example logger writes plain JSON to stdout.
		zap.NewExample().Fatal("failed to load configuration", zap.Error(err))
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		zap.NewExample().Fatal("failed to build logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	if err := mapper.SelfCheck(); err != nil {
		logger.Fatal("mapping self-check failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialise application", zap.Error(err))
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Error("failed to close resources", zap.Error(err))
		}
	}()

	srv := server.NewServer(application)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
		}
	}

	logger.Info("application stopped")
}
