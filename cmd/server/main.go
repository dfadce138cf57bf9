package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etharaai/workforce-api/internal/config"
	"github.com/etharaai/workforce-api/internal/database"
	"github.com/etharaai/workforce-api/internal/handler"
	loggerPkg "github.com/etharaai/workforce-api/internal/logger"
	"github.com/etharaai/workforce-api/internal/middleware"
	"github.com/etharaai/workforce-api/internal/repository"
	"github.com/etharaai/workforce-api/internal/router"
	"github.com/etharaai/workforce-api/internal/server"
	"github.com/etharaai/workforce-api/internal/service"
	"github.com/rs/zerolog"
)

// migrateTimeout bounds schema migration at startup.
const migrateTimeout = 30 * time.Second

// shutdownTimeout is how long in-flight requests get to drain.
const shutdownTimeout = 10 * time.Second

func main() {
	// Bootstrap logger for failures before config is available.
	bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := loggerPkg.New(cfg)

	migrateCtx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()
	if err := database.Migrate(migrateCtx, &logger, cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to run database migrations")
	}

	srv, err := server.New(cfg, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(repos)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.New(middlewares, handlers)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	// Block until asked to stop, then drain.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}

	logger.Info().Msg("shutdown complete")
}
