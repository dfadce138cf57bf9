// Package server defines the core Server struct that composes the
// application's shared dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - the structured logger
//   - the database pool
//   - the http.Server
//
// and provides start/shutdown logic so the application comes up and drains
// cleanly. The Server itself holds no request state: handlers are stateless
// and all durable state lives in the store.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/etharaai/workforce-api/internal/config"
	"github.com/etharaai/workforce-api/internal/database"
	"github.com/rs/zerolog"
)

// Server is the application container that holds shared resources.
// It is not the HTTP listener itself; that is the embedded http.Server,
// configured in SetupHTTPServer and run in Start.
type Server struct {
	// Config holds all environment/config values for the app.
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	// DB holds the PostgreSQL pool wrapper.
	DB *database.Database

	// httpServer is the standard library HTTP server instance.
	httpServer *http.Server
}

// New constructs a Server and initializes core dependencies.
//
// It does not start listening; that is done by SetupHTTPServer + Start.
// Database initialization pings the store, so a dead store fails startup
// here rather than on the first request.
func New(cfg *config.Config, logger *zerolog.Logger) (*Server, error) {
	db, err := database.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Server{
		Config: cfg,
		Logger: logger,
		DB:     db,
	}, nil
}

// SetupHTTPServer configures the internal net/http server around the given
// handler (the Echo router). Timeouts come from config, in seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops or errors.
// SetupHTTPServer must have been called first.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and its dependencies:
// stop accepting connections, drain in-flight requests until the context
// deadline, then close the database pool.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	if err := s.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	return nil
}
