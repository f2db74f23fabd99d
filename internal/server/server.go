// Package server defines the application container that composes the
// app's main dependencies and owns their lifecycle: configuration,
// logger, database pool, and the http.Server. The startup sequence the
// serve command follows is New, SetupHTTPServer, Start, then Shutdown
// on signal.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/arkanhaq/contenthub/internal/config"
	"github.com/arkanhaq/contenthub/internal/database"

	"github.com/rs/zerolog"
)

// Server holds the shared resources the rest of the application is
// constructed from. It is not the HTTP server itself; the internal
// http.Server is configured by SetupHTTPServer and run by Start.
type Server struct {
	Config *config.Config
	Logger *zerolog.Logger
	DB     *database.Database

	httpServer *http.Server
}

// New constructs the container and connects the database pool. It does
// not start listening; that is SetupHTTPServer plus Start.
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

// SetupHTTPServer configures the internal net/http server around the
// given handler. Timeouts come from config, interpreted as seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops or errors;
// graceful shutdown happens by calling Shutdown from a signal handler.
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

// Shutdown stops the HTTP server, waiting for inflight requests until the
// context deadline, then closes the database pool.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	if err := s.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
