package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/arkanhaq/contenthub/internal/config"
	"github.com/arkanhaq/contenthub/internal/database"
	"github.com/arkanhaq/contenthub/internal/handler"
	"github.com/arkanhaq/contenthub/internal/logger"
	"github.com/arkanhaq/contenthub/internal/middleware"
	"github.com/arkanhaq/contenthub/internal/repository"
	"github.com/arkanhaq/contenthub/internal/router"
	"github.com/arkanhaq/contenthub/internal/schema"
	"github.com/arkanhaq/contenthub/internal/server"
	"github.com/arkanhaq/contenthub/internal/service"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve runs migrations, reconciles legacy column names, then starts
the HTTP server and blocks until SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Primary.Env, cfg.Primary.LogLevel)

	ctx := cmd.Context()
	if err := database.Migrate(ctx, &log, cfg); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	srv, err := server.New(cfg, &log)
	if err != nil {
		return err
	}

	schema.ReconcileAll(ctx, srv.DB.Pool, &log, schema.Directives())

	repos := repository.NewRepositories(srv)
	services, err := service.NewService(srv, repos)
	if err != nil {
		return fmt.Errorf("build services: %w", err)
	}
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	srv.SetupHTTPServer(router.New(middlewares, handlers))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}
