// Package database establishes connections to the PostgreSQL database.
//
// It handles:
//   - building a DSN from config
//   - creating and sizing the shared pgx connection pool (pgxpool)
//   - wiring query tracing/logging (pgx tracelog) in the local environment
//   - running the bootstrap migrations that guarantee table existence
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/arkanhaq/contenthub/internal/config"
	loggerConfig "github.com/arkanhaq/contenthub/internal/logger"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// Database wraps the shared pgx connection pool and a logger. The pool is
// the only shared mutable resource in the process; it is created once at
// startup and passed down explicitly, never through package globals.
type Database struct {
	Pool *pgxpool.Pool
	log  *zerolog.Logger
}

// DatabasePingTimeout is the number of seconds to wait for the startup ping
// before considering the database unreachable.
const DatabasePingTimeout = 10

// New creates the PostgreSQL connection pool.
//
// The pool is sized from config: acquires beyond MaxConns queue inside
// pgxpool rather than failing. A failed ping is returned as an error so the
// caller can exit; it is the only condition treated as fatal at startup.
func New(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	pgxPoolConfig, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	pgxPoolConfig.MaxConns = int32(cfg.Database.MaxConns)
	if cfg.Database.MinConns > 0 {
		pgxPoolConfig.MinConns = int32(cfg.Database.MinConns)
	}
	if cfg.Database.ConnMaxLifetime > 0 {
		pgxPoolConfig.MaxConnLifetime = time.Duration(cfg.Database.ConnMaxLifetime) * time.Second
	}
	if cfg.Database.ConnMaxIdleTime > 0 {
		pgxPoolConfig.MaxConnIdleTime = time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second
	}

	// SQL statement tracing is noisy, so it is limited to local runs.
	if cfg.Primary.Env == "local" {
		globalLevel := logger.GetLevel()
		pgxLogger := loggerConfig.NewPgxLogger(globalLevel)

		pgxPoolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: loggerConfig.GetPgxTraceLogLevel(globalLevel),
		}
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	database := &Database{
		Pool: pool,
		log:  logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("connected to the database")

	return database, nil
}

// DSN builds the PostgreSQL connection string from config. The password is
// URL-escaped so it cannot break the URL structure.
func DSN(cfg *config.Config) string {
	hostPort := net.JoinHostPort(cfg.Database.Host, strconv.Itoa(cfg.Database.Port))
	encodedPassword := url.QueryEscape(cfg.Database.Password)

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.Database.User,
		encodedPassword,
		hostPort,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)
}

// Close closes the database connection pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
	return nil
}
