package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/arkanhaq/contenthub/internal/config"
	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

// The binary carries its bootstrap migrations, so deployments do not depend
// on a migrations directory being present at runtime.
//
//go:embed migrations/*.sql
var migrations embed.FS

// Migrate runs the bootstrap migrations using jackc/tern.
//
// Bootstrap migrations only guarantee that every table exists with the
// current column set (CREATE TABLE IF NOT EXISTS); legacy column
// reconciliation happens afterwards, in the schema package, once table
// existence is assured.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	// A single direct connection; the pool is not needed for a one-time
	// startup action.
	conn, err := pgx.Connect(ctx, DSN(cfg))
	if err != nil {
		return fmt.Errorf("connecting for migrations: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	if from == int32(len(m.Migrations)) {
		logger.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}
