package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arkanhaq/contenthub/internal/config"
	"github.com/arkanhaq/contenthub/internal/database"
	"github.com/arkanhaq/contenthub/internal/logger"
	"github.com/arkanhaq/contenthub/internal/schema"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run migrations and column reconciliation, then exit",
	Long: `Migrate applies the embedded schema migrations and reconciles legacy
column names, without starting the HTTP server. Useful in deploy
pipelines that migrate before rolling instances.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Primary.Env, cfg.Primary.LogLevel)

	ctx := cmd.Context()
	if err := database.Migrate(ctx, &log, cfg); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	db, err := database.New(cfg, &log)
	if err != nil {
		return err
	}
	defer db.Close()

	outcomes := schema.ReconcileAll(ctx, db.Pool, &log, schema.Directives())

	degraded := 0
	for _, outcome := range outcomes {
		if outcome.Degraded() {
			degraded++
		}
	}
	if degraded > 0 {
		return fmt.Errorf("reconciliation left %d of %d directives degraded", degraded, len(outcomes))
	}

	log.Info().Int("directives", len(outcomes)).Msg("database ready")
	return nil
}
