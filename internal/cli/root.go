// Package cli wires the cardtracker commands: serve, migrate and stats.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cardtracker/internal/config"
	"cardtracker/internal/database"
	"cardtracker/internal/logger"
)

// NewRootCommand builds the command tree. Configuration is read from the environment once per run.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "cardtracker",
		Short:         "cardtracker tracks a trading card inventory from purchase through grading to sale.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newMigrateCommand(), newStatsCommand())
	return root
}

// env bundles what every command needs before doing its own work.
type env struct {
	cfg *config.AppConfig
	log *zap.Logger
	db  *sql.DB
}

func (e *env) Close() {
	if e.db != nil {
		_ = e.db.Close()
	}
	_ = e.log.Sync()
}

func bootstrap(ctx context.Context) (*env, error) {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.Location())
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		log.Error("db_connect_failed", zap.String("db_host", cfg.Database.Host), zap.Error(err))
		_ = log.Sync()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return &env{cfg: cfg, log: log, db: db}, nil
}
