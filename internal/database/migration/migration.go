package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_cards",
		SQL: `CREATE TABLE IF NOT EXISTS cards (
  id                     BIGSERIAL     PRIMARY KEY,
  card_id                TEXT          NOT NULL UNIQUE,
  player_card_name       TEXT          NOT NULL,
  year                   TEXT,
  set_name               TEXT,
  card_type              TEXT,
  sport                  TEXT,
  card_number            TEXT,
  serial_number          TEXT,
  condition_purchased    TEXT,
  cost                   NUMERIC(12,2) CHECK (cost >= 0),
  source                 TEXT,
  seller_name            TEXT,
  listing_link           TEXT,
  purchase_date          DATE,
  status                 TEXT          NOT NULL DEFAULT 'Purchased',
  grading_company        TEXT,
  grading_cost           NUMERIC(12,2) CHECK (grading_cost >= 0),
  grade                  TEXT,
  grading_submitted_date DATE,
  grading_returned_date  DATE,
  selling_platform       TEXT,
  price                  NUMERIC(12,2) CHECK (price >= 0),
  sale_date              DATE,
  photo_links            TEXT,
  notes                  TEXT,
  days_to_grade          INTEGER,
  days_to_sell           INTEGER,
  profit_loss            NUMERIC(14,2),
  created_at             TIMESTAMPTZ   NOT NULL DEFAULT now(),
  updated_at             TIMESTAMPTZ
);`,
	},
	{
		Name: "create_index_cards_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_cards_created_at ON cards (created_at DESC, id DESC);`,
	},
	{
		Name: "create_index_cards_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_cards_status ON cards (status);`,
	},
	{
		Name: "create_index_cards_player_card_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_cards_player_card_name ON cards (lower(player_card_name));`,
	},
}

// EnsureMigrated checks if the 'cards' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass('public.cards') IS NOT NULL").Scan(&exists)
	if err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("reason", "schema already exists"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}
