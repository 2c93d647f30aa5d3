package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// steps are applied in order and recorded in schema_migrations; never reorder or edit a shipped step.
var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id             BIGSERIAL   PRIMARY KEY,
  name           TEXT        NOT NULL,
  email          TEXT        NOT NULL UNIQUE,
  phone          TEXT        NOT NULL DEFAULT '',
  password_hash  TEXT        NOT NULL,
  role           TEXT        NOT NULL DEFAULT 'CUSTOMER',
  premium_status BOOLEAN     NOT NULL DEFAULT false,
  premium_expiry DATE,
  avatar_key     TEXT        NOT NULL DEFAULT '',
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at     TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_categories",
		SQL: `CREATE TABLE IF NOT EXISTS categories (
  id   BIGSERIAL PRIMARY KEY,
  name TEXT      NOT NULL UNIQUE
);`,
	},
	{
		Name: "create_table_products",
		SQL: `CREATE TABLE IF NOT EXISTS products (
  id                   BIGSERIAL     PRIMARY KEY,
  name                 TEXT          NOT NULL,
  description          TEXT          NOT NULL DEFAULT '',
  brand                TEXT          NOT NULL DEFAULT '',
  price                NUMERIC(12,2) NOT NULL CHECK (price >= 0),
  original_price       NUMERIC(12,2),
  discount_percent     NUMERIC(5,2)  NOT NULL DEFAULT 0,
  stock_quantity       INTEGER       NOT NULL DEFAULT 0 CHECK (stock_quantity >= 0),
  image_url            TEXT          NOT NULL DEFAULT '',
  image_key            TEXT          NOT NULL DEFAULT '',
  premium_early_access BOOLEAN       NOT NULL DEFAULT false,
  category_id          BIGINT        REFERENCES categories (id),
  created_at           TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_reviews",
		SQL: `CREATE TABLE IF NOT EXISTS reviews (
  id                BIGSERIAL   PRIMARY KEY,
  product_id        BIGINT      NOT NULL REFERENCES products (id) ON DELETE CASCADE,
  user_id           BIGINT      NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  rating            SMALLINT    NOT NULL CHECK (rating BETWEEN 1 AND 5),
  comment           TEXT        NOT NULL DEFAULT '',
  verified_purchase BOOLEAN     NOT NULL DEFAULT false,
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (product_id, user_id)
);`,
	},
	{
		Name: "create_table_premium_subscriptions",
		SQL: `CREATE TABLE IF NOT EXISTS premium_subscriptions (
  id         BIGSERIAL PRIMARY KEY,
  user_id    BIGINT    NOT NULL UNIQUE REFERENCES users (id) ON DELETE CASCADE,
  plan_type  TEXT      NOT NULL,
  start_date DATE      NOT NULL,
  end_date   DATE      NOT NULL,
  active     BOOLEAN   NOT NULL DEFAULT false,
  auto_renew BOOLEAN   NOT NULL DEFAULT false
);`,
	},
	{
		Name: "create_table_cart_items",
		SQL: `CREATE TABLE IF NOT EXISTS cart_items (
  user_id    BIGINT  NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  product_id BIGINT  NOT NULL REFERENCES products (id) ON DELETE CASCADE,
  quantity   INTEGER NOT NULL CHECK (quantity > 0),
  PRIMARY KEY (user_id, product_id)
);`,
	},
	{
		Name: "create_index_reviews_product_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_reviews_product_id ON reviews (product_id);`,
	},
	{
		Name: "create_index_products_category_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_products_category_id ON products (category_id);`,
	},
}

const createLedger = `CREATE TABLE IF NOT EXISTS schema_migrations (
  name       TEXT        PRIMARY KEY,
  applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// EnsureMigrated applies every step not yet recorded in schema_migrations.
// Each step and its ledger row commit together.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *slog.Logger, dbHost string) error {
	start := time.Now()
	log := logger.With("component", "database", "db_host", dbHost)

	log.Info("db_migration_check", "status", "starting")

	if _, err := db.ExecContext(ctx, createLedger); err != nil {
		log.Error("db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to create ledger: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to create migration ledger: %w", err)
	}

	applied := 0
	for _, step := range steps {
		stepStart := time.Now()

		var done bool
		err := db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, step.Name,
		).Scan(&done)
		if err != nil {
			log.Error("db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
			)
			return fmt.Errorf("check migration step %s: %w", step.Name, err)
		}
		if done {
			continue
		}

		if err := applyStep(ctx, db, step); err != nil {
			log.Error("db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		applied++

		log.Info("db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	if applied == 0 {
		log.Info("db_migration_skip",
			"status", "success",
			"detail", "schema up to date",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	log.Info("db_migration_success",
		"status", "success",
		"applied_steps", applied,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func applyStep(ctx context.Context, db *sql.DB, step migrationStep) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, step.SQL); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, step.Name); err != nil {
		return err
	}
	return tx.Commit()
}
