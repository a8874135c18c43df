// Package database provides the PostgreSQL client and schema bootstrap.
package database

import (
	"context"
	stdsql "database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/recollect-ai/recollect/ent"

	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
)

// Client wraps the Ent client and exposes the underlying *sql.DB for
// health checks, NOTIFY transactions, and raw DDL.
type Client struct {
	*ent.Client
	db *stdsql.DB
}

// DB returns the underlying database connection.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// NewClientFromEnt wraps an existing Ent client (useful for testing)
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB) *Client {
	return &Client{
		Client: entClient,
		db:     db,
	}
}

// NewClient opens a pooled connection, runs schema migration, and applies
// the bootstrap DDL Ent cannot express.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	db, err := stdsql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Ent rides on the shared pool; pgx handles the actual connection.
	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	if err := Migrate(ctx, entClient, db); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Client{
		Client: entClient,
		db:     db,
	}, nil
}

// Migrate applies the Ent-generated schema plus the bootstrap statements.
// Exposed separately so tests can run it against a container database.
func Migrate(ctx context.Context, entClient *ent.Client, db *stdsql.DB) error {
	if err := entClient.Schema.Create(ctx); err != nil {
		return fmt.Errorf("ent schema create: %w", err)
	}
	return applyBootstrapDDL(ctx, db)
}

// applyBootstrapDDL creates the constraints Ent's migration engine does not
// cover: the partial unique index guaranteeing at most one in-progress
// session per recall set, and the case-insensitive uniqueness of set names.
func applyBootstrapDDL(ctx context.Context, db *stdsql.DB) error {
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS study_sessions_one_in_progress
		 ON study_sessions (recall_set_id)
		 WHERE status = 'in_progress'`,
		`CREATE UNIQUE INDEX IF NOT EXISTS recall_sets_name_ci
		 ON recall_sets (lower(name))`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap DDL: %w", err)
		}
	}
	return nil
}
