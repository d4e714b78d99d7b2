package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"taskhub-api/internal/database/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// MigratePostgres applies the embedded postgres migrations through the pool.
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return migrate(ctx, db, goose.DialectPostgres, "postgres", logger)
}

// MigrateSQLite applies the embedded sqlite migrations.
func MigrateSQLite(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	return migrate(ctx, db, goose.DialectSQLite3, "sqlite", logger)
}

func migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect, dir string, logger *zap.Logger) error {
	fsys, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return fmt.Errorf("open %s migrations: %w", dir, err)
	}
	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply %s migrations: %w", dir, err)
	}
	for _, r := range results {
		logger.Info("applied migration", zap.String("source", r.Source.Path), zap.Duration("duration", r.Duration))
	}
	return nil
}
