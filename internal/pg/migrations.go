package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/GlebRadaev/taskearn/migrations"
)

// RunMigrations applies pending schema versions over a database/sql view of the pool.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, stdlib.OpenDBFromPool(pool), migrations.Migrations)
	if err != nil {
		return fmt.Errorf("failed to build migration provider: %w", err)
	}
	defer func() {
		if err := provider.Close(); err != nil {
			zap.L().Warn("failed to close migration db", zap.Error(err))
		}
	}()

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	for _, r := range results {
		zap.L().Info("migration applied",
			zap.Int64("version", r.Source.Version),
			zap.String("file", r.Source.Path),
			zap.Duration("took", r.Duration))
	}
	return nil
}
