package database

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies every pending embedded migration
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	return RunMigrations(ctx, pool, MigrateUp)
}

// RunMigrations runs a goose command ("up", "down", "status", "reset", "version")
// against the embedded migrations.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, command string) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect(MigrationDialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.RunContext(ctx, command, db, MigrationsDir); err != nil {
		return fmt.Errorf("%s (%s): %w", ErrMsgFailedToMigrate, command, err)
	}
	return nil
}

// gooseLogger routes goose output through slog
type gooseLogger struct{}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Default().Error(fmt.Sprintf(format, v...))
}

func (gooseLogger) Printf(format string, v ...interface{}) {
	slog.Default().Info(fmt.Sprintf(format, v...), "component", "migrations")
}
