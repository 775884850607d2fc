package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/MonoCollector_Go/internal/config"
	"github.com/osse101/MonoCollector_Go/internal/database"
	"github.com/osse101/MonoCollector_Go/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case database.MigrateUp, database.MigrateDown, database.MigrateStatus, database.MigrateReset, database.MigrateVersion:
	default:
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration failed: %v\n", err)
		os.Exit(1)
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false))

	ctx := context.Background()
	pool, err := database.NewPool(ctx, database.PoolConfigFromConfig(cfg))
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool, command); err != nil {
		slog.Error("Migration failed", "command", command, "error", err)
		pool.Close()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: migrate <command>")
	fmt.Println("Commands:")
	fmt.Println("  up       Apply all pending migrations")
	fmt.Println("  down     Roll back the latest migration")
	fmt.Println("  status   Show the state of every migration")
	fmt.Println("  reset    Roll back all migrations")
	fmt.Println("  version  Print the current schema version")
}
