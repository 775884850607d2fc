package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/MonoCollector_Go/internal/bootstrap"
	"github.com/osse101/MonoCollector_Go/internal/config"
	"github.com/osse101/MonoCollector_Go/internal/database"
	"github.com/osse101/MonoCollector_Go/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	warnings, err := cfg.Validate()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, database.PoolConfigFromConfig(cfg))
	if err != nil {
		return err
	}

	if err := database.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	if err := bootstrap.SyncDefaultCategories(ctx, repos.Category); err != nil {
		dbPool.Close()
		return err
	}

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		dbPool.Close()
		return err
	}

	services := bootstrap.InitializeServices(cfg, repos, publisher)
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:          eventBus,
		CollectionService: services.Collection,
		StatsService:      services.Stats,
	}); err != nil {
		dbPool.Close()
		return err
	}

	srv := server.NewServer(cfg, dbPool, services)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: publisher,
	})
	return nil
}
