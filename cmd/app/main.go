package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mlavell/sproutlog/internal/calendar"
	"github.com/mlavell/sproutlog/internal/config"
	"github.com/mlavell/sproutlog/internal/database"
	"github.com/mlavell/sproutlog/internal/database/postgres"
	"github.com/mlavell/sproutlog/internal/event"
	"github.com/mlavell/sproutlog/internal/handler"
	"github.com/mlavell/sproutlog/internal/journal"
	"github.com/mlavell/sproutlog/internal/planting"
	"github.com/mlavell/sproutlog/internal/seed"
	"github.com/mlavell/sproutlog/internal/server"
	"github.com/mlavell/sproutlog/internal/wiki"
)

const shutdownTimeout = 10 * time.Second

// @title Sproutlog API
// @version 1.0
// @description Garden inventory, planting calendar and journal service.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	pool, err := database.NewPool(context.Background(), cfg.GetDBConnString(), database.Options{
		MaxConns:        int32(cfg.DBMaxConns),
		MaxConnLifetime: cfg.DBConnMaxLifetime,
		MaxConnIdleTime: cfg.DBConnMaxIdleTime,
	})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Repositories
	seedRepo := postgres.NewSeedRepository(pool)
	plantingRepo := postgres.NewPlantingRepository(pool)
	journalRepo := postgres.NewJournalRepository(pool)
	wikiRepo := postgres.NewWikiRepository(pool)

	// Event bus wires plantings to the journal and both to cache invalidation
	bus := event.NewMemoryBus()

	// Services
	seedService := seed.NewService(seedRepo, bus)
	plantingService := planting.NewService(plantingRepo, seedRepo, bus)
	journalService := journal.NewService(journalRepo, seedRepo)
	calendarService := calendar.NewService(plantingRepo, seedRepo, cfg.CalendarCacheSize, cfg.CalendarCacheTTL)
	wikiService := wiki.NewService(wikiRepo)

	journalService.RegisterEventHandlers(bus)
	calendarService.RegisterEventHandlers(bus)

	srv := server.NewServer(cfg.Port, cfg.APIKey, pool, seedService, plantingService, calendarService, journalService, wikiService)

	// Run the server until interrupted
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(ctx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}
