package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	dbfs "github.com/aknur/careadmin/db"
	"github.com/aknur/careadmin/internal/config"
	"github.com/aknur/careadmin/internal/db"
	"github.com/aknur/careadmin/internal/seed"
	"github.com/aknur/careadmin/web"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	// Optional .env for local development.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	web.SetLogger(logger)

	logger.Info("starting careadmin", "version", version, "built_at", buildTime)

	ctx := context.Background()

	database, err := db.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if cfg.SeedOnStart {
		empty, err := seed.Empty(ctx, database)
		if err != nil {
			log.Fatalf("Failed to inspect database: %v", err)
		}
		if empty {
			stats := seed.Replay(ctx, database, dbfs.SeedScript(), logger)
			logger.Info("seeded database",
				"executed", stats.Executed,
				"failed", stats.Failed,
				"skipped", stats.Skipped)
		}
	}

	handler := web.SetupRoutes(cfg, version, buildTime, database)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := database.Close(); err != nil {
		logger.Error("error closing DB", "error", err)
	}

	logger.Info("server exited")
}
