// Package main is the entry point for the Ledgerly API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ledgerly/backend/config"
	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/infra/db"
	"github.com/ledgerly/backend/internal/infra/dependency"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Ledgerly API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"storageDriver", cfg.Storage.Driver,
	)

	// Initialize the key-value storage backend
	kv, storageHealthChecker, cleanup, err := buildKVStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage backend", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Wire dependencies; the store seeds demo data on first run
	injector, err := dependency.NewInjector(context.Background(), cfg, kv, storageHealthChecker)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// buildKVStore selects and initializes the storage backend from config.
func buildKVStore(cfg *config.Config) (adapter.KVStore, func() bool, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		kv, err := db.NewRedisKVStore(&cfg.Redis)
		if err != nil {
			return nil, nil, nil, err
		}
		return kv, func() bool { return true }, func() {}, nil

	case config.StorageDriverMemory:
		return db.NewMemoryKVStore(), func() bool { return true }, func() {}, nil

	default:
		database, err := db.NewConnection(&cfg.Storage)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(&db.StorageEntryModel{}); err != nil {
			return nil, nil, nil, err
		}
		cleanup := func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close storage connection", "error", err)
			}
		}
		return db.NewGormKVStore(database), database.HealthCheck, cleanup, nil
	}
}
