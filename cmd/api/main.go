package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"superviseme/infrastructure/config"
	"superviseme/infrastructure/di"
	"superviseme/infrastructure/persistence/jsonfile"
	"superviseme/interfaces/http/rest"
)

func main() {
	// Initialize context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env if present (local development convenience)
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize dependency container
	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// The server is useless without a dataset; a failed first load is fatal
	if err := loadDataset(ctx, container); err != nil {
		container.Logger.Fatal("Initial dataset load failed",
			zap.String("path", cfg.DatasetPath),
			zap.Error(err),
		)
	}

	// Hot reload on dataset file changes
	var watcher *jsonfile.DatasetWatcher
	if cfg.DatasetWatch {
		watcher, err = jsonfile.NewDatasetWatcher(cfg.DatasetPath, func() {
			if err := loadDataset(ctx, container); err != nil {
				container.Logger.Error("Dataset reload failed, keeping previous data", zap.Error(err))
			}
		}, container.Logger)
		if err != nil {
			container.Logger.Warn("Dataset watcher unavailable, hot reload disabled", zap.Error(err))
		}
	}

	// Create router
	router := rest.NewRouter(
		cfg,
		container.CommandBus,
		container.QueryBus,
		container.Sessions,
		container.State,
		container.Metrics,
		container.RateLimiter,
		container.Logger,
	)

	// Setup routes
	handler := router.Setup()

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		container.Logger.Info("Starting server",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", cfg.Environment),
			zap.String("dataset", cfg.DatasetPath),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	container.Logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Server shutdown error", zap.Error(err))
	}

	if watcher != nil {
		watcher.Stop()
	}
	container.Sessions.Stop()

	// Clean up resources
	if err := container.Logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	log.Println("Server stopped")
}

// loadDataset reads the dataset from disk, rebuilds the index and swaps it
// into the shared state. Cached query results are dropped afterwards so
// stats and overlap responses never outlive the index they were derived
// from.
func loadDataset(ctx context.Context, container *di.Container) error {
	records, err := container.Repository.LoadRecords(ctx)
	if err != nil {
		container.Metrics.DatasetReloads.WithLabelValues("error").Inc()
		return err
	}

	if err := container.State.Reload(records); err != nil {
		container.Metrics.DatasetReloads.WithLabelValues("error").Inc()
		return err
	}

	container.Metrics.DatasetReloads.WithLabelValues("success").Inc()
	container.Metrics.DatasetRecords.Set(float64(container.State.RecordCount()))
	container.Metrics.DatasetClusters.Set(float64(len(container.State.Index())))

	if err := container.Cache.Clear(ctx); err != nil {
		container.Logger.Warn("Cache clear failed after reload", zap.Error(err))
	}
	return nil
}
