package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"mindwell-backend/internal/config"
	"mindwell-backend/internal/infrastructure/observability"
	"mindwell-backend/internal/infrastructure/persistence/memory"
	supabasestore "mindwell-backend/internal/infrastructure/persistence/supabase"
	apphttp "mindwell-backend/internal/interfaces/http"
	"mindwell-backend/internal/repository"
	"mindwell-backend/internal/service/journal"
	"mindwell-backend/internal/service/mood"
	"mindwell-backend/internal/service/progress"
)

const serviceName = "mindwell-api"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	collector := observability.NewCollector("mindwell")

	// Select the backing store
	var store repository.Store
	var authClient *supabase.Client
	if cfg.UseSupabase() {
		sb, err := supabasestore.New(cfg.Supabase.URL, cfg.Supabase.ServiceRoleKey, collector, logger)
		if err != nil {
			logger.Fatal("Failed to create store", zap.Error(err))
		}
		store = sb
		authClient = sb.Client()
	} else {
		logger.Warn("No store configured, using in-memory store")
		store = memory.NewStore()
	}

	// Wire services
	progressService := progress.NewService(store, store, store, store, logger)
	moodService := mood.NewService(store, logger)
	journalService := journal.NewService(store, logger)

	// Distributed tracing is on only when an OTLP endpoint is configured
	if cfg.Tracing.Endpoint != "" {
		tp, err := observability.InitTracing(serviceName, cfg.Environment, cfg.Tracing.Endpoint)
		if err != nil {
			logger.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				logger.Error("Tracer shutdown error", zap.Error(err))
			}
		}()
	}

	// Hot-reload feature flags when a config file is in play
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if watcher := startConfigWatcher(path, cfg, logger); watcher != nil {
			defer func() { _ = watcher.Close() }()
		}
	}

	router := apphttp.NewRouter(cfg, store, progressService, moodService, journalService, authClient, collector, logger)
	handler := router.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			zap.String("address", srv.Addr),
			zap.String("environment", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	log.Println("Server stopped")
}

// startConfigWatcher wires feature-flag hot reload. The watcher's event loop
// runs on its own goroutine so startup never waits on it; a nil return means
// the watcher could not be created and the server runs without reloads.
func startConfigWatcher(path string, cfg *config.Config, logger *zap.Logger) *config.Watcher {
	watcher, err := config.NewWatcher(path, logger, func(next *config.Config) {
		cfg.Features = next.Features
		logger.Info("Feature flags reloaded",
			zap.Bool("metrics", cfg.Features.EnableMetrics),
			zap.Bool("circuitBreaker", cfg.Features.EnableCircuitBreaker))
	})
	if err != nil {
		logger.Warn("Config watcher unavailable", zap.Error(err))
		return nil
	}
	go watcher.Start()
	return watcher
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
