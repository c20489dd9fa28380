package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/athlyze/athlyze/internal/api"
	"github.com/athlyze/athlyze/internal/config"
	"github.com/athlyze/athlyze/internal/db"
	"github.com/athlyze/athlyze/internal/logger"
	"github.com/athlyze/athlyze/internal/posesource"
	"github.com/athlyze/athlyze/internal/profile"
	"github.com/athlyze/athlyze/internal/repository/sqlite"
	"github.com/athlyze/athlyze/internal/services"
	"github.com/athlyze/athlyze/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(cfg.LogColors),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Athlyze Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("analysis_worker_count=%d", cfg.AnalysisWorkerCount)
	log.Debug("analysis_queue_size=%d", cfg.AnalysisQueueSize)
	log.Debug("confidence_threshold=%g", cfg.ConfidenceThreshold)
	log.Debug("max_frames=%d", cfg.MaxFrames)
	log.Debug("profile_dir=%s", cfg.ProfileDir)
	log.Debug("fetch_timeout_seconds=%d", cfg.FetchTimeoutSeconds)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Build the profile registry, with optional overrides from disk
	registry, err := profile.NewRegistry()
	if err != nil {
		log.Error("failed to build profile registry: %v", err)
		os.Exit(1)
	}
	if cfg.ProfileDir != "" {
		applied, err := registry.LoadOverrides(cfg.ProfileDir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Warn("profile override directory %s does not exist, using builtins", cfg.ProfileDir)
			} else {
				log.Error("failed to load profile overrides: %v", err)
				os.Exit(1)
			}
		} else {
			log.Info("applied %d profile override file(s) from %s", applied, cfg.ProfileDir)
		}
	}
	log.Info("serving %d sport profiles", len(registry.Sports()))

	// Initialize worker pool
	analysisPool := worker.NewPool(cfg.AnalysisWorkerCount, cfg.AnalysisQueueSize)

	// Initialize services
	analysisRepo := sqlite.NewAnalysisRepository(database.DB)
	source := posesource.New(time.Duration(cfg.FetchTimeoutSeconds) * time.Second)
	analysisService := services.NewAnalysisService(analysisRepo, registry, analysisPool, source, services.AnalysisConfig{
		DefaultConfidence: cfg.ConfidenceThreshold,
		MaxFrames:         cfg.MaxFrames,
	})
	sportService := services.NewSportService(registry)

	srv := &api.Server{
		DB:              database,
		AnalysisService: analysisService,
		SportService:    sportService,
		AnalysisPool:    analysisPool,
	}

	ctx, cancel := context.WithCancel(context.Background())
	analysisPool.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Cancel worker context
	log.Debug("stopping worker pool")
	cancel()

	// Shutdown HTTP server
	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Wait for workers to finish
	analysisPool.Stop()

	log.Info("===========================================")
	log.Info("Athlyze Server Stopped")
	log.Info("===========================================")
}
