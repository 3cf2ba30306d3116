package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"intent-router/config"
	_ "intent-router/docs" // Swagger docs
	classifierHTTP "intent-router/internal/classifier/delivery/http"
	"intent-router/internal/classifier/usecase"
	"intent-router/internal/httpserver"
	"intent-router/internal/metrics"
	"intent-router/internal/middleware"
	"intent-router/pkg/log"
)

// @title       Intent Router API
// @description Embedding-based intent classification and routing for member-services conversations.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Intent Router...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	var (
		recorder       usecase.Recorder
		httpRecorder   middleware.HTTPRecorder
		metricsHandler http.Handler
	)
	if cfg.Metrics.Enabled {
		exporter := metrics.New(metrics.DefaultConfig())
		recorder, httpRecorder, metricsHandler = exporter, exporter, exporter.Handler()
		logger.Info(ctx, "Prometheus metrics enabled at /metrics")
	}

	// 4. Classification pipeline
	uc, err := usecase.Bootstrap(ctx, cfg, logger, recorder)
	if err != nil {
		logger.Error(ctx, "Failed to build classification pipeline: ", err)
		return
	}
	if cfg.Session.IdleTTL > 0 {
		go uc.RunSessionSweep(ctx)
		logger.Infof(ctx, "Session sweep every %s, idle ttl %s", cfg.Session.SweepInterval, cfg.Session.IdleTTL)
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		ClassifierHandler: classifierHTTP.New(logger, uc, cfg.Classifier.ContextAwareDefault),
		Health:            uc,
		Middleware:        middleware.New(logger, cfg.RateLimit, httpRecorder),
		MetricsHandler:    metricsHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
