package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	httpAdapter "github.com/qkitzero/github-contribution-growth-graph/internal/adapters/primary/http"
	mw "github.com/qkitzero/github-contribution-growth-graph/internal/adapters/primary/http/middleware"
	chartAdapter "github.com/qkitzero/github-contribution-growth-graph/internal/adapters/secondary/chart"
	githubAdapter "github.com/qkitzero/github-contribution-growth-graph/internal/adapters/secondary/github"
	"github.com/qkitzero/github-contribution-growth-graph/internal/config"
	"github.com/qkitzero/github-contribution-growth-graph/internal/core/services"
	"github.com/qkitzero/github-contribution-growth-graph/internal/infrastructure/logging"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize Structured Logger
	logger := logging.NewLogger(logging.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Output:      os.Stdout,
		ServiceName: cfg.App.Name,
		Environment: cfg.App.Environment,
	})

	logger.Info("starting service",
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	// 3. Initialize Rate Limiter
	var rateLimiter *mw.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = mw.NewRateLimiter(mw.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstSize:         cfg.RateLimit.BurstSize,
			CleanupInterval:   time.Minute,
			TTL:               3 * time.Minute,
		})
	}

	// 4. Dependency Injection (Wiring the Hexagon)

	// Error Handler
	errorHandler := httpAdapter.NewErrorHandler(logger)

	// Secondary Adapters
	githubClient := githubAdapter.NewClient(cfg.GitHub, logger)
	renderer := chartAdapter.NewRenderer(logger)

	// Services (Core)
	coordinator := services.NewFetchCoordinator(githubClient, services.FetchCoordinatorConfig{
		PageRPS:   cfg.GitHub.PageRPS,
		PageBurst: cfg.GitHub.PageBurst,
		MaxPages:  cfg.GitHub.MaxPages,
	}, logger)
	graphService := services.NewGraphService(coordinator, renderer, services.SystemClock{}, logger)

	// Handlers (Primary Adapters)
	graphHandler := httpAdapter.NewGraphHandler(graphService, errorHandler, logger)
	healthHandler := httpAdapter.NewHealthHandler(cfg.App.Version)

	// 5. Setup Router
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.RequestID)
	r.Use(mw.RequestLogger(logger))
	r.Use(mw.RecoveryLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.App.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet},
	}))

	// Apply rate limiting if enabled
	if rateLimiter != nil {
		r.Use(rateLimiter.Middleware)
	}

	// Health check endpoints
	r.Get("/health", healthHandler.HandleHealth)
	r.Get("/health/live", healthHandler.HandleLiveness)
	r.Get("/health/ready", healthHandler.HandleReadiness)

	// Graph routes
	r.Route("/graphs", graphHandler.RegisterRoutes)

	// 6. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", "signal", sig.String())

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server shutdown complete")
}
