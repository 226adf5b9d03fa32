package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davidmoltin/command-center/internal/api/rest"
	"github.com/davidmoltin/command-center/internal/api/rest/handlers"
	customMiddleware "github.com/davidmoltin/command-center/internal/api/rest/middleware"
	"github.com/davidmoltin/command-center/internal/catalog"
	"github.com/davidmoltin/command-center/internal/dashboard"
	"github.com/davidmoltin/command-center/internal/grocery"
	"github.com/davidmoltin/command-center/internal/session"
	"github.com/davidmoltin/command-center/internal/websocket"
	"github.com/davidmoltin/command-center/internal/workers"
	"github.com/davidmoltin/command-center/pkg/config"
	"github.com/davidmoltin/command-center/pkg/database"
	"github.com/davidmoltin/command-center/pkg/logger"
	"github.com/davidmoltin/command-center/pkg/metrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	logger.SetDefault(log)
	log.Info("Starting Command Center API",
		logger.String("name", cfg.App.Name),
		logger.String("version", cfg.App.Version),
		logger.String("environment", cfg.App.Environment),
	)

	m := metrics.New(nil)

	// Initialize Redis (optional)
	redis, err := database.NewRedisClient(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redis.Close()

	var redisHealth handlers.HealthChecker
	if redis != nil {
		redisHealth = redis
	}

	// Initialize the event stream hub
	hub := websocket.NewHub(redis.Raw(), m, log.Logger)
	if err := hub.Start(); err != nil {
		return fmt.Errorf("failed to start websocket hub: %w", err)
	}
	defer hub.Stop()

	// Initialize domain components
	cat := catalog.Default()
	engine := dashboard.NewEngine(cat)
	inventory := grocery.NewInventory(cat.Pantry)

	sessions := session.NewStore(session.Options{
		TTL:          cfg.Session.TTL,
		StartupDelay: cfg.Simulation.WorkflowStartupDelay,
		RCAInterval:  cfg.Simulation.RCAStageInterval,
		Catalog:      cat,
		Sinks:        hub.SessionSink,
		Metrics:      m,
		Logger:       log,
	})
	defer sessions.CloseAll()

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()

	// Initialize and start the idle session reaper
	reaper := workers.NewSessionReaper(sessions, hub.BroadcastSessionExpired, m, log, cfg.Session.ReapInterval)
	reaper.Start(workerCtx)

	limiter := customMiddleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
	go limiter.Cleanup(workerCtx, 10*time.Minute)

	// Initialize handlers
	h := handlers.NewHandlers(log, handlers.Dependencies{
		Engine:           engine,
		Inventory:        inventory,
		Sessions:         sessions,
		Metrics:          m,
		Redis:            redisHealth,
		Version:          cfg.App.Version,
		OnSessionDeleted: hub.BroadcastSessionExpired,
	})

	wsHandler := websocket.NewHandler(hub, func(id string) bool {
		_, err := sessions.Get(id)
		return err == nil
	}, cfg.Server.AllowedOrigins, log.Logger)

	// Initialize router
	router := rest.NewRouter(log, h, wsHandler.HandleWebSocket, m, rest.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		MaxRequestSize: cfg.Server.MaxRequestSize,
		Limiter:        limiter,
	})
	router.SetupRoutes()

	// Create HTTP server
	addr := cfg.Address()
	server := &http.Server{
		Addr:         addr,
		Handler:      router.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("API server listening", logger.String("address", addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", logger.String("signal", sig.String()))

		// Stop background workers first
		reaper.Stop()

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Gracefully shutdown the server
		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
