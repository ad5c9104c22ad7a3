package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/copyleftdev/benchfn/internal/config"
	"github.com/copyleftdev/benchfn/internal/logging"
	"github.com/copyleftdev/benchfn/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Use standard logger as fallback if config loading fails
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize base logger
	logger, err := logging.NewLogger(&logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Create a service logger with additional fields
	serviceLogger := logger.WithFields(map[string]interface{}{
		"service":     "benchfn",
		"version":     config.GetEnv("BENCHFN_VERSION", "dev"),
		"environment": cfg.Environment,
	})

	// Metrics live in their own registry so tests and the binary don't
	// collide on the global one
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := server.NewMetrics(reg)

	// Create router
	r := chi.NewRouter()

	// Add middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(serviceLogger))

	// Error handling and recovery
	r.Use(server.RecoveryMiddleware(serviceLogger, metrics.Panics.Inc))
	r.Use(server.ErrorHandler(serviceLogger))

	// Timeout and other standard middleware
	r.Use(middleware.Timeout(cfg.HTTP.RequestTimeout))

	// Add health check endpoint
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Debug("Health check")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Add metrics endpoint
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := server.NewServer(cfg, serviceLogger.Named("server"), metrics)
	srv.RegisterRoutes(r)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		ErrorLog:     zap.NewStdLog(serviceLogger.Zap()),
	}

	// Start HTTP server
	go func() {
		serviceLogger.Info("Starting server", map[string]interface{}{
			"address":            httpServer.Addr,
			"max_dimensionality": cfg.Benchmark.MaxDimensionality,
			"cache_size":         cfg.Benchmark.CacheSize,
		})

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serviceLogger.Fatal("Failed to start server", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	serviceLogger.Info("Shutting down server...")

	// Create a deadline to wait for
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		serviceLogger.Error("Server forced to shutdown", map[string]interface{}{"error": err})
	}

	if err := srv.Close(); err != nil {
		serviceLogger.Error("error closing server resources", map[string]interface{}{"error": err})
	}

	serviceLogger.Info("server exited properly")
}
