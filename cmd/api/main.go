// ABOUTME: Main entry point for the Clipper API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clipper-app-api/api"
	"clipper-app-api/api/handlers"
	"clipper-app-api/core/adapters"
	"clipper-app-api/core/extract"
	"clipper-app-api/core/interfaces"
	"clipper-app-api/core/services"
	"clipper-app-api/infrastructure/cache/memory"
	"clipper-app-api/infrastructure/cache/redis"
	stdhttp "clipper-app-api/infrastructure/http/standard"
	logruslogger "clipper-app-api/infrastructure/logger/logrus"
	stdlogger "clipper-app-api/infrastructure/logger/standard"
	"clipper-app-api/infrastructure/snapshot"
	"clipper-app-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	var logger interfaces.Logger
	if cfg.Log.Format == "text" {
		logger = stdlogger.NewStandardLogger()
	} else {
		logger = logruslogger.NewLogrusLogger(cfg.Log.Level)
	}
	logger.Info("Starting Clipper API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"rate_limit": cfg.Server.RateLimitPerMinute,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache()
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create services
	cacheTTL := time.Duration(cfg.Extraction.CacheTTLSeconds) * time.Second
	extractionService := extract.NewService(
		adapters.NewDefaultRegistry(),
		extract.NewResultCache(cacheTTL),
		logger,
	)
	fetcher := snapshot.NewFetcher(time.Duration(cfg.Extraction.FetchTimeoutSeconds)*time.Second, logger)
	inliner := services.NewImageInlineService(deps, cfg.Extraction.ImageInlineMaxBytes)

	// Create handlers and router
	extractHandler := handlers.NewExtractHandler(extractionService, fetcher, inliner, deps, cacheTTL)
	router := api.NewRouter(api.Config{
		Logger:             logger,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
	}, extractHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
