package main

import (
	"log"
	"time"

	"github.com/budgetsakkie/price-backend/config"
	"github.com/budgetsakkie/price-backend/handlers"
	"github.com/budgetsakkie/price-backend/jobs"
	"github.com/budgetsakkie/price-backend/middleware"
	"github.com/budgetsakkie/price-backend/retailers"
	"github.com/budgetsakkie/price-backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load config
	cfg := config.LoadConfig()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	// Initialize the two independent caches: one for merged comparison
	// results inside the orchestrator, one for raw HTTP responses at the
	// transport boundary. Their TTLs are configured separately.
	resultCache := services.NewCacheService(cfg.GetResultCacheTTL())
	responseCache := services.NewCacheService(cfg.GetResponseCacheTTL())

	// Assemble the fixed adapter registry and the orchestrator
	adapterConfig := cfg.GetAdapterConfig()
	registry := retailers.DefaultRegistry(cfg.Currency, adapterConfig)
	comparisonService := services.NewComparisonService(registry, resultCache)

	log.Println("Price aggregation services initialized:")
	log.Printf("  - Adapter registry (%d retailers, timeout: %v, max retries: %d)",
		registry.Size(), adapterConfig.AttemptTimeout, adapterConfig.MaxRetries)
	log.Printf("  - Result cache (TTL: %v)", cfg.GetResultCacheTTL())
	log.Printf("  - Response cache (TTL: %v)", cfg.GetResponseCacheTTL())

	// Initialize handlers
	compareHandler := handlers.NewCompareHandler(comparisonService)
	retailerHandler := handlers.NewRetailerHandler(registry)
	cacheHandler := handlers.NewCacheHandler(resultCache, responseCache)
	metricsHandler := handlers.NewMetricsHandler(comparisonService)

	// Start background cache janitor
	cleanupJob := jobs.NewCacheCleanupJob(resultCache, responseCache)
	go func() {
		cleanupTicker := time.NewTicker(12 * time.Hour)
		defer cleanupTicker.Stop()

		for range cleanupTicker.C {
			cleanupJob.Run()
		}
	}()

	// Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().Unix(),
		})
	})

	// Routes
	api := app.Group("/api/v1")

	// Rate limit and response-cache the query path only
	api.Get("/compare",
		limiter.New(limiter.Config{
			Max:        cfg.GetRateLimitPerMinute(),
			Expiration: time.Minute,
		}),
		middleware.NewResponseCache(responseCache),
		compareHandler.CompareItem,
	)

	api.Get("/retailers", retailerHandler.GetRetailers)
	api.Get("/metrics", metricsHandler.GetMetrics)

	// Cache Routes
	api.Get("/cache/stats", cacheHandler.GetCacheStats)
	api.Delete("/cache", cacheHandler.ClearCache)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
