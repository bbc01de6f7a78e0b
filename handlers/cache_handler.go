package handlers

import (
	"github.com/budgetsakkie/price-backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// CacheHandler exposes inspection and flush operations over the two cache
// instances (comparison results and HTTP responses).
type CacheHandler struct {
	ResultCache   *services.CacheService
	ResponseCache *services.CacheService
}

func NewCacheHandler(resultCache, responseCache *services.CacheService) *CacheHandler {
	return &CacheHandler{
		ResultCache:   resultCache,
		ResponseCache: responseCache,
	}
}

// GetCacheStats returns hit/miss counters and entry counts for both caches
func (h *CacheHandler) GetCacheStats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"result_cache":   h.ResultCache.Stats(),
			"response_cache": h.ResponseCache.Stats(),
		},
	})
}

// ClearCache flushes both caches
func (h *CacheHandler) ClearCache(c *fiber.Ctx) error {
	h.ResultCache.Clear()
	h.ResponseCache.Clear()
	logrus.Info("Caches cleared via admin endpoint")

	return c.JSON(fiber.Map{
		"success": true,
		"message": "caches cleared",
	})
}
