package handlers

import (
	"github.com/budgetsakkie/price-backend/services"
	"github.com/gofiber/fiber/v2"
)

type MetricsHandler struct {
	Service *services.ComparisonService
}

func NewMetricsHandler(service *services.ComparisonService) *MetricsHandler {
	return &MetricsHandler{Service: service}
}

// GetMetrics returns a snapshot of the orchestrator's service metrics
func (h *MetricsHandler) GetMetrics(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.Service.Metrics().GetSnapshot(),
	})
}
