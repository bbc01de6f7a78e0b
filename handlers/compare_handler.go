package handlers

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/budgetsakkie/price-backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// maxItemLength bounds the accepted search term length in runes
const maxItemLength = 100

type CompareHandler struct {
	Service *services.ComparisonService
}

func NewCompareHandler(service *services.ComparisonService) *CompareHandler {
	return &CompareHandler{Service: service}
}

// CompareItem handles GET /api/v1/compare?item=...&location=...
// Validation happens here, before the orchestrator runs; once invoked with a
// valid item the comparison cannot fail, so no error branch exists below it.
func (h *CompareHandler) CompareItem(c *fiber.Ctx) error {
	item := c.Query("item")
	location := c.Query("location")

	if strings.TrimSpace(item) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "query parameter 'item' is required and must not be blank",
			"example": "/api/v1/compare?item=milk",
		})
	}

	if utf8.RuneCountInString(item) > maxItemLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "query parameter 'item' must be at most 100 characters",
			"example": "/api/v1/compare?item=milk",
		})
	}

	startTime := time.Now()
	result := h.Service.Compare(c.Context(), item, location)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
		"meta": fiber.Map{
			"search_term":     result.Item,
			"location":        strings.TrimSpace(location),
			"elapsed_ms":      time.Since(startTime).Milliseconds(),
			"total_retailers": h.Service.Registry().Size(),
			"available_count": result.AvailableCount(),
			"request_id":      uuid.NewString(),
			"timestamp":       time.Now().Unix(),
		},
	})
}
