package handlers

import (
	"github.com/budgetsakkie/price-backend/retailers"
	"github.com/gofiber/fiber/v2"
)

type RetailerHandler struct {
	Registry *retailers.Registry
}

func NewRetailerHandler(registry *retailers.Registry) *RetailerHandler {
	return &RetailerHandler{Registry: registry}
}

// GetRetailers returns the registry's static identity metadata. No
// aggregation is involved.
func (h *RetailerHandler) GetRetailers(c *fiber.Ctx) error {
	list := h.Registry.Retailers()
	return c.JSON(fiber.Map{
		"success": true,
		"data":    list,
		"count":   len(list),
	})
}
