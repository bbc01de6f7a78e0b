package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/budgetsakkie/price-backend/config"
	"github.com/budgetsakkie/price-backend/retailers"
	"github.com/budgetsakkie/price-backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRetailersReturnsRegistryMetadata(t *testing.T) {
	registry := retailers.DefaultRegistry("ZAR", config.DefaultAdapterConfig())
	handler := NewRetailerHandler(registry)

	app := fiber.New()
	app.Get("/api/v1/retailers", handler.GetRetailers)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/retailers", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(5), body["count"])

	list, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, 5)

	first, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "checkers", first["id"])
	assert.Equal(t, "Checkers", first["name"])
	assert.Equal(t, "active", first["status"])
}

func TestCacheStatsAndClear(t *testing.T) {
	resultCache := services.NewCacheService(time.Minute)
	responseCache := services.NewCacheService(time.Minute)
	handler := NewCacheHandler(resultCache, responseCache)

	resultCache.Set("milk-default", "cached")

	app := fiber.New()
	app.Get("/api/v1/cache/stats", handler.GetCacheStats)
	app.Delete("/api/v1/cache", handler.ClearCache)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/cache/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	resultStats, ok := data["result_cache"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), resultStats["entries"])

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/v1/cache", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, resultCache.Size())
	assert.Equal(t, 0, responseCache.Size())
}
