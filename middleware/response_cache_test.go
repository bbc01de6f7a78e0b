package middleware

import (
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/budgetsakkie/price-backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingHandler struct {
	mu    sync.Mutex
	calls int
}

func (h *countingHandler) handle(c *fiber.Ctx) error {
	h.mu.Lock()
	h.calls++
	n := h.calls
	h.mu.Unlock()

	return c.JSON(fiber.Map{"call": n})
}

func (h *countingHandler) callCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

func newTestApp(ttl time.Duration) (*fiber.App, *countingHandler, *services.CacheService) {
	cache := services.NewCacheService(ttl)
	handler := &countingHandler{}

	app := fiber.New()
	app.Get("/api/v1/compare", NewResponseCache(cache), handler.handle)

	return app, handler, cache
}

func TestResponseCacheMissThenHit(t *testing.T) {
	app, handler, _ := newTestApp(time.Minute)

	first, err := app.Test(httptest.NewRequest("GET", "/api/v1/compare?item=milk", nil))
	require.NoError(t, err)
	assert.Equal(t, "MISS", first.Header.Get("X-Cache"))
	firstBody, _ := io.ReadAll(first.Body)

	second, err := app.Test(httptest.NewRequest("GET", "/api/v1/compare?item=milk", nil))
	require.NoError(t, err)
	assert.Equal(t, "HIT", second.Header.Get("X-Cache"))
	assert.NotEmpty(t, second.Header.Get("X-Cache-Age"))
	secondBody, _ := io.ReadAll(second.Body)

	// The stored body is replayed verbatim and the handler runs only once
	assert.Equal(t, string(firstBody), string(secondBody))
	assert.Equal(t, 1, handler.callCount())
}

func TestResponseCacheKeysIncludeQueryString(t *testing.T) {
	app, handler, _ := newTestApp(time.Minute)

	respMilk, err := app.Test(httptest.NewRequest("GET", "/api/v1/compare?item=milk", nil))
	require.NoError(t, err)
	assert.Equal(t, "MISS", respMilk.Header.Get("X-Cache"))

	respBread, err := app.Test(httptest.NewRequest("GET", "/api/v1/compare?item=bread", nil))
	require.NoError(t, err)
	assert.Equal(t, "MISS", respBread.Header.Get("X-Cache"))

	assert.Equal(t, 2, handler.callCount())
}

func TestResponseCacheExpiry(t *testing.T) {
	app, handler, _ := newTestApp(30 * time.Millisecond)

	_, err := app.Test(httptest.NewRequest("GET", "/api/v1/compare?item=milk", nil))
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/compare?item=milk", nil))
	require.NoError(t, err)
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))
	assert.Equal(t, 2, handler.callCount())
}

func TestResponseCacheIndependentOfResultCacheSemantics(t *testing.T) {
	// The middleware owns its cache instance outright; flushing it has no
	// effect beyond the transport boundary.
	app, handler, cache := newTestApp(time.Minute)

	_, err := app.Test(httptest.NewRequest("GET", "/api/v1/compare?item=milk", nil))
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Size())

	cache.Clear()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/compare?item=milk", nil))
	require.NoError(t, err)
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))
	assert.Equal(t, 2, handler.callCount())
}

func TestResponseCacheSkipsNonGetRequests(t *testing.T) {
	cache := services.NewCacheService(time.Minute)
	handler := &countingHandler{}

	app := fiber.New()
	app.Post("/api/v1/cache", NewResponseCache(cache), handler.handle)

	_, err := app.Test(httptest.NewRequest("POST", "/api/v1/cache", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("POST", "/api/v1/cache", nil))
	require.NoError(t, err)

	assert.Equal(t, 2, handler.callCount())
	assert.Equal(t, 0, cache.Size())
}

func TestResponseCacheDoesNotStoreErrorResponses(t *testing.T) {
	cache := services.NewCacheService(time.Minute)

	app := fiber.New()
	app.Get("/api/v1/compare", NewResponseCache(cache), func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/compare", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))
	assert.Equal(t, 0, cache.Size())
}
