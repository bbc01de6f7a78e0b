package middleware

import (
	"strconv"

	"github.com/budgetsakkie/price-backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// cachedResponse is the stored shape of one previously emitted HTTP response
type cachedResponse struct {
	Body        []byte
	StatusCode  int
	ContentType string
}

// NewResponseCache returns a Fiber middleware that caches successful GET
// responses keyed by the request's full path plus query string, verbatim.
// A fresh hit short-circuits the handler chain and replays the stored body
// with X-Cache: HIT and the entry age in seconds; a miss forwards the
// request and stores the outbound body exactly once, tagged X-Cache: MISS.
//
// This cache is intentionally independent of the result cache inside the
// orchestrator; the two have separate keys and separately configured TTLs.
func NewResponseCache(cache *services.CacheService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet {
			return c.Next()
		}

		key := c.Path()
		if queryString := string(c.Request().URI().QueryString()); queryString != "" {
			key += "?" + queryString
		}

		if cached, age, found := cache.GetWithAge(key); found {
			if response, ok := cached.(*cachedResponse); ok {
				logrus.WithFields(logrus.Fields{
					"component": "ResponseCache",
					"key":       key,
					"age":       age,
				}).Debug("Serving cached response")

				c.Set("X-Cache", "HIT")
				c.Set("X-Cache-Age", strconv.Itoa(int(age.Seconds())))
				c.Set(fiber.HeaderContentType, response.ContentType)
				return c.Status(response.StatusCode).Send(response.Body)
			}
		}

		if err := c.Next(); err != nil {
			return err
		}

		statusCode := c.Response().StatusCode()
		if statusCode == fiber.StatusOK {
			// fasthttp reuses response buffers, so the body must be copied
			// before it outlives this request.
			body := make([]byte, len(c.Response().Body()))
			copy(body, c.Response().Body())

			cache.Set(key, &cachedResponse{
				Body:        body,
				StatusCode:  statusCode,
				ContentType: string(c.Response().Header.ContentType()),
			})
		}

		c.Set("X-Cache", "MISS")
		return nil
	}
}
