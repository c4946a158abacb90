package middlewares

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLimiter is an in-memory RateLimiter that records the keys it was asked
// about.
type stubLimiter struct {
	allowed bool
	keys    []string
}

func (s *stubLimiter) Allow(key string, limit Rate) (bool, RateLimitInfo) {
	s.keys = append(s.keys, key)
	return s.allowed, RateLimitInfo{
		Limit:     limit.Requests,
		Remaining: limit.Requests - 1,
		Reset:     time.Now().Add(limit.Window),
	}
}

func (s *stubLimiter) Reset(key string) error {
	return nil
}

func TestLimitByIP_AllowedSetsHeaders(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	middleware := NewRateLimitMiddleware(limiter)

	app := fiber.New()
	app.Get("/ping", middleware.LimitByIP(QueryLimit), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "120", resp.Header.Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Remaining"))

	require.Len(t, limiter.keys, 1)
	assert.Contains(t, limiter.keys[0], "ip:")
}

func TestLimitByIP_Throttled(t *testing.T) {
	limiter := &stubLimiter{allowed: false}
	middleware := NewRateLimitMiddleware(limiter)

	app := fiber.New()
	app.Get("/ping", middleware.LimitByIP(MutationLimit), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestLimitByOperator_PrefersOperatorKey(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	middleware := NewRateLimitMiddleware(limiter)

	app := fiber.New()
	app.Get("/ping",
		func(c *fiber.Ctx) error {
			c.Locals("operator_key", "key-one")
			return c.Next()
		},
		middleware.LimitByOperator(MutationLimit),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, limiter.keys, 1)
	assert.Equal(t, "operator:key-one", limiter.keys[0])
}

func TestLimitByOperator_FallsBackToIP(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	middleware := NewRateLimitMiddleware(limiter)

	app := fiber.New()
	app.Get("/ping", middleware.LimitByOperator(MutationLimit), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, limiter.keys, 1)
	assert.Contains(t, limiter.keys[0], "ip:")
}
