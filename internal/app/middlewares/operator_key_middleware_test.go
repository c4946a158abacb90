package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOperatorApp(keys []string) *fiber.App {
	app := fiber.New()
	middleware := NewOperatorKeyMiddleware(keys)
	app.Get("/guarded", middleware.RequireOperator, func(c *fiber.Ctx) error {
		key, _ := c.Locals("operator_key").(string)
		return c.SendString(key)
	})
	return app
}

func TestRequireOperator_NoKeysDisablesGuard(t *testing.T) {
	app := newOperatorApp(nil)

	req := httptest.NewRequest("GET", "/guarded", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireOperator_MissingKey(t *testing.T) {
	app := newOperatorApp([]string{"key-one"})

	req := httptest.NewRequest("GET", "/guarded", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireOperator_WrongKey(t *testing.T) {
	app := newOperatorApp([]string{"key-one"})

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("X-Operator-Key", "key-two")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireOperator_MatchedKeyStoredInLocals(t *testing.T) {
	app := newOperatorApp([]string{"key-one", "key-two"})

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("X-Operator-Key", "key-two")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := make([]byte, 16)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "key-two", string(body[:n]))
}
