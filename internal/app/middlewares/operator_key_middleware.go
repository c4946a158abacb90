package middlewares

import (
	"crypto/subtle"

	"github.com/dkuaegis/aegis-adminpage/internal/app/errors"
	"github.com/dkuaegis/aegis-adminpage/internal/app/pkg"
	"github.com/gofiber/fiber/v2"
)

// OperatorKeyMiddleware authenticates console operators against the static
// key list from configuration. With no keys configured the guard is disabled,
// which is the local-development mode.
type OperatorKeyMiddleware struct {
	keys []string
}

func NewOperatorKeyMiddleware(keys []string) *OperatorKeyMiddleware {
	return &OperatorKeyMiddleware{
		keys: keys,
	}
}

// RequireOperator checks the X-Operator-Key header. The matched key is stored
// in locals for per-operator rate limiting.
func (m *OperatorKeyMiddleware) RequireOperator(c *fiber.Ctx) error {
	if len(m.keys) == 0 {
		return c.Next()
	}

	presented := c.Get("X-Operator-Key")
	if presented == "" {
		return pkg.ErrorResponse(c, errors.NewUnauthorizedError("운영자 키가 필요합니다."))
	}

	for _, key := range m.keys {
		if len(key) == len(presented) && subtle.ConstantTimeCompare([]byte(key), []byte(presented)) == 1 {
			c.Locals("operator_key", key)
			return c.Next()
		}
	}

	return pkg.ErrorResponse(c, errors.NewUnauthorizedError("운영자 키가 올바르지 않습니다."))
}
