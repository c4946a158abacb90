package injector

import (
	"github.com/dkuaegis/aegis-adminpage/internal/app/deliveries"
	"github.com/dkuaegis/aegis-adminpage/internal/app/middlewares"
	"github.com/dkuaegis/aegis-adminpage/internal/app/services"
	"github.com/dkuaegis/aegis-adminpage/internal/infrastructures"
	"github.com/gofiber/fiber/v2"
)

// Application is the assembled admin gateway.
type Application struct {
	HealthHandler       *deliveries.HealthHandler
	PointHandler        *deliveries.PointHandler
	CouponHandler       *deliveries.CouponHandler
	FeatureFlagHandler  *deliveries.FeatureFlagHandler
	MemberHandler       *deliveries.MemberHandler
	SessionService      *services.SessionService
	RateLimitMiddleware *middlewares.RateLimitMiddleware
}

// RegisterRoutes mounts every console surface on a Fiber router. A broad
// per-IP limit guards the whole surface; mutation routes add their own
// tighter limits.
func (app *Application) RegisterRoutes(router fiber.Router) {
	router.Use(app.RateLimitMiddleware.LimitByIP(middlewares.QueryLimit))

	app.HealthHandler.RegisterRoutes(router)
	app.PointHandler.RegisterRoutes(router)
	app.CouponHandler.RegisterRoutes(router)
	app.FeatureFlagHandler.RegisterRoutes(router)
	app.MemberHandler.RegisterRoutes(router)
}

func provideOperatorKeys() []string {
	return infrastructures.Config.OPERATOR_KEYS
}
