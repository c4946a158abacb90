//go:build wireinject
// +build wireinject

package injector

import (
	"github.com/dkuaegis/aegis-adminpage/internal/app/deliveries"
	"github.com/dkuaegis/aegis-adminpage/internal/app/middlewares"
	"github.com/dkuaegis/aegis-adminpage/internal/app/services"
	"github.com/dkuaegis/aegis-adminpage/internal/infrastructures"
	"github.com/google/wire"
)

// Infrastructure providers
var infrastructureSet = wire.NewSet(
	infrastructures.NewDatabase,
	infrastructures.NewRedisClient,
	infrastructures.NewValidator,
	infrastructures.NewAegisClient,
	wire.Value("aegis-adminpage"),
	wire.Bind(new(middlewares.RateLimiter), new(*middlewares.RedisRateLimiter)),
	middlewares.NewRedisRateLimiter,
)

// Service providers
var serviceSet = wire.NewSet(
	services.NewAuditService,
	services.NewPointLedgerService,
	services.NewMemberDirectory,
	services.NewRefreshService,
	services.NewPointGrantService,
	services.NewCouponService,
	services.NewFeatureFlagService,
	services.NewMemberService,
	services.NewSessionService,
)

// Middleware providers
var middlewareSet = wire.NewSet(
	provideOperatorKeys,
	middlewares.NewOperatorKeyMiddleware,
	middlewares.NewRateLimitMiddleware,
)

// Handler providers
var handlerSet = wire.NewSet(
	deliveries.NewHealthHandler,
	deliveries.NewPointHandler,
	deliveries.NewCouponHandler,
	deliveries.NewFeatureFlagHandler,
	deliveries.NewMemberHandler,
	wire.Struct(new(Application), "*"),
)

// InitializeApplication assembles the gateway with all its dependencies.
func InitializeApplication() (*Application, error) {
	wire.Build(
		infrastructureSet,
		serviceSet,
		middlewareSet,
		handlerSet,
	)
	return &Application{}, nil
}
