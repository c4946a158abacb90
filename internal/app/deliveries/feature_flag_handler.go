package deliveries

import (
	"github.com/dkuaegis/aegis-adminpage/internal/app/errors"
	"github.com/dkuaegis/aegis-adminpage/internal/app/middlewares"
	"github.com/dkuaegis/aegis-adminpage/internal/app/models"
	"github.com/dkuaegis/aegis-adminpage/internal/app/pkg"
	"github.com/dkuaegis/aegis-adminpage/internal/app/services"
	"github.com/gofiber/fiber/v2"
)

type FeatureFlagHandler struct {
	flagService *services.FeatureFlagService
	operatorKey *middlewares.OperatorKeyMiddleware
	rateLimit   *middlewares.RateLimitMiddleware
}

func NewFeatureFlagHandler(flagService *services.FeatureFlagService, operatorKey *middlewares.OperatorKeyMiddleware, rateLimit *middlewares.RateLimitMiddleware) *FeatureFlagHandler {
	return &FeatureFlagHandler{
		flagService: flagService,
		operatorKey: operatorKey,
		rateLimit:   rateLimit,
	}
}

func (h *FeatureFlagHandler) RegisterRoutes(router fiber.Router) {
	mutate := h.rateLimit.LimitByOperator(middlewares.MutationLimit)

	group := router.Group("/admin/feature-flags", h.operatorKey.RequireOperator)
	group.Get("/", h.GetFlags)
	group.Put("/member-signup", mutate, h.SetMemberSignup)
	group.Put("/study-creation", mutate, h.SetStudyCreation)
	group.Put("/study-enroll-window", mutate, h.SetStudyEnrollWindow)
}

func (h *FeatureFlagHandler) GetFlags(c *fiber.Ctx) error {
	flags, err := h.flagService.GetFlags(c.Context())
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse(c, flags)
}

func (h *FeatureFlagHandler) SetMemberSignup(c *fiber.Ctx) error {
	var req models.FlagToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("요청 값이 올바르지 않습니다."))
	}

	flags, err := h.flagService.SetMemberSignup(c.Context(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse(c, flags)
}

func (h *FeatureFlagHandler) SetStudyCreation(c *fiber.Ctx) error {
	var req models.FlagToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("요청 값이 올바르지 않습니다."))
	}

	flags, err := h.flagService.SetStudyCreation(c.Context(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse(c, flags)
}

func (h *FeatureFlagHandler) SetStudyEnrollWindow(c *fiber.Ctx) error {
	var req models.EnrollWindowRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("요청 값이 올바르지 않습니다."))
	}

	flags, err := h.flagService.SetStudyEnrollWindow(c.Context(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse(c, flags)
}
