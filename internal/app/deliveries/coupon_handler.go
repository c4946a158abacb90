package deliveries

import (
	"strconv"

	"github.com/dkuaegis/aegis-adminpage/internal/app/errors"
	"github.com/dkuaegis/aegis-adminpage/internal/app/middlewares"
	"github.com/dkuaegis/aegis-adminpage/internal/app/models"
	"github.com/dkuaegis/aegis-adminpage/internal/app/pkg"
	"github.com/dkuaegis/aegis-adminpage/internal/app/services"
	"github.com/gofiber/fiber/v2"
)

type CouponHandler struct {
	couponService *services.CouponService
	operatorKey   *middlewares.OperatorKeyMiddleware
	rateLimit     *middlewares.RateLimitMiddleware
}

func NewCouponHandler(couponService *services.CouponService, operatorKey *middlewares.OperatorKeyMiddleware, rateLimit *middlewares.RateLimitMiddleware) *CouponHandler {
	return &CouponHandler{
		couponService: couponService,
		operatorKey:   operatorKey,
		rateLimit:     rateLimit,
	}
}

func (h *CouponHandler) RegisterRoutes(router fiber.Router) {
	mutate := h.rateLimit.LimitByOperator(middlewares.MutationLimit)

	group := router.Group("/admin/coupons", h.operatorKey.RequireOperator)
	group.Get("/", h.ListCoupons)
	group.Get("/overview", h.GetOverview)
	group.Post("/", mutate, h.CreateCoupon)
	group.Patch("/:couponId/name", mutate, h.RenameCoupon)
	group.Delete("/:couponId", mutate, h.DeleteCoupon)

	group.Get("/code", h.ListCouponCodes)
	group.Post("/code", mutate, h.CreateCouponCode)
	group.Delete("/code/:codeCouponId", mutate, h.DeleteCouponCode)

	group.Get("/issued", h.ListIssuedCoupons)
	group.Post("/issued", mutate, h.IssueCoupons)
	group.Delete("/issued/:issuedCouponId", mutate, h.RevokeIssuedCoupon)

	router.Get("/admin/members", h.operatorKey.RequireOperator, h.ListMembers)
}

func (h *CouponHandler) ListCoupons(c *fiber.Ctx) error {
	coupons, err := h.couponService.ListCoupons(c.Context())
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse(c, coupons)
}

func (h *CouponHandler) GetOverview(c *fiber.Ctx) error {
	return pkg.SuccessResponse(c, h.couponService.Overview(c.Context()))
}

func (h *CouponHandler) CreateCoupon(c *fiber.Ctx) error {
	var req models.CouponCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("요청 값이 올바르지 않습니다."))
	}

	coupon, err := h.couponService.CreateCoupon(c.Context(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse(c, coupon)
}

func (h *CouponHandler) RenameCoupon(c *fiber.Ctx) error {
	couponID, err := strconv.ParseInt(c.Params("couponId"), 10, 64)
	if err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("쿠폰 ID가 올바르지 않습니다."))
	}

	var req models.CouponRenameRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("요청 값이 올바르지 않습니다."))
	}

	coupon, err := h.couponService.RenameCoupon(c.Context(), couponID, &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse(c, coupon)
}

func (h *CouponHandler) DeleteCoupon(c *fiber.Ctx) error {
	couponID, err := strconv.ParseInt(c.Params("couponId"), 10, 64)
	if err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("쿠폰 ID가 올바르지 않습니다."))
	}

	if err := h.couponService.DeleteCoupon(c.Context(), couponID); err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse[any](c, nil)
}

func (h *CouponHandler) ListCouponCodes(c *fiber.Ctx) error {
	codes, err := h.couponService.ListCouponCodes(c.Context())
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse(c, codes)
}

func (h *CouponHandler) CreateCouponCode(c *fiber.Ctx) error {
	var req models.CouponCodeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("요청 값이 올바르지 않습니다."))
	}

	code, err := h.couponService.CreateCouponCode(c.Context(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse(c, code)
}

func (h *CouponHandler) DeleteCouponCode(c *fiber.Ctx) error {
	codeCouponID, err := strconv.ParseInt(c.Params("codeCouponId"), 10, 64)
	if err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("쿠폰 코드 ID가 올바르지 않습니다."))
	}

	if err := h.couponService.DeleteCouponCode(c.Context(), codeCouponID); err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse[any](c, nil)
}

func (h *CouponHandler) ListIssuedCoupons(c *fiber.Ctx) error {
	issued, err := h.couponService.ListIssuedCoupons(c.Context())
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse(c, issued)
}

func (h *CouponHandler) IssueCoupons(c *fiber.Ctx) error {
	var req models.IssuedCouponCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("요청 값이 올바르지 않습니다."))
	}

	issued, err := h.couponService.IssueCoupons(c.Context(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse(c, issued)
}

func (h *CouponHandler) RevokeIssuedCoupon(c *fiber.Ctx) error {
	issuedCouponID, err := strconv.ParseInt(c.Params("issuedCouponId"), 10, 64)
	if err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("발급 쿠폰 ID가 올바르지 않습니다."))
	}

	if err := h.couponService.RevokeIssuedCoupon(c.Context(), issuedCouponID); err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse[any](c, nil)
}

func (h *CouponHandler) ListMembers(c *fiber.Ctx) error {
	members, err := h.couponService.ListMembers(c.Context())
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse(c, members)
}
