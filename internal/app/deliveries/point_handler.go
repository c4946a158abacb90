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

// PointHandler exposes the point console: ledger queries, member search and
// selection, single and batch grants.
type PointHandler struct {
	ledgerService *services.PointLedgerService
	grantService  *services.PointGrantService
	directory     *services.MemberDirectory
	operatorKey   *middlewares.OperatorKeyMiddleware
	rateLimit     *middlewares.RateLimitMiddleware
}

func NewPointHandler(ledgerService *services.PointLedgerService, grantService *services.PointGrantService, directory *services.MemberDirectory, operatorKey *middlewares.OperatorKeyMiddleware, rateLimit *middlewares.RateLimitMiddleware) *PointHandler {
	return &PointHandler{
		ledgerService: ledgerService,
		grantService:  grantService,
		directory:     directory,
		operatorKey:   operatorKey,
		rateLimit:     rateLimit,
	}
}

func (h *PointHandler) RegisterRoutes(router fiber.Router) {
	group := router.Group("/admin/points", h.operatorKey.RequireOperator)

	group.Get("/ledger", h.GetLedger)
	group.Get("/members/search", h.SearchMembers)
	group.Get("/members/:memberId", h.GetMemberPoint)

	group.Get("/selection", h.GetSelection)
	group.Post("/selection/:memberId", h.ToggleSelection)
	group.Delete("/selection", h.ClearSelection)

	group.Post("/grants", h.rateLimit.LimitByOperator(middlewares.MutationLimit), h.GrantSingle)
	group.Post("/grants/batch", h.rateLimit.LimitByOperator(middlewares.MutationLimit), h.GrantBatch)
}

func (h *PointHandler) GetLedger(c *fiber.Ctx) error {
	query := models.LedgerQuery{
		Page:            c.QueryInt("page", 0),
		Size:            c.QueryInt("size", 0),
		MemberKeyword:   c.Query("memberKeyword"),
		TransactionType: models.PointTransactionType(c.Query("transactionType")),
		From:            c.Query("from"),
		To:              c.Query("to"),
	}

	page, err := h.ledgerService.QueryLedger(c.Context(), query)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse(c, page)
}

func (h *PointHandler) SearchMembers(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	limit := c.QueryInt("limit", 0)

	results, err := h.directory.SearchMembers(c.Context(), keyword, limit)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse(c, results)
}

func (h *PointHandler) GetMemberPoint(c *fiber.Ctx) error {
	memberID, err := strconv.ParseInt(c.Params("memberId"), 10, 64)
	if err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("회원 ID가 올바르지 않습니다."))
	}

	memberPoint, err := h.ledgerService.GetMemberPoint(c.Context(), memberID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse(c, memberPoint)
}

func (h *PointHandler) GetSelection(c *fiber.Ctx) error {
	return pkg.SuccessResponse(c, h.directory.SelectedMembers())
}

func (h *PointHandler) ToggleSelection(c *fiber.Ctx) error {
	memberID, err := strconv.ParseInt(c.Params("memberId"), 10, 64)
	if err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("회원 ID가 올바르지 않습니다."))
	}

	h.directory.ToggleSelection(memberID)
	return pkg.SuccessResponse(c, h.directory.SelectedMembers())
}

func (h *PointHandler) ClearSelection(c *fiber.Ctx) error {
	h.directory.ClearSelection()
	return pkg.SuccessResponse[any](c, nil)
}

func (h *PointHandler) GrantSingle(c *fiber.Ctx) error {
	var input services.SingleGrantInput
	if err := c.BodyParser(&input); err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("요청 값이 올바르지 않습니다."))
	}

	outcome, err := h.grantService.GrantSingle(c.Context(), input)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessMessageResponse(c, outcome.Message, outcome)
}

func (h *PointHandler) GrantBatch(c *fiber.Ctx) error {
	var input services.BatchGrantInput
	if err := c.BodyParser(&input); err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("요청 값이 올바르지 않습니다."))
	}

	// No explicit member list means "grant to the current selection".
	if len(input.MemberIDs) == 0 {
		input.MemberIDs = h.directory.SelectedIDs()
	}

	outcome, err := h.grantService.GrantBatch(c.Context(), input)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessMessageResponse(c, outcome.Message, outcome)
}
