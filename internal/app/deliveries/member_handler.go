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

type MemberHandler struct {
	memberService *services.MemberService
	operatorKey   *middlewares.OperatorKeyMiddleware
	rateLimit     *middlewares.RateLimitMiddleware
}

func NewMemberHandler(memberService *services.MemberService, operatorKey *middlewares.OperatorKeyMiddleware, rateLimit *middlewares.RateLimitMiddleware) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		operatorKey:   operatorKey,
		rateLimit:     rateLimit,
	}
}

func (h *MemberHandler) RegisterRoutes(router fiber.Router) {
	group := router.Group("/admin/members", h.operatorKey.RequireOperator)

	group.Post("/demote", h.rateLimit.LimitByOperator(middlewares.MutationLimit), h.Demote)
	group.Get("/records", h.GetRecords)
	group.Get("/records/meta/semesters", h.GetSemesterOptions)
	group.Get("/:memberId/records", h.GetRecordTimeline)
	group.Get("/:memberId/activities", h.GetSemesterActivities)
	group.Get("/:memberId/detail", h.GetMemberDetail)
}

type demoteRequest struct {
	Confirm   bool `json:"confirm"`
	Reconfirm bool `json:"reconfirm"`
}

func (h *MemberHandler) Demote(c *fiber.Ctx) error {
	var req demoteRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("요청 값이 올바르지 않습니다."))
	}

	result, err := h.memberService.DemoteCurrentSemester(c.Context(), req.Confirm, req.Reconfirm)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	message := "강등 대상 회원이 없습니다."
	if count := len(result.DemotedMemberStudentIDs); count > 0 {
		message = strconv.Itoa(count) + "명의 회원을 강등했습니다."
	}
	return pkg.SuccessMessageResponse(c, message, result)
}

func (h *MemberHandler) GetRecords(c *fiber.Ctx) error {
	query := models.MemberRecordsQuery{
		YearSemester: c.Query("yearSemester"),
		Page:         c.QueryInt("page", 0),
		Size:         c.QueryInt("size", 0),
		Keyword:      c.Query("keyword"),
		Role:         models.MemberRole(c.Query("role")),
		Sort:         c.Query("sort"),
	}

	page, err := h.memberService.QueryRecords(c.Context(), query)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse(c, page)
}

func (h *MemberHandler) GetSemesterOptions(c *fiber.Ctx) error {
	options, err := h.memberService.SemesterOptions(c.Context())
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse(c, options)
}

func (h *MemberHandler) GetRecordTimeline(c *fiber.Ctx) error {
	memberID, err := strconv.ParseInt(c.Params("memberId"), 10, 64)
	if err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("회원 ID가 올바르지 않습니다."))
	}

	timeline, err := h.memberService.RecordTimeline(c.Context(), memberID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse(c, timeline)
}

func (h *MemberHandler) GetSemesterActivities(c *fiber.Ctx) error {
	memberID, err := strconv.ParseInt(c.Params("memberId"), 10, 64)
	if err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("회원 ID가 올바르지 않습니다."))
	}

	detail, err := h.memberService.SemesterActivities(c.Context(), memberID, c.Query("yearSemester"))
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}
	return pkg.SuccessResponse(c, detail)
}

func (h *MemberHandler) GetMemberDetail(c *fiber.Ctx) error {
	memberID, err := strconv.ParseInt(c.Params("memberId"), 10, 64)
	if err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("회원 ID가 올바르지 않습니다."))
	}

	return pkg.SuccessResponse(c, h.memberService.MemberDetailFor(c.Context(), memberID, c.Query("yearSemester")))
}
