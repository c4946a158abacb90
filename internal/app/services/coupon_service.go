package services

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/dkuaegis/aegis-adminpage/internal/app/errors"
	"github.com/dkuaegis/aegis-adminpage/internal/app/models"
	"github.com/dkuaegis/aegis-adminpage/internal/app/pkg"
	"github.com/dkuaegis/aegis-adminpage/internal/infrastructures"
)

// CouponService manages coupons, redemption codes, and member-issued coupons
// against the upstream admin API.
type CouponService struct {
	client    *infrastructures.AegisClient
	validator *infrastructures.Validator
	audit     *AuditService
}

func NewCouponService(client *infrastructures.AegisClient, validator *infrastructures.Validator, audit *AuditService) *CouponService {
	return &CouponService{
		client:    client,
		validator: validator,
		audit:     audit,
	}
}

func (s *CouponService) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	coupons, err := pkg.Fetch[[]models.Coupon](ctx, s.client, http.MethodGet, "/admin/coupons", nil, nil)
	if err != nil {
		return nil, err
	}
	if coupons == nil {
		return nil, nil
	}
	return *coupons, nil
}

func (s *CouponService) CreateCoupon(ctx context.Context, req *models.CouponCreateRequest) (*models.Coupon, error) {
	req.CouponName = strings.TrimSpace(req.CouponName)
	if req.CouponName == "" {
		return nil, errors.NewBadRequestError("쿠폰 이름을 입력해주세요.")
	}
	if req.DiscountAmount <= 0 {
		return nil, errors.NewBadRequestError("할인 금액은 0보다 커야 합니다.")
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	coupon, err := pkg.Fetch[models.Coupon](ctx, s.client, http.MethodPost, "/admin/coupons", nil, req)
	s.audit.LogAction(models.ActionCouponMutation, "", req, coupon, err == nil)
	if err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) RenameCoupon(ctx context.Context, couponID int64, req *models.CouponRenameRequest) (*models.Coupon, error) {
	req.CouponName = strings.TrimSpace(req.CouponName)
	if req.CouponName == "" {
		return nil, errors.NewBadRequestError("쿠폰 이름을 입력해주세요.")
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	path := "/admin/coupons/" + strconv.FormatInt(couponID, 10) + "/name"
	coupon, err := pkg.Fetch[models.Coupon](ctx, s.client, http.MethodPatch, path, nil, req)
	s.audit.LogAction(models.ActionCouponMutation, "", req, coupon, err == nil)
	if err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) DeleteCoupon(ctx context.Context, couponID int64) error {
	path := "/admin/coupons/" + strconv.FormatInt(couponID, 10)
	_, err := pkg.Fetch[struct{}](ctx, s.client, http.MethodDelete, path, nil, nil)
	s.audit.LogAction(models.ActionCouponMutation, "", map[string]int64{"deleteCouponId": couponID}, nil, err == nil)
	return err
}

func (s *CouponService) ListCouponCodes(ctx context.Context) ([]models.CouponCode, error) {
	codes, err := pkg.Fetch[[]models.CouponCode](ctx, s.client, http.MethodGet, "/admin/coupons/code", nil, nil)
	if err != nil {
		return nil, err
	}
	if codes == nil {
		return nil, nil
	}
	return *codes, nil
}

func (s *CouponService) CreateCouponCode(ctx context.Context, req *models.CouponCodeCreateRequest) (*models.CouponCode, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	code, err := pkg.Fetch[models.CouponCode](ctx, s.client, http.MethodPost, "/admin/coupons/code", nil, req)
	s.audit.LogAction(models.ActionCouponMutation, "", req, code, err == nil)
	if err != nil {
		return nil, err
	}
	return code, nil
}

func (s *CouponService) DeleteCouponCode(ctx context.Context, codeCouponID int64) error {
	path := "/admin/coupons/code/" + strconv.FormatInt(codeCouponID, 10)
	_, err := pkg.Fetch[struct{}](ctx, s.client, http.MethodDelete, path, nil, nil)
	s.audit.LogAction(models.ActionCouponMutation, "", map[string]int64{"deleteCodeCouponId": codeCouponID}, nil, err == nil)
	return err
}

func (s *CouponService) ListIssuedCoupons(ctx context.Context) ([]models.IssuedCoupon, error) {
	issued, err := pkg.Fetch[[]models.IssuedCoupon](ctx, s.client, http.MethodGet, "/admin/coupons/issued", nil, nil)
	if err != nil {
		return nil, err
	}
	if issued == nil {
		return nil, nil
	}
	return *issued, nil
}

func (s *CouponService) IssueCoupons(ctx context.Context, req *models.IssuedCouponCreateRequest) ([]models.IssuedCoupon, error) {
	if len(req.MemberIDs) == 0 {
		return nil, errors.NewBadRequestError("발급 대상을 1명 이상 선택해주세요.")
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	issued, err := pkg.Fetch[[]models.IssuedCoupon](ctx, s.client, http.MethodPost, "/admin/coupons/issued", nil, req)
	s.audit.LogAction(models.ActionCouponMutation, "", req, issued, err == nil)
	if err != nil {
		return nil, err
	}
	if issued == nil {
		return nil, nil
	}
	return *issued, nil
}

func (s *CouponService) RevokeIssuedCoupon(ctx context.Context, issuedCouponID int64) error {
	path := "/admin/coupons/issued/" + strconv.FormatInt(issuedCouponID, 10)
	_, err := pkg.Fetch[struct{}](ctx, s.client, http.MethodDelete, path, nil, nil)
	s.audit.LogAction(models.ActionCouponMutation, "", map[string]int64{"deleteIssuedCouponId": issuedCouponID}, nil, err == nil)
	return err
}

func (s *CouponService) ListMembers(ctx context.Context) ([]models.MemberSummary, error) {
	members, err := pkg.Fetch[[]models.MemberSummary](ctx, s.client, http.MethodGet, "/admin/members", nil, nil)
	if err != nil {
		return nil, err
	}
	if members == nil {
		return nil, nil
	}
	return *members, nil
}

// Overview performs the four page-mount loads in parallel. Each section fails
// independently; a failed section reports its message without blocking the
// others.
func (s *CouponService) Overview(ctx context.Context) *models.CouponOverview {
	overview := &models.CouponOverview{}
	sectionErrs := make(map[string]string)
	var mu sync.Mutex
	var wg sync.WaitGroup

	fail := func(section string, err error) {
		mu.Lock()
		sectionErrs[section] = err.Error()
		mu.Unlock()
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		coupons, err := s.ListCoupons(ctx)
		if err != nil {
			fail("coupons", err)
			return
		}
		overview.Coupons = coupons
	}()
	go func() {
		defer wg.Done()
		codes, err := s.ListCouponCodes(ctx)
		if err != nil {
			fail("couponCodes", err)
			return
		}
		overview.CouponCodes = codes
	}()
	go func() {
		defer wg.Done()
		issued, err := s.ListIssuedCoupons(ctx)
		if err != nil {
			fail("issuedCoupons", err)
			return
		}
		overview.IssuedCoupons = issued
	}()
	go func() {
		defer wg.Done()
		members, err := s.ListMembers(ctx)
		if err != nil {
			fail("members", err)
			return
		}
		overview.Members = members
	}()

	wg.Wait()
	if len(sectionErrs) > 0 {
		overview.SectionErrors = sectionErrs
	}
	return overview
}
