package services

import (
	"context"
	"net/http"

	"github.com/dkuaegis/aegis-adminpage/internal/app/errors"
	"github.com/dkuaegis/aegis-adminpage/internal/app/models"
	"github.com/dkuaegis/aegis-adminpage/internal/app/pkg"
	"github.com/dkuaegis/aegis-adminpage/internal/infrastructures"
)

// FeatureFlagService reads and updates the platform feature flags. Every
// write returns the full aggregate so the console can swap its state
// wholesale.
type FeatureFlagService struct {
	client    *infrastructures.AegisClient
	validator *infrastructures.Validator
	audit     *AuditService
}

func NewFeatureFlagService(client *infrastructures.AegisClient, validator *infrastructures.Validator, audit *AuditService) *FeatureFlagService {
	return &FeatureFlagService{
		client:    client,
		validator: validator,
		audit:     audit,
	}
}

func (s *FeatureFlagService) GetFlags(ctx context.Context) (*models.FeatureFlags, error) {
	return pkg.Fetch[models.FeatureFlags](ctx, s.client, http.MethodGet, "/admin/feature-flags", nil, nil)
}

func (s *FeatureFlagService) SetMemberSignup(ctx context.Context, req *models.FlagToggleRequest) (*models.FeatureFlags, error) {
	flags, err := pkg.Fetch[models.FeatureFlags](ctx, s.client, http.MethodPut, "/admin/feature-flags/member-signup", nil, req)
	s.audit.LogAction(models.ActionFlagUpdate, "", req, flags, err == nil)
	return flags, err
}

func (s *FeatureFlagService) SetStudyCreation(ctx context.Context, req *models.FlagToggleRequest) (*models.FeatureFlags, error) {
	flags, err := pkg.Fetch[models.FeatureFlags](ctx, s.client, http.MethodPut, "/admin/feature-flags/study-creation", nil, req)
	s.audit.LogAction(models.ActionFlagUpdate, "", req, flags, err == nil)
	return flags, err
}

// SetStudyEnrollWindow updates the paired open/close window. The window
// bounds are checked here; a reversed window never produces a request.
func (s *FeatureFlagService) SetStudyEnrollWindow(ctx context.Context, req *models.EnrollWindowRequest) (*models.FeatureFlags, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if req.OpenAt > req.CloseAt {
		return nil, errors.NewBadRequestError("모집 시작 시각은 종료 시각보다 늦을 수 없습니다.")
	}

	flags, err := pkg.Fetch[models.FeatureFlags](ctx, s.client, http.MethodPut, "/admin/feature-flags/study-enroll-window", nil, req)
	s.audit.LogAction(models.ActionFlagUpdate, "", req, flags, err == nil)
	return flags, err
}
