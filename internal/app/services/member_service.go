package services

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/dkuaegis/aegis-adminpage/internal/app/errors"
	"github.com/dkuaegis/aegis-adminpage/internal/app/models"
	"github.com/dkuaegis/aegis-adminpage/internal/app/pkg"
	"github.com/dkuaegis/aegis-adminpage/internal/infrastructures"
)

const defaultRecordsPageSize = 50

// MemberDetail pairs the two per-member loads issued together when a member
// is selected in the records view.
type MemberDetail struct {
	Timeline      []models.RecordTimelineItem    `json:"timeline"`
	TimelineError string                         `json:"timelineError,omitempty"`
	Activities    *models.SemesterActivityDetail `json:"activities,omitempty"`
	ActivityError string                         `json:"activityError,omitempty"`
}

// MemberService covers member demotion and the per-semester member records.
type MemberService struct {
	client *infrastructures.AegisClient
	audit  *AuditService
}

func NewMemberService(client *infrastructures.AegisClient, audit *AuditService) *MemberService {
	return &MemberService{
		client: client,
		audit:  audit,
	}
}

// DemoteCurrentSemester demotes every non-renewing member for the current
// semester. The action is irreversible, so callers must acknowledge twice;
// anything less aborts before any upstream call.
func (s *MemberService) DemoteCurrentSemester(ctx context.Context, confirmed, reconfirmed bool) (*models.DemoteResult, error) {
	if !confirmed || !reconfirmed {
		return nil, errors.NewBadRequestError("회원 강등은 이중 확인이 필요합니다.")
	}

	result, err := pkg.Fetch[models.DemoteResult](ctx, s.client, http.MethodPost, "/admin/members/demote", nil, nil)
	s.audit.LogAction(models.ActionMemberDemotion, "", nil, result, err == nil)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return &models.DemoteResult{}, nil
	}
	return result, nil
}

// QueryRecords fetches one page of per-semester member records.
func (s *MemberService) QueryRecords(ctx context.Context, query models.MemberRecordsQuery) (*models.MemberRecordPage, error) {
	if strings.TrimSpace(query.YearSemester) == "" {
		return nil, errors.NewBadRequestError("조회 학기를 선택해주세요.")
	}
	if query.Page < 0 {
		return nil, errors.NewBadRequestError("페이지 번호가 올바르지 않습니다.")
	}
	if query.Size <= 0 {
		query.Size = defaultRecordsPageSize
	}

	params := url.Values{}
	params.Set("yearSemester", query.YearSemester)
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("size", strconv.Itoa(query.Size))
	if keyword := strings.TrimSpace(query.Keyword); keyword != "" {
		params.Set("keyword", keyword)
	}
	if query.Role != "" {
		params.Set("role", string(query.Role))
	}
	if query.Sort != "" {
		params.Set("sort", query.Sort)
	}

	return pkg.Fetch[models.MemberRecordPage](ctx, s.client, http.MethodGet, "/admin/members/records", params, nil)
}

// SemesterOptions fetches the semester dropdown metadata.
func (s *MemberService) SemesterOptions(ctx context.Context) ([]models.SemesterOption, error) {
	options, err := pkg.Fetch[[]models.SemesterOption](ctx, s.client, http.MethodGet, "/admin/members/records/meta/semesters", nil, nil)
	if err != nil {
		return nil, err
	}
	if options == nil {
		return nil, nil
	}
	return *options, nil
}

// RecordTimeline fetches one member's full record timeline.
func (s *MemberService) RecordTimeline(ctx context.Context, memberID int64) ([]models.RecordTimelineItem, error) {
	if memberID <= 0 {
		return nil, errors.NewBadRequestError("회원 ID가 올바르지 않습니다.")
	}
	path := "/admin/members/" + strconv.FormatInt(memberID, 10) + "/records"
	timeline, err := pkg.Fetch[[]models.RecordTimelineItem](ctx, s.client, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	if timeline == nil {
		return nil, nil
	}
	return *timeline, nil
}

// SemesterActivities fetches one member's activity detail for one semester.
func (s *MemberService) SemesterActivities(ctx context.Context, memberID int64, yearSemester string) (*models.SemesterActivityDetail, error) {
	if memberID <= 0 {
		return nil, errors.NewBadRequestError("회원 ID가 올바르지 않습니다.")
	}
	if strings.TrimSpace(yearSemester) == "" {
		return nil, errors.NewBadRequestError("조회 학기를 선택해주세요.")
	}

	params := url.Values{}
	params.Set("yearSemester", yearSemester)
	path := "/admin/members/" + strconv.FormatInt(memberID, 10) + "/activities"
	return pkg.Fetch[models.SemesterActivityDetail](ctx, s.client, http.MethodGet, path, params, nil)
}

// MemberDetailFor issues the timeline and semester-activity fetches in
// parallel and reports each section's failure independently.
func (s *MemberService) MemberDetailFor(ctx context.Context, memberID int64, yearSemester string) *MemberDetail {
	detail := &MemberDetail{}
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		timeline, err := s.RecordTimeline(ctx, memberID)
		if err != nil {
			detail.TimelineError = err.Error()
			return
		}
		detail.Timeline = timeline
	}()
	go func() {
		defer wg.Done()
		activities, err := s.SemesterActivities(ctx, memberID, yearSemester)
		if err != nil {
			detail.ActivityError = err.Error()
			return
		}
		detail.Activities = activities
	}()

	wg.Wait()
	return detail
}
