package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/dkuaegis/aegis-adminpage/internal/app/errors"
	"github.com/dkuaegis/aegis-adminpage/internal/app/models"
	"github.com/dkuaegis/aegis-adminpage/internal/app/pkg"
	"github.com/dkuaegis/aegis-adminpage/internal/infrastructures"
)

// GrantState tracks where a coordinator invocation is in its
// validate -> submit -> refresh chain.
type GrantState int32

const (
	GrantIdle GrantState = iota
	GrantValidating
	GrantSubmitting
	GrantRefreshing
	GrantDone
	GrantFailed
)

func (s GrantState) String() string {
	switch s {
	case GrantIdle:
		return "IDLE"
	case GrantValidating:
		return "VALIDATING"
	case GrantSubmitting:
		return "SUBMITTING"
	case GrantRefreshing:
		return "REFRESHING"
	case GrantDone:
		return "DONE"
	case GrantFailed:
		return "FAILED"
	}
	return "UNKNOWN"
}

// SingleGrantInput is one operator-initiated grant. RequestID may be supplied
// to reuse an idempotency key across retries of the same logical attempt;
// when empty a fresh key is minted. View is the ledger context to restore
// after the mutation, OpenMemberID the detail panel currently open, if any.
type SingleGrantInput struct {
	MemberID     int64              `json:"memberId"`
	Amount       int64              `json:"amount"`
	Reason       string             `json:"reason"`
	RequestID    string             `json:"requestId"`
	View         models.LedgerQuery `json:"view"`
	OpenMemberID *int64             `json:"openMemberId"`
}

// BatchGrantInput applies one grant to every selected member. ConfirmCount
// must equal the number of distinct members: it is the explicit confirmation
// naming the member count, and a mismatch aborts before any upstream call.
type BatchGrantInput struct {
	MemberIDs    []int64            `json:"memberIds"`
	Amount       int64              `json:"amount"`
	Reason       string             `json:"reason"`
	RequestID    string             `json:"requestId"`
	ConfirmCount int                `json:"confirmCount"`
	View         models.LedgerQuery `json:"view"`
	OpenMemberID *int64             `json:"openMemberId"`
}

// PointGrantService coordinates single and batch point grants: validation,
// idempotency-key minting, submission, and the post-mutation refresh, in that
// strict order.
type PointGrantService struct {
	client    *infrastructures.AegisClient
	validator *infrastructures.Validator
	refresher *RefreshService
	audit     *AuditService

	singleInFlight atomic.Bool
	batchInFlight  atomic.Bool
	singleState    atomic.Int32
	batchState     atomic.Int32
}

func NewPointGrantService(client *infrastructures.AegisClient, validator *infrastructures.Validator, refresher *RefreshService, audit *AuditService) *PointGrantService {
	return &PointGrantService{
		client:    client,
		validator: validator,
		refresher: refresher,
		audit:     audit,
	}
}

// SingleState reports the state of the most recent single-grant invocation.
func (s *PointGrantService) SingleState() GrantState {
	return GrantState(s.singleState.Load())
}

// BatchState reports the state of the most recent batch-grant invocation.
func (s *PointGrantService) BatchState() GrantState {
	return GrantState(s.batchState.Load())
}

// GrantSingle validates and submits one point grant, then resynchronizes the
// ledger view and any open member detail. A created=false response is a
// duplicate of a prior successful attempt and is reported as its own outcome,
// not an error; the refresh still runs. Failures leave prior state untouched
// and trigger no refresh.
func (s *PointGrantService) GrantSingle(ctx context.Context, input SingleGrantInput) (*models.GrantOutcome, error) {
	if !s.singleInFlight.CompareAndSwap(false, true) {
		return nil, errors.NewConflictError("이미 처리 중인 지급 요청이 있습니다.")
	}
	defer s.singleInFlight.Store(false)

	s.singleState.Store(int32(GrantValidating))

	if input.MemberID <= 0 {
		s.singleState.Store(int32(GrantFailed))
		return nil, errors.NewBadRequestError("지급 대상 회원을 선택해주세요.")
	}
	if input.Amount <= 0 {
		s.singleState.Store(int32(GrantFailed))
		return nil, errors.NewBadRequestError("지급 포인트는 0보다 큰 정수여야 합니다.")
	}
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		s.singleState.Store(int32(GrantFailed))
		return nil, errors.NewBadRequestError("지급 사유를 입력해주세요.")
	}

	requestID := input.RequestID
	if requestID == "" {
		requestID = pkg.NewRequestID()
	}

	grant := models.PointGrantRequest{
		RequestID: requestID,
		MemberID:  input.MemberID,
		Amount:    input.Amount,
		Reason:    reason,
	}
	if err := s.validator.Validate(&grant); err != nil {
		s.singleState.Store(int32(GrantFailed))
		return nil, err
	}

	s.singleState.Store(int32(GrantSubmitting))

	result, err := pkg.Fetch[models.PointGrantResult](ctx, s.client, http.MethodPost, "/admin/points/grants", nil, grant)
	if err != nil {
		s.singleState.Store(int32(GrantFailed))
		s.audit.LogAction(models.ActionPointGrant, requestID, grant, nil, false)
		return nil, err
	}
	if result == nil {
		s.singleState.Store(int32(GrantFailed))
		s.audit.LogAction(models.ActionPointGrant, requestID, grant, nil, false)
		return nil, errors.NewAppError(http.StatusBadGateway, "요청 처리에 실패했습니다.")
	}

	message := "포인트를 지급했습니다."
	if !result.Created {
		message = "중복 요청으로 추가 지급되지 않았습니다."
	}

	s.singleState.Store(int32(GrantRefreshing))
	refresh := s.refresher.RefreshAfterMutation(ctx, input.View, input.OpenMemberID)

	s.singleState.Store(int32(GrantDone))
	s.audit.LogAction(models.ActionPointGrant, requestID, grant, result, true)

	return &models.GrantOutcome{
		Result:  *result,
		Message: message,
		Refresh: refresh,
	}, nil
}

// GrantBatch validates and submits one grant applied uniformly to a member
// set under a single idempotency key. The upstream counts are trusted
// verbatim and per-member results keep the upstream order. The refresh runs
// exactly once per batch, whatever the per-member outcomes.
func (s *PointGrantService) GrantBatch(ctx context.Context, input BatchGrantInput) (*models.BatchGrantOutcome, error) {
	if !s.batchInFlight.CompareAndSwap(false, true) {
		return nil, errors.NewConflictError("이미 처리 중인 일괄 지급 요청이 있습니다.")
	}
	defer s.batchInFlight.Store(false)

	s.batchState.Store(int32(GrantValidating))

	memberIDs := dedupeIDs(input.MemberIDs)
	if len(memberIDs) == 0 {
		s.batchState.Store(int32(GrantFailed))
		return nil, errors.NewBadRequestError("일괄 지급 대상을 1명 이상 선택해주세요.")
	}
	if input.Amount <= 0 {
		s.batchState.Store(int32(GrantFailed))
		return nil, errors.NewBadRequestError("지급 포인트는 0보다 큰 정수여야 합니다.")
	}
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		s.batchState.Store(int32(GrantFailed))
		return nil, errors.NewBadRequestError("지급 사유를 입력해주세요.")
	}
	if input.ConfirmCount != len(memberIDs) {
		s.batchState.Store(int32(GrantFailed))
		return nil, errors.NewBadRequestError(fmt.Sprintf("선택된 %d명에 대한 일괄 지급 확인이 필요합니다.", len(memberIDs)))
	}

	requestID := input.RequestID
	if requestID == "" {
		requestID = pkg.NewRequestID()
	}

	grant := models.PointBatchGrantRequest{
		RequestID: requestID,
		MemberIDs: memberIDs,
		Amount:    input.Amount,
		Reason:    reason,
	}
	if err := s.validator.Validate(&grant); err != nil {
		s.batchState.Store(int32(GrantFailed))
		return nil, err
	}

	s.batchState.Store(int32(GrantSubmitting))

	result, err := pkg.Fetch[models.BatchGrantResult](ctx, s.client, http.MethodPost, "/admin/points/grants/batch", nil, grant)
	if err != nil {
		s.batchState.Store(int32(GrantFailed))
		s.audit.LogAction(models.ActionPointBatchGrant, requestID, grant, nil, false)
		return nil, err
	}
	if result == nil {
		s.batchState.Store(int32(GrantFailed))
		s.audit.LogAction(models.ActionPointBatchGrant, requestID, grant, nil, false)
		return nil, errors.NewAppError(http.StatusBadGateway, "요청 처리에 실패했습니다.")
	}

	message := fmt.Sprintf("일괄 지급 완료: 성공 %d / 중복 %d / 실패 %d",
		result.SuccessCount, result.DuplicateCount, result.FailureCount)

	s.batchState.Store(int32(GrantRefreshing))
	refresh := s.refresher.RefreshAfterMutation(ctx, input.View, input.OpenMemberID)

	s.batchState.Store(int32(GrantDone))
	s.audit.LogAction(models.ActionPointBatchGrant, requestID, grant, result, true)

	return &models.BatchGrantOutcome{
		Result:  *result,
		Message: message,
		Refresh: refresh,
	}, nil
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
