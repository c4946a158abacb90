package services

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dkuaegis/aegis-adminpage/internal/app/errors"
	"github.com/dkuaegis/aegis-adminpage/internal/app/models"
	"github.com/dkuaegis/aegis-adminpage/internal/app/pkg"
	"github.com/dkuaegis/aegis-adminpage/internal/infrastructures"
)

const defaultLedgerPageSize = 50

// PointLedgerService builds filtered, paginated queries against the upstream
// point ledger and member-point endpoints.
type PointLedgerService struct {
	client *infrastructures.AegisClient
}

func NewPointLedgerService(client *infrastructures.AegisClient) *PointLedgerService {
	return &PointLedgerService{
		client: client,
	}
}

// QueryLedger fetches one ledger page. Filters are AND-composed upstream; the
// date range is validated here so a malformed range never produces a request.
func (s *PointLedgerService) QueryLedger(ctx context.Context, query models.LedgerQuery) (*models.PointLedgerPage, error) {
	if query.Page < 0 {
		return nil, errors.NewBadRequestError("페이지 번호가 올바르지 않습니다.")
	}
	if query.Size <= 0 {
		query.Size = defaultLedgerPageSize
	}

	if err := validateDateRange(query.From, query.To); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("size", strconv.Itoa(query.Size))

	if keyword := strings.TrimSpace(query.MemberKeyword); keyword != "" {
		params.Set("memberKeyword", keyword)
	}
	if query.TransactionType != "" {
		if query.TransactionType != models.PointTransactionEarn && query.TransactionType != models.PointTransactionSpend {
			return nil, errors.NewBadRequestError("거래 유형이 올바르지 않습니다.")
		}
		params.Set("transactionType", string(query.TransactionType))
	}
	if query.From != "" {
		params.Set("from", query.From)
	}
	if query.To != "" {
		params.Set("to", query.To)
	}

	page, err := pkg.Fetch[models.PointLedgerPage](ctx, s.client, http.MethodGet, "/admin/points/ledger", params, nil)
	if err != nil {
		return nil, err
	}
	return page, nil
}

// GetMemberPoint fetches one member's point summary with recent history.
func (s *PointLedgerService) GetMemberPoint(ctx context.Context, memberID int64) (*models.MemberPoint, error) {
	if memberID <= 0 {
		return nil, errors.NewBadRequestError("회원 ID가 올바르지 않습니다.")
	}
	return pkg.Fetch[models.MemberPoint](ctx, s.client, http.MethodGet, "/admin/points/members/"+strconv.FormatInt(memberID, 10), nil, nil)
}

func validateDateRange(from, to string) error {
	const layout = "2006-01-02"

	var fromDate, toDate time.Time
	var err error
	if from != "" {
		if fromDate, err = time.Parse(layout, from); err != nil {
			return errors.NewBadRequestError("조회 시작일이 올바르지 않습니다.")
		}
	}
	if to != "" {
		if toDate, err = time.Parse(layout, to); err != nil {
			return errors.NewBadRequestError("조회 종료일이 올바르지 않습니다.")
		}
	}
	if from != "" && to != "" && fromDate.After(toDate) {
		return errors.NewBadRequestError("조회 시작일은 종료일보다 늦을 수 없습니다.")
	}
	return nil
}
