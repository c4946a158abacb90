package services

import (
	"context"
	"sync"

	"github.com/dkuaegis/aegis-adminpage/internal/app/models"
	"github.com/dkuaegis/aegis-adminpage/internal/infrastructures"
)

// RefreshService resynchronizes displayed state with the upstream after any
// mutation, so the console never shows a balance it made stale itself.
type RefreshService struct {
	ledger *PointLedgerService
}

func NewRefreshService(ledger *PointLedgerService) *RefreshService {
	return &RefreshService{
		ledger: ledger,
	}
}

// RefreshAfterMutation re-issues the ledger query with the currently active
// page and filters, preserving the operator's viewing context. When a member
// detail panel is open, that member's point summary is re-fetched
// concurrently. The call returns only once both fetches have settled; either
// one failing is reported in the outcome, not as an error.
func (s *RefreshService) RefreshAfterMutation(ctx context.Context, view models.LedgerQuery, openMemberID *int64) models.RefreshOutcome {
	var outcome models.RefreshOutcome
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		page, err := s.ledger.QueryLedger(ctx, view)
		if err != nil {
			outcome.LedgerError = err.Error()
			infrastructures.ComponentLogger("refresh").Warnf("ledger refresh failed: %v", err)
			return
		}
		outcome.Ledger = page
	}()

	if openMemberID != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			memberPoint, err := s.ledger.GetMemberPoint(ctx, *openMemberID)
			if err != nil {
				outcome.MemberPointError = err.Error()
				infrastructures.ComponentLogger("refresh").Warnf("member point refresh failed: %v", err)
				return
			}
			outcome.MemberPoint = memberPoint
		}()
	}

	wg.Wait()
	return outcome
}
