package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkuaegis/aegis-adminpage/internal/app/models"
)

func TestRefreshAfterMutation_LedgerOnly(t *testing.T) {
	var mu sync.Mutex
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[],"page":2,"size":50,"totalElements":120,"totalPages":3,"hasNext":false}`))
	}))
	defer server.Close()

	refresher := NewRefreshService(NewPointLedgerService(newUpstreamClient(server)))
	outcome := refresher.RefreshAfterMutation(context.Background(), models.LedgerQuery{Page: 2}, nil)

	require.NotNil(t, outcome.Ledger)
	assert.Equal(t, 2, outcome.Ledger.Page)
	assert.Empty(t, outcome.LedgerError)
	assert.Nil(t, outcome.MemberPoint)
	assert.Equal(t, []string{"/admin/points/ledger"}, paths)
}

func TestRefreshAfterMutation_WithOpenMember(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/admin/points/ledger" {
			w.Write([]byte(`{"content":[],"page":0,"size":50,"totalElements":0,"totalPages":0,"hasNext":false}`))
			return
		}
		assert.Equal(t, "/admin/points/members/42", r.URL.Path)
		w.Write([]byte(`{"memberId":42,"memberName":"김철수","balance":900,"totalEarned":900,"recentHistory":[]}`))
	}))
	defer server.Close()

	refresher := NewRefreshService(NewPointLedgerService(newUpstreamClient(server)))
	openMember := int64(42)
	outcome := refresher.RefreshAfterMutation(context.Background(), models.LedgerQuery{}, &openMember)

	require.NotNil(t, outcome.Ledger)
	require.NotNil(t, outcome.MemberPoint)
	assert.Equal(t, int64(900), outcome.MemberPoint.Balance)
}

func TestRefreshAfterMutation_PartialFailureIsReportedNotFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/admin/points/ledger" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"name":"INTERNAL_ERROR"}`))
			return
		}
		w.Write([]byte(`{"memberId":42,"memberName":"김철수","balance":900,"totalEarned":900,"recentHistory":[]}`))
	}))
	defer server.Close()

	refresher := NewRefreshService(NewPointLedgerService(newUpstreamClient(server)))
	openMember := int64(42)
	outcome := refresher.RefreshAfterMutation(context.Background(), models.LedgerQuery{}, &openMember)

	assert.Nil(t, outcome.Ledger)
	assert.Equal(t, "요청 처리에 실패했습니다.", outcome.LedgerError)
	require.NotNil(t, outcome.MemberPoint, "one fetch failing must not block the other")
	assert.Empty(t, outcome.MemberPointError)
}

func TestRefreshAfterMutation_BothFailuresAreCarried(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"name":"UPSTREAM_DOWN"}`))
	}))
	defer server.Close()

	refresher := NewRefreshService(NewPointLedgerService(newUpstreamClient(server)))
	openMember := int64(42)
	outcome := refresher.RefreshAfterMutation(context.Background(), models.LedgerQuery{}, &openMember)

	assert.Nil(t, outcome.Ledger)
	assert.Nil(t, outcome.MemberPoint)
	assert.NotEmpty(t, outcome.LedgerError)
	assert.NotEmpty(t, outcome.MemberPointError)
}
