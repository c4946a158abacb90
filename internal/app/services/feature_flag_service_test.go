package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkuaegis/aegis-adminpage/internal/app/models"
	"github.com/dkuaegis/aegis-adminpage/internal/infrastructures"
)

const flagsBody = `{
	"memberSignup": {"featureFlagId": 1, "valid": true, "signupAllowed": true},
	"studyCreation": {"featureFlagId": 2, "valid": true, "studyCreationAllowed": false},
	"studyEnrollWindow": {"valid": true, "enrollmentAllowedNow": true}
}`

func newFlagService(server *httptest.Server) *FeatureFlagService {
	return NewFeatureFlagService(newUpstreamClient(server), infrastructures.NewValidator(), NewAuditService(nil))
}

func TestSetMemberSignup_ReturnsFullAggregate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/admin/feature-flags/member-signup", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(flagsBody))
	}))
	defer server.Close()

	service := newFlagService(server)
	flags, err := service.SetMemberSignup(context.Background(), &models.FlagToggleRequest{Enabled: true})
	require.NoError(t, err)
	require.NotNil(t, flags)
	assert.True(t, flags.MemberSignup.SignupAllowed)
	assert.False(t, flags.StudyCreation.StudyCreationAllowed)
	assert.True(t, flags.StudyEnrollWindow.EnrollmentAllowedNow)
}

func TestSetStudyEnrollWindow_ReversedWindowNeverHitsUpstream(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	service := newFlagService(server)
	_, err := service.SetStudyEnrollWindow(context.Background(), &models.EnrollWindowRequest{
		OpenAt:  "2026-03-10T00:00:00",
		CloseAt: "2026-03-01T00:00:00",
	})
	require.Error(t, err)
	assert.Equal(t, "모집 시작 시각은 종료 시각보다 늦을 수 없습니다.", err.Error())
	assert.Zero(t, calls)
}

func TestSetStudyEnrollWindow_RequiresBothBounds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called")
	}))
	defer server.Close()

	service := newFlagService(server)
	_, err := service.SetStudyEnrollWindow(context.Background(), &models.EnrollWindowRequest{OpenAt: "2026-03-01T00:00:00"})
	assert.Error(t, err)
}

func TestSetStudyEnrollWindow_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/feature-flags/study-enroll-window", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(flagsBody))
	}))
	defer server.Close()

	service := newFlagService(server)
	flags, err := service.SetStudyEnrollWindow(context.Background(), &models.EnrollWindowRequest{
		OpenAt:  "2026-03-01T00:00:00",
		CloseAt: "2026-03-10T00:00:00",
	})
	require.NoError(t, err)
	require.NotNil(t, flags)
}

func TestGetFlags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/admin/feature-flags", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(flagsBody))
	}))
	defer server.Close()

	service := newFlagService(server)
	flags, err := service.GetFlags(context.Background())
	require.NoError(t, err)
	require.NotNil(t, flags)
	require.NotNil(t, flags.MemberSignup.FeatureFlagID)
	assert.Equal(t, int64(1), *flags.MemberSignup.FeatureFlagID)
}
