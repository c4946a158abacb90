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

func newCouponService(server *httptest.Server) *CouponService {
	return NewCouponService(newUpstreamClient(server), infrastructures.NewValidator(), NewAuditService(nil))
}

func TestCreateCoupon_Validation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called")
	}))
	defer server.Close()

	service := newCouponService(server)

	_, err := service.CreateCoupon(context.Background(), &models.CouponCreateRequest{CouponName: "  ", DiscountAmount: 500})
	require.Error(t, err)
	assert.Equal(t, "쿠폰 이름을 입력해주세요.", err.Error())

	_, err = service.CreateCoupon(context.Background(), &models.CouponCreateRequest{CouponName: "신입 환영", DiscountAmount: 0})
	require.Error(t, err)
	assert.Equal(t, "할인 금액은 0보다 커야 합니다.", err.Error())
}

func TestCreateCoupon_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/coupons", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"couponId":11,"couponName":"신입 환영","discountAmount":3000}`))
	}))
	defer server.Close()

	service := newCouponService(server)
	coupon, err := service.CreateCoupon(context.Background(), &models.CouponCreateRequest{CouponName: " 신입 환영 ", DiscountAmount: 3000})
	require.NoError(t, err)
	require.NotNil(t, coupon)
	assert.Equal(t, int64(11), coupon.CouponID)
}

func TestRenameCoupon_UsesNamePath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/admin/coupons/11/name", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"couponId":11,"couponName":"개명","discountAmount":3000}`))
	}))
	defer server.Close()

	service := newCouponService(server)
	coupon, err := service.RenameCoupon(context.Background(), 11, &models.CouponRenameRequest{CouponName: "개명"})
	require.NoError(t, err)
	assert.Equal(t, "개명", coupon.CouponName)
}

func TestIssueCoupons_RequiresTargets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called")
	}))
	defer server.Close()

	service := newCouponService(server)
	_, err := service.IssueCoupons(context.Background(), &models.IssuedCouponCreateRequest{CouponID: 11})
	require.Error(t, err)
	assert.Equal(t, "발급 대상을 1명 이상 선택해주세요.", err.Error())
}

func TestDeleteCoupon_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/admin/coupons/11", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	service := newCouponService(server)
	assert.NoError(t, service.DeleteCoupon(context.Background(), 11))
}

func TestOverview_SectionsFailIndependently(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/admin/coupons":
			w.Write([]byte(`[{"couponId":1,"couponName":"가입 축하","discountAmount":1000}]`))
		case "/admin/coupons/code":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"name":"INTERNAL_ERROR"}`))
		case "/admin/coupons/issued":
			w.Write([]byte(`[]`))
		case "/admin/members":
			w.Write([]byte(`[{"memberId":1,"name":"김철수","email":"a@dankook.ac.kr","role":"MEMBER"}]`))
		}
	}))
	defer server.Close()

	service := newCouponService(server)
	overview := service.Overview(context.Background())
	require.NotNil(t, overview)

	require.Len(t, overview.Coupons, 1)
	assert.Empty(t, overview.IssuedCoupons)
	require.Len(t, overview.Members, 1)

	require.Contains(t, overview.SectionErrors, "couponCodes")
	assert.Equal(t, "요청 처리에 실패했습니다.", overview.SectionErrors["couponCodes"])
	assert.NotContains(t, overview.SectionErrors, "coupons")
}

func TestOverview_AllSectionsLoad(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	service := newCouponService(server)
	overview := service.Overview(context.Background())
	require.NotNil(t, overview)
	assert.Nil(t, overview.SectionErrors)
}
