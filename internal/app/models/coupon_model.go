package models

// Coupon is an admin-managed discount coupon.
type Coupon struct {
	CouponID       int64  `json:"couponId"`
	CouponName     string `json:"couponName"`
	DiscountAmount int64  `json:"discountAmount"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// CouponCode is a self-service redemption code bound to a coupon.
type CouponCode struct {
	CodeCouponID   int64   `json:"codeCouponId"`
	CouponID       int64   `json:"couponId"`
	CouponName     string  `json:"couponName"`
	Code           string  `json:"code"`
	Description    *string `json:"description"`
	IsValid        bool    `json:"isValid"`
	IssuedCouponID *int64  `json:"issuedCouponId"`
	UsedAt         *string `json:"usedAt"`
	CreatedAt      string  `json:"createdAt"`
}

// IssuedCoupon is a coupon directly assigned to a member.
type IssuedCoupon struct {
	IssuedCouponID int64   `json:"issuedCouponId"`
	CouponID       int64   `json:"couponId"`
	CouponName     string  `json:"couponName"`
	DiscountAmount int64   `json:"discountAmount"`
	MemberID       int64   `json:"memberId"`
	MemberName     string  `json:"memberName"`
	MemberEmail    string  `json:"memberEmail"`
	IsValid        bool    `json:"isValid"`
	PaymentID      *int64  `json:"paymentId"`
	UsedAt         *string `json:"usedAt"`
	CreatedAt      string  `json:"createdAt"`
}

// MemberSummary is the roster entry used when picking issue targets.
type MemberSummary struct {
	MemberID  int64   `json:"memberId"`
	StudentID *string `json:"studentId"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
}

type CouponCreateRequest struct {
	CouponName     string `json:"couponName" validate:"required,max=100"`
	DiscountAmount int64  `json:"discountAmount" validate:"required,gt=0"`
}

type CouponRenameRequest struct {
	CouponName string `json:"couponName" validate:"required,max=100"`
}

type CouponCodeCreateRequest struct {
	CouponID    int64   `json:"couponId" validate:"required,gt=0"`
	Description *string `json:"description" validate:"omitempty,max=200"`
}

type IssuedCouponCreateRequest struct {
	CouponID  int64   `json:"couponId" validate:"required,gt=0"`
	MemberIDs []int64 `json:"memberIds" validate:"required,min=1"`
}

// CouponOverview bundles the four page-mount loads. Sections are fetched in
// parallel and fail independently; a nil slice with its error set means that
// section did not load.
type CouponOverview struct {
	Coupons       []Coupon       `json:"coupons"`
	CouponCodes   []CouponCode   `json:"couponCodes"`
	IssuedCoupons []IssuedCoupon `json:"issuedCoupons"`
	Members       []MemberSummary `json:"members"`
	SectionErrors map[string]string `json:"sectionErrors,omitempty"`
}
