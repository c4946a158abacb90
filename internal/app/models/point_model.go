package models

type PointTransactionType string

const (
	PointTransactionEarn  PointTransactionType = "EARN"
	PointTransactionSpend PointTransactionType = "SPEND"
)

// PointLedgerItem is one row of the unified point ledger.
type PointLedgerItem struct {
	PointTransactionID int64                `json:"pointTransactionId"`
	MemberID           int64                `json:"memberId"`
	StudentID          *string              `json:"studentId"`
	MemberName         string               `json:"memberName"`
	TransactionType    PointTransactionType `json:"transactionType"`
	Amount             int64                `json:"amount"`
	Reason             string               `json:"reason"`
	CreatedAt          string               `json:"createdAt"`
	IdempotencyKey     *string              `json:"idempotencyKey"`
}

type PointLedgerPage = Page[PointLedgerItem]

// LedgerQuery is the filter set for a ledger page fetch. From/To are calendar
// dates in YYYY-MM-DD form.
type LedgerQuery struct {
	Page            int                  `json:"page"`
	Size            int                  `json:"size"`
	MemberKeyword   string               `json:"memberKeyword"`
	TransactionType PointTransactionType `json:"transactionType"`
	From            string               `json:"from"`
	To              string               `json:"to"`
}

// PointHistoryItem is one entry of a member's recent transaction history.
type PointHistoryItem struct {
	PointTransactionID int64                `json:"pointTransactionId"`
	TransactionType    PointTransactionType `json:"transactionType"`
	Amount             int64                `json:"amount"`
	Reason             string               `json:"reason"`
	CreatedAt          string               `json:"createdAt"`
}

// MemberPoint is the aggregated point state of one member. Balance is
// server-computed; the gateway only displays it.
type MemberPoint struct {
	MemberID      int64              `json:"memberId"`
	StudentID     *string            `json:"studentId"`
	MemberName    string             `json:"memberName"`
	Balance       int64              `json:"balance"`
	TotalEarned   int64              `json:"totalEarned"`
	RecentHistory []PointHistoryItem `json:"recentHistory"`
}

// MemberSearchItem is the lightweight member identity used for grant-target
// selection. Immutable once fetched.
type MemberSearchItem struct {
	MemberID   int64   `json:"memberId"`
	StudentID  *string `json:"studentId"`
	MemberName string  `json:"memberName"`
}

// PointGrantRequest is a single point-issuance intent. RequestID is the
// idempotency key; retries of the same logical attempt must reuse it.
type PointGrantRequest struct {
	RequestID string `json:"requestId"`
	MemberID  int64  `json:"memberId" validate:"required,gt=0"`
	Amount    int64  `json:"amount" validate:"required,gt=0"`
	Reason    string `json:"reason" validate:"required,max=200"`
}

// PointGrantResult is the upstream outcome of a single grant. Created false
// means the requestId was recognized as a duplicate of a prior successful
// attempt and nothing new was recorded.
type PointGrantResult struct {
	Created            bool   `json:"created"`
	PointTransactionID *int64 `json:"pointTransactionId"`
	MemberID           int64  `json:"memberId"`
	NewBalance         int64  `json:"newBalance"`
}

// PointBatchGrantRequest applies one grant uniformly to every member in
// MemberIDs under a single idempotency key.
type PointBatchGrantRequest struct {
	RequestID string  `json:"requestId"`
	MemberIDs []int64 `json:"memberIds" validate:"required,min=1"`
	Amount    int64   `json:"amount" validate:"required,gt=0"`
	Reason    string  `json:"reason" validate:"required,max=200"`
}

type BatchGrantStatus string

const (
	BatchGrantSuccess   BatchGrantStatus = "SUCCESS"
	BatchGrantDuplicate BatchGrantStatus = "DUPLICATE"
	BatchGrantFailed    BatchGrantStatus = "FAILED"
)

// BatchGrantMemberResult is the terminal outcome for one member of a batch.
type BatchGrantMemberResult struct {
	MemberID           int64            `json:"memberId"`
	Status             BatchGrantStatus `json:"status"`
	PointTransactionID *int64           `json:"pointTransactionId"`
	NewBalance         *int64           `json:"newBalance"`
	ErrorName          *string          `json:"errorName"`
}

// BatchGrantResult aggregates a whole batch. The counts come from the
// upstream verbatim and Results keeps the upstream order.
type BatchGrantResult struct {
	TotalRequested int                      `json:"totalRequested"`
	SuccessCount   int                      `json:"successCount"`
	DuplicateCount int                      `json:"duplicateCount"`
	FailureCount   int                      `json:"failureCount"`
	Results        []BatchGrantMemberResult `json:"results"`
}

// RefreshOutcome reports the post-mutation resynchronization. A failed
// refresh is carried as a message; it never rolls back or hides the grant
// outcome already produced.
type RefreshOutcome struct {
	Ledger           *PointLedgerPage `json:"ledger,omitempty"`
	LedgerError      string           `json:"ledgerError,omitempty"`
	MemberPoint      *MemberPoint     `json:"memberPoint,omitempty"`
	MemberPointError string           `json:"memberPointError,omitempty"`
}

// GrantOutcome is the coordinator-level result of one single grant: the
// upstream result, the operator-facing message (duplicates get a distinct
// one), and the refresh that followed.
type GrantOutcome struct {
	Result  PointGrantResult `json:"result"`
	Message string           `json:"message"`
	Refresh RefreshOutcome   `json:"refresh"`
}

// BatchGrantOutcome is the coordinator-level result of one batch grant.
type BatchGrantOutcome struct {
	Result  BatchGrantResult `json:"result"`
	Message string           `json:"message"`
	Refresh RefreshOutcome   `json:"refresh"`
}
