package models

import (
	"time"

	"github.com/google/uuid"
)

// ActionType classifies a mutating operator action recorded in the local log.
type ActionType string

const (
	ActionPointGrant      ActionType = "POINT_GRANT"
	ActionPointBatchGrant ActionType = "POINT_BATCH_GRANT"
	ActionCouponMutation  ActionType = "COUPON_MUTATION"
	ActionFlagUpdate      ActionType = "FLAG_UPDATE"
	ActionMemberDemotion  ActionType = "MEMBER_DEMOTION"
)

// ActionLog is a gateway-local record of one mutating operator action and its
// outcome. RequestID is the idempotency key sent upstream, when the action
// carried one.
type ActionLog struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Action    ActionType `json:"action" gorm:"type:varchar(30);not null;index"`
	RequestID *string    `json:"request_id" gorm:"type:varchar(36);index"`
	Payload   *string    `json:"payload" gorm:"type:jsonb"`
	Outcome   *string    `json:"outcome" gorm:"type:jsonb"`
	Succeeded bool       `json:"succeeded" gorm:"not null"`
	CreatedAt time.Time  `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}
