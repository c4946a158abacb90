package services

import (
	"encoding/json"
	"time"

	"github.com/dkuaegis/aegis-adminpage/internal/app/models"
	"github.com/dkuaegis/aegis-adminpage/internal/infrastructures"
	"gorm.io/gorm"
)

// AuditService keeps a gateway-local trail of mutating operator actions.
// Logging is best-effort: a failed write never fails the action it records.
type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{
		db: db,
	}
}

// LogAction records one operator mutation with its request payload and
// outcome. requestID is the idempotency key sent upstream, when one existed.
func (s *AuditService) LogAction(action models.ActionType, requestID string, payload, outcome any, succeeded bool) {
	if s == nil || s.db == nil {
		return
	}

	entry := &models.ActionLog{
		Action:    action,
		Succeeded: succeeded,
		CreatedAt: time.Now(),
	}
	if requestID != "" {
		entry.RequestID = &requestID
	}
	if encoded := marshalForAudit(payload); encoded != nil {
		entry.Payload = encoded
	}
	if encoded := marshalForAudit(outcome); encoded != nil {
		entry.Outcome = encoded
	}

	if err := s.db.Create(entry).Error; err != nil {
		infrastructures.ComponentLogger("audit").Warnf("failed to record %s action: %v", action, err)
	}
}

// RecentActions returns the latest recorded actions, newest first.
func (s *AuditService) RecentActions(limit int) ([]models.ActionLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []models.ActionLog
	err := s.db.Order("created_at DESC").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func marshalForAudit(v any) *string {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		infrastructures.ComponentLogger("audit").Warnf("failed to marshal audit data: %v", err)
		return nil
	}
	encoded := string(data)
	return &encoded
}
