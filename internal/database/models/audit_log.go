package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FieldChange records a single field-level delta inside an audit entry.
// Old is nil for creates, New is nil for deletes.
type FieldChange struct {
	Field string `json:"field"`
	Old   any    `json:"old,omitempty"`
	New   any    `json:"new,omitempty"`
}

// AuditLog is an immutable record of a mutation to a tracked entity.
// Entries are append-only; nothing in the application updates or deletes
// them.
type AuditLog struct {
	ID           uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	UserEmail    string          `json:"user_email" gorm:"not null;size:255"`
	Action       AuditAction     `json:"action" gorm:"type:varchar(20);not null"`
	EntityType   AuditEntityType `json:"entity_type" gorm:"type:varchar(30);not null;index"`
	EntityID     uuid.UUID       `json:"entity_id" gorm:"type:uuid;not null;index"`
	SupplierID   *uuid.UUID      `json:"supplier_id,omitempty" gorm:"type:uuid;index"`
	FieldChanges json.RawMessage `json:"field_changes" gorm:"type:jsonb"`
	Timestamp    time.Time       `json:"timestamp" gorm:"not null;index"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// BeforeCreate sets the UUID and timestamp if not already set
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now().UTC()
	}
	return nil
}

// Changes decodes the stored field changes list.
func (a *AuditLog) Changes() ([]FieldChange, error) {
	if len(a.FieldChanges) == 0 {
		return nil, nil
	}
	var changes []FieldChange
	if err := json.Unmarshal(a.FieldChanges, &changes); err != nil {
		return nil, err
	}
	return changes, nil
}
