package service

import (
	"encoding/json"
	"reflect"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"parts-portal-backend/internal/database/models"
	"parts-portal-backend/internal/repository"
)

// ComputeFieldChanges diffs two snapshots of a tracked entity into a
// field-level change list. A nil old snapshot means the entity was created,
// so every populated field is recorded from nil; a nil new snapshot means it
// was deleted, so every populated field is recorded to nil. For updates only
// fields whose values actually differ are included. The result is sorted by
// field name so entries are deterministic.
func ComputeFieldChanges(oldSnapshot, newSnapshot map[string]any) []models.FieldChange {
	var changes []models.FieldChange

	switch {
	case oldSnapshot == nil && newSnapshot == nil:
		return nil
	case oldSnapshot == nil:
		for field, value := range newSnapshot {
			if isZeroValue(value) {
				continue
			}
			changes = append(changes, models.FieldChange{Field: field, New: value})
		}
	case newSnapshot == nil:
		for field, value := range oldSnapshot {
			if isZeroValue(value) {
				continue
			}
			changes = append(changes, models.FieldChange{Field: field, Old: value})
		}
	default:
		for field, oldValue := range oldSnapshot {
			newValue, ok := newSnapshot[field]
			if !ok {
				continue
			}
			if !reflect.DeepEqual(normalizeValue(oldValue), normalizeValue(newValue)) {
				changes = append(changes, models.FieldChange{Field: field, Old: oldValue, New: newValue})
			}
		}
	}

	sort.Slice(changes, func(i, j int) bool { return changes[i].Field < changes[j].Field })
	return changes
}

// isZeroValue reports whether a snapshot value carries no information worth
// recording on create or delete entries.
func isZeroValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	case int:
		return v == 0
	case int64:
		return v == 0
	default:
		return false
	}
}

// normalizeValue routes values through JSON so that equivalent numerics
// compare equal regardless of their Go type.
func normalizeValue(value any) any {
	raw, err := json.Marshal(value)
	if err != nil {
		return value
	}
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return value
	}
	return normalized
}

// AuditRecorder appends audit entries for entity mutations. Recording is
// best effort: a failed append is logged and never fails the operation that
// triggered it.
type AuditRecorder struct {
	repo repository.AuditLogRepositoryInterface
	log  *logrus.Logger
}

// NewAuditRecorder creates a new audit recorder
func NewAuditRecorder(repo repository.AuditLogRepositoryInterface, log *logrus.Logger) *AuditRecorder {
	return &AuditRecorder{repo: repo, log: log}
}

// Record appends one audit entry. Update entries with an empty change list
// are suppressed: a save that changed nothing is not an auditable event.
func (r *AuditRecorder) Record(actor *models.User, action models.AuditAction, entityType models.AuditEntityType, entityID uuid.UUID, supplierID *uuid.UUID, changes []models.FieldChange) {
	if action == models.AuditActionUpdate && len(changes) == 0 {
		return
	}

	encoded, err := json.Marshal(changes)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"entity_type": entityType,
			"entity_id":   entityID,
		}).WithError(err).Warn("failed to encode audit field changes")
		encoded = []byte("[]")
	}

	entry := &models.AuditLog{
		UserID:       actor.ID,
		UserEmail:    actor.Email,
		Action:       action,
		EntityType:   entityType,
		EntityID:     entityID,
		SupplierID:   supplierID,
		FieldChanges: encoded,
	}
	if err := r.repo.Create(entry); err != nil {
		r.log.WithFields(logrus.Fields{
			"action":      action,
			"entity_type": entityType,
			"entity_id":   entityID,
		}).WithError(err).Error("failed to write audit log entry")
	}
}

// RecordSummary appends an entry whose changes are a flat summary map, used
// for batch operations that have counters instead of field deltas.
func (r *AuditRecorder) RecordSummary(actor *models.User, action models.AuditAction, entityType models.AuditEntityType, entityID uuid.UUID, supplierID *uuid.UUID, summary map[string]any) {
	fields := make([]string, 0, len(summary))
	for field := range summary {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	changes := make([]models.FieldChange, 0, len(fields))
	for _, field := range fields {
		changes = append(changes, models.FieldChange{Field: field, New: summary[field]})
	}
	r.Record(actor, action, entityType, entityID, supplierID, changes)
}

// snapshotForAudit is a convenience for building entity snapshots: it
// marshals a struct with json tags into the generic map form the differ
// works on.
func snapshotForAudit(entity any) map[string]any {
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil
	}
	var snapshot map[string]any
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil
	}
	return snapshot
}
