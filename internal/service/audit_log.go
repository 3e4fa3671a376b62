package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"parts-portal-backend/internal/database/models"
	"parts-portal-backend/internal/excel"
	"parts-portal-backend/internal/repository"
)

// AuditLogService serves the admin-facing audit trail
type AuditLogService struct {
	repo repository.AuditLogRepositoryInterface
}

// NewAuditLogService creates a new audit log service
func NewAuditLogService(repo repository.AuditLogRepositoryInterface) *AuditLogService {
	return &AuditLogService{repo: repo}
}

// AuditLogQuery narrows an audit trail listing
type AuditLogQuery struct {
	SupplierID *uuid.UUID
	EntityType string
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
}

// AuditLogEntryResponse represents one audit entry in responses
type AuditLogEntryResponse struct {
	ID           uuid.UUID            `json:"id"`
	UserID       uuid.UUID            `json:"user_id"`
	UserEmail    string               `json:"user_email"`
	Action       string               `json:"action"`
	EntityType   string               `json:"entity_type"`
	EntityID     uuid.UUID            `json:"entity_id"`
	SupplierID   *uuid.UUID           `json:"supplier_id,omitempty"`
	FieldChanges []models.FieldChange `json:"field_changes"`
	Timestamp    string               `json:"timestamp"`
}

// ListEntries returns audit entries matching the query, newest first
func (s *AuditLogService) ListEntries(query AuditLogQuery) ([]AuditLogEntryResponse, error) {
	entries, err := s.list(query)
	if err != nil {
		return nil, err
	}

	responses := make([]AuditLogEntryResponse, len(entries))
	for i := range entries {
		responses[i] = *convertEntryToResponse(&entries[i])
	}
	return responses, nil
}

// ExportEntries renders matching audit entries as an xlsx workbook
func (s *AuditLogService) ExportEntries(query AuditLogQuery) (*excelize.File, error) {
	entries, err := s.list(query)
	if err != nil {
		return nil, err
	}
	return excel.WriteAuditLogWorkbook(entries)
}

func (s *AuditLogService) list(query AuditLogQuery) ([]models.AuditLog, error) {
	filter := repository.AuditLogFilter{
		SupplierID: query.SupplierID,
		EntityType: models.AuditEntityType(query.EntityType),
		StartDate:  query.StartDate,
		EndDate:    query.EndDate,
		Limit:      query.Limit,
	}
	entries, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}

func convertEntryToResponse(entry *models.AuditLog) *AuditLogEntryResponse {
	changes, err := entry.Changes()
	if err != nil || changes == nil {
		changes = []models.FieldChange{}
	}
	return &AuditLogEntryResponse{
		ID:           entry.ID,
		UserID:       entry.UserID,
		UserEmail:    entry.UserEmail,
		Action:       string(entry.Action),
		EntityType:   string(entry.EntityType),
		EntityID:     entry.EntityID,
		SupplierID:   entry.SupplierID,
		FieldChanges: changes,
		Timestamp:    entry.Timestamp.Format(time.RFC3339),
	}
}
