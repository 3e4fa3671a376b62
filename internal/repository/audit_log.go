package repository

import (
	"parts-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// AuditLogRepository handles append and query operations for the audit log.
// The log is append-only; this repository exposes no update or delete.
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create appends an audit entry
func (r *AuditLogRepository) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

// List retrieves audit entries newest-first, applying the filter
func (r *AuditLogRepository) List(filter AuditLogFilter) ([]models.AuditLog, error) {
	query := r.db.Model(&models.AuditLog{})

	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.StartDate != nil {
		query = query.Where("timestamp >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("timestamp <= ?", *filter.EndDate)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	var entries []models.AuditLog
	if err := query.Order("timestamp DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
