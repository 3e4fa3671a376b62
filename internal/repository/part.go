package repository

import (
	"parts-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartRepository handles database operations for parent parts and their children
type PartRepository struct {
	db *gorm.DB
}

// NewPartRepository creates a new part repository
func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

// Create creates a parent part together with any embedded children.
// GORM inserts the children in the same transaction as the parent.
func (r *PartRepository) Create(part *models.ParentPart) error {
	return r.db.Create(part).Error
}

// GetByID retrieves a parent part with its children
func (r *PartRepository) GetByID(id uuid.UUID) (*models.ParentPart, error) {
	var part models.ParentPart
	err := r.db.Preload("ChildParts", func(db *gorm.DB) *gorm.DB {
		return db.Order("child_parts.created_at")
	}).First(&part, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

// GetBySKU retrieves a parent part by its natural key within a supplier
func (r *PartRepository) GetBySKU(supplierID uuid.UUID, sku string) (*models.ParentPart, error) {
	var part models.ParentPart
	err := r.db.Preload("ChildParts", func(db *gorm.DB) *gorm.DB {
		return db.Order("child_parts.created_at")
	}).First(&part, "supplier_id = ? AND sku = ?", supplierID, sku).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

// List retrieves parent parts with children, optionally scoped to a supplier
func (r *PartRepository) List(supplierID *uuid.UUID) ([]models.ParentPart, error) {
	var parts []models.ParentPart
	query := r.db.Preload("ChildParts", func(db *gorm.DB) *gorm.DB {
		return db.Order("child_parts.created_at")
	}).Order("created_at")
	if supplierID != nil {
		query = query.Where("supplier_id = ?", *supplierID)
	}
	if err := query.Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

// Search matches parts by SKU, name, or any child identifier/name,
// case-insensitive.
func (r *PartRepository) Search(supplierID *uuid.UUID, query string, limit int) ([]models.ParentPart, error) {
	if limit <= 0 {
		limit = 100
	}
	pattern := "%" + query + "%"

	q := r.db.Preload("ChildParts", func(db *gorm.DB) *gorm.DB {
		return db.Order("child_parts.created_at")
	}).Where(
		`sku ILIKE ? OR name ILIKE ? OR EXISTS (
			SELECT 1 FROM child_parts
			WHERE child_parts.parent_part_id = parent_parts.id
			AND (child_parts.identifier ILIKE ? OR child_parts.name ILIKE ?)
		)`,
		pattern, pattern, pattern, pattern,
	)
	if supplierID != nil {
		q = q.Where("supplier_id = ?", *supplierID)
	}

	var parts []models.ParentPart
	if err := q.Order("created_at").Limit(limit).Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

// Update updates a parent part row (children are not touched)
func (r *PartRepository) Update(part *models.ParentPart) error {
	return r.db.Omit("ChildParts", "Documents").Save(part).Error
}

// UpdateFields applies a partial update to a parent part row
func (r *PartRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.ParentPart{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes a parent part. Children go with it via the FK cascade and
// document association rows via the join table constraint; document
// metadata and stored files are left alone.
func (r *PartRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			`DELETE FROM document_child_parts WHERE child_part_id IN
				(SELECT id FROM child_parts WHERE parent_part_id = ?)`, id,
		).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM document_parent_parts WHERE parent_part_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ParentPart{}, "id = ?", id).Error
	})
}

// AddChild inserts a child and refreshes the parent's derived status in the
// same transaction.
func (r *PartRepository) AddChild(parentID uuid.UUID, child *models.ChildPart) error {
	child.ParentPartID = parentID
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(child).Error; err != nil {
			return err
		}
		return recalculateStatusTx(tx, parentID)
	})
}

// GetChild retrieves a child by ID within a parent
func (r *PartRepository) GetChild(parentID, childID uuid.UUID) (*models.ChildPart, error) {
	var child models.ChildPart
	err := r.db.First(&child, "id = ? AND parent_part_id = ?", childID, parentID).Error
	if err != nil {
		return nil, err
	}
	return &child, nil
}

// GetChildByIdentifier retrieves a child by its natural key within a parent
func (r *PartRepository) GetChildByIdentifier(parentID uuid.UUID, identifier string) (*models.ChildPart, error) {
	var child models.ChildPart
	err := r.db.First(&child, "parent_part_id = ? AND identifier = ?", parentID, identifier).Error
	if err != nil {
		return nil, err
	}
	return &child, nil
}

// UpdateChild saves a child and refreshes the parent's derived status in the
// same transaction.
func (r *PartRepository) UpdateChild(child *models.ChildPart) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Documents").Save(child).Error; err != nil {
			return err
		}
		return recalculateStatusTx(tx, child.ParentPartID)
	})
}

// DeleteChild removes a child and refreshes the parent's derived status in
// the same transaction.
func (r *PartRepository) DeleteChild(parentID, childID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM document_child_parts WHERE child_part_id = ?`, childID).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.ChildPart{}, "id = ? AND parent_part_id = ?", childID, parentID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return recalculateStatusTx(tx, parentID)
	})
}

// RecalculateStatus re-derives and persists the parent's status
func (r *PartRepository) RecalculateStatus(id uuid.UUID) (models.PartStatus, error) {
	var status models.PartStatus
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		status, err = deriveStatusTx(tx, id)
		if err != nil {
			return err
		}
		return tx.Model(&models.ParentPart{}).Where("id = ?", id).
			Update("status", status).Error
	})
	return status, err
}

// CountByStatus returns part counts keyed by status, optionally per supplier
func (r *PartRepository) CountByStatus(supplierID *uuid.UUID) (map[models.PartStatus]int64, error) {
	type row struct {
		Status models.PartStatus
		N      int64
	}
	var rows []row
	query := r.db.Model(&models.ParentPart{}).Select("status, count(*) as n").Group("status")
	if supplierID != nil {
		query = query.Where("supplier_id = ?", *supplierID)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[models.PartStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.N
	}
	return counts, nil
}

func deriveStatusTx(tx *gorm.DB, id uuid.UUID) (models.PartStatus, error) {
	var part models.ParentPart
	if err := tx.Preload("ChildParts").First(&part, "id = ?", id).Error; err != nil {
		return "", err
	}
	return part.DeriveStatus(), nil
}

func recalculateStatusTx(tx *gorm.DB, id uuid.UUID) error {
	status, err := deriveStatusTx(tx, id)
	if err != nil {
		return err
	}
	return tx.Model(&models.ParentPart{}).Where("id = ?", id).Update("status", status).Error
}
