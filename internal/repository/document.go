package repository

import (
	"parts-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRepository handles database operations for document metadata and
// their part associations. File bytes live in object storage, not here.
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create inserts a document and its association rows in one transaction
func (r *DocumentRepository) Create(doc *models.Document, parentPartIDs, childPartIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("ParentParts", "ChildParts").Create(doc).Error; err != nil {
			return err
		}
		return replaceAssociationsTx(tx, doc, parentPartIDs, childPartIDs)
	})
}

// GetByID retrieves a document with its associations
func (r *DocumentRepository) GetByID(id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := r.db.Preload("ParentParts").Preload("ChildParts").First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetByOriginalName retrieves the most recent document a supplier uploaded
// under the given original filename.
func (r *DocumentRepository) GetByOriginalName(supplierID uuid.UUID, name string) (*models.Document, error) {
	var doc models.Document
	err := r.db.Where("supplier_id = ? AND original_name = ?", supplierID, name).
		Order("version DESC").
		First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// List retrieves documents, optionally scoped to a supplier
func (r *DocumentRepository) List(supplierID *uuid.UUID) ([]models.Document, error) {
	var docs []models.Document
	query := r.db.Preload("ParentParts").Preload("ChildParts").Order("created_at")
	if supplierID != nil {
		query = query.Where("supplier_id = ?", *supplierID)
	}
	if err := query.Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// Update updates document metadata (associations are managed separately)
func (r *DocumentRepository) Update(doc *models.Document) error {
	return r.db.Omit("ParentParts", "ChildParts").Save(doc).Error
}

// ReplaceAssociations rewrites the document's part associations
func (r *DocumentRepository) ReplaceAssociations(doc *models.Document, parentPartIDs, childPartIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return replaceAssociationsTx(tx, doc, parentPartIDs, childPartIDs)
	})
}

// Delete removes a document row and its association rows
func (r *DocumentRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM document_parent_parts WHERE document_id = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM document_child_parts WHERE document_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Document{}, "id = ?", id).Error
	})
}

func replaceAssociationsTx(tx *gorm.DB, doc *models.Document, parentPartIDs, childPartIDs []uuid.UUID) error {
	if err := tx.Exec(`DELETE FROM document_parent_parts WHERE document_id = ?`, doc.ID).Error; err != nil {
		return err
	}
	if err := tx.Exec(`DELETE FROM document_child_parts WHERE document_id = ?`, doc.ID).Error; err != nil {
		return err
	}
	for _, pid := range parentPartIDs {
		if err := tx.Exec(
			`INSERT INTO document_parent_parts (document_id, parent_part_id) VALUES (?, ?)`,
			doc.ID, pid,
		).Error; err != nil {
			return err
		}
	}
	for _, cid := range childPartIDs {
		if err := tx.Exec(
			`INSERT INTO document_child_parts (document_id, child_part_id) VALUES (?, ?)`,
			doc.ID, cid,
		).Error; err != nil {
			return err
		}
	}
	return nil
}
