package models

import "github.com/google/uuid"

// Document represents an uploaded file. The bytes live in object storage
// under StoredName; this row keeps metadata and non-owning associations to
// parts and child parts.
type Document struct {
	BaseModel
	SupplierID   uuid.UUID `json:"supplier_id" gorm:"type:uuid;not null;index" validate:"required"`
	OriginalName string    `json:"original_name" gorm:"not null;size:255" validate:"required,max=255"`
	StoredName   string    `json:"stored_name" gorm:"not null;size:255"`
	FileType     string    `json:"file_type" gorm:"size:100"`
	FileSize     int64     `json:"file_size" gorm:"not null;default:0"`
	Version      int       `json:"version" gorm:"not null;default:1"`

	// Relationships
	ParentParts []ParentPart `json:"parent_parts,omitempty" gorm:"many2many:document_parent_parts;"`
	ChildParts  []ChildPart  `json:"child_parts,omitempty" gorm:"many2many:document_child_parts;"`
}

// TableName returns the table name for Document
func (Document) TableName() string {
	return "documents"
}
