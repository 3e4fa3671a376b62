package repository

import (
	"time"

	"parts-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetSuppliers(limit, offset int) ([]models.User, int64, error)
	GetSupplierByID(id uuid.UUID) (*models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// PartRepositoryInterface defines the interface for parent/child part repository operations.
// Operations touching a parent and its children run inside one transaction so
// the part document stays internally consistent under concurrent edits.
type PartRepositoryInterface interface {
	Create(part *models.ParentPart) error
	GetByID(id uuid.UUID) (*models.ParentPart, error)
	GetBySKU(supplierID uuid.UUID, sku string) (*models.ParentPart, error)
	List(supplierID *uuid.UUID) ([]models.ParentPart, error)
	Search(supplierID *uuid.UUID, query string, limit int) ([]models.ParentPart, error)
	Update(part *models.ParentPart) error
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error

	AddChild(parentID uuid.UUID, child *models.ChildPart) error
	GetChild(parentID, childID uuid.UUID) (*models.ChildPart, error)
	GetChildByIdentifier(parentID uuid.UUID, identifier string) (*models.ChildPart, error)
	UpdateChild(child *models.ChildPart) error
	DeleteChild(parentID, childID uuid.UUID) error

	RecalculateStatus(id uuid.UUID) (models.PartStatus, error)
	CountByStatus(supplierID *uuid.UUID) (map[models.PartStatus]int64, error)
}

// DocumentRepositoryInterface defines the interface for document metadata operations
type DocumentRepositoryInterface interface {
	Create(doc *models.Document, parentPartIDs, childPartIDs []uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Document, error)
	GetByOriginalName(supplierID uuid.UUID, name string) (*models.Document, error)
	List(supplierID *uuid.UUID) ([]models.Document, error)
	Update(doc *models.Document) error
	ReplaceAssociations(doc *models.Document, parentPartIDs, childPartIDs []uuid.UUID) error
	Delete(id uuid.UUID) error
}

// AuditLogFilter narrows audit log queries. Zero values mean "no filter".
type AuditLogFilter struct {
	SupplierID *uuid.UUID
	EntityType models.AuditEntityType
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
}

// AuditLogRepositoryInterface defines the append/list interface for audit entries.
// There is deliberately no update or delete: the log is immutable.
type AuditLogRepositoryInterface interface {
	Create(entry *models.AuditLog) error
	List(filter AuditLogFilter) ([]models.AuditLog, error)
}
