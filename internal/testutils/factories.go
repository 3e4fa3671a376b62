package testutils

import (
	"time"

	"parts-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// SupplierFactory provides methods to create test supplier accounts
type SupplierFactory struct{}

// NewSupplierFactory creates a new SupplierFactory
func NewSupplierFactory() *SupplierFactory {
	return &SupplierFactory{}
}

// Create creates a test supplier user with default values.
// The password hash corresponds to "supplier123".
func (f *SupplierFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        "supplier-" + id.String()[:8] + "@test.com",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMye1J9JZKxZ9xGmPCwKXUqkLzKXWJ5xZ9K",
		Name:         "Test Supplier",
		Role:         models.UserRoleSupplier,
		CompanyName:  "Test Supplier Co.",
		IsActive:     true,
	}
}

// WithEmail sets a custom email for the supplier
func (f *SupplierFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// Admin creates a test admin user
func (f *SupplierFactory) Admin() *models.User {
	user := f.Create()
	user.Email = "admin-" + user.ID.String()[:8] + "@test.com"
	user.Name = "Test Admin"
	user.Role = models.UserRoleAdmin
	user.CompanyName = "Portal Operator"
	return user
}

// ParentPartFactory provides methods to create test ParentPart data
type ParentPartFactory struct{}

// NewParentPartFactory creates a new ParentPartFactory
func NewParentPartFactory() *ParentPartFactory {
	return &ParentPartFactory{}
}

// Create creates a test ParentPart with default values
func (f *ParentPartFactory) Create() *models.ParentPart {
	id := uuid.New()
	return &models.ParentPart{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SupplierID:      uuid.New(),
		SKU:             "SKU-" + id.String()[:8],
		Name:            "Test Part",
		Description:     "A test part",
		CountryOfOrigin: "USA",
		TotalWeightKg:   10,
		TotalValueUSD:   100,
		Status:          models.PartStatusIncomplete,
	}
}

// WithSupplier sets the owning supplier for the part
func (f *ParentPartFactory) WithSupplier(supplierID uuid.UUID) *models.ParentPart {
	part := f.Create()
	part.SupplierID = supplierID
	return part
}

// WithSKU sets a custom SKU for the part
func (f *ParentPartFactory) WithSKU(sku string) *models.ParentPart {
	part := f.Create()
	part.SKU = sku
	return part
}

// ChildPartFactory provides methods to create test ChildPart data
type ChildPartFactory struct{}

// NewChildPartFactory creates a new ChildPartFactory
func NewChildPartFactory() *ChildPartFactory {
	return &ChildPartFactory{}
}

// Create creates a complete test ChildPart with default values
func (f *ChildPartFactory) Create() *models.ChildPart {
	id := uuid.New()
	child := &models.ChildPart{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ParentPartID:        uuid.New(),
		Identifier:          "COMP-" + id.String()[:8],
		Name:                "Test Component",
		CountryOfOrigin:     "USA",
		WeightKg:            5,
		ValueUSD:            50,
		SteelContentPercent: 80,
		ManufacturingMethod: "Welded",
	}
	child.Recalculate()
	return child
}

// WithParent sets the parent part for the child
func (f *ChildPartFactory) WithParent(parentID uuid.UUID) *models.ChildPart {
	child := f.Create()
	child.ParentPartID = parentID
	return child
}

// WithIdentifier sets a custom identifier for the child
func (f *ChildPartFactory) WithIdentifier(identifier string) *models.ChildPart {
	child := f.Create()
	child.Identifier = identifier
	return child
}

// Incomplete creates a child missing required compliance fields
func (f *ChildPartFactory) Incomplete() *models.ChildPart {
	child := f.Create()
	child.CountryOfOrigin = ""
	child.Recalculate()
	return child
}

// DocumentFactory provides methods to create test Document data
type DocumentFactory struct{}

// NewDocumentFactory creates a new DocumentFactory
func NewDocumentFactory() *DocumentFactory {
	return &DocumentFactory{}
}

// Create creates a test Document with default values
func (f *DocumentFactory) Create() *models.Document {
	id := uuid.New()
	return &models.Document{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SupplierID:   uuid.New(),
		OriginalName: "spec-sheet.pdf",
		StoredName:   id.String() + ".pdf",
		FileType:     "application/pdf",
		FileSize:     2048,
		Version:      1,
	}
}

// WithSupplier sets the owning supplier for the document
func (f *DocumentFactory) WithSupplier(supplierID uuid.UUID) *models.Document {
	doc := f.Create()
	doc.SupplierID = supplierID
	return doc
}

// WithOriginalName sets a custom original file name for the document
func (f *DocumentFactory) WithOriginalName(name string) *models.Document {
	doc := f.Create()
	doc.OriginalName = name
	return doc
}

// FactorySet provides access to all factories
type FactorySet struct {
	Supplier   *SupplierFactory
	ParentPart *ParentPartFactory
	ChildPart  *ChildPartFactory
	Document   *DocumentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Supplier:   NewSupplierFactory(),
		ParentPart: NewParentPartFactory(),
		ChildPart:  NewChildPartFactory(),
		Document:   NewDocumentFactory(),
	}
}
