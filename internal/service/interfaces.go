package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"parts-portal-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PartServiceInterface defines the interface for the part service
type PartServiceInterface interface {
	ListParts(actor *models.User, supplierID *uuid.UUID) ([]PartResponse, error)
	GetPart(actor *models.User, id uuid.UUID) (*PartResponse, error)
	CreatePart(actor *models.User, supplierID *uuid.UUID, req *CreatePartRequest) (*PartResponse, error)
	UpdatePart(actor *models.User, id uuid.UUID, req *UpdatePartRequest) (*PartResponse, error)
	DeletePart(actor *models.User, id uuid.UUID) error
	GetStats(actor *models.User, supplierID *uuid.UUID) (*PartStatsResponse, error)
	SearchParts(actor *models.User, supplierID *uuid.UUID, query string, limit int) ([]PartResponse, error)
	AddChild(actor *models.User, parentID uuid.UUID, req *ChildPartRequest) (*ChildPartResponse, error)
	UpdateChild(actor *models.User, parentID, childID uuid.UUID, req *UpdateChildPartRequest) (*ChildPartResponse, error)
	DeleteChild(actor *models.User, parentID, childID uuid.UUID) error
	DuplicateChild(actor *models.User, parentID, childID uuid.UUID) (*ChildPartResponse, error)
}

// SupplierServiceInterface defines the interface for the supplier service
type SupplierServiceInterface interface {
	ListSuppliers(limit, offset int) (*SupplierListResponse, error)
	GetSupplier(id uuid.UUID) (*SupplierResponse, error)
	CreateSupplier(actor *models.User, req *CreateSupplierRequest) (*SupplierResponse, error)
	UpdateSupplier(actor *models.User, id uuid.UUID, req *UpdateSupplierRequest) (*SupplierResponse, error)
	DeleteSupplier(actor *models.User, id uuid.UUID) error
}

// DocumentServiceInterface defines the interface for the document service
type DocumentServiceInterface interface {
	ListDocuments(actor *models.User, supplierID *uuid.UUID) ([]DocumentResponse, error)
	GetDocument(actor *models.User, id uuid.UUID) (*DocumentResponse, error)
	UploadDocument(ctx context.Context, actor *models.User, supplierID *uuid.UUID, req *UploadDocumentRequest) (*DocumentUploadResponse, error)
	DownloadDocument(ctx context.Context, actor *models.User, id uuid.UUID) (io.ReadCloser, *models.Document, error)
	UpdateDocument(actor *models.User, id uuid.UUID, req *UpdateDocumentRequest) (*DocumentResponse, error)
	DeleteDocument(ctx context.Context, actor *models.User, id uuid.UUID) error
}

// ImportServiceInterface defines the interface for workbook import/export
type ImportServiceInterface interface {
	ImportWorkbook(actor *models.User, supplierID *uuid.UUID, reader io.Reader) (*ImportResult, error)
	ExportWorkbook(actor *models.User, supplierID *uuid.UUID) (*excelize.File, error)
	TemplateWorkbook() (*excelize.File, error)
}

// AuditLogServiceInterface defines the interface for the audit log service
type AuditLogServiceInterface interface {
	ListEntries(query AuditLogQuery) ([]AuditLogEntryResponse, error)
	ExportEntries(query AuditLogQuery) (*excelize.File, error)
}
