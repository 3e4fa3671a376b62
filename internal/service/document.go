package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"parts-portal-backend/internal/database/models"
	apperrors "parts-portal-backend/internal/errors"
	"parts-portal-backend/internal/repository"
	"parts-portal-backend/internal/storage"
)

// DocumentService handles document metadata and the backing object storage
type DocumentService struct {
	repo     repository.DocumentRepositoryInterface
	partRepo repository.PartRepositoryInterface
	store    storage.Client
	bucket   string
	audit    *AuditRecorder
}

// NewDocumentService creates a new document service
func NewDocumentService(repo repository.DocumentRepositoryInterface, partRepo repository.PartRepositoryInterface, store storage.Client, bucket string, audit *AuditRecorder) *DocumentService {
	return &DocumentService{
		repo:     repo,
		partRepo: partRepo,
		store:    store,
		bucket:   bucket,
		audit:    audit,
	}
}

// UploadDocumentRequest carries an uploaded file and its target associations
type UploadDocumentRequest struct {
	FileName      string
	ContentType   string
	Size          int64
	Reader        io.Reader
	ParentPartIDs []uuid.UUID
	ChildPartIDs  []uuid.UUID
}

// UpdateDocumentRequest represents a partial update to document metadata.
// Association slices replace the existing associations when non-nil.
type UpdateDocumentRequest struct {
	OriginalName  *string      `json:"original_name" validate:"omitempty,max=255"`
	ParentPartIDs *[]uuid.UUID `json:"parent_part_ids"`
	ChildPartIDs  *[]uuid.UUID `json:"child_part_ids"`
}

// DocumentResponse represents the response data for a document
type DocumentResponse struct {
	ID            uuid.UUID   `json:"id"`
	SupplierID    uuid.UUID   `json:"supplier_id"`
	OriginalName  string      `json:"original_name"`
	FileType      string      `json:"file_type"`
	FileSize      int64       `json:"file_size"`
	Version       int         `json:"version"`
	ParentPartIDs []uuid.UUID `json:"parent_part_ids"`
	ChildPartIDs  []uuid.UUID `json:"child_part_ids"`
	CreatedAt     string      `json:"created_at"`
	UpdatedAt     string      `json:"updated_at"`
}

// DocumentUploadResponse is the upload result, flagging re-uploads of a
// filename the supplier already has
type DocumentUploadResponse struct {
	Document         DocumentResponse `json:"document"`
	DuplicateWarning bool             `json:"duplicate_warning"`
}

// documentAuditView is the audited projection of a document
type documentAuditView struct {
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
	FileSize     int64  `json:"file_size"`
	Version      int    `json:"version"`
}

func documentSnapshot(d *models.Document) map[string]any {
	return snapshotForAudit(documentAuditView{
		OriginalName: d.OriginalName,
		FileType:     d.FileType,
		FileSize:     d.FileSize,
		Version:      d.Version,
	})
}

// canAccessDocument mirrors part access: suppliers only see their own
// documents, and a foreign document looks like a missing one.
func canAccessDocument(actor *models.User, doc *models.Document) bool {
	return actor.IsAdmin() || doc.SupplierID == actor.ID
}

// ListDocuments returns the documents visible to the actor, optionally
// narrowed to one supplier (admins only)
func (s *DocumentService) ListDocuments(actor *models.User, supplierID *uuid.UUID) ([]DocumentResponse, error) {
	scope, err := scopeSupplier(actor, supplierID)
	if err != nil {
		return nil, err
	}

	docs, err := s.repo.List(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = *s.convertToResponse(&docs[i])
	}
	return responses, nil
}

// GetDocument retrieves one document's metadata
func (s *DocumentService) GetDocument(actor *models.User, id uuid.UUID) (*DocumentResponse, error) {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrDocumentNotFound
	}
	if !canAccessDocument(actor, doc) {
		return nil, apperrors.ErrDocumentNotFound
	}
	return s.convertToResponse(doc), nil
}

// UploadDocument stores the file bytes under a generated object name and
// records the metadata. Re-uploading a filename the supplier already has
// creates a new row with a bumped version and a duplicate warning; the
// previous version stays downloadable.
func (s *DocumentService) UploadDocument(ctx context.Context, actor *models.User, supplierID *uuid.UUID, req *UploadDocumentRequest) (*DocumentUploadResponse, error) {
	if strings.TrimSpace(req.FileName) == "" {
		return nil, apperrors.NewValidationError("file", "file name is required")
	}

	owner := actor.ID
	if actor.IsAdmin() {
		if supplierID == nil {
			return nil, apperrors.ErrSupplierIDRequired
		}
		owner = *supplierID
	}

	if err := s.checkAssociations(owner, req.ParentPartIDs, req.ChildPartIDs); err != nil {
		return nil, err
	}

	version := 1
	duplicate := false
	if existing, err := s.repo.GetByOriginalName(owner, req.FileName); err == nil {
		version = existing.Version + 1
		duplicate = true
	}

	storedName := uuid.New().String() + strings.ToLower(filepath.Ext(req.FileName))
	if err := s.store.PutObject(ctx, s.bucket, storedName, req.Reader, req.Size, req.ContentType); err != nil {
		return nil, apperrors.NewStorageError("put", err)
	}

	doc := &models.Document{
		SupplierID:   owner,
		OriginalName: req.FileName,
		StoredName:   storedName,
		FileType:     req.ContentType,
		FileSize:     req.Size,
		Version:      version,
	}
	if err := s.repo.Create(doc, req.ParentPartIDs, req.ChildPartIDs); err != nil {
		// metadata failed, don't leave the blob orphaned
		_ = s.store.RemoveObject(ctx, s.bucket, storedName)
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	s.audit.Record(actor, models.AuditActionCreate, models.AuditEntityDocument, doc.ID, &owner,
		ComputeFieldChanges(nil, documentSnapshot(doc)))

	return &DocumentUploadResponse{
		Document:         *s.convertToResponse(doc),
		DuplicateWarning: duplicate,
	}, nil
}

// DownloadDocument opens the stored bytes for streaming. The caller owns
// the returned reader.
func (s *DocumentService) DownloadDocument(ctx context.Context, actor *models.User, id uuid.UUID) (io.ReadCloser, *models.Document, error) {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, nil, apperrors.ErrDocumentNotFound
	}
	if !canAccessDocument(actor, doc) {
		return nil, nil, apperrors.ErrDocumentNotFound
	}

	reader, err := s.store.GetObject(ctx, s.bucket, doc.StoredName)
	if err != nil {
		return nil, nil, apperrors.NewStorageError("get", err)
	}
	return reader, doc, nil
}

// UpdateDocument renames a document and/or replaces its part associations
func (s *DocumentService) UpdateDocument(actor *models.User, id uuid.UUID, req *UpdateDocumentRequest) (*DocumentResponse, error) {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrDocumentNotFound
	}
	if !canAccessDocument(actor, doc) {
		return nil, apperrors.ErrDocumentNotFound
	}

	before := documentSnapshot(doc)

	if req.OriginalName != nil && strings.TrimSpace(*req.OriginalName) != "" {
		doc.OriginalName = strings.TrimSpace(*req.OriginalName)
	}

	if req.ParentPartIDs != nil || req.ChildPartIDs != nil {
		parentIDs := associationIDs(doc.ParentParts)
		if req.ParentPartIDs != nil {
			parentIDs = *req.ParentPartIDs
		}
		childIDs := childAssociationIDs(doc.ChildParts)
		if req.ChildPartIDs != nil {
			childIDs = *req.ChildPartIDs
		}
		if err := s.checkAssociations(doc.SupplierID, parentIDs, childIDs); err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceAssociations(doc, parentIDs, childIDs); err != nil {
			return nil, fmt.Errorf("failed to update document associations: %w", err)
		}
	}

	if err := s.repo.Update(doc); err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	s.audit.Record(actor, models.AuditActionUpdate, models.AuditEntityDocument, doc.ID, &doc.SupplierID,
		ComputeFieldChanges(before, documentSnapshot(doc)))

	// reload so the response reflects the replaced associations
	if fresh, err := s.repo.GetByID(id); err == nil {
		doc = fresh
	}
	return s.convertToResponse(doc), nil
}

// DeleteDocument removes the metadata, the associations and the stored bytes
func (s *DocumentService) DeleteDocument(ctx context.Context, actor *models.User, id uuid.UUID) error {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrDocumentNotFound
	}
	if !canAccessDocument(actor, doc) {
		return apperrors.ErrDocumentNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if err := s.store.RemoveObject(ctx, s.bucket, doc.StoredName); err != nil {
		return apperrors.NewStorageError("remove", err)
	}

	s.audit.Record(actor, models.AuditActionDelete, models.AuditEntityDocument, id, &doc.SupplierID,
		ComputeFieldChanges(documentSnapshot(doc), nil))
	return nil
}

// checkAssociations verifies every referenced part and child part exists and
// belongs to the document's supplier
func (s *DocumentService) checkAssociations(supplierID uuid.UUID, parentIDs, childIDs []uuid.UUID) error {
	for _, parentID := range parentIDs {
		part, err := s.partRepo.GetByID(parentID)
		if err != nil || part.SupplierID != supplierID {
			return apperrors.ErrPartNotFound
		}
	}

	for _, childID := range childIDs {
		if !childBelongsToSupplier(s.partRepo, childID, supplierID) {
			return apperrors.ErrChildPartNotFound
		}
	}
	return nil
}

// childBelongsToSupplier checks child ownership through its parent
func childBelongsToSupplier(partRepo repository.PartRepositoryInterface, childID uuid.UUID, supplierID uuid.UUID) bool {
	parts, err := partRepo.List(&supplierID)
	if err != nil {
		return false
	}
	for i := range parts {
		for j := range parts[i].ChildParts {
			if parts[i].ChildParts[j].ID == childID {
				return true
			}
		}
	}
	return false
}

func associationIDs(parts []models.ParentPart) []uuid.UUID {
	ids := make([]uuid.UUID, len(parts))
	for i := range parts {
		ids[i] = parts[i].ID
	}
	return ids
}

func childAssociationIDs(children []models.ChildPart) []uuid.UUID {
	ids := make([]uuid.UUID, len(children))
	for i := range children {
		ids[i] = children[i].ID
	}
	return ids
}

// convertToResponse converts a document model to response
func (s *DocumentService) convertToResponse(doc *models.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:            doc.ID,
		SupplierID:    doc.SupplierID,
		OriginalName:  doc.OriginalName,
		FileType:      doc.FileType,
		FileSize:      doc.FileSize,
		Version:       doc.Version,
		ParentPartIDs: associationIDs(doc.ParentParts),
		ChildPartIDs:  childAssociationIDs(doc.ChildParts),
		CreatedAt:     doc.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     doc.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
