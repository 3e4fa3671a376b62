package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"parts-portal-backend/internal/auth"
	"parts-portal-backend/internal/database/models"
	apperrors "parts-portal-backend/internal/errors"
	"parts-portal-backend/internal/repository"
)

// SupplierService handles admin management of supplier accounts
type SupplierService struct {
	userRepo  repository.UserRepositoryInterface
	partRepo  repository.PartRepositoryInterface
	audit     *AuditRecorder
	validator *validator.Validate
}

// NewSupplierService creates a new supplier service
func NewSupplierService(userRepo repository.UserRepositoryInterface, partRepo repository.PartRepositoryInterface, audit *AuditRecorder, validator *validator.Validate) *SupplierService {
	return &SupplierService{
		userRepo:  userRepo,
		partRepo:  partRepo,
		audit:     audit,
		validator: validator,
	}
}

// CreateSupplierRequest represents the data needed to create a supplier account
type CreateSupplierRequest struct {
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	Name        string `json:"name" validate:"required,max=100"`
	CompanyName string `json:"company_name" validate:"max=200"`
}

// UpdateSupplierRequest represents a partial update to a supplier account
type UpdateSupplierRequest struct {
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	Password    *string `json:"password" validate:"omitempty,min=8,max=72"`
	Name        *string `json:"name" validate:"omitempty,max=100"`
	CompanyName *string `json:"company_name" validate:"omitempty,max=200"`
	IsActive    *bool   `json:"is_active"`
}

// SupplierResponse represents the response data for a supplier account
type SupplierResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	CompanyName string    `json:"company_name"`
	IsActive    bool      `json:"is_active"`
	PartCount   int64     `json:"part_count"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// SupplierListResponse wraps a paginated list of suppliers
type SupplierListResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
	Total     int64              `json:"total"`
}

// supplierAuditView is the audited projection of a supplier account. The
// password hash is never audited.
type supplierAuditView struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
	IsActive    bool   `json:"is_active"`
}

func supplierSnapshot(u *models.User) map[string]any {
	return snapshotForAudit(supplierAuditView{
		Email:       u.Email,
		Name:        u.Name,
		CompanyName: u.CompanyName,
		IsActive:    u.IsActive,
	})
}

// ListSuppliers returns supplier accounts with pagination
func (s *SupplierService) ListSuppliers(limit, offset int) (*SupplierListResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	suppliers, total, err := s.userRepo.GetSuppliers(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}

	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = *s.convertToResponse(&suppliers[i])
	}
	return &SupplierListResponse{Suppliers: responses, Total: total}, nil
}

// GetSupplier retrieves one supplier account
func (s *SupplierService) GetSupplier(id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.userRepo.GetSupplierByID(id)
	if err != nil {
		return nil, apperrors.ErrSupplierNotFound
	}
	return s.convertToResponse(supplier), nil
}

// CreateSupplier creates a supplier account. The role is always supplier;
// admin accounts are never created through this path.
func (s *SupplierService) CreateSupplier(actor *models.User, req *CreateSupplierRequest) (*SupplierResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("supplier", err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, apperrors.ErrEmailExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	supplier := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         models.UserRoleSupplier,
		CompanyName:  req.CompanyName,
		IsActive:     true,
	}
	if err := s.userRepo.Create(supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	s.audit.Record(actor, models.AuditActionCreate, models.AuditEntitySupplier, supplier.ID, &supplier.ID,
		ComputeFieldChanges(nil, supplierSnapshot(supplier)))

	return s.convertToResponse(supplier), nil
}

// UpdateSupplier applies a partial update to a supplier account
func (s *SupplierService) UpdateSupplier(actor *models.User, id uuid.UUID, req *UpdateSupplierRequest) (*SupplierResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("supplier", err.Error())
	}

	supplier, err := s.userRepo.GetSupplierByID(id)
	if err != nil {
		return nil, apperrors.ErrSupplierNotFound
	}

	before := supplierSnapshot(supplier)

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != supplier.Email {
			if existing, err := s.userRepo.GetByEmail(email); err == nil && existing.ID != id {
				return nil, apperrors.ErrEmailExists
			}
		}
		supplier.Email = email
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		supplier.PasswordHash = hash
	}
	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.CompanyName != nil {
		supplier.CompanyName = *req.CompanyName
	}
	if req.IsActive != nil {
		supplier.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(supplier); err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	s.audit.Record(actor, models.AuditActionUpdate, models.AuditEntitySupplier, supplier.ID, &supplier.ID,
		ComputeFieldChanges(before, supplierSnapshot(supplier)))

	return s.convertToResponse(supplier), nil
}

// DeleteSupplier removes a supplier account and, through the cascade, its
// parts and document metadata
func (s *SupplierService) DeleteSupplier(actor *models.User, id uuid.UUID) error {
	supplier, err := s.userRepo.GetSupplierByID(id)
	if err != nil {
		return apperrors.ErrSupplierNotFound
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	s.audit.Record(actor, models.AuditActionDelete, models.AuditEntitySupplier, id, &id,
		ComputeFieldChanges(supplierSnapshot(supplier), nil))
	return nil
}

// convertToResponse converts a supplier model to response, including the
// current part count
func (s *SupplierService) convertToResponse(supplier *models.User) *SupplierResponse {
	var partCount int64
	if counts, err := s.partRepo.CountByStatus(&supplier.ID); err == nil {
		for _, n := range counts {
			partCount += n
		}
	}

	return &SupplierResponse{
		ID:          supplier.ID,
		Email:       supplier.Email,
		Name:        supplier.Name,
		CompanyName: supplier.CompanyName,
		IsActive:    supplier.IsActive,
		PartCount:   partCount,
		CreatedAt:   supplier.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   supplier.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
