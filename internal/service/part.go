package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"parts-portal-backend/internal/database/models"
	apperrors "parts-portal-backend/internal/errors"
	"parts-portal-backend/internal/repository"
)

// PartService handles business logic for parent parts and their children
type PartService struct {
	repo      repository.PartRepositoryInterface
	audit     *AuditRecorder
	validator *validator.Validate
}

// NewPartService creates a new part service
func NewPartService(repo repository.PartRepositoryInterface, audit *AuditRecorder, validator *validator.Validate) *PartService {
	return &PartService{
		repo:      repo,
		audit:     audit,
		validator: validator,
	}
}

// CreatePartRequest represents the data needed to create a parent part
type CreatePartRequest struct {
	SKU             string  `json:"sku" validate:"required,min=1,max=100"`
	Name            string  `json:"name" validate:"required,max=200"`
	Description     string  `json:"description"`
	CountryOfOrigin string  `json:"country_of_origin" validate:"max=100"`
	TotalWeightKg   float64 `json:"total_weight_kg" validate:"gte=0"`
	TotalValueUSD   float64 `json:"total_value_usd" validate:"gte=0"`
}

// UpdatePartRequest represents a partial update to a parent part
type UpdatePartRequest struct {
	SKU             *string  `json:"sku" validate:"omitempty,min=1,max=100"`
	Name            *string  `json:"name" validate:"omitempty,max=200"`
	Description     *string  `json:"description"`
	CountryOfOrigin *string  `json:"country_of_origin" validate:"omitempty,max=100"`
	TotalWeightKg   *float64 `json:"total_weight_kg" validate:"omitempty,gte=0"`
	TotalValueUSD   *float64 `json:"total_value_usd" validate:"omitempty,gte=0"`
}

// ChildPartRequest represents the data needed to create a child part
type ChildPartRequest struct {
	Identifier                string  `json:"identifier" validate:"required,min=1,max=100"`
	Name                      string  `json:"name" validate:"required,max=200"`
	Description               string  `json:"description"`
	CountryOfOrigin           string  `json:"country_of_origin" validate:"max=100"`
	WeightKg                  float64 `json:"weight_kg" validate:"gte=0"`
	ValueUSD                  float64 `json:"value_usd" validate:"gte=0"`
	AluminumContentPercent    float64 `json:"aluminum_content_percent" validate:"gte=0,lte=100"`
	SteelContentPercent       float64 `json:"steel_content_percent" validate:"gte=0,lte=100"`
	HasRussianContent         bool    `json:"has_russian_content"`
	RussianContentPercent     float64 `json:"russian_content_percent" validate:"gte=0,lte=100"`
	RussianContentDescription string  `json:"russian_content_description"`
	ManufacturingMethod       string  `json:"manufacturing_method" validate:"max=100"`
}

// UpdateChildPartRequest represents a partial update to a child part
type UpdateChildPartRequest struct {
	Identifier                *string  `json:"identifier" validate:"omitempty,min=1,max=100"`
	Name                      *string  `json:"name" validate:"omitempty,max=200"`
	Description               *string  `json:"description"`
	CountryOfOrigin           *string  `json:"country_of_origin" validate:"omitempty,max=100"`
	WeightKg                  *float64 `json:"weight_kg" validate:"omitempty,gte=0"`
	ValueUSD                  *float64 `json:"value_usd" validate:"omitempty,gte=0"`
	AluminumContentPercent    *float64 `json:"aluminum_content_percent" validate:"omitempty,gte=0,lte=100"`
	SteelContentPercent       *float64 `json:"steel_content_percent" validate:"omitempty,gte=0,lte=100"`
	HasRussianContent         *bool    `json:"has_russian_content"`
	RussianContentPercent     *float64 `json:"russian_content_percent" validate:"omitempty,gte=0,lte=100"`
	RussianContentDescription *string  `json:"russian_content_description"`
	ManufacturingMethod       *string  `json:"manufacturing_method" validate:"omitempty,max=100"`
}

// ChildPartResponse represents the response data for a child part
type ChildPartResponse struct {
	ID                        uuid.UUID `json:"id"`
	ParentPartID              uuid.UUID `json:"parent_part_id"`
	Identifier                string    `json:"identifier"`
	Name                      string    `json:"name"`
	Description               string    `json:"description"`
	CountryOfOrigin           string    `json:"country_of_origin"`
	WeightKg                  float64   `json:"weight_kg"`
	WeightLbs                 float64   `json:"weight_lbs"`
	ValueUSD                  float64   `json:"value_usd"`
	AluminumContentPercent    float64   `json:"aluminum_content_percent"`
	SteelContentPercent       float64   `json:"steel_content_percent"`
	HasRussianContent         bool      `json:"has_russian_content"`
	RussianContentPercent     float64   `json:"russian_content_percent"`
	RussianContentDescription string    `json:"russian_content_description"`
	ManufacturingMethod       string    `json:"manufacturing_method"`
	IsComplete                bool      `json:"is_complete"`
	CreatedAt                 string    `json:"created_at"`
	UpdatedAt                 string    `json:"updated_at"`
}

// PartResponse represents the response data for a parent part
type PartResponse struct {
	ID              uuid.UUID           `json:"id"`
	SupplierID      uuid.UUID           `json:"supplier_id"`
	SKU             string              `json:"sku"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	CountryOfOrigin string              `json:"country_of_origin"`
	TotalWeightKg   float64             `json:"total_weight_kg"`
	TotalValueUSD   float64             `json:"total_value_usd"`
	Status          string              `json:"status"`
	ChildParts      []ChildPartResponse `json:"child_parts"`
	CreatedAt       string              `json:"created_at"`
	UpdatedAt       string              `json:"updated_at"`
}

// PartStatsResponse summarizes a supplier's parts by status
type PartStatsResponse struct {
	Total       int64 `json:"total"`
	Incomplete  int64 `json:"incomplete"`
	NeedsReview int64 `json:"needs_review"`
	Completed   int64 `json:"completed"`
}

// partAuditView is the audited projection of a parent part. Derived fields
// are excluded: status changes follow from child edits that are audited on
// their own.
type partAuditView struct {
	SKU             string  `json:"sku"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	CountryOfOrigin string  `json:"country_of_origin"`
	TotalWeightKg   float64 `json:"total_weight_kg"`
	TotalValueUSD   float64 `json:"total_value_usd"`
}

// childAuditView is the audited projection of a child part.
type childAuditView struct {
	Identifier                string  `json:"identifier"`
	Name                      string  `json:"name"`
	Description               string  `json:"description"`
	CountryOfOrigin           string  `json:"country_of_origin"`
	WeightKg                  float64 `json:"weight_kg"`
	ValueUSD                  float64 `json:"value_usd"`
	AluminumContentPercent    float64 `json:"aluminum_content_percent"`
	SteelContentPercent       float64 `json:"steel_content_percent"`
	HasRussianContent         bool    `json:"has_russian_content"`
	RussianContentPercent     float64 `json:"russian_content_percent"`
	RussianContentDescription string  `json:"russian_content_description"`
	ManufacturingMethod       string  `json:"manufacturing_method"`
}

func partSnapshot(p *models.ParentPart) map[string]any {
	return snapshotForAudit(partAuditView{
		SKU:             p.SKU,
		Name:            p.Name,
		Description:     p.Description,
		CountryOfOrigin: p.CountryOfOrigin,
		TotalWeightKg:   p.TotalWeightKg,
		TotalValueUSD:   p.TotalValueUSD,
	})
}

func childSnapshot(c *models.ChildPart) map[string]any {
	return snapshotForAudit(childAuditView{
		Identifier:                c.Identifier,
		Name:                      c.Name,
		Description:               c.Description,
		CountryOfOrigin:           c.CountryOfOrigin,
		WeightKg:                  c.WeightKg,
		ValueUSD:                  c.ValueUSD,
		AluminumContentPercent:    c.AluminumContentPercent,
		SteelContentPercent:       c.SteelContentPercent,
		HasRussianContent:         c.HasRussianContent,
		RussianContentPercent:     c.RussianContentPercent,
		RussianContentDescription: c.RussianContentDescription,
		ManufacturingMethod:       c.ManufacturingMethod,
	})
}

// scopeSupplier resolves which supplier's data an actor may touch. Suppliers
// are always pinned to themselves; admins see everything unless they ask for
// a specific supplier.
func scopeSupplier(actor *models.User, requested *uuid.UUID) (*uuid.UUID, error) {
	if actor.IsAdmin() {
		return requested, nil
	}
	if requested != nil && *requested != actor.ID {
		return nil, apperrors.ErrAdminRequired
	}
	id := actor.ID
	return &id, nil
}

// canAccessPart reports whether the actor may read or mutate the part.
// Suppliers only ever see their own parts; a foreign part looks like a
// missing one so ownership cannot be inferred.
func canAccessPart(actor *models.User, part *models.ParentPart) bool {
	return actor.IsAdmin() || part.SupplierID == actor.ID
}

// ListParts returns the parts visible to the actor, optionally narrowed to
// one supplier (admins only).
func (s *PartService) ListParts(actor *models.User, supplierID *uuid.UUID) ([]PartResponse, error) {
	scope, err := scopeSupplier(actor, supplierID)
	if err != nil {
		return nil, err
	}

	parts, err := s.repo.List(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}

	responses := make([]PartResponse, len(parts))
	for i := range parts {
		responses[i] = *s.convertToResponse(&parts[i])
	}
	return responses, nil
}

// GetPart retrieves one part with its children
func (s *PartService) GetPart(actor *models.User, id uuid.UUID) (*PartResponse, error) {
	part, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrPartNotFound
	}
	if !canAccessPart(actor, part) {
		return nil, apperrors.ErrPartNotFound
	}
	return s.convertToResponse(part), nil
}

// CreatePart creates a parent part for the actor (or for the named supplier
// when an admin creates on a supplier's behalf).
func (s *PartService) CreatePart(actor *models.User, supplierID *uuid.UUID, req *CreatePartRequest) (*PartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("part", err.Error())
	}

	owner := actor.ID
	if actor.IsAdmin() {
		if supplierID == nil {
			return nil, apperrors.ErrSupplierIDRequired
		}
		owner = *supplierID
	}

	sku := strings.TrimSpace(req.SKU)
	if _, err := s.repo.GetBySKU(owner, sku); err == nil {
		return nil, apperrors.ErrSKUExists
	}

	part := &models.ParentPart{
		SupplierID:      owner,
		SKU:             sku,
		Name:            req.Name,
		Description:     req.Description,
		CountryOfOrigin: req.CountryOfOrigin,
		TotalWeightKg:   req.TotalWeightKg,
		TotalValueUSD:   req.TotalValueUSD,
		Status:          models.PartStatusIncomplete,
	}
	if err := s.repo.Create(part); err != nil {
		return nil, fmt.Errorf("failed to create part: %w", err)
	}

	s.audit.Record(actor, models.AuditActionCreate, models.AuditEntityParentPart, part.ID, &owner,
		ComputeFieldChanges(nil, partSnapshot(part)))

	return s.convertToResponse(part), nil
}

// UpdatePart applies a partial update and recomputes the derived status
func (s *PartService) UpdatePart(actor *models.User, id uuid.UUID, req *UpdatePartRequest) (*PartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("part", err.Error())
	}

	part, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrPartNotFound
	}
	if !canAccessPart(actor, part) {
		return nil, apperrors.ErrPartNotFound
	}

	before := partSnapshot(part)
	updates := map[string]interface{}{}

	if req.SKU != nil {
		sku := strings.TrimSpace(*req.SKU)
		if sku != part.SKU {
			if existing, err := s.repo.GetBySKU(part.SupplierID, sku); err == nil && existing.ID != id {
				return nil, apperrors.ErrSKUExists
			}
		}
		part.SKU = sku
		updates["sku"] = sku
	}
	if req.Name != nil {
		part.Name = *req.Name
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		part.Description = *req.Description
		updates["description"] = *req.Description
	}
	if req.CountryOfOrigin != nil {
		part.CountryOfOrigin = *req.CountryOfOrigin
		updates["country_of_origin"] = *req.CountryOfOrigin
	}
	if req.TotalWeightKg != nil {
		part.TotalWeightKg = *req.TotalWeightKg
		updates["total_weight_kg"] = *req.TotalWeightKg
	}
	if req.TotalValueUSD != nil {
		part.TotalValueUSD = *req.TotalValueUSD
		updates["total_value_usd"] = *req.TotalValueUSD
	}
	part.Status = part.DeriveStatus()
	updates["status"] = part.Status

	// Only the touched columns are written; children are never part of the
	// update.
	if err := s.repo.UpdateFields(id, updates); err != nil {
		return nil, fmt.Errorf("failed to update part: %w", err)
	}

	s.audit.Record(actor, models.AuditActionUpdate, models.AuditEntityParentPart, part.ID, &part.SupplierID,
		ComputeFieldChanges(before, partSnapshot(part)))

	return s.convertToResponse(part), nil
}

// DeletePart removes a part and its children. Associated documents survive;
// only the links to the deleted part are dropped.
func (s *PartService) DeletePart(actor *models.User, id uuid.UUID) error {
	part, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrPartNotFound
	}
	if !canAccessPart(actor, part) {
		return apperrors.ErrPartNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete part: %w", err)
	}

	s.audit.Record(actor, models.AuditActionDelete, models.AuditEntityParentPart, id, &part.SupplierID,
		ComputeFieldChanges(partSnapshot(part), nil))
	return nil
}

// GetStats returns status counts for the parts visible to the actor
func (s *PartService) GetStats(actor *models.User, supplierID *uuid.UUID) (*PartStatsResponse, error) {
	scope, err := scopeSupplier(actor, supplierID)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountByStatus(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to count parts: %w", err)
	}

	stats := &PartStatsResponse{
		Incomplete:  counts[models.PartStatusIncomplete],
		NeedsReview: counts[models.PartStatusNeedsReview],
		Completed:   counts[models.PartStatusCompleted],
	}
	stats.Total = stats.Incomplete + stats.NeedsReview + stats.Completed
	return stats, nil
}

// SearchParts finds parts whose SKU or name matches the query, including
// matches on child identifiers
func (s *PartService) SearchParts(actor *models.User, supplierID *uuid.UUID, query string, limit int) ([]PartResponse, error) {
	scope, err := scopeSupplier(actor, supplierID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	parts, err := s.repo.Search(scope, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search parts: %w", err)
	}

	responses := make([]PartResponse, len(parts))
	for i := range parts {
		responses[i] = *s.convertToResponse(&parts[i])
	}
	return responses, nil
}

// AddChild creates a child part under a parent and recomputes the parent's
// status in the same transaction
func (s *PartService) AddChild(actor *models.User, parentID uuid.UUID, req *ChildPartRequest) (*ChildPartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("child_part", err.Error())
	}

	part, err := s.repo.GetByID(parentID)
	if err != nil {
		return nil, apperrors.ErrPartNotFound
	}
	if !canAccessPart(actor, part) {
		return nil, apperrors.ErrPartNotFound
	}

	identifier := strings.TrimSpace(req.Identifier)
	if _, err := s.repo.GetChildByIdentifier(parentID, identifier); err == nil {
		return nil, apperrors.ErrIdentifierExists
	}

	child := &models.ChildPart{
		ParentPartID:              parentID,
		Identifier:                identifier,
		Name:                      req.Name,
		Description:               req.Description,
		CountryOfOrigin:           req.CountryOfOrigin,
		WeightKg:                  req.WeightKg,
		ValueUSD:                  req.ValueUSD,
		AluminumContentPercent:    req.AluminumContentPercent,
		SteelContentPercent:       req.SteelContentPercent,
		HasRussianContent:         req.HasRussianContent,
		RussianContentPercent:     req.RussianContentPercent,
		RussianContentDescription: req.RussianContentDescription,
		ManufacturingMethod:       req.ManufacturingMethod,
	}
	child.Recalculate()

	if err := s.repo.AddChild(parentID, child); err != nil {
		return nil, fmt.Errorf("failed to add child part: %w", err)
	}

	s.audit.Record(actor, models.AuditActionCreate, models.AuditEntityChildPart, child.ID, &part.SupplierID,
		ComputeFieldChanges(nil, childSnapshot(child)))

	return s.convertChildToResponse(child), nil
}

// UpdateChild applies a partial update to a child part and recomputes both
// the child's completeness and the parent's status
func (s *PartService) UpdateChild(actor *models.User, parentID, childID uuid.UUID, req *UpdateChildPartRequest) (*ChildPartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("child_part", err.Error())
	}

	part, err := s.repo.GetByID(parentID)
	if err != nil {
		return nil, apperrors.ErrPartNotFound
	}
	if !canAccessPart(actor, part) {
		return nil, apperrors.ErrPartNotFound
	}

	child, err := s.repo.GetChild(parentID, childID)
	if err != nil {
		return nil, apperrors.ErrChildPartNotFound
	}

	before := childSnapshot(child)

	if req.Identifier != nil {
		identifier := strings.TrimSpace(*req.Identifier)
		if identifier != child.Identifier {
			if existing, err := s.repo.GetChildByIdentifier(parentID, identifier); err == nil && existing.ID != childID {
				return nil, apperrors.ErrIdentifierExists
			}
		}
		child.Identifier = identifier
	}
	if req.Name != nil {
		child.Name = *req.Name
	}
	if req.Description != nil {
		child.Description = *req.Description
	}
	if req.CountryOfOrigin != nil {
		child.CountryOfOrigin = *req.CountryOfOrigin
	}
	if req.WeightKg != nil {
		child.WeightKg = *req.WeightKg
	}
	if req.ValueUSD != nil {
		child.ValueUSD = *req.ValueUSD
	}
	if req.AluminumContentPercent != nil {
		child.AluminumContentPercent = *req.AluminumContentPercent
	}
	if req.SteelContentPercent != nil {
		child.SteelContentPercent = *req.SteelContentPercent
	}
	if req.HasRussianContent != nil {
		child.HasRussianContent = *req.HasRussianContent
	}
	if req.RussianContentPercent != nil {
		child.RussianContentPercent = *req.RussianContentPercent
	}
	if req.RussianContentDescription != nil {
		child.RussianContentDescription = *req.RussianContentDescription
	}
	if req.ManufacturingMethod != nil {
		child.ManufacturingMethod = *req.ManufacturingMethod
	}
	child.Recalculate()

	if err := s.repo.UpdateChild(child); err != nil {
		return nil, fmt.Errorf("failed to update child part: %w", err)
	}

	s.audit.Record(actor, models.AuditActionUpdate, models.AuditEntityChildPart, child.ID, &part.SupplierID,
		ComputeFieldChanges(before, childSnapshot(child)))

	return s.convertChildToResponse(child), nil
}

// DeleteChild removes a child part and recomputes the parent's status
func (s *PartService) DeleteChild(actor *models.User, parentID, childID uuid.UUID) error {
	part, err := s.repo.GetByID(parentID)
	if err != nil {
		return apperrors.ErrPartNotFound
	}
	if !canAccessPart(actor, part) {
		return apperrors.ErrPartNotFound
	}

	child, err := s.repo.GetChild(parentID, childID)
	if err != nil {
		return apperrors.ErrChildPartNotFound
	}

	if err := s.repo.DeleteChild(parentID, childID); err != nil {
		return fmt.Errorf("failed to delete child part: %w", err)
	}

	s.audit.Record(actor, models.AuditActionDelete, models.AuditEntityChildPart, childID, &part.SupplierID,
		ComputeFieldChanges(childSnapshot(child), nil))
	return nil
}

// DuplicateChild clones a child part under the same parent. The copy gets a
// derived identifier and name and always starts incomplete so it cannot slip
// into a completed part unreviewed.
func (s *PartService) DuplicateChild(actor *models.User, parentID, childID uuid.UUID) (*ChildPartResponse, error) {
	part, err := s.repo.GetByID(parentID)
	if err != nil {
		return nil, apperrors.ErrPartNotFound
	}
	if !canAccessPart(actor, part) {
		return nil, apperrors.ErrPartNotFound
	}

	source, err := s.repo.GetChild(parentID, childID)
	if err != nil {
		return nil, apperrors.ErrChildPartNotFound
	}

	identifier := source.Identifier + "_copy"
	for i := 2; ; i++ {
		if _, err := s.repo.GetChildByIdentifier(parentID, identifier); err != nil {
			break
		}
		identifier = fmt.Sprintf("%s_copy%d", source.Identifier, i)
	}

	clone := &models.ChildPart{
		ParentPartID:              parentID,
		Identifier:                identifier,
		Name:                      source.Name + " (Copy)",
		Description:               source.Description,
		CountryOfOrigin:           source.CountryOfOrigin,
		WeightKg:                  source.WeightKg,
		ValueUSD:                  source.ValueUSD,
		AluminumContentPercent:    source.AluminumContentPercent,
		SteelContentPercent:       source.SteelContentPercent,
		HasRussianContent:         source.HasRussianContent,
		RussianContentPercent:     source.RussianContentPercent,
		RussianContentDescription: source.RussianContentDescription,
		ManufacturingMethod:       source.ManufacturingMethod,
		WeightLbs:                 source.WeightLbs,
		IsComplete:                false,
	}

	if err := s.repo.AddChild(parentID, clone); err != nil {
		return nil, fmt.Errorf("failed to duplicate child part: %w", err)
	}

	s.audit.Record(actor, models.AuditActionCreate, models.AuditEntityChildPart, clone.ID, &part.SupplierID,
		ComputeFieldChanges(nil, childSnapshot(clone)))

	return s.convertChildToResponse(clone), nil
}

// convertToResponse converts a parent part model to response
func (s *PartService) convertToResponse(part *models.ParentPart) *PartResponse {
	children := make([]ChildPartResponse, len(part.ChildParts))
	for i := range part.ChildParts {
		children[i] = *s.convertChildToResponse(&part.ChildParts[i])
	}
	return &PartResponse{
		ID:              part.ID,
		SupplierID:      part.SupplierID,
		SKU:             part.SKU,
		Name:            part.Name,
		Description:     part.Description,
		CountryOfOrigin: part.CountryOfOrigin,
		TotalWeightKg:   part.TotalWeightKg,
		TotalValueUSD:   part.TotalValueUSD,
		Status:          string(part.Status),
		ChildParts:      children,
		CreatedAt:       part.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       part.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// convertChildToResponse converts a child part model to response
func (s *PartService) convertChildToResponse(child *models.ChildPart) *ChildPartResponse {
	return &ChildPartResponse{
		ID:                        child.ID,
		ParentPartID:              child.ParentPartID,
		Identifier:                child.Identifier,
		Name:                      child.Name,
		Description:               child.Description,
		CountryOfOrigin:           child.CountryOfOrigin,
		WeightKg:                  child.WeightKg,
		WeightLbs:                 child.WeightLbs,
		ValueUSD:                  child.ValueUSD,
		AluminumContentPercent:    child.AluminumContentPercent,
		SteelContentPercent:       child.SteelContentPercent,
		HasRussianContent:         child.HasRussianContent,
		RussianContentPercent:     child.RussianContentPercent,
		RussianContentDescription: child.RussianContentDescription,
		ManufacturingMethod:       child.ManufacturingMethod,
		IsComplete:                child.IsComplete,
		CreatedAt:                 child.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:                 child.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
