package service

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"parts-portal-backend/internal/database/models"
	apperrors "parts-portal-backend/internal/errors"
	"parts-portal-backend/internal/excel"
	"parts-portal-backend/internal/repository"
)

// ImportService reconciles uploaded workbooks against the part store
type ImportService struct {
	partRepo repository.PartRepositoryInterface
	audit    *AuditRecorder
}

// NewImportService creates a new import service
func NewImportService(partRepo repository.PartRepositoryInterface, audit *AuditRecorder) *ImportService {
	return &ImportService{partRepo: partRepo, audit: audit}
}

// RowError reports a validation failure for one workbook row. Row is the
// 1-based row number as shown in Excel.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult summarizes an import batch. A batch never aborts on row
// errors; invalid rows are reported and every valid row is applied.
type ImportResult struct {
	TotalRows       int        `json:"total_rows"`
	CreatedParents  int        `json:"created_parents"`
	UpdatedParents  int        `json:"updated_parents"`
	CreatedChildren int        `json:"created_children"`
	UpdatedChildren int        `json:"updated_children"`
	Errors          []RowError `json:"errors"`
}

// ImportWorkbook applies an uploaded xlsx workbook to the supplier's parts.
// Rows are grouped by parent SKU in first-seen order; parents and children
// are created or updated in place, and each touched parent's status is
// recomputed once at the end.
func (s *ImportService) ImportWorkbook(actor *models.User, supplierID *uuid.UUID, reader io.Reader) (*ImportResult, error) {
	owner := actor.ID
	if actor.IsAdmin() {
		if supplierID == nil {
			return nil, apperrors.ErrSupplierIDRequired
		}
		owner = *supplierID
	} else if supplierID != nil && *supplierID != actor.ID {
		return nil, apperrors.ErrAdminRequired
	}

	rows, err := excel.ParseWorkbook(reader)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{TotalRows: len(rows), Errors: []RowError{}}
	parents := make(map[string]*models.ParentPart)
	failedSKUs := make(map[string]bool)

	for _, row := range rows {
		sku := row.Get(excel.ColParentSKU)

		if failedSKUs[sku] {
			result.addError(row.Index, fmt.Sprintf("parent %s: skipped, first row for this SKU was invalid", sku))
			continue
		}

		parent, seen := parents[sku]
		if !seen {
			parent, err = s.reconcileParent(owner, sku, row, result)
			if err != nil {
				result.addError(row.Index, err.Error())
				failedSKUs[sku] = true
				continue
			}
			parents[sku] = parent
		}

		identifier := row.Get(excel.ColChildIdentifier)
		if identifier == "" {
			// parent-only row
			continue
		}
		if err := s.reconcileChild(parent, identifier, row, result); err != nil {
			result.addError(row.Index, err.Error())
		}
	}

	for _, parent := range parents {
		if _, err := s.partRepo.RecalculateStatus(parent.ID); err != nil {
			result.addError(0, fmt.Sprintf("parent %s: failed to recompute status", parent.SKU))
		}
	}

	s.audit.RecordSummary(actor, models.AuditActionImport, models.AuditEntityBatchImport, uuid.New(), &owner, map[string]any{
		"total_rows":       result.TotalRows,
		"created_parents":  result.CreatedParents,
		"updated_parents":  result.UpdatedParents,
		"created_children": result.CreatedChildren,
		"updated_children": result.UpdatedChildren,
		"error_count":      len(result.Errors),
	})

	return result, nil
}

// reconcileParent creates or updates the parent for a SKU from the first
// row that mentions it
func (s *ImportService) reconcileParent(owner uuid.UUID, sku string, row excel.Row, result *ImportResult) (*models.ParentPart, error) {
	weight, err := parseOptionalFloat(row.Get(excel.ColParentTotalWeightKg))
	if err != nil {
		return nil, fmt.Errorf("parent %s: total_weight_kg %v", sku, err)
	}
	value, err := parseOptionalFloat(row.Get(excel.ColParentTotalValueUSD))
	if err != nil {
		return nil, fmt.Errorf("parent %s: total_value_usd %v", sku, err)
	}
	country := row.Get(excel.ColParentCountry)
	if country != "" && !excel.IsRecognizedCountry(country) {
		return nil, fmt.Errorf("parent %s: unrecognized country of origin %q", sku, country)
	}

	parent, err := s.partRepo.GetBySKU(owner, sku)
	if err != nil {
		// new parent, the name is mandatory
		name := row.Get(excel.ColParentName)
		if name == "" {
			return nil, fmt.Errorf("parent %s: name is required for a new part", sku)
		}
		parent = &models.ParentPart{
			SupplierID:      owner,
			SKU:             sku,
			Name:            name,
			Description:     row.Get(excel.ColParentDescription),
			CountryOfOrigin: country,
			Status:          models.PartStatusIncomplete,
		}
		if weight != nil {
			parent.TotalWeightKg = *weight
		}
		if value != nil {
			parent.TotalValueUSD = *value
		}
		if err := s.partRepo.Create(parent); err != nil {
			return nil, fmt.Errorf("parent %s: %v", sku, err)
		}
		result.CreatedParents++
		return parent, nil
	}

	if name := row.Get(excel.ColParentName); name != "" {
		parent.Name = name
	}
	if desc := row.Get(excel.ColParentDescription); desc != "" {
		parent.Description = desc
	}
	if country != "" {
		parent.CountryOfOrigin = country
	}
	if weight != nil {
		parent.TotalWeightKg = *weight
	}
	if value != nil {
		parent.TotalValueUSD = *value
	}
	if err := s.partRepo.Update(parent); err != nil {
		return nil, fmt.Errorf("parent %s: %v", sku, err)
	}
	result.UpdatedParents++
	return parent, nil
}

// reconcileChild creates or updates one child row under its parent
func (s *ImportService) reconcileChild(parent *models.ParentPart, identifier string, row excel.Row, result *ImportResult) error {
	weight, err := parseOptionalFloat(row.Get(excel.ColChildWeightKg))
	if err != nil {
		return fmt.Errorf("child %s: weight_kg %v", identifier, err)
	}
	value, err := parseOptionalFloat(row.Get(excel.ColChildValueUSD))
	if err != nil {
		return fmt.Errorf("child %s: value_usd %v", identifier, err)
	}
	aluminum, err := parseOptionalPercent(row.Get(excel.ColChildAluminumPct))
	if err != nil {
		return fmt.Errorf("child %s: aluminum_percent %v", identifier, err)
	}
	steel, err := parseOptionalPercent(row.Get(excel.ColChildSteelPct))
	if err != nil {
		return fmt.Errorf("child %s: steel_percent %v", identifier, err)
	}
	russianPct, err := parseOptionalPercent(row.Get(excel.ColChildRussianPct))
	if err != nil {
		return fmt.Errorf("child %s: russian_percent %v", identifier, err)
	}
	hasRussian, err := parseOptionalBool(row.Get(excel.ColChildHasRussian))
	if err != nil {
		return fmt.Errorf("child %s: has_russian_content %v", identifier, err)
	}
	country := row.Get(excel.ColChildCountry)
	if country != "" && !excel.IsRecognizedCountry(country) {
		return fmt.Errorf("child %s: unrecognized country of origin %q", identifier, country)
	}
	method := row.Get(excel.ColChildManufMethod)
	if method != "" && !excel.IsRecognizedManufacturingMethod(method) {
		return fmt.Errorf("child %s: unrecognized manufacturing method %q", identifier, method)
	}

	child, err := s.partRepo.GetChildByIdentifier(parent.ID, identifier)
	created := false
	if err != nil {
		name := row.Get(excel.ColChildName)
		if name == "" {
			return fmt.Errorf("child %s: name is required for a new component", identifier)
		}
		child = &models.ChildPart{
			ParentPartID: parent.ID,
			Identifier:   identifier,
			Name:         name,
		}
		created = true
	}

	if name := row.Get(excel.ColChildName); name != "" {
		child.Name = name
	}
	if desc := row.Get(excel.ColChildDescription); desc != "" {
		child.Description = desc
	}
	if country != "" {
		child.CountryOfOrigin = country
	}
	if method != "" {
		child.ManufacturingMethod = method
	}
	if weight != nil {
		child.WeightKg = *weight
	}
	if value != nil {
		child.ValueUSD = *value
	}
	if aluminum != nil {
		child.AluminumContentPercent = *aluminum
	}
	if steel != nil {
		child.SteelContentPercent = *steel
	}
	if hasRussian != nil {
		child.HasRussianContent = *hasRussian
	}
	if russianPct != nil {
		child.RussianContentPercent = *russianPct
	}
	if desc := row.Get(excel.ColChildRussianDesc); desc != "" {
		child.RussianContentDescription = desc
	}
	child.Recalculate()

	if created {
		if err := s.partRepo.AddChild(parent.ID, child); err != nil {
			return fmt.Errorf("child %s: %v", identifier, err)
		}
		result.CreatedChildren++
		return nil
	}
	if err := s.partRepo.UpdateChild(child); err != nil {
		return fmt.Errorf("child %s: %v", identifier, err)
	}
	result.UpdatedChildren++
	return nil
}

// ExportWorkbook renders the actor's visible parts as an xlsx workbook in
// the import column layout, so an export can be edited and re-imported.
func (s *ImportService) ExportWorkbook(actor *models.User, supplierID *uuid.UUID) (*excelize.File, error) {
	scope, err := scopeSupplier(actor, supplierID)
	if err != nil {
		return nil, err
	}
	parts, err := s.partRepo.List(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list parts for export: %w", err)
	}
	return excel.WritePartsWorkbook(parts)
}

// TemplateWorkbook renders the empty import template
func (s *ImportService) TemplateWorkbook() (*excelize.File, error) {
	return excel.WriteTemplateWorkbook()
}

func (r *ImportResult) addError(row int, message string) {
	r.Errors = append(r.Errors, RowError{Row: row, Message: message})
}

// parseOptionalFloat parses a numeric cell. Empty cells mean "not provided";
// negative values are rejected.
func parseOptionalFloat(cell string) (*float64, error) {
	if cell == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64)
	if err != nil {
		return nil, fmt.Errorf("is not a number: %q", cell)
	}
	if value < 0 {
		return nil, fmt.Errorf("must not be negative: %v", value)
	}
	return &value, nil
}

// parseOptionalPercent parses a percentage cell, rejecting values outside
// the 0..100 range
func parseOptionalPercent(cell string) (*float64, error) {
	value, err := parseOptionalFloat(strings.TrimSuffix(cell, "%"))
	if err != nil || value == nil {
		return value, err
	}
	if *value > 100 {
		return nil, fmt.Errorf("must be between 0 and 100: %v", *value)
	}
	return value, nil
}

// parseOptionalBool parses a boolean cell, accepting the spellings Excel
// users realistically produce
func parseOptionalBool(cell string) (*bool, error) {
	if cell == "" {
		return nil, nil
	}
	switch strings.ToLower(cell) {
	case "true", "yes", "y", "1":
		v := true
		return &v, nil
	case "false", "no", "n", "0":
		v := false
		return &v, nil
	default:
		return nil, fmt.Errorf("is not a boolean: %q", cell)
	}
}
