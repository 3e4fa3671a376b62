package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"parts-portal-backend/internal/database/models"
	apperrors "parts-portal-backend/internal/errors"
)

const sheetName = "Parts"

// Row is one data row of an uploaded workbook. Cell values are kept as the
// raw strings read from the sheet; typed parsing and validation happen in
// the import service so a bad cell turns into a row error instead of
// aborting the whole parse.
type Row struct {
	// Index is the 1-based row number in the workbook, header included,
	// so errors can point at the row the user sees in Excel.
	Index int
	Cells map[string]string
}

// Get returns the trimmed cell value for a column, or "" when the column
// is absent from the workbook.
func (r Row) Get(column string) string {
	return strings.TrimSpace(r.Cells[column])
}

// ParseWorkbook reads the first sheet of an xlsx workbook and returns its
// data rows. The header row maps columns by name, so column order does not
// matter and unknown columns are ignored. Rows with an empty parent_sku
// cell are skipped.
func ParseWorkbook(reader io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, apperrors.ErrNotAnExcelFile
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.ErrNotAnExcelFile
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrMissingParentSKUColumn
	}

	header := make(map[int]string, len(rows[0]))
	hasSKU := false
	for i, name := range rows[0] {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		header[i] = name
		if name == ColParentSKU {
			hasSKU = true
		}
	}
	if !hasSKU {
		return nil, apperrors.ErrMissingParentSKUColumn
	}

	var parsed []Row
	for i, cells := range rows[1:] {
		row := Row{Index: i + 2, Cells: make(map[string]string, len(header))}
		for col, value := range cells {
			if name, ok := header[col]; ok {
				row.Cells[name] = value
			}
		}
		if row.Get(ColParentSKU) == "" {
			continue
		}
		parsed = append(parsed, row)
	}
	return parsed, nil
}

// WritePartsWorkbook flattens parts into an export workbook: one row per
// child part, and a summary row for parents that have no children yet so
// they survive an export/import round trip.
func WritePartsWorkbook(parts []models.ParentPart) (*excelize.File, error) {
	f, err := newWorkbook(ExportColumns)
	if err != nil {
		return nil, err
	}

	rowNum := 2
	for _, part := range parts {
		if len(part.ChildParts) == 0 {
			if err := setRow(f, rowNum, partCells(part, nil)); err != nil {
				return nil, err
			}
			rowNum++
			continue
		}
		for i := range part.ChildParts {
			if err := setRow(f, rowNum, partCells(part, &part.ChildParts[i])); err != nil {
				return nil, err
			}
			rowNum++
		}
	}
	return f, nil
}

// WriteTemplateWorkbook builds the import template: the header row plus one
// example row showing the expected format.
func WriteTemplateWorkbook() (*excelize.File, error) {
	f, err := newWorkbook(TemplateColumns)
	if err != nil {
		return nil, err
	}

	example := []any{
		"SKU-001", "ATV Frame Assembly", "Main frame assembly for ATV", "USA",
		45.5, 1200.00,
		"COMP-001", "Steel Frame Tube", "Primary frame tubing", "USA",
		12.3, 350.00, 0.0, 95.0,
		"FALSE", 0.0, "", "Welded",
	}
	if err := setRow(f, 2, example); err != nil {
		return nil, err
	}
	return f, nil
}

// WriteAuditLogWorkbook renders audit entries for export, one row per entry
// with the field changes flattened into a readable column.
func WriteAuditLogWorkbook(entries []models.AuditLog) (*excelize.File, error) {
	headers := []string{
		"timestamp", "user_email", "action", "entity_type", "entity_id",
		"supplier_id", "field_changes",
	}
	f, err := newWorkbook(headers)
	if err != nil {
		return nil, err
	}

	for i, entry := range entries {
		supplierID := ""
		if entry.SupplierID != nil {
			supplierID = entry.SupplierID.String()
		}
		var changes []string
		if decoded, err := entry.Changes(); err == nil {
			for _, fc := range decoded {
				changes = append(changes, fmt.Sprintf("%s: %v -> %v", fc.Field, fc.Old, fc.New))
			}
		}
		cells := []any{
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.UserEmail,
			string(entry.Action),
			string(entry.EntityType),
			entry.EntityID,
			supplierID,
			strings.Join(changes, "; "),
		}
		if err := setRow(f, i+2, cells); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func newWorkbook(headers []string) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	if err := setRow(f, 1, cells); err != nil {
		return nil, err
	}
	return f, nil
}

func setRow(f *excelize.File, row int, cells []any) error {
	for i, value := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func partCells(part models.ParentPart, child *models.ChildPart) []any {
	cells := []any{
		part.SKU, part.Name, part.Description, part.CountryOfOrigin,
		part.TotalWeightKg, part.TotalValueUSD, string(part.Status),
	}
	if child == nil {
		for i := len(cells); i < len(ExportColumns); i++ {
			cells = append(cells, "")
		}
		return cells
	}
	return append(cells,
		child.Identifier, child.Name, child.Description, child.CountryOfOrigin,
		child.WeightKg, child.WeightLbs, child.ValueUSD,
		child.AluminumContentPercent, child.SteelContentPercent,
		formatBool(child.HasRussianContent), child.RussianContentPercent,
		child.RussianContentDescription, child.ManufacturingMethod,
		formatBool(child.IsComplete),
	)
}

func formatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
