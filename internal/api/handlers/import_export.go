package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"parts-portal-backend/internal/service"
)

// ImportExportHandler handles Excel import and export endpoints
type ImportExportHandler struct {
	importService service.ImportServiceInterface
}

// NewImportExportHandler creates a new import/export handler
func NewImportExportHandler(importService service.ImportServiceInterface) *ImportExportHandler {
	return &ImportExportHandler{importService: importService}
}

// ImportExcel applies an uploaded workbook to the caller's parts
// @Summary Import parts from an Excel workbook
// @Description Rows are grouped by parent SKU; parents and children are created or updated in place. Invalid rows are reported with their row numbers and never abort the batch.
// @Tags import-export
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook (.xlsx)"
// @Param supplier_id formData string false "Target supplier (required for admins)"
// @Success 200 {object} service.ImportResult
// @Failure 400 {object} ErrorResponse "Not a workbook or missing parent_sku column"
// @Security BearerAuth
// @Router /import/excel [post]
func (h *ImportExportHandler) ImportExcel(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	var supplierID *uuid.UUID
	if raw := c.PostForm("supplier_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supplier_id"})
			return
		}
		supplierID = &id
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.importService.ImportWorkbook(actor, supplierID, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ExportParts exports the caller's parts as an Excel workbook
// @Summary Export parts to an Excel workbook
// @Tags import-export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param supplier_id query string false "Filter by supplier (admins only)"
// @Success 200 {file} binary "Workbook content"
// @Security BearerAuth
// @Router /export/parts [get]
func (h *ImportExportHandler) ExportParts(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	supplierID, ok := parseSupplierFilter(c)
	if !ok {
		return
	}

	workbook, err := h.importService.ExportWorkbook(actor, supplierID)
	if err != nil {
		respondError(c, err)
		return
	}

	fileName := fmt.Sprintf("parts_export_%s.xlsx", time.Now().Format("20060102_150405"))
	writeWorkbook(c, workbook, fileName)
}

// ExportTemplate serves the empty import template
// @Summary Download the import template
// @Tags import-export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Workbook content"
// @Security BearerAuth
// @Router /export/template [get]
func (h *ImportExportHandler) ExportTemplate(c *gin.Context) {
	workbook, err := h.importService.TemplateWorkbook()
	if err != nil {
		respondError(c, err)
		return
	}
	writeWorkbook(c, workbook, "parts_import_template.xlsx")
}

func writeWorkbook(c *gin.Context, workbook *excelize.File, fileName string) {
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := workbook.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write workbook"})
	}
}
