package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"parts-portal-backend/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AuditLogHandler handles admin HTTP requests for the audit trail
type AuditLogHandler struct {
	auditLogService service.AuditLogServiceInterface
}

// NewAuditLogHandler creates a new audit log handler
func NewAuditLogHandler(auditLogService service.AuditLogServiceInterface) *AuditLogHandler {
	return &AuditLogHandler{auditLogService: auditLogService}
}

// ListAuditLogs lists audit entries, newest first
// @Summary List audit log entries
// @Tags audit-logs
// @Produce json
// @Param supplier_id query string false "Filter by supplier"
// @Param entity_type query string false "Filter by entity type"
// @Param start_date query string false "Filter from date (RFC 3339 or YYYY-MM-DD)"
// @Param end_date query string false "Filter to date (RFC 3339 or YYYY-MM-DD)"
// @Param limit query int false "Maximum entries (default 100)"
// @Success 200 {array} service.AuditLogEntryResponse
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *AuditLogHandler) ListAuditLogs(c *gin.Context) {
	query, ok := h.parseQuery(c)
	if !ok {
		return
	}

	entries, err := h.auditLogService.ListEntries(*query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ExportAuditLogs exports matching audit entries as an xlsx workbook
// @Summary Export audit log entries
// @Tags audit-logs
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param supplier_id query string false "Filter by supplier"
// @Param entity_type query string false "Filter by entity type"
// @Param start_date query string false "Filter from date (RFC 3339 or YYYY-MM-DD)"
// @Param end_date query string false "Filter to date (RFC 3339 or YYYY-MM-DD)"
// @Param limit query int false "Maximum entries (default 100)"
// @Success 200 {file} binary "Workbook content"
// @Security BearerAuth
// @Router /audit-logs/export [get]
func (h *AuditLogHandler) ExportAuditLogs(c *gin.Context) {
	query, ok := h.parseQuery(c)
	if !ok {
		return
	}

	workbook, err := h.auditLogService.ExportEntries(*query)
	if err != nil {
		respondError(c, err)
		return
	}

	fileName := fmt.Sprintf("audit_logs_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := workbook.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write workbook"})
	}
}

func (h *AuditLogHandler) parseQuery(c *gin.Context) (*service.AuditLogQuery, bool) {
	supplierID, ok := parseSupplierFilter(c)
	if !ok {
		return nil, false
	}

	query := &service.AuditLogQuery{
		SupplierID: supplierID,
		EntityType: c.Query("entity_type"),
	}
	query.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))

	if raw := c.Query("start_date"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date"})
			return nil, false
		}
		query.StartDate = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date"})
			return nil, false
		}
		// a bare date means the whole day inclusive
		if len(raw) == len("2006-01-02") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		query.EndDate = &t
	}
	return query, true
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
