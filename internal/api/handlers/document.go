package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parts-portal-backend/internal/service"
)

// DocumentHandler handles HTTP requests for documents
type DocumentHandler struct {
	documentService service.DocumentServiceInterface
	maxUploadBytes  int64
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService service.DocumentServiceInterface, maxUploadBytes int64) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		maxUploadBytes:  maxUploadBytes,
	}
}

// ListDocuments lists the documents visible to the caller
// @Summary List documents
// @Tags documents
// @Produce json
// @Param supplier_id query string false "Filter by supplier (admins only)"
// @Success 200 {array} service.DocumentResponse
// @Security BearerAuth
// @Router /documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	supplierID, ok := parseSupplierFilter(c)
	if !ok {
		return
	}

	docs, err := h.documentService.ListDocuments(actor, supplierID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GetDocument retrieves one document's metadata
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} service.DocumentResponse
// @Failure 404 {object} ErrorResponse "Document not found"
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	doc, err := h.documentService.GetDocument(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UploadDocument stores an uploaded file and its metadata
// @Summary Upload a document
// @Description Upload a file via multipart form. Re-uploading a filename the supplier already has bumps the version and flags a duplicate warning.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param supplier_id formData string false "Owning supplier (required for admins)"
// @Param parent_part_ids formData string false "Comma-separated parent part UUIDs to associate"
// @Param child_part_ids formData string false "Comma-separated child part UUIDs to associate"
// @Success 201 {object} service.DocumentUploadResponse
// @Failure 400 {object} ErrorResponse "Missing or oversized file"
// @Security BearerAuth
// @Router /documents/upload [post]
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("File exceeds the %d MB upload limit", h.maxUploadBytes/(1024*1024))})
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

	parentIDs, err := parseIDList(c.PostForm("parent_part_ids"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parent_part_ids"})
		return
	}
	childIDs, err := parseIDList(c.PostForm("child_part_ids"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid child_part_ids"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := h.documentService.UploadDocument(c.Request.Context(), actor, supplierID, &service.UploadDocumentRequest{
		FileName:      fileHeader.Filename,
		ContentType:   contentType,
		Size:          fileHeader.Size,
		Reader:        file,
		ParentPartIDs: parentIDs,
		ChildPartIDs:  childIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// DownloadDocument streams the stored file bytes
// @Summary Download a document
// @Tags documents
// @Produce application/octet-stream
// @Param id path string true "Document ID (UUID)"
// @Success 200 {file} binary "File content"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Security BearerAuth
// @Router /documents/{id}/download [get]
func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reader, doc, err := h.documentService.DownloadDocument(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	defer reader.Close()

	contentType := doc.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.OriginalName))
	c.Header("Content-Type", contentType)
	if doc.FileSize > 0 {
		c.Header("Content-Length", fmt.Sprintf("%d", doc.FileSize))
	}
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// headers are already out, nothing sensible left to do
		_ = c.Error(err)
	}
}

// UpdateDocument renames a document or replaces its associations
// @Summary Update a document
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param document body service.UpdateDocumentRequest true "Fields to update"
// @Success 200 {object} service.DocumentResponse
// @Failure 404 {object} ErrorResponse "Document not found"
// @Security BearerAuth
// @Router /documents/{id} [put]
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	doc, err := h.documentService.UpdateDocument(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// DeleteDocument removes a document and its stored bytes
// @Summary Delete a document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Security BearerAuth
// @Router /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

// parseIDList splits a comma-separated list of UUIDs
func parseIDList(raw string) ([]uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
