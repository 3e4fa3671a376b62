package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"parts-portal-backend/internal/service"
)

// PartHandler handles HTTP requests for parent parts and their children
type PartHandler struct {
	partService service.PartServiceInterface
}

// NewPartHandler creates a new part handler
func NewPartHandler(partService service.PartServiceInterface) *PartHandler {
	return &PartHandler{partService: partService}
}

// ListParts lists the parts visible to the caller
// @Summary List parts
// @Description Suppliers see their own parts; admins see all parts, optionally filtered by supplier
// @Tags parts
// @Produce json
// @Param supplier_id query string false "Filter by supplier (admins only)"
// @Success 200 {array} service.PartResponse
// @Security BearerAuth
// @Router /parts [get]
func (h *PartHandler) ListParts(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	supplierID, ok := parseSupplierFilter(c)
	if !ok {
		return
	}

	parts, err := h.partService.ListParts(actor, supplierID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, parts)
}

// GetPart retrieves one part with its children
// @Summary Get a part
// @Tags parts
// @Produce json
// @Param id path string true "Part ID (UUID)"
// @Success 200 {object} service.PartResponse
// @Failure 404 {object} ErrorResponse "Part not found"
// @Security BearerAuth
// @Router /parts/{id} [get]
func (h *PartHandler) GetPart(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	part, err := h.partService.GetPart(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, part)
}

// CreatePart creates a parent part
// @Summary Create a part
// @Tags parts
// @Accept json
// @Produce json
// @Param supplier_id query string false "Owning supplier (required for admins)"
// @Param part body service.CreatePartRequest true "Part data"
// @Success 201 {object} service.PartResponse
// @Failure 409 {object} ErrorResponse "SKU already exists"
// @Security BearerAuth
// @Router /parts [post]
func (h *PartHandler) CreatePart(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	supplierID, ok := parseSupplierFilter(c)
	if !ok {
		return
	}

	var req service.CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	part, err := h.partService.CreatePart(actor, supplierID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, part)
}

// UpdatePart applies a partial update to a part
// @Summary Update a part
// @Tags parts
// @Accept json
// @Produce json
// @Param id path string true "Part ID (UUID)"
// @Param part body service.UpdatePartRequest true "Fields to update"
// @Success 200 {object} service.PartResponse
// @Failure 404 {object} ErrorResponse "Part not found"
// @Security BearerAuth
// @Router /parts/{id} [put]
func (h *PartHandler) UpdatePart(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	part, err := h.partService.UpdatePart(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, part)
}

// DeletePart removes a part and its children
// @Summary Delete a part
// @Tags parts
// @Produce json
// @Param id path string true "Part ID (UUID)"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} ErrorResponse "Part not found"
// @Security BearerAuth
// @Router /parts/{id} [delete]
func (h *PartHandler) DeletePart(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.partService.DeletePart(actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Part deleted"})
}

// GetStats returns part counts by status
// @Summary Part statistics
// @Tags parts
// @Produce json
// @Param supplier_id query string false "Filter by supplier (admins only)"
// @Success 200 {object} service.PartStatsResponse
// @Security BearerAuth
// @Router /parts/stats [get]
func (h *PartHandler) GetStats(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	supplierID, ok := parseSupplierFilter(c)
	if !ok {
		return
	}

	stats, err := h.partService.GetStats(actor, supplierID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// SearchParts finds parts by SKU, name or child identifier
// @Summary Search parts
// @Tags parts
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Maximum results (default 50)"
// @Param supplier_id query string false "Filter by supplier (admins only)"
// @Success 200 {array} service.PartResponse
// @Security BearerAuth
// @Router /parts/search [get]
func (h *PartHandler) SearchParts(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	supplierID, ok := parseSupplierFilter(c)
	if !ok {
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter q is required"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	parts, err := h.partService.SearchParts(actor, supplierID, query, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, parts)
}

// AddChild creates a child part under a parent
// @Summary Add a child part
// @Tags parts
// @Accept json
// @Produce json
// @Param id path string true "Parent part ID (UUID)"
// @Param child body service.ChildPartRequest true "Child part data"
// @Success 201 {object} service.ChildPartResponse
// @Failure 409 {object} ErrorResponse "Identifier already exists"
// @Security BearerAuth
// @Router /parts/{id}/children [post]
func (h *PartHandler) AddChild(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	parentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.ChildPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	child, err := h.partService.AddChild(actor, parentID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, child)
}

// UpdateChild applies a partial update to a child part
// @Summary Update a child part
// @Tags parts
// @Accept json
// @Produce json
// @Param id path string true "Parent part ID (UUID)"
// @Param childId path string true "Child part ID (UUID)"
// @Param child body service.UpdateChildPartRequest true "Fields to update"
// @Success 200 {object} service.ChildPartResponse
// @Failure 404 {object} ErrorResponse "Child part not found"
// @Security BearerAuth
// @Router /parts/{id}/children/{childId} [put]
func (h *PartHandler) UpdateChild(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	parentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	childID, ok := parseIDParam(c, "childId")
	if !ok {
		return
	}

	var req service.UpdateChildPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	child, err := h.partService.UpdateChild(actor, parentID, childID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, child)
}

// DeleteChild removes a child part
// @Summary Delete a child part
// @Tags parts
// @Produce json
// @Param id path string true "Parent part ID (UUID)"
// @Param childId path string true "Child part ID (UUID)"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} ErrorResponse "Child part not found"
// @Security BearerAuth
// @Router /parts/{id}/children/{childId} [delete]
func (h *PartHandler) DeleteChild(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	parentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	childID, ok := parseIDParam(c, "childId")
	if !ok {
		return
	}

	if err := h.partService.DeleteChild(actor, parentID, childID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Child part deleted"})
}

// DuplicateChild clones a child part under the same parent
// @Summary Duplicate a child part
// @Tags parts
// @Produce json
// @Param id path string true "Parent part ID (UUID)"
// @Param childId path string true "Child part ID (UUID)"
// @Success 201 {object} service.ChildPartResponse
// @Failure 404 {object} ErrorResponse "Child part not found"
// @Security BearerAuth
// @Router /parts/{id}/children/{childId}/duplicate [post]
func (h *PartHandler) DuplicateChild(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	parentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	childID, ok := parseIDParam(c, "childId")
	if !ok {
		return
	}

	child, err := h.partService.DuplicateChild(actor, parentID, childID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, child)
}
