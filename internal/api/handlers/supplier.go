package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"parts-portal-backend/internal/service"
)

// SupplierHandler handles admin HTTP requests for supplier accounts
type SupplierHandler struct {
	supplierService service.SupplierServiceInterface
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(supplierService service.SupplierServiceInterface) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// ListSuppliers lists supplier accounts with pagination
// @Summary List suppliers
// @Tags suppliers
// @Produce json
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Offset (default 0)"
// @Success 200 {object} service.SupplierListResponse
// @Security BearerAuth
// @Router /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	suppliers, err := h.supplierService.ListSuppliers(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

// GetSupplier retrieves one supplier account
// @Summary Get a supplier
// @Tags suppliers
// @Produce json
// @Param id path string true "Supplier ID (UUID)"
// @Success 200 {object} service.SupplierResponse
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Security BearerAuth
// @Router /suppliers/{id} [get]
func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	supplier, err := h.supplierService.GetSupplier(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// CreateSupplier creates a supplier account
// @Summary Create a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body service.CreateSupplierRequest true "Supplier data"
// @Success 201 {object} service.SupplierResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /suppliers [post]
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var req service.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	supplier, err := h.supplierService.CreateSupplier(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

// UpdateSupplier applies a partial update to a supplier account
// @Summary Update a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID (UUID)"
// @Param supplier body service.UpdateSupplierRequest true "Fields to update"
// @Success 200 {object} service.SupplierResponse
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Security BearerAuth
// @Router /suppliers/{id} [put]
func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// DeleteSupplier removes a supplier account and its data
// @Summary Delete a supplier
// @Tags suppliers
// @Produce json
// @Param id path string true "Supplier ID (UUID)"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Security BearerAuth
// @Router /suppliers/{id} [delete]
func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.supplierService.DeleteSupplier(actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted"})
}
