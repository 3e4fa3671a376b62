package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parts-portal-backend/internal/auth"
	"parts-portal-backend/internal/database/models"
	apperrors "parts-portal-backend/internal/errors"
)

// respondError maps service errors onto HTTP status codes: validation 400,
// authentication 401, authorization 403, missing entities 404, conflicts
// 409, storage failures 500.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsStorage(err):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage operation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// currentUser pulls the authenticated account set by the auth middleware.
// A missing account means the middleware was not applied to the route.
func currentUser(c *gin.Context) (*models.User, bool) {
	user, ok := auth.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}
	return user, true
}

// parseIDParam parses a UUID path parameter, responding 400 on garbage
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// parseSupplierFilter reads the optional supplier_id query parameter
func parseSupplierFilter(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.Query("supplier_id")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supplier_id"})
		return nil, false
	}
	return &id, true
}
