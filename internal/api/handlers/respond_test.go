package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "parts-portal-backend/internal/errors"
)

// respondStatus runs respondError on a fresh test context and returns the
// written status code
func respondStatus(t *testing.T, err error) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	respondError(c, err)
	return recorder.Code
}

// TestRespondErrorStatusMapping tests the error-to-status translation for
// each error category
func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.NewValidationError("sku", "is required"), http.StatusBadRequest},
		{"authentication", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"authorization", apperrors.ErrAdminRequired, http.StatusForbidden},
		{"not found", apperrors.ErrPartNotFound, http.StatusNotFound},
		{"already exists", apperrors.ErrSKUExists, http.StatusConflict},
		{"storage", apperrors.NewStorageError("put", errors.New("connection refused")), http.StatusInternalServerError},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, respondStatus(t, tc.err))
		})
	}
}

// TestRespondErrorImportSentinels tests that workbook and import scope
// rejections surface as bad requests rather than server errors
func TestRespondErrorImportSentinels(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not an excel file", apperrors.ErrNotAnExcelFile},
		{"missing parent_sku column", apperrors.ErrMissingParentSKUColumn},
		{"admin import without supplier_id", apperrors.ErrSupplierIDRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, respondStatus(t, tc.err))
		})
	}
}
