package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"parts-portal-backend/internal/api/handlers"
	"parts-portal-backend/internal/database/models"
	apperrors "parts-portal-backend/internal/errors"
	"parts-portal-backend/internal/mocks"
	"parts-portal-backend/internal/service"
)

// PartHandlerTestSuite defines the test suite for PartHandler
type PartHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPartServiceInterface
	handler     *handlers.PartHandler
	router      *gin.Engine
	actor       *models.User
}

// SetupTest sets up the test suite
func (suite *PartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPartServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPartHandler(suite.mockService)

	suite.actor = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "supplier@test.com",
		Name:      "Test Supplier",
		Role:      models.UserRoleSupplier,
		IsActive:  true,
	}

	suite.router = gin.New()
	// Stand-in for the auth middleware: inject the authenticated account
	// the way RequireAuth does after validating a token.
	suite.router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.actor.ID)
		c.Set("email", suite.actor.Email)
		c.Set("role", suite.actor.Role)
		c.Set("current_user", suite.actor)
		c.Next()
	})
	suite.router.GET("/parts", suite.handler.ListParts)
	suite.router.POST("/parts", suite.handler.CreatePart)
	suite.router.GET("/parts/stats", suite.handler.GetStats)
	suite.router.GET("/parts/search", suite.handler.SearchParts)
	suite.router.GET("/parts/:id", suite.handler.GetPart)
	suite.router.PUT("/parts/:id", suite.handler.UpdatePart)
	suite.router.DELETE("/parts/:id", suite.handler.DeletePart)
	suite.router.POST("/parts/:id/children", suite.handler.AddChild)
	suite.router.PUT("/parts/:id/children/:childId", suite.handler.UpdateChild)
	suite.router.DELETE("/parts/:id/children/:childId", suite.handler.DeleteChild)
	suite.router.POST("/parts/:id/children/:childId/duplicate", suite.handler.DuplicateChild)
}

// TearDownTest cleans up after each test
func (suite *PartHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListParts tests the ListParts handler
func (suite *PartHandlerTestSuite) TestListParts() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := []service.PartResponse{
			{ID: uuid.New(), SKU: "SKU-100", Name: "Frame", Status: "incomplete"},
		}
		suite.mockService.EXPECT().
			ListParts(suite.actor, nil).
			Return(expected, nil).
			Times(1)

		req := httptest.NewRequest(http.MethodGet, "/parts", nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got []service.PartResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 1)
		assert.Equal(t, "SKU-100", got[0].SKU)
	})

	suite.T().Run("Invalid supplier filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/parts?supplier_id=not-a-uuid", nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid supplier_id")
	})

	suite.T().Run("Supplier pinned to self", func(t *testing.T) {
		other := uuid.New()
		suite.mockService.EXPECT().
			ListParts(suite.actor, gomock.Any()).
			Return(nil, apperrors.ErrAdminRequired).
			Times(1)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/parts?supplier_id=%s", other), nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// TestGetPart tests the GetPart handler
func (suite *PartHandlerTestSuite) TestGetPart() {
	suite.T().Run("Invalid UUID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/parts/invalid-uuid", nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid id")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		partID := uuid.New()
		suite.mockService.EXPECT().
			GetPart(suite.actor, partID).
			Return(nil, apperrors.ErrPartNotFound).
			Times(1)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/parts/%s", partID), nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	suite.T().Run("Success", func(t *testing.T) {
		partID := uuid.New()
		suite.mockService.EXPECT().
			GetPart(suite.actor, partID).
			Return(&service.PartResponse{ID: partID, SKU: "SKU-100"}, nil).
			Times(1)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/parts/%s", partID), nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "SKU-100")
	})
}

// TestCreatePart tests the CreatePart handler
func (suite *PartHandlerTestSuite) TestCreatePart() {
	suite.T().Run("Invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/parts", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "error")
	})

	suite.T().Run("Success", func(t *testing.T) {
		createReq := service.CreatePartRequest{
			SKU:             "SKU-200",
			Name:            "Axle Assembly",
			CountryOfOrigin: "USA",
			TotalWeightKg:   12.5,
			TotalValueUSD:   340,
		}
		suite.mockService.EXPECT().
			CreatePart(suite.actor, nil, gomock.Any()).
			DoAndReturn(func(_ *models.User, _ *uuid.UUID, req *service.CreatePartRequest) (*service.PartResponse, error) {
				return &service.PartResponse{ID: uuid.New(), SKU: req.SKU, Name: req.Name, Status: "incomplete"}, nil
			}).
			Times(1)

		body, _ := json.Marshal(createReq)
		req := httptest.NewRequest(http.MethodPost, "/parts", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "SKU-200")
	})

	suite.T().Run("Duplicate SKU", func(t *testing.T) {
		createReq := service.CreatePartRequest{SKU: "SKU-200", Name: "Axle Assembly"}
		suite.mockService.EXPECT().
			CreatePart(suite.actor, nil, gomock.Any()).
			Return(nil, apperrors.ErrSKUExists).
			Times(1)

		body, _ := json.Marshal(createReq)
		req := httptest.NewRequest(http.MethodPost, "/parts", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

// TestUpdatePart tests the UpdatePart handler
func (suite *PartHandlerTestSuite) TestUpdatePart() {
	suite.T().Run("Invalid UUID", func(t *testing.T) {
		body, _ := json.Marshal(service.UpdatePartRequest{})
		req := httptest.NewRequest(http.MethodPut, "/parts/invalid-uuid", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	suite.T().Run("Success", func(t *testing.T) {
		partID := uuid.New()
		name := "Renamed Part"
		suite.mockService.EXPECT().
			UpdatePart(suite.actor, partID, gomock.Any()).
			Return(&service.PartResponse{ID: partID, Name: name}, nil).
			Times(1)

		body, _ := json.Marshal(service.UpdatePartRequest{Name: &name})
		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/parts/%s", partID), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Renamed Part")
	})
}

// TestDeletePart tests the DeletePart handler
func (suite *PartHandlerTestSuite) TestDeletePart() {
	suite.T().Run("Success", func(t *testing.T) {
		partID := uuid.New()
		suite.mockService.EXPECT().
			DeletePart(suite.actor, partID).
			Return(nil).
			Times(1)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/parts/%s", partID), nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Part deleted")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		partID := uuid.New()
		suite.mockService.EXPECT().
			DeletePart(suite.actor, partID).
			Return(apperrors.ErrPartNotFound).
			Times(1)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/parts/%s", partID), nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestGetStats tests the GetStats handler
func (suite *PartHandlerTestSuite) TestGetStats() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetStats(suite.actor, nil).
			Return(&service.PartStatsResponse{Total: 7, Incomplete: 2, NeedsReview: 1, Completed: 4}, nil).
			Times(1)

		req := httptest.NewRequest(http.MethodGet, "/parts/stats", nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got service.PartStatsResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, int64(7), got.Total)
		assert.Equal(t, int64(4), got.Completed)
	})
}

// TestSearchParts tests the SearchParts handler
func (suite *PartHandlerTestSuite) TestSearchParts() {
	suite.T().Run("Missing query", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/parts/search", nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "q is required")
	})

	suite.T().Run("Success with default limit", func(t *testing.T) {
		suite.mockService.EXPECT().
			SearchParts(suite.actor, nil, "axle", 50).
			Return([]service.PartResponse{{ID: uuid.New(), SKU: "SKU-300"}}, nil).
			Times(1)

		req := httptest.NewRequest(http.MethodGet, "/parts/search?q=axle", nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "SKU-300")
	})
}

// TestAddChild tests the AddChild handler
func (suite *PartHandlerTestSuite) TestAddChild() {
	suite.T().Run("Success", func(t *testing.T) {
		parentID := uuid.New()
		childReq := service.ChildPartRequest{
			Identifier:      "COMP-1",
			Name:            "Bracket",
			CountryOfOrigin: "USA",
			WeightKg:        2,
			ValueUSD:        15,
		}
		suite.mockService.EXPECT().
			AddChild(suite.actor, parentID, gomock.Any()).
			Return(&service.ChildPartResponse{ID: uuid.New(), Identifier: "COMP-1", IsComplete: true}, nil).
			Times(1)

		body, _ := json.Marshal(childReq)
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/parts/%s/children", parentID), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "COMP-1")
	})

	suite.T().Run("Duplicate identifier", func(t *testing.T) {
		parentID := uuid.New()
		childReq := service.ChildPartRequest{Identifier: "COMP-1", Name: "Bracket"}
		suite.mockService.EXPECT().
			AddChild(suite.actor, parentID, gomock.Any()).
			Return(nil, apperrors.ErrIdentifierExists).
			Times(1)

		body, _ := json.Marshal(childReq)
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/parts/%s/children", parentID), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

// TestDuplicateChild tests the DuplicateChild handler
func (suite *PartHandlerTestSuite) TestDuplicateChild() {
	suite.T().Run("Success", func(t *testing.T) {
		parentID := uuid.New()
		childID := uuid.New()
		suite.mockService.EXPECT().
			DuplicateChild(suite.actor, parentID, childID).
			Return(&service.ChildPartResponse{ID: uuid.New(), Identifier: "COMP-1_copy", Name: "Bracket (Copy)"}, nil).
			Times(1)

		url := fmt.Sprintf("/parts/%s/children/%s/duplicate", parentID, childID)
		req := httptest.NewRequest(http.MethodPost, url, nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "COMP-1_copy")
	})

	suite.T().Run("Foreign child looks missing", func(t *testing.T) {
		parentID := uuid.New()
		childID := uuid.New()
		suite.mockService.EXPECT().
			DuplicateChild(suite.actor, parentID, childID).
			Return(nil, apperrors.ErrChildPartNotFound).
			Times(1)

		url := fmt.Sprintf("/parts/%s/children/%s/duplicate", parentID, childID)
		req := httptest.NewRequest(http.MethodPost, url, nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestUnauthenticatedRequest tests that routes missing auth context are rejected
func (suite *PartHandlerTestSuite) TestUnauthenticatedRequest() {
	bare := gin.New()
	bare.GET("/parts", suite.handler.ListParts)

	req := httptest.NewRequest(http.MethodGet, "/parts", nil)
	w := httptest.NewRecorder()
	bare.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Authentication required")
}

func TestPartHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PartHandlerTestSuite))
}
