package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"parts-portal-backend/internal/api/handlers"
	"parts-portal-backend/internal/database/models"
	apperrors "parts-portal-backend/internal/errors"
	"parts-portal-backend/internal/mocks"
	"parts-portal-backend/internal/service"
	"parts-portal-backend/internal/testutils"
)

// SupplierHandlerTestSuite defines the test suite for SupplierHandler
type SupplierHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSupplierServiceInterface
	handler     *handlers.SupplierHandler
	httpSuite   *testutils.HTTPTestSuite
	admin       *models.User
}

// SetupTest sets up the test suite
func (suite *SupplierHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSupplierServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSupplierHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.admin = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "admin@test.com",
		Name:      "Test Admin",
		Role:      models.UserRoleAdmin,
		IsActive:  true,
	}

	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.admin.ID)
		c.Set("email", suite.admin.Email)
		c.Set("role", suite.admin.Role)
		c.Set("current_user", suite.admin)
		c.Next()
	})
	suite.httpSuite.Router.GET("/suppliers", suite.handler.ListSuppliers)
	suite.httpSuite.Router.POST("/suppliers", suite.handler.CreateSupplier)
	suite.httpSuite.Router.GET("/suppliers/:id", suite.handler.GetSupplier)
	suite.httpSuite.Router.PUT("/suppliers/:id", suite.handler.UpdateSupplier)
	suite.httpSuite.Router.DELETE("/suppliers/:id", suite.handler.DeleteSupplier)
}

// TearDownTest cleans up after each test
func (suite *SupplierHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListSuppliers tests the ListSuppliers handler
func (suite *SupplierHandlerTestSuite) TestListSuppliers() {
	suite.mockService.EXPECT().
		ListSuppliers(50, 0).
		Return(&service.SupplierListResponse{
			Suppliers: []service.SupplierResponse{
				{ID: uuid.New(), Email: "s1@test.com", Name: "Supplier One", IsActive: true, PartCount: 4},
			},
			Total: 1,
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/suppliers", nil)

	var response service.SupplierListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(int64(1), response.Total)
	suite.Len(response.Suppliers, 1)
	suite.Equal("s1@test.com", response.Suppliers[0].Email)
}

// TestListSuppliersPagination tests that limit and offset pass through
func (suite *SupplierHandlerTestSuite) TestListSuppliersPagination() {
	suite.mockService.EXPECT().
		ListSuppliers(10, 20).
		Return(&service.SupplierListResponse{Suppliers: []service.SupplierResponse{}, Total: 0}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/suppliers?limit=10&offset=20", nil)
	suite.Equal(http.StatusOK, recorder.Code)
}

// TestGetSupplier tests the GetSupplier handler
func (suite *SupplierHandlerTestSuite) TestGetSupplier() {
	supplierID := uuid.New()
	suite.mockService.EXPECT().
		GetSupplier(supplierID).
		Return(&service.SupplierResponse{ID: supplierID, Email: "s1@test.com"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/suppliers/%s", supplierID), nil)

	var response service.SupplierResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(supplierID, response.ID)
}

// TestGetSupplierNotFound tests the missing-supplier path
func (suite *SupplierHandlerTestSuite) TestGetSupplierNotFound() {
	supplierID := uuid.New()
	suite.mockService.EXPECT().
		GetSupplier(supplierID).
		Return(nil, apperrors.ErrSupplierNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/suppliers/%s", supplierID), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "")
}

// TestGetSupplierInvalidUUID tests the invalid path parameter
func (suite *SupplierHandlerTestSuite) TestGetSupplierInvalidUUID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/suppliers/invalid-uuid", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid id")
}

// TestCreateSupplier tests the CreateSupplier handler
func (suite *SupplierHandlerTestSuite) TestCreateSupplier() {
	createReq := service.CreateSupplierRequest{
		Email:       "new@supplier.com",
		Password:    "supplier123",
		Name:        "New Supplier",
		CompanyName: "New Co.",
	}
	suite.mockService.EXPECT().
		CreateSupplier(suite.admin, gomock.Any()).
		DoAndReturn(func(_ *models.User, req *service.CreateSupplierRequest) (*service.SupplierResponse, error) {
			return &service.SupplierResponse{ID: uuid.New(), Email: req.Email, Name: req.Name, IsActive: true}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/suppliers", createReq)

	var response service.SupplierResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal("new@supplier.com", response.Email)
}

// TestCreateSupplierDuplicateEmail tests the email conflict path
func (suite *SupplierHandlerTestSuite) TestCreateSupplierDuplicateEmail() {
	createReq := service.CreateSupplierRequest{
		Email:    "taken@supplier.com",
		Password: "supplier123",
		Name:     "New Supplier",
	}
	suite.mockService.EXPECT().
		CreateSupplier(suite.admin, gomock.Any()).
		Return(nil, apperrors.ErrEmailExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/suppliers", createReq)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "")
}

// TestUpdateSupplier tests deactivating an account
func (suite *SupplierHandlerTestSuite) TestUpdateSupplier() {
	supplierID := uuid.New()
	active := false
	suite.mockService.EXPECT().
		UpdateSupplier(suite.admin, supplierID, gomock.Any()).
		Return(&service.SupplierResponse{ID: supplierID, IsActive: false}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/suppliers/%s", supplierID),
		service.UpdateSupplierRequest{IsActive: &active})

	var response service.SupplierResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.False(response.IsActive)
}

// TestDeleteSupplier tests the DeleteSupplier handler
func (suite *SupplierHandlerTestSuite) TestDeleteSupplier() {
	supplierID := uuid.New()
	suite.mockService.EXPECT().
		DeleteSupplier(suite.admin, supplierID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/suppliers/%s", supplierID), nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "Supplier deleted")
}

func TestSupplierHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierHandlerTestSuite))
}
