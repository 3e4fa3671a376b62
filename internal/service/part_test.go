package service_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"parts-portal-backend/internal/database/models"
	apperrors "parts-portal-backend/internal/errors"
	"parts-portal-backend/internal/mocks"
	"parts-portal-backend/internal/service"
)

// PartServiceTestSuite defines the test suite for PartService
type PartServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockPartRepo  *mocks.MockPartRepositoryInterface
	mockAuditRepo *mocks.MockAuditLogRepositoryInterface
	partService   *service.PartService
	supplier      *models.User
	admin         *models.User
}

// SetupTest sets up the test suite
func (suite *PartServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPartRepo = mocks.NewMockPartRepositoryInterface(suite.ctrl)
	suite.mockAuditRepo = mocks.NewMockAuditLogRepositoryInterface(suite.ctrl)

	// audit writes are best effort and not the subject of these tests
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil).AnyTimes()

	audit := service.NewAuditRecorder(suite.mockAuditRepo, logrus.New())
	suite.partService = service.NewPartService(suite.mockPartRepo, audit, validator.New())

	suite.supplier = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "supplier@test.com",
		Role:      models.UserRoleSupplier,
	}
	suite.admin = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "admin@test.com",
		Role:      models.UserRoleAdmin,
	}
}

// TearDownTest cleans up after each test
func (suite *PartServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PartServiceTestSuite) ownedPart() *models.ParentPart {
	return &models.ParentPart{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		SupplierID:    suite.supplier.ID,
		SKU:           "SKU-1",
		Name:          "Frame Assembly",
		TotalWeightKg: 10,
		Status:        models.PartStatusIncomplete,
	}
}

// TestCreatePart tests creating a part as a supplier
func (suite *PartServiceTestSuite) TestCreatePart() {
	req := &service.CreatePartRequest{
		SKU:           "SKU-1",
		Name:          "Frame Assembly",
		TotalWeightKg: 10,
		TotalValueUSD: 500,
	}

	suite.mockPartRepo.EXPECT().
		GetBySKU(suite.supplier.ID, "SKU-1").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockPartRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.partService.CreatePart(suite.supplier, nil, req)

	suite.NoError(err)
	suite.Require().NotNil(response)
	suite.Equal("SKU-1", response.SKU)
	suite.Equal(suite.supplier.ID, response.SupplierID)
	suite.Equal("incomplete", response.Status)
}

// TestCreatePartDuplicateSKU tests the per-supplier SKU uniqueness check
func (suite *PartServiceTestSuite) TestCreatePartDuplicateSKU() {
	req := &service.CreatePartRequest{SKU: "SKU-1", Name: "Frame Assembly"}

	suite.mockPartRepo.EXPECT().
		GetBySKU(suite.supplier.ID, "SKU-1").
		Return(suite.ownedPart(), nil).
		Times(1)

	response, err := suite.partService.CreatePart(suite.supplier, nil, req)

	suite.ErrorIs(err, apperrors.ErrSKUExists)
	suite.Nil(response)
}

// TestCreatePartAdminRequiresSupplierID tests that admins must name the supplier
func (suite *PartServiceTestSuite) TestCreatePartAdminRequiresSupplierID() {
	req := &service.CreatePartRequest{SKU: "SKU-1", Name: "Frame Assembly"}

	response, err := suite.partService.CreatePart(suite.admin, nil, req)

	suite.ErrorIs(err, apperrors.ErrSupplierIDRequired)
	suite.Nil(response)
}

// TestCreatePartAdminOnBehalf tests creating a part for a named supplier
func (suite *PartServiceTestSuite) TestCreatePartAdminOnBehalf() {
	ownerID := suite.supplier.ID
	req := &service.CreatePartRequest{SKU: "SKU-9", Name: "Axle"}

	suite.mockPartRepo.EXPECT().
		GetBySKU(ownerID, "SKU-9").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockPartRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.partService.CreatePart(suite.admin, &ownerID, req)

	suite.NoError(err)
	suite.Require().NotNil(response)
	suite.Equal(ownerID, response.SupplierID)
}

// TestCreatePartValidationError tests request validation
func (suite *PartServiceTestSuite) TestCreatePartValidationError() {
	req := &service.CreatePartRequest{SKU: "", Name: "Frame Assembly"}

	response, err := suite.partService.CreatePart(suite.supplier, nil, req)

	suite.Error(err)
	suite.Nil(response)
	suite.True(apperrors.IsValidation(err))
}

// TestGetPartForeignPartLooksMissing tests that suppliers cannot discover
// another supplier's parts
func (suite *PartServiceTestSuite) TestGetPartForeignPartLooksMissing() {
	foreign := suite.ownedPart()
	foreign.SupplierID = uuid.New()

	suite.mockPartRepo.EXPECT().
		GetByID(foreign.ID).
		Return(foreign, nil).
		Times(1)

	response, err := suite.partService.GetPart(suite.supplier, foreign.ID)

	suite.ErrorIs(err, apperrors.ErrPartNotFound)
	suite.Nil(response)
}

// TestListPartsSupplierPinnedToSelf tests that suppliers cannot list another
// supplier's parts
func (suite *PartServiceTestSuite) TestListPartsSupplierPinnedToSelf() {
	other := uuid.New()

	response, err := suite.partService.ListParts(suite.supplier, &other)

	suite.ErrorIs(err, apperrors.ErrAdminRequired)
	suite.Nil(response)
}

// TestUpdatePartRecomputesStatus tests that a partial update recomputes the
// derived status from the loaded children
func (suite *PartServiceTestSuite) TestUpdatePartRecomputesStatus() {
	part := suite.ownedPart()
	child := models.ChildPart{
		ParentPartID:    part.ID,
		Identifier:      "COMP-1",
		Name:            "Tube",
		CountryOfOrigin: "USA",
		WeightKg:        10,
		ValueUSD:        50,
	}
	child.Recalculate()
	part.ChildParts = []models.ChildPart{child}

	suite.mockPartRepo.EXPECT().GetByID(part.ID).Return(part, nil).Times(1)

	var saved map[string]interface{}
	suite.mockPartRepo.EXPECT().
		UpdateFields(part.ID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, updates map[string]interface{}) error {
			saved = updates
			return nil
		}).
		Times(1)

	name := "Frame Assembly v2"
	response, err := suite.partService.UpdatePart(suite.supplier, part.ID, &service.UpdatePartRequest{Name: &name})

	suite.NoError(err)
	suite.Require().NotNil(response)
	suite.Equal("Frame Assembly v2", response.Name)
	suite.Require().NotNil(saved)
	suite.Equal("Frame Assembly v2", saved["name"])
	suite.Equal(models.PartStatusCompleted, saved["status"])
	// Untouched columns stay out of the update
	suite.NotContains(saved, "sku")
	suite.NotContains(saved, "total_weight_kg")
}

// TestGetStats tests summing the status counts
func (suite *PartServiceTestSuite) TestGetStats() {
	suite.mockPartRepo.EXPECT().
		CountByStatus(gomock.Any()).
		Return(map[models.PartStatus]int64{
			models.PartStatusIncomplete:  3,
			models.PartStatusNeedsReview: 1,
			models.PartStatusCompleted:   6,
		}, nil).
		Times(1)

	stats, err := suite.partService.GetStats(suite.supplier, nil)

	suite.NoError(err)
	suite.Require().NotNil(stats)
	suite.Equal(int64(10), stats.Total)
	suite.Equal(int64(3), stats.Incomplete)
	suite.Equal(int64(1), stats.NeedsReview)
	suite.Equal(int64(6), stats.Completed)
}

// TestAddChildDuplicateIdentifier tests the per-parent identifier check
func (suite *PartServiceTestSuite) TestAddChildDuplicateIdentifier() {
	part := suite.ownedPart()
	existing := &models.ChildPart{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		ParentPartID: part.ID,
		Identifier:   "COMP-1",
	}

	suite.mockPartRepo.EXPECT().GetByID(part.ID).Return(part, nil).Times(1)
	suite.mockPartRepo.EXPECT().
		GetChildByIdentifier(part.ID, "COMP-1").
		Return(existing, nil).
		Times(1)

	req := &service.ChildPartRequest{Identifier: "COMP-1", Name: "Tube"}
	response, err := suite.partService.AddChild(suite.supplier, part.ID, req)

	suite.ErrorIs(err, apperrors.ErrIdentifierExists)
	suite.Nil(response)
}

// TestAddChildComputesDerivedFields tests weight mirroring and completeness
func (suite *PartServiceTestSuite) TestAddChildComputesDerivedFields() {
	part := suite.ownedPart()

	suite.mockPartRepo.EXPECT().GetByID(part.ID).Return(part, nil).Times(1)
	suite.mockPartRepo.EXPECT().
		GetChildByIdentifier(part.ID, "COMP-1").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockPartRepo.EXPECT().
		AddChild(part.ID, gomock.Any()).
		Return(nil).
		Times(1)

	req := &service.ChildPartRequest{
		Identifier:      "COMP-1",
		Name:            "Tube",
		CountryOfOrigin: "USA",
		WeightKg:        10,
		ValueUSD:        50,
	}
	response, err := suite.partService.AddChild(suite.supplier, part.ID, req)

	suite.NoError(err)
	suite.Require().NotNil(response)
	suite.InDelta(22.0462, response.WeightLbs, 0.0001)
	suite.True(response.IsComplete)
}

// TestDuplicateChildDerivesIdentifier tests the copy naming scheme
func (suite *PartServiceTestSuite) TestDuplicateChildDerivesIdentifier() {
	part := suite.ownedPart()
	source := &models.ChildPart{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		ParentPartID: part.ID,
		Identifier:   "COMP-1",
		Name:         "Tube",
		IsComplete:   true,
	}

	suite.mockPartRepo.EXPECT().GetByID(part.ID).Return(part, nil).Times(1)
	suite.mockPartRepo.EXPECT().GetChild(part.ID, source.ID).Return(source, nil).Times(1)
	// COMP-1_copy is taken, COMP-1_copy2 is free
	suite.mockPartRepo.EXPECT().
		GetChildByIdentifier(part.ID, "COMP-1_copy").
		Return(&models.ChildPart{}, nil).
		Times(1)
	suite.mockPartRepo.EXPECT().
		GetChildByIdentifier(part.ID, "COMP-1_copy2").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockPartRepo.EXPECT().
		AddChild(part.ID, gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.partService.DuplicateChild(suite.supplier, part.ID, source.ID)

	suite.NoError(err)
	suite.Require().NotNil(response)
	suite.Equal("COMP-1_copy2", response.Identifier)
	suite.Equal("Tube (Copy)", response.Name)
	// a copy always starts incomplete
	suite.False(response.IsComplete)
}

// TestDeleteChild tests removing a child part
func (suite *PartServiceTestSuite) TestDeleteChild() {
	part := suite.ownedPart()
	child := &models.ChildPart{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		ParentPartID: part.ID,
		Identifier:   "COMP-1",
	}

	suite.mockPartRepo.EXPECT().GetByID(part.ID).Return(part, nil).Times(1)
	suite.mockPartRepo.EXPECT().GetChild(part.ID, child.ID).Return(child, nil).Times(1)
	suite.mockPartRepo.EXPECT().DeleteChild(part.ID, child.ID).Return(nil).Times(1)

	err := suite.partService.DeleteChild(suite.supplier, part.ID, child.ID)

	suite.NoError(err)
}

func TestPartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartServiceTestSuite))
}
