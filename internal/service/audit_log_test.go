package service_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"parts-portal-backend/internal/database/models"
	"parts-portal-backend/internal/mocks"
	"parts-portal-backend/internal/repository"
	"parts-portal-backend/internal/service"
)

// AuditLogServiceTestSuite defines the test suite for AuditLogService
type AuditLogServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockAuditLogRepositoryInterface
	auditLogService *service.AuditLogService
}

// SetupTest sets up the test suite
func (suite *AuditLogServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockAuditLogRepositoryInterface(suite.ctrl)
	suite.auditLogService = service.NewAuditLogService(suite.mockRepo)
}

// TearDownTest cleans up after each test
func (suite *AuditLogServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuditLogServiceTestSuite) sampleEntry() models.AuditLog {
	changes, _ := json.Marshal([]models.FieldChange{{Field: "name", Old: "Frame", New: "Frame v2"}})
	return models.AuditLog{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		UserEmail:    "supplier@test.com",
		Action:       models.AuditActionUpdate,
		EntityType:   models.AuditEntityParentPart,
		EntityID:     uuid.New(),
		FieldChanges: changes,
		Timestamp:    time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
	}
}

// TestListEntries tests the query passthrough and response mapping
func (suite *AuditLogServiceTestSuite) TestListEntries() {
	supplierID := uuid.New()
	entry := suite.sampleEntry()

	suite.mockRepo.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(filter repository.AuditLogFilter) ([]models.AuditLog, error) {
			suite.Require().NotNil(filter.SupplierID)
			suite.Equal(supplierID, *filter.SupplierID)
			suite.Equal(models.AuditEntityParentPart, filter.EntityType)
			suite.Equal(100, filter.Limit)
			return []models.AuditLog{entry}, nil
		}).
		Times(1)

	responses, err := suite.auditLogService.ListEntries(service.AuditLogQuery{
		SupplierID: &supplierID,
		EntityType: "parent_part",
		Limit:      100,
	})

	suite.NoError(err)
	suite.Require().Len(responses, 1)
	suite.Equal("update", responses[0].Action)
	suite.Equal("supplier@test.com", responses[0].UserEmail)
	suite.Equal("2025-03-10T14:30:00Z", responses[0].Timestamp)
	suite.Require().Len(responses[0].FieldChanges, 1)
	suite.Equal("name", responses[0].FieldChanges[0].Field)
}

// TestListEntriesMalformedChanges tests that undecodable change payloads
// degrade to an empty list instead of failing the request
func (suite *AuditLogServiceTestSuite) TestListEntriesMalformedChanges() {
	entry := suite.sampleEntry()
	entry.FieldChanges = json.RawMessage(`{broken`)

	suite.mockRepo.EXPECT().
		List(gomock.Any()).
		Return([]models.AuditLog{entry}, nil).
		Times(1)

	responses, err := suite.auditLogService.ListEntries(service.AuditLogQuery{})

	suite.NoError(err)
	suite.Require().Len(responses, 1)
	suite.Empty(responses[0].FieldChanges)
	suite.NotNil(responses[0].FieldChanges)
}

// TestExportEntries tests rendering entries into a workbook
func (suite *AuditLogServiceTestSuite) TestExportEntries() {
	entry := suite.sampleEntry()

	suite.mockRepo.EXPECT().
		List(gomock.Any()).
		Return([]models.AuditLog{entry}, nil).
		Times(1)

	f, err := suite.auditLogService.ExportEntries(service.AuditLogQuery{})

	suite.NoError(err)
	suite.Require().NotNil(f)
	rows, err := f.GetRows("Parts")
	suite.NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("timestamp", rows[0][0])
	suite.Equal("supplier@test.com", rows[1][1])
	suite.Contains(rows[1][6], "name: Frame -> Frame v2")
}

func TestAuditLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditLogServiceTestSuite))
}
