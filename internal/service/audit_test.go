package service_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"parts-portal-backend/internal/database/models"
	"parts-portal-backend/internal/mocks"
	"parts-portal-backend/internal/service"
)

func TestComputeFieldChangesCreate(t *testing.T) {
	changes := service.ComputeFieldChanges(nil, map[string]any{
		"name":        "Frame",
		"description": "",
		"weight_kg":   4.5,
		"is_flagged":  false,
	})

	// zero values are dropped on create entries
	require.Len(t, changes, 2)
	assert.Equal(t, "name", changes[0].Field)
	assert.Nil(t, changes[0].Old)
	assert.Equal(t, "Frame", changes[0].New)
	assert.Equal(t, "weight_kg", changes[1].Field)
	assert.Equal(t, 4.5, changes[1].New)
}

func TestComputeFieldChangesDelete(t *testing.T) {
	changes := service.ComputeFieldChanges(map[string]any{
		"name":      "Frame",
		"weight_kg": 0.0,
	}, nil)

	require.Len(t, changes, 1)
	assert.Equal(t, "name", changes[0].Field)
	assert.Equal(t, "Frame", changes[0].Old)
	assert.Nil(t, changes[0].New)
}

func TestComputeFieldChangesUpdate(t *testing.T) {
	changes := service.ComputeFieldChanges(
		map[string]any{"name": "Frame", "weight_kg": 4.5, "country": "USA"},
		map[string]any{"name": "Frame Assembly", "weight_kg": 4.5, "country": "Canada"},
	)

	require.Len(t, changes, 2)
	assert.Equal(t, "country", changes[0].Field)
	assert.Equal(t, "USA", changes[0].Old)
	assert.Equal(t, "Canada", changes[0].New)
	assert.Equal(t, "name", changes[1].Field)
}

func TestComputeFieldChangesEquivalentNumerics(t *testing.T) {
	// int and float64 spellings of the same number are not a change
	changes := service.ComputeFieldChanges(
		map[string]any{"weight_kg": 5},
		map[string]any{"weight_kg": 5.0},
	)
	assert.Empty(t, changes)
}

func TestComputeFieldChangesBothNil(t *testing.T) {
	assert.Nil(t, service.ComputeFieldChanges(nil, nil))
}

// AuditRecorderTestSuite tests the best-effort audit recorder
type AuditRecorderTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockAuditLogRepositoryInterface
	recorder *service.AuditRecorder
	actor    *models.User
}

func (suite *AuditRecorderTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockAuditLogRepositoryInterface(suite.ctrl)
	suite.recorder = service.NewAuditRecorder(suite.mockRepo, logrus.New())
	suite.actor = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "supplier@test.com",
		Role:      models.UserRoleSupplier,
	}
}

func (suite *AuditRecorderTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuditRecorderTestSuite) TestRecordCreate() {
	entityID := uuid.New()
	supplierID := suite.actor.ID

	var captured *models.AuditLog
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(entry *models.AuditLog) error {
			captured = entry
			return nil
		}).
		Times(1)

	suite.recorder.Record(suite.actor, models.AuditActionCreate, models.AuditEntityParentPart, entityID, &supplierID,
		[]models.FieldChange{{Field: "name", New: "Frame"}})

	suite.Require().NotNil(captured)
	suite.Equal(suite.actor.ID, captured.UserID)
	suite.Equal("supplier@test.com", captured.UserEmail)
	suite.Equal(models.AuditActionCreate, captured.Action)
	suite.Equal(entityID, captured.EntityID)

	var changes []models.FieldChange
	suite.NoError(json.Unmarshal(captured.FieldChanges, &changes))
	suite.Len(changes, 1)
	suite.Equal("name", changes[0].Field)
}

func (suite *AuditRecorderTestSuite) TestRecordSuppressesEmptyUpdate() {
	// no Create expectation: an empty update diff must not reach the repo
	suite.recorder.Record(suite.actor, models.AuditActionUpdate, models.AuditEntityParentPart, uuid.New(), nil, nil)
}

func (suite *AuditRecorderTestSuite) TestRecordNeverFailsCaller() {
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(errors.New("database unavailable")).
		Times(1)

	// must not panic or propagate the error
	suite.recorder.Record(suite.actor, models.AuditActionDelete, models.AuditEntityChildPart, uuid.New(), nil,
		[]models.FieldChange{{Field: "name", Old: "Tube"}})
}

func (suite *AuditRecorderTestSuite) TestRecordSummarySortsFields() {
	var captured *models.AuditLog
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(entry *models.AuditLog) error {
			captured = entry
			return nil
		}).
		Times(1)

	suite.recorder.RecordSummary(suite.actor, models.AuditActionImport, models.AuditEntityBatchImport, uuid.New(), nil,
		map[string]any{
			"total_rows":      10,
			"created_parents": 2,
			"error_count":     1,
		})

	suite.Require().NotNil(captured)
	var changes []models.FieldChange
	suite.NoError(json.Unmarshal(captured.FieldChanges, &changes))
	suite.Require().Len(changes, 3)
	suite.Equal("created_parents", changes[0].Field)
	suite.Equal("error_count", changes[1].Field)
	suite.Equal("total_rows", changes[2].Field)
}

func TestAuditRecorderTestSuite(t *testing.T) {
	suite.Run(t, new(AuditRecorderTestSuite))
}
