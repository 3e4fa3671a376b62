//go:build integration
// +build integration

package repository

import (
	"testing"

	"parts-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.Supplier.Create()

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.NotZero(user.CreatedAt)
}

// TestCreateDuplicateEmail tests that emails are unique
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	user1 := suite.factories.Supplier.WithEmail("dup@test.com")
	suite.NoError(suite.repo.Create(user1))

	user2 := suite.factories.Supplier.WithEmail("dup@test.com")
	err := suite.repo.Create(user2)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByEmail tests the email lookup
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.Supplier.WithEmail("lookup@test.com")
	suite.NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetByEmail("lookup@test.com")

	suite.NoError(err)
	suite.Equal(user.ID, retrieved.ID)

	_, err = suite.repo.GetByEmail("missing@test.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetSuppliers tests the paginated supplier listing
func (suite *UserRepositoryTestSuite) TestGetSuppliers() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factories.Supplier.Create()))
	}
	// An admin account must not show up in the supplier listing
	suite.NoError(suite.repo.Create(suite.factories.Supplier.Admin()))

	suppliers, total, err := suite.repo.GetSuppliers(2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(suppliers, 2)

	rest, total, err := suite.repo.GetSuppliers(2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(rest, 1)
}

// TestGetSupplierByID tests the role-checked lookup
func (suite *UserRepositoryTestSuite) TestGetSupplierByID() {
	admin := suite.factories.Supplier.Admin()
	suite.NoError(suite.repo.Create(admin))

	_, err := suite.repo.GetSupplierByID(admin.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	supplier := suite.factories.Supplier.Create()
	suite.NoError(suite.repo.Create(supplier))

	retrieved, err := suite.repo.GetSupplierByID(supplier.ID)
	suite.NoError(err)
	suite.Equal(supplier.ID, retrieved.ID)
}

// TestUpdate tests persisting account changes
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.factories.Supplier.Create()
	suite.NoError(suite.repo.Create(user))

	user.IsActive = false
	user.CompanyName = "Renamed Co."
	suite.NoError(suite.repo.Update(user))

	retrieved, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.False(retrieved.IsActive)
	suite.Equal("Renamed Co.", retrieved.CompanyName)
}

// TestDelete tests removing an account
func (suite *UserRepositoryTestSuite) TestDelete() {
	user := suite.factories.Supplier.Create()
	suite.NoError(suite.repo.Create(user))

	suite.NoError(suite.repo.Delete(user.ID))

	_, err := suite.repo.GetByID(user.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
