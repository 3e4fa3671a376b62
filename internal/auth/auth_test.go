package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"parts-portal-backend/internal/auth"
	"parts-portal-backend/internal/database/models"
	apperrors "parts-portal-backend/internal/errors"
	"parts-portal-backend/internal/mocks"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	authService  *auth.AuthService
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.authService = auth.NewAuthService(suite.mockUserRepo, "test-secret", 24)
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) userWithPassword(password string) *models.User {
	hash, err := auth.HashPassword(password)
	suite.Require().NoError(err)
	return &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        "supplier@test.com",
		PasswordHash: hash,
		Name:         "Test Supplier",
		Role:         models.UserRoleSupplier,
		IsActive:     true,
	}
}

// TestLogin tests a successful credential check
func (suite *AuthServiceTestSuite) TestLogin() {
	user := suite.userWithPassword("supplier123")

	suite.mockUserRepo.EXPECT().
		GetByEmail("supplier@test.com").
		Return(user, nil).
		Times(1)

	response, err := suite.authService.Login(auth.LoginRequest{
		Email:    "supplier@test.com",
		Password: "supplier123",
	})

	suite.NoError(err)
	suite.Require().NotNil(response)
	suite.NotEmpty(response.AccessToken)
	suite.Equal("bearer", response.TokenType)
	suite.Equal(user.ID, response.User.ID)
	suite.Equal(models.UserRoleSupplier, response.User.Role)
}

// TestLoginWrongPassword tests rejecting a bad password
func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	user := suite.userWithPassword("supplier123")

	suite.mockUserRepo.EXPECT().
		GetByEmail("supplier@test.com").
		Return(user, nil).
		Times(1)

	response, err := suite.authService.Login(auth.LoginRequest{
		Email:    "supplier@test.com",
		Password: "wrong-password",
	})

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.Nil(response)
}

// TestLoginUnknownEmail tests that unknown accounts and bad passwords are
// indistinguishable to the caller
func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("nobody@test.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.authService.Login(auth.LoginRequest{
		Email:    "nobody@test.com",
		Password: "supplier123",
	})

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.Nil(response)
}

// TestLoginDisabledAccount tests rejecting deactivated accounts
func (suite *AuthServiceTestSuite) TestLoginDisabledAccount() {
	user := suite.userWithPassword("supplier123")
	user.IsActive = false

	suite.mockUserRepo.EXPECT().
		GetByEmail("supplier@test.com").
		Return(user, nil).
		Times(1)

	response, err := suite.authService.Login(auth.LoginRequest{
		Email:    "supplier@test.com",
		Password: "supplier123",
	})

	suite.ErrorIs(err, apperrors.ErrAccountDisabled)
	suite.Nil(response)
}

// TestRegisterDefaultsToSupplierRole tests the default role on registration
func (suite *AuthServiceTestSuite) TestRegisterDefaultsToSupplierRole() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("new@test.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	var created *models.User
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(u *models.User) error {
			created = u
			return nil
		}).
		Times(1)

	response, err := suite.authService.Register(auth.RegisterRequest{
		Email:    "new@test.com",
		Password: "supplier123",
		Name:     "New Supplier",
	})

	suite.NoError(err)
	suite.Require().NotNil(response)
	suite.Require().NotNil(created)
	suite.Equal(models.UserRoleSupplier, created.Role)
	suite.True(created.IsActive)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("supplier123")))
}

// TestRegisterDuplicateEmail tests the email uniqueness check
func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("taken@test.com").
		Return(&models.User{}, nil).
		Times(1)

	response, err := suite.authService.Register(auth.RegisterRequest{
		Email:    "taken@test.com",
		Password: "supplier123",
		Name:     "New Supplier",
	})

	suite.ErrorIs(err, apperrors.ErrEmailExists)
	suite.Nil(response)
}

// TestJWTRoundTrip tests issuing and validating a token
func (suite *AuthServiceTestSuite) TestJWTRoundTrip() {
	user := suite.userWithPassword("supplier123")

	token, err := suite.authService.GenerateJWT(user)
	suite.Require().NoError(err)

	claims, err := suite.authService.ValidateJWT(token)
	suite.Require().NoError(err)
	suite.Equal(user.ID, claims.UserID)
	suite.Equal(user.Email, claims.Email)
	suite.Equal(models.UserRoleSupplier, claims.Role)
}

// TestValidateJWTWrongSecret tests rejecting tokens signed elsewhere
func (suite *AuthServiceTestSuite) TestValidateJWTWrongSecret() {
	other := auth.NewAuthService(suite.mockUserRepo, "other-secret", 24)
	user := suite.userWithPassword("supplier123")

	token, err := other.GenerateJWT(user)
	suite.Require().NoError(err)

	claims, err := suite.authService.ValidateJWT(token)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
	suite.Nil(claims)
}

// TestValidateJWTExpired tests rejecting expired tokens
func (suite *AuthServiceTestSuite) TestValidateJWTExpired() {
	user := suite.userWithPassword("supplier123")

	claims := &auth.AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Issuer:    "parts-portal-backend",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	suite.Require().NoError(err)

	parsed, err := suite.authService.ValidateJWT(token)
	suite.ErrorIs(err, apperrors.ErrTokenExpired)
	suite.Nil(parsed)
}

// TestValidateJWTMalformed tests rejecting garbage token strings
func (suite *AuthServiceTestSuite) TestValidateJWTMalformed() {
	claims, err := suite.authService.ValidateJWT("not.a.token")
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
	suite.Nil(claims)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
