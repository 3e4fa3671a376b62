package auth

import (
	"errors"
	"fmt"
	"time"

	apperrors "parts-portal-backend/internal/errors"

	"parts-portal-backend/internal/database/models"
	"parts-portal-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID uuid.UUID       `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// UserProfile is the account summary embedded in auth responses
type UserProfile struct {
	ID          uuid.UUID       `json:"id"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	Role        models.UserRole `json:"role"`
	CompanyName string          `json:"company_name,omitempty"`
}

// TokenResponse is returned from login and register
type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        UserProfile `json:"user"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest carries new account details
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Name        string `json:"name" binding:"required"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name"`
}

// AuthService provides token issuance and credential verification
type AuthService struct {
	userRepo        repository.UserRepositoryInterface
	secret          []byte
	expirationHours int
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo repository.UserRepositoryInterface, secret string, expirationHours int) *AuthService {
	if expirationHours <= 0 {
		expirationHours = 24
	}
	return &AuthService{
		userRepo:        userRepo,
		secret:          []byte(secret),
		expirationHours: expirationHours,
	}
}

// Login verifies credentials and issues a token
func (s *AuthService) Login(req LoginRequest) (*TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.tokenResponse(user)
}

// Register creates a new account and issues a token. Accounts default to
// the supplier role; an admin role must be requested explicitly.
func (s *AuthService) Register(req RegisterRequest) (*TokenResponse, error) {
	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	role := models.UserRoleSupplier
	if req.Role == string(models.UserRoleAdmin) {
		role = models.UserRoleAdmin
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         role,
		CompanyName:  req.CompanyName,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.tokenResponse(user)
}

// GetUser loads the account behind a validated token
func (s *AuthService) GetUser(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GenerateJWT creates a signed token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "parts-portal-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT parses and verifies a token, returning its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// HashPassword returns a bcrypt hash of the password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *AuthService) tokenResponse(user *models.User) (*TokenResponse, error) {
	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User: UserProfile{
			ID:          user.ID,
			Email:       user.Email,
			Name:        user.Name,
			Role:        user.Role,
			CompanyName: user.CompanyName,
		},
	}, nil
}
