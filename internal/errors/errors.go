package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// StorageError represents object storage failures. The message is logged
// server-side; callers surface it as a generic failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrUserNotFound      = &NotFoundError{Entity: "user"}
	ErrSupplierNotFound  = &NotFoundError{Entity: "supplier"}
	ErrPartNotFound      = &NotFoundError{Entity: "part"}
	ErrChildPartNotFound = &NotFoundError{Entity: "child part"}
	ErrDocumentNotFound  = &NotFoundError{Entity: "document"}
	ErrFileNotFound      = &NotFoundError{Entity: "stored file"}
)

// Already Exists Errors
var (
	ErrEmailExists      = &AlreadyExistsError{Entity: "account", Context: "with this email"}
	ErrSKUExists        = &AlreadyExistsError{Entity: "part", Context: "with this SKU for this supplier"}
	ErrIdentifierExists = &AlreadyExistsError{Entity: "child part", Context: "with this identifier in the parent"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid credentials"}
	ErrAccountDisabled    = &AuthenticationError{Message: "account is disabled"}
	ErrTokenExpired       = &AuthenticationError{Message: "token expired"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid token"}
)

// Authorization Errors
var (
	ErrAdminRequired    = &AuthorizationError{Message: "admin access required"}
	ErrSupplierRequired = &AuthorizationError{Message: "supplier account required for this operation"}
)

// Import Validation Errors. Typed as ValidationError so handlers map them
// to 400 like any other bad input.
var (
	ErrMissingParentSKUColumn = &ValidationError{Message: "missing 'parent_sku' column"}
	ErrNotAnExcelFile         = &ValidationError{Message: "please upload an Excel file"}
	ErrSupplierIDRequired     = &ValidationError{Message: "supplier_id is required for admin imports"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewStorageError wraps an object storage failure
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
