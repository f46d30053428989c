package errors

import (
	"errors"
	"fmt"
	"strings"
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

// ValidationError represents a validation failure with human-readable messages
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Messages, ", "))
}

// MalformedInputError represents input that could not be parsed as structured data
type MalformedInputError struct {
	Message string
}

func (e *MalformedInputError) Error() string {
	return e.Message
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

// Entity Not Found Errors
var (
	ErrPartNotFound       = &NotFoundError{Entity: "part"}
	ErrBuildNotFound      = &NotFoundError{Entity: "build"}
	ErrBuildItemNotFound  = &NotFoundError{Entity: "build item"}
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrSharedViewNotFound = &NotFoundError{Entity: "shared build"}
)

// Business Logic Errors
var (
	ErrInvalidPartKind      = errors.New("invalid part kind")
	ErrInvalidSortKey       = errors.New("invalid sort key")
	ErrInvalidPriceRange    = errors.New("invalid price range")
	ErrDuplicateSlot        = errors.New("build has more than one item for the same part kind")
	ErrInvalidComponentData = &MalformedInputError{Message: "invalid component data"}
)

// Authentication / Authorization Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrEmailTaken         = &ValidationError{Messages: []string{"email is already taken"}}
	ErrNotBuildOwner      = &AuthorizationError{Message: "you do not have permission to modify this build"}
	ErrLoginRequired      = &AuthenticationError{Message: "authentication required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsMalformedInput checks if an error is a MalformedInputError
func IsMalformedInput(err error) bool {
	var malformedErr *MalformedInputError
	return errors.As(err, &malformedErr)
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

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError from messages
func NewValidationError(messages ...string) error {
	return &ValidationError{Messages: messages}
}

// NewMalformedInputError creates a new MalformedInputError
func NewMalformedInputError(message string) error {
	return &MalformedInputError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
