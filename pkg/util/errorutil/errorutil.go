package errorutil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Error codes exposed to clients.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeDuplicateUsername  = "DUPLICATE_USERNAME"
	CodeNotFound           = "NOT_FOUND"
	CodeInternal           = "INTERNAL_ERROR"
)

// FieldError describes a single rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Errors     []FieldError
	Reason     string
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Reason)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches any DomainError carrying the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

// Sentinels usable with errors.Is.
var (
	ErrValidation         = NewDomainError(CodeValidation, "validation error", http.StatusBadRequest)
	ErrUnauthenticated    = NewDomainError(CodeUnauthenticated, "unauthenticated", http.StatusUnauthorized)
	ErrInvalidCredentials = NewDomainError(CodeInvalidCredentials, "invalid credentials", http.StatusUnauthorized)
	ErrDuplicateUsername  = NewDomainError(CodeDuplicateUsername, "duplicate username", http.StatusBadRequest)
	ErrNotFound           = NewDomainError(CodeNotFound, "not found", http.StatusNotFound)
	ErrInternal           = NewDomainError(CodeInternal, "internal server error", http.StatusInternalServerError)
)

func NewValidationError(message string, fields []FieldError) error {
	err := NewDomainError(CodeValidation, message, http.StatusBadRequest)
	err.Errors = fields
	return err
}

func NewUnauthenticated(message, reason string) error {
	err := NewDomainError(CodeUnauthenticated, message, http.StatusUnauthorized)
	err.Reason = reason
	return err
}

// NewInvalidCredentials never says which of username or password was wrong.
func NewInvalidCredentials() error {
	return NewDomainError(CodeInvalidCredentials, "Invalid username or password", http.StatusUnauthorized)
}

func NewDuplicateUsername() error {
	return NewDomainError(CodeDuplicateUsername, "Username already exists", http.StatusBadRequest)
}

func NewNotFound(resource string) error {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fromFiberError(fiberErr)
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func fromFiberError(err *fiber.Error) *DomainError {
	switch {
	case err.Code == http.StatusNotFound:
		return NewDomainError(CodeNotFound, err.Message, err.Code)
	case err.Code == http.StatusUnauthorized:
		return NewDomainError(CodeUnauthenticated, err.Message, err.Code)
	case err.Code >= 400 && err.Code < 500:
		return NewDomainError(CodeValidation, err.Message, err.Code)
	default:
		return &DomainError{
			Code:       CodeInternal,
			Message:    "Internal server error",
			HTTPStatus: http.StatusInternalServerError,
			Err:        err,
		}
	}
}
