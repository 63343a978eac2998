// Package validation checks contact payloads before they reach the store.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/contact-service/internal/domain"
	apperrors "github.com/spec-kit/contact-service/pkg/util/errorutil"
)

var phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)

type createContact struct {
	Name    *string `json:"name" validate:"required,min=3,max=100"`
	Email   *string `json:"email" validate:"required,max=100,email"`
	Phone   *string `json:"phone" validate:"required,min=10,max=20,phone"`
	Address *string `json:"address" validate:"omitnil,max=500"`
}

type updateContact struct {
	Name    *string `json:"name" validate:"omitnil,min=3,max=100"`
	Email   *string `json:"email" validate:"omitnil,max=100,email"`
	Phone   *string `json:"phone" validate:"omitnil,min=10,max=20,phone"`
	Address *string `json:"address" validate:"omitnil,max=500"`
}

var messages = map[string]map[string]string{
	"name": {
		"required": "Name is required",
		"min":      "Name must be at least 3 characters",
		"max":      "Name must not exceed 100 characters",
	},
	"email": {
		"required": "Email is required",
		"email":    "Invalid email format",
		"max":      "Email must not exceed 100 characters",
	},
	"phone": {
		"required": "Phone number is required",
		"min":      "Phone number must be at least 10 characters",
		"max":      "Phone number must not exceed 20 characters",
		"phone":    "Phone number can only contain numbers and symbols",
	},
	"address": {
		"max": "Address must not exceed 500 characters",
	},
}

// ContactValidator applies the contact field rules.
type ContactValidator struct {
	validate *validator.Validate
}

// NewContactValidator builds a validator with the phone rule registered.
func NewContactValidator() *ContactValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return &ContactValidator{validate: v}
}

// ValidateCreate requires name, email and phone.
func (cv *ContactValidator) ValidateCreate(patch domain.ContactPatch) error {
	return cv.check(createContact{
		Name:    patch.Name,
		Email:   patch.Email,
		Phone:   patch.Phone,
		Address: patch.Address,
	})
}

// ValidateUpdate checks only the fields present in patch.
func (cv *ContactValidator) ValidateUpdate(patch domain.ContactPatch) error {
	return cv.check(updateContact{
		Name:    patch.Name,
		Email:   patch.Email,
		Phone:   patch.Phone,
		Address: patch.Address,
	})
}

func (cv *ContactValidator) check(payload any) error {
	err := cv.validate.Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperrors.FieldError{
			Field:   fe.Field(),
			Message: message(fe.Field(), fe.Tag()),
		})
	}
	return apperrors.NewValidationError("Validation error", fields)
}

func message(field, tag string) string {
	if msg, ok := messages[field][tag]; ok {
		return msg
	}
	return field + " is invalid"
}
