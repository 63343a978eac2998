package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/contact-service/internal/domain"
	apperrors "github.com/spec-kit/contact-service/pkg/util/errorutil"
)

func ptr(s string) *string { return &s }

func fieldErrors(t *testing.T, err error) []apperrors.FieldError {
	t.Helper()
	require.Error(t, err)
	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, apperrors.CodeValidation, de.Code)
	return de.Errors
}

func fieldNames(errs []apperrors.FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func validPatch() domain.ContactPatch {
	return domain.ContactPatch{
		Name:  ptr("Jane Doe"),
		Email: ptr("jane@x.com"),
		Phone: ptr("+1234567890"),
	}
}

func TestValidateCreate_Valid(t *testing.T) {
	v := NewContactValidator()
	require.NoError(t, v.ValidateCreate(validPatch()))

	withAddress := validPatch()
	withAddress.Address = ptr("Jl. Sudirman 1, Jakarta")
	withAddress.Phone = ptr("(021) 555-1234")
	require.NoError(t, v.ValidateCreate(withAddress))
}

func TestValidateCreate_MissingRequiredFields(t *testing.T) {
	v := NewContactValidator()

	cases := []struct {
		name  string
		patch domain.ContactPatch
		want  []string
	}{
		{"all missing", domain.ContactPatch{}, []string{"name", "email", "phone"}},
		{"name missing", domain.ContactPatch{Email: ptr("jane@x.com"), Phone: ptr("+1234567890")}, []string{"name"}},
		{"email missing", domain.ContactPatch{Name: ptr("Jane"), Phone: ptr("+1234567890")}, []string{"email"}},
		{"phone and name missing", domain.ContactPatch{Email: ptr("jane@x.com"), Address: ptr("Elm")}, []string{"name", "phone"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := fieldErrors(t, v.ValidateCreate(tc.patch))
			assert.Equal(t, tc.want, fieldNames(errs))
		})
	}
}

func TestValidateCreate_FieldRules(t *testing.T) {
	v := NewContactValidator()

	cases := []struct {
		name    string
		mutate  func(p *domain.ContactPatch)
		field   string
		message string
	}{
		{"short name", func(p *domain.ContactPatch) { p.Name = ptr("Jo") }, "name", "Name must be at least 3 characters"},
		{"empty name", func(p *domain.ContactPatch) { p.Name = ptr("") }, "name", "Name must be at least 3 characters"},
		{"long name", func(p *domain.ContactPatch) { p.Name = ptr(strings.Repeat("a", 101)) }, "name", "Name must not exceed 100 characters"},
		{"bad email", func(p *domain.ContactPatch) { p.Email = ptr("not-an-email") }, "email", "Invalid email format"},
		{"long email", func(p *domain.ContactPatch) { p.Email = ptr(strings.Repeat("a", 95) + "@x.com") }, "email", "Email must not exceed 100 characters"},
		{"short phone", func(p *domain.ContactPatch) { p.Phone = ptr("12345") }, "phone", "Phone number must be at least 10 characters"},
		{"long phone", func(p *domain.ContactPatch) { p.Phone = ptr(strings.Repeat("1", 21)) }, "phone", "Phone number must not exceed 20 characters"},
		{"letters in phone", func(p *domain.ContactPatch) { p.Phone = ptr("555-CALL-NOW") }, "phone", "Phone number can only contain numbers and symbols"},
		{"long address", func(p *domain.ContactPatch) { p.Address = ptr(strings.Repeat("x", 501)) }, "address", "Address must not exceed 500 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			patch := validPatch()
			tc.mutate(&patch)
			errs := fieldErrors(t, v.ValidateCreate(patch))
			require.Len(t, errs, 1)
			assert.Equal(t, tc.field, errs[0].Field)
			assert.Equal(t, tc.message, errs[0].Message)
		})
	}
}

func TestValidateCreate_ReportsEveryOffendingField(t *testing.T) {
	v := NewContactValidator()
	errs := fieldErrors(t, v.ValidateCreate(domain.ContactPatch{
		Name:    ptr("J"),
		Email:   ptr("bad"),
		Phone:   ptr("abc"),
		Address: ptr(strings.Repeat("x", 600)),
	}))
	assert.Equal(t, []string{"name", "email", "phone", "address"}, fieldNames(errs))
}

func TestValidateCreate_CountsRunes(t *testing.T) {
	v := NewContactValidator()
	patch := validPatch()
	patch.Name = ptr("Zoë")
	require.NoError(t, v.ValidateCreate(patch))
}

func TestValidateUpdate(t *testing.T) {
	v := NewContactValidator()

	require.NoError(t, v.ValidateUpdate(domain.ContactPatch{}))
	require.NoError(t, v.ValidateUpdate(domain.ContactPatch{Name: ptr("Bob")}))
	require.NoError(t, v.ValidateUpdate(domain.ContactPatch{Address: ptr("")}))

	errs := fieldErrors(t, v.ValidateUpdate(domain.ContactPatch{Name: ptr("Bo"), Phone: ptr("0812-3456-7890")}))
	assert.Equal(t, []string{"name"}, fieldNames(errs))

	errs = fieldErrors(t, v.ValidateUpdate(domain.ContactPatch{Email: ptr("")}))
	assert.Equal(t, []string{"email"}, fieldNames(errs))
}
