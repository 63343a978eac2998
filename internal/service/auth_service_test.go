package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/contact-service/internal/config"
	"github.com/spec-kit/contact-service/internal/domain"
	"github.com/spec-kit/contact-service/internal/repository"
	"github.com/spec-kit/contact-service/internal/repository/memory"
	apperrors "github.com/spec-kit/contact-service/pkg/util/errorutil"
)

var testAuthConfig = config.AuthConfig{
	JWTSecret:             "test-secret",
	AccessTokenTTLMinutes: 60,
	BcryptCost:            bcrypt.MinCost,
}

type failingAccounts struct {
	repository.AccountRepository
	err error
}

func (f failingAccounts) GetByUsername(context.Context, string) (*domain.Account, error) {
	return nil, f.err
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	accounts := memory.NewAccountRepository()
	svc := NewAuthService(testAuthConfig, accounts)

	account, err := svc.Register(ctx, "admin2", "pw12345", "Admin Two")
	require.NoError(t, err)
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "admin2", account.Username)
	assert.Equal(t, "Admin Two", account.DisplayName)
	assert.NotEqual(t, "pw12345", account.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("pw12345")))

	result, err := svc.Login(ctx, "admin2", "pw12345")
	require.NoError(t, err)
	assert.Equal(t, account.ID, result.Account.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), result.ExpiresAt, 5*time.Second)

	identity, err := svc.TokenManager().Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, identity.AccountID)
	assert.Equal(t, "admin2", identity.Username)
	assert.Equal(t, "Admin Two", identity.DisplayName)
}

func TestAuthService_LoginFailuresLookAlike(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(testAuthConfig, memory.NewAccountRepository())
	_, err := svc.Register(ctx, "admin", "secret1", "Admin")
	require.NoError(t, err)

	_, unknownErr := svc.Login(ctx, "nobody", "secret1")
	_, wrongErr := svc.Login(ctx, "admin", "nope")

	for _, err := range []error{unknownErr, wrongErr} {
		var de *apperrors.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, apperrors.CodeInvalidCredentials, de.Code)
		assert.Equal(t, "Invalid username or password", de.Message)
	}
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_LoginRequiresFields(t *testing.T) {
	svc := NewAuthService(testAuthConfig, memory.NewAccountRepository())

	_, err := svc.Login(context.Background(), "", "")
	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, apperrors.CodeValidation, de.Code)
	assert.Len(t, de.Errors, 2)
}

func TestAuthService_LoginStoreFailure(t *testing.T) {
	svc := NewAuthService(testAuthConfig, failingAccounts{err: errors.New("db down")})

	_, err := svc.Login(context.Background(), "admin", "pw")
	assert.ErrorIs(t, err, apperrors.ErrInternal)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(testAuthConfig, memory.NewAccountRepository())

	_, err := svc.Register(ctx, "", "pw", "")
	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, apperrors.CodeValidation, de.Code)
	require.Len(t, de.Errors, 2)
	assert.Equal(t, "username", de.Errors[0].Field)
	assert.Equal(t, "name", de.Errors[1].Field)

	_, err = svc.Register(ctx, "admin", "pw12345", "Admin")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "admin", "other", "Other")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUsername)
}

func TestAuthService_RegisterRejectsOverlongPassword(t *testing.T) {
	ctx := context.Background()
	accounts := memory.NewAccountRepository()
	svc := NewAuthService(testAuthConfig, accounts)

	_, err := svc.Register(ctx, "admin2", strings.Repeat("p", 80), "Admin Two")
	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, apperrors.CodeValidation, de.Code)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	require.Len(t, de.Errors, 1)
	assert.Equal(t, "password", de.Errors[0].Field)

	_, err = accounts.GetByUsername(ctx, "admin2")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Register(ctx, "admin2", strings.Repeat("p", 72), "Admin Two")
	require.NoError(t, err)
}

func TestAuthService_Profile(t *testing.T) {
	ctx := context.Background()
	accounts := memory.NewAccountRepository()
	svc := NewAuthService(testAuthConfig, accounts)

	account, err := svc.Register(ctx, "admin", "pw12345", "Admin")
	require.NoError(t, err)

	profile, err := svc.Profile(ctx, &domain.Identity{AccountID: account.ID})
	require.NoError(t, err)
	assert.Equal(t, "admin", profile.Username)

	accounts.Remove(account.ID)
	_, err = svc.Profile(ctx, &domain.Identity{AccountID: account.ID})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.Profile(ctx, nil)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}
