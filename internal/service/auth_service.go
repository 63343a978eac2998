package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/contact-service/internal/auth"
	"github.com/spec-kit/contact-service/internal/config"
	"github.com/spec-kit/contact-service/internal/domain"
	"github.com/spec-kit/contact-service/internal/repository"
	apperrors "github.com/spec-kit/contact-service/pkg/util/errorutil"
)

// LoginResult is what a successful login hands back.
type LoginResult struct {
	Account   *domain.Account
	Token     string
	ExpiresAt time.Time
}

// AuthService coordinates registration, login and profile lookups for admins.
type AuthService struct {
	accounts   repository.AccountRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, accounts repository.AccountRepository, opts ...auth.TokenOption) *AuthService {
	return &AuthService{
		accounts:   accounts,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL(), opts...),
		bcryptCost: cfg.BcryptCost,
	}
}

// Login authenticates an admin and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, apperrors.NewValidationError("Username and password are required", requiredFields(map[string]string{
			"username": username,
			"password": password,
		}, "username", "password"))
	}

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			auth.BurnCompare(password)
			return nil, apperrors.NewInvalidCredentials()
		}
		return nil, apperrors.NewInternalError(err)
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.Issue(account)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &LoginResult{Account: account, Token: token, ExpiresAt: exp}, nil
}

// Register creates a new admin account.
func (s *AuthService) Register(ctx context.Context, username, password, displayName string) (*domain.Account, error) {
	values := map[string]string{"username": username, "password": password, "name": displayName}
	if missing := requiredFields(values, "username", "password", "name"); len(missing) > 0 {
		return nil, apperrors.NewValidationError("All fields are required", missing)
	}
	if len(password) > auth.MaxPasswordBytes {
		return nil, passwordTooLong()
	}

	if _, err := s.accounts.GetByUsername(ctx, username); err == nil {
		return nil, apperrors.NewDuplicateUsername()
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewInternalError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, passwordTooLong()
		}
		return nil, apperrors.NewInternalError(err)
	}

	account := &domain.Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		DisplayName:  displayName,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, apperrors.NewDuplicateUsername()
		}
		return nil, apperrors.NewInternalError(err)
	}
	return account, nil
}

// Profile loads the account behind a verified identity.
func (s *AuthService) Profile(ctx context.Context, identity *domain.Identity) (*domain.Account, error) {
	if identity == nil {
		return nil, apperrors.NewUnauthenticated("Access denied. No token provided.", "missing identity")
	}
	account, err := s.accounts.GetByID(ctx, identity.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Admin")
		}
		return nil, apperrors.NewInternalError(err)
	}
	return account, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func passwordTooLong() error {
	return apperrors.NewValidationError("Validation error", []apperrors.FieldError{{
		Field:   "password",
		Message: fmt.Sprintf("Password must not exceed %d bytes", auth.MaxPasswordBytes),
	}})
}

func requiredFields(values map[string]string, order ...string) []apperrors.FieldError {
	var missing []apperrors.FieldError
	for _, field := range order {
		if strings.TrimSpace(values[field]) == "" {
			missing = append(missing, apperrors.FieldError{Field: field, Message: field + " is required"})
		}
	}
	return missing
}
