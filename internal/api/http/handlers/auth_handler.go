package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/contact-service/internal/api/dto"
	"github.com/spec-kit/contact-service/internal/auth"
	"github.com/spec-kit/contact-service/internal/service"
	apperrors "github.com/spec-kit/contact-service/pkg/util/errorutil"
)

// AuthHandler exposes admin auth endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	result, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return ok(c, http.StatusOK, "Login successful", dto.LoginResponse{
		Admin:     dto.NewAdminResponse(result.Account),
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	account, err := h.auth.Register(c.UserContext(), req.Username, req.Password, req.Name)
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, "Admin registered successfully", dto.NewAdminResponse(account))
}

// Profile handles GET /api/auth/profile.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	identity, found := auth.IdentityFromCtx(c)
	if !found {
		return apperrors.NewUnauthenticated("Access denied. No token provided.", "missing identity")
	}

	account, err := h.auth.Profile(c.UserContext(), identity)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "", dto.NewProfileResponse(account))
}
