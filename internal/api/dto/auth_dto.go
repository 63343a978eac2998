package dto

import (
	"time"

	"github.com/spec-kit/contact-service/internal/domain"
)

// LoginRequest payload for admin login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest payload for new admins.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AdminResponse is the sanitized account view; it never carries the password hash.
type AdminResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// LoginResponse is returned by POST /api/auth/login.
type LoginResponse struct {
	Admin     AdminResponse `json:"admin"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// NewAdminResponse builds the short account view.
func NewAdminResponse(account *domain.Account) AdminResponse {
	return AdminResponse{ID: account.ID, Username: account.Username, Name: account.DisplayName}
}

// NewProfileResponse includes the creation time.
func NewProfileResponse(account *domain.Account) AdminResponse {
	resp := NewAdminResponse(account)
	created := account.CreatedAt
	resp.CreatedAt = &created
	return resp
}
