package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/contact-service/internal/domain"
	apperrors "github.com/spec-kit/contact-service/pkg/util/errorutil"
)

const identityKey = "auth_identity"

type identityCtxKey struct{}

// AuthGate validates bearer tokens on protected routes.
type AuthGate struct {
	tokens *TokenManager
}

// NewAuthGate constructs middleware.
func NewAuthGate(tokens *TokenManager) *AuthGate {
	return &AuthGate{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (g *AuthGate) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthenticated("Access denied. No token provided.", "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return apperrors.NewUnauthenticated("Access denied. No token provided.", "invalid authorization header")
	}

	identity, err := g.tokens.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		return apperrors.NewUnauthenticated("Invalid or expired token", err.Error())
	}

	c.Locals(identityKey, identity)
	c.SetUserContext(WithIdentity(c.UserContext(), identity))
	return c.Next()
}

// IdentityFromCtx retrieves the authenticated identity stored by the gate.
func IdentityFromCtx(c *fiber.Ctx) (*domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*domain.Identity)
	return identity, ok
}

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity *domain.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

// IdentityFromContext returns the identity attached by WithIdentity, if any.
func IdentityFromContext(ctx context.Context) (*domain.Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(*domain.Identity)
	return identity, ok && identity != nil
}
