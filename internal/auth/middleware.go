package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/barbershop-service/internal/domain"
	apperrors "github.com/spec-kit/barbershop-service/pkg/util"
)

const principalKey = "auth_principal"

// IdentityResolver verifies tokens and loads the credential record behind them.
type IdentityResolver interface {
	VerifyToken(token string) (string, error)
	CurrentUser(ctx context.Context, login string) (*domain.User, error)
}

// AuthMiddleware validates bearer tokens and loads the caller's credential record.
type AuthMiddleware struct {
	resolver IdentityResolver
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(resolver IdentityResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// Handle enforces authentication for protected routes. The user is looked up
// on every request so position changes and removed accounts take effect
// without waiting for the token to expire.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	login, err := m.resolver.VerifyToken(strings.TrimSpace(parts[1]))
	if err != nil {
		return err
	}

	user, err := m.resolver.CurrentUser(c.UserContext(), login)
	if err != nil {
		return err
	}

	c.Locals(principalKey, user)
	c.SetUserContext(WithLogin(c.UserContext(), user.Login))
	return c.Next()
}

// UserFromContext retrieves the authenticated user.
func UserFromContext(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}
