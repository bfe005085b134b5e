package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/translate-service/internal/domain"
	"github.com/spec-kit/translate-service/internal/repository"
	apperrors "github.com/spec-kit/translate-service/pkg/util"
)

// CookieName is the session cookie issued at login.
const CookieName = "access_token"

const principalKey = "auth_principal"

// SessionMiddleware validates bearer tokens from the access_token cookie or
// the Authorization header and loads the authenticated user.
type SessionMiddleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(tokens *TokenManager, users repository.UserRepository) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, users: users}
}

// Handle enforces authentication for protected routes.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	raw := bearerValue(c.Cookies(CookieName))
	if raw == "" {
		raw = bearerValue(c.Get("Authorization"))
	}
	if raw == "" {
		return apperrors.NewUnauthorized("missing access token")
	}

	claims, err := m.tokens.Parse(raw)
	if err != nil {
		return apperrors.NewUnauthorized("invalid or expired token")
	}

	user, err := m.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperrors.NewUnauthorized("user not found")
		}
		return apperrors.NewStoreUnavailable(err)
	}

	c.Locals(principalKey, user)
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

// bearerValue strips the Bearer prefix from a cookie or header value.
func bearerValue(raw string) string {
	if raw == "" {
		return ""
	}
	parts := strings.SplitN(raw, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return raw
}
