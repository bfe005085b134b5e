package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/translate-service/internal/api/dto"
	"github.com/spec-kit/translate-service/internal/auth"
	"github.com/spec-kit/translate-service/internal/service"
	apperrors "github.com/spec-kit/translate-service/pkg/util"
)

// AuthHandler exposes the registration, login and session endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Firstname == "" || req.Lastname == "" || req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("firstname, lastname, username and password are required", nil)
	}

	user, err := h.auth.Register(c.Context(), req.Firstname, req.Lastname, req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(user.Public())
}

// Login handles POST /login. The signed token is delivered as an HTTP-only
// cookie; the body carries only the user summary.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password are required", nil)
	}

	result, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    "Bearer " + result.Token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   int(h.auth.TokenManager().TTL().Seconds()),
		Expires:  result.ExpiresAt,
	})

	return c.JSON(dto.LoginResponse{
		Message: "Login successful",
		User:    result.User,
	})
}

// Me handles GET /me for authenticated sessions.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}
	return c.JSON(user.Summary())
}
