package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/barbershop-service/internal/api/dto"
	"github.com/spec-kit/barbershop-service/internal/auth"
	"github.com/spec-kit/barbershop-service/internal/domain"
	"github.com/spec-kit/barbershop-service/internal/service"
	apperrors "github.com/spec-kit/barbershop-service/pkg/util"
)

// AuthHandler exposes login, registration and token endpoints.
type AuthHandler struct {
	auth      *service.AuthService
	validator *Validator
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, validator *Validator) *AuthHandler {
	return &AuthHandler{auth: authService, validator: validator}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := h.validator.Bind(c, &req); err != nil {
		return err
	}

	_, token, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TokenResponse{
		AccessToken: token.Token,
		TokenType:   "bearer",
		ExpiresAt:   token.ExpiresAt,
	}})
}

// VerifyToken handles GET /auth/verify-token/:token.
func (h *AuthHandler) VerifyToken(c *fiber.Ctx) error {
	login, err := h.auth.VerifyToken(c.Params("token"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.VerifyTokenResponse{Message: "token is valid", Login: login}})
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := h.validator.Bind(c, &req); err != nil {
		return err
	}

	user, err := h.auth.Register(c.UserContext(), req.Login, req.Password, req.Position)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": userResponse(user)})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthenticated")
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

func userResponse(u *domain.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Login: u.Login, Position: u.Position, CreatedAt: u.CreatedAt}
}
