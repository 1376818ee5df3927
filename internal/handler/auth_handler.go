package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/fitpro/internal/middleware"
	"github.com/mansoorceksport/fitpro/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginOrRegister handles POST /v1/auth/login
func (h *AuthHandler) LoginOrRegister(c *fiber.Ctx) error {
	// Firebase ID token in the Authorization header
	token, err := middleware.BearerToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp, err := h.authService.LoginOrRegister(c.UserContext(), token)
	if err != nil {
		return respondError(c, err)
	}

	message := "Welcome back!"
	if resp.IsNewUser {
		message = "Welcome! Your account has been created."
	}

	return c.JSON(fiber.Map{
		"token":       resp.Token,
		"expires_at":  resp.ExpiresAt,
		"is_new_user": resp.IsNewUser,
		"onboarded":   resp.User.Onboarded(),
		"message":     message,
		"user":        resp.User,
	})
}
