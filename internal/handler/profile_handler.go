package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/fitpro/internal/domain"
	"github.com/mansoorceksport/fitpro/internal/middleware"
	"github.com/mansoorceksport/fitpro/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile handles GET /v1/me/profile
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	user, err := h.profileService.GetProfile(c.UserContext(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateProfile handles PUT /v1/me/profile
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var req domain.Profile
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	user, err := h.profileService.UpdateProfile(c.UserContext(), middleware.GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}
