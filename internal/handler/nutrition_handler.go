package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/fitpro/internal/middleware"
	"github.com/mansoorceksport/fitpro/internal/planner"
	"github.com/mansoorceksport/fitpro/internal/service"
)

type NutritionHandler struct {
	nutritionService *service.NutritionService
}

func NewNutritionHandler(nutritionService *service.NutritionService) *NutritionHandler {
	return &NutritionHandler{nutritionService: nutritionService}
}

// ListFoods handles GET /v1/foods
func (h *NutritionHandler) ListFoods(c *fiber.Ctx) error {
	return c.JSON(planner.Catalog())
}

// GetPlan handles GET /v1/me/nutrition
func (h *NutritionHandler) GetPlan(c *fiber.Ctx) error {
	plan, err := h.nutritionService.GetPlan(c.UserContext(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plan)
}

// Regenerate handles POST /v1/me/nutrition/regenerate
func (h *NutritionHandler) Regenerate(c *fiber.Ctx) error {
	plan, err := h.nutritionService.Regenerate(c.UserContext(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plan)
}

type preferencesRequest struct {
	Foods []string `json:"foods"`
}

// SetPreferences handles PUT /v1/me/nutrition/preferences
func (h *NutritionHandler) SetPreferences(c *fiber.Ctx) error {
	var req preferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	plan, err := h.nutritionService.SetPreferences(c.UserContext(), middleware.GetUserID(c), req.Foods)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plan)
}

type toggleRequest struct {
	Food string `json:"food"`
}

// TogglePreference handles POST /v1/me/nutrition/preferences/toggle
func (h *NutritionHandler) TogglePreference(c *fiber.Ctx) error {
	var req toggleRequest
	if err := c.BodyParser(&req); err != nil || req.Food == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "food is required"})
	}

	plan, err := h.nutritionService.TogglePreference(c.UserContext(), middleware.GetUserID(c), req.Food)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plan)
}
