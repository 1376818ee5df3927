package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/fitpro/internal/domain"
	"github.com/mansoorceksport/fitpro/internal/middleware"
	"github.com/mansoorceksport/fitpro/internal/service"
)

type WorkoutHandler struct {
	workoutService *service.WorkoutService
}

func NewWorkoutHandler(workoutService *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// GetSplit handles GET /v1/splits/:days
func (h *WorkoutHandler) GetSplit(c *fiber.Ctx) error {
	days, err := c.ParamsInt("days")
	if err != nil {
		return respondError(c, fmt.Errorf("%w: %q", domain.ErrUnsupportedAvailability, c.Params("days")))
	}

	plan, err := h.workoutService.Split(days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plan)
}

// --- Training plans ---

func (h *WorkoutHandler) ListTrainingPlans(c *fiber.Ctx) error {
	plans, err := h.workoutService.ListTrainingPlans(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plans)
}

func (h *WorkoutHandler) GetTrainingPlan(c *fiber.Ctx) error {
	plan, err := h.workoutService.GetTrainingPlan(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plan)
}

// --- Current user ---

func (h *WorkoutHandler) MyWorkoutPlan(c *fiber.Ctx) error {
	plan, err := h.workoutService.MyWorkoutPlan(c.UserContext(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plan)
}

func (h *WorkoutHandler) MyTrainingPlan(c *fiber.Ctx) error {
	plan, err := h.workoutService.MyTrainingPlan(c.UserContext(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plan)
}
