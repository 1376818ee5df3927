package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/fitpro/internal/domain"
	"github.com/mansoorceksport/fitpro/internal/middleware"
	"github.com/mansoorceksport/fitpro/internal/service"
)

// ProgressHandler serves session logging, history, stats and exports
type ProgressHandler struct {
	progressService *service.ProgressService
	exportService   *service.ExportService
}

func NewProgressHandler(progressService *service.ProgressService, exportService *service.ExportService) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
		exportService:   exportService,
	}
}

type logSessionRequest struct {
	Date       string               `json:"date"`
	PlanID     string               `json:"plan_id"`
	DayID      string               `json:"day_id"`
	BodyWeight float64              `json:"body_weight"`
	Exercises  []domain.ExerciseLog `json:"exercises"`
	Notes      string               `json:"notes"`
}

// LogSession handles POST /v1/me/progress
func (h *ProgressHandler) LogSession(c *fiber.Ctx) error {
	var req logSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	result, err := h.progressService.LogSession(c.UserContext(), middleware.GetUserID(c), &domain.ProgressEntry{
		Date:       req.Date,
		PlanID:     req.PlanID,
		DayID:      req.DayID,
		BodyWeight: req.BodyWeight,
		Exercises:  req.Exercises,
		Notes:      req.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// History handles GET /v1/me/progress?limit=n
func (h *ProgressHandler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must not be negative"})
	}

	views, err := h.progressService.History(c.UserContext(), middleware.GetUserID(c), int64(limit))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views)
}

// GetByDate handles GET /v1/me/progress/:date
func (h *ProgressHandler) GetByDate(c *fiber.Ctx) error {
	view, err := h.progressService.GetByDate(c.UserContext(), middleware.GetUserID(c), c.Params("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *ProgressHandler) Stats(c *fiber.Ctx) error {
	view, err := h.progressService.Stats(c.UserContext(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *ProgressHandler) Achievements(c *fiber.Ctx) error {
	achievements, err := h.progressService.Achievements(c.UserContext(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(achievements)
}

// Export handles POST /v1/me/progress/export
func (h *ProgressHandler) Export(c *fiber.Ctx) error {
	result, err := h.exportService.Export(c.UserContext(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}
