package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/fitpro/internal/domain"
	"github.com/sirupsen/logrus"
)

// StatusFor maps a domain error to its HTTP status
func StatusFor(err error) int {
	switch {
	case domain.IsValidationError(err):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrTrainingPlanNotFound),
		errors.Is(err, domain.ErrTrainingPlanDayNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrStatsConflict):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrExportUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	if status == fiber.StatusInternalServerError {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error("request failed")
		return c.Status(status).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
