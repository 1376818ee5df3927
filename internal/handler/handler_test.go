package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/fitpro/internal/domain"
	"github.com/mansoorceksport/fitpro/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrInvalidGoal, fiber.StatusBadRequest},
		{fmt.Errorf("%w: 9", domain.ErrUnsupportedAvailability), fiber.StatusBadRequest},
		{fmt.Errorf("wrap: %w", domain.ErrInvalidSet), fiber.StatusBadRequest},
		{domain.ErrProfileIncomplete, fiber.StatusBadRequest},
		{domain.ErrUnauthorized, fiber.StatusUnauthorized},
		{domain.ErrNotFound, fiber.StatusNotFound},
		{fmt.Errorf("%w: fullBody", domain.ErrTrainingPlanNotFound), fiber.StatusNotFound},
		{domain.ErrTrainingPlanDayNotFound, fiber.StatusNotFound},
		{domain.ErrStatsConflict, fiber.StatusConflict},
		{domain.ErrExportUnavailable, fiber.StatusServiceUnavailable},
		{errors.New("mongo: connection reset"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestPublicCatalogRoutes(t *testing.T) {
	workouts := NewWorkoutHandler(service.NewWorkoutService(nil, nil, 3))
	nutrition := NewNutritionHandler(nil)

	app := fiber.New()
	app.Get("/v1/splits/:days", workouts.GetSplit)
	app.Get("/v1/foods", nutrition.ListFoods)

	t.Run("split for three days", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/v1/splits/3", nil), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var plan domain.WorkoutPlan
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&plan))
		require.Len(t, plan.Days, 3)
		assert.Equal(t, []string{"Push", "Pull", "Legs"}, []string{plan.Days[0].Name, plan.Days[1].Name, plan.Days[2].Name})
		for _, day := range plan.Days {
			assert.Len(t, day.Exercises, 5)
		}
	})

	for _, days := range []string{"1", "7", "three"} {
		t.Run("unsupported "+days, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/v1/splits/"+days, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Contains(t, body["error"], "unsupported weekly availability")
		})
	}

	t.Run("food catalog", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/v1/foods", nil), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var catalog map[string][]domain.Food
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&catalog))
		assert.Len(t, catalog, 3)
		assert.NotEmpty(t, catalog["protein"])
	})
}
