package service

import (
	"context"
	"math"
	"testing"

	"github.com/mansoorceksport/fitpro/internal/domain"
	"github.com/mansoorceksport/fitpro/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfile(t *testing.T) {
	valid := domain.Profile{Goal: domain.GoalCutting, WeeklyAvailability: 3, WeightKg: 80, HeightCm: 180}

	tests := []struct {
		name string
		mutate  func(p *domain.Profile)
		wantErr error
	}{
		{"valid", func(p *domain.Profile) {}, nil},
		{"unknown goal", func(p *domain.Profile) { p.Goal = "maintenance" }, domain.ErrInvalidGoal},
		{"zero weight", func(p *domain.Profile) { p.WeightKg = 0 }, domain.ErrInvalidBiometric},
		{"negative height", func(p *domain.Profile) { p.HeightCm = -170 }, domain.ErrInvalidBiometric},
		{"NaN weight", func(p *domain.Profile) { p.WeightKg = math.NaN() }, domain.ErrInvalidBiometric},
		{"one day", func(p *domain.Profile) { p.WeeklyAvailability = 1 }, domain.ErrUnsupportedAvailability},
		{"seven days", func(p *domain.Profile) { p.WeeklyAvailability = 7 }, domain.ErrUnsupportedAvailability},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := ValidateProfile(p)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, domain.IsValidationError(err))
		})
	}
}

func TestProfileService_UpdateProfile(t *testing.T) {
	users := newFakeUserRepo()
	cache := newFakeCache()
	svc := NewProfileService(users, cache)
	ctx := context.Background()

	userID := onboardedUser(users, domain.GoalBulking, 4)
	require.NoError(t, cache.Set(ctx, repository.NutritionPlanKey(userID), "stale", 0))
	require.NoError(t, cache.Set(ctx, repository.DashboardKey(userID), "stale", 0))

	updated, err := svc.UpdateProfile(ctx, userID, domain.Profile{
		Goal:               domain.GoalCutting,
		WeeklyAvailability: 5,
		WeightKg:           72.5,
		HeightCm:           168,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.GoalCutting, updated.Goal)
	assert.Equal(t, 5, updated.WeeklyAvailability)
	assert.Equal(t, 72.5, updated.WeightKg)
	assert.False(t, cache.has(repository.NutritionPlanKey(userID)))
	assert.False(t, cache.has(repository.DashboardKey(userID)))

	t.Run("invalid profile leaves stored state untouched", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, userID, domain.Profile{Goal: "recomp", WeeklyAvailability: 3, WeightKg: 80, HeightCm: 180})
		assert.ErrorIs(t, err, domain.ErrInvalidGoal)

		stored, err := users.GetByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, domain.GoalCutting, stored.Goal)
	})
}
