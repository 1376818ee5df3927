package service

import (
	"context"
	"fmt"
	"math"

	"github.com/mansoorceksport/fitpro/internal/domain"
	"github.com/mansoorceksport/fitpro/internal/planner"
	"github.com/mansoorceksport/fitpro/internal/repository"
	"github.com/sirupsen/logrus"
)

// ProfileService manages the onboarding profile
type ProfileService struct {
	userRepo domain.UserRepository
	cache    domain.CacheRepository
}

func NewProfileService(userRepo domain.UserRepository, cache domain.CacheRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo, cache: cache}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile validates and stores the profile. Cached plans derived from the old profile are dropped.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, profile domain.Profile) (*domain.User, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, profile); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, repository.NutritionPlanKey(userID), repository.DashboardKey(userID))

	return s.userRepo.GetByID(ctx, userID)
}

// ValidateProfile applies the planners' input rules to an onboarding payload
func ValidateProfile(p domain.Profile) error {
	if !p.Goal.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidGoal, p.Goal)
	}
	if !(p.WeightKg > 0) || !(p.HeightCm > 0) || math.IsInf(p.WeightKg, 0) || math.IsInf(p.HeightCm, 0) {
		return fmt.Errorf("%w: weight=%v height=%v", domain.ErrInvalidBiometric, p.WeightKg, p.HeightCm)
	}
	if !planner.SupportedAvailability(p.WeeklyAvailability) {
		return fmt.Errorf("%w: %d", domain.ErrUnsupportedAvailability, p.WeeklyAvailability)
	}
	return nil
}

// invalidate drops cache keys. Cache failures are logged and never fail the caller.
func invalidate(ctx context.Context, cache domain.CacheRepository, keys ...string) {
	if cache == nil {
		return
	}
	if err := cache.Delete(ctx, keys...); err != nil {
		logrus.WithError(err).WithField("keys", keys).Warn("cache invalidation failed")
	}
}
