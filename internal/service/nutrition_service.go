package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/mansoorceksport/fitpro/internal/domain"
	"github.com/mansoorceksport/fitpro/internal/planner"
	"github.com/mansoorceksport/fitpro/internal/repository"
	"github.com/mansoorceksport/fitpro/internal/telemetry"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// RandSource returns a fresh random source for one plan generation
type RandSource func() planner.Rand

// DefaultRandSource seeds a PCG generator from the runtime's random state
func DefaultRandSource() planner.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NutritionService builds nutrition plans from the stored profile and keeps the current one cached,
// so the random food choice is stable between reads
type NutritionService struct {
	userRepo domain.UserRepository
	cache    domain.CacheRepository
	metrics  *telemetry.Metrics
	ttl      time.Duration
	rand     RandSource
}

func NewNutritionService(
	userRepo domain.UserRepository,
	cache domain.CacheRepository,
	metrics *telemetry.Metrics,
	ttl time.Duration,
	source RandSource,
) *NutritionService {
	if source == nil {
		source = DefaultRandSource
	}
	return &NutritionService{
		userRepo: userRepo,
		cache:    cache,
		metrics:  metrics,
		ttl:      ttl,
		rand:     source,
	}
}

// GetPlan returns the cached plan, generating one on a miss
func (s *NutritionService) GetPlan(ctx context.Context, userID string) (*domain.NutritionPlan, error) {
	var cached domain.NutritionPlan
	err := s.cache.Get(ctx, repository.NutritionPlanKey(userID), &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.WithError(err).WithField("user_id", userID).Warn("nutrition plan cache read failed")
	}

	return s.Regenerate(ctx, userID)
}

// Regenerate draws a new food assignment and replaces the cached plan
func (s *NutritionService) Regenerate(ctx context.Context, userID string) (*domain.NutritionPlan, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.generate(ctx, user)
}

// SetPreferences replaces the preferred food set and regenerates the plan
func (s *NutritionService) SetPreferences(ctx context.Context, userID string, foods []string) (*domain.NutritionPlan, error) {
	if err := planner.ValidateFoodNames(foods); err != nil {
		return nil, err
	}
	foods = dedupe(foods)

	if err := s.userRepo.UpdatePreferredFoods(ctx, userID, foods); err != nil {
		return nil, err
	}
	return s.Regenerate(ctx, userID)
}

// TogglePreference adds the food to the preferred set, or removes it when already present
func (s *NutritionService) TogglePreference(ctx context.Context, userID, food string) (*domain.NutritionPlan, error) {
	if err := planner.ValidateFoodNames([]string{food}); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	foods := slices.Clone(user.PreferredFoods)
	if i := slices.Index(foods, food); i >= 0 {
		foods = slices.Delete(foods, i, i+1)
	} else {
		foods = append(foods, food)
	}

	if err := s.userRepo.UpdatePreferredFoods(ctx, userID, foods); err != nil {
		return nil, err
	}
	user.PreferredFoods = foods
	return s.generate(ctx, user)
}

func (s *NutritionService) generate(ctx context.Context, user *domain.User) (*domain.NutritionPlan, error) {
	if !user.Onboarded() {
		return nil, domain.ErrProfileIncomplete
	}

	_, span := telemetry.StartSpan(ctx, "planner.ComputeNutritionPlan",
		attribute.String("goal", string(user.Goal)),
		attribute.Int("preferred_foods", len(user.PreferredFoods)),
	)
	plan, err := planner.ComputeNutritionPlan(user.WeightKg, user.HeightCm, user.Goal, user.PreferredFoods, s.rand())
	if err != nil {
		span.RecordError(err)
		span.End()
		return nil, err
	}
	span.SetAttributes(attribute.Bool("macro_overflow", plan.MacroOverflow))
	span.End()

	plan.GeneratedAt = time.Now().UTC()
	if plan.MacroOverflow {
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,
			"weight_kg": user.WeightKg,
			"height_cm": user.HeightCm,
		}).Warn("macro targets overflow calories, carbs clamped to zero")
	}

	if err := s.cache.Set(ctx, repository.NutritionPlanKey(user.ID), plan, s.ttl); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Warn("nutrition plan cache write failed")
	}
	invalidate(ctx, s.cache, repository.DashboardKey(user.ID))
	s.metrics.RecordNutritionPlan(ctx, string(user.Goal))

	return plan, nil
}

func dedupe(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}
