package service

import (
	"context"

	"github.com/mansoorceksport/fitpro/internal/domain"
	"github.com/mansoorceksport/fitpro/internal/planner"
	"github.com/sirupsen/logrus"
)

// WorkoutService resolves splits and predefined training plans for a user's weekly availability
type WorkoutService struct {
	userRepo            domain.UserRepository
	planRepo            domain.TrainingPlanRepository
	defaultAvailability int
}

func NewWorkoutService(userRepo domain.UserRepository, planRepo domain.TrainingPlanRepository, defaultAvailability int) *WorkoutService {
	return &WorkoutService{
		userRepo:            userRepo,
		planRepo:            planRepo,
		defaultAvailability: defaultAvailability,
	}
}

// Split returns the split for a number of training days
func (s *WorkoutService) Split(daysPerWeek int) (*domain.WorkoutPlan, error) {
	return planner.SelectSplit(daysPerWeek)
}

// MyWorkoutPlan returns the split for the user's stored availability
func (s *WorkoutService) MyWorkoutPlan(ctx context.Context, userID string) (*domain.WorkoutPlan, error) {
	days, err := s.availability(ctx, userID)
	if err != nil {
		return nil, err
	}
	return planner.SelectSplit(days)
}

// MyTrainingPlan returns the predefined plan mapped to the user's availability
func (s *WorkoutService) MyTrainingPlan(ctx context.Context, userID string) (*domain.TrainingPlan, error) {
	days, err := s.availability(ctx, userID)
	if err != nil {
		return nil, err
	}
	planID, err := planner.TrainingPlanIDFor(days)
	if err != nil {
		return nil, err
	}
	return s.planRepo.GetByID(ctx, planID)
}

func (s *WorkoutService) ListTrainingPlans(ctx context.Context) ([]*domain.TrainingPlan, error) {
	return s.planRepo.List(ctx)
}

func (s *WorkoutService) GetTrainingPlan(ctx context.Context, id string) (*domain.TrainingPlan, error) {
	return s.planRepo.GetByID(ctx, id)
}

// SeedTrainingPlans writes the predefined catalog when storage holds no plans yet
func (s *WorkoutService) SeedTrainingPlans(ctx context.Context) (int, error) {
	n, err := s.planRepo.SeedIfEmpty(ctx, planner.TrainingPlans())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logrus.WithField("plans", n).Info("seeded training plans")
	}
	return n, nil
}

func (s *WorkoutService) availability(ctx context.Context, userID string) (int, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user.WeeklyAvailability == 0 {
		return s.defaultAvailability, nil
	}
	return user.WeeklyAvailability, nil
}
