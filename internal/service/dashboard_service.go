package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mansoorceksport/fitpro/internal/domain"
	"github.com/mansoorceksport/fitpro/internal/planner"
	"github.com/mansoorceksport/fitpro/internal/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const recentSessionsLimit = 5

// DashboardService aggregates the home screen for one user
type DashboardService struct {
	userRepo        domain.UserRepository
	progressService *ProgressService
	workoutService  *WorkoutService
	cache           domain.CacheRepository
	ttl             time.Duration
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(
	userRepo domain.UserRepository,
	progressService *ProgressService,
	workoutService *WorkoutService,
	cache domain.CacheRepository,
	ttl time.Duration,
) *DashboardService {
	return &DashboardService{
		userRepo:        userRepo,
		progressService: progressService,
		workoutService:  workoutService,
		cache:           cache,
		ttl:             ttl,
	}
}

// GetDashboard returns the cached dashboard or builds it
func (s *DashboardService) GetDashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	key := repository.DashboardKey(userID)

	var cached domain.Dashboard
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.WithError(err).WithField("user_id", userID).Warn("dashboard cache read failed")
	}

	dashboard, err := s.build(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, dashboard, s.ttl); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("dashboard cache write failed")
	}
	return dashboard, nil
}

func (s *DashboardService) build(ctx context.Context, userID string) (*domain.Dashboard, error) {
	dashboard := &domain.Dashboard{}

	// Use errgroup for concurrent fetching
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		user, err := s.userRepo.GetByID(gCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to get profile: %w", err)
		}
		dashboard.Profile = user
		return nil
	})

	g.Go(func() error {
		view, err := s.progressService.Stats(gCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}
		dashboard.Stats = view.Stats
		dashboard.LevelProgress = view.LevelProgress
		dashboard.Achievements = planner.Achievements(view.Stats)
		return nil
	})

	g.Go(func() error {
		recent, err := s.progressService.History(gCtx, userID, recentSessionsLimit)
		if err != nil {
			return fmt.Errorf("failed to get recent sessions: %w", err)
		}
		dashboard.RecentSessions = recent
		return nil
	})

	g.Go(func() error {
		plan, err := s.workoutService.MyTrainingPlan(gCtx, userID)
		switch {
		case err == nil:
			dashboard.TrainingPlan = plan
		case errors.Is(err, domain.ErrTrainingPlanNotFound), errors.Is(err, domain.ErrUnsupportedAvailability):
			// Shown without a plan
		default:
			return fmt.Errorf("failed to get training plan: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dashboard, nil
}
