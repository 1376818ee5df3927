package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mansoorceksport/fitpro/internal/domain"
	"github.com/mansoorceksport/fitpro/internal/planner"
	"github.com/mansoorceksport/fitpro/internal/repository"
	"github.com/mansoorceksport/fitpro/internal/telemetry"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const maxStatsAttempts = 3

// LogSessionResult is returned after a session was stored and scored
type LogSessionResult struct {
	Entry         *domain.ProgressEntry `json:"entry"`
	Outcome       domain.SessionOutcome `json:"outcome"`
	LevelProgress domain.LevelProgress  `json:"level_progress"`
}

// StatsView is the stats summary with its level progress
type StatsView struct {
	Stats         domain.UserStats     `json:"stats"`
	LevelProgress domain.LevelProgress `json:"level_progress"`
}

// ProgressService stores session logs and keeps the per-user stats summary in step with them
type ProgressService struct {
	progressRepo domain.ProgressRepository
	statsRepo    domain.StatsRepository
	planRepo     domain.TrainingPlanRepository
	cache        domain.CacheRepository
	metrics      *telemetry.Metrics
}

func NewProgressService(
	progressRepo domain.ProgressRepository,
	statsRepo domain.StatsRepository,
	planRepo domain.TrainingPlanRepository,
	cache domain.CacheRepository,
	metrics *telemetry.Metrics,
) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		statsRepo:    statsRepo,
		planRepo:     planRepo,
		cache:        cache,
		metrics:      metrics,
	}
}

// LogSession validates the entry, applies it to the user's stats and stores it for its date.
// Only the first submission for a date is scored; later ones replace the stored entry and leave
// the stats as they are. Nothing is written when validation or scoring fails.
func (s *ProgressService) LogSession(ctx context.Context, userID string, entry *domain.ProgressEntry) (*LogSessionResult, error) {
	if err := s.validateEntry(ctx, entry); err != nil {
		return nil, err
	}
	entry.UserID = userID

	_, err := s.progressRepo.GetByDate(ctx, userID, entry.Date)
	scored := errors.Is(err, domain.ErrNotFound)
	if err != nil && !scored {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	var outcome domain.SessionOutcome
	if scored {
		outcome, err = s.applyToStats(ctx, userID, entry)
	} else {
		outcome.Stats, err = s.loadStats(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	if err := s.progressRepo.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}

	invalidate(ctx, s.cache, repository.DashboardKey(userID))
	if scored {
		s.metrics.RecordSession(ctx, outcome.ExperienceGain, outcome.NewPBs)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"date":       entry.Date,
		"experience": outcome.ExperienceGain,
		"new_pbs":    outcome.NewPBs,
		"level":      outcome.Stats.Level,
		"scored":     scored,
	}).Info("session logged")

	return &LogSessionResult{
		Entry:         entry,
		Outcome:       outcome,
		LevelProgress: planner.LevelProgress(outcome.Stats),
	}, nil
}

func (s *ProgressService) validateEntry(ctx context.Context, entry *domain.ProgressEntry) error {
	if _, err := time.Parse(domain.DateLayout, entry.Date); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDate, entry.Date)
	}
	if entry.BodyWeight < 0 || math.IsNaN(entry.BodyWeight) || math.IsInf(entry.BodyWeight, 0) {
		return fmt.Errorf("%w: body weight %v", domain.ErrInvalidBiometric, entry.BodyWeight)
	}
	if err := planner.ValidateSets(entry.Exercises); err != nil {
		return err
	}

	plan, err := s.planRepo.GetByID(ctx, entry.PlanID)
	if err != nil {
		return err
	}
	_, err = plan.Day(entry.DayID)
	return err
}

// applyToStats runs the read-score-swap cycle, retrying when another writer got there first
func (s *ProgressService) applyToStats(ctx context.Context, userID string, entry *domain.ProgressEntry) (domain.SessionOutcome, error) {
	ctx, span := telemetry.StartSpan(ctx, "planner.ApplySessionLog", attribute.String("user_id", userID))
	defer span.End()

	for attempt := 1; attempt <= maxStatsAttempts; attempt++ {
		prior, err := s.loadStats(ctx, userID)
		if err != nil {
			span.RecordError(err)
			return domain.SessionOutcome{}, err
		}

		outcome, err := planner.ApplySessionLog(prior, *entry)
		if err != nil {
			return domain.SessionOutcome{}, err
		}
		outcome.Stats.UserID = userID
		outcome.Stats.UpdatedAt = time.Now().UTC()

		err = s.statsRepo.CompareAndSwap(ctx, &outcome.Stats, prior.Version)
		if err == nil {
			span.SetAttributes(attribute.Int("attempts", attempt), attribute.Int("experience_gain", outcome.ExperienceGain))
			return outcome, nil
		}
		if !errors.Is(err, domain.ErrStatsConflict) {
			span.RecordError(err)
			return domain.SessionOutcome{}, fmt.Errorf("failed to update stats: %w", err)
		}
		logrus.WithFields(logrus.Fields{"user_id": userID, "attempt": attempt}).Debug("stats update conflict, retrying")
	}

	span.RecordError(domain.ErrStatsConflict)
	return domain.SessionOutcome{}, domain.ErrStatsConflict
}

// loadStats returns the stored stats, or the starting summary for a user without any
func (s *ProgressService) loadStats(ctx context.Context, userID string) (domain.UserStats, error) {
	stats, err := s.statsRepo.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewUserStats(userID), nil
	}
	if err != nil {
		return domain.UserStats{}, err
	}
	return *stats, nil
}

// History lists sessions newest first, each with the best set per exercise
func (s *ProgressService) History(ctx context.Context, userID string, limit int64) ([]*domain.ProgressView, error) {
	entries, err := s.progressRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	views := make([]*domain.ProgressView, 0, len(entries))
	for _, e := range entries {
		views = append(views, progressView(e))
	}
	return views, nil
}

func (s *ProgressService) GetByDate(ctx context.Context, userID, date string) (*domain.ProgressView, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDate, date)
	}
	entry, err := s.progressRepo.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	return progressView(entry), nil
}

func (s *ProgressService) Stats(ctx context.Context, userID string) (*StatsView, error) {
	stats, err := s.loadStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.Level = planner.Level(stats.Experience)
	return &StatsView{Stats: stats, LevelProgress: planner.LevelProgress(stats)}, nil
}

func (s *ProgressService) Achievements(ctx context.Context, userID string) ([]domain.Achievement, error) {
	stats, err := s.loadStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	return planner.Achievements(stats), nil
}

func progressView(e *domain.ProgressEntry) *domain.ProgressView {
	bests := make([]domain.ExerciseBest, 0, len(e.Exercises))
	for _, ex := range e.Exercises {
		if len(ex.Sets) == 0 {
			continue
		}
		bests = append(bests, domain.ExerciseBest{Name: ex.Name, BestSet: planner.BestSet(ex.Sets)})
	}
	return &domain.ProgressView{ProgressEntry: e, Bests: bests}
}
