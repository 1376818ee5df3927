package domain

import (
	"context"
	"time"
)

// PersonalBests holds the best weight per tracked lift category
type PersonalBests struct {
	BenchPress float64 `bson:"bench_press" json:"bench_press"`
	Squat      float64 `bson:"squat" json:"squat"`
	Deadlift   float64 `bson:"deadlift" json:"deadlift"`
}

// UserStats is the cumulative summary of a user's training
type UserStats struct {
	UserID            string        `bson:"_id" json:"user_id"`
	Level             int           `bson:"level" json:"level"`
	Experience        int           `bson:"experience" json:"experience"`
	WorkoutsCompleted int           `bson:"workouts_completed" json:"workouts_completed"`
	StreakDays        int           `bson:"streak_days" json:"streak_days"`
	PersonalBests     PersonalBests `bson:"personal_bests" json:"personal_bests"`
	Version           int64         `bson:"version" json:"-"`
	UpdatedAt         time.Time     `bson:"updated_at" json:"updated_at"`
}

// NewUserStats returns the zero summary a fresh user starts from
func NewUserStats(userID string) UserStats {
	return UserStats{UserID: userID, Level: 1}
}

// SessionOutcome is the result of scoring one session against prior stats
type SessionOutcome struct {
	Stats          UserStats `json:"stats"`
	ExperienceGain int       `json:"experience_gain"`
	NewPBs         []string  `json:"new_pbs"`
}

// LevelProgress describes how far a user is toward the next level
type LevelProgress struct {
	Level              int     `json:"level"`
	Experience         int     `json:"experience"`
	CurrentLevelXP     int     `json:"current_level_xp"`
	NextLevelXP        int     `json:"next_level_xp"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// StatsRepository stores one summary per user
type StatsRepository interface {
	// Get returns the stored summary or ErrNotFound
	Get(ctx context.Context, userID string) (*UserStats, error)
	// CompareAndSwap stores next when the stored version still equals expectedVersion.
	// A missing document matches expectedVersion 0. Returns ErrStatsConflict on a lost race.
	CompareAndSwap(ctx context.Context, next *UserStats, expectedVersion int64) error
}
