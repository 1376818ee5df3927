package domain

import (
	"context"
	"time"
)

// DateLayout is the calendar-date format used as the key of a progress entry
const DateLayout = "2006-01-02"

// SetLog is one performed set
type SetLog struct {
	Weight float64 `bson:"weight" json:"weight"`
	Reps   int     `bson:"reps" json:"reps"`
	RIR    int     `bson:"rir" json:"rir"`
}

// ExerciseLog is an exercise performed in a session with its sets
type ExerciseLog struct {
	Name string   `bson:"name" json:"name"`
	Sets []SetLog `bson:"sets" json:"sets"`
}

// ProgressEntry is the log of one training session. There is at most one entry per user and date.
type ProgressEntry struct {
	ID         string        `bson:"_id,omitempty" json:"id,omitempty"`
	UserID     string        `bson:"user_id" json:"user_id"`
	Date       string        `bson:"date" json:"date"`
	PlanID     string        `bson:"plan_id,omitempty" json:"plan_id,omitempty"`
	DayID      string        `bson:"day_id,omitempty" json:"day_id,omitempty"`
	BodyWeight float64       `bson:"body_weight,omitempty" json:"body_weight,omitempty"`
	Exercises  []ExerciseLog `bson:"exercises" json:"exercises"`
	Notes      string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time     `bson:"updated_at" json:"updated_at"`
}

// ExerciseBest pairs a logged exercise with its best set
type ExerciseBest struct {
	Name    string `json:"name"`
	BestSet SetLog `json:"best_set"`
}

// ProgressView is a history item enriched with the best set of each exercise
type ProgressView struct {
	*ProgressEntry
	Bests []ExerciseBest `json:"bests"`
}

// ProgressRepository defines operations for session logs
type ProgressRepository interface {
	// Upsert writes the entry for (UserID, Date), replacing any earlier entry for that date
	Upsert(ctx context.Context, entry *ProgressEntry) error
	GetByDate(ctx context.Context, userID, date string) (*ProgressEntry, error)
	// ListByUser returns entries ordered by date descending. limit <= 0 means no limit.
	ListByUser(ctx context.Context, userID string, limit int64) ([]*ProgressEntry, error)
}
