package domain

import (
	"context"
	"time"
)

// Goal is the body-composition goal chosen during onboarding
type Goal string

const (
	GoalBulking Goal = "bulking"
	GoalCutting Goal = "cutting"
)

// Valid reports whether g is one of the supported goals
func (g Goal) Valid() bool {
	return g == GoalBulking || g == GoalCutting
}

// User is one signed-in person with their onboarding profile and food preferences
type User struct {
	ID                 string    `bson:"_id,omitempty" json:"id"`
	FirebaseUID        string    `bson:"firebase_uid" json:"firebase_uid"`
	Email              string    `bson:"email" json:"email"`
	Name               string    `bson:"name" json:"name"`
	Goal               Goal      `bson:"goal,omitempty" json:"goal,omitempty"`
	WeeklyAvailability int       `bson:"weekly_availability,omitempty" json:"weekly_availability,omitempty"`
	WeightKg           float64   `bson:"weight_kg,omitempty" json:"weight_kg,omitempty"`
	HeightCm           float64   `bson:"height_cm,omitempty" json:"height_cm,omitempty"`
	PreferredFoods     []string  `bson:"preferred_foods" json:"preferred_foods"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updated_at"`
}

// Onboarded reports whether the user has filled in the biometrics the planners need
func (u *User) Onboarded() bool {
	return u.Goal != "" && u.WeightKg > 0 && u.HeightCm > 0
}

// Profile is the onboarding payload
type Profile struct {
	Goal               Goal    `json:"goal"`
	WeeklyAvailability int     `json:"weekly_availability"`
	WeightKg           float64 `json:"weight_kg"`
	HeightCm           float64 `json:"height_cm"`
}

// UserRepository defines operations for managing users
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByFirebaseUID(ctx context.Context, uid string) (*User, error)
	// UpsertByFirebaseUID creates the user on first login and refreshes email and name afterwards.
	// It reports whether the user was created and fills in the stored fields.
	UpsertByFirebaseUID(ctx context.Context, user *User) (bool, error)
	UpdateProfile(ctx context.Context, userID string, profile Profile) error
	UpdatePreferredFoods(ctx context.Context, userID string, foods []string) error
}
