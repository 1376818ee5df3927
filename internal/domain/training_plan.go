package domain

import "context"

// PlanExercise is an exercise of a predefined training plan day
type PlanExercise struct {
	Name string `bson:"name" json:"name"`
	Sets int    `bson:"sets" json:"sets"`
	Reps int    `bson:"reps" json:"reps"`
}

// TrainingPlanDay is one day of a predefined training plan
type TrainingPlanDay struct {
	ID        string         `bson:"id" json:"id"`
	Name      string         `bson:"name" json:"name"`
	Exercises []PlanExercise `bson:"exercises" json:"exercises"`
}

// TrainingPlan is a predefined plan offered to users by weekly availability.
// ID is the stable catalog key (e.g. "pushPullLegs").
type TrainingPlan struct {
	ID          string            `bson:"_id" json:"id"`
	Name        string            `bson:"name" json:"name"`
	Description string            `bson:"description" json:"description"`
	DaysPerWeek int               `bson:"days_per_week" json:"days_per_week"`
	Days        []TrainingPlanDay `bson:"days" json:"days"`
}

// Day returns the plan day with the given id
func (p *TrainingPlan) Day(dayID string) (*TrainingPlanDay, error) {
	for i := range p.Days {
		if p.Days[i].ID == dayID {
			return &p.Days[i], nil
		}
	}
	return nil, ErrTrainingPlanDayNotFound
}

// TrainingPlanRepository stores the predefined plan catalog
type TrainingPlanRepository interface {
	// SeedIfEmpty writes the catalog in one batch when the collection has no plans.
	// Returns the number of plans written.
	SeedIfEmpty(ctx context.Context, plans []TrainingPlan) (int, error)
	List(ctx context.Context) ([]*TrainingPlan, error)
	GetByID(ctx context.Context, id string) (*TrainingPlan, error)
}
