package planner

import (
	"fmt"

	"github.com/mansoorceksport/fitpro/internal/domain"
)

const (
	dayPush      = "Push"
	dayPull      = "Pull"
	dayLegs      = "Legs"
	dayUpperBody = "Upper Body"
	dayLowerBody = "Lower Body"
)

// exerciseTable holds the prescriptions of each split day. Days repeated across
// availabilities share one definition.
var exerciseTable = map[string][]domain.ExercisePrescription{
	dayPush: {
		{Name: "Bench Press", Sets: 4, RepRange: "6-8", RIR: 1, Notes: "Control the eccentric phase"},
		{Name: "Overhead Press", Sets: 3, RepRange: "8-10", RIR: 2},
		{Name: "Incline Dumbbell Press", Sets: 3, RepRange: "8-10", RIR: 1},
		{Name: "Lateral Raises", Sets: 3, RepRange: "10-12", RIR: 1},
		{Name: "Tricep Pushdowns", Sets: 3, RepRange: "8-10", RIR: 1},
	},
	dayPull: {
		{Name: "Barbell Rows", Sets: 4, RepRange: "6-8", RIR: 1, Notes: "Focus on scapular retraction"},
		{Name: "Pull-ups/Lat Pulldowns", Sets: 3, RepRange: "8-10", RIR: 2},
		{Name: "Face Pulls", Sets: 3, RepRange: "10-12", RIR: 1},
		{Name: "Bicep Curls", Sets: 3, RepRange: "8-10", RIR: 1},
		{Name: "Hammer Curls", Sets: 2, RepRange: "8-10", RIR: 1},
	},
	dayLegs: {
		{Name: "Squats", Sets: 4, RepRange: "6-8", RIR: 1, Notes: "Break parallel for full ROM"},
		{Name: "Romanian Deadlifts", Sets: 3, RepRange: "8-10", RIR: 2},
		{Name: "Leg Press", Sets: 3, RepRange: "8-10", RIR: 1},
		{Name: "Leg Extensions", Sets: 3, RepRange: "10-12", RIR: 1},
		{Name: "Standing Calf Raises", Sets: 4, RepRange: "8-10", RIR: 1},
	},
	dayUpperBody: {
		{Name: "Bench Press", Sets: 4, RepRange: "6-8", RIR: 1},
		{Name: "Barbell Rows", Sets: 4, RepRange: "6-8", RIR: 1},
		{Name: "Overhead Press", Sets: 3, RepRange: "8-10", RIR: 2},
		{Name: "Pull-ups/Lat Pulldowns", Sets: 3, RepRange: "8-10", RIR: 2},
		{Name: "Lateral Raises", Sets: 3, RepRange: "10-12", RIR: 1},
		{Name: "Face Pulls", Sets: 3, RepRange: "10-12", RIR: 1},
	},
	dayLowerBody: {
		{Name: "Squats", Sets: 4, RepRange: "6-8", RIR: 1},
		{Name: "Romanian Deadlifts", Sets: 3, RepRange: "8-10", RIR: 2},
		{Name: "Leg Press", Sets: 3, RepRange: "8-10", RIR: 1},
		{Name: "Leg Extensions", Sets: 3, RepRange: "10-12", RIR: 1},
		{Name: "Leg Curls", Sets: 3, RepRange: "10-12", RIR: 1},
		{Name: "Standing Calf Raises", Sets: 4, RepRange: "8-10", RIR: 1},
	},
}

var splits = map[int][]string{
	2: {dayUpperBody, dayLowerBody},
	3: {dayPush, dayPull, dayLegs},
	4: {dayUpperBody, dayLowerBody, dayUpperBody, dayLowerBody},
	5: {dayPush, dayPull, dayLegs, dayUpperBody, dayLowerBody},
	6: {dayPush, dayPull, dayLegs, dayPush, dayPull, dayLegs},
}

// SupportedAvailability reports whether daysPerWeek has a split
func SupportedAvailability(daysPerWeek int) bool {
	_, ok := splits[daysPerWeek]
	return ok
}

// SelectSplit returns the weekly split for the given number of training days.
// Every call returns a new plan; mutating it does not affect later calls.
func SelectSplit(daysPerWeek int) (*domain.WorkoutPlan, error) {
	names, ok := splits[daysPerWeek]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnsupportedAvailability, daysPerWeek)
	}

	plan := &domain.WorkoutPlan{
		DaysPerWeek: daysPerWeek,
		Days:        make([]domain.WorkoutDay, 0, len(names)),
	}
	for _, name := range names {
		plan.Days = append(plan.Days, domain.WorkoutDay{
			Name:      name,
			Exercises: append([]domain.ExercisePrescription(nil), exerciseTable[name]...),
		})
	}
	return plan, nil
}
