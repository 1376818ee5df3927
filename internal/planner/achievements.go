package planner

import "github.com/mansoorceksport/fitpro/internal/domain"

// Achievement targets
const (
	ConsistencyStreakTarget = 7
	BenchPressMasterTarget  = 100
	DedicatedAthleteTarget  = 50
)

// Achievements derives the milestone list from the current stats
func Achievements(stats domain.UserStats) []domain.Achievement {
	return []domain.Achievement{
		milestone("workout-streak", "Consistency King", "Train 7 days in a row",
			float64(stats.StreakDays), ConsistencyStreakTarget),
		milestone("bench-press", "Bench Press Master", "Bench press 100 kg",
			stats.PersonalBests.BenchPress, BenchPressMasterTarget),
		milestone("workouts-completed", "Dedicated Athlete", "Complete 50 workouts",
			float64(stats.WorkoutsCompleted), DedicatedAthleteTarget),
	}
}

func milestone(id, title, description string, progress, target float64) domain.Achievement {
	return domain.Achievement{
		ID:          id,
		Title:       title,
		Description: description,
		Progress:    progress,
		Target:      target,
		Completed:   progress >= target,
	}
}
