package planner

import (
	"fmt"
	"math"
	"strings"

	"github.com/mansoorceksport/fitpro/internal/domain"
)

// Experience rewards
const (
	SessionExperience      = 100
	PersonalBestExperience = 50
)

// Lift is a tracked personal-best category
type Lift string

const (
	LiftBenchPress Lift = "bench_press"
	LiftSquat      Lift = "squat"
	LiftDeadlift   Lift = "deadlift"
)

// liftKeywords match the bundled Portuguese exercise names, in precedence order.
// A different exercise catalog needs its own keywords.
var liftKeywords = []struct {
	lift    Lift
	keyword string
}{
	{LiftBenchPress, "supino"},
	{LiftSquat, "agachamento"},
	{LiftDeadlift, "levantamento terra"},
}

// ClassifyLift returns the lift category of an exercise, matching keywords case-insensitively.
// The first matching keyword wins: supino, then agachamento, then levantamento terra.
func ClassifyLift(exerciseName string) (Lift, bool) {
	name := strings.ToLower(exerciseName)
	for _, k := range liftKeywords {
		if strings.Contains(name, k.keyword) {
			return k.lift, true
		}
	}
	return "", false
}

// BestSet returns the heaviest set. The search starts from a zero set and only a strictly
// heavier set replaces the current best, so ties keep the first occurrence and an empty
// or zero-weight list yields the zero set.
func BestSet(sets []domain.SetLog) domain.SetLog {
	best := domain.SetLog{}
	for _, s := range sets {
		if s.Weight > best.Weight {
			best = s
		}
	}
	return best
}

// ValidateSets rejects negative weight, reps or rir
func ValidateSets(exercises []domain.ExerciseLog) error {
	for _, e := range exercises {
		for i, s := range e.Sets {
			if s.Weight < 0 || s.Reps < 0 || s.RIR < 0 || math.IsNaN(s.Weight) || math.IsInf(s.Weight, 0) {
				return fmt.Errorf("%w: %s set %d", domain.ErrInvalidSet, e.Name, i+1)
			}
		}
	}
	return nil
}

// Level derives the level from total experience
func Level(experience int) int {
	if experience < 0 {
		experience = 0
	}
	return int(math.Floor(math.Sqrt(float64(experience)/100))) + 1
}

// ExperienceForLevel is the total experience at which level starts
func ExperienceForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return (level - 1) * (level - 1) * 100
}

// LevelProgress reports the experience window of the current level and how far into it the user is
func LevelProgress(stats domain.UserStats) domain.LevelProgress {
	level := Level(stats.Experience)
	current := ExperienceForLevel(level)
	next := ExperienceForLevel(level + 1)
	return domain.LevelProgress{
		Level:              level,
		Experience:         stats.Experience,
		CurrentLevelXP:     current,
		NextLevelXP:        next,
		ProgressPercentage: float64(stats.Experience-current) / float64(next-current) * 100,
	}
}

// SessionBests returns the heaviest best-set weight per lift category in the entry
func SessionBests(exercises []domain.ExerciseLog) domain.PersonalBests {
	var pb domain.PersonalBests
	for _, e := range exercises {
		best := BestSet(e.Sets)
		if best.Weight <= 0 {
			continue
		}
		lift, ok := ClassifyLift(e.Name)
		if !ok {
			continue
		}
		switch lift {
		case LiftBenchPress:
			pb.BenchPress = math.Max(pb.BenchPress, best.Weight)
		case LiftSquat:
			pb.Squat = math.Max(pb.Squat, best.Weight)
		case LiftDeadlift:
			pb.Deadlift = math.Max(pb.Deadlift, best.Weight)
		}
	}
	return pb
}

// ApplySessionLog scores one session against the prior stats.
// The prior value is not modified. Streak days are carried over unchanged.
func ApplySessionLog(prior domain.UserStats, entry domain.ProgressEntry) (domain.SessionOutcome, error) {
	if err := ValidateSets(entry.Exercises); err != nil {
		return domain.SessionOutcome{}, err
	}

	session := SessionBests(entry.Exercises)
	next := prior
	gain := SessionExperience
	var newPBs []string

	improve := func(lift Lift, prev, candidate float64) float64 {
		if candidate > prev {
			gain += PersonalBestExperience
			newPBs = append(newPBs, string(lift))
			return candidate
		}
		return prev
	}
	next.PersonalBests.BenchPress = improve(LiftBenchPress, prior.PersonalBests.BenchPress, session.BenchPress)
	next.PersonalBests.Squat = improve(LiftSquat, prior.PersonalBests.Squat, session.Squat)
	next.PersonalBests.Deadlift = improve(LiftDeadlift, prior.PersonalBests.Deadlift, session.Deadlift)

	next.Experience = prior.Experience + gain
	next.Level = Level(next.Experience)
	next.WorkoutsCompleted = prior.WorkoutsCompleted + 1

	return domain.SessionOutcome{
		Stats:          next,
		ExperienceGain: gain,
		NewPBs:         newPBs,
	}, nil
}
