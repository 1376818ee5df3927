package planner

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/mansoorceksport/fitpro/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(exercises ...domain.ExerciseLog) domain.ProgressEntry {
	return domain.ProgressEntry{UserID: "u1", Date: "2024-05-01", Exercises: exercises}
}

func exercise(name string, weights ...float64) domain.ExerciseLog {
	e := domain.ExerciseLog{Name: name}
	for _, w := range weights {
		e.Sets = append(e.Sets, domain.SetLog{Weight: w, Reps: 8, RIR: 1})
	}
	return e
}

func TestApplySessionLog_BenchPressPB(t *testing.T) {
	prior := domain.UserStats{
		UserID:            "u1",
		Level:             3,
		Experience:        450,
		WorkoutsCompleted: 4,
		StreakDays:        3,
		PersonalBests:     domain.PersonalBests{BenchPress: 90, Squat: 120, Deadlift: 140},
	}

	out, err := ApplySessionLog(prior, session(exercise("Supino Reto", 80, 95, 92)))
	require.NoError(t, err)

	assert.Equal(t, 150, out.ExperienceGain)
	assert.Equal(t, []string{"bench_press"}, out.NewPBs)
	assert.Equal(t, 95.0, out.Stats.PersonalBests.BenchPress)
	assert.Equal(t, 120.0, out.Stats.PersonalBests.Squat)
	assert.Equal(t, 140.0, out.Stats.PersonalBests.Deadlift)
	assert.Equal(t, 600, out.Stats.Experience)
	assert.Equal(t, 3, out.Stats.Level)
	assert.Equal(t, 5, out.Stats.WorkoutsCompleted)
	assert.Equal(t, 3, out.Stats.StreakDays)

	// prior is a value and stays as it was
	assert.Equal(t, 90.0, prior.PersonalBests.BenchPress)
}

func TestApplySessionLog_Rewards(t *testing.T) {
	tests := []struct {
		name     string
		prior    domain.PersonalBests
		entry    domain.ProgressEntry
		gain     int
		expected domain.PersonalBests
	}{
		{
			name:     "empty session earns the base reward",
			entry:    session(),
			gain:     100,
			expected: domain.PersonalBests{},
		},
		{
			name:     "matching a PB is not an improvement",
			prior:    domain.PersonalBests{Squat: 100},
			entry:    session(exercise("Agachamento Livre", 100)),
			gain:     100,
			expected: domain.PersonalBests{Squat: 100},
		},
		{
			name:     "lower lift keeps the PB",
			prior:    domain.PersonalBests{Deadlift: 180},
			entry:    session(exercise("Levantamento Terra", 150)),
			gain:     100,
			expected: domain.PersonalBests{Deadlift: 180},
		},
		{
			name:  "three categories improved",
			prior: domain.PersonalBests{BenchPress: 60, Squat: 80, Deadlift: 100},
			entry: session(
				exercise("Supino com Barra", 65),
				exercise("Agachamento com Barra", 85),
				exercise("Levantamento Terra Romeno", 105),
			),
			gain:     250,
			expected: domain.PersonalBests{BenchPress: 65, Squat: 85, Deadlift: 105},
		},
		{
			name:  "two bench variations count once",
			prior: domain.PersonalBests{BenchPress: 60},
			entry: session(
				exercise("Supino Reto", 70),
				exercise("Supino Inclinado", 75),
			),
			gain:     150,
			expected: domain.PersonalBests{BenchPress: 75},
		},
		{
			name:     "unclassified exercise contributes nothing",
			entry:    session(exercise("Leg Press", 300)),
			gain:     100,
			expected: domain.PersonalBests{},
		},
		{
			name:     "zero weight sets contribute nothing",
			entry:    session(exercise("Supino Reto", 0, 0)),
			gain:     100,
			expected: domain.PersonalBests{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ApplySessionLog(domain.UserStats{PersonalBests: tt.prior}, tt.entry)
			require.NoError(t, err)
			assert.Equal(t, tt.gain, out.ExperienceGain)
			assert.Equal(t, tt.expected, out.Stats.PersonalBests)
			assert.Equal(t, 1, out.Stats.WorkoutsCompleted)
		})
	}
}

func TestApplySessionLog_RecomputesLevel(t *testing.T) {
	// a stored level that disagrees with experience is corrected
	out, err := ApplySessionLog(domain.UserStats{Level: 9, Experience: 250}, session())
	require.NoError(t, err)
	assert.Equal(t, 350, out.Stats.Experience)
	assert.Equal(t, 2, out.Stats.Level)

	out, err = ApplySessionLog(domain.UserStats{Level: 2, Experience: 350}, session(exercise("Supino Reto", 40)))
	require.NoError(t, err)
	assert.Equal(t, 500, out.Stats.Experience)
	assert.Equal(t, 3, out.Stats.Level)
}

func TestApplySessionLog_RejectsNegativeSets(t *testing.T) {
	prior := domain.UserStats{Experience: 100, Level: 2, WorkoutsCompleted: 1}

	bad := []domain.SetLog{
		{Weight: -5, Reps: 8},
		{Weight: 50, Reps: -1},
		{Weight: 50, Reps: 8, RIR: -2},
	}
	for _, s := range bad {
		entry := session(domain.ExerciseLog{Name: "Supino Reto", Sets: []domain.SetLog{{Weight: 60, Reps: 5}, s}})
		out, err := ApplySessionLog(prior, entry)
		assert.ErrorIs(t, err, domain.ErrInvalidSet)
		assert.Equal(t, domain.SessionOutcome{}, out)
	}
}

func TestApplySessionLog_Monotonic(t *testing.T) {
	faker := gofakeit.New(99)
	names := []string{"Supino Reto", "Agachamento Livre", "Levantamento Terra", "Remada Curvada", "Leg Press"}

	for i := 0; i < 300; i++ {
		prior := domain.UserStats{
			Experience:        faker.Number(0, 20000),
			WorkoutsCompleted: faker.Number(0, 200),
			StreakDays:        faker.Number(0, 30),
			PersonalBests: domain.PersonalBests{
				BenchPress: faker.Float64Range(0, 200),
				Squat:      faker.Float64Range(0, 250),
				Deadlift:   faker.Float64Range(0, 300),
			},
		}
		prior.Level = Level(prior.Experience)

		var exercises []domain.ExerciseLog
		for j := faker.Number(0, 5); j > 0; j-- {
			e := domain.ExerciseLog{Name: names[faker.Number(0, len(names)-1)]}
			for k := faker.Number(0, 5); k > 0; k-- {
				e.Sets = append(e.Sets, domain.SetLog{
					Weight: faker.Float64Range(0, 300),
					Reps:   faker.Number(0, 20),
					RIR:    faker.Number(0, 5),
				})
			}
			exercises = append(exercises, e)
		}

		out, err := ApplySessionLog(prior, session(exercises...))
		require.NoError(t, err)

		next := out.Stats
		assert.GreaterOrEqual(t, out.ExperienceGain, SessionExperience)
		assert.Equal(t, SessionExperience+PersonalBestExperience*len(out.NewPBs), out.ExperienceGain)
		assert.Equal(t, prior.Experience+out.ExperienceGain, next.Experience)
		assert.GreaterOrEqual(t, next.Level, prior.Level)
		assert.Equal(t, Level(next.Experience), next.Level)
		assert.Equal(t, prior.WorkoutsCompleted+1, next.WorkoutsCompleted)
		assert.Equal(t, prior.StreakDays, next.StreakDays)
		assert.GreaterOrEqual(t, next.PersonalBests.BenchPress, prior.PersonalBests.BenchPress)
		assert.GreaterOrEqual(t, next.PersonalBests.Squat, prior.PersonalBests.Squat)
		assert.GreaterOrEqual(t, next.PersonalBests.Deadlift, prior.PersonalBests.Deadlift)
	}
}

func TestBestSet(t *testing.T) {
	t.Run("heaviest wins", func(t *testing.T) {
		best := BestSet([]domain.SetLog{{Weight: 60, Reps: 10}, {Weight: 80, Reps: 6}, {Weight: 70, Reps: 8}})
		assert.Equal(t, domain.SetLog{Weight: 80, Reps: 6}, best)
	})

	t.Run("ties keep the first occurrence", func(t *testing.T) {
		best := BestSet([]domain.SetLog{{Weight: 100, Reps: 5, RIR: 1}, {Weight: 100, Reps: 8}})
		assert.Equal(t, domain.SetLog{Weight: 100, Reps: 5, RIR: 1}, best)
	})

	t.Run("zero weight yields the zero set", func(t *testing.T) {
		assert.Equal(t, domain.SetLog{}, BestSet([]domain.SetLog{{Weight: 0, Reps: 20, RIR: 2}}))
		assert.Equal(t, domain.SetLog{}, BestSet(nil))
	})
}

func TestClassifyLift(t *testing.T) {
	tests := []struct {
		name     string
		expected Lift
		ok       bool
	}{
		{"Supino Reto", LiftBenchPress, true},
		{"SUPINO inclinado com halteres", LiftBenchPress, true},
		{"Agachamento Frontal", LiftSquat, true},
		{"Levantamento Terra Romeno", LiftDeadlift, true},
		{"Agachamento + Levantamento Terra complex", LiftSquat, true},
		{"Levantamento Terra + Supino", LiftBenchPress, true},
		{"Leg Press", "", false},
		{"Bench Press", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lift, ok := ClassifyLift(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, lift)
		})
	}
}

func TestApplySessionLog_ComboExerciseCountsOnce(t *testing.T) {
	entry := domain.ProgressEntry{
		Date: "2026-03-02",
		Exercises: []domain.ExerciseLog{
			{Name: "Agachamento + Levantamento Terra complex", Sets: []domain.SetLog{{Weight: 120, Reps: 5}}},
		},
	}

	outcome, err := ApplySessionLog(domain.NewUserStats("u1"), entry)
	require.NoError(t, err)
	assert.Equal(t, 120.0, outcome.Stats.PersonalBests.Squat)
	assert.Zero(t, outcome.Stats.PersonalBests.Deadlift)
	assert.Equal(t, 150, outcome.ExperienceGain)
	assert.Equal(t, []string{"squat"}, outcome.NewPBs)
}

func TestLevel(t *testing.T) {
	tests := []struct {
		experience int
		level      int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{900, 4},
		{10000, 11},
		{-50, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, Level(tt.experience), "experience %d", tt.experience)
	}

	for level := 1; level <= 20; level++ {
		assert.Equal(t, level, Level(ExperienceForLevel(level)))
	}
}

func TestLevelProgress(t *testing.T) {
	p := LevelProgress(domain.UserStats{Experience: 250})
	assert.Equal(t, domain.LevelProgress{
		Level:              2,
		Experience:         250,
		CurrentLevelXP:     100,
		NextLevelXP:        400,
		ProgressPercentage: 50,
	}, p)

	fresh := LevelProgress(domain.NewUserStats("u1"))
	assert.Equal(t, 1, fresh.Level)
	assert.Zero(t, fresh.ProgressPercentage)
	assert.Equal(t, 100, fresh.NextLevelXP)
}
