package domain

// ExercisePrescription is a single line of a split day
type ExercisePrescription struct {
	Name     string `json:"name"`
	Sets     int    `json:"sets"`
	RepRange string `json:"rep_range"`
	RIR      int    `json:"rir"`
	Notes    string `json:"notes,omitempty"`
}

// WorkoutDay is one named day of a split
type WorkoutDay struct {
	Name      string                 `json:"name"`
	Exercises []ExercisePrescription `json:"exercises"`
}

// WorkoutPlan is the weekly split for a given availability
type WorkoutPlan struct {
	DaysPerWeek int          `json:"days_per_week"`
	Days        []WorkoutDay `json:"days"`
}
