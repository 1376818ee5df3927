package domain

// Dashboard aggregates everything the home screen shows
type Dashboard struct {
	Profile        *User           `json:"profile"`
	Stats          UserStats       `json:"stats"`
	LevelProgress  LevelProgress   `json:"level_progress"`
	Achievements   []Achievement   `json:"achievements"`
	RecentSessions []*ProgressView `json:"recent_sessions"`
	TrainingPlan   *TrainingPlan   `json:"training_plan,omitempty"`
}

// ProgressExport is the snapshot uploaded by the export operation
type ProgressExport struct {
	Profile  *User            `json:"profile"`
	Stats    UserStats        `json:"stats"`
	Sessions []*ProgressEntry `json:"sessions"`
}

// ExportResult is returned after a snapshot was uploaded
type ExportResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
