package domain

// Achievement is a milestone derived from the current stats
type Achievement struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Progress    float64 `json:"progress"`
	Target      float64 `json:"target"`
	Completed   bool    `json:"completed"`
}
