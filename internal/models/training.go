package models

import "time"

// HistoryEntry is one logged workout for one exercise. Strength and mobility
// entries use Sets/Reps/Weight/RPE, endurance entries use Distance.
type HistoryEntry struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Sets     int       `json:"sets"`
	Reps     int       `json:"reps"`
	Weight   float64   `json:"weight"`
	RPE      float64   `json:"rpe"`
	Distance float64   `json:"distance"`
	Notes    string    `json:"notes"`
}

// History maps exercise ids to their entries in insertion order.
type History map[string][]HistoryEntry

// Settings are the user-level values persisted next to the exercises.
type Settings struct {
	TrainingInterval int     `json:"training_interval"`
	DefaultRPE       float64 `json:"default_rpe"`
}

const (
	DefaultTrainingInterval = 7
	MaxTrainingInterval     = 30
	DefaultRPE              = 7
)
