package domain

import "time"

// GoalStatus tracks the lifecycle of a client goal.
type GoalStatus string

const (
	GoalActive   GoalStatus = "active"
	GoalAchieved GoalStatus = "achieved"
)

// ProgressEntry is a free-form progress log entry for a client.
type ProgressEntry struct {
	ID                string    `json:"id"`
	ClientID          string    `json:"client_id"`
	TrainerID         string    `json:"trainer_id,omitempty"`
	Date              time.Time `json:"date"`
	Weight            float64   `json:"weight,omitempty"` // in kg
	BodyFatPercentage float64   `json:"body_fat_percentage,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Goal is a measurable target set for a client.
type Goal struct {
	ID           string     `json:"id"`
	ClientID     string     `json:"client_id"`
	Title        string     `json:"title"`
	TargetValue  float64    `json:"target_value"`
	CurrentValue float64    `json:"current_value"`
	Unit         string     `json:"unit,omitempty"` // e.g. "kg", "%", "km"
	Status       GoalStatus `json:"status"`
	TargetDate   time.Time  `json:"target_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
