package domain

import "time"

// SessionStatus tracks the lifecycle of a training session.
type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// Session represents a scheduled training session between a trainer and a client.
type Session struct {
	ID              string        `json:"id"`
	ClientID        string        `json:"client_id"`
	TrainerID       string        `json:"trainer_id"`
	ScheduledAt     time.Time     `json:"scheduled_at"`
	DurationMinutes int           `json:"duration_minutes"`
	Status          SessionStatus `json:"status"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
