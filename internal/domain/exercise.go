package domain

import "time"

// Exercise represents a single exercise definition in the library.
type Exercise struct {
	ID          string    `json:"id"`
	TrainerID   string    `json:"trainer_id,omitempty"` // Trainer who created/owns this exercise
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	MuscleGroup string    `json:"muscle_group,omitempty"` // e.g. "Chest", "Legs", "Back"
	Equipment   string    `json:"equipment,omitempty"`
	Difficulty  string    `json:"difficulty,omitempty"` // beginner, intermediate, advanced
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
