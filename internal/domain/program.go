package domain

import "time"

// Program represents a weekly workout program assigned to a client by a trainer.
type Program struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	TrainerID       string            `json:"trainer_id"`
	ClientID        string            `json:"client_id,omitempty"`
	DurationWeeks   int               `json:"duration_weeks"`
	SessionsPerWeek int               `json:"sessions_per_week"`
	DifficultyLevel string            `json:"difficulty_level"` // beginner, intermediate, advanced
	IsActive        bool              `json:"is_active"`        // Is this the currently active program for the client?
	Exercises       []ProgramExercise `json:"exercises"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// ProgramExercise places an exercise within a program's weekly schedule.
type ProgramExercise struct {
	ID          string   `json:"id"`
	ExerciseID  string   `json:"exercise_id"`
	Exercise    Exercise `json:"exercise"`
	Sets        int      `json:"sets"`
	Reps        string   `json:"reps"` // "8-12", "10", "30 seconds"
	Weight      float64  `json:"weight,omitempty"` // in kg
	RestSeconds int      `json:"rest_seconds,omitempty"`

	// OrderInProgram orders exercises within a single day.
	OrderInProgram int `json:"order_in_program"`
	WeekNumber     int `json:"week_number"`
	// DayNumber schedules the exercise on a weekday, 1 (Monday) - 7 (Sunday).
	DayNumber int `json:"day_number"`

	Completed bool `json:"completed"`
}
