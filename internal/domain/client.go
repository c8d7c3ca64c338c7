package domain

import "time"

// Client represents a client profile managed by a trainer.
type Client struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	TrainerID string `json:"trainer_id,omitempty"`

	// PIN is a 6-digit numeric code used by the client portal as a
	// low-friction identifier. It is not a password.
	PIN string `json:"pin,omitempty"`

	// Personal information
	Age    int     `json:"age,omitempty"`
	Gender string  `json:"gender,omitempty"`
	Height float64 `json:"height,omitempty"` // in cm
	Weight float64 `json:"weight,omitempty"` // in kg
	Phone  string  `json:"phone,omitempty"`

	// Fitness information
	FitnessLevel string `json:"fitness_level,omitempty"` // beginner, intermediate, advanced
	Goals        string `json:"goals,omitempty"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidPIN reports whether pin is exactly 6 ASCII digits.
func ValidPIN(pin string) bool {
	if len(pin) != 6 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
