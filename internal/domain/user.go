package domain

import "time"

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleTrainer Role = "trainer"
	RoleClient  Role = "client"
	RoleAdmin   Role = "admin"
)

// User represents an account in the system (a Trainer, a Client, or an Admin).
// The wire shape keeps the backend's field names (full_name, is_trainer,
// is_superuser); the SDK in internal/client maps them onto the normalized
// AuthUser view.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"` // Should be unique
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"` // Never expose this via JSON
	IsTrainer    bool      `json:"is_trainer"`
	IsSuperuser  bool      `json:"is_superuser"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role derives the normalized role from the backend flags.
// Superuser wins over trainer; everything else is a client.
func (u *User) Role() Role {
	switch {
	case u.IsSuperuser:
		return RoleAdmin
	case u.IsTrainer:
		return RoleTrainer
	default:
		return RoleClient
	}
}
