package repository

import (
	"context"
	"time"

	"fitnesspr/portal/internal/domain"
)

// Error constants for the repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("already exists")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// ClientRepository defines the interface for interacting with client profiles.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	GetByPIN(ctx context.Context, pin string) (*domain.Client, error)
	GetByTrainerID(ctx context.Context, trainerID string) ([]domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id string) error
}

// ExerciseRepository defines the interface for the exercise library.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
}

// ProgramRepository defines the interface for workout programs.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.Program) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Program, error)
	GetByClientID(ctx context.Context, clientID string) ([]domain.Program, error)
	List(ctx context.Context) ([]domain.Program, error)
	Update(ctx context.Context, program *domain.Program) error
	Delete(ctx context.Context, id string) error
	SetExerciseCompleted(ctx context.Context, programID, programExerciseID string, completed bool) error
}

// MealPlanRepository defines the interface for meal plans.
type MealPlanRepository interface {
	Create(ctx context.Context, plan *domain.MealPlan) (string, error)
	GetByID(ctx context.Context, id string) (*domain.MealPlan, error)
	GetByClientID(ctx context.Context, clientID string) ([]domain.MealPlan, error)
	List(ctx context.Context) ([]domain.MealPlan, error)
	SetMealCompleted(ctx context.Context, planID, planMealID string, completed bool) error
}

// ProgressRepository defines the interface for progress entries and goals.
type ProgressRepository interface {
	CreateEntry(ctx context.Context, entry *domain.ProgressEntry) (string, error)
	GetEntriesByClientID(ctx context.Context, clientID string) ([]domain.ProgressEntry, error)
	GetGoalsByClientID(ctx context.Context, clientID string) ([]domain.Goal, error)
	CreateGoal(ctx context.Context, goal *domain.Goal) (string, error)
}

// PaymentRepository defines the interface for client payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (string, error)
	GetByClientID(ctx context.Context, clientID string) ([]domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
}

// SessionRepository defines the interface for training sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]domain.Session, error)
	GetByDate(ctx context.Context, day time.Time) ([]domain.Session, error)
}
