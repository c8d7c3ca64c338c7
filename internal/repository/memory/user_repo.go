// Package memory provides in-memory repository implementations seeded with
// fixture data. The application has no persistence layer; these stores stand
// in for a database the same way the original mock API fixtures did.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/repository"

	"github.com/google/uuid"
)

// memoryUserRepository implements repository.UserRepository in memory.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

// NewMemoryUserRepository creates an in-memory user repository holding the
// given seed records.
func NewMemoryUserRepository(seed []domain.User) repository.UserRepository {
	return &memoryUserRepository{users: append([]domain.User(nil), seed...)}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *domain.User) (string, error) {
	if user.Email == "" || user.PasswordHash == "" {
		return "", repository.RepositoryError("user email and password hash are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return "", repository.ErrDuplicate
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.users = append(r.users, *user)
	return user.ID, nil
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}
