package memory

import (
	"context"
	"sync"
	"time"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/repository"

	"github.com/google/uuid"
)

// memorySessionRepository implements repository.SessionRepository in memory.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions []domain.Session
}

// NewMemorySessionRepository creates an in-memory session repository holding
// the given seed records.
func NewMemorySessionRepository(seed []domain.Session) repository.SessionRepository {
	return &memorySessionRepository{sessions: append([]domain.Session(nil), seed...)}
}

func (r *memorySessionRepository) Create(ctx context.Context, session *domain.Session) (string, error) {
	if session.ClientID == "" || session.TrainerID == "" {
		return "", repository.RepositoryError("session client id and trainer id are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.Status == "" {
		session.Status = domain.SessionScheduled
	}
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	r.sessions = append(r.sessions, *session)
	return session.ID, nil
}

func (r *memorySessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.sessions {
		if r.sessions[i].ID == id {
			s := r.sessions[i]
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memorySessionRepository) List(ctx context.Context) ([]domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.Session(nil), r.sessions...), nil
}

// GetByDate returns sessions scheduled on the same calendar day as the given
// time, in the day's local location.
func (r *memorySessionRepository) GetByDate(ctx context.Context, day time.Time) ([]domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	y, m, d := day.Date()
	result := []domain.Session{}
	for _, s := range r.sessions {
		sy, sm, sd := s.ScheduledAt.In(day.Location()).Date()
		if sy == y && sm == m && sd == d {
			result = append(result, s)
		}
	}
	return result, nil
}
