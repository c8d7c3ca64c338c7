package memory

import (
	"context"
	"sync"
	"time"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/repository"

	"github.com/google/uuid"
)

// memoryProgressRepository implements repository.ProgressRepository in memory.
type memoryProgressRepository struct {
	mu      sync.RWMutex
	entries []domain.ProgressEntry
	goals   []domain.Goal
}

// NewMemoryProgressRepository creates an in-memory progress repository
// holding the given seed records.
func NewMemoryProgressRepository(entries []domain.ProgressEntry, goals []domain.Goal) repository.ProgressRepository {
	return &memoryProgressRepository{
		entries: append([]domain.ProgressEntry(nil), entries...),
		goals:   append([]domain.Goal(nil), goals...),
	}
}

func (r *memoryProgressRepository) CreateEntry(ctx context.Context, entry *domain.ProgressEntry) (string, error) {
	if entry.ClientID == "" {
		return "", repository.RepositoryError("progress entry client id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if entry.Date.IsZero() {
		entry.Date = now
	}
	entry.CreatedAt = now
	entry.UpdatedAt = now

	r.entries = append(r.entries, *entry)
	return entry.ID, nil
}

func (r *memoryProgressRepository) GetEntriesByClientID(ctx context.Context, clientID string) ([]domain.ProgressEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []domain.ProgressEntry{}
	for _, e := range r.entries {
		if e.ClientID == clientID {
			result = append(result, e)
		}
	}
	return result, nil
}

// GetGoalsByClientID returns the goals for a client. Clients without goals
// get an empty slice, never an error.
func (r *memoryProgressRepository) GetGoalsByClientID(ctx context.Context, clientID string) ([]domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []domain.Goal{}
	for _, g := range r.goals {
		if g.ClientID == clientID {
			result = append(result, g)
		}
	}
	return result, nil
}

func (r *memoryProgressRepository) CreateGoal(ctx context.Context, goal *domain.Goal) (string, error) {
	if goal.ClientID == "" || goal.Title == "" {
		return "", repository.RepositoryError("goal client id and title are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}
	if goal.Status == "" {
		goal.Status = domain.GoalActive
	}
	now := time.Now().UTC()
	goal.CreatedAt = now
	goal.UpdatedAt = now

	r.goals = append(r.goals, *goal)
	return goal.ID, nil
}
