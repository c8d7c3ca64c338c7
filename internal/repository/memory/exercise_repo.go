package memory

import (
	"context"
	"sync"
	"time"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/repository"

	"github.com/google/uuid"
)

// memoryExerciseRepository implements repository.ExerciseRepository in memory.
type memoryExerciseRepository struct {
	mu        sync.RWMutex
	exercises []domain.Exercise
}

// NewMemoryExerciseRepository creates an in-memory exercise library holding
// the given seed records.
func NewMemoryExerciseRepository(seed []domain.Exercise) repository.ExerciseRepository {
	return &memoryExerciseRepository{exercises: append([]domain.Exercise(nil), seed...)}
}

func (r *memoryExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (string, error) {
	if exercise.Name == "" {
		return "", repository.RepositoryError("exercise name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	r.exercises = append(r.exercises, *exercise)
	return exercise.ID, nil
}

func (r *memoryExerciseRepository) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.exercises {
		if r.exercises[i].ID == id {
			e := r.exercises[i]
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memoryExerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.Exercise(nil), r.exercises...), nil
}
