package memory

import (
	"context"
	"sync"
	"time"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/repository"

	"github.com/google/uuid"
)

// memoryProgramRepository implements repository.ProgramRepository in memory.
// Programs keep their insertion order; "first active wins" selection in the
// service layer depends on that order being stable.
type memoryProgramRepository struct {
	mu       sync.RWMutex
	programs []domain.Program
}

// NewMemoryProgramRepository creates an in-memory program repository holding
// the given seed records.
func NewMemoryProgramRepository(seed []domain.Program) repository.ProgramRepository {
	return &memoryProgramRepository{programs: append([]domain.Program(nil), seed...)}
}

func (r *memoryProgramRepository) Create(ctx context.Context, program *domain.Program) (string, error) {
	if program.Name == "" || program.TrainerID == "" {
		return "", repository.RepositoryError("program name and trainer id are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if program.ID == "" {
		program.ID = uuid.NewString()
	}
	for i := range program.Exercises {
		if program.Exercises[i].ID == "" {
			program.Exercises[i].ID = uuid.NewString()
		}
	}
	now := time.Now().UTC()
	program.CreatedAt = now
	program.UpdatedAt = now

	r.programs = append(r.programs, cloneProgram(*program))
	return program.ID, nil
}

func (r *memoryProgramRepository) GetByID(ctx context.Context, id string) (*domain.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.programs {
		if r.programs[i].ID == id {
			p := cloneProgram(r.programs[i])
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memoryProgramRepository) GetByClientID(ctx context.Context, clientID string) ([]domain.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []domain.Program{}
	for i := range r.programs {
		if r.programs[i].ClientID == clientID {
			result = append(result, cloneProgram(r.programs[i]))
		}
	}
	return result, nil
}

func (r *memoryProgramRepository) List(ctx context.Context) ([]domain.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Program, 0, len(r.programs))
	for i := range r.programs {
		result = append(result, cloneProgram(r.programs[i]))
	}
	return result, nil
}

func (r *memoryProgramRepository) Update(ctx context.Context, program *domain.Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.programs {
		if r.programs[i].ID == program.ID {
			program.CreatedAt = r.programs[i].CreatedAt
			program.UpdatedAt = time.Now().UTC()
			r.programs[i] = cloneProgram(*program)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memoryProgramRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.programs {
		if r.programs[i].ID == id {
			r.programs = append(r.programs[:i], r.programs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// SetExerciseCompleted flags one exercise within a program. Resending the
// same flag is a no-op, which keeps repeated completion calls idempotent.
func (r *memoryProgramRepository) SetExerciseCompleted(ctx context.Context, programID, programExerciseID string, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.programs {
		if r.programs[i].ID != programID {
			continue
		}
		for j := range r.programs[i].Exercises {
			if r.programs[i].Exercises[j].ID == programExerciseID {
				r.programs[i].Exercises[j].Completed = completed
				r.programs[i].UpdatedAt = time.Now().UTC()
				return nil
			}
		}
		return repository.ErrNotFound
	}
	return repository.ErrNotFound
}

// cloneProgram deep-copies the nested exercise slice so callers cannot
// mutate stored state through a returned value.
func cloneProgram(p domain.Program) domain.Program {
	p.Exercises = append([]domain.ProgramExercise(nil), p.Exercises...)
	return p
}
