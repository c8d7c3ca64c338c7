package service

import (
	"context"
	"errors"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/repository"
)

// --- Error Definitions ---
var (
	ErrProgramNotFound  = errors.New("program not found")
	ErrExerciseNotFound = errors.New("exercise not found")
)

// ProgramService manages workout programs and the exercise library.
type ProgramService interface {
	CreateProgram(ctx context.Context, program *domain.Program) (*domain.Program, error)
	GetProgram(ctx context.Context, id string) (*domain.Program, error)
	// GetProgramsForClient returns the programs assigned to a client, in
	// storage order. Unknown clients get an empty list, not an error.
	GetProgramsForClient(ctx context.Context, clientID string) ([]domain.Program, error)
	ListPrograms(ctx context.Context) ([]domain.Program, error)
	UpdateProgram(ctx context.Context, program *domain.Program) (*domain.Program, error)
	DeleteProgram(ctx context.Context, id string) error
	MarkExerciseCompleted(ctx context.Context, programID, programExerciseID string, completed bool) error

	CreateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error)
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
}

type programService struct {
	programRepo  repository.ProgramRepository
	exerciseRepo repository.ExerciseRepository
}

// NewProgramService creates a new instance of programService.
func NewProgramService(programRepo repository.ProgramRepository, exerciseRepo repository.ExerciseRepository) ProgramService {
	return &programService{
		programRepo:  programRepo,
		exerciseRepo: exerciseRepo,
	}
}

func (s *programService) CreateProgram(ctx context.Context, program *domain.Program) (*domain.Program, error) {
	if program.Name == "" || program.TrainerID == "" {
		return nil, errors.New("program name and trainer id are required")
	}
	// Resolve exercise definitions so nested entries carry full details.
	for i := range program.Exercises {
		pe := &program.Exercises[i]
		if pe.ExerciseID == "" {
			continue
		}
		exercise, err := s.exerciseRepo.GetByID(ctx, pe.ExerciseID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrExerciseNotFound
			}
			return nil, err
		}
		pe.Exercise = *exercise
	}

	if _, err := s.programRepo.Create(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

func (s *programService) GetProgram(ctx context.Context, id string) (*domain.Program, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

func (s *programService) GetProgramsForClient(ctx context.Context, clientID string) ([]domain.Program, error) {
	return s.programRepo.GetByClientID(ctx, clientID)
}

func (s *programService) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	return s.programRepo.List(ctx)
}

func (s *programService) UpdateProgram(ctx context.Context, program *domain.Program) (*domain.Program, error) {
	if err := s.programRepo.Update(ctx, program); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

func (s *programService) DeleteProgram(ctx context.Context, id string) error {
	if err := s.programRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgramNotFound
		}
		return err
	}
	return nil
}

// MarkExerciseCompleted sets the completion flag on one exercise within a
// program. Repeated calls with the same flag are idempotent.
func (s *programService) MarkExerciseCompleted(ctx context.Context, programID, programExerciseID string, completed bool) error {
	err := s.programRepo.SetExerciseCompleted(ctx, programID, programExerciseID, completed)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}

func (s *programService) CreateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	if exercise.Name == "" {
		return nil, errors.New("exercise name is required")
	}
	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *programService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}
