package service

import (
	"context"
	"errors"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/repository"
)

// ProgressService manages progress log entries and client goals.
type ProgressService interface {
	AddEntry(ctx context.Context, entry *domain.ProgressEntry) (*domain.ProgressEntry, error)
	GetEntriesForClient(ctx context.Context, clientID string) ([]domain.ProgressEntry, error)
	// GetGoalsForClient returns a client's goals. Clients without goals get
	// an empty list, never an error.
	GetGoalsForClient(ctx context.Context, clientID string) ([]domain.Goal, error)
	AddGoal(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
}

type progressService struct {
	progressRepo repository.ProgressRepository
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(progressRepo repository.ProgressRepository) ProgressService {
	return &progressService{progressRepo: progressRepo}
}

func (s *progressService) AddEntry(ctx context.Context, entry *domain.ProgressEntry) (*domain.ProgressEntry, error) {
	if entry.ClientID == "" {
		return nil, errors.New("progress entry client id is required")
	}
	if _, err := s.progressRepo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *progressService) GetEntriesForClient(ctx context.Context, clientID string) ([]domain.ProgressEntry, error) {
	return s.progressRepo.GetEntriesByClientID(ctx, clientID)
}

func (s *progressService) GetGoalsForClient(ctx context.Context, clientID string) ([]domain.Goal, error) {
	return s.progressRepo.GetGoalsByClientID(ctx, clientID)
}

func (s *progressService) AddGoal(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	if goal.ClientID == "" || goal.Title == "" {
		return nil, errors.New("goal client id and title are required")
	}
	if _, err := s.progressRepo.CreateGoal(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}
