package client

import (
	"context"
	"net/http"

	"fitnesspr/portal/internal/domain"
)

// ProgressService wraps the progress log and goal endpoints.
type ProgressService struct {
	c *Client
}

// Goals lists a client's goals. Clients without goals get an empty list.
func (s *ProgressService) Goals(ctx context.Context, clientID string) ([]domain.Goal, error) {
	var goals []domain.Goal
	if err := s.c.do(ctx, http.MethodGet, "/progress/goals?client_id="+clientID, nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// Entries lists a client's progress log entries.
func (s *ProgressService) Entries(ctx context.Context, clientID string) ([]domain.ProgressEntry, error) {
	var entries []domain.ProgressEntry
	if err := s.c.do(ctx, http.MethodGet, "/progress/entries?client_id="+clientID, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *ProgressService) AddEntry(ctx context.Context, entry *domain.ProgressEntry) (*domain.ProgressEntry, error) {
	var created domain.ProgressEntry
	if err := s.c.do(ctx, http.MethodPost, "/progress/entries", entry, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *ProgressService) AddGoal(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	var created domain.Goal
	if err := s.c.do(ctx, http.MethodPost, "/progress/goals", goal, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
