package client

import (
	"context"
	"net/http"

	"fitnesspr/portal/internal/domain"
)

// SessionsService wraps the training session endpoints.
type SessionsService struct {
	c *Client
}

func (s *SessionsService) List(ctx context.Context) ([]domain.Session, error) {
	var sessions []domain.Session
	if err := s.c.do(ctx, http.MethodGet, "/sessions", nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Today lists the sessions scheduled for the current calendar day.
func (s *SessionsService) Today(ctx context.Context) ([]domain.Session, error) {
	var sessions []domain.Session
	if err := s.c.do(ctx, http.MethodGet, "/sessions/today", nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *SessionsService) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	var created domain.Session
	if err := s.c.do(ctx, http.MethodPost, "/sessions", session, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
