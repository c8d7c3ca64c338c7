package service

import (
	"context"
	"errors"
	"time"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/repository"
)

// --- Error Definitions ---
var ErrSessionNotFound = errors.New("session not found")

// SessionService manages scheduled training sessions.
type SessionService interface {
	CreateSession(ctx context.Context, session *domain.Session) (*domain.Session, error)
	GetSession(ctx context.Context, id string) (*domain.Session, error)
	ListSessions(ctx context.Context) ([]domain.Session, error)
	// TodaySessions returns the sessions scheduled on the calendar day of
	// the given time.
	TodaySessions(ctx context.Context, now time.Time) ([]domain.Session, error)
}

type sessionService struct {
	sessionRepo repository.SessionRepository
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(sessionRepo repository.SessionRepository) SessionService {
	return &sessionService{sessionRepo: sessionRepo}
}

func (s *sessionService) CreateSession(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	if session.ClientID == "" || session.TrainerID == "" {
		return nil, errors.New("session client id and trainer id are required")
	}
	if _, err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *sessionService) ListSessions(ctx context.Context) ([]domain.Session, error) {
	return s.sessionRepo.List(ctx)
}

func (s *sessionService) TodaySessions(ctx context.Context, now time.Time) ([]domain.Session, error) {
	return s.sessionRepo.GetByDate(ctx, now)
}
