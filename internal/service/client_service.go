package service

import (
	"context"
	"errors"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/repository"
)

// --- Error Definitions ---
var (
	ErrClientNotFound  = errors.New("client not found")
	ErrTrainerNotFound = errors.New("trainer not found")
)

// ClientService manages client profiles and trainer lookups.
type ClientService interface {
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetManagedClients(ctx context.Context, trainerID string) ([]domain.Client, error)
	UpdateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error
	// GetTrainer resolves a trainer account by ID. Unknown or non-trainer
	// IDs map to ErrTrainerNotFound (the one lookup that 404s).
	GetTrainer(ctx context.Context, id string) (*domain.User, error)
}

type clientService struct {
	clientRepo repository.ClientRepository
	userRepo   repository.UserRepository
}

// NewClientService creates a new instance of clientService.
func NewClientService(clientRepo repository.ClientRepository, userRepo repository.UserRepository) ClientService {
	return &clientService{
		clientRepo: clientRepo,
		userRepo:   userRepo,
	}
}

func (s *clientService) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if client.Name == "" || client.Email == "" {
		return nil, errors.New("client name and email are required")
	}
	if client.PIN != "" && !domain.ValidPIN(client.PIN) {
		return nil, ErrInvalidPINFormat
	}
	client.IsActive = true
	if _, err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *clientService) GetManagedClients(ctx context.Context, trainerID string) ([]domain.Client, error) {
	return s.clientRepo.GetByTrainerID(ctx, trainerID)
}

func (s *clientService) UpdateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if client.PIN != "" && !domain.ValidPIN(client.PIN) {
		return nil, ErrInvalidPINFormat
	}
	if err := s.clientRepo.Update(ctx, client); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, id string) error {
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return err
	}
	return nil
}

func (s *clientService) GetTrainer(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	if !user.IsTrainer {
		return nil, ErrTrainerNotFound
	}
	user.PasswordHash = ""
	return user, nil
}
