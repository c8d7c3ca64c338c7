package client

import (
	"context"
	"net/http"

	"fitnesspr/portal/internal/domain"
)

// ClientsService wraps the client profile endpoints.
type ClientsService struct {
	c *Client
}

func (s *ClientsService) List(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	if err := s.c.do(ctx, http.MethodGet, "/clients", nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *ClientsService) Get(ctx context.Context, id string) (*domain.Client, error) {
	var client domain.Client
	if err := s.c.do(ctx, http.MethodGet, "/clients/"+id, nil, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientsService) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	var created domain.Client
	if err := s.c.do(ctx, http.MethodPost, "/clients", client, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *ClientsService) Update(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	var updated domain.Client
	if err := s.c.do(ctx, http.MethodPut, "/clients/"+client.ID, client, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ClientsService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/clients/"+id, nil, nil)
}

// Programs lists the programs assigned to a client. Unknown client IDs
// yield an empty list from the backend.
func (s *ClientsService) Programs(ctx context.Context, clientID string) ([]domain.Program, error) {
	var programs []domain.Program
	if err := s.c.do(ctx, http.MethodGet, "/clients/"+clientID+"/programs", nil, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

// Trainer resolves a trainer account by ID; unknown IDs surface as a 404
// APIError.
func (s *ClientsService) Trainer(ctx context.Context, trainerID string) (*domain.User, error) {
	var trainer domain.User
	if err := s.c.do(ctx, http.MethodGet, "/trainers/"+trainerID, nil, &trainer); err != nil {
		return nil, err
	}
	return &trainer, nil
}
