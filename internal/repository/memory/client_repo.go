package memory

import (
	"context"
	"sync"
	"time"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/repository"

	"github.com/google/uuid"
)

// memoryClientRepository implements repository.ClientRepository in memory.
// Insertion order is preserved; list reads return records in that order.
type memoryClientRepository struct {
	mu      sync.RWMutex
	clients []domain.Client
}

// NewMemoryClientRepository creates an in-memory client repository holding the
// given seed records.
func NewMemoryClientRepository(seed []domain.Client) repository.ClientRepository {
	return &memoryClientRepository{clients: append([]domain.Client(nil), seed...)}
}

func (r *memoryClientRepository) Create(ctx context.Context, client *domain.Client) (string, error) {
	if client.Name == "" {
		return "", repository.RepositoryError("client name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now

	r.clients = append(r.clients, *client)
	return client.ID, nil
}

func (r *memoryClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.clients {
		if r.clients[i].ID == id {
			c := r.clients[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memoryClientRepository) GetByPIN(ctx context.Context, pin string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.clients {
		if r.clients[i].PIN != "" && r.clients[i].PIN == pin {
			c := r.clients[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memoryClientRepository) GetByTrainerID(ctx context.Context, trainerID string) ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []domain.Client{}
	for _, c := range r.clients {
		if c.TrainerID == trainerID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *memoryClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.Client(nil), r.clients...), nil
}

func (r *memoryClientRepository) Update(ctx context.Context, client *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.clients {
		if r.clients[i].ID == client.ID {
			client.CreatedAt = r.clients[i].CreatedAt
			client.UpdatedAt = time.Now().UTC()
			r.clients[i] = *client
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memoryClientRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.clients {
		if r.clients[i].ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
