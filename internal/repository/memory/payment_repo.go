package memory

import (
	"context"
	"sync"
	"time"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/repository"

	"github.com/google/uuid"
)

// memoryPaymentRepository implements repository.PaymentRepository in memory.
type memoryPaymentRepository struct {
	mu       sync.RWMutex
	payments []domain.Payment
}

// NewMemoryPaymentRepository creates an in-memory payment repository holding
// the given seed records.
func NewMemoryPaymentRepository(seed []domain.Payment) repository.PaymentRepository {
	return &memoryPaymentRepository{payments: append([]domain.Payment(nil), seed...)}
}

func (r *memoryPaymentRepository) Create(ctx context.Context, payment *domain.Payment) (string, error) {
	if payment.ClientID == "" || payment.Amount <= 0 {
		return "", repository.RepositoryError("payment client id and positive amount are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	if payment.Status == "" {
		payment.Status = domain.PaymentPending
	}
	now := time.Now().UTC()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	r.payments = append(r.payments, *payment)
	return payment.ID, nil
}

func (r *memoryPaymentRepository) GetByClientID(ctx context.Context, clientID string) ([]domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []domain.Payment{}
	for _, p := range r.payments {
		if p.ClientID == clientID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *memoryPaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.Payment(nil), r.payments...), nil
}
