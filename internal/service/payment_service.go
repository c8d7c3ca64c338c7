package service

import (
	"context"
	"errors"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/repository"
)

// PaymentService manages client payments.
type PaymentService interface {
	RecordPayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	GetPaymentsForClient(ctx context.Context, clientID string) ([]domain.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
}

// NewPaymentService creates a new instance of paymentService.
func NewPaymentService(paymentRepo repository.PaymentRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) RecordPayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if payment.ClientID == "" || payment.TrainerID == "" {
		return nil, errors.New("payment client id and trainer id are required")
	}
	if payment.Amount <= 0 {
		return nil, errors.New("payment amount must be positive")
	}
	if _, err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.paymentRepo.List(ctx)
}

func (s *paymentService) GetPaymentsForClient(ctx context.Context, clientID string) ([]domain.Payment, error) {
	return s.paymentRepo.GetByClientID(ctx, clientID)
}
