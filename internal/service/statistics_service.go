package service

import (
	"context"
	"time"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/repository"
)

// StatisticsService computes the trainer dashboard aggregates.
type StatisticsService interface {
	TrainerStats(ctx context.Context, trainerID string, now time.Time) (*domain.TrainerStats, error)
}

type statisticsService struct {
	clientRepo   repository.ClientRepository
	programRepo  repository.ProgramRepository
	progressRepo repository.ProgressRepository
	sessionRepo  repository.SessionRepository
	paymentRepo  repository.PaymentRepository
}

// NewStatisticsService creates a new instance of statisticsService.
func NewStatisticsService(
	clientRepo repository.ClientRepository,
	programRepo repository.ProgramRepository,
	progressRepo repository.ProgressRepository,
	sessionRepo repository.SessionRepository,
	paymentRepo repository.PaymentRepository,
) StatisticsService {
	return &statisticsService{
		clientRepo:   clientRepo,
		programRepo:  programRepo,
		progressRepo: progressRepo,
		sessionRepo:  sessionRepo,
		paymentRepo:  paymentRepo,
	}
}

// TrainerStats aggregates the trainer's dashboard figures over a 30-day
// window ending at now.
func (s *statisticsService) TrainerStats(ctx context.Context, trainerID string, now time.Time) (*domain.TrainerStats, error) {
	thirtyDaysAgo := now.AddDate(0, 0, -30)
	sixtyDaysAgo := now.AddDate(0, 0, -60)

	clients, err := s.clientRepo.GetByTrainerID(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	stats := &domain.TrainerStats{TotalClients: len(clients)}

	// Active clients: any progress entry within the last 30 days.
	for _, c := range clients {
		entries, err := s.progressRepo.GetEntriesByClientID(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.Date.Before(thirtyDaysAgo) {
				stats.ActiveClients++
				break
			}
		}
	}

	todays, err := s.sessionRepo.GetByDate(ctx, now)
	if err != nil {
		return nil, err
	}
	for _, sess := range todays {
		if sess.TrainerID == trainerID {
			stats.TodaysSessions++
		}
	}

	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		if p.TrainerID == trainerID && p.Status == domain.PaymentCompleted && !p.CreatedAt.Before(thirtyDaysAgo) {
			stats.MonthlyRevenue += p.Amount
		}
	}

	// Completion rate over every exercise in the trainer's programs.
	programs, err := s.programRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var total, completed int
	for _, p := range programs {
		if p.TrainerID != trainerID {
			continue
		}
		for _, pe := range p.Exercises {
			total++
			if pe.Completed {
				completed++
			}
		}
	}
	if total > 0 {
		stats.ProgressCompletion = float64(completed) / float64(total) * 100
	}

	// Client growth: new clients in the last 30 days vs the 30 days before.
	var current, previous int
	for _, c := range clients {
		switch {
		case !c.CreatedAt.Before(thirtyDaysAgo):
			current++
		case !c.CreatedAt.Before(sixtyDaysAgo):
			previous++
		}
	}
	switch {
	case previous > 0:
		stats.ClientGrowth = float64(current-previous) / float64(previous) * 100
	case current > 0:
		stats.ClientGrowth = 100
	}

	return stats, nil
}
