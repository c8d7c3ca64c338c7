package client

import (
	"context"
	"net/http"

	"fitnesspr/portal/internal/domain"

	"golang.org/x/sync/errgroup"
)

// StatisticsService wraps the dashboard statistics endpoints.
type StatisticsService struct {
	c *Client
}

// DashboardOverview merges the three dashboard reads into one object.
type DashboardOverview struct {
	Stats          domain.TrainerStats `json:"stats"`
	TodaysSessions []domain.Session    `json:"todays_sessions"`
	Clients        []domain.Client     `json:"clients"`
}

// TrainerStats fetches the authenticated trainer's dashboard figures.
func (s *StatisticsService) TrainerStats(ctx context.Context) (*domain.TrainerStats, error) {
	var stats domain.TrainerStats
	if err := s.c.do(ctx, http.MethodGet, "/statistics/trainer", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// DashboardOverview issues the three dashboard fetches concurrently and
// waits for all of them. If any branch fails the whole call fails; there is
// no partial result.
func (s *StatisticsService) DashboardOverview(ctx context.Context) (*DashboardOverview, error) {
	var overview DashboardOverview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.TrainerStats(gctx)
		if err != nil {
			return err
		}
		overview.Stats = *stats
		return nil
	})
	g.Go(func() error {
		sessions, err := s.c.Sessions().Today(gctx)
		if err != nil {
			return err
		}
		overview.TodaysSessions = sessions
		return nil
	})
	g.Go(func() error {
		clients, err := s.c.Clients().List(gctx)
		if err != nil {
			return err
		}
		overview.Clients = clients
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}
