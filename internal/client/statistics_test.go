package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainerStats(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	_, err := c.Statistics().TrainerStats(ctx)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))

	_, err = c.Auth().Login(ctx, "trainer@fitnesspr.com", "trainer123")
	require.NoError(t, err)

	stats, err := c.Statistics().TrainerStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalClients)
	assert.Equal(t, 2, stats.TodaysSessions)
	// Two completed payments fall inside the last 30 days.
	assert.Equal(t, 210.0, stats.MonthlyRevenue)
	// Two clients have progress entries within the window.
	assert.Equal(t, 2, stats.ActiveClients)
	// No fixture exercise starts out completed.
	assert.Zero(t, stats.ProgressCompletion)
}

func TestDashboardOverview(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	_, err := c.Auth().Login(ctx, "trainer@fitnesspr.com", "trainer123")
	require.NoError(t, err)

	overview, err := c.Statistics().DashboardOverview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, overview.Stats.TotalClients)
	assert.Len(t, overview.TodaysSessions, 2)
	assert.Len(t, overview.Clients, 5)
}

func TestDashboardOverviewAllOrNothing(t *testing.T) {
	// Statistics fails while the other two reads succeed; the overview call
	// must fail as a whole.
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/statistics/trainer":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"stats backend down"}`))
		default:
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte("[]"))
		}
	})

	overview, err := c.Statistics().DashboardOverview(context.Background())
	require.Error(t, err)
	assert.Nil(t, overview)
	assert.True(t, IsStatus(err, http.StatusInternalServerError))
}
