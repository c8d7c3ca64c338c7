package client

import (
	"context"
	"net/http"
	"testing"

	"fitnesspr/portal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientProgramsTolerateUnknownClients(t *testing.T) {
	c := newTestServer(t)

	programs, err := c.Clients().Programs(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.Empty(t, programs)
	assert.NotNil(t, programs)
}

func TestTrainerLookup(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	trainer, err := c.Clients().Trainer(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", trainer.FullName)
	assert.True(t, trainer.IsTrainer)
	assert.Empty(t, trainer.PasswordHash)

	_, err = c.Clients().Trainer(ctx, "does-not-exist")
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusNotFound))
}

func TestClientCRUD(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	// Management endpoints need a trainer token.
	_, err := c.Clients().List(ctx)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))

	_, err = c.Auth().Login(ctx, "trainer@fitnesspr.com", "trainer123")
	require.NoError(t, err)

	clients, err := c.Clients().List(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 5)

	created, err := c.Clients().Create(ctx, &domain.Client{
		Name: "Tom Novak", Email: "tom.novak@example.com",
		TrainerID: "1", PIN: "678901", FitnessLevel: "beginner",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)

	created.Goals = "Couch to 5k"
	updated, err := c.Clients().Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Couch to 5k", updated.Goals)

	require.NoError(t, c.Clients().Delete(ctx, created.ID))

	_, err = c.Clients().Get(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusNotFound))
}

func TestGoalsAndEntries(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	t.Run("client with goals", func(t *testing.T) {
		goals, err := c.Progress().Goals(ctx, "1")
		require.NoError(t, err)
		require.Len(t, goals, 2)
		assert.Equal(t, domain.GoalActive, goals[0].Status)
	})

	t.Run("client without goals gets an empty list", func(t *testing.T) {
		goals, err := c.Progress().Goals(ctx, "3")
		require.NoError(t, err)
		assert.Empty(t, goals)
		assert.NotNil(t, goals)
	})

	t.Run("entries are in storage order", func(t *testing.T) {
		entries, err := c.Progress().Entries(ctx, "1")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, 68.5, entries[0].Weight)
		assert.Equal(t, 67.8, entries[1].Weight)
	})
}

func TestSessionsToday(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	_, err := c.Auth().Login(ctx, "trainer@fitnesspr.com", "trainer123")
	require.NoError(t, err)

	sessions, err := c.Sessions().Today(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	for _, s := range sessions {
		assert.Equal(t, domain.SessionScheduled, s.Status)
	}
}
