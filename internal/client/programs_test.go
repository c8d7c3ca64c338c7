package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"fitnesspr/portal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	monday    = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	wednesday = time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	sunday    = time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC)
)

func TestCurrentProgram(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	t.Run("skips inactive programs", func(t *testing.T) {
		program, err := c.Programs().CurrentProgram(ctx, "1")
		require.NoError(t, err)
		require.NotNil(t, program)
		assert.Equal(t, "Strength Foundation", program.Name)
		assert.True(t, program.IsActive)
	})

	t.Run("nil when the client has no programs", func(t *testing.T) {
		program, err := c.Programs().CurrentProgram(ctx, "3")
		require.NoError(t, err)
		assert.Nil(t, program)
	})

	t.Run("nil for an unknown client", func(t *testing.T) {
		program, err := c.Programs().CurrentProgram(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.Nil(t, program)
	})
}

func TestCurrentProgramFirstActiveWins(t *testing.T) {
	// Two active programs in backend order; the first one must win.
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		programs := []domain.Program{
			{ID: "10", Name: "First Active", ClientID: "1", IsActive: true},
			{ID: "11", Name: "Second Active", ClientID: "1", IsActive: true},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(programs)
	})

	program, err := c.Programs().CurrentProgram(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, program)
	assert.Equal(t, "First Active", program.Name)
}

func TestTodayWorkout(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	t.Run("wednesday returns only day three, sorted by order", func(t *testing.T) {
		workout, err := c.Programs().TodayWorkout(ctx, "1", wednesday)
		require.NoError(t, err)
		require.Len(t, workout, 2)
		assert.Equal(t, "Deadlift", workout[0].Exercise.Name)
		assert.Equal(t, 1, workout[0].OrderInProgram)
		assert.Equal(t, "Plank", workout[1].Exercise.Name)
		assert.Equal(t, 2, workout[1].OrderInProgram)
		for _, pe := range workout {
			assert.Equal(t, 3, pe.DayNumber)
		}
	})

	t.Run("monday returns day one", func(t *testing.T) {
		workout, err := c.Programs().TodayWorkout(ctx, "1", monday)
		require.NoError(t, err)
		require.Len(t, workout, 2)
		assert.Equal(t, "Barbell Squat", workout[0].Exercise.Name)
		assert.Equal(t, "Bench Press", workout[1].Exercise.Name)
	})

	t.Run("sunday maps to day seven and finds nothing scheduled", func(t *testing.T) {
		workout, err := c.Programs().TodayWorkout(ctx, "1", sunday)
		require.NoError(t, err)
		assert.Empty(t, workout)
	})

	t.Run("no active program means an empty workout", func(t *testing.T) {
		workout, err := c.Programs().TodayWorkout(ctx, "3", wednesday)
		require.NoError(t, err)
		assert.Empty(t, workout)
	})

	t.Run("reads are idempotent", func(t *testing.T) {
		first, err := c.Programs().TodayWorkout(ctx, "1", wednesday)
		require.NoError(t, err)
		second, err := c.Programs().TodayWorkout(ctx, "1", wednesday)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestTodayWorkoutSortIsStable(t *testing.T) {
	// Equal order_in_program values keep backend order.
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		programs := []domain.Program{{
			ID: "1", ClientID: "1", IsActive: true,
			Exercises: []domain.ProgramExercise{
				{ID: "a", OrderInProgram: 2, DayNumber: 3},
				{ID: "b", OrderInProgram: 1, DayNumber: 3},
				{ID: "c", OrderInProgram: 1, DayNumber: 3},
				{ID: "d", OrderInProgram: 1, DayNumber: 5},
			},
		}}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(programs)
	})

	workout, err := c.Programs().TodayWorkout(context.Background(), "1", wednesday)
	require.NoError(t, err)
	require.Len(t, workout, 3)
	assert.Equal(t, "b", workout[0].ID)
	assert.Equal(t, "c", workout[1].ID)
	assert.Equal(t, "a", workout[2].ID)
}

func TestMarkExerciseCompletedRoundTrip(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, c.Programs().MarkExerciseCompleted(ctx, "1", "3", true))

	program, err := c.Programs().CurrentProgram(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, program)
	var found bool
	for _, pe := range program.Exercises {
		if pe.ID == "3" {
			found = true
			assert.True(t, pe.Completed)
		}
	}
	assert.True(t, found)

	// Resending the same flag and flipping it back both succeed.
	require.NoError(t, c.Programs().MarkExerciseCompleted(ctx, "1", "3", true))
	require.NoError(t, c.Programs().MarkExerciseCompleted(ctx, "1", "3", false))

	err = c.Programs().MarkExerciseCompleted(ctx, "1", "nope", true)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusNotFound))
}

func TestForClientPreservesBackendOrder(t *testing.T) {
	c := newTestServer(t)

	programs, err := c.Programs().ForClient(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, programs, 2)
	assert.True(t, programs[0].IsActive)
	assert.False(t, programs[1].IsActive)
}
