package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/repository/memory"
	"fitnesspr/portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fixtures := memory.SeedFixtures(time.Now())
	userRepo := memory.NewMemoryUserRepository(fixtures.Users)
	clientRepo := memory.NewMemoryClientRepository(fixtures.Clients)
	exerciseRepo := memory.NewMemoryExerciseRepository(fixtures.Exercises)
	programRepo := memory.NewMemoryProgramRepository(fixtures.Programs)
	mealPlanRepo := memory.NewMemoryMealPlanRepository(fixtures.MealPlans)
	progressRepo := memory.NewMemoryProgressRepository(fixtures.Entries, fixtures.Goals)
	sessionRepo := memory.NewMemorySessionRepository(fixtures.Sessions)
	paymentRepo := memory.NewMemoryPaymentRepository(fixtures.Payments)

	handlers := NewHandlers(
		service.NewAuthService(userRepo, testJWTSecret, time.Hour),
		service.NewPortalService(clientRepo),
		service.NewClientService(clientRepo, userRepo),
		service.NewProgramService(programRepo, exerciseRepo),
		service.NewMealService(mealPlanRepo),
		service.NewProgressService(progressRepo),
		service.NewSessionService(sessionRepo),
		service.NewPaymentService(paymentRepo),
		service.NewStatisticsService(clientRepo, programRepo, progressRepo, sessionRepo, paymentRepo),
	)

	router := gin.New()
	SetupRoutes(router, testJWTSecret, handlers)
	return router
}

func doJSON(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestPinLogin(t *testing.T) {
	router := newTestRouter(t)

	t.Run("known pin resolves the client", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/auth/pin-login", `{"pin":"123456"}`, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp PinLoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Client)
		assert.Equal(t, "1", resp.Client.ID)
		assert.Equal(t, "Sarah Johnson", resp.Client.Name)
		assert.Equal(t, "/client/123456", resp.RedirectURL)
	})

	t.Run("well-formed but unknown pin is 401", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/auth/pin-login", `{"pin":"000000"}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid PIN")
	})

	t.Run("malformed pin is rejected before lookup", func(t *testing.T) {
		for _, pin := range []string{"12345", "1234567", "12a456", ""} {
			w := doJSON(router, http.MethodPost, "/api/v1/auth/pin-login", `{"pin":"`+pin+`"}`, "")
			assert.Equal(t, http.StatusBadRequest, w.Code, "pin %q", pin)
		}
	})

	t.Run("missing body is 400", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/auth/pin-login", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginAndMe(t *testing.T) {
	router := newTestRouter(t)

	t.Run("wrong password is 401", func(t *testing.T) {
		form := url.Values{"username": {"trainer@fitnesspr.com"}, "password": {"nope"}}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing form fields are 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(""))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("token round-trips through /auth/me", func(t *testing.T) {
		token := login(t, router, "trainer@fitnesspr.com", "trainer123")

		w := doJSON(router, http.MethodGet, "/api/v1/auth/me", "", token)
		require.Equal(t, http.StatusOK, w.Code)

		var user domain.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
		assert.Equal(t, "trainer@fitnesspr.com", user.Email)
		assert.Equal(t, "John Smith", user.FullName)
		assert.True(t, user.IsTrainer)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("me without token is 401", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/v1/auth/me", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestTrainerRoutesRequireTrainerRole(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/statistics/trainer", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	clientToken := login(t, router, "sarah.johnson@example.com", "client123")
	w = doJSON(router, http.MethodGet, "/api/v1/statistics/trainer", "", clientToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	trainerToken := login(t, router, "trainer@fitnesspr.com", "trainer123")
	w = doJSON(router, http.MethodGet, "/api/v1/statistics/trainer", "", trainerToken)
	require.Equal(t, http.StatusOK, w.Code)

	var stats domain.TrainerStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 5, stats.TotalClients)
	assert.Equal(t, 2, stats.TodaysSessions)
	assert.Greater(t, stats.MonthlyRevenue, 0.0)
}

func TestClientProgramsNeverFourOhFour(t *testing.T) {
	router := newTestRouter(t)

	t.Run("unknown client gets an empty list", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/v1/clients/999/programs", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("seeded client sees both active and archived programs", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/v1/programs/client/1", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var programs []domain.Program
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &programs))
		require.Len(t, programs, 2)
		assert.Equal(t, "Strength Foundation", programs[0].Name)
		assert.True(t, programs[0].IsActive)
		assert.False(t, programs[1].IsActive)
	})
}

func TestGoals(t *testing.T) {
	router := newTestRouter(t)

	t.Run("client_id is required", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/v1/progress/goals", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("client without goals gets an empty list", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/v1/progress/goals?client_id=3", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("client with goals gets them all", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/v1/progress/goals?client_id=1", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var goals []domain.Goal
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &goals))
		require.Len(t, goals, 2)
		assert.Equal(t, "Reach 65kg", goals[0].Title)
		assert.Equal(t, domain.GoalActive, goals[0].Status)
	})
}

func TestGetTrainer(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/trainers/1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var trainer domain.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trainer))
	assert.Equal(t, "John Smith", trainer.FullName)

	w = doJSON(router, http.MethodGet, "/api/v1/trainers/999", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// A client account is not a trainer even though the ID exists.
	w = doJSON(router, http.MethodGet, "/api/v1/trainers/2", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNutritionSummary(t *testing.T) {
	router := newTestRouter(t)

	t.Run("client without an active plan gets zeroed targets", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/v1/clients/3/nutrition-summary", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var summary domain.NutritionSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
		assert.Equal(t, "3", summary.ClientID)
		assert.Zero(t, summary.TargetCalories)
		assert.Zero(t, summary.ConsumedCalories)
	})

	t.Run("completing a meal moves consumed totals", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/v1/clients/1/nutrition-summary", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		var before domain.NutritionSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &before))
		assert.Equal(t, 1800.0, before.TargetCalories)
		assert.Zero(t, before.ConsumedCalories)

		w = doJSON(router, http.MethodPost, "/api/v1/meals/plans/1/meals/1/complete", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, http.MethodGet, "/api/v1/clients/1/nutrition-summary", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		var after domain.NutritionSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &after))
		assert.Equal(t, 350.0, after.ConsumedCalories)
		assert.Equal(t, 12.0, after.ConsumedProtein)
	})
}

func TestMarkExerciseCompleted(t *testing.T) {
	router := newTestRouter(t)

	t.Run("empty body defaults to completed", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/programs/1/exercises/1/complete", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, http.MethodGet, "/api/v1/programs/client/1", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		var programs []domain.Program
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &programs))
		require.NotEmpty(t, programs)
		assert.True(t, programs[0].Exercises[0].Completed)
	})

	t.Run("explicit false clears the flag", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/programs/1/exercises/1/complete", `{"completed":false}`, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, http.MethodGet, "/api/v1/programs/client/1", "", "")
		var programs []domain.Program
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &programs))
		require.NotEmpty(t, programs)
		assert.False(t, programs[0].Exercises[0].Completed)
	})

	t.Run("unknown program exercise is 404", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/programs/1/exercises/999/complete", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRegisterThenLogin(t *testing.T) {
	router := newTestRouter(t)

	body := `{"email":"new.trainer@example.com","password":"supersecret1","full_name":"New Trainer","is_trainer":true}`
	w := doJSON(router, http.MethodPost, "/api/v1/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate registration conflicts.
	w = doJSON(router, http.MethodPost, "/api/v1/auth/register", body, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	token := login(t, router, "new.trainer@example.com", "supersecret1")
	w = doJSON(router, http.MethodGet, "/api/v1/trainer/clients", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
