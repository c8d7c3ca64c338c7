package client

import (
	"context"
	"net/http"
	"testing"

	"fitnesspr/portal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginLifecycle(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()
	auth := c.Auth()

	assert.False(t, auth.IsAuthenticated())
	assert.Empty(t, auth.AuthHeader())

	_, err := auth.CurrentUser(ctx)
	require.ErrorIs(t, err, ErrNotAuthenticated)

	result, err := auth.Login(ctx, "trainer@fitnesspr.com", "trainer123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "John Smith", result.User.Name)
	assert.Equal(t, "trainer@fitnesspr.com", result.User.Email)
	assert.Equal(t, domain.RoleTrainer, result.User.Role)

	assert.True(t, auth.IsAuthenticated())
	assert.Equal(t, result.Token, auth.Token())
	assert.Equal(t, map[string]string{"Authorization": "Bearer " + result.Token}, auth.AuthHeader())

	user, err := auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, result.User, *user)

	auth.Logout()
	assert.False(t, auth.IsAuthenticated())
	assert.Empty(t, auth.Token())
	assert.Empty(t, auth.AuthHeader())
}

func TestLoginBadCredentials(t *testing.T) {
	c := newTestServer(t)

	_, err := c.Auth().Login(context.Background(), "trainer@fitnesspr.com", "wrong")
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.False(t, c.Auth().IsAuthenticated())
}

func TestRoleMapping(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	result, err := c.Auth().Login(ctx, "sarah.johnson@example.com", "client123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleClient, result.User.Role)

	result, err = c.Auth().Login(ctx, "admin@fitnesspr.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, result.User.Role)
}

func TestCurrentUserClearsStaleToken(t *testing.T) {
	c := newTestServer(t)

	c.tokens.SetToken("not-a-valid-jwt")
	require.True(t, c.Auth().IsAuthenticated())

	_, err := c.Auth().CurrentUser(context.Background())
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.False(t, c.Auth().IsAuthenticated(), "a 401 should clear the stored token")
}

func TestRegisterLogsIn(t *testing.T) {
	c := newTestServer(t)

	result, err := c.Auth().Register(context.Background(), RegisterParams{
		Name:     "New Coach",
		Email:    "new.coach@example.com",
		Password: "longenough1",
		Role:     domain.RoleTrainer,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Coach", result.User.Name)
	assert.Equal(t, domain.RoleTrainer, result.User.Role)
	assert.True(t, c.Auth().IsAuthenticated())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	c := newTestServer(t)

	_, err := c.Auth().Register(context.Background(), RegisterParams{
		Name:     "Imposter",
		Email:    "trainer@fitnesspr.com",
		Password: "longenough1",
		Role:     domain.RoleTrainer,
	})
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusConflict))
}

func TestPinLogin(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	t.Run("valid pin resolves the client", func(t *testing.T) {
		result, err := c.Auth().PinLogin(ctx, "123456")
		require.NoError(t, err)
		assert.True(t, result.Success)
		require.NotNil(t, result.Client)
		assert.Equal(t, "Sarah Johnson", result.Client.Name)
		assert.Equal(t, "/client/123456", result.RedirectURL)
	})

	t.Run("unknown pin is a 401", func(t *testing.T) {
		_, err := c.Auth().PinLogin(ctx, "999999")
		require.Error(t, err)
		assert.True(t, IsStatus(err, http.StatusUnauthorized))
	})
}

func TestPinLoginValidatesFormatLocally(t *testing.T) {
	// The stub fails the test if the SDK sends any request at all.
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s; malformed PINs must be rejected before any network call", r.URL.Path)
	})

	for _, pin := range []string{"", "12345", "1234567", "12a456", "123 456"} {
		_, err := c.Auth().PinLogin(context.Background(), pin)
		assert.ErrorIs(t, err, ErrInvalidPINFormat, "pin %q", pin)
	}
}
