package service

import (
	"context"
	"testing"
	"time"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPortalService() PortalService {
	clients := []domain.Client{
		{ID: "1", Name: "Sarah Johnson", Email: "sarah@example.com", TrainerID: "1", PIN: "123456", IsActive: true},
		{ID: "2", Name: "Mike Chen", Email: "mike@example.com", TrainerID: "1", PIN: "234567", IsActive: true},
	}
	return NewPortalService(memory.NewMemoryClientRepository(clients))
}

func TestPinLogin(t *testing.T) {
	svc := newPortalService()
	ctx := context.Background()

	result, err := svc.PinLogin(ctx, "123456")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", result.Client.Name)
	assert.Equal(t, "/client/123456", result.RedirectURL)
}

func TestPinLoginUnknownPIN(t *testing.T) {
	svc := newPortalService()

	_, err := svc.PinLogin(context.Background(), "999999")
	assert.ErrorIs(t, err, ErrInvalidPIN)
}

func TestPinLoginFormatCheckedBeforeLookup(t *testing.T) {
	// "12345" is a prefix of a stored PIN; the format check must reject it
	// before any lookup can run.
	svc := newPortalService()

	for _, pin := range []string{"12345", "1234567", "12a456", ""} {
		_, err := svc.PinLogin(context.Background(), pin)
		assert.ErrorIs(t, err, ErrInvalidPINFormat, "pin %q", pin)
	}
}

func TestAuthServiceRoundTrip(t *testing.T) {
	userRepo := memory.NewMemoryUserRepository(nil)
	svc := NewAuthService(userRepo, "unit-test-secret", time.Hour)
	ctx := context.Background()

	user, err := svc.Register(ctx, "coach@example.com", "longenough1", "Test Coach", true)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleTrainer, user.Role())

	_, err = svc.Register(ctx, "coach@example.com", "longenough1", "Test Coach", true)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	token, logged, err := svc.Login(ctx, "coach@example.com", "longenough1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)

	_, _, err = svc.Login(ctx, "coach@example.com", "wrong")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	// Unknown accounts fail the same way as bad passwords.
	_, _, err = svc.Login(ctx, "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}
