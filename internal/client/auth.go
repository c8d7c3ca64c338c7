package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"fitnesspr/portal/internal/domain"
)

// --- Error Definitions ---
var (
	ErrNotAuthenticated = errors.New("not authenticated: no token stored")
	ErrInvalidPINFormat = errors.New("PIN must be exactly 6 digits")
)

// AuthUser is the normalized account view the dashboards work with.
type AuthUser struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  domain.Role `json:"role"`
}

// LoginResult carries the stored token and the resolved user.
type LoginResult struct {
	Token string
	User  AuthUser
}

// RegisterParams are the fields for a new account.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// PinLoginResult is the portal's response to a valid PIN.
type PinLoginResult struct {
	Success     bool           `json:"success"`
	Client      *domain.Client `json:"client"`
	RedirectURL string         `json:"redirect_url"`
}

// AuthService wraps login, registration and current-user calls, and owns the
// bearer token the other services attach.
type AuthService struct {
	c *Client
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login authenticates with the OAuth2 password-grant form contract, stores
// the bearer token, then resolves the user via /auth/me.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var tok tokenResponse
	if err := s.c.do(ctx, http.MethodPost, "/auth/login", form, &tok); err != nil {
		return nil, err
	}
	s.c.tokens.SetToken(tok.AccessToken)

	user, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: tok.AccessToken, User: *user}, nil
}

// Register creates the account, then logs in with the same credentials —
// the registration endpoint alone does not authenticate.
func (s *AuthService) Register(ctx context.Context, params RegisterParams) (*LoginResult, error) {
	body := map[string]any{
		"email":      params.Email,
		"password":   params.Password,
		"full_name":  params.Name,
		"is_trainer": params.Role == domain.RoleTrainer,
	}
	if err := s.c.do(ctx, http.MethodPost, "/auth/register", body, nil); err != nil {
		return nil, err
	}
	return s.Login(ctx, params.Email, params.Password)
}

// CurrentUser fetches and normalizes the authenticated user. A 401 clears
// the stored token (stale-token cleanup) before the error is returned.
func (s *AuthService) CurrentUser(ctx context.Context) (*AuthUser, error) {
	if !s.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	var payload domain.User
	if err := s.c.do(ctx, http.MethodGet, "/auth/me", nil, &payload); err != nil {
		if IsStatus(err, http.StatusUnauthorized) {
			s.c.tokens.Clear()
		}
		return nil, err
	}

	user := mapAuthUser(payload)
	return &user, nil
}

// PinLogin validates the PIN format locally before any network call, then
// resolves the client it identifies.
func (s *AuthService) PinLogin(ctx context.Context, pin string) (*PinLoginResult, error) {
	if !domain.ValidPIN(pin) {
		return nil, ErrInvalidPINFormat
	}

	var result PinLoginResult
	body := map[string]string{"pin": pin}
	if err := s.c.do(ctx, http.MethodPost, "/auth/pin-login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout clears the stored token. No server call is made.
func (s *AuthService) Logout() {
	s.c.tokens.Clear()
}

// Token returns the stored bearer token, or "" when unauthenticated.
func (s *AuthService) Token() string {
	return s.c.tokens.Token()
}

// IsAuthenticated reports whether a token is stored.
func (s *AuthService) IsAuthenticated() bool {
	return s.c.tokens.Token() != ""
}

// AuthHeader returns the headers other callers attach: empty when
// unauthenticated, else the bearer Authorization header.
func (s *AuthService) AuthHeader() map[string]string {
	token := s.c.tokens.Token()
	if token == "" {
		return map[string]string{}
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

// mapAuthUser normalizes the backend account shape: is_superuser wins over
// is_trainer, everything else is a client.
func mapAuthUser(u domain.User) AuthUser {
	return AuthUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.FullName,
		Role:  u.Role(),
	}
}
