package service

import (
	"context"
	"errors"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/repository"
)

// --- Error Definitions ---
var (
	ErrInvalidPINFormat = errors.New("PIN must be exactly 6 digits")
	ErrInvalidPIN       = errors.New("Invalid PIN")
)

// PinLoginResult is returned on a successful PIN login.
type PinLoginResult struct {
	Client      *domain.Client
	RedirectURL string
}

// PortalService backs the client portal's PIN-based access.
type PortalService interface {
	PinLogin(ctx context.Context, pin string) (*PinLoginResult, error)
}

type portalService struct {
	clientRepo repository.ClientRepository
}

// NewPortalService creates a new instance of portalService.
func NewPortalService(clientRepo repository.ClientRepository) PortalService {
	return &portalService{clientRepo: clientRepo}
}

// PinLogin validates the PIN format before any lookup, then resolves the
// client record it identifies. The redirect URL points the portal at the
// client's dashboard.
func (s *portalService) PinLogin(ctx context.Context, pin string) (*PinLoginResult, error) {
	if !domain.ValidPIN(pin) {
		return nil, ErrInvalidPINFormat
	}

	client, err := s.clientRepo.GetByPIN(ctx, pin)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidPIN
		}
		return nil, err
	}

	return &PinLoginResult{
		Client:      client,
		RedirectURL: "/client/" + pin,
	}, nil
}
