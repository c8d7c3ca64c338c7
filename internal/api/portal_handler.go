package api

import (
	"errors"
	"fmt"
	"net/http"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/service"

	"github.com/gin-gonic/gin"
)

// PortalHandler backs the PIN-based client portal.
type PortalHandler struct {
	portalService service.PortalService
}

// NewPortalHandler creates a new PortalHandler.
func NewPortalHandler(portalService service.PortalService) *PortalHandler {
	return &PortalHandler{portalService: portalService}
}

// --- Request/Response Structs ---

type PinLoginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

type PinLoginResponse struct {
	Success     bool           `json:"success"`
	Client      *domain.Client `json:"client"`
	RedirectURL string         `json:"redirect_url"`
}

// PinLogin validates a 6-digit PIN and resolves the client it identifies.
// Format errors are 400 and happen before any lookup; an unknown PIN is 401.
func (h *PortalHandler) PinLogin(c *gin.Context) {
	var req PinLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	result, err := h.portalService.PinLogin(c.Request.Context(), req.PIN)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPINFormat) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else if errors.Is(err, service.ErrInvalidPIN) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during PIN login")
		}
		return
	}

	c.JSON(http.StatusOK, PinLoginResponse{
		Success:     true,
		Client:      result.Client,
		RedirectURL: result.RedirectURL,
	})
}
