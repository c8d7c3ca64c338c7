package api

import (
	"fmt"
	"net/http"
	"time"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionHandler manages scheduled training sessions.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func (h *SessionHandler) ListSessions(c *gin.Context) {
	sessions, err := h.sessionService.ListSessions(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load sessions")
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// TodaySessions lists the sessions scheduled for the current calendar day.
func (h *SessionHandler) TodaySessions(c *gin.Context) {
	sessions, err := h.sessionService.TodaySessions(c.Request.Context(), time.Now().UTC())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load sessions")
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	var session domain.Session
	if err := c.ShouldBindJSON(&session); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token")
		return
	}
	session.TrainerID = trainerID

	created, err := h.sessionService.CreateSession(c.Request.Context(), &session)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create session")
		return
	}
	c.JSON(http.StatusCreated, created)
}
