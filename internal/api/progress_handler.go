package api

import (
	"fmt"
	"net/http"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgressHandler manages progress entries and goals.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// GetGoals lists goals for ?client_id=. Clients with no goals get an empty
// array, not an error.
func (h *ProgressHandler) GetGoals(c *gin.Context) {
	clientID := c.Query("client_id")
	if clientID == "" {
		abortWithError(c, http.StatusBadRequest, "client_id query parameter is required")
		return
	}

	goals, err := h.progressService.GetGoalsForClient(c.Request.Context(), clientID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load goals")
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (h *ProgressHandler) AddGoal(c *gin.Context) {
	var goal domain.Goal
	if err := c.ShouldBindJSON(&goal); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	created, err := h.progressService.AddGoal(c.Request.Context(), &goal)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create goal")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetEntries lists progress entries for ?client_id=.
func (h *ProgressHandler) GetEntries(c *gin.Context) {
	clientID := c.Query("client_id")
	if clientID == "" {
		abortWithError(c, http.StatusBadRequest, "client_id query parameter is required")
		return
	}

	entries, err := h.progressService.GetEntriesForClient(c.Request.Context(), clientID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load progress entries")
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *ProgressHandler) AddEntry(c *gin.Context) {
	var entry domain.ProgressEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	created, err := h.progressService.AddEntry(c.Request.Context(), &entry)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create progress entry")
		return
	}
	c.JSON(http.StatusCreated, created)
}
