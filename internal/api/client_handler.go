package api

import (
	"errors"
	"fmt"
	"net/http"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/service"

	"github.com/gin-gonic/gin"
)

// ClientHandler manages client profiles and their derived reads.
type ClientHandler struct {
	clientService  service.ClientService
	programService service.ProgramService
	mealService    service.MealService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(
	clientService service.ClientService,
	programService service.ProgramService,
	mealService service.MealService,
) *ClientHandler {
	return &ClientHandler{
		clientService:  clientService,
		programService: programService,
		mealService:    mealService,
	}
}

// --- Request Structs ---

type CreateClientRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	PIN          string `json:"pin"`
	Age          int    `json:"age"`
	FitnessLevel string `json:"fitness_level"`
	Goals        string `json:"goals"`
}

// --- Handler Methods ---

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token")
		return
	}

	client := &domain.Client{
		Name:         req.Name,
		Email:        req.Email,
		PIN:          req.PIN,
		Age:          req.Age,
		FitnessLevel: req.FitnessLevel,
		Goals:        req.Goals,
		TrainerID:    trainerID,
	}

	created, err := h.clientService.CreateClient(c.Request.Context(), client)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPINFormat) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create client")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.clientService.GetClient(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load client")
		}
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var client domain.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	client.ID = c.Param("clientId")

	updated, err := h.clientService.UpdateClient(c.Request.Context(), &client)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrInvalidPINFormat) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update client")
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.clientService.DeleteClient(c.Request.Context(), c.Param("clientId")); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete client")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// GetClientPrograms lists a client's programs. Unknown client IDs yield an
// empty array, never a 404.
func (h *ClientHandler) GetClientPrograms(c *gin.Context) {
	programs, err := h.programService.GetProgramsForClient(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load programs")
		return
	}
	c.JSON(http.StatusOK, programs)
}

// GetNutritionSummary returns the client's nutrition summary. Unknown client
// IDs yield a zeroed summary.
func (h *ClientHandler) GetNutritionSummary(c *gin.Context) {
	summary, err := h.mealService.NutritionSummary(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute nutrition summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}
