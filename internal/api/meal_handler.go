package api

import (
	"errors"
	"fmt"
	"net/http"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/service"

	"github.com/gin-gonic/gin"
)

// MealHandler manages meal plans.
type MealHandler struct {
	mealService service.MealService
}

// NewMealHandler creates a new MealHandler.
func NewMealHandler(mealService service.MealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

// ListMealPlans lists meal plans, optionally filtered by client_id.
func (h *MealHandler) ListMealPlans(c *gin.Context) {
	if clientID := c.Query("client_id"); clientID != "" {
		plans, err := h.mealService.GetMealPlansForClient(c.Request.Context(), clientID)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "Failed to load meal plans")
			return
		}
		c.JSON(http.StatusOK, plans)
		return
	}

	plans, err := h.mealService.ListMealPlans(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load meal plans")
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *MealHandler) CreateMealPlan(c *gin.Context) {
	var plan domain.MealPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token")
		return
	}
	plan.TrainerID = trainerID

	created, err := h.mealService.CreateMealPlan(c.Request.Context(), &plan)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create meal plan")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *MealHandler) GetMealPlan(c *gin.Context) {
	plan, err := h.mealService.GetMealPlan(c.Request.Context(), c.Param("planId"))
	if err != nil {
		if errors.Is(err, service.ErrMealPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load meal plan")
		}
		return
	}
	c.JSON(http.StatusOK, plan)
}

// MarkMealCompleted flags one meal within a plan as eaten (or not).
func (h *MealHandler) MarkMealCompleted(c *gin.Context) {
	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.mealService.MarkMealCompleted(
		c.Request.Context(),
		c.Param("planId"),
		c.Param("mealId"),
		req.completedOrDefault(),
	)
	if err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update meal")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
