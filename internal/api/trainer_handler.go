package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/service"

	"github.com/gin-gonic/gin"
)

// TrainerHandler serves trainer lookups, payments, and dashboard statistics.
type TrainerHandler struct {
	clientService     service.ClientService
	paymentService    service.PaymentService
	statisticsService service.StatisticsService
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(
	clientService service.ClientService,
	paymentService service.PaymentService,
	statisticsService service.StatisticsService,
) *TrainerHandler {
	return &TrainerHandler{
		clientService:     clientService,
		paymentService:    paymentService,
		statisticsService: statisticsService,
	}
}

// GetTrainer resolves a trainer by ID; unknown IDs return 404.
func (h *TrainerHandler) GetTrainer(c *gin.Context) {
	trainer, err := h.clientService.GetTrainer(c.Request.Context(), c.Param("trainerId"))
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load trainer")
		}
		return
	}
	c.JSON(http.StatusOK, trainer)
}

// GetManagedClients lists the authenticated trainer's clients.
func (h *TrainerHandler) GetManagedClients(c *gin.Context) {
	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token")
		return
	}

	clients, err := h.clientService.GetManagedClients(c.Request.Context(), trainerID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// TrainerStats serves the authenticated trainer's dashboard statistics.
func (h *TrainerHandler) TrainerStats(c *gin.Context) {
	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token")
		return
	}

	stats, err := h.statisticsService.TrainerStats(c.Request.Context(), trainerID, time.Now().UTC())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListPayments lists payments, optionally filtered by client_id.
func (h *TrainerHandler) ListPayments(c *gin.Context) {
	if clientID := c.Query("client_id"); clientID != "" {
		payments, err := h.paymentService.GetPaymentsForClient(c.Request.Context(), clientID)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "Failed to load payments")
			return
		}
		c.JSON(http.StatusOK, payments)
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// RecordPayment records a payment from a client.
func (h *TrainerHandler) RecordPayment(c *gin.Context) {
	var payment domain.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token")
		return
	}
	payment.TrainerID = trainerID

	created, err := h.paymentService.RecordPayment(c.Request.Context(), &payment)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, created)
}
