package api

import (
	"errors"
	"fmt"
	"net/http"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgramHandler manages workout programs and the exercise library.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// --- Request Structs ---

type CompleteRequest struct {
	Completed *bool `json:"completed"`
}

// completedOrDefault returns the flag, defaulting to true when omitted.
func (r CompleteRequest) completedOrDefault() bool {
	if r.Completed == nil {
		return true
	}
	return *r.Completed
}

// --- Handler Methods ---

func (h *ProgramHandler) ListPrograms(c *gin.Context) {
	if clientID := c.Query("client_id"); clientID != "" {
		programs, err := h.programService.GetProgramsForClient(c.Request.Context(), clientID)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "Failed to load programs")
			return
		}
		c.JSON(http.StatusOK, programs)
		return
	}

	programs, err := h.programService.ListPrograms(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load programs")
		return
	}
	c.JSON(http.StatusOK, programs)
}

func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	var program domain.Program
	if err := c.ShouldBindJSON(&program); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token")
		return
	}
	program.TrainerID = trainerID

	created, err := h.programService.CreateProgram(c.Request.Context(), &program)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create program")
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProgramHandler) GetProgram(c *gin.Context) {
	program, err := h.programService.GetProgram(c.Request.Context(), c.Param("programId"))
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load program")
		}
		return
	}
	c.JSON(http.StatusOK, program)
}

func (h *ProgramHandler) UpdateProgram(c *gin.Context) {
	var program domain.Program
	if err := c.ShouldBindJSON(&program); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	program.ID = c.Param("programId")

	updated, err := h.programService.UpdateProgram(c.Request.Context(), &program)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update program")
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ProgramHandler) DeleteProgram(c *gin.Context) {
	if err := h.programService.DeleteProgram(c.Request.Context(), c.Param("programId")); err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete program")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// GetProgramsForClient lists programs for one client (empty array for
// unknown IDs).
func (h *ProgramHandler) GetProgramsForClient(c *gin.Context) {
	programs, err := h.programService.GetProgramsForClient(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load programs")
		return
	}
	c.JSON(http.StatusOK, programs)
}

// MarkExerciseCompleted flags one exercise within a program as done (or not).
func (h *ProgramHandler) MarkExerciseCompleted(c *gin.Context) {
	var req CompleteRequest
	// An empty body means "completed".
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.programService.MarkExerciseCompleted(
		c.Request.Context(),
		c.Param("programId"),
		c.Param("exerciseId"),
		req.completedOrDefault(),
	)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update exercise")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Exercise Library ---

func (h *ProgramHandler) ListExercises(c *gin.Context) {
	exercises, err := h.programService.ListExercises(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load exercises")
		return
	}
	c.JSON(http.StatusOK, exercises)
}

func (h *ProgramHandler) CreateExercise(c *gin.Context) {
	var exercise domain.Exercise
	if err := c.ShouldBindJSON(&exercise); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token")
		return
	}
	exercise.TrainerID = trainerID

	created, err := h.programService.CreateExercise(c.Request.Context(), &exercise)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create exercise")
		return
	}
	c.JSON(http.StatusCreated, created)
}
