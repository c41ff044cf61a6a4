package api

import (
	"alcyxob/program-service/internal/domain"
	"alcyxob/program-service/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the program service dependency for exercise routes.
type ExerciseHandler struct {
	programService service.ProgramService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(programService service.ProgramService) *ExerciseHandler {
	return &ExerciseHandler{programService: programService}
}

// --- DTOs for API (Data Transfer Objects) ---

// UpdateExerciseRequest defines the expected JSON for enriching an exercise.
// Import materializes placeholders with nothing but a humanized name and a
// generic category; curators fill in the rest here.
type UpdateExerciseRequest struct {
	Name             string `json:"name" binding:"required"`
	Category         string `json:"category" binding:"omitempty"`
	Description      string `json:"description" binding:"omitempty"`
	MuscleGroup      string `json:"muscleGroup" binding:"omitempty"`
	Equipment        string `json:"equipment" binding:"omitempty"`
	ExecutionTechnic string `json:"executionTechnic" binding:"omitempty"`
	VideoURL         string `json:"videoUrl" binding:"omitempty,url"`
}

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	Description      string `json:"description,omitempty"`
	MuscleGroup      string `json:"muscleGroup,omitempty"`
	Equipment        string `json:"equipment,omitempty"`
	ExecutionTechnic string `json:"executionTechnic,omitempty"`
	VideoURL         string `json:"videoUrl,omitempty"`
	Placeholder      bool   `json:"placeholder"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:               ex.ID,
		Name:             ex.Name,
		Category:         ex.Category,
		Description:      ex.Description,
		MuscleGroup:      ex.MuscleGroup,
		Equipment:        ex.Equipment,
		ExecutionTechnic: ex.ExecutionTechnic,
		VideoURL:         ex.VideoURL,
		Placeholder:      ex.Placeholder,
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to response DTOs.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

// --- Handler Methods ---

// ListExercises handles GET /exercises. With ?placeholder=true only the
// auto-created rows awaiting curation are returned.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	placeholderOnly := c.Query("placeholder") == "true"

	exercises, err := h.programService.ListExercises(c.Request.Context(), placeholderOnly)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list exercises.")
		return
	}

	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// GetExercise handles GET /exercises/:id.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exercise, err := h.programService.GetExercise(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch exercise.")
		}
		return
	}

	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

// UpdateExercise handles PUT /exercises/:id, the curator enrichment path.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	exercise := &domain.Exercise{
		ID:               c.Param("id"),
		Name:             req.Name,
		Category:         req.Category,
		Description:      req.Description,
		MuscleGroup:      req.MuscleGroup,
		Equipment:        req.Equipment,
		ExecutionTechnic: req.ExecutionTechnic,
		VideoURL:         req.VideoURL,
	}
	if exercise.Category == "" {
		exercise.Category = domain.CategoryStrength
	}

	updated, err := h.programService.UpdateExercise(c.Request.Context(), exercise)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, "Exercise id and name are required.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update exercise.")
		}
		return
	}

	c.JSON(http.StatusOK, MapExerciseToResponse(updated))
}
