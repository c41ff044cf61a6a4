package api

import (
	"alcyxob/program-service/internal/domain"
	"alcyxob/program-service/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the program service dependency for workout routes.
type WorkoutHandler struct {
	programService service.ProgramService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(programService service.ProgramService) *WorkoutHandler {
	return &WorkoutHandler{programService: programService}
}

// --- DTOs for API ---

// UpdateMuscleGroupsRequest defines the expected JSON for workout curation.
type UpdateMuscleGroupsRequest struct {
	MuscleGroups []string `json:"muscleGroups" binding:"required"`
}

// WorkoutResponse is the DTO for returning workout details.
type WorkoutResponse struct {
	ID                 string                      `json:"id"`
	Name               string                      `json:"name"`
	DurationMinutes    int                         `json:"durationMinutes"`
	TargetMuscleGroups []string                    `json:"targetMuscleGroups"`
	Exercises          []ExerciseInWorkoutResponse `json:"exercises,omitempty"`
}

type ExerciseInWorkoutResponse struct {
	OrderIndex int    `json:"orderIndex"`
	ExerciseID string `json:"exerciseId"`
	SetType    string `json:"setType"`
	TargetReps string `json:"targetReps"`
	Notes      string `json:"notes,omitempty"`
}

// MapWorkoutToResponse converts a domain.Workout (plus optional mappings) to
// a WorkoutResponse DTO.
func MapWorkoutToResponse(workout *domain.Workout, mappings []domain.ExerciseInWorkout) WorkoutResponse {
	if workout == nil {
		return WorkoutResponse{}
	}
	resp := WorkoutResponse{
		ID:                 workout.ID,
		Name:               workout.Name,
		DurationMinutes:    workout.DurationMinutes,
		TargetMuscleGroups: workout.TargetMuscleGroups,
	}
	if resp.TargetMuscleGroups == nil {
		resp.TargetMuscleGroups = []string{}
	}
	for _, mapping := range mappings {
		resp.Exercises = append(resp.Exercises, ExerciseInWorkoutResponse{
			OrderIndex: mapping.OrderIndex,
			ExerciseID: mapping.ExerciseID,
			SetType:    string(mapping.SetType),
			TargetReps: mapping.TargetReps,
			Notes:      mapping.Notes,
		})
	}
	return resp
}

// --- Handler Methods ---

// GetWorkout handles GET /workouts/:id, returning the workout with its
// ordered exercise mappings.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	detail, err := h.programService.GetWorkout(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch workout.")
		}
		return
	}

	c.JSON(http.StatusOK, MapWorkoutToResponse(&detail.Workout, detail.Exercises))
}

// UpdateMuscleGroups handles PUT /workouts/:id/muscle-groups. Import leaves
// target muscle groups empty; this endpoint is where curators fill them.
func (h *WorkoutHandler) UpdateMuscleGroups(c *gin.Context) {
	var req UpdateMuscleGroupsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	workout, err := h.programService.UpdateWorkoutMuscleGroups(c.Request.Context(), c.Param("id"), req.MuscleGroups)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update workout.")
		}
		return
	}

	c.JSON(http.StatusOK, MapWorkoutToResponse(workout, nil))
}
