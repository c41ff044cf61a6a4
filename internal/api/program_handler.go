package api

import (
	"alcyxob/program-service/internal/domain"
	"alcyxob/program-service/internal/importer"
	"alcyxob/program-service/internal/repository"
	"alcyxob/program-service/internal/service"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProgramHandler holds the import and query service dependencies.
type ProgramHandler struct {
	importService    service.ImportService
	programService   service.ProgramService
	maxDocumentBytes int64
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(importService service.ImportService, programService service.ProgramService, maxDocumentBytes int64) *ProgramHandler {
	return &ProgramHandler{
		importService:    importService,
		programService:   programService,
		maxDocumentBytes: maxDocumentBytes,
	}
}

// --- DTOs for API (Data Transfer Objects) ---

// ProgramResponse is the DTO for returning program details.
type ProgramResponse struct {
	Name         string          `json:"name"`
	DurationDays int             `json:"durationDays"`
	Description  string          `json:"description,omitempty"`
	Author       string          `json:"author,omitempty"`
	Phases       []PhaseResponse `json:"phases,omitempty"`
}

type PhaseResponse struct {
	Name          string `json:"name"`
	DurationWeeks int    `json:"durationWeeks"`
}

type ScheduleEntryResponse struct {
	DayNumber int    `json:"dayNumber"`
	WorkoutID string `json:"workoutId"`
}

// MapProgramToResponse converts a domain.Program (plus optional phases) to a
// ProgramResponse DTO.
func MapProgramToResponse(program *domain.Program, phases []domain.Phase) ProgramResponse {
	if program == nil {
		return ProgramResponse{}
	}
	resp := ProgramResponse{
		Name:         program.Name,
		DurationDays: program.DurationDays,
		Description:  program.Description,
		Author:       program.Author,
	}
	for _, phase := range phases {
		resp.Phases = append(resp.Phases, PhaseResponse{
			Name:          phase.Name,
			DurationWeeks: phase.DurationWeeks,
		})
	}
	return resp
}

// --- Handler Methods ---

// ImportProgram handles POST /programs/import. The body is the raw program
// document; the response is the import summary or a kinded error.
func (h *ProgramHandler) ImportProgram(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, h.maxDocumentBytes+1))
	if err != nil {
		abortWithErrorKind(c, http.StatusBadRequest, "parse", "Could not read request body.")
		return
	}
	if int64(len(raw)) > h.maxDocumentBytes {
		abortWithErrorKind(c, http.StatusBadRequest, "parse", "Program document exceeds the maximum allowed size.")
		return
	}

	result, err := h.importService.ImportProgram(c.Request.Context(), raw)
	if err != nil {
		var parseErr *importer.ParseError
		var validationErr *importer.ValidationError
		var storageErr *repository.StorageError
		switch {
		case errors.As(err, &parseErr):
			abortWithErrorKind(c, http.StatusBadRequest, "parse", parseErr.Error())
		case errors.As(err, &validationErr):
			abortWithErrorKind(c, http.StatusBadRequest, "validation", validationErr.Error())
		case errors.As(err, &storageErr):
			abortWithErrorKind(c, http.StatusInternalServerError, "storage", "Import could not be committed.")
		default:
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during import.")
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListPrograms handles GET /programs.
func (h *ProgramHandler) ListPrograms(c *gin.Context) {
	programs, err := h.programService.ListPrograms(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list programs.")
		return
	}

	responses := make([]ProgramResponse, 0, len(programs))
	for i := range programs {
		responses = append(responses, MapProgramToResponse(&programs[i], nil))
	}
	c.JSON(http.StatusOK, responses)
}

// GetProgram handles GET /programs/:name.
func (h *ProgramHandler) GetProgram(c *gin.Context) {
	detail, err := h.programService.GetProgram(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, "Program not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch program.")
		}
		return
	}

	c.JSON(http.StatusOK, MapProgramToResponse(&detail.Program, detail.Phases))
}

// GetSchedule handles GET /programs/:name/schedule.
func (h *ProgramHandler) GetSchedule(c *gin.Context) {
	entries, err := h.programService.GetSchedule(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, "Program not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch schedule.")
		}
		return
	}

	responses := make([]ScheduleEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ScheduleEntryResponse{
			DayNumber: entry.DayNumber,
			WorkoutID: entry.WorkoutID,
		})
	}
	c.JSON(http.StatusOK, responses)
}

// GetPhaseWorkouts handles GET /programs/:name/phases/:phase/workouts.
func (h *ProgramHandler) GetPhaseWorkouts(c *gin.Context) {
	workouts, err := h.programService.GetPhaseWorkouts(c.Request.Context(), c.Param("name"), c.Param("phase"))
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, "Program not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch phase workouts.")
		}
		return
	}

	responses := make([]WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		responses = append(responses, MapWorkoutToResponse(&workouts[i], nil))
	}
	c.JSON(http.StatusOK, responses)
}

// DeleteProgram handles DELETE /programs/:name.
func (h *ProgramHandler) DeleteProgram(c *gin.Context) {
	err := h.programService.DeleteProgram(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, "Program not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete program.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
