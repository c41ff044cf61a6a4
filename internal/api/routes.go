package api

import (
	"alcyxob/program-service/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the import pipeline and the downstream query surface
// onto the router.
func SetupRoutes(
	router *gin.Engine,
	importService service.ImportService,
	programService service.ProgramService,
	maxDocumentBytes int64,
) {
	programHandler := NewProgramHandler(importService, programService, maxDocumentBytes)
	workoutHandler := NewWorkoutHandler(programService)
	exerciseHandler := NewExerciseHandler(programService)

	router.Use(RequestIDMiddleware(), RequestLogMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		programGroup := apiV1.Group("/programs")
		{
			programGroup.POST("/import", programHandler.ImportProgram)
			programGroup.GET("", programHandler.ListPrograms)
			programGroup.GET("/:name", programHandler.GetProgram)
			programGroup.GET("/:name/schedule", programHandler.GetSchedule)
			programGroup.GET("/:name/phases/:phase/workouts", programHandler.GetPhaseWorkouts)
			programGroup.DELETE("/:name", programHandler.DeleteProgram)
		}

		workoutGroup := apiV1.Group("/workouts")
		{
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.PUT("/:id/muscle-groups", workoutHandler.UpdateMuscleGroups)
		}

		exerciseGroup := apiV1.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
			exerciseGroup.PUT("/:id", exerciseHandler.UpdateExercise)
		}
	}
}
