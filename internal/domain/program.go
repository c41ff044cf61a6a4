// internal/domain/program.go
package domain

import (
	"time"
)

// Program represents a named, fixed-length training plan.
// Its Name is the natural key: re-importing a document with the same
// title replaces the existing rows instead of duplicating them.
type Program struct {
	Name         string    `bson:"_id" json:"name"` // Trimmed document title
	DurationDays int       `bson:"durationDays" json:"durationDays"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	Author       string    `bson:"author,omitempty" json:"author,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Phase is a named sub-interval of a program, keyed by (ProgramName, Name).
// A document without explicit phases gets a single synthetic phase named
// DefaultPhaseName spanning the whole program.
type Phase struct {
	ProgramName   string `bson:"programName" json:"programName"`
	Name          string `bson:"name" json:"name"`
	DurationWeeks int    `bson:"durationWeeks" json:"durationWeeks"`
}

// DefaultPhaseName is the name of the synthesized phase for documents
// that declare no phases of their own.
const DefaultPhaseName = "Default"

// ScheduleEntry maps one day of a program to the workout performed that day.
// Keyed by (ProgramName, DayNumber); DayNumber is 1-based.
type ScheduleEntry struct {
	ProgramName string `bson:"programName" json:"programName"`
	DayNumber   int    `bson:"dayNumber" json:"dayNumber"`
	WorkoutID   string `bson:"workoutId" json:"workoutId"`
}

// PhaseWorkoutRef is the many-to-many join between phases and workouts,
// keyed by (ProgramName, PhaseName, WorkoutID).
type PhaseWorkoutRef struct {
	ProgramName string `bson:"programName" json:"programName"`
	PhaseName   string `bson:"phaseName" json:"phaseName"`
	WorkoutID   string `bson:"workoutId" json:"workoutId"`
}

// ImportResult summarizes a successful program import.
type ImportResult struct {
	ProgramName     string `json:"programName"`
	DaysImported    int    `json:"daysImported"`
	WorkoutsCreated int    `json:"workoutsCreated"`
	ExercisesLinked int    `json:"exercisesLinked"`
}
