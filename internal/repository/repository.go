package repository

import (
	"alcyxob/program-service/internal/domain"
	"alcyxob/program-service/internal/importer"
	"context"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// StorageError wraps an underlying storage failure (failed transaction,
// constraint violation, connection loss). The import transaction guarantees
// no partial writes are visible when one of these surfaces.
type StorageError struct {
	Op  string // The operation that failed, e.g. "apply import"
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ProgramRepository defines read access to imported programs and their phases.
type ProgramRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Program, error)
	List(ctx context.Context) ([]domain.Program, error)
	GetPhases(ctx context.Context, programName string) ([]domain.Phase, error)
}

// WorkoutRepository defines read/update access to workouts and their
// ordered exercise mappings.
type WorkoutRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Workout, error)
	GetExercises(ctx context.Context, workoutID string) ([]domain.ExerciseInWorkout, error)
	GetByPhase(ctx context.Context, programName, phaseName string) ([]domain.Workout, error)
	UpdateTargetMuscleGroups(ctx context.Context, id string, muscleGroups []string) error
}

// ExerciseRepository defines access to the exercise library.
type ExerciseRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Exercise, error)
	List(ctx context.Context, placeholderOnly bool) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
}

// ScheduleRepository defines read access to the day-number -> workout schedule.
type ScheduleRepository interface {
	GetByProgram(ctx context.Context, programName string) ([]domain.ScheduleEntry, error)
}

// ImportStore is the transactional boundary of the import pipeline: it takes
// the expander's relation bundle, materializes placeholder exercises for
// referenced-but-unknown ids, and commits every relation in one transaction.
// Either all writes become visible or none do. All writes are natural-key
// upserts (put-if-absent-or-replace), which is what makes re-import safe.
type ImportStore interface {
	ApplyImport(ctx context.Context, bundle *importer.Bundle) (*domain.ImportResult, error)
	// DeleteProgram removes a program and every relation derived from it,
	// in one transaction.
	DeleteProgram(ctx context.Context, name string) error
}
