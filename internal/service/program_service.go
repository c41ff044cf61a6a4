package service

import (
	"alcyxob/program-service/internal/domain"
	"alcyxob/program-service/internal/repository"
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrProgramNotFound  = errors.New("program not found")
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrValidationFailed = errors.New("validation failed")
)

// ProgramDetail bundles a program with its phase partition.
type ProgramDetail struct {
	Program domain.Program
	Phases  []domain.Phase
}

// WorkoutDetail bundles a workout with its ordered exercise mappings.
type WorkoutDetail struct {
	Workout   domain.Workout
	Exercises []domain.ExerciseInWorkout
}

// ProgramService serves the relations the import pipeline produces to
// downstream consumers, and carries the curation operations import leaves
// open (target muscle groups, placeholder exercise enrichment).
type ProgramService interface {
	// Program queries
	ListPrograms(ctx context.Context) ([]domain.Program, error)
	GetProgram(ctx context.Context, name string) (*ProgramDetail, error)
	GetSchedule(ctx context.Context, programName string) ([]domain.ScheduleEntry, error)
	GetPhaseWorkouts(ctx context.Context, programName, phaseName string) ([]domain.Workout, error)
	DeleteProgram(ctx context.Context, name string) error

	// Workout queries and curation
	GetWorkout(ctx context.Context, id string) (*WorkoutDetail, error)
	UpdateWorkoutMuscleGroups(ctx context.Context, id string, muscleGroups []string) (*domain.Workout, error)

	// Exercise library
	ListExercises(ctx context.Context, placeholderOnly bool) ([]domain.Exercise, error)
	GetExercise(ctx context.Context, id string) (*domain.Exercise, error)
	UpdateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error)
}

// programService implements the ProgramService interface.
type programService struct {
	programRepo  repository.ProgramRepository
	workoutRepo  repository.WorkoutRepository
	exerciseRepo repository.ExerciseRepository
	scheduleRepo repository.ScheduleRepository
	store        repository.ImportStore
}

// NewProgramService creates a new instance of programService.
func NewProgramService(
	programRepo repository.ProgramRepository,
	workoutRepo repository.WorkoutRepository,
	exerciseRepo repository.ExerciseRepository,
	scheduleRepo repository.ScheduleRepository,
	store repository.ImportStore,
) ProgramService {
	return &programService{
		programRepo:  programRepo,
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
		scheduleRepo: scheduleRepo,
		store:        store,
	}
}

// === Program queries ===

func (s *programService) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	return s.programRepo.List(ctx)
}

// GetProgram retrieves one program together with its phases.
func (s *programService) GetProgram(ctx context.Context, name string) (*ProgramDetail, error) {
	program, err := s.programRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	phases, err := s.programRepo.GetPhases(ctx, program.Name)
	if err != nil {
		return nil, err
	}

	return &ProgramDetail{Program: *program, Phases: phases}, nil
}

// GetSchedule retrieves the day-number -> workout mapping of a program,
// ordered by day number. The program must exist.
func (s *programService) GetSchedule(ctx context.Context, programName string) ([]domain.ScheduleEntry, error) {
	if _, err := s.programRepo.GetByName(ctx, programName); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return s.scheduleRepo.GetByProgram(ctx, programName)
}

// GetPhaseWorkouts retrieves the workouts cross-referenced to one phase.
func (s *programService) GetPhaseWorkouts(ctx context.Context, programName, phaseName string) ([]domain.Workout, error) {
	if _, err := s.programRepo.GetByName(ctx, programName); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return s.workoutRepo.GetByPhase(ctx, programName, phaseName)
}

// DeleteProgram removes a program and all relations derived from it.
func (s *programService) DeleteProgram(ctx context.Context, name string) error {
	err := s.store.DeleteProgram(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgramNotFound
		}
		return err
	}
	log.WithField("program", name).Info("program deleted")
	return nil
}

// === Workouts ===

// GetWorkout retrieves a workout with its ordered exercise mappings.
func (s *programService) GetWorkout(ctx context.Context, id string) (*WorkoutDetail, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	exercises, err := s.workoutRepo.GetExercises(ctx, id)
	if err != nil {
		return nil, err
	}

	return &WorkoutDetail{Workout: *workout, Exercises: exercises}, nil
}

// UpdateWorkoutMuscleGroups sets the curated target muscle groups of a
// workout. Blank entries are dropped; duplicates are kept as given.
func (s *programService) UpdateWorkoutMuscleGroups(ctx context.Context, id string, muscleGroups []string) (*domain.Workout, error) {
	cleaned := make([]string, 0, len(muscleGroups))
	for _, group := range muscleGroups {
		group = strings.TrimSpace(group)
		if group != "" {
			cleaned = append(cleaned, group)
		}
	}

	if err := s.workoutRepo.UpdateTargetMuscleGroups(ctx, id, cleaned); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	return s.workoutRepo.GetByID(ctx, id)
}

// === Exercise library ===

func (s *programService) ListExercises(ctx context.Context, placeholderOnly bool) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx, placeholderOnly)
}

func (s *programService) GetExercise(ctx context.Context, id string) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// UpdateExercise applies curator enrichment to an exercise (typically a
// placeholder materialized by import) and clears its placeholder flag.
func (s *programService) UpdateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	if exercise.ID == "" || strings.TrimSpace(exercise.Name) == "" {
		return nil, ErrValidationFailed
	}

	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	return s.exerciseRepo.GetByID(ctx, exercise.ID)
}
