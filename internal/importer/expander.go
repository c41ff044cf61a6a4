package importer

import (
	"sort"
	"strings"

	"alcyxob/program-service/internal/domain"
)

// Bundle is the normalized relation set produced by expanding one validated
// program document. It is everything the storage facade needs to commit the
// import in a single transaction.
type Bundle struct {
	Program          domain.Program
	Phases           []domain.Phase
	Workouts         []domain.Workout
	ScheduleEntries  []domain.ScheduleEntry
	PhaseWorkoutRefs []domain.PhaseWorkoutRef
	ExerciseMappings []domain.ExerciseInWorkout

	// ReferencedExerciseIDs is the deduplicated set of exercise ids the
	// document references, in first-seen order. The storage facade
	// materializes placeholder Exercise rows for any id not already present.
	ReferencedExerciseIDs []string
}

// Expand deterministically turns a validated document into a Bundle.
// It is a pure function: no I/O, no clock, no randomness — the same
// document always expands to the same relations, which is what makes
// re-import idempotent and the pipeline trivially testable.
//
// Expand assumes Validate has already passed; feeding it an unvalidated
// document gives undefined (but non-panicking) results.
func Expand(doc *domain.ProgramDocument) *Bundle {
	programName := strings.TrimSpace(doc.Title)

	bundle := &Bundle{
		Program: domain.Program{
			Name:         programName,
			DurationDays: doc.DurationDays,
			Description:  strings.TrimSpace(doc.Description),
			Author:       strings.TrimSpace(doc.Author),
		},
	}

	// Phase partition: explicit phases map through, otherwise a single
	// synthetic "Default" phase spanning the whole program.
	if len(doc.Phases) > 0 {
		for _, p := range doc.Phases {
			bundle.Phases = append(bundle.Phases, domain.Phase{
				ProgramName:   programName,
				Name:          strings.TrimSpace(p.Name),
				DurationWeeks: p.DurationWeeks,
			})
		}
	} else {
		bundle.Phases = []domain.Phase{{
			ProgramName:   programName,
			Name:          domain.DefaultPhaseName,
			DurationWeeks: (doc.DurationDays + 6) / 7, // ceil(days/7)
		}}
	}

	// Every workout attaches to the first declared phase. The per-phase
	// day lists in the document are not consulted here; see the multi-phase
	// note in DESIGN.md.
	firstPhaseName := bundle.Phases[0].Name

	days := make([]domain.DaySpec, len(doc.Days))
	copy(days, doc.Days)
	sort.Slice(days, func(i, j int) bool { return days[i].DayIndex < days[j].DayIndex })

	seenExercise := make(map[string]bool)

	for _, day := range days {
		dayTitle := strings.TrimSpace(day.Title)
		workoutID := WorkoutID(day.Title, day.DayIndex)

		bundle.Workouts = append(bundle.Workouts, domain.Workout{
			ID:                 workoutID,
			Name:               dayTitle,
			DurationMinutes:    day.DurationMinutes,
			TargetMuscleGroups: []string{},
		})
		bundle.ScheduleEntries = append(bundle.ScheduleEntries, domain.ScheduleEntry{
			ProgramName: programName,
			DayNumber:   day.DayIndex,
			WorkoutID:   workoutID,
		})
		bundle.PhaseWorkoutRefs = append(bundle.PhaseWorkoutRefs, domain.PhaseWorkoutRef{
			ProgramName: programName,
			PhaseName:   firstPhaseName,
			WorkoutID:   workoutID,
		})

		orderIndex := 0
		for _, ref := range day.ExercisesOrder {
			exerciseID := strings.TrimSpace(ref)
			if exerciseID == "" {
				continue
			}
			if !seenExercise[exerciseID] {
				seenExercise[exerciseID] = true
				bundle.ReferencedExerciseIDs = append(bundle.ReferencedExerciseIDs, exerciseID)
			}
			bundle.ExerciseMappings = append(bundle.ExerciseMappings, domain.ExerciseInWorkout{
				WorkoutID:  workoutID,
				OrderIndex: orderIndex,
				ExerciseID: exerciseID,
				SetType:    domain.SetTypeSingle,
				TargetReps: "", // The document format carries no rep targets
			})
			orderIndex++
		}
	}

	return bundle
}
