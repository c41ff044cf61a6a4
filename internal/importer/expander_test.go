package importer_test

import (
	"testing"

	"alcyxob/program-service/internal/domain"
	"alcyxob/program-service/internal/importer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mirrors the canonical sample document end to end.
func TestExpand_SampleDocument(t *testing.T) {
	doc := &domain.ProgramDocument{
		Title:        "Sample",
		DurationDays: 7,
		Days: []domain.DaySpec{
			{DayIndex: 1, Title: "Push Day", ExercisesOrder: []string{"bench-press", "incline-db-press"}},
			{DayIndex: 7, Title: "Rest", ExercisesOrder: []string{}},
		},
	}
	require.NoError(t, importer.Validate(doc))

	bundle := importer.Expand(doc)

	assert.Equal(t, domain.Program{Name: "Sample", DurationDays: 7}, bundle.Program)

	require.Len(t, bundle.Phases, 1)
	assert.Equal(t, domain.Phase{
		ProgramName:   "Sample",
		Name:          "Default",
		DurationWeeks: 1,
	}, bundle.Phases[0])

	require.Len(t, bundle.Workouts, 2)
	assert.Equal(t, "push-day-day-1", bundle.Workouts[0].ID)
	assert.Equal(t, "Push Day", bundle.Workouts[0].Name)
	assert.Equal(t, "rest-day-7", bundle.Workouts[1].ID)

	assert.Equal(t, []domain.ScheduleEntry{
		{ProgramName: "Sample", DayNumber: 1, WorkoutID: "push-day-day-1"},
		{ProgramName: "Sample", DayNumber: 7, WorkoutID: "rest-day-7"},
	}, bundle.ScheduleEntries)

	assert.Equal(t, []domain.PhaseWorkoutRef{
		{ProgramName: "Sample", PhaseName: "Default", WorkoutID: "push-day-day-1"},
		{ProgramName: "Sample", PhaseName: "Default", WorkoutID: "rest-day-7"},
	}, bundle.PhaseWorkoutRefs)

	require.Len(t, bundle.ExerciseMappings, 2)
	assert.Equal(t, domain.ExerciseInWorkout{
		WorkoutID:  "push-day-day-1",
		OrderIndex: 0,
		ExerciseID: "bench-press",
		SetType:    domain.SetTypeSingle,
		TargetReps: "",
	}, bundle.ExerciseMappings[0])
	assert.Equal(t, 1, bundle.ExerciseMappings[1].OrderIndex)
	assert.Equal(t, "incline-db-press", bundle.ExerciseMappings[1].ExerciseID)

	assert.Equal(t, []string{"bench-press", "incline-db-press"}, bundle.ReferencedExerciseIDs)
}

func TestExpand_DefaultPhaseWeeks(t *testing.T) {
	testCases := []struct {
		durationDays  int
		expectedWeeks int
	}{
		{durationDays: 7, expectedWeeks: 1},
		{durationDays: 10, expectedWeeks: 2},
		{durationDays: 14, expectedWeeks: 2},
		{durationDays: 15, expectedWeeks: 3},
		{durationDays: 1, expectedWeeks: 1},
	}

	for _, tc := range testCases {
		doc := &domain.ProgramDocument{
			Title:        "P",
			DurationDays: tc.durationDays,
			Days:         []domain.DaySpec{{DayIndex: 1, Title: "A"}},
		}
		bundle := importer.Expand(doc)
		require.Len(t, bundle.Phases, 1)
		assert.Equal(t, tc.expectedWeeks, bundle.Phases[0].DurationWeeks,
			"durationDays=%d", tc.durationDays)
	}
}

func TestExpand_ExplicitPhasesAttachToFirst(t *testing.T) {
	doc := &domain.ProgramDocument{
		Title:        "Two Phase",
		DurationDays: 28,
		Phases: []domain.PhaseSpec{
			{Name: " Base ", DurationWeeks: 2, Days: []int{1}},
			{Name: "Peak", DurationWeeks: 2, Days: []int{15}},
		},
		Days: []domain.DaySpec{
			{DayIndex: 1, Title: "Volume"},
			{DayIndex: 15, Title: "Intensity"},
		},
	}

	bundle := importer.Expand(doc)

	require.Len(t, bundle.Phases, 2)
	assert.Equal(t, "Base", bundle.Phases[0].Name)
	assert.Equal(t, "Peak", bundle.Phases[1].Name)

	// Every workout cross-references the first declared phase.
	for _, ref := range bundle.PhaseWorkoutRefs {
		assert.Equal(t, "Base", ref.PhaseName)
	}
}

func TestExpand_DaysSortedByIndex(t *testing.T) {
	doc := &domain.ProgramDocument{
		Title:        "Unordered",
		DurationDays: 10,
		Days: []domain.DaySpec{
			{DayIndex: 9, Title: "Late"},
			{DayIndex: 2, Title: "Early"},
			{DayIndex: 5, Title: "Mid"},
		},
	}

	bundle := importer.Expand(doc)

	dayNumbers := make([]int, 0, len(bundle.ScheduleEntries))
	for _, entry := range bundle.ScheduleEntries {
		dayNumbers = append(dayNumbers, entry.DayNumber)
	}
	assert.Equal(t, []int{2, 5, 9}, dayNumbers)
}

func TestExpand_ExerciseIDsDedupedAcrossDays(t *testing.T) {
	doc := &domain.ProgramDocument{
		Title:        "Dedup",
		DurationDays: 7,
		Days: []domain.DaySpec{
			{DayIndex: 1, Title: "A", ExercisesOrder: []string{"squat", "bench-press"}},
			{DayIndex: 2, Title: "B", ExercisesOrder: []string{"bench-press", " squat ", "", "deadlift"}},
		},
	}

	bundle := importer.Expand(doc)

	// Deduped across the whole document, first-seen order; blanks skipped.
	assert.Equal(t, []string{"squat", "bench-press", "deadlift"}, bundle.ReferencedExerciseIDs)

	// Mapping rows are per workout slot, not deduped, with dense order indices.
	require.Len(t, bundle.ExerciseMappings, 5)
	assert.Equal(t, 0, bundle.ExerciseMappings[2].OrderIndex)
	assert.Equal(t, "squat", bundle.ExerciseMappings[3].ExerciseID)
	assert.Equal(t, 1, bundle.ExerciseMappings[3].OrderIndex)
	assert.Equal(t, "deadlift", bundle.ExerciseMappings[4].ExerciseID)
	assert.Equal(t, 2, bundle.ExerciseMappings[4].OrderIndex)
}

// Re-expanding the same document must produce a deeply equal bundle; this is
// the property idempotent re-import rests on.
func TestExpand_Deterministic(t *testing.T) {
	doc := &domain.ProgramDocument{
		Title:        "Sample",
		DurationDays: 14,
		Days: []domain.DaySpec{
			{DayIndex: 3, Title: "Pull (Back & Biceps)", ExercisesOrder: []string{"barbell-row", "chin-up"}},
			{DayIndex: 1, Title: "Push Day", DurationMinutes: 45, ExercisesOrder: []string{"bench-press"}},
		},
	}

	first := importer.Expand(doc)
	second := importer.Expand(doc)
	assert.Equal(t, first, second)
}
