package importer_test

import (
	"testing"

	"alcyxob/program-service/internal/importer"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"Push Day", "push-day"},
		{"  Leg   Day  ", "leg-day"},
		{"UPPER", "upper"},
		{"a/b\\c", "a-b-c"},
		{"5x5 Strength!", "5x5-strength"},
		{"---", ""},
		{"", ""},
		{"Pull (Back & Biceps)", "pull-back-biceps"},
		{"day_3", "day-3"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, importer.Slugify(tc.in))
		})
	}
}

func TestWorkoutID(t *testing.T) {
	assert.Equal(t, "push-day-day-1", importer.WorkoutID("Push Day", 1))
	assert.Equal(t, "rest-day-7", importer.WorkoutID("Rest", 7))
	assert.Equal(t, "rest-day-7", importer.WorkoutID("  Rest  ", 7))
}

// Workout ids feed natural keys, so two runs over the same input must
// produce byte-identical output.
func TestWorkoutIDDeterministic(t *testing.T) {
	titles := []string{"Push Day", "Pull (Back & Biceps)", "5x5", "rest", "Día de piernas"}
	for _, title := range titles {
		for dayIndex := 1; dayIndex <= 3; dayIndex++ {
			first := importer.WorkoutID(title, dayIndex)
			second := importer.WorkoutID(title, dayIndex)
			assert.Equal(t, first, second)
		}
	}
}

func TestHumanizeExerciseID(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"barbell-row", "Barbell Row"},
		{"incline-db-press", "Incline Db Press"},
		{"bench-press", "Bench Press"},
		{"squat", "Squat"},
		{"pull_up", "Pull Up"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, importer.HumanizeExerciseID(tc.in))
	}
}
