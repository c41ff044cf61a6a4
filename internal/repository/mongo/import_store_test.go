package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Two programs scheduling the same day title at the same index share one
// workout id. Deleting one program must keep the shared workout alive so the
// other program's schedule entries keep resolving.
func TestDeletableWorkoutIDs_KeepsSharedWorkouts(t *testing.T) {
	candidates := []string{"push-day-day-1", "rest-day-7"}

	// "rest-day-7" is still scheduled by another program.
	stillReferenced := map[string]bool{"rest-day-7": true}

	assert.Equal(t, []string{"push-day-day-1"}, deletableWorkoutIDs(candidates, stillReferenced))
}

func TestDeletableWorkoutIDs(t *testing.T) {
	testCases := []struct {
		name            string
		candidates      []string
		stillReferenced map[string]bool
		expected        []string
	}{
		{
			name:            "nothing shared",
			candidates:      []string{"a-day-1", "b-day-2"},
			stillReferenced: map[string]bool{},
			expected:        []string{"a-day-1", "b-day-2"},
		},
		{
			name:            "everything shared",
			candidates:      []string{"a-day-1", "b-day-2"},
			stillReferenced: map[string]bool{"a-day-1": true, "b-day-2": true},
			expected:        []string{},
		},
		{
			name:            "no candidates",
			candidates:      nil,
			stillReferenced: map[string]bool{"a-day-1": true},
			expected:        []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, deletableWorkoutIDs(tc.candidates, tc.stillReferenced))
		})
	}
}
