package importer_test

import (
	"testing"

	"alcyxob/program-service/internal/importer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	raw := []byte(`{
		"version": "1",
		"title": "Sample",
		"durationDays": 7,
		"phases": [{"name": "Base", "durationWeeks": 1, "days": [1, 7]}],
		"days": [
			{"dayIndex": 1, "title": "Push Day", "exercisesOrder": ["bench-press"]},
			{"dayIndex": 7, "title": "Rest", "rest_day": true}
		]
	}`)

	doc, err := importer.ParseDocument(raw)
	require.NoError(t, err)

	assert.Equal(t, "Sample", doc.Title)
	assert.Equal(t, 7, doc.DurationDays)
	require.Len(t, doc.Phases, 1)
	assert.Equal(t, "Base", doc.Phases[0].Name)
	assert.Equal(t, []int{1, 7}, doc.Phases[0].Days)
	require.Len(t, doc.Days, 2)
	assert.Equal(t, []string{"bench-press"}, doc.Days[0].ExercisesOrder)
	assert.True(t, doc.Days[1].RestDay)
}

func TestParseDocument_Errors(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: `{nope`},
		{name: "missing title", raw: `{"durationDays":7,"days":[{"dayIndex":1,"title":"A"}]}`},
		{name: "missing durationDays", raw: `{"title":"X","days":[{"dayIndex":1,"title":"A"}]}`},
		{name: "missing days", raw: `{"title":"X","durationDays":7}`},
		{name: "wrong type for durationDays", raw: `{"title":"X","durationDays":"7","days":[]}`},
		{name: "day missing dayIndex", raw: `{"title":"X","durationDays":7,"days":[{"title":"A"}]}`},
		{name: "day missing title", raw: `{"title":"X","durationDays":7,"days":[{"dayIndex":1}]}`},
		{name: "phase missing name", raw: `{"title":"X","durationDays":7,"phases":[{"durationWeeks":1}],"days":[{"dayIndex":1,"title":"A"}]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := importer.ParseDocument([]byte(tc.raw))
			assert.Nil(t, doc)
			var parseErr *importer.ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

// A document with required fields present but bad values must parse fine;
// catching those is the validator's job, and the two error kinds have to
// stay distinguishable for callers.
func TestParseDocument_SemanticsNotChecked(t *testing.T) {
	doc, err := importer.ParseDocument([]byte(`{"title":"  ","durationDays":0,"days":[]}`))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.DurationDays)
}
