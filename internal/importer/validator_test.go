package importer_test

import (
	"testing"

	"alcyxob/program-service/internal/domain"
	"alcyxob/program-service/internal/importer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDoc() *domain.ProgramDocument {
	return &domain.ProgramDocument{
		Title:        "Sample",
		DurationDays: 7,
		Days: []domain.DaySpec{
			{DayIndex: 1, Title: "Push Day"},
			{DayIndex: 7, Title: "Rest"},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, importer.Validate(validDoc()))
}

func TestValidate_Rejections(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(doc *domain.ProgramDocument)
	}{
		{
			name:   "blank title",
			mutate: func(doc *domain.ProgramDocument) { doc.Title = "   " },
		},
		{
			name:   "zero durationDays",
			mutate: func(doc *domain.ProgramDocument) { doc.DurationDays = 0 },
		},
		{
			name:   "negative durationDays",
			mutate: func(doc *domain.ProgramDocument) { doc.DurationDays = -3 },
		},
		{
			name:   "empty day list",
			mutate: func(doc *domain.ProgramDocument) { doc.Days = nil },
		},
		{
			name:   "non-positive dayIndex",
			mutate: func(doc *domain.ProgramDocument) { doc.Days[0].DayIndex = 0 },
		},
		{
			name:   "dayIndex beyond program duration",
			mutate: func(doc *domain.ProgramDocument) { doc.Days[1].DayIndex = 9 },
		},
		{
			name:   "duplicate dayIndex",
			mutate: func(doc *domain.ProgramDocument) { doc.Days[1].DayIndex = doc.Days[0].DayIndex },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := validDoc()
			tc.mutate(doc)
			err := importer.Validate(doc)
			var validationErr *importer.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Reason)
		})
	}
}
