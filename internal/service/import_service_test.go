package service_test

import (
	"context"
	"errors"
	"testing"

	"alcyxob/program-service/internal/domain"
	"alcyxob/program-service/internal/importer"
	"alcyxob/program-service/internal/repository"
	"alcyxob/program-service/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeImportStore records applied bundles and can be primed to fail,
// standing in for the transactional Mongo facade.
type fakeImportStore struct {
	applied    []*importer.Bundle
	applyErr   error
	deleted    []string
	deleteErr  error
	lastResult *domain.ImportResult
}

func (f *fakeImportStore) ApplyImport(_ context.Context, bundle *importer.Bundle) (*domain.ImportResult, error) {
	if f.applyErr != nil {
		return nil, f.applyErr
	}
	f.applied = append(f.applied, bundle)
	f.lastResult = &domain.ImportResult{
		ProgramName:     bundle.Program.Name,
		DaysImported:    len(bundle.ScheduleEntries),
		WorkoutsCreated: len(bundle.Workouts),
		ExercisesLinked: len(bundle.ExerciseMappings),
	}
	return f.lastResult, nil
}

func (f *fakeImportStore) DeleteProgram(_ context.Context, name string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, name)
	return nil
}

const sampleDocument = `{
	"title": "Sample",
	"durationDays": 7,
	"days": [
		{"dayIndex": 1, "title": "Push Day", "exercisesOrder": ["bench-press", "incline-db-press"]},
		{"dayIndex": 7, "title": "Rest", "exercisesOrder": []}
	]
}`

func TestImportProgram_Success(t *testing.T) {
	store := &fakeImportStore{}
	svc := service.NewImportService(store)

	result, err := svc.ImportProgram(context.Background(), []byte(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, &domain.ImportResult{
		ProgramName:     "Sample",
		DaysImported:    2,
		WorkoutsCreated: 2,
		ExercisesLinked: 2,
	}, result)

	require.Len(t, store.applied, 1)
	bundle := store.applied[0]
	assert.Equal(t, "Sample", bundle.Program.Name)
	assert.Equal(t, []string{"bench-press", "incline-db-press"}, bundle.ReferencedExerciseIDs)
}

func TestImportProgram_ParseErrorSkipsStorage(t *testing.T) {
	store := &fakeImportStore{}
	svc := service.NewImportService(store)

	result, err := svc.ImportProgram(context.Background(), []byte(`{"durationDays": 7}`))
	assert.Nil(t, result)

	var parseErr *importer.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Empty(t, store.applied, "a document that fails to parse must not touch storage")
}

func TestImportProgram_ValidationErrorSkipsStorage(t *testing.T) {
	store := &fakeImportStore{}
	svc := service.NewImportService(store)

	raw := `{"title": "Sample", "durationDays": 0, "days": [{"dayIndex": 1, "title": "A"}]}`
	result, err := svc.ImportProgram(context.Background(), []byte(raw))
	assert.Nil(t, result)

	var validationErr *importer.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, store.applied, "a document that fails validation must not touch storage")
}

func TestImportProgram_StorageErrorPropagates(t *testing.T) {
	store := &fakeImportStore{
		applyErr: &repository.StorageError{Op: "apply import", Err: errors.New("transaction aborted")},
	}
	svc := service.NewImportService(store)

	result, err := svc.ImportProgram(context.Background(), []byte(sampleDocument))
	assert.Nil(t, result)

	var storageErr *repository.StorageError
	require.ErrorAs(t, err, &storageErr)
}

// Importing the same document twice must hand the store deeply equal
// bundles, so natural-key upserts overwrite instead of duplicating.
func TestImportProgram_Idempotent(t *testing.T) {
	store := &fakeImportStore{}
	svc := service.NewImportService(store)

	first, err := svc.ImportProgram(context.Background(), []byte(sampleDocument))
	require.NoError(t, err)
	second, err := svc.ImportProgram(context.Background(), []byte(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, store.applied, 2)
	assert.Equal(t, store.applied[0], store.applied[1])
}
