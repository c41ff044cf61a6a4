package service

import (
	"alcyxob/program-service/internal/domain"
	"alcyxob/program-service/internal/importer"
	"alcyxob/program-service/internal/repository"
	"context"

	log "github.com/sirupsen/logrus"
)

// ImportService runs the whole import pipeline as one sequential unit of
// work: parse -> validate -> expand -> transactional commit. Any failure
// aborts the entire import and leaves storage untouched; there is no retry
// and no partial state.
type ImportService interface {
	ImportProgram(ctx context.Context, raw []byte) (*domain.ImportResult, error)
}

// importService implements the ImportService interface.
type importService struct {
	store repository.ImportStore
}

// NewImportService creates a new instance of importService. The store is
// injected by the composition root; the pipeline owns no storage handle of
// its own.
func NewImportService(store repository.ImportStore) ImportService {
	return &importService{store: store}
}

// ImportProgram imports one raw program document.
//
// The returned error is one of three distinguishable kinds:
// *importer.ParseError (document shape is broken), *importer.ValidationError
// (document is well-formed but semantically invalid) or
// *repository.StorageError (the transactional commit failed).
func (s *importService) ImportProgram(ctx context.Context, raw []byte) (*domain.ImportResult, error) {
	doc, err := importer.ParseDocument(raw)
	if err != nil {
		log.WithError(err).Warn("program import rejected: document could not be parsed")
		return nil, err
	}

	if err := importer.Validate(doc); err != nil {
		log.WithError(err).WithField("title", doc.Title).Warn("program import rejected: validation failed")
		return nil, err
	}

	bundle := importer.Expand(doc)

	result, err := s.store.ApplyImport(ctx, bundle)
	if err != nil {
		log.WithError(err).WithField("program", bundle.Program.Name).Error("program import failed at commit")
		return nil, err
	}

	log.WithFields(log.Fields{
		"program":   result.ProgramName,
		"days":      result.DaysImported,
		"workouts":  result.WorkoutsCreated,
		"exercises": result.ExercisesLinked,
	}).Info("program imported")

	return result, nil
}
