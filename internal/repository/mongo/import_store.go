package mongo

import (
	"alcyxob/program-service/internal/domain"
	"alcyxob/program-service/internal/importer"
	"alcyxob/program-service/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoImportStore implements repository.ImportStore. It is the only writer
// of import-derived relations and the sole transactional boundary of the
// pipeline: every relation of one import is committed inside a single
// session transaction, so concurrent readers see either the pre-import or
// the fully-post-import state.
//
// Multi-document transactions require mongod to run as a replica set; on a
// standalone server the commit fails and surfaces as a StorageError.
type mongoImportStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoImportStore creates the transactional import facade.
func NewMongoImportStore(client *mongo.Client, db *mongo.Database) repository.ImportStore {
	return &mongoImportStore{client: client, db: db}
}

var replaceUpsert = options.Replace().SetUpsert(true)

// ApplyImport commits one expanded program document. All writes are
// natural-key upserts (put-if-absent-or-replace), so re-importing a document
// with the same title overwrites instead of duplicating.
func (s *mongoImportStore) ApplyImport(ctx context.Context, bundle *importer.Bundle) (*domain.ImportResult, error) {
	session, err := s.client.StartSession()
	if err != nil {
		return nil, &repository.StorageError{Op: "start session", Err: err}
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, s.applyAll(sessCtx, bundle)
	})
	if err != nil {
		return nil, &repository.StorageError{Op: "apply import", Err: err}
	}

	return &domain.ImportResult{
		ProgramName:     bundle.Program.Name,
		DaysImported:    len(bundle.ScheduleEntries),
		WorkoutsCreated: len(bundle.Workouts),
		ExercisesLinked: len(bundle.ExerciseMappings),
	}, nil
}

func (s *mongoImportStore) applyAll(ctx context.Context, bundle *importer.Bundle) error {
	now := time.Now().UTC()

	// Program: keep the original createdAt across re-imports.
	_, err := s.db.Collection(programCollectionName).UpdateOne(ctx,
		bson.M{"_id": bundle.Program.Name},
		bson.M{
			"$set": bson.M{
				"durationDays": bundle.Program.DurationDays,
				"description":  bundle.Program.Description,
				"author":       bundle.Program.Author,
				"updatedAt":    now,
			},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}

	phases := s.db.Collection(phaseCollectionName)
	for _, phase := range bundle.Phases {
		filter := bson.M{"programName": phase.ProgramName, "name": phase.Name}
		if _, err := phases.ReplaceOne(ctx, filter, phase, replaceUpsert); err != nil {
			return err
		}
	}

	if err := s.materializeExercises(ctx, bundle.ReferencedExerciseIDs, now); err != nil {
		return err
	}

	workouts := s.db.Collection(workoutCollectionName)
	for _, workout := range bundle.Workouts {
		if _, err := workouts.ReplaceOne(ctx, bson.M{"_id": workout.ID}, workout, replaceUpsert); err != nil {
			return err
		}
	}

	mappings := s.db.Collection(workoutExerciseCollectionName)
	for _, mapping := range bundle.ExerciseMappings {
		filter := bson.M{"workoutId": mapping.WorkoutID, "orderIndex": mapping.OrderIndex}
		if _, err := mappings.ReplaceOne(ctx, filter, mapping, replaceUpsert); err != nil {
			return err
		}
	}

	refs := s.db.Collection(phaseWorkoutCollectionName)
	for _, ref := range bundle.PhaseWorkoutRefs {
		filter := bson.M{
			"programName": ref.ProgramName,
			"phaseName":   ref.PhaseName,
			"workoutId":   ref.WorkoutID,
		}
		if _, err := refs.ReplaceOne(ctx, filter, ref, replaceUpsert); err != nil {
			return err
		}
	}

	entries := s.db.Collection(scheduleCollectionName)
	for _, entry := range bundle.ScheduleEntries {
		filter := bson.M{"programName": entry.ProgramName, "dayNumber": entry.DayNumber}
		if _, err := entries.ReplaceOne(ctx, filter, entry, replaceUpsert); err != nil {
			return err
		}
	}

	return nil
}

// materializeExercises creates a placeholder Exercise for every referenced id
// not already present, so ExerciseInWorkout rows never dangle. Existing rows
// are left untouched: import never overwrites curated exercise data.
func (s *mongoImportStore) materializeExercises(ctx context.Context, ids []string, now time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	exercises := s.db.Collection(exerciseCollectionName)

	cursor, err := exercises.Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"_id": 1}),
	)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	existing := make(map[string]bool, len(ids))
	for cursor.Next(ctx) {
		var row struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&row); err != nil {
			return err
		}
		existing[row.ID] = true
	}
	if err := cursor.Err(); err != nil {
		return err
	}

	for _, placeholder := range importer.PlaceholderExercises(ids, existing, now) {
		// $setOnInsert keeps this put-if-absent even if another import of
		// the same id raced this transaction.
		_, err := exercises.UpdateOne(ctx,
			bson.M{"_id": placeholder.ID},
			bson.M{"$setOnInsert": placeholder},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// DeleteProgram removes a program and every relation derived from it in one
// transaction. Exercises are kept: the library outlives any single program.
func (s *mongoImportStore) DeleteProgram(ctx context.Context, name string) error {
	session, err := s.client.StartSession()
	if err != nil {
		return &repository.StorageError{Op: "start session", Err: err}
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		res, err := s.db.Collection(programCollectionName).DeleteOne(sessCtx, bson.M{"_id": name})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, repository.ErrNotFound
		}

		entries := s.db.Collection(scheduleCollectionName)
		cursor, err := entries.Find(sessCtx, bson.M{"programName": name})
		if err != nil {
			return nil, err
		}
		var schedule []domain.ScheduleEntry
		if err := cursor.All(sessCtx, &schedule); err != nil {
			return nil, err
		}

		workoutIDs := make([]string, 0, len(schedule))
		for _, entry := range schedule {
			workoutIDs = append(workoutIDs, entry.WorkoutID)
		}

		byProgram := bson.M{"programName": name}
		if _, err := s.db.Collection(phaseCollectionName).DeleteMany(sessCtx, byProgram); err != nil {
			return nil, err
		}
		if _, err := s.db.Collection(phaseWorkoutCollectionName).DeleteMany(sessCtx, byProgram); err != nil {
			return nil, err
		}
		if _, err := entries.DeleteMany(sessCtx, byProgram); err != nil {
			return nil, err
		}
		if len(workoutIDs) > 0 {
			// Workout ids derive from day title + index only, so two
			// programs can share a workout (both scheduling "Rest" on day 7
			// reference rest-day-7). A shared workout must survive this
			// delete, or the other program's schedule entries dangle.
			refCursor, err := entries.Find(sessCtx, bson.M{
				"workoutId":   bson.M{"$in": workoutIDs},
				"programName": bson.M{"$ne": name},
			})
			if err != nil {
				return nil, err
			}
			var shared []domain.ScheduleEntry
			if err := refCursor.All(sessCtx, &shared); err != nil {
				return nil, err
			}
			stillReferenced := make(map[string]bool, len(shared))
			for _, entry := range shared {
				stillReferenced[entry.WorkoutID] = true
			}

			deletable := deletableWorkoutIDs(workoutIDs, stillReferenced)
			if len(deletable) > 0 {
				byWorkout := bson.M{"workoutId": bson.M{"$in": deletable}}
				if _, err := s.db.Collection(workoutExerciseCollectionName).DeleteMany(sessCtx, byWorkout); err != nil {
					return nil, err
				}
				if _, err := s.db.Collection(workoutCollectionName).DeleteMany(sessCtx, bson.M{"_id": bson.M{"$in": deletable}}); err != nil {
					return nil, err
				}
			}
		}
		return nil, nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.ErrNotFound
		}
		return &repository.StorageError{Op: "delete program", Err: err}
	}
	return nil
}

// deletableWorkoutIDs filters candidates down to the workouts no other
// program's schedule still references. Preserves candidate order.
func deletableWorkoutIDs(candidates []string, stillReferenced map[string]bool) []string {
	out := make([]string, 0, len(candidates))
	for _, id := range candidates {
		if !stillReferenced[id] {
			out = append(out, id)
		}
	}
	return out
}
