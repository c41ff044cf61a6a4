// internal/repository/mongo/workout_repo.go
package mongo

import (
	"alcyxob/program-service/internal/domain"
	"alcyxob/program-service/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	workoutCollectionName         = "workouts"
	workoutExerciseCollectionName = "workout_exercises"
	phaseWorkoutCollectionName    = "phase_workouts"
)

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	workouts         *mongo.Collection
	workoutExercises *mongo.Collection
	phaseWorkouts    *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository backed by MongoDB.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		workouts:         db.Collection(workoutCollectionName),
		workoutExercises: db.Collection(workoutExerciseCollectionName),
		phaseWorkouts:    db.Collection(phaseWorkoutCollectionName),
	}
}

// GetByID retrieves a workout by its slug-derived id.
func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.workouts.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// GetExercises retrieves a workout's exercise mappings in author order.
func (r *mongoWorkoutRepository) GetExercises(ctx context.Context, workoutID string) ([]domain.ExerciseInWorkout, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "orderIndex", Value: 1}})

	cursor, err := r.workoutExercises.Find(ctx, bson.M{"workoutId": workoutID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var mappings []domain.ExerciseInWorkout
	if err = cursor.All(ctx, &mappings); err != nil {
		return nil, err
	}
	return mappings, nil
}

// GetByPhase retrieves all workouts cross-referenced to one phase of a program.
// Two-step lookup: collect workout ids from the join collection, then fetch
// the workout documents.
func (r *mongoWorkoutRepository) GetByPhase(ctx context.Context, programName, phaseName string) ([]domain.Workout, error) {
	refCursor, err := r.phaseWorkouts.Find(ctx, bson.M{
		"programName": programName,
		"phaseName":   phaseName,
	})
	if err != nil {
		return nil, err
	}
	defer refCursor.Close(ctx)

	var refs []domain.PhaseWorkoutRef
	if err = refCursor.All(ctx, &refs); err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return []domain.Workout{}, nil
	}

	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.WorkoutID)
	}

	cursor, err := r.workouts.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workouts []domain.Workout
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// UpdateTargetMuscleGroups sets the curated muscle groups of a workout.
// Import always leaves them empty; this is the "filled elsewhere" path.
func (r *mongoWorkoutRepository) UpdateTargetMuscleGroups(ctx context.Context, id string, muscleGroups []string) error {
	if muscleGroups == nil {
		muscleGroups = []string{}
	}

	result, err := r.workouts.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"targetMuscleGroups": muscleGroups}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureWorkoutIndexes creates the composite natural-key indexes for the
// exercise-mapping and phase-join collections.
func EnsureWorkoutIndexes(ctx context.Context, db *mongo.Database) {
	exerciseIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "workoutId", Value: 1}, {Key: "orderIndex", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = db.Collection(workoutExerciseCollectionName).Indexes().CreateMany(ctx, exerciseIndexes)

	refIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "programName", Value: 1},
				{Key: "phaseName", Value: 1},
				{Key: "workoutId", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = db.Collection(phaseWorkoutCollectionName).Indexes().CreateMany(ctx, refIndexes)
}
