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
	programCollectionName = "programs"
	phaseCollectionName   = "phases"
)

// mongoProgramRepository implements repository.ProgramRepository
type mongoProgramRepository struct {
	programs *mongo.Collection
	phases   *mongo.Collection
}

// NewMongoProgramRepository creates a new Program repository backed by MongoDB.
func NewMongoProgramRepository(db *mongo.Database) repository.ProgramRepository {
	return &mongoProgramRepository{
		programs: db.Collection(programCollectionName),
		phases:   db.Collection(phaseCollectionName),
	}
}

// GetByName retrieves a program by its natural key (the trimmed document title).
func (r *mongoProgramRepository) GetByName(ctx context.Context, name string) (*domain.Program, error) {
	var program domain.Program
	err := r.programs.FindOne(ctx, bson.M{"_id": name}).Decode(&program)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &program, nil
}

// List retrieves all imported programs, newest first.
func (r *mongoProgramRepository) List(ctx context.Context) ([]domain.Program, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.programs.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var programs []domain.Program
	if err = cursor.All(ctx, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

// GetPhases retrieves the phases of one program in declaration order.
func (r *mongoProgramRepository) GetPhases(ctx context.Context, programName string) ([]domain.Phase, error) {
	cursor, err := r.phases.Find(ctx, bson.M{"programName": programName})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var phases []domain.Phase
	if err = cursor.All(ctx, &phases); err != nil {
		return nil, err
	}
	return phases, nil
}

// EnsurePhaseIndexes creates the composite natural-key index for phases.
func EnsurePhaseIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "programName", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
