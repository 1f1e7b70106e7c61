package mongo

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutSetCollectionName = "workout_sets"

// mongoWorkoutSetRepository implements repository.WorkoutSetRepository
type mongoWorkoutSetRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutSetRepository creates a new workout set repository.
func NewMongoWorkoutSetRepository(db *mongo.Database) repository.WorkoutSetRepository {
	return &mongoWorkoutSetRepository{
		collection: db.Collection(workoutSetCollectionName),
	}
}

// CreateMany inserts all sets of a workout in one round trip. IDs are assigned
// in place.
func (r *mongoWorkoutSetRepository) CreateMany(ctx context.Context, sets []domain.WorkoutSet) error {
	if len(sets) == 0 {
		return nil
	}
	docs := make([]interface{}, len(sets))
	for i := range sets {
		sets[i].ID = primitive.NewObjectID()
		docs[i] = sets[i]
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// GetByWorkoutID returns the sets of one workout in set order.
func (r *mongoWorkoutSetRepository) GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.WorkoutSet, error) {
	return r.find(ctx, bson.M{"workoutId": workoutID})
}

// GetByWorkoutIDs returns the sets of several workouts, grouped by workout and
// in set order within each.
func (r *mongoWorkoutSetRepository) GetByWorkoutIDs(ctx context.Context, workoutIDs []primitive.ObjectID) ([]domain.WorkoutSet, error) {
	if len(workoutIDs) == 0 {
		return []domain.WorkoutSet{}, nil
	}
	return r.find(ctx, bson.M{"workoutId": bson.M{"$in": workoutIDs}})
}

// DeleteByWorkoutIDs removes every set belonging to the given workouts.
func (r *mongoWorkoutSetRepository) DeleteByWorkoutIDs(ctx context.Context, workoutIDs []primitive.ObjectID) (int64, error) {
	if len(workoutIDs) == 0 {
		return 0, nil
	}
	result, err := r.collection.DeleteMany(ctx, bson.M{"workoutId": bson.M{"$in": workoutIDs}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *mongoWorkoutSetRepository) find(ctx context.Context, filter bson.M) ([]domain.WorkoutSet, error) {
	var sets []domain.WorkoutSet
	findOptions := options.Find().SetSort(bson.D{{Key: "workoutId", Value: 1}, {Key: "setOrder", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &sets); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	if sets == nil {
		sets = []domain.WorkoutSet{}
	}
	return sets, nil
}

// EnsureWorkoutSetIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutSetIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "workoutId", Value: 1}, {Key: "setOrder", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logIndexError(collection, err)
	}
}
