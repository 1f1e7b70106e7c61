package mongo

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// Create inserts a new exercise into the catalog.
func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.Name == "" {
		return primitive.NilObjectID, errors.New("exercise name is required")
	}

	exercise.ID = primitive.NewObjectID()
	exercise.NameKey = domain.NormalizeExerciseName(exercise.Name)
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// Upsert inserts the exercise or overwrites the catalog fields of the one with
// the same normalized name. The existing _id and createdAt are preserved.
func (r *mongoExerciseRepository) Upsert(ctx context.Context, exercise *domain.Exercise) (bool, error) {
	if exercise.Name == "" {
		return false, errors.New("exercise name is required")
	}
	exercise.NameKey = domain.NormalizeExerciseName(exercise.Name)
	now := time.Now().UTC()

	filter := bson.M{"nameKey": exercise.NameKey}
	update := bson.M{
		"$set": bson.M{
			"name":      exercise.Name,
			"bodyPart":  exercise.BodyPart,
			"target":    exercise.Target,
			"equipment": exercise.Equipment,
			"mediaKey":  exercise.MediaKey,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"createdAt": now,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	if result.UpsertedID != nil {
		if id, ok := result.UpsertedID.(primitive.ObjectID); ok {
			exercise.ID = id
		}
		return true, nil
	}
	return false, nil
}

// GetByID retrieves an exercise by its ID.
func (r *mongoExerciseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	var exercise domain.Exercise
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// GetByIDs retrieves multiple exercises by their IDs. Unknown IDs are skipped.
func (r *mongoExerciseRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Exercise, error) {
	if len(ids) == 0 {
		return []domain.Exercise{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// FindByName looks an exercise up by its normalized name.
func (r *mongoExerciseRepository) FindByName(ctx context.Context, name string) (*domain.Exercise, error) {
	var exercise domain.Exercise
	filter := bson.M{"nameKey": domain.NormalizeExerciseName(name)}

	err := r.collection.FindOne(ctx, filter).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// FindByNames resolves a batch of names with a single $in query.
func (r *mongoExerciseRepository) FindByNames(ctx context.Context, names []string) (map[string]domain.Exercise, error) {
	byKey := make(map[string]domain.Exercise, len(names))
	if len(names) == 0 {
		return byKey, nil
	}

	keys := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		k := domain.NormalizeExerciseName(n)
		if _, dup := seen[k]; dup || k == "" {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	exercises, err := r.find(ctx, bson.M{"nameKey": bson.M{"$in": keys}}, nil)
	if err != nil {
		return nil, err
	}
	for _, e := range exercises {
		byKey[e.NameKey] = e
	}
	return byKey, nil
}

// List returns catalog exercises matching the filter, sorted by name.
func (r *mongoExerciseRepository) List(ctx context.Context, f repository.ExerciseFilter) ([]domain.Exercise, error) {
	filter := bson.M{}
	if f.BodyPart != "" {
		filter["bodyPart"] = f.BodyPart
	}
	if f.Target != "" {
		filter["target"] = f.Target
	}
	if f.Equipment != "" {
		filter["equipment"] = f.Equipment
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return r.find(ctx, filter, findOptions)
}

func (r *mongoExerciseRepository) find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]domain.Exercise, error) {
	var exercises []domain.Exercise

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	return exercises, nil
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Template names resolve through the normalized name
			Keys:    bson.D{{Key: "nameKey", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "bodyPart", Value: 1}, {Key: "target", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logIndexError(collection, err)
	}
}
