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

const sessionCollectionName = "workout_sessions"

// mongoSessionRepository implements repository.SessionRepository
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a new session repository.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// Create records a workout attempt.
func (r *mongoSessionRepository) Create(ctx context.Context, session *domain.Session) (primitive.ObjectID, error) {
	if session.UserID == primitive.NilObjectID || session.StartTime.IsZero() {
		return primitive.NilObjectID, errors.New("session requires userId and startTime")
	}
	session.ID = primitive.NewObjectID()
	session.StartTime = session.StartTime.UTC()

	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted session ID")
	}
	return insertedID, nil
}

// ListByUser returns matching sessions oldest first.
func (r *mongoSessionRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, status domain.SessionStatus, since time.Time) ([]domain.Session, error) {
	var sessions []domain.Session
	filter := bson.M{
		"userId":    userID,
		"status":    status,
		"startTime": bson.M{"$gte": since.UTC()},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []domain.Session{}
	}
	return sessions, nil
}

// DetachWorkouts nulls the workout reference of sessions pointing at the given workouts.
func (r *mongoSessionRepository) DetachWorkouts(ctx context.Context, workoutIDs []primitive.ObjectID) (int64, error) {
	if len(workoutIDs) == 0 {
		return 0, nil
	}
	filter := bson.M{"workoutId": bson.M{"$in": workoutIDs}}
	update := bson.M{"$set": bson.M{"workoutId": nil}}

	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// EnsureSessionIndexes creates necessary indexes. Call during startup.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Activity aggregation window scan
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}, {Key: "startTime", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "workoutId", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logIndexError(collection, err)
	}
}
