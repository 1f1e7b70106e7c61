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

const preferencesCollectionName = "user_preferences"

// mongoPreferencesRepository implements repository.PreferencesRepository
type mongoPreferencesRepository struct {
	collection *mongo.Collection
}

// NewMongoPreferencesRepository creates a new preferences repository.
func NewMongoPreferencesRepository(db *mongo.Database) repository.PreferencesRepository {
	return &mongoPreferencesRepository{
		collection: db.Collection(preferencesCollectionName),
	}
}

// GetByUserID retrieves the preferences document of a user.
func (r *mongoPreferencesRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.UserPreferences, error) {
	var prefs domain.UserPreferences
	filter := bson.M{"userId": userID}
	err := r.collection.FindOne(ctx, filter).Decode(&prefs)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &prefs, nil
}

// Upsert replaces the user's preferences, creating the document on first save.
func (r *mongoPreferencesRepository) Upsert(ctx context.Context, prefs *domain.UserPreferences) error {
	if prefs.UserID == primitive.NilObjectID {
		return errors.New("preferences require userId")
	}
	prefs.UpdatedAt = time.Now().UTC()

	filter := bson.M{"userId": prefs.UserID}
	_, err := r.collection.ReplaceOne(ctx, filter, prefs, options.Replace().SetUpsert(true))
	return err
}

// EnsurePreferencesIndexes creates necessary indexes. Call during startup.
func EnsurePreferencesIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logIndexError(collection, err)
	}
}
