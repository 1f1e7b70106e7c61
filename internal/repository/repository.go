package repository

import (
	"alcyxob/fitness-planner/internal/domain"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// Transactor runs fn so that every repository write made with the context it
// receives commits together or not at all. Repositories must be called with
// that context for their writes to join the transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}

//go:generate mockgen -destination=../service/mocks_test.go -package=service alcyxob/fitness-planner/internal/repository UserRepository,PreferencesRepository

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	SetSurveyCompleted(ctx context.Context, id primitive.ObjectID, completed bool) error
}

// PreferencesRepository stores one UserPreferences document per user.
type PreferencesRepository interface {
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.UserPreferences, error)
	Upsert(ctx context.Context, prefs *domain.UserPreferences) error
}

// ExerciseFilter narrows exercise listings. Empty fields match everything.
type ExerciseFilter struct {
	BodyPart  string
	Target    string
	Equipment string
}

// ExerciseRepository is the exercise catalog.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	// Upsert inserts or replaces an exercise matched by its normalized name.
	// It reports whether a new document was inserted.
	Upsert(ctx context.Context, exercise *domain.Exercise) (inserted bool, err error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Exercise, error)
	FindByName(ctx context.Context, name string) (*domain.Exercise, error)
	// FindByNames resolves many names in one round trip. The result is keyed by
	// domain.NormalizeExerciseName; names without a match are absent.
	FindByNames(ctx context.Context, names []string) (map[string]domain.Exercise, error)
	List(ctx context.Context, filter ExerciseFilter) ([]domain.Exercise, error)
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.GeneratedWorkout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.GeneratedWorkout, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.GeneratedWorkout, error)
	// ListIDsByType returns the ids of a user's workouts of one type.
	ListIDsByType(ctx context.Context, userID primitive.ObjectID, workoutType domain.WorkoutType) ([]primitive.ObjectID, error)
	DeleteByIDs(ctx context.Context, userID primitive.ObjectID, ids []primitive.ObjectID) (int64, error)
}

// WorkoutSetRepository defines the interface for planned sets.
type WorkoutSetRepository interface {
	CreateMany(ctx context.Context, sets []domain.WorkoutSet) error
	GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.WorkoutSet, error)
	GetByWorkoutIDs(ctx context.Context, workoutIDs []primitive.ObjectID) ([]domain.WorkoutSet, error)
	DeleteByWorkoutIDs(ctx context.Context, workoutIDs []primitive.ObjectID) (int64, error)
}

// SessionRepository gives access to workout attempts.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) (primitive.ObjectID, error)
	// ListByUser returns the user's sessions with the given status that started
	// at or after since, oldest first.
	ListByUser(ctx context.Context, userID primitive.ObjectID, status domain.SessionStatus, since time.Time) ([]domain.Session, error)
	// DetachWorkouts sets workoutId to null on every session pointing at one of
	// the given workouts. Sessions are never deleted.
	DetachWorkouts(ctx context.Context, workoutIDs []primitive.ObjectID) (int64, error)
}
