package service

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"alcyxob/fitness-planner/internal/storage"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrMediaNotFound    = errors.New("exercise has no demo media")
	ErrMediaUnavailable = errors.New("media storage is not configured")
	ErrDownloadURLError = errors.New("failed to generate download URL")
)

// MediaURL is a temporary link to an exercise's demo media.
type MediaURL struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ExerciseService exposes the read side of the exercise catalog.
type ExerciseService interface {
	ListExercises(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error)
	GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error)
	GetMediaURL(ctx context.Context, exerciseID primitive.ObjectID) (*MediaURL, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	fileStorage  storage.FileStorage // nil when no bucket is configured
	urlExpiry    time.Duration
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, fileStorage storage.FileStorage, urlExpiry time.Duration) ExerciseService {
	if urlExpiry <= 0 {
		urlExpiry = storage.DefaultPresignedURLExpiry
	}
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		fileStorage:  fileStorage,
		urlExpiry:    urlExpiry,
	}
}

// ListExercises returns catalog entries matching the filter.
func (s *exerciseService) ListExercises(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx, filter)
}

// GetExerciseByID retrieves a single exercise.
func (s *exerciseService) GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err // Propagate other repository errors
	}
	return exercise, nil
}

// GetMediaURL presigns a download link for the exercise's demo media.
func (s *exerciseService) GetMediaURL(ctx context.Context, exerciseID primitive.ObjectID) (*MediaURL, error) {
	exercise, err := s.GetExerciseByID(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	if exercise.MediaKey == "" {
		return nil, ErrMediaNotFound
	}
	if s.fileStorage == nil {
		return nil, ErrMediaUnavailable
	}

	expiresAt := time.Now().UTC().Add(s.urlExpiry)
	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, exercise.MediaKey, s.urlExpiry)
	if err != nil {
		return nil, errors.Join(ErrDownloadURLError, err)
	}
	return &MediaURL{URL: url, ExpiresAt: expiresAt}, nil
}
