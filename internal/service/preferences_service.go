package service

import (
	"alcyxob/fitness-planner/internal/catalog"
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrValidationFailed = errors.New("validation failed")
	ErrUserNotFound     = errors.New("user not found")
)

// PreferencesService edits the survey answers that drive plan generation.
type PreferencesService interface {
	GetPreferences(ctx context.Context, userID primitive.ObjectID) (*domain.UserPreferences, error)
	// SavePreferences validates and stores the preferences, replacing any
	// previous answers.
	SavePreferences(ctx context.Context, userID primitive.ObjectID, prefs *domain.UserPreferences) (*domain.UserPreferences, error)
	// CompleteSurvey marks onboarding done. Preferences must already be saved.
	CompleteSurvey(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	// EnsureProfile returns the user's profile, creating it on first contact.
	// The id is the subject of the identity provider's token.
	EnsureProfile(ctx context.Context, userID primitive.ObjectID, name, email string) (*domain.User, error)
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
}

// preferencesService implements the PreferencesService interface.
type preferencesService struct {
	registry  *catalog.Registry
	userRepo  repository.UserRepository
	prefsRepo repository.PreferencesRepository
}

// NewPreferencesService creates a new instance of preferencesService.
func NewPreferencesService(registry *catalog.Registry, userRepo repository.UserRepository, prefsRepo repository.PreferencesRepository) PreferencesService {
	return &preferencesService{
		registry:  registry,
		userRepo:  userRepo,
		prefsRepo: prefsRepo,
	}
}

func (s *preferencesService) GetPreferences(ctx context.Context, userID primitive.ObjectID) (*domain.UserPreferences, error) {
	prefs, err := s.prefsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPreferencesNotFound
		}
		return nil, err
	}
	return prefs, nil
}

func (s *preferencesService) SavePreferences(ctx context.Context, userID primitive.ObjectID, prefs *domain.UserPreferences) (*domain.UserPreferences, error) {
	if err := s.validate(prefs); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	prefs.UserID = userID
	if prefs.GenderTier == "" {
		prefs.GenderTier = domain.DefaultTier
	}
	if err := s.prefsRepo.Upsert(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

func (s *preferencesService) CompleteSurvey(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	if _, err := s.GetPreferences(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.userRepo.SetSurveyCompleted(ctx, userID, true); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

func (s *preferencesService) EnsureProfile(ctx context.Context, userID primitive.ObjectID, name, email string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidationFailed)
	}

	user = &domain.User{ID: userID, Name: strings.TrimSpace(name), Email: strings.ToLower(strings.TrimSpace(email))}
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already in use", ErrValidationFailed)
		}
		return nil, err
	}
	return user, nil
}

func (s *preferencesService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *preferencesService) validate(p *domain.UserPreferences) error {
	if p == nil {
		return fmt.Errorf("%w: preferences are required", ErrValidationFailed)
	}
	switch p.Goal {
	case domain.GoalLoseWeight, domain.GoalGainMuscle, domain.GoalGainStrength, domain.GoalMaintainMuscle:
	default:
		return fmt.Errorf("%w: unknown goal %q", ErrValidationFailed, p.Goal)
	}
	switch p.ExperienceLevel {
	case "", domain.ExperienceBeginner, domain.ExperienceIntermediate, domain.ExperienceAdvanced:
	default:
		return fmt.Errorf("%w: unknown experience level %q", ErrValidationFailed, p.ExperienceLevel)
	}
	if _, err := s.registry.Archetypes(p.WorkoutsPerWeek); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	if p.GenderTier != "" && !validTier(p.GenderTier) {
		return fmt.Errorf("%w: unknown gender tier %q", ErrValidationFailed, p.GenderTier)
	}
	if p.SetsPerExercise != nil && (*p.SetsPerExercise < 1 || *p.SetsPerExercise > 10) {
		return fmt.Errorf("%w: setsPerExercise must be within 1..10", ErrValidationFailed)
	}
	if p.RestTime != nil && (*p.RestTime < 0 || *p.RestTime > 600) {
		return fmt.Errorf("%w: restTime must be within 0..600 seconds", ErrValidationFailed)
	}
	return nil
}

func validTier(tier domain.GenderTier) bool {
	for _, t := range domain.GenderTiers {
		if t == tier {
			return true
		}
	}
	return false
}
