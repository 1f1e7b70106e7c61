package service

import (
	"context"
	"testing"

	"alcyxob/fitness-planner/internal/catalog"
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestSavePreferences_Validation(t *testing.T) {
	registry := catalog.MustLoad()

	for name, prefs := range map[string]*domain.UserPreferences{
		"nil":                nil,
		"unknown goal":       {Goal: "get_swole", WorkoutsPerWeek: 4},
		"frequency too low":  {Goal: domain.GoalGainMuscle, WorkoutsPerWeek: 2},
		"frequency too high": {Goal: domain.GoalGainMuscle, WorkoutsPerWeek: 7},
		"unknown tier":       {Goal: domain.GoalGainMuscle, WorkoutsPerWeek: 4, GenderTier: "junior"},
		"unknown experience": {Goal: domain.GoalGainMuscle, WorkoutsPerWeek: 4, ExperienceLevel: "elite"},
		"zero sets override": {Goal: domain.GoalGainMuscle, WorkoutsPerWeek: 4, SetsPerExercise: intPtr(0)},
		"negative rest":      {Goal: domain.GoalGainMuscle, WorkoutsPerWeek: 4, RestTime: intPtr(-5)},
		"absurd rest":        {Goal: domain.GoalGainMuscle, WorkoutsPerWeek: 4, RestTime: intPtr(3600)},
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// No repository call is expected for invalid input.
			svc := NewPreferencesService(registry, NewMockUserRepository(ctrl), NewMockPreferencesRepository(ctrl))
			_, err := svc.SavePreferences(context.Background(), primitive.NewObjectID(), prefs)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestSavePreferences_DefaultsTierAndStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := NewMockUserRepository(ctrl)
	prefsRepo := NewMockPreferencesRepository(ctrl)
	userID := primitive.NewObjectID()

	users.EXPECT().GetByID(gomock.Any(), userID).Return(&domain.User{ID: userID}, nil)
	prefsRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.UserPreferences) error {
			assert.Equal(t, userID, p.UserID)
			assert.Equal(t, domain.TierMale, p.GenderTier)
			return nil
		})

	svc := NewPreferencesService(catalog.MustLoad(), users, prefsRepo)
	saved, err := svc.SavePreferences(context.Background(), userID, &domain.UserPreferences{
		Goal:            domain.GoalGainStrength,
		WorkoutsPerWeek: 5,
		WorkoutSplit:    "Bro Split",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bro Split", saved.WorkoutSplit)
}

func TestSavePreferences_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := NewMockUserRepository(ctrl)
	userID := primitive.NewObjectID()
	users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, repository.ErrNotFound)

	svc := NewPreferencesService(catalog.MustLoad(), users, NewMockPreferencesRepository(ctrl))
	_, err := svc.SavePreferences(context.Background(), userID, &domain.UserPreferences{
		Goal:            domain.GoalGainMuscle,
		WorkoutsPerWeek: 3,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCompleteSurvey(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("requires preferences", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prefsRepo := NewMockPreferencesRepository(ctrl)
		prefsRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, repository.ErrNotFound)

		svc := NewPreferencesService(catalog.MustLoad(), NewMockUserRepository(ctrl), prefsRepo)
		_, err := svc.CompleteSurvey(context.Background(), userID)
		assert.ErrorIs(t, err, ErrPreferencesNotFound)
	})

	t.Run("flags the user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := NewMockUserRepository(ctrl)
		prefsRepo := NewMockPreferencesRepository(ctrl)
		prefsRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&domain.UserPreferences{UserID: userID}, nil)
		gomock.InOrder(
			users.EXPECT().SetSurveyCompleted(gomock.Any(), userID, true).Return(nil),
			users.EXPECT().GetByID(gomock.Any(), userID).Return(&domain.User{ID: userID, SurveyCompleted: true}, nil),
		)

		svc := NewPreferencesService(catalog.MustLoad(), users, prefsRepo)
		user, err := svc.CompleteSurvey(context.Background(), userID)
		require.NoError(t, err)
		assert.True(t, user.SurveyCompleted)
	})
}

func TestRecordSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	owner := env.newUser(t)
	stranger := env.newUser(t)
	workoutID := env.workoutWith(t, owner, "Plank")

	svc := NewSessionService(env.repos.Sessions, env.repos.Workouts)

	saved, err := svc.RecordSession(ctx, owner, &domain.Session{
		WorkoutID: &workoutID,
		Status:    domain.SessionCompleted,
		Duration:  1800,
	})
	require.NoError(t, err)
	assert.False(t, saved.ID.IsZero())
	assert.Equal(t, owner, saved.UserID)
	assert.False(t, saved.StartTime.IsZero())

	_, err = svc.RecordSession(ctx, stranger, &domain.Session{WorkoutID: &workoutID, Status: domain.SessionCompleted})
	assert.ErrorIs(t, err, ErrWorkoutAccessDenied)

	_, err = svc.RecordSession(ctx, owner, &domain.Session{Status: "paused"})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestEnsureProfile(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := NewPreferencesService(env.registry, env.repos.Users, env.repos.Preferences)
	userID := primitive.NewObjectID()

	_, err := svc.GetProfile(ctx, userID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.EnsureProfile(ctx, userID, "Ana", "  ")
	assert.ErrorIs(t, err, ErrValidationFailed)

	created, err := svc.EnsureProfile(ctx, userID, "Ana", " Ana@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, userID, created.ID)
	assert.Equal(t, "ana@example.com", created.Email)
	assert.False(t, created.SurveyCompleted)

	again, err := svc.EnsureProfile(ctx, userID, "Someone Else", "other@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", again.Email)

	_, err = svc.EnsureProfile(ctx, primitive.NewObjectID(), "Copy", "ana@example.com")
	assert.ErrorIs(t, err, ErrValidationFailed)
}
