package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCleanupAutoGenerated_KeepsSessions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.newUser(t)

	// A 3-day plan minus its last day leaves two auto-generated workouts.
	workouts, err := env.planService().GeneratePlanWithPreferences(ctx, userID, &domain.UserPreferences{
		Goal:            domain.GoalLoseWeight,
		WorkoutsPerWeek: 3,
	})
	require.NoError(t, err)
	_, err = env.workoutService().DeleteWorkout(ctx, userID, workouts[2].ID)
	require.NoError(t, err)
	first, second := workouts[0].ID, workouts[1].ID

	custom := env.workoutWith(t, userID, "Plank")

	start := time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		env.session(t, userID, &first, domain.SessionCompleted, start.AddDate(0, 0, i))
	}
	env.session(t, userID, &custom, domain.SessionCompleted, start)

	result, err := env.workoutService().CleanupAutoGenerated(ctx, userID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.WorkoutsDeleted)
	assert.EqualValues(t, 5, result.SessionsDetached)
	assert.Positive(t, result.SetsDeleted)

	remaining, err := env.repos.Workouts.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, custom, remaining[0].ID)

	sets, err := env.repos.WorkoutSets.GetByWorkoutIDs(ctx, []primitive.ObjectID{first, second})
	require.NoError(t, err)
	assert.Empty(t, sets)

	sessions, err := env.repos.Sessions.ListByUser(ctx, userID, domain.SessionCompleted, start.AddDate(0, 0, -1))
	require.NoError(t, err)
	require.Len(t, sessions, 6)
	detached := 0
	for _, s := range sessions {
		if s.WorkoutID == nil {
			detached++
			continue
		}
		assert.Equal(t, custom, *s.WorkoutID)
	}
	assert.Equal(t, 5, detached)
}

func TestCleanupAutoGenerated_NothingToDo(t *testing.T) {
	env := newTestEnv(t)
	result, err := env.workoutService().CleanupAutoGenerated(context.Background(), env.newUser(t))
	require.NoError(t, err)
	assert.Equal(t, CleanupResult{}, *result)
}

func TestCleanupAutoGenerated_Atomic(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.newUser(t)

	workouts, err := env.planService().GeneratePlanWithPreferences(ctx, userID, &domain.UserPreferences{
		Goal:            domain.GoalGainMuscle,
		WorkoutsPerWeek: 4,
	})
	require.NoError(t, err)
	w := workouts[0].ID
	env.session(t, userID, &w, domain.SessionCompleted, activityNow)

	boom := errors.New("primary stepped down")
	env.store.FailAfter(memory.OpDeleteWorkouts, 0, boom)
	_, err = env.workoutService().CleanupAutoGenerated(ctx, userID)
	assert.ErrorIs(t, err, boom)

	stored, err := env.repos.Workouts.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, stored, 4)

	sessions, err := env.repos.Sessions.ListByUser(ctx, userID, domain.SessionCompleted, activityNow.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.NotNil(t, sessions[0].WorkoutID, "detach must roll back with the delete")
	assert.Equal(t, w, *sessions[0].WorkoutID)

	sets, err := env.repos.WorkoutSets.GetByWorkoutID(ctx, w)
	require.NoError(t, err)
	assert.NotEmpty(t, sets)
}

func TestDeleteWorkout(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	owner := env.newUser(t)
	stranger := env.newUser(t)
	svc := env.workoutService()

	workouts, err := env.planService().GeneratePlanWithPreferences(ctx, owner, &domain.UserPreferences{
		Goal:            domain.GoalGainMuscle,
		WorkoutsPerWeek: 3,
	})
	require.NoError(t, err)
	target := workouts[0].ID
	env.session(t, owner, &target, domain.SessionCompleted, activityNow)

	_, err = svc.DeleteWorkout(ctx, stranger, target)
	assert.ErrorIs(t, err, ErrWorkoutAccessDenied)

	_, err = svc.DeleteWorkout(ctx, owner, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrWorkoutNotFound)

	result, err := svc.DeleteWorkout(ctx, owner, target)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.WorkoutsDeleted)
	assert.EqualValues(t, 1, result.SessionsDetached)

	_, err = svc.GetWorkout(ctx, owner, target)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)

	details, err := svc.GetWorkout(ctx, owner, workouts[1].ID)
	require.NoError(t, err)
	assert.Equal(t, workouts[1].Title, details.Title)
	assert.NotEmpty(t, details.Sets)

	list, err := svc.ListWorkouts(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
