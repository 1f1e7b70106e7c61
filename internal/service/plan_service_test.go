package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"alcyxob/fitness-planner/internal/catalog"
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/instrumentation"
	"alcyxob/fitness-planner/internal/repository"
	"alcyxob/fitness-planner/internal/repository/memory"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestGeneratePlan_GainMuscleFourDays(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.planService()
	svc.newRunID = func() string { return "run-1" }
	userID := env.newUser(t)

	workouts, err := svc.GeneratePlanWithPreferences(ctx, userID, &domain.UserPreferences{
		Goal:            domain.GoalGainMuscle,
		WorkoutsPerWeek: 4,
		GenderTier:      domain.TierMale,
	})
	require.NoError(t, err)
	require.Len(t, workouts, 4)

	wantTemplates := []string{"Upper A", "Lower A", "Upper B", "Lower B"}
	for i, w := range workouts {
		assert.Equal(t, wantTemplates[i], w.TemplateName)
		assert.Contains(t, w.Title, wantTemplates[i])
		assert.Equal(t, i+1, w.DayIndex)
		assert.Equal(t, "2x Upper/Lower", w.SplitName)
		assert.Equal(t, "run-1", w.GenerationRunID)
		assert.Equal(t, domain.WorkoutTypeAutoGenerated, w.WorkoutType)
		assert.False(t, w.ID.IsZero())
	}
	assert.Equal(t, "Leg Day - Lower A", workouts[1].Title)

	stored, err := env.repos.Workouts.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, stored, 4)
	for i, w := range stored {
		assert.Equal(t, wantTemplates[i], w.TemplateName)
	}

	sets, err := env.repos.WorkoutSets.GetByWorkoutID(ctx, workouts[0].ID)
	require.NoError(t, err)
	require.NotEmpty(t, sets)
	first := sets[0]
	assert.Equal(t, "Barbell bench press", first.ExerciseName)
	assert.Equal(t, 8, first.PlannedReps) // 6-10
	assert.Equal(t, 120, first.RestTime)
	assert.Nil(t, first.Weight)
}

func TestGeneratePlan_SetsOverrideReplacesTemplateCount(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.newUser(t)

	workouts, err := env.planService().GeneratePlanWithPreferences(ctx, userID, &domain.UserPreferences{
		Goal:            domain.GoalMaintainMuscle,
		WorkoutsPerWeek: 3,
		GenderTier:      domain.TierSenior,
		SetsPerExercise: intPtr(3),
	})
	require.NoError(t, err)
	require.Len(t, workouts, 3)

	for _, w := range workouts {
		prescriptions, err := env.registry.ResolveDay(w.TemplateName, domain.TierSenior)
		require.NoError(t, err)
		for _, p := range prescriptions {
			require.Equal(t, 2, p.SetCount, "senior templates prescribe two sets")
		}

		sets, err := env.repos.WorkoutSets.GetByWorkoutID(ctx, w.ID)
		require.NoError(t, err)
		perExercise := map[primitive.ObjectID]int{}
		for _, s := range sets {
			perExercise[s.ExerciseID]++
		}
		assert.Len(t, perExercise, len(prescriptions))
		for exerciseID, n := range perExercise {
			assert.Equal(t, 3, n, "exercise %s in %s", exerciseID.Hex(), w.TemplateName)
		}
	}
}

func TestGeneratePlan_RestOverride(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.newUser(t)

	workouts, err := env.planService().GeneratePlanWithPreferences(ctx, userID, &domain.UserPreferences{
		Goal:            domain.GoalLoseWeight,
		WorkoutsPerWeek: 3,
		RestTime:        intPtr(45),
	})
	require.NoError(t, err)

	ids := make([]primitive.ObjectID, 0, len(workouts))
	for _, w := range workouts {
		ids = append(ids, w.ID)
	}
	sets, err := env.repos.WorkoutSets.GetByWorkoutIDs(ctx, ids)
	require.NoError(t, err)
	require.NotEmpty(t, sets)
	for _, s := range sets {
		assert.Equal(t, 45, s.RestTime)
	}
}

func TestGeneratePlan_SetOrderContiguous(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.newUser(t)

	for _, tier := range domain.GenderTiers {
		workouts, err := env.planService().GeneratePlanWithPreferences(ctx, userID, &domain.UserPreferences{
			Goal:            domain.GoalGainStrength,
			WorkoutsPerWeek: 5,
			GenderTier:      tier,
		})
		require.NoError(t, err)

		for _, w := range workouts {
			prescriptions, err := env.registry.ResolveDay(w.TemplateName, tier)
			require.NoError(t, err)

			sets, err := env.repos.WorkoutSets.GetByWorkoutID(ctx, w.ID)
			require.NoError(t, err)
			sort.Slice(sets, func(i, j int) bool { return sets[i].SetOrder < sets[j].SetOrder })

			// Collapse into blocks and compare with the prescribed order.
			var blocks []string
			for i, s := range sets {
				assert.Equal(t, i+1, s.SetOrder)
				if i == 0 || sets[i-1].ExerciseID != s.ExerciseID {
					blocks = append(blocks, domain.NormalizeExerciseName(s.ExerciseName))
				}
			}
			var want []string
			for _, p := range prescriptions {
				want = append(want, domain.NormalizeExerciseName(p.ExerciseName))
			}
			assert.Equal(t, want, blocks, "%s/%s", w.TemplateName, tier)
		}
	}
}

func TestGeneratePlan_Deterministic(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.newUser(t)
	prefs := domain.UserPreferences{
		Goal:            domain.GoalGainMuscle,
		WorkoutsPerWeek: 6,
		GenderTier:      domain.TierFemale,
		SetsPerExercise: intPtr(4),
	}

	type row struct {
		template string
		exercise string
		reps     int
		rest     int
		order    int
	}
	snapshot := func() []row {
		p := prefs
		workouts, err := env.planService().GeneratePlanWithPreferences(ctx, userID, &p)
		require.NoError(t, err)
		var rows []row
		for _, w := range workouts {
			sets, err := env.repos.WorkoutSets.GetByWorkoutID(ctx, w.ID)
			require.NoError(t, err)
			for _, s := range sets {
				rows = append(rows, row{w.TemplateName, s.ExerciseName, s.PlannedReps, s.RestTime, s.SetOrder})
			}
		}
		return rows
	}

	first := snapshot()
	second := snapshot()
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)

	// Both runs are kept side by side.
	stored, err := env.repos.Workouts.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, stored, 12)
}

func TestGeneratePlan_UnresolvedExerciseSkipped(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.planService()
	userID := env.newUser(t)

	// Same catalog minus the bench press.
	store := memory.NewStore()
	repos := store.Repositories()
	all, err := env.repos.Exercises.List(ctx, repository.ExerciseFilter{})
	require.NoError(t, err)
	for _, e := range all {
		if e.NameKey == "barbell bench press" {
			continue
		}
		e := e
		_, err := repos.Exercises.Create(ctx, &e)
		require.NoError(t, err)
	}
	svc.exerciseRepo = repos.Exercises
	svc.instr = instrumentation.NewTestInstrumentation()

	workouts, err := svc.GeneratePlanWithPreferences(ctx, userID, &domain.UserPreferences{
		Goal:            domain.GoalGainMuscle,
		WorkoutsPerWeek: 4,
	})
	require.NoError(t, err)
	require.Len(t, workouts, 4)

	sets, err := env.repos.WorkoutSets.GetByWorkoutID(ctx, workouts[0].ID)
	require.NoError(t, err)
	require.NotEmpty(t, sets)
	for i, s := range sets {
		assert.NotEqual(t, "Barbell bench press", s.ExerciseName)
		assert.Equal(t, i+1, s.SetOrder)
	}
	assert.GreaterOrEqual(t, testutil.ToFloat64(svc.instr.CounterUnresolvedExercises), 1.0)
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.instr.CounterPlansGenerated.WithLabelValues("2x Upper/Lower")))
}

func TestGeneratePlan_RollsBackOnPersistenceFailure(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.newUser(t)
	boom := errors.New("write conflict")

	env.store.FailAfter(memory.OpCreateWorkout, 2, boom)
	svc := env.planService()
	svc.instr = instrumentation.NewTestInstrumentation()
	workouts, err := svc.GeneratePlanWithPreferences(ctx, userID, &domain.UserPreferences{
		Goal:            domain.GoalGainMuscle,
		WorkoutsPerWeek: 4,
	})
	assert.Nil(t, workouts)
	assert.ErrorIs(t, err, ErrPlanPersistenceFailed)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.instr.CounterPlanFailures))

	stored, err := env.repos.Workouts.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestGeneratePlan_SetInsertFailureRollsBackWorkouts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.newUser(t)

	env.store.FailAfter(memory.OpCreateSets, 1, errors.New("timeout"))
	_, err := env.planService().GeneratePlanWithPreferences(ctx, userID, &domain.UserPreferences{
		Goal:            domain.GoalLoseWeight,
		WorkoutsPerWeek: 3,
	})
	require.ErrorIs(t, err, ErrPlanPersistenceFailed)

	stored, err := env.repos.Workouts.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestGeneratePlan_UnsupportedFrequency(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.newUser(t)

	_, err := env.planService().GeneratePlanWithPreferences(ctx, userID, &domain.UserPreferences{
		Goal:            domain.GoalGainMuscle,
		WorkoutsPerWeek: 7,
	})
	assert.ErrorIs(t, err, catalog.ErrUnsupportedFrequency)

	stored, err := env.repos.Workouts.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestGeneratePlan_EmptyTierUsesDefault(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.newUser(t)

	workouts, err := env.planService().GeneratePlanWithPreferences(ctx, userID, &domain.UserPreferences{
		Goal:            domain.GoalGainMuscle,
		WorkoutsPerWeek: 4,
	})
	require.NoError(t, err)
	require.NotEmpty(t, workouts)
	sets, err := env.repos.WorkoutSets.GetByWorkoutID(ctx, workouts[0].ID)
	require.NoError(t, err)
	require.NotEmpty(t, sets)
	assert.Equal(t, "Barbell bench press", sets[0].ExerciseName)
}

func TestGeneratePlan_TierWithoutListFails(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.newUser(t)

	workouts, err := env.planService().GeneratePlanWithPreferences(ctx, userID, &domain.UserPreferences{
		Goal:            domain.GoalGainMuscle,
		WorkoutsPerWeek: 4,
		GenderTier:      domain.GenderTier("junior"),
	})
	assert.ErrorIs(t, err, catalog.ErrMissingTierVariant)
	assert.Nil(t, workouts)

	stored, err := env.repos.Workouts.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestGeneratePlan_ProfileIncomplete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := primitive.NewObjectID()

	for name, user := range map[string]struct {
		user *domain.User
		err  error
	}{
		"survey not completed": {user: &domain.User{ID: userID}},
		"user missing":         {err: repository.ErrNotFound},
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := NewMockUserRepository(ctrl)
			prefs := NewMockPreferencesRepository(ctrl)
			users.EXPECT().GetByID(gomock.Any(), userID).Return(user.user, user.err)

			svc := NewPlanService(env.registry, users, prefs, env.repos.Exercises, env.repos.Workouts, env.repos.WorkoutSets, env.store, nil)
			_, err := svc.GeneratePlan(ctx, userID)
			assert.ErrorIs(t, err, ErrProfileIncomplete)
		})
	}

	stored, err := env.repos.Workouts.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestGeneratePlan_LoadsStoredPreferences(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := primitive.NewObjectID()

	ctrl := gomock.NewController(t)
	users := NewMockUserRepository(ctrl)
	prefs := NewMockPreferencesRepository(ctrl)
	users.EXPECT().GetByID(gomock.Any(), userID).Return(&domain.User{ID: userID, SurveyCompleted: true}, nil).Times(2)
	gomock.InOrder(
		prefs.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, repository.ErrNotFound),
		prefs.EXPECT().GetByUserID(gomock.Any(), userID).Return(&domain.UserPreferences{
			UserID:          userID,
			Goal:            domain.GoalGainStrength,
			WorkoutsPerWeek: 3,
			WorkoutSplit:    "Push/Pull/Legs",
		}, nil),
	)

	svc := NewPlanService(env.registry, users, prefs, env.repos.Exercises, env.repos.Workouts, env.repos.WorkoutSets, env.store, nil)

	_, err := svc.GeneratePlan(ctx, userID)
	assert.ErrorIs(t, err, ErrPreferencesNotFound)

	workouts, err := svc.GeneratePlan(ctx, userID)
	require.NoError(t, err)
	require.Len(t, workouts, 3)
	assert.Equal(t, "Push A", workouts[0].TemplateName)
	assert.Equal(t, "Push/Pull/Legs", workouts[0].SplitName)
}
