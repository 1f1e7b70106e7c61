package service

import (
	"context"
	"os"
	"testing"
	"time"

	"alcyxob/fitness-planner/internal/catalog"
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/importer"
	"alcyxob/fitness-planner/internal/repository/memory"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// testEnv wires services over a fresh in-memory store seeded with the bundled
// exercise catalog.
type testEnv struct {
	registry *catalog.Registry
	store    *memory.Store
	repos    memory.Repositories
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	f, err := os.Open("../../data/exercises.json")
	require.NoError(t, err)
	defer f.Close()
	records, err := importer.Decode(f)
	require.NoError(t, err)

	env := &testEnv{
		registry: catalog.MustLoad(),
		store:    memory.NewStore(),
	}
	env.repos = env.store.Repositories()
	_, err = importer.Import(context.Background(), env.repos.Exercises, env.registry, records)
	require.NoError(t, err)
	return env
}

func (e *testEnv) planService() *planService {
	return NewPlanService(
		e.registry,
		e.repos.Users,
		e.repos.Preferences,
		e.repos.Exercises,
		e.repos.Workouts,
		e.repos.WorkoutSets,
		e.store,
		nil,
	).(*planService)
}

func (e *testEnv) workoutService() WorkoutService {
	return NewWorkoutService(e.repos.Workouts, e.repos.WorkoutSets, e.repos.Sessions, e.store, nil)
}

func (e *testEnv) activityService(now time.Time) *activityService {
	svc := NewActivityService(e.registry, e.repos.Sessions, e.repos.WorkoutSets, e.repos.Exercises, 7, 3).(*activityService)
	svc.now = func() time.Time { return now }
	return svc
}

// newUser stores a user that has completed the survey.
func (e *testEnv) newUser(t *testing.T) primitive.ObjectID {
	t.Helper()
	id, err := e.repos.Users.Create(context.Background(), &domain.User{
		Name:            "Test User",
		Email:           primitive.NewObjectID().Hex() + "@example.com",
		SurveyCompleted: true,
	})
	require.NoError(t, err)
	return id
}

func intPtr(v int) *int { return &v }
