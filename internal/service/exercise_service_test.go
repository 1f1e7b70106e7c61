package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"alcyxob/fitness-planner/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStorage struct {
	err     error
	lastKey string
}

func (f *fakeStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, expires time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastKey = objectKey
	return "https://media.example.com/" + objectKey + "?ttl=" + expires.String(), nil
}

func (f *fakeStorage) GetObject(context.Context, string) (io.ReadCloser, error) {
	return nil, errors.New("not used")
}

func TestExerciseService_GetMediaURL(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	bench, err := env.repos.Exercises.FindByName(ctx, "Barbell bench press")
	require.NoError(t, err)
	require.NotEmpty(t, bench.MediaKey)

	fs := &fakeStorage{}
	svc := NewExerciseService(env.repos.Exercises, fs, time.Minute)

	media, err := svc.GetMediaURL(ctx, bench.ID)
	require.NoError(t, err)
	assert.Equal(t, bench.MediaKey, fs.lastKey)
	assert.Contains(t, media.URL, bench.MediaKey)
	assert.WithinDuration(t, time.Now().Add(time.Minute), media.ExpiresAt, 5*time.Second)

	_, err = svc.GetMediaURL(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	fs.err = errors.New("signing failed")
	_, err = svc.GetMediaURL(ctx, bench.ID)
	assert.ErrorIs(t, err, ErrDownloadURLError)
}

func TestExerciseService_MediaEdgeCases(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	bench, err := env.repos.Exercises.FindByName(ctx, "Barbell bench press")
	require.NoError(t, err)

	_, err = NewExerciseService(env.repos.Exercises, nil, 0).GetMediaURL(ctx, bench.ID)
	assert.ErrorIs(t, err, ErrMediaUnavailable)

	bare := *bench
	bare.ID = primitive.NilObjectID
	bare.Name = "Towel row"
	bare.MediaKey = ""
	id, err := env.repos.Exercises.Create(ctx, &bare)
	require.NoError(t, err)

	_, err = NewExerciseService(env.repos.Exercises, &fakeStorage{}, 0).GetMediaURL(ctx, id)
	assert.ErrorIs(t, err, ErrMediaNotFound)
}

func TestExerciseService_ListExercisesFilters(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := NewExerciseService(env.repos.Exercises, nil, 0)

	all, err := svc.ListExercises(ctx, repository.ExerciseFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, all)

	chest, err := svc.ListExercises(ctx, repository.ExerciseFilter{Target: "pectorals"})
	require.NoError(t, err)
	require.NotEmpty(t, chest)
	assert.Less(t, len(chest), len(all))
	for _, ex := range chest {
		assert.Equal(t, "pectorals", ex.Target)
	}
}
