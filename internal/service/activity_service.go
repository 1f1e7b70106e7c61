package service

import (
	"alcyxob/fitness-planner/internal/catalog"
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Defaults for the activity window and the frequency that saturates intensity.
const (
	DefaultActivityWindowDays      = 7
	DefaultIntensitySaturationDays = 3
	MaxActivityWindowDays          = 90
)

var ErrInvalidWindow = errors.New("activity window must be between 1 and 90 days")

// ActivityService derives per-muscle activity from completed sessions.
type ActivityService interface {
	// AggregateActivity returns a state for every known muscle. windowDays <= 0
	// uses the configured default.
	AggregateActivity(ctx context.Context, userID primitive.ObjectID, windowDays int) (map[string]domain.MuscleState, error)
}

// activityService implements the ActivityService interface.
type activityService struct {
	registry       *catalog.Registry
	sessionRepo    repository.SessionRepository
	setRepo        repository.WorkoutSetRepository
	exerciseRepo   repository.ExerciseRepository
	windowDays     int
	saturationDays int

	now func() time.Time
}

// NewActivityService creates a new instance of activityService. Non-positive
// windowDays or saturationDays fall back to the defaults.
func NewActivityService(
	registry *catalog.Registry,
	sessionRepo repository.SessionRepository,
	setRepo repository.WorkoutSetRepository,
	exerciseRepo repository.ExerciseRepository,
	windowDays, saturationDays int,
) ActivityService {
	if windowDays <= 0 {
		windowDays = DefaultActivityWindowDays
	}
	if saturationDays <= 0 {
		saturationDays = DefaultIntensitySaturationDays
	}
	return &activityService{
		registry:       registry,
		sessionRepo:    sessionRepo,
		setRepo:        setRepo,
		exerciseRepo:   exerciseRepo,
		windowDays:     windowDays,
		saturationDays: saturationDays,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (s *activityService) AggregateActivity(ctx context.Context, userID primitive.ObjectID, windowDays int) (map[string]domain.MuscleState, error) {
	if windowDays <= 0 {
		windowDays = s.windowDays
	}
	if windowDays > MaxActivityWindowDays {
		return nil, ErrInvalidWindow
	}
	since := s.now().AddDate(0, 0, -windowDays)

	sessions, err := s.sessionRepo.ListByUser(ctx, userID, domain.SessionCompleted, since)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	var workoutIDs []primitive.ObjectID
	seenWorkout := make(map[primitive.ObjectID]struct{})
	for _, se := range sessions {
		if se.WorkoutID == nil {
			continue
		}
		if _, ok := seenWorkout[*se.WorkoutID]; ok {
			continue
		}
		seenWorkout[*se.WorkoutID] = struct{}{}
		workoutIDs = append(workoutIDs, *se.WorkoutID)
	}

	setsByWorkout := make(map[primitive.ObjectID][]domain.WorkoutSet)
	exercisesByID := make(map[primitive.ObjectID]domain.Exercise)
	if len(workoutIDs) > 0 {
		sets, err := s.setRepo.GetByWorkoutIDs(ctx, workoutIDs)
		if err != nil {
			return nil, fmt.Errorf("load workout sets: %w", err)
		}
		var exerciseIDs []primitive.ObjectID
		seenExercise := make(map[primitive.ObjectID]struct{})
		for _, ws := range sets {
			setsByWorkout[ws.WorkoutID] = append(setsByWorkout[ws.WorkoutID], ws)
			if _, ok := seenExercise[ws.ExerciseID]; !ok {
				seenExercise[ws.ExerciseID] = struct{}{}
				exerciseIDs = append(exerciseIDs, ws.ExerciseID)
			}
		}

		exercises, err := s.exerciseRepo.GetByIDs(ctx, exerciseIDs)
		if err != nil {
			return nil, fmt.Errorf("load exercises: %w", err)
		}
		for _, e := range exercises {
			exercisesByID[e.ID] = e
		}
	}

	return ComputeMuscleStates(s.registry, sessions, setsByWorkout, exercisesByID, s.saturationDays), nil
}

// ComputeMuscleStates is the pure core of the aggregation. A muscle's weekly
// frequency counts distinct UTC calendar days with at least one exercise whose
// target maps to it. Every muscle of the registry is present in the result.
func ComputeMuscleStates(
	registry *catalog.Registry,
	sessions []domain.Session,
	setsByWorkout map[primitive.ObjectID][]domain.WorkoutSet,
	exercisesByID map[primitive.ObjectID]domain.Exercise,
	saturationDays int,
) map[string]domain.MuscleState {
	if saturationDays <= 0 {
		saturationDays = DefaultIntensitySaturationDays
	}

	type dayKey struct {
		year  int
		month time.Month
		day   int
	}
	daysByMuscle := make(map[string]map[dayKey]struct{})
	unmapped := make(map[string]struct{})

	for _, se := range sessions {
		if se.Status != domain.SessionCompleted || se.WorkoutID == nil {
			continue
		}
		y, m, d := se.StartTime.UTC().Date()
		day := dayKey{y, m, d}
		for _, ws := range setsByWorkout[*se.WorkoutID] {
			exercise, ok := exercisesByID[ws.ExerciseID]
			if !ok {
				continue
			}
			muscle, ok := registry.MuscleForTarget(exercise.Target)
			if !ok {
				unmapped[exercise.Target] = struct{}{}
				continue
			}
			if daysByMuscle[muscle.ID] == nil {
				daysByMuscle[muscle.ID] = make(map[dayKey]struct{})
			}
			daysByMuscle[muscle.ID][day] = struct{}{}
		}
	}
	for target := range unmapped {
		log.WithField("target", target).Debug("exercise target does not map to a known muscle")
	}

	states := make(map[string]domain.MuscleState, len(registry.Muscles()))
	for _, m := range registry.Muscles() {
		freq := len(daysByMuscle[m.ID])
		intensity := math.Min(float64(freq)/float64(saturationDays), 1.0)
		states[m.ID] = domain.MuscleState{
			ID:              m.ID,
			Name:            m.Name,
			Intensity:       intensity,
			WeeklyFrequency: freq,
			Level:           activityLevel(intensity),
		}
	}
	return states
}

func activityLevel(intensity float64) domain.ActivityLevel {
	switch {
	case intensity <= 0:
		return domain.ActivityNone
	case intensity >= 1:
		return domain.ActivitySaturated
	case intensity < 0.5:
		return domain.ActivityLight
	default:
		return domain.ActivityModerate
	}
}
