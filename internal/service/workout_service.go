package service

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/instrumentation"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrWorkoutNotFound     = errors.New("workout not found")
	ErrWorkoutAccessDenied = errors.New("access denied to this workout")
)

// WorkoutDetails is a workout together with its sets in set order.
type WorkoutDetails struct {
	domain.GeneratedWorkout
	Sets []domain.WorkoutSet `json:"sets"`
}

// CleanupResult reports what a cleanup removed.
type CleanupResult struct {
	WorkoutsDeleted  int64 `json:"workoutsDeleted"`
	SetsDeleted      int64 `json:"setsDeleted"`
	SessionsDetached int64 `json:"sessionsDetached"`
}

// WorkoutService reads and removes generated workouts. Removal cascades to
// sets and detaches sessions; sessions themselves are never deleted.
type WorkoutService interface {
	ListWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.GeneratedWorkout, error)
	GetWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*WorkoutDetails, error)
	DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*CleanupResult, error)
	// CleanupAutoGenerated removes every auto-generated workout of the user.
	// It runs when a subscription is cancelled.
	CleanupAutoGenerated(ctx context.Context, userID primitive.ObjectID) (*CleanupResult, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	setRepo     repository.WorkoutSetRepository
	sessionRepo repository.SessionRepository
	tx          repository.Transactor
	instr       *instrumentation.Instrumentation
}

// NewWorkoutService creates a new instance of workoutService. instr may be nil.
func NewWorkoutService(
	workoutRepo repository.WorkoutRepository,
	setRepo repository.WorkoutSetRepository,
	sessionRepo repository.SessionRepository,
	tx repository.Transactor,
	instr *instrumentation.Instrumentation,
) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		setRepo:     setRepo,
		sessionRepo: sessionRepo,
		tx:          tx,
		instr:       instr,
	}
}

func (s *workoutService) ListWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.GeneratedWorkout, error) {
	return s.workoutRepo.GetByUserID(ctx, userID)
}

func (s *workoutService) GetWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*WorkoutDetails, error) {
	workout, err := s.ownedWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	sets, err := s.setRepo.GetByWorkoutID(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	return &WorkoutDetails{GeneratedWorkout: *workout, Sets: sets}, nil
}

func (s *workoutService) DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*CleanupResult, error) {
	if _, err := s.ownedWorkout(ctx, userID, workoutID); err != nil {
		return nil, err
	}
	result, err := s.deleteCascade(ctx, userID, []primitive.ObjectID{workoutID})
	if err != nil {
		return nil, err
	}
	if result.WorkoutsDeleted == 0 {
		// Deleted concurrently between the ownership check and the transaction.
		return nil, ErrWorkoutNotFound
	}
	return result, nil
}

func (s *workoutService) CleanupAutoGenerated(ctx context.Context, userID primitive.ObjectID) (*CleanupResult, error) {
	var result *CleanupResult
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		ids, err := s.workoutRepo.ListIDsByType(txCtx, userID, domain.WorkoutTypeAutoGenerated)
		if err != nil {
			return fmt.Errorf("list auto-generated workouts: %w", err)
		}
		result, err = s.cascade(txCtx, userID, ids)
		return err
	})
	if err != nil {
		log.WithField("userId", userID.Hex()).Errorf("auto-generated workout cleanup rolled back: %s", err)
		return nil, err
	}
	s.instr.WorkoutsCleanedUp(result.WorkoutsDeleted)
	log.WithFields(log.Fields{
		"userId":           userID.Hex(),
		"workoutsDeleted":  result.WorkoutsDeleted,
		"sessionsDetached": result.SessionsDetached,
	}).Info("auto-generated workouts removed")
	return result, nil
}

func (s *workoutService) ownedWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.GeneratedWorkout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	if workout.UserID != userID {
		return nil, ErrWorkoutAccessDenied
	}
	return workout, nil
}

func (s *workoutService) deleteCascade(ctx context.Context, userID primitive.ObjectID, ids []primitive.ObjectID) (*CleanupResult, error) {
	var result *CleanupResult
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		result, err = s.cascade(txCtx, userID, ids)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// cascade must run inside a transaction.
func (s *workoutService) cascade(txCtx context.Context, userID primitive.ObjectID, ids []primitive.ObjectID) (*CleanupResult, error) {
	result := &CleanupResult{}
	if len(ids) == 0 {
		return result, nil
	}

	var err error
	if result.SessionsDetached, err = s.sessionRepo.DetachWorkouts(txCtx, ids); err != nil {
		return nil, fmt.Errorf("detach sessions: %w", err)
	}
	if result.SetsDeleted, err = s.setRepo.DeleteByWorkoutIDs(txCtx, ids); err != nil {
		return nil, fmt.Errorf("delete sets: %w", err)
	}
	if result.WorkoutsDeleted, err = s.workoutRepo.DeleteByIDs(txCtx, userID, ids); err != nil {
		return nil, fmt.Errorf("delete workouts: %w", err)
	}
	return result, nil
}
