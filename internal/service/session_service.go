package service

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionService records workout attempts. Sessions feed the activity view.
type SessionService interface {
	RecordSession(ctx context.Context, userID primitive.ObjectID, session *domain.Session) (*domain.Session, error)
}

// sessionService implements the SessionService interface.
type sessionService struct {
	sessionRepo repository.SessionRepository
	workoutRepo repository.WorkoutRepository
	now         func() time.Time
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(sessionRepo repository.SessionRepository, workoutRepo repository.WorkoutRepository) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		workoutRepo: workoutRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *sessionService) RecordSession(ctx context.Context, userID primitive.ObjectID, session *domain.Session) (*domain.Session, error) {
	switch session.Status {
	case domain.SessionCompleted, domain.SessionInProgress, domain.SessionAbandoned:
	default:
		return nil, fmt.Errorf("%w: unknown session status %q", ErrValidationFailed, session.Status)
	}
	if session.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", ErrValidationFailed)
	}
	if session.StartTime.IsZero() {
		session.StartTime = s.now()
	}
	if session.StartTime.After(s.now().Add(time.Minute)) {
		return nil, fmt.Errorf("%w: startTime is in the future", ErrValidationFailed)
	}

	if session.WorkoutID != nil {
		workout, err := s.workoutRepo.GetByID(ctx, *session.WorkoutID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrWorkoutNotFound
			}
			return nil, err
		}
		if workout.UserID != userID {
			return nil, ErrWorkoutAccessDenied
		}
	}

	session.UserID = userID
	id, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, err
	}
	session.ID = id
	return session, nil
}
