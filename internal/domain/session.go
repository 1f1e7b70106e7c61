package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionStatus tracks a workout attempt.
type SessionStatus string

const (
	SessionCompleted  SessionStatus = "completed"
	SessionInProgress SessionStatus = "in_progress"
	SessionAbandoned  SessionStatus = "abandoned"
)

// Session is a workout attempt. WorkoutID becomes nil when the workout it
// pointed at is deleted; the session itself is kept.
type Session struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID  `bson:"userId" json:"userId"`
	WorkoutID *primitive.ObjectID `bson:"workoutId" json:"workoutId"`
	Status    SessionStatus       `bson:"status" json:"status"`
	StartTime time.Time           `bson:"startTime" json:"startTime"`
	Duration  int                 `bson:"duration" json:"duration"` // Seconds
}
