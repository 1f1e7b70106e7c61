package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutType distinguishes generated workouts from ones the user built by hand.
type WorkoutType string

const (
	WorkoutTypeAutoGenerated WorkoutType = "auto_generated"
	WorkoutTypeCustom        WorkoutType = "custom"
)

// GeneratedWorkout is one training day produced by a plan generation run.
type GeneratedWorkout struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Title           string             `bson:"title" json:"title"` // e.g., "Leg Day - Lower A"
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	TemplateName    string             `bson:"templateName" json:"templateName"`
	SplitName       string             `bson:"splitName" json:"splitName"`
	DayIndex        int                `bson:"dayIndex" json:"dayIndex"`               // 1-based position within the split
	GenerationRunID string             `bson:"generationRunId" json:"generationRunId"` // Shared by every workout of one run
	WorkoutType     WorkoutType        `bson:"workoutType" json:"workoutType"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// WorkoutSet is a single planned set. Sets of the same exercise form a
// contiguous SetOrder run within their workout.
type WorkoutSet struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkoutID    primitive.ObjectID `bson:"workoutId" json:"workoutId"`
	ExerciseID   primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	ExerciseName string             `bson:"exerciseName" json:"exerciseName"`
	PlannedReps  int                `bson:"plannedReps" json:"plannedReps"`
	Weight       *float64           `bson:"weight" json:"weight"`     // Plans never prescribe absolute load
	RestTime     int                `bson:"restTime" json:"restTime"` // Seconds
	SetOrder     int                `bson:"setOrder" json:"setOrder"`
}
