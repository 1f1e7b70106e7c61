package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the minimal profile the planner needs. Identity itself lives with the
// external identity provider; the ID matches the token subject.
type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	SurveyCompleted bool               `bson:"surveyCompleted" json:"surveyCompleted"` // Onboarding survey done; required before plan generation
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
