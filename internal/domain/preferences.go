package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Goal is the user's stated fitness goal. It only steers the split recommendation.
type Goal string

const (
	GoalLoseWeight     Goal = "lose_weight"
	GoalGainMuscle     Goal = "gain_muscle"
	GoalGainStrength   Goal = "gain_strength"
	GoalMaintainMuscle Goal = "maintain_muscle"
)

// ExperienceLevel is informational only; generation does not branch on it.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// GenderTier selects which exercise list variant of a day template is used.
type GenderTier string

const (
	TierMale   GenderTier = "male"
	TierFemale GenderTier = "female"
	TierSenior GenderTier = "senior"
)

// DefaultTier is used when preferences carry no tier.
const DefaultTier = TierMale

// GenderTiers lists every tier a day template must provide.
var GenderTiers = []GenderTier{TierMale, TierFemale, TierSenior}

// UserPreferences holds the answers of the preference survey, one document per user.
type UserPreferences struct {
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Goal            Goal               `bson:"goal" json:"goal"`
	ExperienceLevel ExperienceLevel    `bson:"experienceLevel,omitempty" json:"experienceLevel,omitempty"`
	WorkoutsPerWeek int                `bson:"workoutsPerWeek" json:"workoutsPerWeek"`
	WorkoutSplit    string             `bson:"workoutSplit,omitempty" json:"workoutSplit,omitempty"` // Explicit archetype (index or name), overrides the recommendation
	SetsPerExercise *int               `bson:"setsPerExercise,omitempty" json:"setsPerExercise,omitempty"`
	RestTime        *int               `bson:"restTime,omitempty" json:"restTime,omitempty"` // Seconds
	GenderTier      GenderTier         `bson:"genderTier" json:"genderTier"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Tier returns the configured tier, falling back to DefaultTier.
func (p *UserPreferences) Tier() GenderTier {
	if p.GenderTier == "" {
		return DefaultTier
	}
	return p.GenderTier
}
