// internal/domain/exercise.go
package domain

import (
	"strings"
	"time"
	"unicode"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise represents a single exercise definition in the shared catalog.
type Exercise struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	NameKey   string             `bson:"nameKey" json:"-"`                               // Normalized name, see NormalizeExerciseName
	BodyPart  string             `bson:"bodyPart,omitempty" json:"bodyPart,omitempty"`   // e.g., "chest", "upper legs"
	Target    string             `bson:"target,omitempty" json:"target,omitempty"`       // e.g., "pectorals", "quads"
	Equipment string             `bson:"equipment,omitempty" json:"equipment,omitempty"` // e.g., "barbell", "body weight"
	MediaKey  string             `bson:"mediaKey,omitempty" json:"-"`                    // Object key of the demo media in S3

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NormalizeExerciseName builds the lookup key used to match template exercise
// names against the catalog: case-insensitive, with punctuation and repeated
// whitespace collapsed, so "Barbell Bench-Press" and "barbell bench press" match.
func NormalizeExerciseName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	space := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		default:
			space = true
		}
	}
	return b.String()
}
