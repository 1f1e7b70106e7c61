// Package catalog holds the static training configuration: day templates,
// split archetypes, the goal recommendation table and the muscle taxonomy.
// Everything here is loaded once at startup, validated for referential
// integrity, and read-only afterwards.
package catalog

import (
	"errors"

	"alcyxob/fitness-planner/internal/domain"
)

var (
	ErrTemplateNotFound     = errors.New("day template not found")
	ErrMissingTierVariant   = errors.New("day template has no exercise list for tier")
	ErrUnsupportedFrequency = errors.New("unsupported workouts per week")
	ErrInvalidArchetype     = errors.New("invalid split archetype")
	ErrInvalidPrescription  = errors.New("invalid exercise prescription")
)

const (
	MinFrequency = 3
	MaxFrequency = 6
)

// ExercisePrescription is one exercise entry of a day template.
type ExercisePrescription struct {
	ExerciseName string `json:"exerciseName"`
	SetCount     int    `json:"setCount"`
	RepMin       int    `json:"repMin"`
	RepMax       int    `json:"repMax"`
	RestSeconds  int    `json:"restSeconds"`
}

// PlannedReps picks the single rep value stored on every planned set:
// the floor of the range midpoint.
func (p ExercisePrescription) PlannedReps() int {
	return (p.RepMin + p.RepMax) / 2
}

// DayTemplate is a named training day with one exercise list per tier.
type DayTemplate struct {
	Name            string                                       `json:"name"`
	TitlePrefix     string                                       `json:"titlePrefix"`
	Focus           []string                                     `json:"focus"`
	ExercisesByTier map[domain.GenderTier][]ExercisePrescription `json:"exercisesByTier"`
}

// Title is the display title of a workout generated from this template.
func (t *DayTemplate) Title() string {
	if t.TitlePrefix == "" {
		return t.Name
	}
	return t.TitlePrefix + " - " + t.Name
}

// SplitArchetype is an ordered list of day template names.
type SplitArchetype struct {
	Index int      `json:"index"`
	Name  string   `json:"name"`
	Days  []string `json:"days"`
}

func rx(name string, sets, repMin, repMax, rest int) ExercisePrescription {
	return ExercisePrescription{
		ExerciseName: name,
		SetCount:     sets,
		RepMin:       repMin,
		RepMax:       repMax,
		RestSeconds:  rest,
	}
}
