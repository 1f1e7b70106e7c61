package domain

// ActivityLevel is the display bucket for a muscle's intensity.
type ActivityLevel string

const (
	ActivityNone      ActivityLevel = "none"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivitySaturated ActivityLevel = "saturated"
)

// MuscleState is derived on demand from session history and never stored.
type MuscleState struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Intensity       float64       `json:"intensity"` // 0.0 - 1.0
	WeeklyFrequency int           `json:"weeklyFrequency"`
	Level           ActivityLevel `json:"level"`
	IsHighlighted   bool          `json:"isHighlighted"`
	IsSelected      bool          `json:"isSelected"`
}
