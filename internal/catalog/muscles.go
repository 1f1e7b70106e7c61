package catalog

import "alcyxob/fitness-planner/internal/domain"

// Muscle is one region of the activity silhouette. Targets lists the exercise
// catalog target labels that map onto it.
type Muscle struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Targets []string `json:"-"`
}

func defaultMuscles() []Muscle {
	return []Muscle{
		{ID: "chest", Name: "Chest", Targets: []string{"chest", "pectorals", "pecs", "serratus anterior"}},
		{ID: "shoulders", Name: "Shoulders", Targets: []string{"shoulders", "delts", "deltoids", "rear delts"}},
		{ID: "biceps", Name: "Biceps", Targets: []string{"biceps"}},
		{ID: "triceps", Name: "Triceps", Targets: []string{"triceps"}},
		{ID: "forearms", Name: "Forearms", Targets: []string{"forearms", "grip"}},
		{ID: "abs", Name: "Abs", Targets: []string{"abs", "abdominals", "core", "obliques"}},
		{ID: "traps", Name: "Traps", Targets: []string{"traps", "trapezius", "levator scapulae"}},
		{ID: "lats", Name: "Lats", Targets: []string{"lats", "latissimus dorsi"}},
		{ID: "upper_back", Name: "Upper Back", Targets: []string{"upper back", "rhomboids", "back"}},
		{ID: "lower_back", Name: "Lower Back", Targets: []string{"lower back", "spine", "erector spinae"}},
		{ID: "glutes", Name: "Glutes", Targets: []string{"glutes", "gluteus maximus"}},
		{ID: "quads", Name: "Quadriceps", Targets: []string{"quads", "quadriceps"}},
		{ID: "hamstrings", Name: "Hamstrings", Targets: []string{"hamstrings"}},
		{ID: "calves", Name: "Calves", Targets: []string{"calves"}},
		{ID: "adductors", Name: "Adductors", Targets: []string{"adductors"}},
		{ID: "abductors", Name: "Abductors", Targets: []string{"abductors"}},
	}
}

func muscleKey(target string) string {
	return domain.NormalizeExerciseName(target)
}
