package catalog

import "alcyxob/fitness-planner/internal/domain"

const (
	male   = domain.TierMale
	female = domain.TierFemale
	senior = domain.TierSenior
)

func defaultTemplates() []DayTemplate {
	return []DayTemplate{
		{
			Name:        "Full Body A",
			TitlePrefix: "Full Body Day",
			Focus:       []string{"legs", "chest", "back", "core"},
			ExercisesByTier: map[domain.GenderTier][]ExercisePrescription{
				male: {
					rx("Barbell back squat", 4, 6, 10, 150),
					rx("Barbell bench press", 4, 6, 10, 120),
					rx("Barbell row", 3, 8, 12, 90),
					rx("Overhead barbell press", 3, 8, 10, 90),
					rx("Plank", 3, 30, 60, 60),
				},
				female: {
					rx("Goblet squat", 3, 10, 15, 90),
					rx("Hip thrust", 3, 10, 15, 90),
					rx("Lat pulldown", 3, 10, 12, 75),
					rx("Incline dumbbell press", 3, 10, 12, 75),
					rx("Dead bug", 3, 10, 12, 45),
				},
				senior: {
					rx("Sit-to-stand squat", 2, 10, 12, 90),
					rx("Machine chest press", 2, 10, 15, 90),
					rx("Seated cable row", 2, 10, 15, 90),
					rx("Bird dog", 2, 8, 12, 60),
				},
			},
		},
		{
			Name:        "Full Body B",
			TitlePrefix: "Full Body Day",
			Focus:       []string{"posterior chain", "shoulders", "back", "arms"},
			ExercisesByTier: map[domain.GenderTier][]ExercisePrescription{
				male: {
					rx("Deadlift", 3, 4, 6, 180),
					rx("Incline dumbbell press", 3, 8, 12, 90),
					rx("Pull-up", 3, 6, 10, 120),
					rx("Walking lunge", 3, 10, 12, 90),
					rx("Barbell curl", 3, 8, 12, 60),
				},
				female: {
					rx("Romanian deadlift", 3, 10, 12, 90),
					rx("Seated dumbbell shoulder press", 3, 10, 12, 75),
					rx("One-arm dumbbell row", 3, 10, 12, 75),
					rx("Bulgarian split squat", 3, 10, 12, 90),
					rx("Glute bridge", 3, 12, 15, 60),
				},
				senior: {
					rx("Leg press", 2, 10, 15, 90),
					rx("Wall push-up", 2, 10, 15, 60),
					rx("Resistance band row", 2, 12, 15, 60),
					rx("Step-up", 2, 8, 12, 90),
				},
			},
		},
		{
			Name:        "Full Body C",
			TitlePrefix: "Full Body Day",
			Focus:       []string{"legs", "chest", "back", "core"},
			ExercisesByTier: map[domain.GenderTier][]ExercisePrescription{
				male: {
					rx("Leg press", 4, 8, 12, 120),
					rx("Close-grip bench press", 3, 6, 10, 120),
					rx("Seated cable row", 3, 10, 12, 90),
					rx("Dumbbell lateral raise", 3, 12, 15, 60),
					rx("Hanging leg raise", 3, 10, 15, 60),
				},
				female: {
					rx("Leg press", 3, 12, 15, 90),
					rx("Push-up", 3, 8, 12, 60),
					rx("Seated cable row", 3, 10, 12, 75),
					rx("Cable kickback", 3, 12, 15, 45),
					rx("Plank", 3, 20, 40, 45),
				},
				senior: {
					rx("Sit-to-stand squat", 2, 10, 12, 90),
					rx("Assisted pull-up", 2, 8, 12, 90),
					rx("Dumbbell lateral raise", 2, 10, 12, 60),
					rx("Dead bug", 2, 8, 10, 60),
				},
			},
		},
		{
			Name:        "Upper A",
			TitlePrefix: "Upper Body Day",
			Focus:       []string{"chest", "back", "shoulders", "arms"},
			ExercisesByTier: map[domain.GenderTier][]ExercisePrescription{
				male: {
					rx("Barbell bench press", 4, 6, 10, 120),
					rx("Barbell row", 4, 6, 10, 120),
					rx("Overhead barbell press", 3, 8, 10, 90),
					rx("Lat pulldown", 3, 10, 12, 90),
					rx("Barbell curl", 3, 8, 12, 60),
					rx("Triceps pushdown", 3, 10, 12, 60),
				},
				female: {
					rx("Incline dumbbell press", 3, 10, 12, 75),
					rx("Lat pulldown", 3, 10, 12, 75),
					rx("Seated dumbbell shoulder press", 3, 10, 12, 75),
					rx("Seated cable row", 3, 10, 12, 75),
					rx("Dumbbell curl", 2, 12, 15, 45),
					rx("Overhead triceps extension", 2, 12, 15, 45),
				},
				senior: {
					rx("Machine chest press", 2, 10, 15, 90),
					rx("Seated cable row", 2, 10, 15, 90),
					rx("Dumbbell lateral raise", 2, 10, 12, 60),
					rx("Dumbbell curl", 2, 10, 12, 60),
				},
			},
		},
		{
			Name:        "Upper B",
			TitlePrefix: "Upper Body Day",
			Focus:       []string{"back", "chest", "shoulders", "arms"},
			ExercisesByTier: map[domain.GenderTier][]ExercisePrescription{
				male: {
					rx("Pull-up", 4, 6, 10, 120),
					rx("Incline dumbbell press", 4, 8, 12, 90),
					rx("One-arm dumbbell row", 3, 8, 12, 90),
					rx("Dumbbell lateral raise", 3, 12, 15, 60),
					rx("Hammer curl", 3, 10, 12, 60),
					rx("Overhead triceps extension", 3, 10, 12, 60),
				},
				female: {
					rx("Assisted pull-up", 3, 8, 12, 90),
					rx("Push-up", 3, 8, 12, 60),
					rx("One-arm dumbbell row", 3, 10, 12, 75),
					rx("Dumbbell lateral raise", 3, 12, 15, 45),
					rx("Face pull", 3, 12, 15, 45),
					rx("Bench dip", 2, 10, 12, 45),
				},
				senior: {
					rx("Assisted pull-up", 2, 8, 12, 90),
					rx("Wall push-up", 2, 10, 15, 60),
					rx("Band pull-apart", 2, 12, 15, 60),
					rx("Hammer curl", 2, 10, 12, 60),
				},
			},
		},
		{
			Name:        "Lower A",
			TitlePrefix: "Leg Day",
			Focus:       []string{"quads", "hamstrings", "glutes", "calves"},
			ExercisesByTier: map[domain.GenderTier][]ExercisePrescription{
				male: {
					rx("Barbell back squat", 4, 6, 10, 150),
					rx("Romanian deadlift", 3, 8, 10, 120),
					rx("Leg press", 3, 10, 12, 90),
					rx("Leg curl", 3, 10, 12, 60),
					rx("Standing calf raise", 4, 10, 15, 60),
				},
				female: {
					rx("Goblet squat", 3, 10, 15, 90),
					rx("Hip thrust", 4, 10, 12, 90),
					rx("Romanian deadlift", 3, 10, 12, 90),
					rx("Hip abduction machine", 3, 12, 15, 45),
					rx("Standing calf raise", 3, 12, 15, 45),
				},
				senior: {
					rx("Sit-to-stand squat", 2, 10, 12, 90),
					rx("Leg press", 2, 10, 15, 90),
					rx("Leg curl", 2, 10, 15, 60),
					rx("Seated calf raise", 2, 12, 15, 60),
				},
			},
		},
		{
			Name:        "Lower B",
			TitlePrefix: "Leg Day",
			Focus:       []string{"glutes", "hamstrings", "quads", "core"},
			ExercisesByTier: map[domain.GenderTier][]ExercisePrescription{
				male: {
					rx("Deadlift", 4, 4, 6, 180),
					rx("Bulgarian split squat", 3, 8, 10, 90),
					rx("Leg extension", 3, 10, 15, 60),
					rx("Seated calf raise", 4, 12, 15, 60),
					rx("Hanging leg raise", 3, 10, 15, 60),
				},
				female: {
					rx("Bulgarian split squat", 3, 10, 12, 90),
					rx("Glute bridge", 3, 12, 15, 60),
					rx("Leg curl", 3, 10, 12, 60),
					rx("Hip adduction machine", 3, 12, 15, 45),
					rx("Cable kickback", 3, 12, 15, 45),
				},
				senior: {
					rx("Step-up", 2, 8, 12, 90),
					rx("Glute bridge", 2, 10, 12, 60),
					rx("Leg extension", 2, 10, 15, 60),
					rx("Bird dog", 2, 8, 12, 60),
				},
			},
		},
		{
			Name:        "Push A",
			TitlePrefix: "Push Day",
			Focus:       []string{"chest", "shoulders", "triceps"},
			ExercisesByTier: map[domain.GenderTier][]ExercisePrescription{
				male: {
					rx("Barbell bench press", 4, 6, 10, 120),
					rx("Overhead barbell press", 3, 6, 10, 120),
					rx("Incline dumbbell press", 3, 8, 12, 90),
					rx("Dumbbell lateral raise", 3, 12, 15, 60),
					rx("Triceps pushdown", 3, 10, 12, 60),
				},
				female: {
					rx("Incline dumbbell press", 3, 10, 12, 75),
					rx("Seated dumbbell shoulder press", 3, 10, 12, 75),
					rx("Push-up", 3, 8, 12, 60),
					rx("Dumbbell lateral raise", 3, 12, 15, 45),
					rx("Overhead triceps extension", 2, 12, 15, 45),
				},
				senior: {
					rx("Machine chest press", 2, 10, 15, 90),
					rx("Wall push-up", 2, 10, 15, 60),
					rx("Dumbbell lateral raise", 2, 10, 12, 60),
					rx("Triceps pushdown", 2, 10, 15, 60),
				},
			},
		},
		{
			Name:        "Push B",
			TitlePrefix: "Push Day",
			Focus:       []string{"shoulders", "chest", "triceps"},
			ExercisesByTier: map[domain.GenderTier][]ExercisePrescription{
				male: {
					rx("Seated dumbbell shoulder press", 4, 8, 10, 90),
					rx("Incline dumbbell press", 3, 8, 12, 90),
					rx("Cable crossover", 3, 12, 15, 60),
					rx("Close-grip bench press", 3, 6, 10, 120),
					rx("Overhead triceps extension", 3, 10, 12, 60),
				},
				female: {
					rx("Machine chest press", 3, 10, 12, 75),
					rx("Dumbbell lateral raise", 3, 12, 15, 45),
					rx("Dumbbell fly", 3, 12, 15, 60),
					rx("Bench dip", 3, 10, 12, 45),
				},
				senior: {
					rx("Machine chest press", 2, 10, 15, 90),
					rx("Seated dumbbell shoulder press", 2, 10, 12, 90),
					rx("Overhead triceps extension", 2, 10, 12, 60),
				},
			},
		},
		{
			Name:        "Pull A",
			TitlePrefix: "Pull Day",
			Focus:       []string{"back", "biceps", "rear delts"},
			ExercisesByTier: map[domain.GenderTier][]ExercisePrescription{
				male: {
					rx("Pull-up", 4, 6, 10, 120),
					rx("Barbell row", 4, 6, 10, 120),
					rx("Seated cable row", 3, 10, 12, 90),
					rx("Face pull", 3, 12, 15, 60),
					rx("Barbell curl", 3, 8, 12, 60),
				},
				female: {
					rx("Lat pulldown", 3, 10, 12, 75),
					rx("Seated cable row", 3, 10, 12, 75),
					rx("Face pull", 3, 12, 15, 45),
					rx("Dumbbell curl", 3, 10, 12, 45),
				},
				senior: {
					rx("Assisted pull-up", 2, 8, 12, 90),
					rx("Resistance band row", 2, 12, 15, 60),
					rx("Band pull-apart", 2, 12, 15, 60),
					rx("Dumbbell curl", 2, 10, 12, 60),
				},
			},
		},
		{
			Name:        "Pull B",
			TitlePrefix: "Pull Day",
			Focus:       []string{"back", "traps", "biceps", "forearms"},
			ExercisesByTier: map[domain.GenderTier][]ExercisePrescription{
				male: {
					rx("Deadlift", 3, 4, 6, 180),
					rx("Lat pulldown", 3, 8, 12, 90),
					rx("One-arm dumbbell row", 3, 8, 12, 90),
					rx("Barbell shrug", 3, 10, 12, 60),
					rx("Hammer curl", 3, 10, 12, 60),
					rx("Farmer's walk", 3, 30, 40, 90),
				},
				female: {
					rx("Assisted pull-up", 3, 8, 12, 90),
					rx("One-arm dumbbell row", 3, 10, 12, 75),
					rx("Back extension", 3, 12, 15, 60),
					rx("Hammer curl", 3, 10, 12, 45),
				},
				senior: {
					rx("Seated cable row", 2, 10, 15, 90),
					rx("Back extension", 2, 8, 12, 60),
					rx("Hammer curl", 2, 10, 12, 60),
				},
			},
		},
		{
			Name:        "Legs A",
			TitlePrefix: "Leg Day",
			Focus:       []string{"quads", "glutes", "hamstrings", "calves"},
			ExercisesByTier: map[domain.GenderTier][]ExercisePrescription{
				male: {
					rx("Barbell back squat", 4, 6, 10, 150),
					rx("Romanian deadlift", 3, 8, 10, 120),
					rx("Walking lunge", 3, 10, 12, 90),
					rx("Leg extension", 3, 12, 15, 60),
					rx("Standing calf raise", 4, 10, 15, 60),
				},
				female: {
					rx("Hip thrust", 4, 10, 12, 90),
					rx("Goblet squat", 3, 10, 15, 90),
					rx("Walking lunge", 3, 10, 12, 75),
					rx("Leg curl", 3, 10, 12, 60),
					rx("Hip abduction machine", 3, 12, 15, 45),
				},
				senior: {
					rx("Leg press", 2, 10, 15, 90),
					rx("Step-up", 2, 8, 12, 90),
					rx("Glute bridge", 2, 10, 12, 60),
					rx("Seated calf raise", 2, 12, 15, 60),
				},
			},
		},
		{
			Name:        "Legs B",
			TitlePrefix: "Leg Day",
			Focus:       []string{"hamstrings", "glutes", "quads", "core"},
			ExercisesByTier: map[domain.GenderTier][]ExercisePrescription{
				male: {
					rx("Deadlift", 3, 4, 6, 180),
					rx("Leg press", 4, 10, 12, 120),
					rx("Leg curl", 3, 10, 12, 60),
					rx("Hip thrust", 3, 8, 12, 90),
					rx("Cable crunch", 3, 12, 15, 60),
				},
				female: {
					rx("Romanian deadlift", 3, 10, 12, 90),
					rx("Bulgarian split squat", 3, 10, 12, 90),
					rx("Glute bridge", 3, 12, 15, 60),
					rx("Hip adduction machine", 3, 12, 15, 45),
					rx("Plank", 3, 30, 45, 45),
				},
				senior: {
					rx("Sit-to-stand squat", 2, 10, 12, 90),
					rx("Leg curl", 2, 10, 15, 60),
					rx("Hip abduction machine", 2, 10, 15, 60),
					rx("Dead bug", 2, 8, 10, 60),
				},
			},
		},
		{
			Name:        "Chest & Triceps",
			TitlePrefix: "Chest Day",
			Focus:       []string{"chest", "triceps"},
			ExercisesByTier: map[domain.GenderTier][]ExercisePrescription{
				male: {
					rx("Barbell bench press", 4, 6, 10, 120),
					rx("Incline dumbbell press", 3, 8, 12, 90),
					rx("Cable crossover", 3, 12, 15, 60),
					rx("Close-grip bench press", 3, 8, 10, 90),
					rx("Triceps pushdown", 3, 10, 12, 60),
				},
				female: {
					rx("Incline dumbbell press", 3, 10, 12, 75),
					rx("Dumbbell fly", 3, 12, 15, 60),
					rx("Push-up", 3, 8, 12, 60),
					rx("Overhead triceps extension", 3, 12, 15, 45),
				},
				senior: {
					rx("Machine chest press", 2, 10, 15, 90),
					rx("Wall push-up", 2, 10, 15, 60),
					rx("Triceps pushdown", 2, 10, 15, 60),
				},
			},
		},
		{
			Name:        "Back & Biceps",
			TitlePrefix: "Back Day",
			Focus:       []string{"back", "biceps"},
			ExercisesByTier: map[domain.GenderTier][]ExercisePrescription{
				male: {
					rx("Pull-up", 4, 6, 10, 120),
					rx("Barbell row", 4, 6, 10, 120),
					rx("Lat pulldown", 3, 10, 12, 90),
					rx("Barbell curl", 3, 8, 12, 60),
					rx("Hammer curl", 3, 10, 12, 60),
				},
				female: {
					rx("Lat pulldown", 3, 10, 12, 75),
					rx("One-arm dumbbell row", 3, 10, 12, 75),
					rx("Back extension", 3, 12, 15, 60),
					rx("Dumbbell curl", 3, 10, 12, 45),
				},
				senior: {
					rx("Assisted pull-up", 2, 8, 12, 90),
					rx("Resistance band row", 2, 12, 15, 60),
					rx("Dumbbell curl", 2, 10, 12, 60),
				},
			},
		},
		{
			Name:        "Shoulders & Arms",
			TitlePrefix: "Shoulder Day",
			Focus:       []string{"shoulders", "biceps", "triceps", "traps"},
			ExercisesByTier: map[domain.GenderTier][]ExercisePrescription{
				male: {
					rx("Overhead barbell press", 4, 6, 10, 120),
					rx("Dumbbell lateral raise", 4, 12, 15, 60),
					rx("Face pull", 3, 12, 15, 60),
					rx("Barbell shrug", 3, 10, 12, 60),
					rx("Barbell curl", 3, 8, 12, 60),
					rx("Overhead triceps extension", 3, 10, 12, 60),
				},
				female: {
					rx("Seated dumbbell shoulder press", 3, 10, 12, 75),
					rx("Dumbbell lateral raise", 3, 12, 15, 45),
					rx("Face pull", 3, 12, 15, 45),
					rx("Dumbbell curl", 3, 10, 12, 45),
					rx("Bench dip", 3, 10, 12, 45),
				},
				senior: {
					rx("Seated dumbbell shoulder press", 2, 10, 12, 90),
					rx("Band pull-apart", 2, 12, 15, 60),
					rx("Dumbbell curl", 2, 10, 12, 60),
					rx("Triceps pushdown", 2, 10, 15, 60),
				},
			},
		},
	}
}
