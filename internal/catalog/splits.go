package catalog

import "alcyxob/fitness-planner/internal/domain"

// defaultSplits lists the candidate archetypes per weekly frequency. Index 0 of
// every frequency is the most general-purpose choice and doubles as the
// fallback when the goal is unknown.
func defaultSplits() map[int][]SplitArchetype {
	return map[int][]SplitArchetype{
		3: {
			{Name: "Full Body", Days: []string{"Full Body A", "Full Body B", "Full Body C"}},
			{Name: "Push/Pull/Legs", Days: []string{"Push A", "Pull A", "Legs A"}},
			{Name: "Upper/Lower/Full Body", Days: []string{"Upper A", "Lower A", "Full Body B"}},
		},
		4: {
			{Name: "Upper/Lower + Full Body", Days: []string{"Upper A", "Lower A", "Full Body B", "Full Body C"}},
			{Name: "Push/Pull/Legs + Upper", Days: []string{"Push A", "Pull A", "Legs A", "Upper B"}},
			{Name: "Bro Split", Days: []string{"Chest & Triceps", "Back & Biceps", "Legs A", "Shoulders & Arms"}},
			{Name: "2x Upper/Lower", Days: []string{"Upper A", "Lower A", "Upper B", "Lower B"}},
		},
		5: {
			{Name: "Upper/Lower + Push/Pull/Legs", Days: []string{"Upper A", "Lower A", "Push A", "Pull A", "Legs B"}},
			{Name: "Bro Split", Days: []string{"Chest & Triceps", "Back & Biceps", "Legs A", "Shoulders & Arms", "Lower B"}},
			{Name: "Push/Pull/Legs + Upper/Lower", Days: []string{"Push A", "Pull A", "Legs A", "Upper B", "Lower B"}},
		},
		6: {
			{Name: "2x Push/Pull/Legs", Days: []string{"Push A", "Pull A", "Legs A", "Push B", "Pull B", "Legs B"}},
			{Name: "3x Upper/Lower", Days: []string{"Upper A", "Lower A", "Upper B", "Lower B", "Upper A", "Lower B"}},
			{Name: "Bro Split + Full Body", Days: []string{"Chest & Triceps", "Back & Biceps", "Legs A", "Shoulders & Arms", "Lower B", "Full Body C"}},
		},
	}
}

// defaultRecommendations maps goal and frequency to an archetype index.
func defaultRecommendations() map[domain.Goal]map[int]int {
	return map[domain.Goal]map[int]int{
		domain.GoalLoseWeight:     {3: 0, 4: 0, 5: 0, 6: 1},
		domain.GoalGainMuscle:     {3: 1, 4: 3, 5: 2, 6: 0},
		domain.GoalGainStrength:   {3: 2, 4: 3, 5: 0, 6: 1},
		domain.GoalMaintainMuscle: {3: 0, 4: 0, 5: 0, 6: 0},
	}
}
