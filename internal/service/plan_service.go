package service

import (
	"alcyxob/fitness-planner/internal/catalog"
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/instrumentation"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrProfileIncomplete     = errors.New("user has not completed the preference survey")
	ErrPreferencesNotFound   = errors.New("preferences not found for user")
	ErrPlanPersistenceFailed = errors.New("plan could not be saved")
)

// PlanService turns preferences into persisted workouts.
type PlanService interface {
	// GeneratePlan loads the user's stored preferences and generates from them.
	GeneratePlan(ctx context.Context, userID primitive.ObjectID) ([]domain.GeneratedWorkout, error)
	// GeneratePlanWithPreferences generates from the given preferences. All
	// workouts and sets of the run are committed in one transaction.
	GeneratePlanWithPreferences(ctx context.Context, userID primitive.ObjectID, prefs *domain.UserPreferences) ([]domain.GeneratedWorkout, error)
}

// planService implements the PlanService interface.
type planService struct {
	registry     *catalog.Registry
	userRepo     repository.UserRepository
	prefsRepo    repository.PreferencesRepository
	exerciseRepo repository.ExerciseRepository
	workoutRepo  repository.WorkoutRepository
	setRepo      repository.WorkoutSetRepository
	tx           repository.Transactor
	instr        *instrumentation.Instrumentation

	now      func() time.Time
	newRunID func() string
}

// NewPlanService creates a new instance of planService. instr may be nil.
func NewPlanService(
	registry *catalog.Registry,
	userRepo repository.UserRepository,
	prefsRepo repository.PreferencesRepository,
	exerciseRepo repository.ExerciseRepository,
	workoutRepo repository.WorkoutRepository,
	setRepo repository.WorkoutSetRepository,
	tx repository.Transactor,
	instr *instrumentation.Instrumentation,
) PlanService {
	return &planService{
		registry:     registry,
		userRepo:     userRepo,
		prefsRepo:    prefsRepo,
		exerciseRepo: exerciseRepo,
		workoutRepo:  workoutRepo,
		setRepo:      setRepo,
		tx:           tx,
		instr:        instr,
		now:          func() time.Time { return time.Now().UTC() },
		newRunID:     func() string { return uuid.NewString() },
	}
}

// plannedDay is a workout with its sets, built before anything is written.
type plannedDay struct {
	workout domain.GeneratedWorkout
	sets    []domain.WorkoutSet
}

func (s *planService) GeneratePlan(ctx context.Context, userID primitive.ObjectID) ([]domain.GeneratedWorkout, error) {
	if err := s.requireSurvey(ctx, userID); err != nil {
		return nil, err
	}
	prefs, err := s.prefsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPreferencesNotFound
		}
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	return s.generate(ctx, userID, prefs)
}

func (s *planService) GeneratePlanWithPreferences(ctx context.Context, userID primitive.ObjectID, prefs *domain.UserPreferences) ([]domain.GeneratedWorkout, error) {
	if prefs == nil {
		return nil, ErrPreferencesNotFound
	}
	if err := s.requireSurvey(ctx, userID); err != nil {
		return nil, err
	}
	return s.generate(ctx, userID, prefs)
}

func (s *planService) requireSurvey(ctx context.Context, userID primitive.ObjectID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProfileIncomplete
		}
		return fmt.Errorf("load user: %w", err)
	}
	if !user.SurveyCompleted {
		return ErrProfileIncomplete
	}
	return nil
}

func (s *planService) generate(ctx context.Context, userID primitive.ObjectID, prefs *domain.UserPreferences) ([]domain.GeneratedWorkout, error) {
	archetype, err := s.registry.SelectArchetype(prefs.Goal, prefs.WorkoutsPerWeek, prefs.WorkoutSplit)
	if err != nil {
		return nil, err
	}

	tier := prefs.Tier()
	prescriptions := make([][]catalog.ExercisePrescription, len(archetype.Days))
	var names []string
	for i, day := range archetype.Days {
		list, err := s.registry.ResolveDay(day, tier)
		if err != nil {
			return nil, err
		}
		prescriptions[i] = list
		for _, p := range list {
			names = append(names, p.ExerciseName)
		}
	}

	exercises, err := s.exerciseRepo.FindByNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("resolve exercises: %w", err)
	}

	logger := log.WithFields(log.Fields{
		"userId": userID.Hex(),
		"split":  archetype.Name,
		"tier":   tier,
	})

	runID := s.newRunID()
	createdAt := s.now()
	days := make([]plannedDay, len(archetype.Days))
	totalSets, skipped := 0, 0
	for i, day := range archetype.Days {
		tpl, err := s.registry.Template(day)
		if err != nil {
			return nil, err
		}
		sets, missing := buildSets(prescriptions[i], exercises, prefs, logger.WithField("template", day))
		totalSets += len(sets)
		skipped += missing
		days[i] = plannedDay{
			workout: domain.GeneratedWorkout{
				UserID:          userID,
				Title:           tpl.Title(),
				Description:     describeDay(i+1, len(archetype.Days), archetype.Name, tpl.Focus),
				TemplateName:    tpl.Name,
				SplitName:       archetype.Name,
				DayIndex:        i + 1,
				GenerationRunID: runID,
				WorkoutType:     domain.WorkoutTypeAutoGenerated,
				CreatedAt:       createdAt,
			},
			sets: sets,
		}
	}

	var created []domain.GeneratedWorkout
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		// The driver may retry this function; start from scratch every time.
		created = make([]domain.GeneratedWorkout, 0, len(days))
		for i := range days {
			w := days[i].workout
			id, err := s.workoutRepo.Create(txCtx, &w)
			if err != nil {
				return fmt.Errorf("insert workout %q: %w", w.TemplateName, err)
			}
			w.ID = id

			sets := make([]domain.WorkoutSet, len(days[i].sets))
			copy(sets, days[i].sets)
			for j := range sets {
				sets[j].WorkoutID = id
			}
			if err := s.setRepo.CreateMany(txCtx, sets); err != nil {
				return fmt.Errorf("insert sets of %q: %w", w.TemplateName, err)
			}
			created = append(created, w)
		}
		return nil
	})
	s.instr.ExercisesUnresolved(skipped)
	if err != nil {
		s.instr.PlanFailed()
		logger.WithField("runId", runID).Errorf("plan generation rolled back: %s", err)
		return nil, fmt.Errorf("%w: %w", ErrPlanPersistenceFailed, err)
	}

	s.instr.PlanGenerated(archetype.Name, totalSets)
	logger.WithFields(log.Fields{
		"runId":    runID,
		"workouts": len(created),
		"sets":     totalSets,
	}).Info("plan generated")
	return created, nil
}

// buildSets expands the prescriptions of one day into set rows. SetOrder runs
// 1..N across the whole workout, one contiguous block per exercise. It also
// reports how many prescriptions were skipped as unresolved.
func buildSets(
	prescriptions []catalog.ExercisePrescription,
	exercises map[string]domain.Exercise,
	prefs *domain.UserPreferences,
	logger *log.Entry,
) ([]domain.WorkoutSet, int) {
	var sets []domain.WorkoutSet
	order, skipped := 1, 0
	for _, p := range prescriptions {
		exercise, ok := exercises[domain.NormalizeExerciseName(p.ExerciseName)]
		if !ok {
			logger.WithField("exercise", p.ExerciseName).Warn("exercise not in catalog, skipping prescription")
			skipped++
			continue
		}

		setCount := p.SetCount
		if prefs.SetsPerExercise != nil && *prefs.SetsPerExercise > 0 {
			setCount = *prefs.SetsPerExercise
		}
		rest := p.RestSeconds
		if prefs.RestTime != nil && *prefs.RestTime >= 0 {
			rest = *prefs.RestTime
		}
		reps := p.PlannedReps()

		for n := 0; n < setCount; n++ {
			sets = append(sets, domain.WorkoutSet{
				ExerciseID:   exercise.ID,
				ExerciseName: exercise.Name,
				PlannedReps:  reps,
				RestTime:     rest,
				SetOrder:     order,
			})
			order++
		}
	}
	return sets, skipped
}

func describeDay(day, total int, split string, focus []string) string {
	d := fmt.Sprintf("Day %d of %d (%s).", day, total, split)
	if len(focus) > 0 {
		d += " Focus: " + strings.Join(focus, ", ") + "."
	}
	return d
}
