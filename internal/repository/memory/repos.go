package memory

import (
	"context"
	"errors"
	"sort"
	"time"

	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userRepo struct{ s *Store }

func (r *userRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if user.Email == "" {
		return primitive.NilObjectID, errors.New("user email is required")
	}
	err := r.s.write(ctx, "", func(st *state) error {
		for _, u := range st.users {
			if u.Email == user.Email || u.ID == user.ID {
				return repository.ErrDuplicate
			}
		}
		if user.ID == primitive.NilObjectID {
			user.ID = primitive.NewObjectID()
		}
		now := time.Now().UTC()
		user.CreatedAt = now
		user.UpdatedAt = now
		st.users[user.ID] = *user
		return nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return user.ID, nil
}

func (r *userRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var (
		u  domain.User
		ok bool
	)
	r.s.read(ctx, func(st *state) { u, ok = st.users[id] })
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *userRepo) SetSurveyCompleted(ctx context.Context, id primitive.ObjectID, completed bool) error {
	return r.s.write(ctx, OpSetSurveyStatus, func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return repository.ErrNotFound
		}
		u.SurveyCompleted = completed
		u.UpdatedAt = time.Now().UTC()
		st.users[id] = u
		return nil
	})
}

type preferencesRepo struct{ s *Store }

func (r *preferencesRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.UserPreferences, error) {
	var (
		p  domain.UserPreferences
		ok bool
	)
	r.s.read(ctx, func(st *state) {
		p, ok = st.prefs[userID]
		p = clonePreferences(p)
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *preferencesRepo) Upsert(ctx context.Context, prefs *domain.UserPreferences) error {
	if prefs.UserID == primitive.NilObjectID {
		return errors.New("preferences require userId")
	}
	return r.s.write(ctx, OpUpsertPrefs, func(st *state) error {
		prefs.UpdatedAt = time.Now().UTC()
		st.prefs[prefs.UserID] = clonePreferences(*prefs)
		return nil
	})
}

type exerciseRepo struct{ s *Store }

func (r *exerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.Name == "" {
		return primitive.NilObjectID, errors.New("exercise name is required")
	}
	key := domain.NormalizeExerciseName(exercise.Name)
	err := r.s.write(ctx, "", func(st *state) error {
		for _, e := range st.exercises {
			if e.NameKey == key {
				return repository.ErrDuplicate
			}
		}
		exercise.ID = primitive.NewObjectID()
		exercise.NameKey = key
		now := time.Now().UTC()
		exercise.CreatedAt = now
		exercise.UpdatedAt = now
		st.exercises[exercise.ID] = *exercise
		return nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return exercise.ID, nil
}

func (r *exerciseRepo) Upsert(ctx context.Context, exercise *domain.Exercise) (bool, error) {
	if exercise.Name == "" {
		return false, errors.New("exercise name is required")
	}
	exercise.NameKey = domain.NormalizeExerciseName(exercise.Name)
	inserted := false
	err := r.s.write(ctx, "", func(st *state) error {
		now := time.Now().UTC()
		exercise.UpdatedAt = now
		for id, e := range st.exercises {
			if e.NameKey == exercise.NameKey {
				exercise.ID = id
				exercise.CreatedAt = e.CreatedAt
				st.exercises[id] = *exercise
				return nil
			}
		}
		exercise.ID = primitive.NewObjectID()
		exercise.CreatedAt = now
		st.exercises[exercise.ID] = *exercise
		inserted = true
		return nil
	})
	return inserted, err
}

func (r *exerciseRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	var (
		e  domain.Exercise
		ok bool
	)
	r.s.read(ctx, func(st *state) { e, ok = st.exercises[id] })
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (r *exerciseRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Exercise, error) {
	out := []domain.Exercise{}
	r.s.read(ctx, func(st *state) {
		for _, id := range ids {
			if e, ok := st.exercises[id]; ok {
				out = append(out, e)
			}
		}
	})
	return out, nil
}

func (r *exerciseRepo) FindByName(ctx context.Context, name string) (*domain.Exercise, error) {
	found, err := r.FindByNames(ctx, []string{name})
	if err != nil {
		return nil, err
	}
	e, ok := found[domain.NormalizeExerciseName(name)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (r *exerciseRepo) FindByNames(ctx context.Context, names []string) (map[string]domain.Exercise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[domain.NormalizeExerciseName(n)] = struct{}{}
	}
	byKey := make(map[string]domain.Exercise, len(names))
	r.s.read(ctx, func(st *state) {
		for _, e := range st.exercises {
			if _, ok := wanted[e.NameKey]; ok {
				byKey[e.NameKey] = e
			}
		}
	})
	return byKey, nil
}

func (r *exerciseRepo) List(ctx context.Context, f repository.ExerciseFilter) ([]domain.Exercise, error) {
	out := []domain.Exercise{}
	r.s.read(ctx, func(st *state) {
		for _, e := range st.exercises {
			if f.BodyPart != "" && e.BodyPart != f.BodyPart {
				continue
			}
			if f.Target != "" && e.Target != f.Target {
				continue
			}
			if f.Equipment != "" && e.Equipment != f.Equipment {
				continue
			}
			out = append(out, e)
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return idLess(out[i].ID, out[j].ID)
	})
	return out, nil
}

type workoutRepo struct{ s *Store }

func (r *workoutRepo) Create(ctx context.Context, workout *domain.GeneratedWorkout) (primitive.ObjectID, error) {
	if workout.UserID == primitive.NilObjectID || workout.Title == "" {
		return primitive.NilObjectID, errors.New("workout requires userId and title")
	}
	err := r.s.write(ctx, OpCreateWorkout, func(st *state) error {
		workout.ID = primitive.NewObjectID()
		if workout.CreatedAt.IsZero() {
			workout.CreatedAt = time.Now().UTC()
		}
		st.workouts[workout.ID] = *workout
		return nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return workout.ID, nil
}

func (r *workoutRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.GeneratedWorkout, error) {
	var (
		w  domain.GeneratedWorkout
		ok bool
	)
	r.s.read(ctx, func(st *state) { w, ok = st.workouts[id] })
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &w, nil
}

func (r *workoutRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.GeneratedWorkout, error) {
	out := []domain.GeneratedWorkout{}
	r.s.read(ctx, func(st *state) {
		for _, w := range st.workouts {
			if w.UserID == userID {
				out = append(out, w)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		if a.DayIndex != b.DayIndex {
			return a.DayIndex < b.DayIndex
		}
		return idLess(a.ID, b.ID)
	})
	return out, nil
}

func (r *workoutRepo) ListIDsByType(ctx context.Context, userID primitive.ObjectID, workoutType domain.WorkoutType) ([]primitive.ObjectID, error) {
	ids := []primitive.ObjectID{}
	r.s.read(ctx, func(st *state) {
		for id, w := range st.workouts {
			if w.UserID == userID && w.WorkoutType == workoutType {
				ids = append(ids, id)
			}
		}
	})
	sort.Slice(ids, func(i, j int) bool { return idLess(ids[i], ids[j]) })
	return ids, nil
}

func (r *workoutRepo) DeleteByIDs(ctx context.Context, userID primitive.ObjectID, ids []primitive.ObjectID) (int64, error) {
	var n int64
	err := r.s.write(ctx, OpDeleteWorkouts, func(st *state) error {
		for _, id := range ids {
			if w, ok := st.workouts[id]; ok && w.UserID == userID {
				delete(st.workouts, id)
				n++
			}
		}
		return nil
	})
	return n, err
}

type workoutSetRepo struct{ s *Store }

func (r *workoutSetRepo) CreateMany(ctx context.Context, sets []domain.WorkoutSet) error {
	if len(sets) == 0 {
		return nil
	}
	return r.s.write(ctx, OpCreateSets, func(st *state) error {
		for i := range sets {
			for _, existing := range st.sets {
				if existing.WorkoutID == sets[i].WorkoutID && existing.SetOrder == sets[i].SetOrder {
					return repository.ErrDuplicate
				}
			}
		}
		for i := range sets {
			sets[i].ID = primitive.NewObjectID()
			st.sets[sets[i].ID] = cloneSet(sets[i])
		}
		return nil
	})
}

func (r *workoutSetRepo) GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.WorkoutSet, error) {
	return r.GetByWorkoutIDs(ctx, []primitive.ObjectID{workoutID})
}

func (r *workoutSetRepo) GetByWorkoutIDs(ctx context.Context, workoutIDs []primitive.ObjectID) ([]domain.WorkoutSet, error) {
	wanted := idSet(workoutIDs)
	out := []domain.WorkoutSet{}
	r.s.read(ctx, func(st *state) {
		for _, ws := range st.sets {
			if _, ok := wanted[ws.WorkoutID]; ok {
				out = append(out, cloneSet(ws))
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].WorkoutID != out[j].WorkoutID {
			return idLess(out[i].WorkoutID, out[j].WorkoutID)
		}
		return out[i].SetOrder < out[j].SetOrder
	})
	return out, nil
}

func (r *workoutSetRepo) DeleteByWorkoutIDs(ctx context.Context, workoutIDs []primitive.ObjectID) (int64, error) {
	wanted := idSet(workoutIDs)
	var n int64
	err := r.s.write(ctx, OpDeleteSets, func(st *state) error {
		for id, ws := range st.sets {
			if _, ok := wanted[ws.WorkoutID]; ok {
				delete(st.sets, id)
				n++
			}
		}
		return nil
	})
	return n, err
}

type sessionRepo struct{ s *Store }

func (r *sessionRepo) Create(ctx context.Context, session *domain.Session) (primitive.ObjectID, error) {
	if session.UserID == primitive.NilObjectID || session.StartTime.IsZero() {
		return primitive.NilObjectID, errors.New("session requires userId and startTime")
	}
	err := r.s.write(ctx, "", func(st *state) error {
		session.ID = primitive.NewObjectID()
		session.StartTime = session.StartTime.UTC()
		st.sessions[session.ID] = cloneSession(*session)
		return nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return session.ID, nil
}

func (r *sessionRepo) ListByUser(ctx context.Context, userID primitive.ObjectID, status domain.SessionStatus, since time.Time) ([]domain.Session, error) {
	out := []domain.Session{}
	r.s.read(ctx, func(st *state) {
		for _, se := range st.sessions {
			if se.UserID != userID || se.Status != status || se.StartTime.Before(since) {
				continue
			}
			out = append(out, cloneSession(se))
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return idLess(out[i].ID, out[j].ID)
	})
	return out, nil
}

func (r *sessionRepo) DetachWorkouts(ctx context.Context, workoutIDs []primitive.ObjectID) (int64, error) {
	wanted := idSet(workoutIDs)
	var n int64
	err := r.s.write(ctx, OpDetachWorkouts, func(st *state) error {
		for id, se := range st.sessions {
			if se.WorkoutID == nil {
				continue
			}
			if _, ok := wanted[*se.WorkoutID]; ok {
				se.WorkoutID = nil
				st.sessions[id] = se
				n++
			}
		}
		return nil
	})
	return n, err
}
