// Package memory is an in-process implementation of every repository plus a
// Transactor. It backs the test suites and the "memory" database driver used
// for local development without MongoDB.
package memory

import (
	"bytes"
	"context"
	"sync"

	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Op names a write operation fault injection can target.
type Op string

const (
	OpCreateWorkout   Op = "workouts.create"
	OpDeleteWorkouts  Op = "workouts.delete"
	OpCreateSets      Op = "workout_sets.create"
	OpDeleteSets      Op = "workout_sets.delete"
	OpDetachWorkouts  Op = "sessions.detach"
	OpUpsertPrefs     Op = "preferences.upsert"
	OpSetSurveyStatus Op = "users.survey"
)

type fault struct {
	remaining int
	err       error
}

type state struct {
	users     map[primitive.ObjectID]domain.User
	prefs     map[primitive.ObjectID]domain.UserPreferences
	exercises map[primitive.ObjectID]domain.Exercise
	workouts  map[primitive.ObjectID]domain.GeneratedWorkout
	sets      map[primitive.ObjectID]domain.WorkoutSet
	sessions  map[primitive.ObjectID]domain.Session
}

func newState() *state {
	return &state{
		users:     map[primitive.ObjectID]domain.User{},
		prefs:     map[primitive.ObjectID]domain.UserPreferences{},
		exercises: map[primitive.ObjectID]domain.Exercise{},
		workouts:  map[primitive.ObjectID]domain.GeneratedWorkout{},
		sets:      map[primitive.ObjectID]domain.WorkoutSet{},
		sessions:  map[primitive.ObjectID]domain.Session{},
	}
}

func (s *state) clone() *state {
	c := &state{
		users:     make(map[primitive.ObjectID]domain.User, len(s.users)),
		prefs:     make(map[primitive.ObjectID]domain.UserPreferences, len(s.prefs)),
		exercises: make(map[primitive.ObjectID]domain.Exercise, len(s.exercises)),
		workouts:  make(map[primitive.ObjectID]domain.GeneratedWorkout, len(s.workouts)),
		sets:      make(map[primitive.ObjectID]domain.WorkoutSet, len(s.sets)),
		sessions:  make(map[primitive.ObjectID]domain.Session, len(s.sessions)),
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.prefs {
		c.prefs[k] = clonePreferences(v)
	}
	for k, v := range s.exercises {
		c.exercises[k] = v
	}
	for k, v := range s.workouts {
		c.workouts[k] = v
	}
	for k, v := range s.sets {
		c.sets[k] = cloneSet(v)
	}
	for k, v := range s.sessions {
		c.sessions[k] = cloneSession(v)
	}
	return c
}

// Store holds all collections. Reads run concurrently; writes are serialized.
// A transaction works on a private copy of the state that replaces the live
// state only when the transaction function returns nil.
type Store struct {
	mu     sync.RWMutex
	txMu   sync.Mutex
	st     *state
	faults map[Op]*fault
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		st:     newState(),
		faults: map[Op]*fault{},
	}
}

type txKey struct{}

type tx struct {
	store *Store
	st    *state
}

func (s *Store) txFrom(ctx context.Context) *tx {
	t, ok := ctx.Value(txKey{}).(*tx)
	if !ok || t.store != s {
		return nil
	}
	return t
}

// WithTransaction implements repository.Transactor. Calls nested inside an
// open transaction join it.
func (s *Store) WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	if s.txFrom(ctx) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	staged := s.st.clone()
	s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txKey{}, &tx{store: s, st: staged})); err != nil {
		return err
	}

	s.mu.Lock()
	s.st = staged
	s.mu.Unlock()
	return nil
}

// FailAfter makes the operation fail with err once it has succeeded n more
// times. The fault stays armed until ClearFaults.
func (s *Store) FailAfter(op Op, n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[op] = &fault{remaining: n, err: err}
}

// ClearFaults disarms every injected fault.
func (s *Store) ClearFaults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults = map[Op]*fault{}
}

func (s *Store) checkFault(op Op) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.faults[op]
	if !ok {
		return nil
	}
	if f.remaining > 0 {
		f.remaining--
		return nil
	}
	return f.err
}

func (s *Store) read(ctx context.Context, fn func(st *state)) {
	if t := s.txFrom(ctx); t != nil {
		fn(t.st)
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.st)
}

// write applies fn to the transaction's staged state, or directly to the live
// state when no transaction is open. fn must validate before mutating.
func (s *Store) write(ctx context.Context, op Op, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if op != "" {
		if err := s.checkFault(op); err != nil {
			return err
		}
	}
	if t := s.txFrom(ctx); t != nil {
		return fn(t.st)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.st)
}

// Repositories returns the store's views as repository interfaces.
func (s *Store) Repositories() Repositories {
	return Repositories{
		Users:       &userRepo{s},
		Preferences: &preferencesRepo{s},
		Exercises:   &exerciseRepo{s},
		Workouts:    &workoutRepo{s},
		WorkoutSets: &workoutSetRepo{s},
		Sessions:    &sessionRepo{s},
	}
}

// Repositories groups the repository views over one Store.
type Repositories struct {
	Users       repository.UserRepository
	Preferences repository.PreferencesRepository
	Exercises   repository.ExerciseRepository
	Workouts    repository.WorkoutRepository
	WorkoutSets repository.WorkoutSetRepository
	Sessions    repository.SessionRepository
}

var _ repository.Transactor = (*Store)(nil)

func idLess(a, b primitive.ObjectID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

func idSet(ids []primitive.ObjectID) map[primitive.ObjectID]struct{} {
	set := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func clonePreferences(p domain.UserPreferences) domain.UserPreferences {
	if p.SetsPerExercise != nil {
		v := *p.SetsPerExercise
		p.SetsPerExercise = &v
	}
	if p.RestTime != nil {
		v := *p.RestTime
		p.RestTime = &v
	}
	return p
}

func cloneSet(ws domain.WorkoutSet) domain.WorkoutSet {
	if ws.Weight != nil {
		v := *ws.Weight
		ws.Weight = &v
	}
	return ws
}

func cloneSession(se domain.Session) domain.Session {
	if se.WorkoutID != nil {
		v := *se.WorkoutID
		se.WorkoutID = &v
	}
	return se
}
