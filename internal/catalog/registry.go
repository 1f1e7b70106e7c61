package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"alcyxob/fitness-planner/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Registry is the validated, immutable view over the training configuration.
// It is safe for concurrent use; nothing mutates it after New returns.
type Registry struct {
	templates       map[string]*DayTemplate
	templateNames   []string
	splits          map[int][]SplitArchetype
	recommendations map[domain.Goal]map[int]int
	muscles         []Muscle
	muscleByTarget  map[string]*Muscle
}

// Load builds the registry from the built-in tables.
func Load() (*Registry, error) {
	return New(defaultTemplates(), defaultSplits(), defaultRecommendations(), defaultMuscles())
}

// MustLoad is Load for process start; an integrity fault is a programming error.
func MustLoad() *Registry {
	r, err := Load()
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return r
}

// New validates the tables and builds a registry. Every integrity fault found
// is reported, not only the first one.
func New(
	templates []DayTemplate,
	splits map[int][]SplitArchetype,
	recommendations map[domain.Goal]map[int]int,
	muscles []Muscle,
) (*Registry, error) {
	r := &Registry{
		templates:       make(map[string]*DayTemplate, len(templates)),
		splits:          make(map[int][]SplitArchetype, len(splits)),
		recommendations: recommendations,
		muscles:         muscles,
		muscleByTarget:  make(map[string]*Muscle),
	}

	var errs error
	for i := range templates {
		t := templates[i]
		if _, dup := r.templates[t.Name]; dup {
			errs = multierr.Append(errs, fmt.Errorf("duplicate day template %q", t.Name))
			continue
		}
		errs = multierr.Append(errs, validateTemplate(&t))
		r.templates[t.Name] = &t
		r.templateNames = append(r.templateNames, t.Name)
	}

	for freq := MinFrequency; freq <= MaxFrequency; freq++ {
		archetypes := splits[freq]
		if len(archetypes) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("%w: no archetypes for %d days per week", ErrInvalidArchetype, freq))
			continue
		}
		indexed := make([]SplitArchetype, len(archetypes))
		for i, a := range archetypes {
			a.Index = i
			if len(a.Days) != freq {
				errs = multierr.Append(errs, fmt.Errorf("%w: %q has %d days, want %d", ErrInvalidArchetype, a.Name, len(a.Days), freq))
			}
			for _, day := range a.Days {
				if _, ok := r.templates[day]; !ok {
					errs = multierr.Append(errs, fmt.Errorf("%w: %q referenced by archetype %q", ErrTemplateNotFound, day, a.Name))
				}
			}
			indexed[i] = a
		}
		r.splits[freq] = indexed
	}
	for freq := range splits {
		if freq < MinFrequency || freq > MaxFrequency {
			errs = multierr.Append(errs, fmt.Errorf("%w: %d", ErrUnsupportedFrequency, freq))
		}
	}

	for goal, byFreq := range recommendations {
		for freq, idx := range byFreq {
			if idx < 0 || idx >= len(r.splits[freq]) {
				errs = multierr.Append(errs, fmt.Errorf("%w: recommendation %s/%d points at index %d", ErrInvalidArchetype, goal, freq, idx))
			}
		}
	}

	for i := range muscles {
		m := &muscles[i]
		for _, target := range m.Targets {
			key := muscleKey(target)
			if other, dup := r.muscleByTarget[key]; dup {
				errs = multierr.Append(errs, fmt.Errorf("target %q mapped to both %s and %s", target, other.ID, m.ID))
				continue
			}
			r.muscleByTarget[key] = m
		}
	}

	if errs != nil {
		return nil, errs
	}
	sort.Strings(r.templateNames)
	return r, nil
}

func validateTemplate(t *DayTemplate) error {
	var errs error
	for _, tier := range domain.GenderTiers {
		list := t.ExercisesByTier[tier]
		if len(list) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q/%s", ErrMissingTierVariant, t.Name, tier))
			continue
		}
		for _, p := range list {
			if p.ExerciseName == "" || p.SetCount <= 0 || p.RepMin <= 0 || p.RepMin > p.RepMax || p.RestSeconds < 0 {
				errs = multierr.Append(errs, fmt.Errorf("%w: %q/%s %+v", ErrInvalidPrescription, t.Name, tier, p))
			}
		}
	}
	return errs
}

// SelectArchetype picks the split for the given goal and weekly frequency.
// A valid explicit choice (archetype index or name) wins over the goal
// recommendation; an unknown goal falls back to index 0.
func (r *Registry) SelectArchetype(goal domain.Goal, frequency int, explicitChoice string) (SplitArchetype, error) {
	archetypes, ok := r.splits[frequency]
	if !ok {
		return SplitArchetype{}, fmt.Errorf("%w: %d", ErrUnsupportedFrequency, frequency)
	}

	if explicitChoice != "" {
		if a, ok := lookupArchetype(archetypes, explicitChoice); ok {
			return a, nil
		}
		log.WithFields(log.Fields{
			"choice":    explicitChoice,
			"frequency": frequency,
		}).Warn("catalog: explicit split choice not valid for frequency, using recommendation")
	}

	idx := 0
	if byFreq, ok := r.recommendations[goal]; ok {
		if i, ok := byFreq[frequency]; ok {
			idx = i
		}
	}
	return archetypes[idx], nil
}

func lookupArchetype(archetypes []SplitArchetype, choice string) (SplitArchetype, bool) {
	choice = strings.TrimSpace(choice)
	if idx, err := strconv.Atoi(choice); err == nil {
		if idx >= 0 && idx < len(archetypes) {
			return archetypes[idx], true
		}
		return SplitArchetype{}, false
	}
	for _, a := range archetypes {
		if strings.EqualFold(a.Name, choice) {
			return a, true
		}
	}
	return SplitArchetype{}, false
}

// ResolveDay returns the ordered prescriptions of a template for a tier.
// An empty tier resolves to domain.DefaultTier.
func (r *Registry) ResolveDay(templateName string, tier domain.GenderTier) ([]ExercisePrescription, error) {
	t, ok := r.templates[templateName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, templateName)
	}
	if tier == "" {
		tier = domain.DefaultTier
	}
	list, ok := t.ExercisesByTier[tier]
	if !ok || len(list) == 0 {
		return nil, fmt.Errorf("%w: %q/%s", ErrMissingTierVariant, templateName, tier)
	}
	return list, nil
}

// Template returns a day template by name.
func (r *Registry) Template(name string) (*DayTemplate, error) {
	t, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return t, nil
}

// TemplateNames lists all template names, sorted.
func (r *Registry) TemplateNames() []string {
	return append([]string(nil), r.templateNames...)
}

// Archetypes lists the archetypes available for a frequency.
func (r *Registry) Archetypes(frequency int) ([]SplitArchetype, error) {
	archetypes, ok := r.splits[frequency]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFrequency, frequency)
	}
	return archetypes, nil
}

// Muscles returns the full muscle taxonomy in display order.
func (r *Registry) Muscles() []Muscle {
	out := make([]Muscle, len(r.muscles))
	for i, m := range r.muscles {
		m.Targets = append([]string(nil), m.Targets...)
		out[i] = m
	}
	return out
}

// MuscleForTarget maps an exercise catalog target label onto a muscle.
func (r *Registry) MuscleForTarget(target string) (*Muscle, bool) {
	m, ok := r.muscleByTarget[muscleKey(target)]
	return m, ok
}

// ExerciseNames lists every exercise name referenced by any template and tier,
// deduplicated by normalized name and sorted.
func (r *Registry) ExerciseNames() []string {
	seen := make(map[string]string)
	for _, t := range r.templates {
		for _, list := range t.ExercisesByTier {
			for _, p := range list {
				key := domain.NormalizeExerciseName(p.ExerciseName)
				if _, ok := seen[key]; !ok {
					seen[key] = p.ExerciseName
				}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for _, n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
