// Package instrumentation holds the Prometheus collectors of the planner.
// A nil *Instrumentation is valid and records nothing.
package instrumentation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Instrumentation struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterPlansGenerated      *prometheus.CounterVec
	CounterPlanFailures        prometheus.Counter
	CounterSetsPlanned         prometheus.Counter
	CounterUnresolvedExercises prometheus.Counter
	CounterWorkoutsCleanedUp   prometheus.Counter

	// histograms
	HistRequestDuration *prometheus.HistogramVec
}

// SetupPrometheus returns a registry with the runtime and process collectors.
func SetupPrometheus() *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return promRegistry
}

func NewTestInstrumentation() *Instrumentation {
	return NewInstrumentationWithRegisterer("planner", "test", prometheus.NewRegistry())
}

func NewInstrumentationWithRegisterer(namespace, subsystem string, reg prometheus.Registerer) *Instrumentation {
	factory := promauto.With(reg)

	return &Instrumentation{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "The total number of served HTTP requests",
		}, []string{"method", "route", "status"}),
		CounterPlansGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "plans_generated_total",
			Help:      "Plans persisted, by split archetype",
		}, []string{"split"}),
		CounterPlanFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "plan_persistence_failures_total",
			Help:      "Plan generation runs rolled back",
		}),
		CounterSetsPlanned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sets_planned_total",
			Help:      "Workout sets written by plan generation",
		}),
		CounterUnresolvedExercises: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "unresolved_exercises_total",
			Help:      "Template prescriptions skipped because the exercise is not in the catalog",
		}),
		CounterWorkoutsCleanedUp: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "workouts_cleaned_up_total",
			Help:      "Auto-generated workouts removed on subscription cancellation",
		}),
		HistRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

func (i *Instrumentation) PlanGenerated(split string, sets int) {
	if i == nil {
		return
	}
	i.CounterPlansGenerated.WithLabelValues(split).Inc()
	i.CounterSetsPlanned.Add(float64(sets))
}

func (i *Instrumentation) PlanFailed() {
	if i == nil {
		return
	}
	i.CounterPlanFailures.Inc()
}

func (i *Instrumentation) ExercisesUnresolved(n int) {
	if i == nil || n <= 0 {
		return
	}
	i.CounterUnresolvedExercises.Add(float64(n))
}

func (i *Instrumentation) WorkoutsCleanedUp(n int64) {
	if i == nil || n <= 0 {
		return
	}
	i.CounterWorkoutsCleanedUp.Add(float64(n))
}
